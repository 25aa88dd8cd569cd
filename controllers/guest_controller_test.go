package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Harman090807/Hotel-management-app/registry"
)

func TestGetGuestsEmptyIsBareArray(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)

	w := doJSON(t, r, http.MethodGet, "/api/guests", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetGuestsListsActiveStays(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)

	seedRoom(t, reg, 101, 500)
	seedRoom(t, reg, 102, 700)
	seedRoom(t, reg, 103, 300)
	seedGuest(t, reg, 101, "alice", 7, 100)
	seedGuest(t, reg, 103, "Bob Smith", 8, 0)

	w := doJSON(t, r, http.MethodGet, "/api/guests", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var guests []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &guests))
	assert.Len(t, guests, 2)
	assert.Equal(t, float64(101), guests[0]["room_number"])
	assert.Equal(t, float64(103), guests[1]["room_number"])

	customer := guests[0]["customer"].(map[string]any)
	assert.Equal(t, "alice", customer["name"])
	assert.Equal(t, float64(7), customer["booking_id"])
}

func TestSearchCustomerAPI(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)

	seedRoom(t, reg, 101, 500)
	seedRoom(t, reg, 102, 700)
	seedGuest(t, reg, 101, "alice", 7, 0)
	seedGuest(t, reg, 102, "Alice Smith", 8, 0)

	tests := []struct {
		name      string
		query     string
		wantRooms []float64
	}{
		{"case-insensitive exact", "/api/search_customer?name=ALICE", []float64{101}},
		{"full name", "/api/search_customer?name=alice+smith", []float64{102}},
		{"no substring match", "/api/search_customer?name=Smith", nil},
		{"blank query", "/api/search_customer?name=", nil},
		{"missing parameter", "/api/search_customer", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodGet, tc.query, "")
			assert.Equal(t, http.StatusOK, w.Code)

			var results []map[string]any
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &results))
			assert.Len(t, results, len(tc.wantRooms))
			for i, room := range tc.wantRooms {
				assert.Equal(t, room, results[i]["room_number"])
			}
		})
	}
}
