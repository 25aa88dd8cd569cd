package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Harman090807/Hotel-management-app/registry"
)

func TestCreateRoomAPI(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)

	w := doJSON(t, r, http.MethodPost, "/api/rooms",
		`{"room_number": 101, "ac": "A", "comfort": "S", "size": "B", "rent": 500}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(101), body["room_number"])
	assert.Equal(t, "A", body["ac"])
	assert.Equal(t, "S", body["comfort"])
	assert.Equal(t, "B", body["size"])
	assert.Equal(t, float64(500), body["rent"])
	assert.Equal(t, "available", body["status"])
	assert.Contains(t, body, "cust")
	assert.Nil(t, body["cust"])
}

func TestCreateRoomDefaultsBlankAttributes(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)

	w := doJSON(t, r, http.MethodPost, "/api/rooms", `{"room_number": 5}`)
	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "N", body["ac"])
	assert.Equal(t, "N", body["comfort"])
	assert.Equal(t, "S", body["size"])
	assert.Equal(t, float64(0), body["rent"])
}

func TestCreateRoomRejections(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)

	seedRoom(t, reg, 101, 500)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"missing room number", `{"rent": 100}`, http.StatusBadRequest},
		{"non-integer room number", `{"room_number": "abc"}`, http.StatusBadRequest},
		{"zero room number", `{"room_number": 0}`, http.StatusBadRequest},
		{"bad ac code", `{"room_number": 7, "ac": "X"}`, http.StatusBadRequest},
		{"bad comfort code", `{"room_number": 7, "comfort": "Q"}`, http.StatusBadRequest},
		{"bad size code", `{"room_number": 7, "size": "L"}`, http.StatusBadRequest},
		{"negative rent", `{"room_number": 7, "rent": -10}`, http.StatusBadRequest},
		{"duplicate number", `{"room_number": 101}`, http.StatusBadRequest},
		{"malformed json", `{"room_number": `, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/rooms", tc.body)
			assert.Equal(t, tc.want, w.Code)

			var body map[string]any
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Contains(t, body, "error")
		})
	}

	// failed attempts must not have grown the registry
	total, _ := reg.Stats()
	assert.Equal(t, 1, total)
}

func TestGetRoomsListsInInsertionOrder(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)

	seedRoom(t, reg, 300, 900)
	seedRoom(t, reg, 100, 400)

	w := doJSON(t, r, http.MethodGet, "/api/rooms", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var rooms []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	assert.Len(t, rooms, 2)
	assert.Equal(t, float64(300), rooms[0]["room_number"])
	assert.Equal(t, float64(100), rooms[1]["room_number"])
}

func TestGetRoomsEmptyIsBareArray(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)

	w := doJSON(t, r, http.MethodGet, "/api/rooms", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetRoomByNumber(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)
	seedRoom(t, reg, 101, 500)

	w := doJSON(t, r, http.MethodGet, "/api/rooms/101", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(101), body["room_number"])

	w = doJSON(t, r, http.MethodGet, "/api/rooms/999", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/rooms/abc", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAvailableAndOccupiedFilters(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)

	seedRoom(t, reg, 101, 500)
	seedRoom(t, reg, 102, 700)
	seedGuest(t, reg, 102, "Alice", 7, 0)

	w := doJSON(t, r, http.MethodGet, "/api/rooms/available", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var available []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &available))
	assert.Len(t, available, 1)
	assert.Equal(t, float64(101), available[0]["room_number"])

	w = doJSON(t, r, http.MethodGet, "/api/rooms/occupied", "")
	assert.Equal(t, http.StatusOK, w.Code)
	var occupied []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &occupied))
	assert.Len(t, occupied, 1)
	assert.Equal(t, float64(102), occupied[0]["room_number"])
}
