package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Harman090807/Hotel-management-app/registry"
)

func TestCheckInAPI(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)
	seedRoom(t, reg, 101, 500)

	w := doJSON(t, r, http.MethodPost, "/api/checkin",
		`{"room_number": 101, "booking_id": 7, "name": "Alice Smith", "address": "12 Main St",
		  "phone": "555-0101", "from_date": "2024-03-01", "to_date": "2024-03-04",
		  "payment_advance": 150.5}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(101), body["room_number"])

	customer, ok := body["customer"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "Alice Smith", customer["name"])
	assert.Equal(t, float64(7), customer["booking_id"])
	assert.Equal(t, 150.5, customer["payment_advance"])

	// the room itself now reports the stay
	w = doJSON(t, r, http.MethodGet, "/api/rooms/101", "")
	var room map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	assert.Equal(t, "occupied", room["status"])
	assert.NotNil(t, room["cust"])
}

func TestCheckInRejections(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)

	seedRoom(t, reg, 101, 500)
	seedRoom(t, reg, 102, 700)
	seedGuest(t, reg, 102, "Bob", 9, 0)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"unknown room", `{"room_number": 999, "booking_id": 1}`, http.StatusNotFound},
		{"occupied room", `{"room_number": 102, "booking_id": 2}`, http.StatusBadRequest},
		{"duplicate booking id", `{"room_number": 101, "booking_id": 9}`, http.StatusBadRequest},
		{"missing booking id", `{"room_number": 101, "name": "Alice"}`, http.StatusBadRequest},
		{"string booking id", `{"room_number": 101, "booking_id": "7"}`, http.StatusBadRequest},
		{"fractional booking id", `{"room_number": 101, "booking_id": 7.5}`, http.StatusBadRequest},
		{"negative advance", `{"room_number": 101, "booking_id": 3, "payment_advance": -5}`, http.StatusBadRequest},
		{"missing room number", `{"booking_id": 3}`, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/checkin", tc.body)
			assert.Equal(t, tc.want, w.Code)
		})
	}

	// room 101 must still be free after all the failures
	w := doJSON(t, r, http.MethodGet, "/api/rooms/101", "")
	var room map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	assert.Equal(t, "available", room["status"])
}

func TestCheckInAdvanceCoercion(t *testing.T) {
	tests := []struct {
		name string
		body string
		want float64
	}{
		{"numeric string", `{"room_number": 101, "booking_id": 1, "payment_advance": "250.75"}`, 250.75},
		{"junk string", `{"room_number": 101, "booking_id": 1, "payment_advance": "abc"}`, 0},
		{"absent", `{"room_number": 101, "booking_id": 1}`, 0},
		{"null", `{"room_number": 101, "booking_id": 1, "payment_advance": null}`, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reg := registry.New()
			r := newAPIRouter(reg, nil)
			seedRoom(t, reg, 101, 500)

			w := doJSON(t, r, http.MethodPost, "/api/checkin", tc.body)
			assert.Equal(t, http.StatusOK, w.Code)

			var body map[string]any
			assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			customer := body["customer"].(map[string]any)
			assert.Equal(t, tc.want, customer["payment_advance"])
		})
	}
}

func TestCheckOutAPI(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)
	seedRoom(t, reg, 101, 500)
	seedGuest(t, reg, 101, "Alice", 7, 200)

	w := doJSON(t, r, http.MethodPost, "/api/checkout", `{"room_number": 101, "days": 3}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"room_number": 101, "bill": 1500, "advance": 200, "payable": 1300}`, w.Body.String())

	// the room is free again and the booking id can be reused
	w = doJSON(t, r, http.MethodGet, "/api/rooms/101", "")
	var room map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	assert.Equal(t, "available", room["status"])
	assert.Nil(t, room["cust"])

	w = doJSON(t, r, http.MethodPost, "/api/checkin", `{"room_number": 101, "booking_id": 7}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCheckOutKeepsNegativeAmounts(t *testing.T) {
	t.Run("advance above bill", func(t *testing.T) {
		reg := registry.New()
		r := newAPIRouter(reg, nil)
		seedRoom(t, reg, 101, 500)
		seedGuest(t, reg, 101, "Alice", 7, 1800)

		w := doJSON(t, r, http.MethodPost, "/api/checkout", `{"room_number": 101, "days": 3}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"room_number": 101, "bill": 1500, "advance": 1800, "payable": -300}`, w.Body.String())
	})

	t.Run("negative days", func(t *testing.T) {
		reg := registry.New()
		r := newAPIRouter(reg, nil)
		seedRoom(t, reg, 101, 100)
		seedGuest(t, reg, 101, "Alice", 7, 0)

		w := doJSON(t, r, http.MethodPost, "/api/checkout", `{"room_number": 101, "days": -2}`)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"room_number": 101, "bill": -200, "advance": 0, "payable": -200}`, w.Body.String())
	})
}

func TestCheckOutRejections(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)
	seedRoom(t, reg, 101, 500)

	tests := []struct {
		name string
		body string
		want int
	}{
		{"unknown room", `{"room_number": 999, "days": 1}`, http.StatusNotFound},
		{"room not occupied", `{"room_number": 101, "days": 1}`, http.StatusBadRequest},
		{"missing room number", `{"days": 1}`, http.StatusBadRequest},
		{"non-integer days", `{"room_number": 101, "days": "three"}`, http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/checkout", tc.body)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestStayHistoryDisabledWithoutStore(t *testing.T) {
	reg := registry.New()
	r := newAPIRouter(reg, nil)

	w := doJSON(t, r, http.MethodGet, "/api/history", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/export/history", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStayHistoryRecordsCheckouts(t *testing.T) {
	reg := registry.New()
	st := openTestStore(t)
	r := newAPIRouter(reg, st)
	seedRoom(t, reg, 101, 500)

	w := doJSON(t, r, http.MethodPost, "/api/checkin",
		`{"room_number": 101, "booking_id": 7, "name": "Alice", "payment_advance": 200}`)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/checkout", `{"room_number": 101, "days": 3}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/history", "")
	assert.Equal(t, http.StatusOK, w.Code)

	var stays []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &stays))
	assert.Len(t, stays, 1)
	assert.Equal(t, float64(101), stays[0]["room_number"])
	assert.Equal(t, float64(7), stays[0]["booking_id"])
	assert.Equal(t, "Alice", stays[0]["guest_name"])
	assert.Equal(t, float64(1500), stays[0]["bill"])
	assert.Equal(t, float64(1300), stays[0]["payable"])
	assert.NotEmpty(t, stays[0]["reference_code"])

	w = doJSON(t, r, http.MethodGet, "/api/history?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
