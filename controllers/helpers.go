package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harman090807/Hotel-management-app/metrics"
	"github.com/Harman090807/Hotel-management-app/models"
	"github.com/Harman090807/Hotel-management-app/registry"
	"github.com/Harman090807/Hotel-management-app/store"
	"github.com/Harman090807/Hotel-management-app/utils"
)

// ---------------------------
// Helper: map registry errors onto HTTP statuses
// ---------------------------

// respondRegistryError turns a registry rejection into the JSON error body.
// A missing room is 404; every other rejection is a 400.
func respondRegistryError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, registry.ErrRoomNotFound) {
		status = http.StatusNotFound
	}
	utils.JSONError(c, status, err.Error())
}

// ---------------------------
// Helper: best-effort persistence
// ---------------------------

// mirrorRoom copies a room's new state into the store. The registry already
// committed, so a store failure is logged and the request still succeeds.
func mirrorRoom(st *store.Store, room models.Room) {
	if st == nil {
		return
	}
	if err := st.SaveRoom(room); err != nil {
		log.Printf("⚠️ store: mirror room %d: %v", room.RoomNumber, err)
	}
}

// appendStay writes a finished stay to the ledger, same best-effort contract
// as mirrorRoom.
func appendStay(st *store.Store, dep registry.Departure, days int) {
	if st == nil || dep.Guest == nil {
		return
	}
	if err := st.RecordStay(dep.Receipt, dep.Guest, days); err != nil {
		log.Printf("⚠️ store: record stay for room %d: %v", dep.Receipt.RoomNumber, err)
	}
}

// syncOccupancy refreshes the room gauges after a successful mutation.
func syncOccupancy(m *metrics.Metrics, reg *registry.Registry) {
	if m == nil {
		return
	}
	m.SetOccupancy(reg.Stats())
}

func countRejection(m *metrics.Metrics, operation string) {
	if m == nil {
		return
	}
	m.RejectionsTotal.WithLabelValues(operation).Inc()
}
