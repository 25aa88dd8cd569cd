package controllers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Harman090807/Hotel-management-app/metrics"
	"github.com/Harman090807/Hotel-management-app/models"
	"github.com/Harman090807/Hotel-management-app/registry"
	"github.com/Harman090807/Hotel-management-app/store"
	"github.com/Harman090807/Hotel-management-app/utils"
)

// ---------------------------
// Payload / DTOs
// ---------------------------

// CheckInRequest is the API check-in payload. booking_id must be a JSON
// integer; payment_advance is kept raw so numbers, numeric strings and junk
// all get the same lenient treatment.
type CheckInRequest struct {
	RoomNumber     *int            `json:"room_number" binding:"required"`
	BookingID      *int64          `json:"booking_id" binding:"required"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	FromDate       string          `json:"from_date"`
	ToDate         string          `json:"to_date"`
	PaymentAdvance json.RawMessage `json:"payment_advance"`
}

// CheckOutRequest carries the checkout. days defaults to zero when absent,
// and negative values are passed through so the bill can go negative.
type CheckOutRequest struct {
	RoomNumber *int `json:"room_number" binding:"required"`
	Days       int  `json:"days"`
}

// ---------------------------
// Controller
// ---------------------------

type BookingController struct {
	Registry *registry.Registry
	Store    *store.Store
	Metrics  *metrics.Metrics
}

func NewBookingController(reg *registry.Registry, st *store.Store, m *metrics.Metrics) *BookingController {
	return &BookingController{Registry: reg, Store: st, Metrics: m}
}

// parseAdvance coerces payment_advance: JSON numbers pass through, numeric
// strings are parsed, anything else counts as no advance paid.
func parseAdvance(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return f
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			return parsed
		}
	}
	return 0
}

// CheckIn books a guest into an available room. (POST /api/checkin)
func (ctrl *BookingController) CheckIn(c *gin.Context) {
	var payload CheckInRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	guest := models.Customer{
		Name:           payload.Name,
		Address:        payload.Address,
		Phone:          payload.Phone,
		FromDate:       payload.FromDate,
		ToDate:         payload.ToDate,
		PaymentAdvance: parseAdvance(payload.PaymentAdvance),
		BookingID:      *payload.BookingID,
	}

	room, err := ctrl.Registry.CheckIn(*payload.RoomNumber, guest)
	if err != nil {
		countRejection(ctrl.Metrics, "check_in")
		respondRegistryError(c, err)
		return
	}

	mirrorRoom(ctrl.Store, room)
	if ctrl.Metrics != nil {
		ctrl.Metrics.CheckinsTotal.Inc()
	}
	syncOccupancy(ctrl.Metrics, ctrl.Registry)

	c.JSON(http.StatusOK, models.Guest{RoomNumber: room.RoomNumber, Customer: *room.Cust})
}

// CheckOut ends a stay and returns the receipt. (POST /api/checkout)
func (ctrl *BookingController) CheckOut(c *gin.Context) {
	var payload CheckOutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	dep, err := ctrl.Registry.CheckOut(*payload.RoomNumber, payload.Days)
	if err != nil {
		countRejection(ctrl.Metrics, "check_out")
		respondRegistryError(c, err)
		return
	}

	mirrorRoom(ctrl.Store, dep.Room)
	appendStay(ctrl.Store, dep, payload.Days)
	if ctrl.Metrics != nil {
		ctrl.Metrics.CheckoutsTotal.Inc()
	}
	syncOccupancy(ctrl.Metrics, ctrl.Registry)

	c.JSON(http.StatusOK, dep.Receipt)
}

// StayHistory lists finished stays, newest first. (GET /api/history)
func (ctrl *BookingController) StayHistory(c *gin.Context) {
	if ctrl.Store == nil {
		utils.JSONError(c, http.StatusNotFound, "stay history is not enabled")
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			utils.JSONError(c, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = parsed
	}

	stays, err := ctrl.Store.Stays(limit)
	if err != nil {
		log.Printf("❌ store: load stays: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "could not load stay history")
		return
	}
	c.JSON(http.StatusOK, stays)
}
