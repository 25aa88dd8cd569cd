package controllers

import (
	"log"
	"net/http"
	"strconv"

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

// CreateRoomRequest carries the new room. ac/comfort/size are single-letter
// codes and fall back to their defaults (N, N, S) when blank.
type CreateRoomRequest struct {
	RoomNumber *int   `json:"room_number" binding:"required"`
	AC         string `json:"ac"`
	Comfort    string `json:"comfort"`
	Size       string `json:"size"`
	Rent       int    `json:"rent"`
}

// ---------------------------
// Controller
// ---------------------------

type RoomController struct {
	Registry *registry.Registry
	Store    *store.Store
	Metrics  *metrics.Metrics
}

func NewRoomController(reg *registry.Registry, st *store.Store, m *metrics.Metrics) *RoomController {
	return &RoomController{Registry: reg, Store: st, Metrics: m}
}

// GetRooms returns every room as a bare JSON array. (GET /api/rooms)
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.Registry.Rooms())
}

// GetAvailableRooms returns only the rooms without a guest. (GET /api/rooms/available)
func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.Registry.Available())
}

// GetOccupiedRooms returns only the rooms with an active stay. (GET /api/rooms/occupied)
func (ctrl *RoomController) GetOccupiedRooms(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.Registry.Occupied())
}

// GetRoom looks one room up by number. (GET /api/rooms/:number)
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "room not found")
		return
	}

	room, ok := ctrl.Registry.FindByNumber(number)
	if !ok {
		utils.JSONError(c, http.StatusNotFound, "room not found")
		return
	}
	c.JSON(http.StatusOK, room)
}

// CreateRoom registers a new available room. (POST /api/rooms)
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var payload CreateRoomRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request payload",
			"details": err.Error(),
		})
		return
	}

	ac, err := models.ParseACOrDefault(payload.AC)
	if err != nil {
		countRejection(ctrl.Metrics, "add_room")
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	comfort, err := models.ParseComfortOrDefault(payload.Comfort)
	if err != nil {
		countRejection(ctrl.Metrics, "add_room")
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	size, err := models.ParseSizeOrDefault(payload.Size)
	if err != nil {
		countRejection(ctrl.Metrics, "add_room")
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	room, err := ctrl.Registry.AddRoom(*payload.RoomNumber, ac, comfort, size, payload.Rent)
	if err != nil {
		countRejection(ctrl.Metrics, "add_room")
		respondRegistryError(c, err)
		return
	}

	mirrorRoom(ctrl.Store, room)
	syncOccupancy(ctrl.Metrics, ctrl.Registry)
	c.JSON(http.StatusCreated, room)
}
