package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/Harman090807/Hotel-management-app/metrics"
	"github.com/Harman090807/Hotel-management-app/models"
	"github.com/Harman090807/Hotel-management-app/registry"
	"github.com/Harman090807/Hotel-management-app/store"
)

// ---------------------------
// Flash messages
// ---------------------------

// FlashMessage is one banner for the next page render. Category is one of
// success, warning, danger and picks the banner colour.
type FlashMessage struct {
	Category string
	Message  string
}

// flash queues a message for the next request. Stored as "category|message"
// so the cookie store only ever has to gob-encode plain strings.
func flash(c *gin.Context, category, message string) {
	session := sessions.Default(c)
	session.AddFlash(category + "|" + message)
	if err := session.Save(); err != nil {
		log.Printf("⚠️ session: save flash: %v", err)
	}
}

// takeFlashes drains the queued messages, clearing them from the session.
func takeFlashes(c *gin.Context) []FlashMessage {
	session := sessions.Default(c)
	raw := session.Flashes()
	if len(raw) > 0 {
		if err := session.Save(); err != nil {
			log.Printf("⚠️ session: clear flashes: %v", err)
		}
	}

	out := make([]FlashMessage, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			continue
		}
		category, message, found := strings.Cut(s, "|")
		if !found {
			category, message = "success", s
		}
		out = append(out, FlashMessage{Category: category, Message: message})
	}
	return out
}

// ---------------------------
// Controller
// ---------------------------

// UIController serves the server-rendered pages. Mutations run through the
// same registry and store paths as the JSON API; only the presentation
// differs (flash + redirect instead of status codes).
type UIController struct {
	Registry *registry.Registry
	Store    *store.Store
	Metrics  *metrics.Metrics
}

func NewUIController(reg *registry.Registry, st *store.Store, m *metrics.Metrics) *UIController {
	return &UIController{Registry: reg, Store: st, Metrics: m}
}

// Index renders the landing page. (GET /)
func (ctrl *UIController) Index(c *gin.Context) {
	total, occupied := ctrl.Registry.Stats()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Total":    total,
		"Occupied": occupied,
	})
}

// AvailableRooms renders the landing page with the free-rooms table. (GET /available)
func (ctrl *UIController) AvailableRooms(c *gin.Context) {
	total, occupied := ctrl.Registry.Stats()
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Total":         total,
		"Occupied":      occupied,
		"ShowAvailable": true,
		"Available":     ctrl.Registry.Available(),
	})
}

// ManageRoomsPage renders the room table and the add-room form. (GET /manage-rooms)
func (ctrl *UIController) ManageRoomsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "manage_rooms.html", gin.H{
		"Flashes": takeFlashes(c),
		"Rooms":   ctrl.Registry.Rooms(),
	})
}

// AddRoom handles the add-room form. (POST /manage-rooms)
func (ctrl *UIController) AddRoom(c *gin.Context) {
	number, err := strconv.Atoi(strings.TrimSpace(c.PostForm("room_number")))
	if err != nil {
		flash(c, "danger", "Room number must be an integer")
		c.Redirect(http.StatusFound, "/manage-rooms")
		return
	}

	rent := 0
	if raw := strings.TrimSpace(c.PostForm("rent")); raw != "" {
		rent, err = strconv.Atoi(raw)
		if err != nil {
			flash(c, "danger", "Rent must be an integer")
			c.Redirect(http.StatusFound, "/manage-rooms")
			return
		}
	}

	ac, acErr := models.ParseACOrDefault(c.PostForm("ac"))
	comfort, comfortErr := models.ParseComfortOrDefault(c.PostForm("comfort"))
	size, sizeErr := models.ParseSizeOrDefault(c.PostForm("size"))
	if acErr != nil || comfortErr != nil || sizeErr != nil {
		flash(c, "danger", "Invalid room attributes")
		c.Redirect(http.StatusFound, "/manage-rooms")
		return
	}

	room, err := ctrl.Registry.AddRoom(number, ac, comfort, size, rent)
	if err != nil {
		countRejection(ctrl.Metrics, "add_room")
		switch {
		case errors.Is(err, registry.ErrDuplicateRoom):
			flash(c, "warning", "Room number already exists. Choose a unique number.")
		default:
			flash(c, "danger", err.Error())
		}
		c.Redirect(http.StatusFound, "/manage-rooms")
		return
	}

	mirrorRoom(ctrl.Store, room)
	syncOccupancy(ctrl.Metrics, ctrl.Registry)
	flash(c, "success", fmt.Sprintf("Room %d added successfully", room.RoomNumber))
	c.Redirect(http.StatusFound, "/manage-rooms")
}

// CheckInPage renders the check-in form. (GET /checkin)
func (ctrl *UIController) CheckInPage(c *gin.Context) {
	c.HTML(http.StatusOK, "checkin.html", gin.H{
		"Flashes": takeFlashes(c),
		"Rooms":   ctrl.Registry.Available(),
	})
}

// CheckIn handles the check-in form. (POST /checkin)
func (ctrl *UIController) CheckIn(c *gin.Context) {
	number, err := strconv.Atoi(strings.TrimSpace(c.PostForm("room_number")))
	if err != nil {
		flash(c, "danger", "Invalid room number")
		c.Redirect(http.StatusFound, "/checkin")
		return
	}

	bookingID, err := strconv.ParseInt(strings.TrimSpace(c.PostForm("booking_id")), 10, 64)
	if err != nil {
		flash(c, "danger", "Booking ID must be an integer")
		c.Redirect(http.StatusFound, "/checkin")
		return
	}

	// A blank or malformed advance counts as nothing paid up front.
	advance, err := strconv.ParseFloat(strings.TrimSpace(c.PostForm("payment_advance")), 64)
	if err != nil {
		advance = 0
	}

	guest := models.Customer{
		Name:           c.PostForm("name"),
		Address:        c.PostForm("address"),
		Phone:          c.PostForm("phone"),
		FromDate:       c.PostForm("from_date"),
		ToDate:         c.PostForm("to_date"),
		PaymentAdvance: advance,
		BookingID:      bookingID,
	}

	room, err := ctrl.Registry.CheckIn(number, guest)
	if err != nil {
		countRejection(ctrl.Metrics, "check_in")
		switch {
		case errors.Is(err, registry.ErrRoomNotFound):
			flash(c, "warning", "Room not found")
		case errors.Is(err, registry.ErrRoomOccupied):
			flash(c, "warning", "Room is already booked")
		case errors.Is(err, registry.ErrDuplicateBookingID):
			flash(c, "warning", "Booking ID already taken. Use a different ID")
		default:
			flash(c, "danger", err.Error())
		}
		c.Redirect(http.StatusFound, "/checkin")
		return
	}

	mirrorRoom(ctrl.Store, room)
	if ctrl.Metrics != nil {
		ctrl.Metrics.CheckinsTotal.Inc()
	}
	syncOccupancy(ctrl.Metrics, ctrl.Registry)

	flash(c, "success", fmt.Sprintf("%s checked into room %d", room.Cust.Name, room.RoomNumber))
	c.Redirect(http.StatusFound, "/checkin")
}

// CheckOutPage renders the checkout form. (GET /checkout)
func (ctrl *UIController) CheckOutPage(c *gin.Context) {
	c.HTML(http.StatusOK, "checkout.html", gin.H{
		"Flashes": takeFlashes(c),
		"Rooms":   ctrl.Registry.Occupied(),
	})
}

// CheckOut handles the checkout form and renders the guests page with the
// receipt on success. (POST /checkout)
func (ctrl *UIController) CheckOut(c *gin.Context) {
	number, err := strconv.Atoi(strings.TrimSpace(c.PostForm("room_number")))
	if err != nil {
		flash(c, "danger", "Invalid room number")
		c.Redirect(http.StatusFound, "/checkout")
		return
	}

	days, err := strconv.Atoi(strings.TrimSpace(c.PostForm("days")))
	if err != nil {
		flash(c, "danger", "Number of days must be an integer")
		c.Redirect(http.StatusFound, "/checkout")
		return
	}

	dep, err := ctrl.Registry.CheckOut(number, days)
	if err != nil {
		countRejection(ctrl.Metrics, "check_out")
		flash(c, "warning", "Room is not currently checked-in")
		c.Redirect(http.StatusFound, "/checkout")
		return
	}

	mirrorRoom(ctrl.Store, dep.Room)
	appendStay(ctrl.Store, dep, days)
	if ctrl.Metrics != nil {
		ctrl.Metrics.CheckoutsTotal.Inc()
	}
	syncOccupancy(ctrl.Metrics, ctrl.Registry)

	c.HTML(http.StatusOK, "guests.html", gin.H{
		"Guests":  ctrl.Registry.Guests(),
		"Receipt": dep.Receipt,
	})
}

// GuestsPage lists the rooms with active stays. (GET /guests)
func (ctrl *UIController) GuestsPage(c *gin.Context) {
	c.HTML(http.StatusOK, "guests.html", gin.H{
		"Guests": ctrl.Registry.Guests(),
	})
}
