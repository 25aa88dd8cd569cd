package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Harman090807/Hotel-management-app/registry"
)

type GuestController struct {
	Registry *registry.Registry
}

func NewGuestController(reg *registry.Registry) *GuestController {
	return &GuestController{Registry: reg}
}

// GetGuests lists every active stay. (GET /api/guests)
func (ctrl *GuestController) GetGuests(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.Registry.Guests())
}

// SearchCustomer matches guests by exact name, case-insensitively.
// A blank query returns an empty array. (GET /api/search_customer?name=X)
func (ctrl *GuestController) SearchCustomer(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.Registry.SearchByCustomerName(c.Query("name")))
}
