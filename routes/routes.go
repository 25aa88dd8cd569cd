package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Harman090807/Hotel-management-app/config"
	"github.com/Harman090807/Hotel-management-app/controllers"
	"github.com/Harman090807/Hotel-management-app/metrics"
	"github.com/Harman090807/Hotel-management-app/middleware"
	"github.com/Harman090807/Hotel-management-app/templates"
)

// SetupRouter wires the middleware stack, the JSON API, the server-rendered
// pages and the operational endpoints onto one engine.
func SetupRouter(
	cfg *config.Config,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	gc *controllers.GuestController,
	ec *controllers.ExportController,
	ui *controllers.UIController,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())
	if cfg.Metrics.Enabled && m != nil {
		r.Use(middleware.Metrics(m))
	}

	sessionStore := cookie.NewStore([]byte(cfg.Server.SessionSecret))
	r.Use(sessions.Sessions("hotel_session", sessionStore))

	r.SetHTMLTemplate(templates.Parse())

	origins := cfg.Server.CORSOrigins
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Metrics.Enabled && gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	api := r.Group("/api")
	{
		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)

			// static routes before /:number
			rooms.GET("/available", rc.GetAvailableRooms)
			rooms.GET("/occupied", rc.GetOccupiedRooms)

			rooms.GET("/:number", rc.GetRoom)
		}

		api.POST("/checkin", bc.CheckIn)
		api.POST("/checkout", bc.CheckOut)
		api.GET("/history", bc.StayHistory)

		api.GET("/guests", gc.GetGuests)
		api.GET("/search_customer", gc.SearchCustomer)

		exports := api.Group("/export")
		{
			exports.GET("/guests", ec.ExportGuests)
			exports.GET("/history", ec.ExportHistory)
		}
	}

	r.GET("/", ui.Index)
	r.GET("/available", ui.AvailableRooms)
	r.GET("/manage-rooms", ui.ManageRoomsPage)
	r.POST("/manage-rooms", ui.AddRoom)
	r.GET("/checkin", ui.CheckInPage)
	r.POST("/checkin", ui.CheckIn)
	r.GET("/checkout", ui.CheckOutPage)
	r.POST("/checkout", ui.CheckOut)
	r.GET("/guests", ui.GuestsPage)

	return r
}
