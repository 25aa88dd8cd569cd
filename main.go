package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Harman090807/Hotel-management-app/config"
	"github.com/Harman090807/Hotel-management-app/controllers"
	"github.com/Harman090807/Hotel-management-app/metrics"
	"github.com/Harman090807/Hotel-management-app/models"
	"github.com/Harman090807/Hotel-management-app/registry"
	"github.com/Harman090807/Hotel-management-app/routes"
	"github.com/Harman090807/Hotel-management-app/services"
	"github.com/Harman090807/Hotel-management-app/store"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("❌ Config load failed: %v", err)
	}

	reg := registry.New()

	// The store is optional: without a DSN the registry lives only for this
	// process, which is the documented single-process contract.
	var st *store.Store
	if cfg.Database.DSN != "" {
		st, err = store.Open(cfg.Database.DSN)
		if err != nil {
			log.Fatalf("❌ Store open failed: %v", err)
		}
		rooms, err := st.LoadRooms()
		if err != nil {
			log.Fatalf("❌ Store load failed: %v", err)
		}
		if len(rooms) > 0 {
			if err := reg.Restore(rooms); err != nil {
				log.Fatalf("❌ Restoring persisted rooms: %v", err)
			}
			log.Printf("✅ Restored %d rooms from the store", len(rooms))
		}
	} else {
		log.Println("ℹ️  No database DSN configured; room state lives in memory only")
	}

	seedRooms(cfg, reg, st)

	promRegistry := prometheus.NewRegistry()
	m := metrics.New(promRegistry)
	m.SetOccupancy(reg.Stats())

	exportService := services.NewExportService()

	roomController := controllers.NewRoomController(reg, st, m)
	bookingController := controllers.NewBookingController(reg, st, m)
	guestController := controllers.NewGuestController(reg)
	exportController := controllers.NewExportController(reg, st, exportService)
	uiController := controllers.NewUIController(reg, st, m)

	router := routes.SetupRouter(cfg, roomController, bookingController, guestController, exportController, uiController, m, promRegistry)

	addr := ":" + cfg.Server.Port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	if st != nil {
		if err := st.Close(); err != nil {
			log.Printf("⚠️  Closing store: %v", err)
		}
	}

	log.Println("✅ Server stopped gracefully")
}

// seedRooms feeds the configured room list through the normal AddRoom path.
// Rooms already present (restored from the store, or listed twice) are
// skipped so seeding stays idempotent across restarts.
func seedRooms(cfg *config.Config, reg *registry.Registry, st *store.Store) {
	for _, seed := range cfg.Rooms {
		ac, err := models.ParseACOrDefault(seed.AC)
		if err != nil {
			log.Printf("⚠️  Seed room %d skipped: %v", seed.Number, err)
			continue
		}
		comfort, err := models.ParseComfortOrDefault(seed.Comfort)
		if err != nil {
			log.Printf("⚠️  Seed room %d skipped: %v", seed.Number, err)
			continue
		}
		size, err := models.ParseSizeOrDefault(seed.Size)
		if err != nil {
			log.Printf("⚠️  Seed room %d skipped: %v", seed.Number, err)
			continue
		}

		room, err := reg.AddRoom(seed.Number, ac, comfort, size, seed.Rent)
		if err != nil {
			if errors.Is(err, registry.ErrDuplicateRoom) {
				continue
			}
			log.Printf("⚠️  Seed room %d skipped: %v", seed.Number, err)
			continue
		}

		if st != nil {
			if err := st.SaveRoom(room); err != nil {
				log.Printf("⚠️ store: mirror seeded room %d: %v", room.RoomNumber, err)
			}
		}
	}
	if len(cfg.Rooms) > 0 {
		total, _ := reg.Stats()
		log.Printf("✅ Seeded room list applied; registry now holds %d rooms", total)
	}
}
