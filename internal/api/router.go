package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"

	"hotel-frontoffice-backend/config"
	"hotel-frontoffice-backend/internal/mw"
)

// NewRouter creates and configures a new Gin router.
func NewRouter(h *Handler, cfg config.ServerConfig) *gin.Engine {
	RegisterValidators()
	r := gin.Default()

	limiter := mw.NewIPRateLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateLimitBurst, 10*time.Minute)
	cacheStore := cache.New(cfg.CacheTTL, 2*cfg.CacheTTL)
	caching := mw.Cache(cacheStore, cfg.CacheTTL)

	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.Use(mw.RateLimiter(limiter))
	{
		api.POST("/auth/login", h.Login)
		api.GET("/vapid_public_key", h.GetVAPIDPublicKey)
	}

	secured := api.Group("")
	secured.Use(mw.Auth(h.auth), caching)
	{
		secured.GET("/rooms", h.ListRooms)
		secured.POST("/rooms", h.CreateRoom)
		secured.GET("/rooms/available", h.AvailableRooms)
		secured.GET("/rooms/:id", h.GetRoom)
		secured.PUT("/rooms/:id", h.UpdateRoom)
		secured.DELETE("/rooms/:id", h.DeleteRoom)
		secured.PATCH("/rooms/:id/status", h.SetRoomStatus)

		secured.POST("/recommendations", h.Recommend)
		secured.GET("/guests/:email/preferences", h.GetGuestPreferences)
		secured.PUT("/guests/:email/preferences", h.PutGuestPreferences)

		secured.GET("/bookings", h.ListBookings)
		secured.POST("/bookings", h.CreateBooking)
		secured.GET("/bookings/:id", h.GetBooking)
		secured.PATCH("/bookings/:id", h.UpdateBooking)
		secured.POST("/bookings/:id/cancel", h.CancelBooking)
		secured.POST("/bookings/:id/check-in", h.CheckIn)
		secured.POST("/bookings/:id/check-out", h.CheckOut)
		secured.GET("/bookings/:id/invoice", h.Invoice)

		secured.GET("/housekeeping/tasks", h.ListTasks)
		secured.POST("/housekeeping/tasks", h.CreateTask)
		secured.PATCH("/housekeeping/tasks/:id", h.UpdateTask)

		secured.GET("/inventory/items", h.ListItems)
		secured.POST("/inventory/items", h.CreateItem)
		secured.GET("/inventory/items/:id/movements", h.ListMovements)
		secured.POST("/inventory/items/:id/movements", h.RecordMovement)

		secured.GET("/menu", h.ListMenu)
		secured.POST("/menu", h.CreateMenuItem)
		secured.PUT("/menu/:id", h.UpdateMenuItem)
		secured.GET("/orders", h.ListOrders)
		secured.POST("/orders", h.CreateOrder)
		secured.POST("/orders/:id/pay", h.PayOrder)
		secured.POST("/orders/:id/cancel", h.CancelOrder)

		secured.GET("/accounts/entries", h.ListEntries)
		secured.POST("/accounts/entries", h.CreateEntry)
		secured.GET("/accounts/summary", h.AccountSummary)

		secured.GET("/reports/occupancy", h.OccupancyReport)
		secured.GET("/reports/revenue", h.RevenueReport)

		secured.GET("/subscriptions", h.GetSubscription)
		secured.PUT("/subscriptions", h.PutSubscription)
		secured.DELETE("/subscriptions", h.DeleteSubscription)
	}

	return r
}
