package routes

import (
	"courtside/internal/handlers/admin"
	"courtside/internal/handlers/notify"
	"courtside/internal/handlers/public"
	"courtside/internal/middleware"
	"courtside/pkg/websocket"

	"github.com/gin-gonic/gin"
)

// SetupPublicRoutes mounts the customer-facing booking API.
func SetupPublicRoutes(r *gin.RouterGroup, courtHandler *public.CourtHandler, bookingHandler *public.BookingHandler, promoHandler *public.PromoHandler) {
	courts := r.Group("/courts")
	{
		courts.GET("", courtHandler.ListCourts)
		courts.GET("/:id", courtHandler.GetCourt)
	}

	bookings := r.Group("/bookings")
	{
		bookings.POST("", bookingHandler.CreateBooking)
	}

	promos := r.Group("/promos")
	{
		promos.POST("/evaluate", promoHandler.EvaluatePromo)
	}
}

// SetupAdminRoutes mounts the review console API. Everything except login
// sits behind the admin token middleware.
func SetupAdminRoutes(r *gin.RouterGroup, jwtSecret string, authHandler *admin.AuthHandler, bookingHandler *admin.BookingHandler, courtHandler *admin.CourtHandler, wsHandler *websocket.Handler) {
	r.POST("/login", authHandler.Login)

	protected := r.Group("")
	protected.Use(middleware.AdminRequired(jwtSecret))
	{
		protected.GET("/me", authHandler.Me)

		protected.GET("/bookings", bookingHandler.ListBookings)
		protected.GET("/bookings/:id", bookingHandler.GetBooking)
		protected.PATCH("/bookings/:id/status", bookingHandler.UpdateStatus)

		protected.GET("/courts", courtHandler.ListCourts)
		protected.POST("/courts", courtHandler.CreateCourt)
		protected.PATCH("/courts/:id/active", courtHandler.SetActive)

		protected.GET("/feed", wsHandler.HandleWebSocket)
	}
}

// SetupNotifyRoutes mounts the mail relay endpoints. POST only; the router's
// method-not-allowed handling answers everything else with a 405.
func SetupNotifyRoutes(r *gin.RouterGroup, resendHandler, emailjsHandler *notify.Handler) {
	r.POST("/booking", resendHandler.Relay)
	r.POST("/booking/template", emailjsHandler.Relay)
}
