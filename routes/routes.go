package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"stayhaven/handlers"
	"stayhaven/middleware"
	"stayhaven/utils"
)

// RegisterApartmentRoutes registers the public browsing endpoints. No
// identity is required to price a stay or read the calendar.
func RegisterApartmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/apartments")
	{
		api.GET("", hb.ListApartments)
		api.GET("/slug/:slug", hb.GetApartmentBySlug)
		api.GET("/:id/quote", hb.GetQuote)
		api.GET("/:id/availability", hb.CheckAvailability)
		api.GET("/:id/calendar", hb.GetCalendar)
	}
}

// RegisterBookingRoutes registers the guest booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.GuestIdentityMiddleware())
		api.POST("", hb.RequestBooking)
		api.GET("", hb.MyBookings)
		api.GET("/:id", hb.GetBooking)
		api.POST("/:id/cancel", hb.CancelMyBooking)
	}
}

// RegisterAdminRoutes registers the owner-side endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.AdminIdentityMiddleware())

		admin.GET("/bookings", hb.ListBookings)
		admin.POST("/bookings/:id/confirm", hb.ConfirmBooking)
		admin.POST("/bookings/:id/cancel", hb.CancelBooking)
		admin.POST("/bookings/:id/complete", hb.CompleteBooking)
		admin.PUT("/bookings/:id/payment", hb.SetPaymentStatus)

		admin.PUT("/apartments/:id/calendar", hb.SetCalendarRange)
		admin.DELETE("/apartments/:id/calendar", hb.ClearCalendarRange)

		admin.GET("/apartments/:id/pricing-rules", hb.ListPricingRules)
		admin.POST("/apartments/:id/pricing-rules", hb.AddPricingRule)
		admin.DELETE("/apartments/:id/pricing-rules/:ruleId", hb.DeletePricingRule)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		if !status.Mongo || !status.Redis {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Guest-ID", "X-Admin-Key"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterApartmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
