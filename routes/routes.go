package routes

import (
	"net/http"
	"time"

	"clinicbook/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterDoctorRoutes registers doctor directory and scheduling endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.GET("", hb.ListDoctors)
		api.GET("/:id", hb.GetDoctor)
		api.GET("/:id/slots/:date", hb.GetAvailableSlots)
		api.GET("/:id/nearest-available", hb.GetNearestAvailable)
		api.GET("/:id/bookable-days", hb.GetBookableDays)
		api.GET("/:id/dashboard", hb.GetDoctorDashboard)
		api.POST("/:id/reviews", hb.SubmitDoctorReview)
		api.POST("", hb.CreateDoctor)
		api.PUT("/:id/availability", hb.UpdateDoctorAvailability)
	}
}

// RegisterPatientRoutes registers patient-facing lookup endpoints.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.GET("/:identifier/bookings", hb.GetPatientBookings)
	}
}

// RegisterHomeRoutes registers landing-page endpoints.
func RegisterHomeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/home")
	{
		api.GET("/stats", hb.GetHomeStats)
		api.POST("/reviews", hb.SubmitSiteReview)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Clinicbook"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterDoctorRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterHomeRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterBookingRoutes(r, hb)
}
