package routes

import (
	"clinicbook/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking guard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	booking := r.Group("/api/bookings")
	{
		booking.POST("", hb.CreateBooking)
		booking.POST("/:id/cancel", hb.CancelBooking)
		booking.POST("/:id/complete", hb.CompleteBooking)
		booking.PUT("/notes", hb.BulkUpdateNotes)
	}
}
