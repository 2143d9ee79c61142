package handlers

import (
	"net/http"

	"clinicbook/models"
	"clinicbook/services/booking"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// rejectionStatus maps a guard rejection to its HTTP status. Format problems
// are the client's fault; everything else is a lost race or policy conflict.
func rejectionStatus(kind booking.RejectionKind) int {
	if kind == booking.InvalidFormat {
		return http.StatusBadRequest
	}
	return http.StatusConflict
}

// CreateBooking runs a booking attempt through the guard.
func (hb *HandlerBundle) CreateBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}

	created, rej, err := hb.Guard.AttemptBooking(c.Request.Context(), req)
	if err != nil {
		utils.StoreError(c, err)
		return
	}
	if rej != nil {
		c.JSON(rejectionStatus(rej.Kind), gin.H{"rejection": rej})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

func (hb *HandlerBundle) transitionBooking(c *gin.Context, apply func(string) (booking.TransitionOutcome, error)) {
	id := c.Param("id")
	outcome, err := apply(id)
	if err != nil {
		utils.StoreError(c, err)
		return
	}
	switch outcome {
	case booking.TransitionApplied:
		c.JSON(http.StatusOK, gin.H{"booking_id": id, "applied": true})
	case booking.AlreadyInTerminalState:
		c.JSON(http.StatusOK, gin.H{"booking_id": id, "applied": false})
	default:
		utils.JSONError(c, http.StatusNotFound, "Booking not found", id)
	}
}

// CancelBooking moves a pending booking to Cancelled. Repeating the call is a
// harmless no-op.
func (hb *HandlerBundle) CancelBooking(c *gin.Context) {
	hb.transitionBooking(c, func(id string) (booking.TransitionOutcome, error) {
		return hb.Guard.Cancel(c.Request.Context(), id)
	})
}

// CompleteBooking moves a pending booking to Completed.
func (hb *HandlerBundle) CompleteBooking(c *gin.Context) {
	hb.transitionBooking(c, func(id string) (booking.TransitionOutcome, error) {
		return hb.Guard.Complete(c.Request.Context(), id)
	})
}

// BulkUpdateNotes applies the doctor dashboard's notes edits in one request.
// Each entry is applied independently; unknown booking IDs are counted, not
// fatal.
func (hb *HandlerBundle) BulkUpdateNotes(c *gin.Context) {
	var updates []models.NoteUpdate
	if err := c.ShouldBindJSON(&updates); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid notes payload", err.Error())
		return
	}

	applied, missing := 0, 0
	for _, u := range updates {
		if u.BookingID == "" {
			missing++
			continue
		}
		ok, err := hb.Guard.Bookings.UpdateNotes(c.Request.Context(), u.BookingID, u.Notes)
		if err != nil {
			utils.StoreError(c, err)
			return
		}
		if ok {
			applied++
		} else {
			missing++
		}
	}
	getLogger(c).Info("bulk notes update",
		zap.Int("applied", applied), zap.Int("missing", missing))
	c.JSON(http.StatusOK, gin.H{"applied": applied, "missing": missing})
}
