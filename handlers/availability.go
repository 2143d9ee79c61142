package handlers

import (
	"errors"
	"net/http"
	"strconv"

	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/services/schedule"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func doctorIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "Invalid doctor id", c.Param("id"))
		return 0, false
	}
	return id, true
}

// GetAvailableSlots returns the bookable slots for a doctor on a date.
// Unknown doctors and empty days both come back as an empty list; the
// booking page treats them the same.
func (hb *HandlerBundle) GetAvailableSlots(c *gin.Context) {
	id, ok := doctorIDParam(c)
	if !ok {
		return
	}
	date := c.Param("date")

	slots, err := hb.Engine.AvailableSlots(c.Request.Context(), id, date)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"doctor_id": id, "date": date, "slots": []string{}})
			return
		}
		if schedule.IsInvalidDate(err) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid date", date)
			return
		}
		utils.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor_id": id, "date": date, "slots": slots})
}

// GetNearestAvailable returns the soonest bookable date and slot for a doctor.
func (hb *HandlerBundle) GetNearestAvailable(c *gin.Context) {
	id, ok := doctorIDParam(c)
	if !ok {
		return
	}

	nearest, err := hb.Engine.NearestAvailable(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, schedule.ErrNoUpcomingSlots) {
			c.JSON(http.StatusOK, gin.H{"doctor_id": id, "available": false})
			return
		}
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", "")
			return
		}
		utils.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"doctor_id": id,
		"available": true,
		"date":      nearest.Date,
		"slot":      nearest.Slot,
	})
}

// GetBookableDays returns the month → day-numbers calendar the date picker
// highlights.
func (hb *HandlerBundle) GetBookableDays(c *gin.Context) {
	id, ok := doctorIDParam(c)
	if !ok {
		return
	}

	days, err := hb.Engine.BookableDays(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", "")
			return
		}
		getLogger(c).Error("bookable days lookup failed", zap.Int("doctorID", id), zap.Error(err))
		utils.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"doctor_id": id, "bookable_days": days})
}
