package handlers

import (
	"net/http"
	"strings"

	"clinicbook/utils"

	"github.com/gin-gonic/gin"
)

// GetPatientBookings lists a patient's active bookings. The identifier is a
// name or a phone number; matching is inclusive-or on both fields.
func (hb *HandlerBundle) GetPatientBookings(c *gin.Context) {
	identifier := strings.TrimSpace(c.Param("identifier"))
	if identifier == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing patient identifier", "")
		return
	}

	bookings, err := hb.Stats.PatientBookings(c.Request.Context(), identifier)
	if err != nil {
		utils.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
