package handlers

import (
	"errors"
	"net/http"

	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
)

// GetDoctorDashboard returns the doctor's dashboard aggregation.
func (hb *HandlerBundle) GetDoctorDashboard(c *gin.Context) {
	id, ok := doctorIDParam(c)
	if !ok {
		return
	}

	dash, err := hb.Stats.DoctorDashboard(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", "")
			return
		}
		utils.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, dash)
}

// GetHomeStats returns the landing-page counters and latest site reviews.
func (hb *HandlerBundle) GetHomeStats(c *gin.Context) {
	page, err := hb.Stats.Home(c.Request.Context(), hb.ReviewRepo)
	if err != nil {
		utils.StoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
