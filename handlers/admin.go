package handlers

import (
	"errors"
	"net/http"

	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateDoctor registers a new doctor.
func (hb *HandlerBundle) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid doctor payload", err.Error())
		return
	}
	if doctor.ID <= 0 || doctor.Name == "" {
		utils.JSONError(c, http.StatusBadRequest, "Doctor id and name are required", "")
		return
	}

	exists, err := hb.DoctorRepo.Exists(c.Request.Context(), doctor.ID)
	if err != nil {
		utils.StoreError(c, err)
		return
	}
	if exists {
		utils.JSONError(c, http.StatusConflict, "Doctor id already registered", "")
		return
	}

	if err := hb.DoctorRepo.Create(c.Request.Context(), &doctor); err != nil {
		utils.StoreError(c, err)
		return
	}
	getLogger(c).Info("doctor registered", zap.Int("doctorID", doctor.ID))
	c.JSON(http.StatusCreated, doctor)
}

// UpdateDoctorAvailability replaces a doctor's weekly template. The bookable
// days calendar cache is invalidated so the change shows up immediately;
// booking-path reads never go through the cache in the first place.
func (hb *HandlerBundle) UpdateDoctorAvailability(c *gin.Context) {
	id, ok := doctorIDParam(c)
	if !ok {
		return
	}
	var template models.WeeklyTemplate
	if err := c.ShouldBindJSON(&template); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid availability payload", err.Error())
		return
	}

	if err := hb.DoctorRepo.UpdateAvailability(c.Request.Context(), id, template); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", "")
			return
		}
		utils.StoreError(c, err)
		return
	}

	if err := hb.Engine.InvalidateCalendar(c.Request.Context(), id); err != nil {
		getLogger(c).Warn("failed to invalidate calendar cache",
			zap.Int("doctorID", id), zap.Error(err))
	}
	c.JSON(http.StatusOK, gin.H{"doctor_id": id, "updated": true})
}
