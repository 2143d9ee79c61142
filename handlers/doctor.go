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

const doctorDetailReviewLimit = 10

// ListDoctors returns the doctor directory. An optional ?plc= query narrows
// the list to one clinic.
func (hb *HandlerBundle) ListDoctors(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		doctors []models.Doctor
		err     error
	)
	if plc := c.Query("plc"); plc != "" {
		doctors, err = hb.DoctorRepo.GetByPLC(ctx, plc)
	} else {
		doctors, err = hb.DoctorRepo.GetAll(ctx)
	}
	if err != nil {
		utils.StoreError(c, err)
		return
	}

	for i := range doctors {
		summary, err := hb.ReviewRepo.RatingSummary(ctx, doctors[i].ID)
		if err != nil {
			getLogger(c).Warn("rating summary failed",
				zap.Int("doctorID", doctors[i].ID), zap.Error(err))
			continue
		}
		doctors[i].AverageRating = summary.Average
		doctors[i].ReviewCount = summary.Count
	}
	c.JSON(http.StatusOK, gin.H{"doctors": doctors})
}

// GetDoctor returns one doctor's profile with rating summary and recent
// reviews.
func (hb *HandlerBundle) GetDoctor(c *gin.Context) {
	id, ok := doctorIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	doctor, err := hb.DoctorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", "")
			return
		}
		utils.StoreError(c, err)
		return
	}

	summary, err := hb.ReviewRepo.RatingSummary(ctx, id)
	if err != nil {
		utils.StoreError(c, err)
		return
	}
	doctor.AverageRating = summary.Average
	doctor.ReviewCount = summary.Count

	reviews, err := hb.ReviewRepo.ListApprovedForDoctor(ctx, id, doctorDetailReviewLimit)
	if err != nil {
		utils.StoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"doctor": doctor, "reviews": reviews})
}
