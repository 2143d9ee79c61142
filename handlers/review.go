package handlers

import (
	"net/http"

	"clinicbook/models"
	"clinicbook/services/review"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
)

func denialStatus(d review.Denial) int {
	if d == review.InvalidRating {
		return http.StatusBadRequest
	}
	return http.StatusForbidden
}

// SubmitDoctorReview accepts a doctor review if the reviewer passes the
// booking-history gate.
func (hb *HandlerBundle) SubmitDoctorReview(c *gin.Context) {
	var req models.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review request", err.Error())
		return
	}

	denial, err := hb.Reviews.SubmitDoctorReview(c.Request.Context(), req)
	if err != nil {
		utils.StoreError(c, err)
		return
	}
	if denial != review.Accepted {
		c.JSON(denialStatus(denial), gin.H{"denial": denial})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"accepted": true})
}

// SubmitSiteReview accepts general site feedback.
func (hb *HandlerBundle) SubmitSiteReview(c *gin.Context) {
	var req struct {
		ReviewerName string `json:"reviewer_name" binding:"required"`
		Rating       int    `json:"rating" binding:"required"`
		Comment      string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review request", err.Error())
		return
	}

	denial, err := hb.Reviews.SubmitSiteReview(c.Request.Context(), req.ReviewerName, req.Rating, req.Comment)
	if err != nil {
		utils.StoreError(c, err)
		return
	}
	if denial != review.Accepted {
		c.JSON(http.StatusBadRequest, gin.H{"denial": denial})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"accepted": true})
}
