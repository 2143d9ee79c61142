// File: database/repository/review/interface.go
package reviewRepo

import (
	"context"

	"clinicbook/models"
)

// ReviewRepository defines data access for doctor reviews and site reviews.
type ReviewRepository interface {
	// InsertReview stores a doctor review.
	InsertReview(ctx context.Context, review *models.Review) error
	// HasReviewByPatient reports whether the patient (name OR phone match)
	// already reviewed the doctor, approved or not.
	HasReviewByPatient(ctx context.Context, doctorID int, name, phone string) (bool, error)
	// ListApprovedForDoctor returns the doctor's most recent approved reviews.
	ListApprovedForDoctor(ctx context.Context, doctorID, limit int) ([]models.Review, error)
	// RatingSummary aggregates the doctor's approved ratings.
	RatingSummary(ctx context.Context, doctorID int) (models.RatingSummary, error)
	// InsertSiteReview stores general site feedback.
	InsertSiteReview(ctx context.Context, review *models.SiteReview) error
	// ListApprovedSite returns the most recent approved site reviews.
	ListApprovedSite(ctx context.Context, limit int) ([]models.SiteReview, error)
	// CountApprovedSite returns the total number of approved site reviews.
	CountApprovedSite(ctx context.Context) (int64, error)
}
