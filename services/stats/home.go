package stats

import (
	"context"

	reviewRepo "clinicbook/database/repository/review"
	"clinicbook/models"
)

// HomePage is the landing-page payload: counters plus the latest site
// reviews.
type HomePage struct {
	Stats       models.HomeStats    `json:"stats"`
	SiteReviews []models.SiteReview `json:"site_reviews"`
}

const homeSiteReviewLimit = 3

// Home assembles the landing-page statistics block.
func (s *Service) Home(ctx context.Context, reviews reviewRepo.ReviewRepository) (*HomePage, error) {
	doctors, err := s.Doctors.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	specialties := make(map[string]struct{})
	for _, d := range doctors {
		if d.Specialization != "" {
			specialties[d.Specialization] = struct{}{}
		}
	}

	total, err := s.Bookings.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	active, err := s.Bookings.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	page := &HomePage{
		Stats: models.HomeStats{
			DoctorCount:    len(doctors),
			SpecialtyCount: len(specialties),
			TotalBookings:  int(total),
			ActiveBookings: int(active),
		},
	}
	if reviews != nil {
		site, err := reviews.ListApprovedSite(ctx, homeSiteReviewLimit)
		if err != nil {
			return nil, err
		}
		reviewTotal, err := reviews.CountApprovedSite(ctx)
		if err != nil {
			return nil, err
		}
		page.SiteReviews = site
		page.Stats.ReviewCount = int(reviewTotal)
	}
	return page, nil
}
