package stats

import (
	"context"
	"testing"
	"time"

	reviewRepo "clinicbook/database/repository/review"
	"clinicbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReviews struct {
	reviewRepo.ReviewRepository
	site []models.SiteReview
}

func (s *stubReviews) ListApprovedSite(ctx context.Context, limit int) ([]models.SiteReview, error) {
	if len(s.site) > limit {
		return s.site[:limit], nil
	}
	return s.site, nil
}

func (s *stubReviews) CountApprovedSite(ctx context.Context) (int64, error) {
	return int64(len(s.site)), nil
}

func TestHomeStats(t *testing.T) {
	doctors := []models.Doctor{
		{ID: 1, Specialization: "Cardiology"},
		{ID: 2, Specialization: "Cardiology"},
		{ID: 3, Specialization: "Dermatology"},
		{ID: 4}, // no specialization listed
	}
	svc := &Service{
		Doctors:  &stubDoctors{doctors: doctors},
		Bookings: &stubBookings{total: 40, active: 25},
		Now:      func() time.Time { return testNow },
	}
	reviews := &stubReviews{site: []models.SiteReview{
		{ID: "r1"}, {ID: "r2"}, {ID: "r3"}, {ID: "r4"},
	}}

	page, err := svc.Home(context.Background(), reviews)
	require.NoError(t, err)

	assert.Equal(t, 4, page.Stats.DoctorCount)
	assert.Equal(t, 2, page.Stats.SpecialtyCount)
	assert.Equal(t, 40, page.Stats.TotalBookings)
	assert.Equal(t, 25, page.Stats.ActiveBookings)
	assert.Len(t, page.SiteReviews, 3)
	assert.Equal(t, 4, page.Stats.ReviewCount, "counter reflects all reviews, not just the ones shown")
}

func TestHomeWithoutReviewRepo(t *testing.T) {
	svc := &Service{
		Doctors:  &stubDoctors{},
		Bookings: &stubBookings{},
	}
	page, err := svc.Home(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, page.SiteReviews)
}
