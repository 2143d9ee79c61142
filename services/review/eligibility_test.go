package review

import (
	"context"
	"testing"
	"time"

	bookingRepo "clinicbook/database/repository/booking"
	reviewRepo "clinicbook/database/repository/review"
	"clinicbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReviews struct {
	reviewRepo.ReviewRepository
	hasReview   bool
	inserted    []*models.Review
	siteReviews []*models.SiteReview
}

func (s *stubReviews) HasReviewByPatient(ctx context.Context, doctorID int, name, phone string) (bool, error) {
	return s.hasReview, nil
}

func (s *stubReviews) InsertReview(ctx context.Context, r *models.Review) error {
	s.inserted = append(s.inserted, r)
	return nil
}

func (s *stubReviews) InsertSiteReview(ctx context.Context, r *models.SiteReview) error {
	s.siteReviews = append(s.siteReviews, r)
	return nil
}

type stubBookings struct {
	bookingRepo.BookingRepository
	latest *models.Booking
}

func (s *stubBookings) LatestActiveForPatient(ctx context.Context, doctorID int, name, phone string) (*models.Booking, error) {
	return s.latest, nil
}

// 2026-03-02 10:00, after the seeded 09:00 appointment has begun.
var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

func startedBooking() *models.Booking {
	return &models.Booking{
		ID: "bk-1", DoctorID: 7, PatientName: "Amina K", PatientPhone: "0912345678",
		Date: "2026-03-02", Slot: "09:00-09:20", Status: models.StatusPending,
	}
}

func validReview() models.ReviewRequest {
	return models.ReviewRequest{
		DoctorID:      7,
		ReviewerName:  "Amina K",
		ReviewerPhone: "0912345678",
		Rating:        5,
		Comment:       "  very thorough  ",
	}
}

func newService(reviews *stubReviews, bookings *stubBookings) *Service {
	return &Service{
		Reviews:  reviews,
		Bookings: bookings,
		Now:      func() time.Time { return testNow },
	}
}

func TestSubmitDoctorReviewAccepted(t *testing.T) {
	reviews := &stubReviews{}
	svc := newService(reviews, &stubBookings{latest: startedBooking()})

	denial, err := svc.SubmitDoctorReview(context.Background(), validReview())
	require.NoError(t, err)
	assert.Equal(t, Accepted, denial)

	require.Len(t, reviews.inserted, 1)
	stored := reviews.inserted[0]
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, 7, stored.DoctorID)
	assert.Equal(t, "very thorough", stored.Comment)
	assert.True(t, stored.Approved)
}

func TestSubmitDoctorReviewInvalidRating(t *testing.T) {
	svc := newService(&stubReviews{}, &stubBookings{latest: startedBooking()})

	for _, rating := range []int{0, 6, -1} {
		req := validReview()
		req.Rating = rating
		denial, err := svc.SubmitDoctorReview(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, InvalidRating, denial)
	}

	req := validReview()
	req.ReviewerPhone = "   "
	denial, err := svc.SubmitDoctorReview(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, InvalidRating, denial)
}

func TestSubmitDoctorReviewAlreadyReviewed(t *testing.T) {
	svc := newService(&stubReviews{hasReview: true}, &stubBookings{latest: startedBooking()})

	denial, err := svc.SubmitDoctorReview(context.Background(), validReview())
	require.NoError(t, err)
	assert.Equal(t, AlreadyReviewed, denial)
}

func TestSubmitDoctorReviewNoBooking(t *testing.T) {
	svc := newService(&stubReviews{}, &stubBookings{latest: nil})

	denial, err := svc.SubmitDoctorReview(context.Background(), validReview())
	require.NoError(t, err)
	assert.Equal(t, NoBookingFound, denial)
}

func TestSubmitDoctorReviewAppointmentNotStarted(t *testing.T) {
	upcoming := startedBooking()
	upcoming.Date = "2026-03-05"
	svc := newService(&stubReviews{}, &stubBookings{latest: upcoming})

	denial, err := svc.SubmitDoctorReview(context.Background(), validReview())
	require.NoError(t, err)
	assert.Equal(t, AppointmentNotStarted, denial)
}

func TestSubmitSiteReview(t *testing.T) {
	reviews := &stubReviews{}
	svc := newService(reviews, &stubBookings{})

	denial, err := svc.SubmitSiteReview(context.Background(), "Amina K", 4, "easy to use")
	require.NoError(t, err)
	assert.Equal(t, Accepted, denial)
	require.Len(t, reviews.siteReviews, 1)

	denial, err = svc.SubmitSiteReview(context.Background(), "", 4, "")
	require.NoError(t, err)
	assert.Equal(t, InvalidRating, denial)
}
