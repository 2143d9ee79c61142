package review

import (
	"context"
	"strings"
	"time"

	bookingRepo "clinicbook/database/repository/booking"
	reviewRepo "clinicbook/database/repository/review"
	"clinicbook/models"
	"clinicbook/services/schedule"
	"clinicbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Denial identifies why a review submission was turned down. Like booking
// rejections these are normal outcomes, not errors.
type Denial string

const (
	// Accepted is the zero denial: the review was stored.
	Accepted Denial = ""
	// InvalidRating: rating outside 1..5 or identity fields missing.
	InvalidRating Denial = "invalid_rating"
	// AlreadyReviewed: this name or phone already reviewed the doctor.
	AlreadyReviewed Denial = "already_reviewed"
	// NoBookingFound: the reviewer holds no active booking with the doctor.
	NoBookingFound Denial = "no_booking_found"
	// AppointmentNotStarted: the reviewer's latest appointment has not
	// begun yet.
	AppointmentNotStarted Denial = "appointment_not_started"
)

// Service gates doctor reviews on booking history: one review per patient
// per doctor, and only after the appointment has started.
type Service struct {
	Reviews  reviewRepo.ReviewRepository
	Bookings bookingRepo.BookingRepository

	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SubmitDoctorReview runs the eligibility checks in order and stores the
// review when they all pass. Identity matching is inclusive-or on name and
// phone, mirroring the booking guard's duplicate rule.
func (s *Service) SubmitDoctorReview(ctx context.Context, req models.ReviewRequest) (Denial, error) {
	req.ReviewerName = strings.TrimSpace(req.ReviewerName)
	req.ReviewerPhone = strings.TrimSpace(req.ReviewerPhone)
	if req.DoctorID <= 0 || req.ReviewerName == "" || req.ReviewerPhone == "" ||
		req.Rating < 1 || req.Rating > 5 {
		return InvalidRating, nil
	}

	reviewed, err := s.Reviews.HasReviewByPatient(ctx, req.DoctorID, req.ReviewerName, req.ReviewerPhone)
	if err != nil {
		return Accepted, err
	}
	if reviewed {
		return AlreadyReviewed, nil
	}

	latest, err := s.Bookings.LatestActiveForPatient(ctx, req.DoctorID, req.ReviewerName, req.ReviewerPhone)
	if err != nil {
		return Accepted, err
	}
	if latest == nil {
		return NoBookingFound, nil
	}

	now := s.now()
	start, err := schedule.AppointmentStart(latest.Date, latest.Slot, now.Location())
	if err != nil {
		// A booking with an unparseable slot cannot anchor the time check.
		return AppointmentNotStarted, nil
	}
	if now.Before(start) {
		return AppointmentNotStarted, nil
	}

	review := &models.Review{
		ID:            uuid.New().String(),
		DoctorID:      req.DoctorID,
		ReviewerName:  req.ReviewerName,
		ReviewerPhone: req.ReviewerPhone,
		Rating:        req.Rating,
		Comment:       strings.TrimSpace(req.Comment),
		Approved:      true,
		CreatedAt:     now,
	}
	if err := s.Reviews.InsertReview(ctx, review); err != nil {
		return Accepted, err
	}
	utils.GetLogger().Info("doctor review accepted",
		zap.Int("doctorID", req.DoctorID), zap.Int("rating", req.Rating))
	return Accepted, nil
}

// SubmitSiteReview stores general site feedback after basic validation.
func (s *Service) SubmitSiteReview(ctx context.Context, name string, rating int, comment string) (Denial, error) {
	name = strings.TrimSpace(name)
	if name == "" || rating < 1 || rating > 5 {
		return InvalidRating, nil
	}
	review := &models.SiteReview{
		ID:           uuid.New().String(),
		ReviewerName: name,
		Rating:       rating,
		Comment:      strings.TrimSpace(comment),
		Approved:     true,
		CreatedAt:    s.now(),
	}
	if err := s.Reviews.InsertSiteReview(ctx, review); err != nil {
		return Accepted, err
	}
	return Accepted, nil
}
