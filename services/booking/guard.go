package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "clinicbook/database/repository/booking"
	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"
	"clinicbook/services/schedule"
	"clinicbook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Guard arbitrates booking attempts. Validation is ordered and
// short-circuiting: format, then template membership against a re-fetched
// schedule, then the duplicate-patient policy, and finally the insert itself,
// which the store's partial unique index turns into the authoritative
// collision check. The window between a client reading availability and
// submitting is unbounded, so losing that race is an expected outcome.
type Guard struct {
	Doctors   doctorRepo.DoctorRepository
	Bookings  bookingRepo.BookingRepository
	Reminders ReminderScheduler // optional

	Policy       DuplicatePolicy
	CooldownDays int

	// Now is the wall clock, overridable in tests.
	Now func() time.Time
}

func (g *Guard) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

// AttemptBooking validates and persists a booking request. Exactly one of the
// three results is meaningful: a created booking, a typed rejection, or an
// infrastructure error.
func (g *Guard) AttemptBooking(ctx context.Context, req models.BookingRequest) (*models.Booking, *Rejection, error) {
	logger := utils.GetLogger()
	now := g.now()

	if rej := validateFormat(&req, now); rej != nil {
		return nil, rej, nil
	}

	// Re-fetch the template on every attempt; a cached snapshot would let a
	// stale client book a slot the doctor has since removed.
	doctor, err := g.Doctors.GetByID(ctx, req.DoctorID)
	if err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return nil, reject(SlotNoLongerOffered, "doctor not found"), nil
		}
		return nil, nil, err
	}
	weekday, err := time.ParseInLocation(schedule.DateLayout, req.Date, time.Local)
	if err != nil {
		return nil, reject(InvalidFormat, "date must be YYYY-MM-DD"), nil
	}
	offered := false
	for _, slot := range schedule.ValidTemplateSlots(doctor.Availability[weekday.Weekday().String()]) {
		if slot == req.Slot {
			offered = true
			break
		}
	}
	if !offered {
		return nil, reject(SlotNoLongerOffered, ""), nil
	}

	// Advisory pre-check; the insert below re-verifies atomically.
	booked, err := g.Bookings.BookedSlots(ctx, req.DoctorID, req.Date)
	if err != nil {
		return nil, nil, err
	}
	for _, slot := range booked {
		if slot == req.Slot {
			return nil, reject(SlotAlreadyTaken, ""), nil
		}
	}

	if rej, err := g.checkDuplicatePolicy(ctx, &req); err != nil {
		return nil, nil, err
	} else if rej != nil {
		return nil, rej, nil
	}

	booking := &models.Booking{
		ID:           uuid.New().String(),
		DoctorID:     req.DoctorID,
		DoctorName:   doctor.Name, // snapshot so later renames keep history intact
		PatientName:  req.PatientName,
		PatientPhone: req.PatientPhone,
		Date:         req.Date,
		Slot:         req.Slot,
		Notes:        req.Notes,
		Status:       models.StatusPending,
		CreatedAt:    now,
	}
	if err := g.Bookings.Insert(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, reject(SlotAlreadyTaken, ""), nil
		}
		return nil, nil, fmt.Errorf("booking insert failed: %w", err)
	}

	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.Int("doctorID", booking.DoctorID),
		zap.String("date", booking.Date),
		zap.String("slot", booking.Slot))

	if g.Reminders != nil {
		if err := g.Reminders.ScheduleAppointmentReminder(ctx, booking); err != nil {
			logger.Warn("failed to schedule reminder",
				zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	return booking, nil, nil
}

// checkDuplicatePolicy enforces the one-booking-per-patient rule at the
// configured scope. Patient identity is an inclusive-or match: either the
// name or the phone lining up with an existing active booking counts.
func (g *Guard) checkDuplicatePolicy(ctx context.Context, req *models.BookingRequest) (*Rejection, error) {
	switch g.Policy {
	case PolicyGlobalSameDay:
		existing, err := g.Bookings.FirstActiveForPatient(ctx, 0, req.Date, req.PatientName, req.PatientPhone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return reject(DuplicateBookingSameDay, existing.Slot), nil
		}
	case PolicySameDoctorCooldown:
		days := g.CooldownDays
		if days <= 0 {
			days = 1
		}
		day, err := time.ParseInLocation(schedule.DateLayout, req.Date, time.Local)
		if err != nil {
			return reject(InvalidFormat, "date must be YYYY-MM-DD"), nil
		}
		from := day.AddDate(0, 0, -days).Format(schedule.DateLayout)
		to := day.AddDate(0, 0, days).Format(schedule.DateLayout)
		within, err := g.Bookings.HasActiveInWindow(ctx, req.DoctorID, from, to, req.PatientName, req.PatientPhone)
		if err != nil {
			return nil, err
		}
		if within {
			return reject(DuplicateBookingSameDay, ""), nil
		}
	default: // PolicySameDoctorSameDay
		existing, err := g.Bookings.FirstActiveForPatient(ctx, req.DoctorID, req.Date, req.PatientName, req.PatientPhone)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return reject(DuplicateBookingSameDay, existing.Slot), nil
		}
	}
	return nil, nil
}
