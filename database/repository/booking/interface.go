// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"clinicbook/models"
)

// ErrSlotTaken is returned by Insert when another active booking already
// holds the same (doctor, date, slot) tuple. Losing this race is an expected
// outcome, not an infrastructure failure.
var ErrSlotTaken = errors.New("booking slot already taken")

// ErrNotFound is returned when no booking matches the requested ID.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines data access for bookings. Uniqueness of active
// (doctor, date, slot) tuples is enforced by the store itself, so Insert is
// the authoritative collision guard.
type BookingRepository interface {
	// Insert stores a new booking. Returns ErrSlotTaken if an active booking
	// already occupies the same (doctor, date, slot).
	Insert(ctx context.Context, booking *models.Booking) error
	// GetByID fetches one booking.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// BookedSlots returns the slot strings claimed by active bookings for a
	// doctor on a date.
	BookedSlots(ctx context.Context, doctorID int, date string) ([]string, error)
	// FirstActiveForPatient finds an active booking on the given date whose
	// patient matches by name OR phone. doctorID <= 0 matches any doctor.
	// Returns nil when no such booking exists.
	FirstActiveForPatient(ctx context.Context, doctorID int, date, name, phone string) (*models.Booking, error)
	// HasActiveInWindow reports whether the patient (name OR phone match)
	// holds any active booking with the doctor in the inclusive date window.
	HasActiveInWindow(ctx context.Context, doctorID int, fromDate, toDate, name, phone string) (bool, error)
	// LatestActiveForPatient returns the most recent active booking the
	// patient holds with the doctor, or nil when there is none.
	LatestActiveForPatient(ctx context.Context, doctorID int, name, phone string) (*models.Booking, error)
	// UpdateStatusIfPending atomically moves a booking from Pending to the
	// given status. Reports whether the transition was applied.
	UpdateStatusIfPending(ctx context.Context, id, newStatus string) (bool, error)
	// UpdateNotes replaces a booking's notes. Reports whether it matched.
	UpdateNotes(ctx context.Context, id, notes string) (bool, error)
	// MarkReminded records the reminder delivery time on a booking.
	MarkReminded(ctx context.Context, id string, at time.Time) error
	// ListActiveByDoctor returns a doctor's active bookings, most recent
	// date/slot first.
	ListActiveByDoctor(ctx context.Context, doctorID int) ([]models.Booking, error)
	// ListActiveByPatient returns active bookings matched by patient name OR
	// phone, most recent first.
	ListActiveByPatient(ctx context.Context, identifier string) ([]models.Booking, error)
	// CountAll and CountActive back the landing-page statistics.
	CountAll(ctx context.Context) (int64, error)
	CountActive(ctx context.Context) (int64, error)
}
