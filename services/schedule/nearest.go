package schedule

import (
	"context"
	"errors"

	"clinicbook/models"
)

// ErrNoUpcomingSlots reports that the nearest-available walk exhausted its
// search window without finding a bookable slot. It is a normal outcome for a
// fully-booked or unscheduled doctor, not a failure.
var ErrNoUpcomingSlots = errors.New("no available slots within the search window")

const defaultSearchDays = 90

// NearestAvailable walks forward from today looking for the first date with
// at least one bookable slot and returns that date's earliest slot. A day
// with no valid template entries and a fully-booked day look the same: the
// walk just moves on.
func (e *Engine) NearestAvailable(ctx context.Context, doctorID int) (models.NearestSlot, error) {
	searchDays := e.SearchDays
	if searchDays <= 0 {
		searchDays = defaultSearchDays
	}

	start := e.now()
	for i := 0; i < searchDays; i++ {
		date := start.AddDate(0, 0, i).Format(DateLayout)
		slots, err := e.AvailableSlots(ctx, doctorID, date)
		if err != nil {
			return models.NearestSlot{}, err
		}
		if len(slots) > 0 {
			return models.NearestSlot{Date: date, Slot: slots[0]}, nil
		}
	}
	return models.NearestSlot{}, ErrNoUpcomingSlots
}

// HasUpcomingAvailability reports whether the doctor has any bookable slot in
// the search window.
func (e *Engine) HasUpcomingAvailability(ctx context.Context, doctorID int) (bool, error) {
	_, err := e.NearestAvailable(ctx, doctorID)
	if errors.Is(err, ErrNoUpcomingSlots) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
