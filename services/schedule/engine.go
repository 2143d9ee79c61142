package schedule

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	bookingRepo "clinicbook/database/repository/booking"
	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// DateLayout is the wire format for calendar dates; it sorts lexicographically
// in chronological order, as do zero-padded "HH:MM-HH:MM" slot strings.
const DateLayout = "2006-01-02"

const slotStartLayout = "15:04"

// Engine resolves a doctor's recurring weekly template into concrete bookable
// slots. All reads go straight to the repositories; the engine holds no
// schedule state of its own.
type Engine struct {
	Doctors  doctorRepo.DoctorRepository
	Bookings bookingRepo.BookingRepository
	Cache    *redis.Client // optional, bookable-days calendar only

	// SearchDays bounds the nearest-available walk; CalendarDays bounds the
	// bookable-days calendar. Zero values fall back to 90 and 120.
	SearchDays   int
	CalendarDays int

	// Now is the wall clock, overridable in tests. Dates and times are naive
	// local time throughout.
	Now func() time.Time
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// ValidTemplateSlots filters a weekday's raw template entries down to usable
// slot strings, sorted by start time. Entries that are empty after trimming,
// equal to "unavailable" in any casing, or missing the range separator are
// dropped silently; a template is authored data, not user input, and a
// half-broken day should still serve its good slots.
func ValidTemplateSlots(raw []string) []string {
	valid := make([]string, 0, len(raw))
	for _, entry := range raw {
		s := strings.TrimSpace(entry)
		if s == "" || strings.EqualFold(s, "unavailable") || !strings.Contains(s, "-") {
			continue
		}
		valid = append(valid, s)
	}
	sort.Strings(valid)
	return valid
}

// SlotStart parses the start time of a "HH:MM-HH:MM" slot as minutes from
// midnight.
func SlotStart(slot string) (int, error) {
	start, _, found := strings.Cut(slot, "-")
	if !found {
		return 0, fmt.Errorf("slot %q has no range separator", slot)
	}
	t, err := time.Parse(slotStartLayout, strings.TrimSpace(start))
	if err != nil {
		return 0, fmt.Errorf("slot %q has an invalid start time: %w", slot, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsInvalidDate reports whether err came from parsing a malformed date or
// slot string rather than from the store.
func IsInvalidDate(err error) bool {
	var pe *time.ParseError
	return errors.As(err, &pe)
}

// AppointmentStart combines a calendar date and a slot string into the
// concrete local time the appointment begins.
func AppointmentStart(date, slot string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	minutes, err := SlotStart(slot)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(minutes) * time.Minute), nil
}

// AvailableSlots computes the bookable slots for a doctor on a calendar date:
// the weekday's valid template slots, minus slots claimed by active bookings,
// minus (when the date is today) slots whose start time has already passed.
// Known limitation: collision is exact string equality, so a template that
// writes the same range two ways ("9:00-9:20" vs "09:00-09:20") will not
// detect the overlap. Templates come from a single authoring path, which is
// what keeps this sound.
func (e *Engine) AvailableSlots(ctx context.Context, doctorID int, date string) ([]string, error) {
	day, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	template, err := e.Doctors.GetAvailability(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	candidates := ValidTemplateSlots(template[day.Weekday().String()])
	if len(candidates) == 0 {
		return []string{}, nil
	}

	booked, err := e.Bookings.BookedSlots(ctx, doctorID, date)
	if err != nil {
		return nil, err
	}
	claimed := make(map[string]struct{}, len(booked))
	for _, s := range booked {
		claimed[s] = struct{}{}
	}

	now := e.now()
	today := now.Format(DateLayout)
	nowMinutes := now.Hour()*60 + now.Minute()

	available := make([]string, 0, len(candidates))
	for _, slot := range candidates {
		if _, taken := claimed[slot]; taken {
			continue
		}
		if date == today {
			start, err := SlotStart(slot)
			if err != nil {
				utils.GetLogger().Warn("dropping unparseable slot",
					zap.Int("doctorID", doctorID), zap.String("slot", slot))
				continue
			}
			if start <= nowMinutes {
				continue
			}
		}
		available = append(available, slot)
	}
	return available, nil
}
