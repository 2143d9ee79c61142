package booking

import (
	"regexp"
	"strings"
	"time"

	"clinicbook/models"
	"clinicbook/services/schedule"
)

var slotShape = regexp.MustCompile(`^\d{2}:\d{2}-\d{2}:\d{2}$`)

// validateFormat performs the shape checks of the validation sequence: all
// identity fields present, the date parses and is not in the past, the slot
// matches HH:MM-HH:MM, and a today booking starts strictly in the future.
// Returns nil when the request is well-formed.
func validateFormat(req *models.BookingRequest, now time.Time) *Rejection {
	req.PatientName = strings.TrimSpace(req.PatientName)
	req.PatientPhone = strings.TrimSpace(req.PatientPhone)
	req.Notes = strings.TrimSpace(req.Notes)

	if req.DoctorID <= 0 || req.PatientName == "" || req.PatientPhone == "" {
		return reject(InvalidFormat, "missing doctor, name, or phone")
	}

	day, err := time.ParseInLocation(schedule.DateLayout, req.Date, time.Local)
	if err != nil {
		return reject(InvalidFormat, "date must be YYYY-MM-DD")
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if day.Before(today) {
		return reject(InvalidFormat, "date is in the past")
	}

	if !slotShape.MatchString(req.Slot) {
		return reject(InvalidFormat, "slot must be HH:MM-HH:MM")
	}
	start, err := schedule.SlotStart(req.Slot)
	if err != nil {
		return reject(InvalidFormat, "slot start time is invalid")
	}
	if day.Equal(today) && start <= now.Hour()*60+now.Minute() {
		return reject(InvalidFormat, "slot start has already passed")
	}
	return nil
}
