package booking

import (
	"context"

	"clinicbook/models"
)

// ReminderScheduler enqueues an appointment reminder for a freshly created
// booking. Scheduling is best-effort: a failure is logged, never surfaced to
// the patient, and never rolls back the booking.
type ReminderScheduler interface {
	ScheduleAppointmentReminder(ctx context.Context, booking *models.Booking) error
}
