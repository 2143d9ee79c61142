package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clinicbook/models"
	"clinicbook/services/schedule"

	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "reminder:appointment"

// NewAppointmentReminderTask builds the asynq task for an appointment
// reminder, scheduled to fire at the given time.
func NewAppointmentReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeAppointmentReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Scheduler enqueues appointment reminders on the asynq queue. It satisfies
// the booking guard's ReminderScheduler.
type Scheduler struct {
	Client *asynq.Client

	// LeadTime is how far before the appointment the reminder fires.
	LeadTime time.Duration

	Now func() time.Time
}

func (s *Scheduler) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// ScheduleAppointmentReminder enqueues a reminder for the booking. Bookings
// whose reminder time has already passed are skipped, not delivered late.
func (s *Scheduler) ScheduleAppointmentReminder(ctx context.Context, b *models.Booking) error {
	start, err := schedule.AppointmentStart(b.Date, b.Slot, time.Local)
	if err != nil {
		return fmt.Errorf("cannot schedule reminder for booking %s: %w", b.ID, err)
	}
	fireAt := start.Add(-s.LeadTime)
	if !fireAt.After(s.now()) {
		return nil
	}

	payload := models.ReminderPayload{
		BookingID:    b.ID,
		DoctorID:     b.DoctorID,
		DoctorName:   b.DoctorName,
		PatientName:  b.PatientName,
		PatientPhone: b.PatientPhone,
		Date:         b.Date,
		Slot:         b.Slot,
	}
	task, opts, err := NewAppointmentReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("enqueue reminder for booking %s: %w", b.ID, err)
	}
	return nil
}
