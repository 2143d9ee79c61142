package models

import "time"

// Booking statuses. Cancelled and Completed are terminal.
const (
	StatusPending   = "Pending"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Booking represents an appointment reservation. The (DoctorID, Date, Slot)
// tuple is unique among non-cancelled bookings; the bookings collection
// enforces this with a partial unique index.
type Booking struct {
	ID           string     `bson:"id" json:"id"`
	DoctorID     int        `bson:"doctor_id" json:"doctor_id"`
	DoctorName   string     `bson:"doctor_name" json:"doctor_name"` // snapshot at booking time
	PatientName  string     `bson:"patient_name" json:"patient_name"`
	PatientPhone string     `bson:"patient_phone" json:"patient_phone"`
	Date         string     `bson:"date" json:"date"` // "2006-01-02"
	Slot         string     `bson:"slot" json:"slot"` // "HH:MM-HH:MM"
	Notes        string     `bson:"notes,omitempty" json:"notes,omitempty"`
	Status       string     `bson:"status" json:"status"`
	CreatedAt    time.Time  `bson:"created_at" json:"created_at"`
	RemindedAt   *time.Time `bson:"reminded_at,omitempty" json:"reminded_at,omitempty"`
}

// Active reports whether the booking still claims its slot.
func (b *Booking) Active() bool {
	return b.Status != StatusCancelled
}

// BookingRequest is the payload of a booking attempt.
type BookingRequest struct {
	DoctorID     int    `json:"doctor_id" binding:"required"`
	PatientName  string `json:"patient_name" binding:"required"`
	PatientPhone string `json:"patient_phone" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Slot         string `json:"slot" binding:"required"`
	Notes        string `json:"notes"`
}

// NearestSlot is the result of a "book soonest" lookup.
type NearestSlot struct {
	Date string `json:"date"`
	Slot string `json:"slot"`
}

// PatientBooking decorates a booking for the patient dashboard.
type PatientBooking struct {
	Booking
	Cancellable bool `json:"cancellable"`
}

// NoteUpdate is one entry of a bulk notes update from the doctor dashboard.
type NoteUpdate struct {
	BookingID string `json:"booking_id"`
	Notes     string `json:"notes"`
}

// ReminderPayload is the asynq task body for an appointment reminder.
type ReminderPayload struct {
	BookingID    string `json:"booking_id"`
	DoctorID     int    `json:"doctor_id"`
	DoctorName   string `json:"doctor_name"`
	PatientName  string `json:"patient_name"`
	PatientPhone string `json:"patient_phone"`
	Date         string `json:"date"`
	Slot         string `json:"slot"`
}
