package stats

import (
	"context"
	"testing"
	"time"

	bookingRepo "clinicbook/database/repository/booking"
	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDoctors struct {
	doctorRepo.DoctorRepository
	doctors []models.Doctor
}

func (s *stubDoctors) GetByID(ctx context.Context, id int) (*models.Doctor, error) {
	for _, d := range s.doctors {
		if d.ID == id {
			clone := d
			return &clone, nil
		}
	}
	return nil, doctorRepo.ErrNotFound
}

func (s *stubDoctors) GetAll(ctx context.Context) ([]models.Doctor, error) {
	return s.doctors, nil
}

type stubBookings struct {
	bookingRepo.BookingRepository
	byDoctor  []models.Booking
	byPatient []models.Booking
	total     int64
	active    int64
}

func (s *stubBookings) ListActiveByDoctor(ctx context.Context, doctorID int) ([]models.Booking, error) {
	return s.byDoctor, nil
}

func (s *stubBookings) ListActiveByPatient(ctx context.Context, identifier string) ([]models.Booking, error) {
	return s.byPatient, nil
}

func (s *stubBookings) CountAll(ctx context.Context) (int64, error)    { return s.total, nil }
func (s *stubBookings) CountActive(ctx context.Context) (int64, error) { return s.active, nil }

// 2026-03-02 is a Monday.
var testNow = time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

func booking(id string, date, slot, status, phone string) models.Booking {
	return models.Booking{
		ID: id, DoctorID: 7, PatientName: "P " + id, PatientPhone: phone,
		Date: date, Slot: slot, Status: status,
	}
}

func TestDoctorDashboardCounters(t *testing.T) {
	bookings := []models.Booking{
		booking("a", "2026-03-02", "11:00-11:20", models.StatusPending, "091"),   // today
		booking("b", "2026-03-05", "09:00-09:20", models.StatusPending, "092"),   // this week
		booking("c", "2026-03-12", "09:00-09:20", models.StatusPending, "093"),   // beyond 7 days
		booking("d", "2026-02-10", "09:00-09:20", models.StatusCompleted, "091"), // past, completed
	}
	svc := &Service{
		Doctors:  &stubDoctors{doctors: []models.Doctor{{ID: 7, Name: "Dr. Salem"}}},
		Bookings: &stubBookings{byDoctor: bookings},
		Now:      func() time.Time { return testNow },
	}

	dash, err := svc.DoctorDashboard(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, "Dr. Salem", dash.DoctorName)
	assert.Equal(t, 4, dash.Stats.TotalActive)
	assert.Equal(t, 3, dash.Stats.PendingUpcoming)
	assert.Equal(t, 1, dash.Stats.Today)
	assert.Equal(t, 2, dash.Stats.NextSevenDays) // today + the 5th; the 12th is outside
	assert.Equal(t, 1, dash.Stats.CompletedTotal)
	// a, b, c fall in March; d is February.
	assert.Equal(t, 3, dash.Stats.UniquePatientsThisMonth)
}

func TestDoctorDashboardChartWindow(t *testing.T) {
	bookings := []models.Booking{
		booking("a", "2026-03-02", "11:00-11:20", models.StatusPending, "091"),
		booking("b", "2026-03-02", "11:20-11:40", models.StatusPending, "092"),
		booking("c", "2026-03-04", "09:00-09:20", models.StatusPending, "093"),
	}
	svc := &Service{
		Doctors:  &stubDoctors{doctors: []models.Doctor{{ID: 7}}},
		Bookings: &stubBookings{byDoctor: bookings},
		Now:      func() time.Time { return testNow },
	}

	dash, err := svc.DoctorDashboard(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, dash.Chart.Labels, 7)
	require.Len(t, dash.Chart.Data, 7)
	assert.Equal(t, "Mon, Mar 02", dash.Chart.Labels[0])
	assert.Equal(t, []int{2, 0, 1, 0, 0, 0, 0}, dash.Chart.Data)
}

func TestDoctorDashboardMonthGrouping(t *testing.T) {
	bookings := []models.Booking{
		booking("a", "2026-03-05", "09:00-09:20", models.StatusPending, "091"),
		booking("b", "2026-03-02", "11:00-11:20", models.StatusPending, "092"),
		booking("c", "2026-02-10", "09:00-09:20", models.StatusCompleted, "093"),
	}
	svc := &Service{
		Doctors:  &stubDoctors{doctors: []models.Doctor{{ID: 7}}},
		Bookings: &stubBookings{byDoctor: bookings},
		Now:      func() time.Time { return testNow },
	}

	dash, err := svc.DoctorDashboard(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, dash.BookingsByMonth, 2)
	assert.Equal(t, "March 2026", dash.BookingsByMonth[0].Month)
	assert.Equal(t, "February 2026", dash.BookingsByMonth[1].Month)

	march := dash.BookingsByMonth[0]
	require.Len(t, march.Days, 2)
	assert.Equal(t, "2026-03-05", march.Days[0].Date)
	assert.Equal(t, "2026-03-02", march.Days[1].Date)
}

func TestPatientBookingsCancellableFlag(t *testing.T) {
	bookings := []models.Booking{
		booking("future", "2026-03-05", "09:00-09:20", models.StatusPending, "091"),
		booking("started", "2026-03-02", "09:00-09:20", models.StatusPending, "091"),
		booking("done", "2026-03-05", "10:00-10:20", models.StatusCompleted, "091"),
	}
	svc := &Service{
		Bookings: &stubBookings{byPatient: bookings},
		Now:      func() time.Time { return testNow }, // 10:00 on the 2nd
	}

	got, err := svc.PatientBookings(context.Background(), "091")
	require.NoError(t, err)
	require.Len(t, got, 3)

	byID := make(map[string]models.PatientBooking)
	for _, pb := range got {
		byID[pb.ID] = pb
	}
	assert.True(t, byID["future"].Cancellable)
	assert.False(t, byID["started"].Cancellable, "a booking that already began cannot be cancelled")
	assert.False(t, byID["done"].Cancellable, "completed bookings are terminal")
}
