package stats

import (
	"context"
	"sort"
	"time"

	bookingRepo "clinicbook/database/repository/booking"
	doctorRepo "clinicbook/database/repository/doctor"
	"clinicbook/models"
	"clinicbook/services/schedule"
)

// Service aggregates booking data for the dashboards. It only reads; all
// writes stay behind the booking guard.
type Service struct {
	Doctors  doctorRepo.DoctorRepository
	Bookings bookingRepo.BookingRepository

	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

const monthGroupLayout = "January 2006"

// DoctorDashboard builds the doctor's dashboard: headline counters, the
// seven-day chart series, and active bookings grouped month → date, most
// recent first. Bookings whose stored date no longer parses are listed but
// skipped for counting.
func (s *Service) DoctorDashboard(ctx context.Context, doctorID int) (*models.DoctorDashboard, error) {
	doctor, err := s.Doctors.GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	bookings, err := s.Bookings.ListActiveByDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayStr := today.Format(schedule.DateLayout)
	weekEnd := today.AddDate(0, 0, 7)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	dash := &models.DoctorDashboard{DoctorID: doctor.ID, DoctorName: doctor.Name}
	dash.Stats.TotalActive = len(bookings)

	perDay := make(map[string]int)
	uniquePatients := make(map[string]struct{})

	for _, b := range bookings {
		day, err := time.ParseInLocation(schedule.DateLayout, b.Date, now.Location())
		if err != nil {
			continue
		}
		if b.Status == models.StatusPending {
			if !day.Before(today) {
				dash.Stats.PendingUpcoming++
			}
		}
		if b.Status == models.StatusCompleted {
			dash.Stats.CompletedTotal++
		}
		if b.Date == todayStr {
			dash.Stats.Today++
		}
		if !day.Before(today) && day.Before(weekEnd) {
			dash.Stats.NextSevenDays++
		}
		perDay[b.Date]++
		if !day.Before(monthStart) {
			id := b.PatientPhone
			if id == "" {
				id = b.PatientName
			}
			uniquePatients[id] = struct{}{}
		}
	}
	dash.Stats.UniquePatientsThisMonth = len(uniquePatients)

	for i := 0; i < 7; i++ {
		d := today.AddDate(0, 0, i)
		dash.Chart.Labels = append(dash.Chart.Labels, d.Format("Mon, Jan 02"))
		dash.Chart.Data = append(dash.Chart.Data, perDay[d.Format(schedule.DateLayout)])
	}

	dash.BookingsByMonth = groupByMonth(bookings)
	return dash, nil
}

// groupByMonth buckets bookings month → date, both sorted most recent first.
// The input arrives date-descending from the repository, so per-day slices
// keep that order.
func groupByMonth(bookings []models.Booking) []models.MonthGroup {
	type monthBucket struct {
		start time.Time
		days  map[string][]models.Booking
	}
	buckets := make(map[string]*monthBucket)
	for _, b := range bookings {
		day, err := time.ParseInLocation(schedule.DateLayout, b.Date, time.Local)
		if err != nil {
			continue
		}
		key := day.Format(monthGroupLayout)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &monthBucket{
				start: time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location()),
				days:  make(map[string][]models.Booking),
			}
			buckets[key] = bucket
		}
		bucket.days[b.Date] = append(bucket.days[b.Date], b)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return buckets[keys[i]].start.After(buckets[keys[j]].start)
	})

	groups := make([]models.MonthGroup, 0, len(keys))
	for _, k := range keys {
		bucket := buckets[k]
		dates := make([]string, 0, len(bucket.days))
		for d := range bucket.days {
			dates = append(dates, d)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(dates)))
		group := models.MonthGroup{Month: k}
		for _, d := range dates {
			group.Days = append(group.Days, models.DayGroup{Date: d, Bookings: bucket.days[d]})
		}
		groups = append(groups, group)
	}
	return groups
}

// PatientBookings lists a patient's active bookings (matched by name or
// phone) with the cancellable flag: Pending and starting in the future.
func (s *Service) PatientBookings(ctx context.Context, identifier string) ([]models.PatientBooking, error) {
	bookings, err := s.Bookings.ListActiveByPatient(ctx, identifier)
	if err != nil {
		return nil, err
	}
	now := s.now()
	result := make([]models.PatientBooking, 0, len(bookings))
	for _, b := range bookings {
		pb := models.PatientBooking{Booking: b}
		if b.Status == models.StatusPending {
			if start, err := schedule.AppointmentStart(b.Date, b.Slot, now.Location()); err == nil && start.After(now) {
				pb.Cancellable = true
			}
		}
		result = append(result, pb)
	}
	return result, nil
}
