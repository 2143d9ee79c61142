package models

// DashboardStats summarizes a doctor's active bookings.
type DashboardStats struct {
	TotalActive             int `json:"total_active"`
	PendingUpcoming         int `json:"pending_upcoming"`
	Today                   int `json:"today"`
	NextSevenDays           int `json:"next_seven_days"`
	CompletedTotal          int `json:"completed_total"`
	UniquePatientsThisMonth int `json:"unique_patients_this_month"`
}

// ChartSeries feeds the appointments-per-day chart for the coming week.
type ChartSeries struct {
	Labels []string `json:"labels"`
	Data   []int    `json:"data"`
}

// DayGroup collects a single date's bookings.
type DayGroup struct {
	Date     string    `json:"date"`
	Bookings []Booking `json:"bookings"`
}

// MonthGroup collects a month's bookings grouped by date, most recent first.
type MonthGroup struct {
	Month string     `json:"month"` // "January 2006"
	Days  []DayGroup `json:"days"`
}

// DoctorDashboard is the full dashboard payload for a doctor.
type DoctorDashboard struct {
	DoctorID        int            `json:"doctor_id"`
	DoctorName      string         `json:"doctor_name"`
	Stats           DashboardStats `json:"stats"`
	Chart           ChartSeries    `json:"chart"`
	BookingsByMonth []MonthGroup   `json:"bookings_by_month"`
}

// HomeStats is the landing-page statistics block.
type HomeStats struct {
	DoctorCount    int `json:"doctor_count"`
	SpecialtyCount int `json:"specialty_count"`
	TotalBookings  int `json:"total_bookings"`
	ActiveBookings int `json:"active_bookings"`
	ReviewCount    int `json:"review_count"`
}
