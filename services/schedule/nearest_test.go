package schedule

import (
	"context"
	"testing"
	"time"

	"clinicbook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearestAvailableSkipsEmptyDays(t *testing.T) {
	// Only Wednesdays are scheduled; from Monday the walk should land on
	// 2026-03-04 and pick the earliest slot.
	template := models.WeeklyTemplate{
		"Wednesday": {"10:00-10:20", "09:00-09:20"},
	}
	e := newEngine(template, nil, monday)

	nearest, err := e.NearestAvailable(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.NearestSlot{Date: "2026-03-04", Slot: "09:00-09:20"}, nearest)
}

func TestNearestAvailableSameDayRespectsClock(t *testing.T) {
	template := models.WeeklyTemplate{
		"Monday": {"07:00-07:20", "09:00-09:20"},
	}
	// 08:00 on Monday: the 07:00 slot has passed, 09:00 has not.
	e := newEngine(template, nil, monday)

	nearest, err := e.NearestAvailable(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.NearestSlot{Date: "2026-03-02", Slot: "09:00-09:20"}, nearest)
}

func TestNearestAvailableExhaustsWindow(t *testing.T) {
	e := newEngine(models.WeeklyTemplate{}, nil, monday)
	e.SearchDays = 10

	_, err := e.NearestAvailable(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoUpcomingSlots)
}

func TestNearestAvailableFullyBookedDoctor(t *testing.T) {
	template := models.WeeklyTemplate{
		"Monday":    {"09:00-09:20"},
		"Tuesday":   {"09:00-09:20"},
		"Wednesday": {"09:00-09:20"},
		"Thursday":  {"09:00-09:20"},
		"Friday":    {"09:00-09:20"},
		"Saturday":  {"09:00-09:20"},
		"Sunday":    {"09:00-09:20"},
	}
	e := newEngine(template, []string{"09:00-09:20"}, monday)
	e.SearchDays = 14

	_, err := e.NearestAvailable(context.Background(), 1)
	assert.ErrorIs(t, err, ErrNoUpcomingSlots)
}

func TestHasUpcomingAvailability(t *testing.T) {
	scheduled := newEngine(models.WeeklyTemplate{"Tuesday": {"09:00-09:20"}}, nil, monday)
	ok, err := scheduled.HasUpcomingAvailability(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, ok)

	unscheduled := newEngine(models.WeeklyTemplate{}, nil, monday)
	unscheduled.SearchDays = 5
	ok, err = unscheduled.HasUpcomingAvailability(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBookableDaysReflectsTemplateOnly(t *testing.T) {
	template := models.WeeklyTemplate{
		"Monday":  {"09:00-09:20"},
		"Tuesday": {"Unavailable"},
	}
	// Booked slots must not affect the calendar.
	e := newEngine(template, []string{"09:00-09:20"}, monday)
	e.CalendarDays = 14

	days, err := e.BookableDays(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, map[string][]int{"2026-03": {2, 9}}, days)
}

func TestBookableDaysSpansMonths(t *testing.T) {
	at := time.Date(2026, 3, 30, 8, 0, 0, 0, time.Local) // a Monday
	e := newEngine(models.WeeklyTemplate{"Monday": {"09:00-09:20"}}, nil, at)
	e.CalendarDays = 10

	days, err := e.BookableDays(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, map[string][]int{"2026-03": {30}, "2026-04": {6}}, days)
}
