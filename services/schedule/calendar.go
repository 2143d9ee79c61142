package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clinicbook/utils"

	"go.uber.org/zap"
)

const (
	defaultCalendarDays = 120
	calendarCacheTTL    = 5 * time.Minute
	monthKeyLayout      = "2006-01"
)

func calendarCacheKey(doctorID int) string {
	return fmt.Sprintf("calendar:doctor:%d", doctorID)
}

// InvalidateCalendar drops the cached bookable-days calendar for a doctor,
// used after a template change.
func (e *Engine) InvalidateCalendar(ctx context.Context, doctorID int) error {
	if e.Cache == nil {
		return nil
	}
	return e.Cache.Del(ctx, calendarCacheKey(doctorID)).Err()
}

// BookableDays maps each month in the horizon to the day numbers on which the
// doctor's weekly template offers at least one valid slot. It reflects the
// template only, not bookings, and feeds the date-picker highlight on the
// booking page; results are cached briefly since the template changes rarely.
func (e *Engine) BookableDays(ctx context.Context, doctorID int) (map[string][]int, error) {
	cacheKey := calendarCacheKey(doctorID)
	if e.Cache != nil {
		if raw, err := e.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var cached map[string][]int
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return cached, nil
			}
		}
	}

	template, err := e.Doctors.GetAvailability(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	// One filter pass per weekday, then a cheap 120-day walk.
	validByWeekday := make(map[string]bool, 7)
	for day, raw := range template {
		validByWeekday[day] = len(ValidTemplateSlots(raw)) > 0
	}

	horizon := e.CalendarDays
	if horizon <= 0 {
		horizon = defaultCalendarDays
	}
	days := make(map[string][]int)
	start := e.now()
	for i := 0; i < horizon; i++ {
		d := start.AddDate(0, 0, i)
		if validByWeekday[d.Weekday().String()] {
			month := d.Format(monthKeyLayout)
			days[month] = append(days[month], d.Day())
		}
	}

	if e.Cache != nil {
		if raw, err := json.Marshal(days); err == nil {
			if err := e.Cache.Set(ctx, cacheKey, raw, calendarCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("failed to cache bookable days",
					zap.Int("doctorID", doctorID), zap.Error(err))
			}
		}
	}
	return days, nil
}
