package reports

import (
	"strings"
	"time"

	"marketplace_admin/internal/models"
)

// Window is a half-open time range [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// PeriodWindows returns the calendar windows around now in now's location.
// The week starts on weekStart.
func PeriodWindows(now time.Time, weekStart time.Weekday) map[models.Period]Window {
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	offset := (int(startOfDay.Weekday()) - int(weekStart) + 7) % 7
	startOfWeek := startOfDay.AddDate(0, 0, -offset)

	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	return map[models.Period]Window{
		models.PeriodToday:     {Start: startOfDay, End: startOfDay.AddDate(0, 0, 1)},
		models.PeriodThisWeek:  {Start: startOfWeek, End: startOfWeek.AddDate(0, 0, 7)},
		models.PeriodThisMonth: {Start: startOfMonth, End: startOfMonth.AddDate(0, 1, 0)},
		models.PeriodThisYear:  {Start: startOfYear, End: startOfYear.AddDate(1, 0, 0)},
	}
}

// ParseWeekday accepts an English day name, full or abbreviated ("monday", "Sun").
func ParseWeekday(name string) (time.Weekday, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for d := time.Sunday; d <= time.Saturday; d++ {
		full := strings.ToLower(d.String())
		if name == full || name == full[:3] {
			return d, true
		}
	}
	return time.Monday, false
}
