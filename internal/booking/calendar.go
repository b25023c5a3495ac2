package booking

import (
	"time"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

// Day statuses for calendar rendering.
const (
	DayFree    = "free"
	DayPartial = "partial"
	DayFull    = "full"
)

// DayStatus classifies a calendar day for a hall. With an empty hall the
// classification spans every hall: any full-day entry anywhere makes the
// day "full".
func (o Occupancy) DayStatus(date, hall string) string {
	entries := o.entriesFor(date, hall)
	if len(entries) == 0 {
		return DayFree
	}
	for _, e := range entries {
		if e.IsFullDay() {
			return DayFull
		}
	}
	return DayPartial
}

// MonthSummary projects one summary per day of the given month, optionally
// filtered to a hall. Callers derive the Occupancy once per snapshot and
// reuse it across cells.
func (o Occupancy) MonthSummary(hall string, year, month int) []domain.CalendarDaySummary {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	out := make([]domain.CalendarDaySummary, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := FormatDate(first.AddDate(0, 0, day-1))
		entries := o.entriesFor(date, hall)
		out = append(out, domain.CalendarDaySummary{
			Date:         date,
			Status:       o.DayStatus(date, hall),
			BookingCount: len(entries),
			Free:         len(entries) == 0,
		})
	}
	return out
}
