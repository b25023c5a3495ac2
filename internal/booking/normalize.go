// Package booking is the availability engine: it normalizes raw seminar
// records into per-date occupied minute intervals and answers conflict and
// calendar-status queries against that snapshot. Everything here is pure and
// synchronous; callers fetch the records and recompute on every new snapshot.
package booking

import (
	"strings"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

// Entry is one occupied minute interval for a hall on a date.
// Invariant: 0 <= StartMinute < EndMinute <= MinutesPerDay.
// A full-day block is [0, MinutesPerDay).
type Entry struct {
	Date        string
	StartMinute int
	EndMinute   int
	HallName    string
	Source      *domain.Seminar
}

// IsFullDay reports whether the entry blocks the entire day.
func (e Entry) IsFullDay() bool {
	return e.StartMinute == 0 && e.EndMinute == MinutesPerDay
}

// ClockRange renders the entry's interval as "HH:MM-HH:MM".
func (e Entry) ClockRange() string {
	return FormatClock(e.StartMinute) + "-" + FormatClock(e.EndMinute)
}

// Occupancy maps a "YYYY-MM-DD" date to the occupied entries on that date,
// across all halls. Hall filtering happens at query time. Entries for the
// same date and hall may overlap; Normalize does not merge them.
type Occupancy map[string][]Entry

// Diagnostic records a record that could not be normalized as written and
// was treated as a full-day block instead.
type Diagnostic struct {
	SeminarID string
	Date      string
	Reason    string
}

// Normalize converts raw seminar records into an Occupancy snapshot. Only
// APPROVED records occupy time; everything else is skipped. Records with
// unparseable time strings fall back to full-day blocks and are reported in
// the returned diagnostics so callers can log them.
func Normalize(records []*domain.Seminar) (Occupancy, []Diagnostic) {
	occ := make(Occupancy)
	var diags []Diagnostic

	add := func(date, hall string, start, end int, src *domain.Seminar) {
		occ[date] = append(occ[date], Entry{
			Date:        date,
			StartMinute: start,
			EndMinute:   end,
			HallName:    hall,
			Source:      src,
		})
	}
	fullDay := func(date, hall string, src *domain.Seminar) {
		add(date, hall, 0, MinutesPerDay, src)
	}

	for _, rec := range records {
		if rec == nil || !strings.EqualFold(rec.Status, domain.StatusApproved) {
			continue
		}
		hall := strings.TrimSpace(rec.HallName)

		if rec.IsDayRange() {
			dates, err := DatesBetween(rec.StartDate, rec.EndDate)
			if err != nil {
				// Range dates are unusable; fall back to whatever explicit
				// per-day keys the record carries.
				diags = append(diags, Diagnostic{SeminarID: rec.ID, Reason: "invalid date range: " + err.Error()})
				for date := range rec.DaySlots {
					dates = append(dates, date)
				}
			}
			for _, date := range dates {
				slot, hasSlot := rec.DaySlots[date]
				if !hasSlot || slot == nil {
					fullDay(date, hall, rec)
					continue
				}
				start, end, err := slotMinutes(slot.StartTime, slot.EndTime)
				if err != nil {
					diags = append(diags, Diagnostic{SeminarID: rec.ID, Date: date, Reason: err.Error()})
					fullDay(date, hall, rec)
					continue
				}
				add(date, hall, start, end, rec)
			}
			continue
		}

		if rec.Date == "" {
			continue
		}
		if rec.StartTime == "" || rec.EndTime == "" {
			fullDay(rec.Date, hall, rec)
			continue
		}
		start, end, err := slotMinutes(rec.StartTime, rec.EndTime)
		if err != nil {
			diags = append(diags, Diagnostic{SeminarID: rec.ID, Date: rec.Date, Reason: err.Error()})
			fullDay(rec.Date, hall, rec)
			continue
		}
		add(rec.Date, hall, start, end, rec)
	}
	return occ, diags
}

// slotMinutes parses a start/end clock pair into a valid minute interval.
func slotMinutes(startTime, endTime string) (int, int, error) {
	start, err := ParseClock(startTime)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return 0, 0, err
	}
	if end <= start {
		return 0, 0, errInvertedInterval(startTime, endTime)
	}
	return start, end, nil
}
