package booking

import (
	"fmt"
	"strings"

	"github.com/dtaoOfficial/seminar-hall-backend/internal/domain"
)

// Window is the daily span, in minutes since midnight, within which
// alternative slots are searched. Admin and department callers use
// different windows.
type Window struct {
	Start int
	End   int
}

// Daily windows by caller role.
var (
	AdminWindow      = Window{Start: 6 * 60, End: 23 * 60}  // 06:00-23:00
	DepartmentWindow = Window{Start: 8 * 60, End: 18 * 60}  // 08:00-18:00
)

// WindowForRole returns the daily search window for the given role.
func WindowForRole(role string) Window {
	if role == domain.RoleAdmin {
		return AdminWindow
	}
	return DepartmentWindow
}

// suggestionStep is the granularity of the alternative-slot scan.
const suggestionStep = 15

// Result is the structured outcome of an availability check. Precondition
// violations and conflicts are reported here, never as errors or panics.
type Result struct {
	OK         bool
	Message    string
	Suggestion string // alternative slot, "HH:MM-HH:MM", when one was found
}

func ok() Result {
	return Result{OK: true, Message: "available"}
}

func fail(format string, args ...any) Result {
	return Result{OK: false, Message: fmt.Sprintf(format, args...)}
}

func errInvertedInterval(startTime, endTime string) error {
	return fmt.Errorf("end time %q must be after start time %q", endTime, startTime)
}

// Overlaps reports whether the half-open intervals [a0,a1) and [b0,b1)
// intersect.
func Overlaps(a0, a1, b0, b1 int) bool {
	return a0 < b1 && b0 < a1
}

// entriesFor returns the entries for a hall on a date, matching the hall
// name case-insensitively. An empty hall matches every entry.
func (o Occupancy) entriesFor(date, hall string) []Entry {
	all := o[date]
	if hall == "" {
		return all
	}
	var out []Entry
	for _, e := range all {
		if strings.EqualFold(e.HallName, hall) {
			out = append(out, e)
		}
	}
	return out
}

// CheckInterval reports whether [startMin,endMin) on the given date is free
// for the hall. A full-day block on the date vetoes any timed request.
func (o Occupancy) CheckInterval(hall, date string, startMin, endMin int) Result {
	hall = strings.TrimSpace(hall)
	if hall == "" {
		return fail("select a hall")
	}
	if date == "" {
		return fail("pick a date")
	}
	if _, err := ParseDate(date); err != nil {
		return fail("dates must be in YYYY-MM-DD format")
	}
	if startMin < 0 || endMin > MinutesPerDay {
		return fail("times must fall within a single day")
	}
	if endMin <= startMin {
		return fail("end time must be after start time")
	}

	entries := o.entriesFor(date, hall)
	for _, e := range entries {
		if e.IsFullDay() {
			return fail("%s is fully booked on %s", hall, date)
		}
	}
	var clashes []string
	for _, e := range entries {
		if Overlaps(startMin, endMin, e.StartMinute, e.EndMinute) {
			clashes = append(clashes, e.ClockRange())
		}
	}
	if len(clashes) > 0 {
		return fail("time slot overlaps existing booking %s on %s", strings.Join(clashes, ", "), date)
	}
	return ok()
}

// CheckRange reports whether the inclusive date range is free for the hall.
// Dates without an override are claimed as full days and fail if any entry
// exists for the hall on that date. Dates with an override are checked like
// CheckInterval. All conflicting dates are collected, and for timed
// conflicts the first free equal-duration slot inside the window, if any, is
// returned as a suggestion.
func (o Occupancy) CheckRange(hall, startDate, endDate string, overrides map[string]*domain.DaySlot, w Window) Result {
	hall = strings.TrimSpace(hall)
	if hall == "" {
		return fail("select a hall")
	}
	dates, err := DatesBetween(startDate, endDate)
	if err != nil {
		return fail("dates must be in YYYY-MM-DD format")
	}
	if len(dates) == 0 {
		return fail("end date must not be before start date")
	}

	var conflicts []string
	suggestion := ""
	for _, date := range dates {
		slot, hasSlot := overrides[date]
		if !hasSlot || slot == nil {
			if len(o.entriesFor(date, hall)) > 0 {
				conflicts = append(conflicts, date)
			}
			continue
		}
		start, end, err := slotMinutes(slot.StartTime, slot.EndTime)
		if err != nil {
			return fail("invalid times for %s: %v", date, err)
		}
		if res := o.CheckInterval(hall, date, start, end); !res.OK {
			conflicts = append(conflicts, date)
			if suggestion == "" {
				if altStart, found := o.SuggestSlot(hall, date, end-start, w); found {
					suggestion = fmt.Sprintf("%s %s-%s", date, FormatClock(altStart), FormatClock(altStart+end-start))
				}
			}
		}
	}
	if len(conflicts) > 0 {
		res := fail("%s is already booked on %s", hall, strings.Join(conflicts, ", "))
		res.Suggestion = suggestion
		return res
	}
	return ok()
}

// SuggestSlot scans the window in fixed steps for the first interval of the
// given duration that is free for the hall on the date. Returns the start
// minute and whether a slot was found.
func (o Occupancy) SuggestSlot(hall, date string, duration int, w Window) (int, bool) {
	if duration <= 0 || w.End <= w.Start || w.Start+duration > w.End {
		return 0, false
	}
	entries := o.entriesFor(date, hall)
	for _, e := range entries {
		if e.IsFullDay() {
			return 0, false
		}
	}
	for start := w.Start; start+duration <= w.End; start += suggestionStep {
		free := true
		for _, e := range entries {
			if Overlaps(start, start+duration, e.StartMinute, e.EndMinute) {
				free = false
				break
			}
		}
		if free {
			return start, true
		}
	}
	return 0, false
}
