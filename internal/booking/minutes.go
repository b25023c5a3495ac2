package booking

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// MinutesPerDay is the exclusive upper bound of a day's minute range.
// A full-day block spans [0, MinutesPerDay).
const MinutesPerDay = 1440

// ParseClock parses a "HH:MM" 24-hour clock string into minutes since
// midnight. 24:00 is accepted as the end-of-day boundary.
func ParseClock(s string) (int, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	mins, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("invalid clock value %q", s)
	}
	if hours < 0 || hours > 24 || mins < 0 || mins > 59 || (hours == 24 && mins != 0) {
		return 0, fmt.Errorf("clock value %q out of range", s)
	}
	return hours*60 + mins, nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses a "YYYY-MM-DD" date string.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(s))
}

// FormatDate renders a time as "YYYY-MM-DD".
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// DatesBetween returns every date in the inclusive range startDate..endDate
// as "YYYY-MM-DD" strings. An empty slice is returned when endDate precedes
// startDate.
func DatesBetween(startDate, endDate string) ([]string, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return nil, err
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return nil, err
	}
	var dates []string
	for cur := start; !cur.After(end); cur = cur.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(cur))
	}
	return dates, nil
}
