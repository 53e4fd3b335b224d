package dateutil

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar date layout used in configuration files
const DateLayout = "2006-01-02"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// ParseDate parses a YYYY-MM-DD string into a local calendar date.
// Out-of-range components such as "2024-13-40" are rejected.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// CompareDates compares the calendar dates of a and b, ignoring time of day
// and location. Returns -1, 0 or +1.
func CompareDates(a, b time.Time) int {
	ka, kb := dayKey(a), dayKey(b)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

// OnOrBefore returns true if date falls on or before limit's calendar date
func OnOrBefore(date, limit time.Time) bool {
	return CompareDates(date, limit) <= 0
}

func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
