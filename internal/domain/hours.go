package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// HoursFor selects the opening window for the weekday of t: Sunday and
// Saturday have their own windows, Monday through Friday share one.
func (h BusinessHours) HoursFor(t time.Time) TimeRange {
	switch t.Weekday() {
	case time.Sunday:
		return h.Sunday
	case time.Saturday:
		return h.Saturday
	default:
		return h.Weekday
	}
}

// IsOpenAt reports whether the store is open at t. A nil hours table
// means the store is always open. When the close time is at or before
// the open time (close 00:00 reads as midnight) the window spans
// midnight: open when now >= open or now < close. Otherwise the window
// is the half-open interval [open, close).
func IsOpenAt(hours *BusinessHours, t time.Time) bool {
	if hours == nil {
		return true
	}

	window := hours.HoursFor(t)

	open, err := parseMinutes(window.Open)
	if err != nil {
		return true
	}
	closeAt, err := parseMinutes(window.Close)
	if err != nil {
		return true
	}

	now := t.Hour()*60 + t.Minute()

	if closeAt <= open {
		return now >= open || now < closeAt
	}
	return now >= open && now < closeAt
}

// parseMinutes converts an "HH:MM" time of day to minutes since
// midnight.
func parseMinutes(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("time %q out of range", s)
	}
	return h*60 + m, nil
}
