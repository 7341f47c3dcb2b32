package traffic

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the canonical storage and wire format of a record date.
	DateLayout = "2006-01-02"

	// lenientDateLayout also accepts non-zero-padded month and day ("2025-3-1").
	lenientDateLayout = "2006-1-2"
)

// ParseDate parses a canonical "YYYY-MM-DD" date. It rejects dates that do
// not exist on the calendar and strings that do not round-trip unchanged.
func ParseDate(s string) (time.Time, error) {
	if len(s) != len(DateLayout) {
		return time.Time{}, fmt.Errorf("date %q is not in YYYY-MM-DD format", s)
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q is not a valid calendar date: %w", s, err)
	}
	if t.Format(DateLayout) != s {
		return time.Time{}, fmt.Errorf("date %q is not a valid calendar date", s)
	}
	return t, nil
}

// IsValidDate reports whether s is a canonical, existing calendar date.
func IsValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// parseBound parses a range bound. Bounds are user supplied, so padding is optional.
func parseBound(s string) (time.Time, error) {
	t, err := time.Parse(lenientDateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not a date", ErrInvalidRange, s)
	}
	return t, nil
}

// weekStart returns the Sunday on or before t.
func weekStart(t time.Time) time.Time {
	return t.AddDate(0, 0, -int(t.Weekday()))
}
