package timeutil

import (
	"strings"
	"time"
)

const (
	// DateLayout defines the canonical date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// KickoffLayout is how start times are shown on the schedule.
	KickoffLayout = "Mon Jan 2, 15:04 MST"
)

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseKickoff reads an upstream start time. Both RFC 3339 timestamps and bare
// dates occur; anything else fails.
func ParseKickoff(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return ParseDate(value)
}

// FormatKickoff renders a start time in loc, passing unparseable values through unchanged.
func FormatKickoff(value string, loc *time.Location) string {
	t, err := ParseKickoff(value)
	if err != nil {
		return value
	}
	if loc == nil {
		loc = time.UTC
	}
	if len(strings.TrimSpace(value)) == len(DateLayout) {
		return FormatDate(t)
	}
	return t.In(loc).Format(KickoffLayout)
}
