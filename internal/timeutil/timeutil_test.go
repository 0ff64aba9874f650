package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestParseKickoffAcceptsTimestampsAndDates(t *testing.T) {
	ts, err := ParseKickoff("2024-08-31T16:00:00.000Z")
	if err != nil {
		t.Fatalf("expected timestamp to parse, got %v", err)
	}
	if !ts.Equal(time.Date(2024, 8, 31, 16, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected time %s", ts)
	}
	if _, err := ParseKickoff(" 2024-08-31 "); err != nil {
		t.Fatalf("expected bare date to parse, got %v", err)
	}
	if _, err := ParseKickoff("TBD"); err == nil {
		t.Fatalf("expected parse failure")
	}
}

func TestFormatKickoff(t *testing.T) {
	cases := []struct {
		in   string
		loc  *time.Location
		want string
	}{
		{"2024-08-31T16:00:00.000Z", nil, "Sat Aug 31, 16:00 UTC"},
		{"2024-08-31T23:30:00Z", time.FixedZone("EDT", -4*60*60), "Sat Aug 31, 19:30 EDT"},
		{"2024-09-07", nil, "2024-09-07"},
		{"TBD", nil, "TBD"},
		{"", nil, ""},
	}
	for _, tc := range cases {
		if got := FormatKickoff(tc.in, tc.loc); got != tc.want {
			t.Fatalf("FormatKickoff(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
