package dateutil

import (
	"testing"
	"time"
)

func newManilaClock(t *testing.T) *Clock {
	t.Helper()
	clock, err := NewClock("Asia/Manila")
	if err != nil {
		t.Fatalf("NewClock: %v", err)
	}
	return clock
}

func TestFormatDate_LocalBoundary(t *testing.T) {
	clock := newManilaClock(t)

	// 17:30 UTC is already the next calendar day in Manila (UTC+8).
	utc := time.Date(2025, 7, 27, 17, 30, 0, 0, time.UTC)
	got := clock.FormatDate(utc)
	if got != "2025-07-28" {
		t.Errorf("FormatDate = %q, want %q", got, "2025-07-28")
	}
}

func TestParseDate_RoundTrip(t *testing.T) {
	clock := newManilaClock(t)

	parsed, err := clock.ParseDate("2025-07-28")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := clock.FormatDate(parsed); got != "2025-07-28" {
		t.Errorf("round-trip = %q, want %q", got, "2025-07-28")
	}
}

func TestCombineDateTime(t *testing.T) {
	clock := newManilaClock(t)

	instant, err := clock.CombineDateTime("2025-07-28", "08:30")
	if err != nil {
		t.Fatalf("CombineDateTime: %v", err)
	}
	if instant.Hour() != 8 || instant.Minute() != 30 {
		t.Errorf("local time = %02d:%02d, want 08:30", instant.Hour(), instant.Minute())
	}
	if instant.Location().String() != "Asia/Manila" {
		t.Errorf("location = %q, want Asia/Manila", instant.Location())
	}

	if _, err := clock.CombineDateTime("2025-07-28", "25:00"); err == nil {
		t.Error("CombineDateTime accepted an invalid time-of-day")
	}
	if _, err := clock.CombineDateTime("not-a-date", "08:30"); err == nil {
		t.Error("CombineDateTime accepted an invalid date")
	}
}

func TestAddDays(t *testing.T) {
	clock := newManilaClock(t)

	got, err := clock.AddDays("2025-07-26", 15)
	if err != nil {
		t.Fatalf("AddDays: %v", err)
	}
	if got != "2025-08-10" {
		t.Errorf("AddDays = %q, want %q", got, "2025-08-10")
	}
}

func TestMonthLabel(t *testing.T) {
	if got := MonthLabel("2025-07-28"); got != "2025-07" {
		t.Errorf("MonthLabel = %q, want %q", got, "2025-07")
	}
}

func TestDaysBetween(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"2025-07-26", "2025-07-28", 2},
		{"2025-07-28", "2025-07-26", 2},
		{"2025-07-28", "2025-07-28", 0},
	}
	for _, c := range cases {
		got, err := DaysBetween(c.a, c.b)
		if err != nil {
			t.Fatalf("DaysBetween(%q, %q): %v", c.a, c.b, err)
		}
		if got != c.want {
			t.Errorf("DaysBetween(%q, %q) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
