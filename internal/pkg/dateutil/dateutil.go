package dateutil

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
	ClockLayout = "15:04"
)

// Clock renders and parses calendar dates in the organization's local timezone.
// Everything downstream compares the canonical "YYYY-MM-DD" strings it produces;
// comparing strings instead of instants keeps day boundaries stable regardless
// of the server's own zone.
type Clock struct {
	loc *time.Location
}

func NewClock(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return &Clock{loc: loc}, nil
}

func (c *Clock) Location() *time.Location {
	return c.loc
}

// FormatDate renders an instant as a local "YYYY-MM-DD" string.
func (c *Clock) FormatDate(t time.Time) string {
	return t.In(c.loc).Format(DateLayout)
}

// Today returns the current local calendar date.
func (c *Clock) Today() string {
	return c.FormatDate(time.Now())
}

// ParseDate parses a "YYYY-MM-DD" string as local midnight.
func (c *Clock) ParseDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, dateStr, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", dateStr, err)
	}
	return t, nil
}

// CombineDateTime combines a local calendar date with a 24-hour "HH:MM"
// time-of-day into an absolute instant.
func (c *Clock) CombineDateTime(dateStr, clockStr string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+ClockLayout, dateStr+" "+clockStr, c.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("combine %q %q: %w", dateStr, clockStr, err)
	}
	return t, nil
}

// AddDays shifts a local calendar date by a number of days.
func (c *Clock) AddDays(dateStr string, days int) (string, error) {
	t, err := c.ParseDate(dateStr)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(DateLayout), nil
}

// MonthLabel returns the "YYYY-MM" label of a calendar date.
func MonthLabel(dateStr string) string {
	if len(dateStr) < len(MonthLayout) {
		return dateStr
	}
	return dateStr[:len(MonthLayout)]
}

// DaysBetween returns the absolute distance in days between two calendar dates.
func DaysBetween(a, b string) (int, error) {
	ta, err := time.Parse(DateLayout, a)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", a, err)
	}
	tb, err := time.Parse(DateLayout, b)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", b, err)
	}
	days := int(tb.Sub(ta).Hours() / 24)
	if days < 0 {
		days = -days
	}
	return days, nil
}
