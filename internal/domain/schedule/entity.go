package schedule

import "time"

// DutySchedulePeriod is a department-scoped date range with an approved work
// calendar. Periods for one department may overlap; that is expected data, not
// an error. Periods are immutable once approved, this service only reads them.
//
// StartDate, EndDate and reference dates are canonical "YYYY-MM-DD" strings in
// the organization timezone and are compared lexically. Comparing strings
// instead of instants avoids timezone drift at day boundaries; do not replace
// these comparisons with instant comparisons.
type DutySchedulePeriod struct {
	ID           string
	DepartmentID string
	Name         string
	StartDate    string
	EndDate      string
	// MonthSchedule is the nominal "YYYY-MM" label of the period. It may
	// diverge from StartDate's month for cutoff periods (e.g. the 26th of one
	// month through the 25th of the next).
	MonthSchedule string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsComplete reports whether the period carries the fields selection relies on.
// Incomplete periods are silently excluded by the catalog filter.
func (p DutySchedulePeriod) IsComplete() bool {
	return p.ID != "" && p.StartDate != "" && p.EndDate != ""
}

// HasStarted reports whether the period has begun on or before the reference
// date. A period cannot be active before it starts, even if a data error puts
// the reference date inside its range.
func (p DutySchedulePeriod) HasStarted(referenceDate string) bool {
	return p.StartDate <= referenceDate
}

// Contains reports whether the reference date falls inside the period's
// inclusive [StartDate, EndDate] range.
func (p DutySchedulePeriod) Contains(referenceDate string) bool {
	return p.StartDate <= referenceDate && referenceDate <= p.EndDate
}

// TieBreakPolicy decides which of several overlapping periods wins when none
// matches the reference month label exactly. The two observed dashboard
// behaviors disagree on this, so it stays configurable.
type TieBreakPolicy string

const (
	// TieBreakGreatestLabel prefers the lexicographically greatest
	// MonthSchedule label: an already-approved later period covering the same
	// day takes precedence.
	TieBreakGreatestLabel TieBreakPolicy = "greatest-label"
	// TieBreakFirstMatch keeps the earliest containing period.
	TieBreakFirstMatch TieBreakPolicy = "first-match"
)
