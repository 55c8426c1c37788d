package schedule

import (
	"testing"

	"github.com/mediserve-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func period(id, start, end, monthLabel string) schedule.DutySchedulePeriod {
	return schedule.DutySchedulePeriod{
		ID:            id,
		Name:          "Duty Schedule " + monthLabel,
		StartDate:     start,
		EndDate:       end,
		MonthSchedule: monthLabel,
	}
}

func TestFilterStartedSchedules_ExcludesFutureAndMalformed(t *testing.T) {
	catalog := []schedule.DutySchedulePeriod{
		period("p1", "2025-06-26", "2025-07-25", "2025-07"),
		period("p2", "2025-07-26", "2025-08-25", "2025-08"),
		period("p3", "2025-08-26", "2025-09-25", "2025-09"), // not yet started
		{ID: "", StartDate: "2025-07-01", EndDate: "2025-07-31"},  // missing id
		{ID: "p5", StartDate: "", EndDate: "2025-07-31"},          // missing start
	}

	got := FilterStartedSchedules(catalog, "2025-07-28")

	require.Len(t, got, 2)
	for _, p := range got {
		assert.LessOrEqual(t, p.StartDate, "2025-07-28")
	}
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p2", got[1].ID)
}

func TestSelectActiveSchedule_EmptyCatalog(t *testing.T) {
	sel := SelectActiveSchedule(nil, "2025-07-28", schedule.TieBreakGreatestLabel)

	assert.Empty(t, sel.Sorted)
	assert.Equal(t, 0, sel.SelectedIndex)
	assert.Nil(t, sel.Selected())
}

func TestSelectActiveSchedule_UniqueContainingPeriod(t *testing.T) {
	catalog := []schedule.DutySchedulePeriod{
		period("p2", "2025-07-26", "2025-08-25", "2025-08"),
		period("p1", "2025-06-26", "2025-07-25", "2025-07"),
	}

	sel := SelectActiveSchedule(catalog, "2025-07-10", schedule.TieBreakGreatestLabel)

	require.NotNil(t, sel.Selected())
	assert.Equal(t, "p1", sel.Selected().ID)
	assert.Equal(t, 0, sel.SelectedIndex, "catalog must be sorted ascending by start date")
}

func TestSelectActiveSchedule_ExactMonthLabelBeatsGreaterLabel(t *testing.T) {
	// 2025-07-28 sits in the tail of the July cutoff period and the lead-in of
	// the August one. The exact label match on "2025-07" must win before the
	// greatest-label rule is consulted.
	catalog := []schedule.DutySchedulePeriod{
		period("p1", "2025-06-26", "2025-07-28", "2025-07"),
		period("p2", "2025-07-26", "2025-08-25", "2025-08"),
	}

	sel := SelectActiveSchedule(catalog, "2025-07-28", schedule.TieBreakGreatestLabel)

	require.NotNil(t, sel.Selected())
	assert.Equal(t, "p1", sel.Selected().ID)
}

func TestSelectActiveSchedule_GreatestLabelWinsWithoutExactMatch(t *testing.T) {
	// Both overrunning periods contain 2025-10-01, and neither carries the
	// "2025-10" label, so the lexicographically greater 2025-09 label wins
	// under the default policy.
	catalog := []schedule.DutySchedulePeriod{
		period("a", "2025-07-26", "2025-10-05", "2025-08"),
		period("b", "2025-08-26", "2025-10-10", "2025-09"),
	}

	sel := SelectActiveSchedule(catalog, "2025-10-01", schedule.TieBreakGreatestLabel)

	require.NotNil(t, sel.Selected())
	assert.Equal(t, "b", sel.Selected().ID)
}

func TestSelectActiveSchedule_FirstMatchPolicy(t *testing.T) {
	// Same overlap with no exact label match, but the first-match policy
	// keeps the earliest containing period instead.
	catalog := []schedule.DutySchedulePeriod{
		period("a", "2025-07-26", "2025-10-05", "2025-08"),
		period("b", "2025-08-26", "2025-10-10", "2025-09"),
	}

	sel := SelectActiveSchedule(catalog, "2025-10-01", schedule.TieBreakFirstMatch)

	require.NotNil(t, sel.Selected())
	assert.Equal(t, "a", sel.Selected().ID)
}

func TestSelectActiveSchedule_GapPicksClosestStart(t *testing.T) {
	catalog := []schedule.DutySchedulePeriod{
		period("p1", "2025-05-26", "2025-06-25", "2025-06"),
		period("p2", "2025-07-26", "2025-08-25", "2025-08"),
	}

	// 2025-07-20 falls between the two periods; p2's start is 6 days away,
	// p1's is 55.
	sel := SelectActiveSchedule(catalog, "2025-07-20", schedule.TieBreakGreatestLabel)

	require.NotNil(t, sel.Selected())
	assert.Equal(t, "p2", sel.Selected().ID)
}

func TestSelectActiveSchedule_GapTieBreaksToEarliestIndex(t *testing.T) {
	catalog := []schedule.DutySchedulePeriod{
		period("p1", "2025-07-10", "2025-07-12", "2025-07"),
		period("p2", "2025-07-18", "2025-07-20", "2025-07"),
	}

	// 2025-07-14 is 4 days from both starts.
	sel := SelectActiveSchedule(catalog, "2025-07-14", schedule.TieBreakGreatestLabel)

	require.NotNil(t, sel.Selected())
	assert.Equal(t, "p1", sel.Selected().ID)
}

func TestNavigator_AnchorAndBounds(t *testing.T) {
	clock, err := dateutil.NewClock("Asia/Manila")
	require.NoError(t, err)

	catalog := []schedule.DutySchedulePeriod{
		period("p1", "2025-06-26", "2025-07-25", "2025-07"),
		period("p2", "2025-07-26", "2025-08-25", "2025-08"),
	}
	sel := SelectActiveSchedule(catalog, "2025-08-10", schedule.TieBreakGreatestLabel)
	require.Equal(t, 1, sel.SelectedIndex)

	nav := NewNavigator(sel, clock)
	assert.Equal(t, "2025-08-10", nav.CurrentDate, "anchor is start date + 15 days")
	assert.True(t, nav.CanNavigatePrevious())
	assert.False(t, nav.CanNavigateNext())

	require.True(t, nav.Previous())
	assert.Equal(t, 0, nav.Selection().SelectedIndex)
	assert.Equal(t, "2025-07-11", nav.CurrentDate)
	assert.False(t, nav.CanNavigatePrevious())
	assert.True(t, nav.CanNavigateNext())

	assert.False(t, nav.Previous(), "cannot move before the first period")

	require.True(t, nav.Next())
	assert.Equal(t, 1, nav.Selection().SelectedIndex)
	assert.Equal(t, "2025-08-10", nav.CurrentDate)
}

func TestNavigator_EmptySelection(t *testing.T) {
	clock, err := dateutil.NewClock("Asia/Manila")
	require.NoError(t, err)

	nav := NewNavigator(Selection{}, clock)
	assert.Empty(t, nav.CurrentDate)
	assert.False(t, nav.CanNavigatePrevious())
	assert.False(t, nav.CanNavigateNext())
	assert.False(t, nav.Next())
	assert.False(t, nav.Previous())
}
