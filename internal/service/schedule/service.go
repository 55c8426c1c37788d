package schedule

import (
	"context"
	"fmt"
	"sort"

	"github.com/mediserve-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/dateutil"
)

// FilterStartedSchedules reduces a department's raw catalog to the periods
// that are structurally complete and have already started. Malformed periods
// are dropped silently; they are a data problem, not a user-facing error.
func FilterStartedSchedules(catalog []schedule.DutySchedulePeriod, referenceDate string) []schedule.DutySchedulePeriod {
	filtered := make([]schedule.DutySchedulePeriod, 0, len(catalog))
	for _, p := range catalog {
		if !p.IsComplete() {
			continue
		}
		if !p.HasStarted(referenceDate) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// Selection is the sorted catalog plus the position of the active period.
type Selection struct {
	Sorted        []schedule.DutySchedulePeriod
	SelectedIndex int
}

// Selected returns the active period, or nil for an empty catalog.
func (s Selection) Selected() *schedule.DutySchedulePeriod {
	if len(s.Sorted) == 0 {
		return nil
	}
	return &s.Sorted[s.SelectedIndex]
}

// SelectActiveSchedule chooses the single active period relative to the
// reference date. It never fails: an empty catalog yields an empty Selection
// with index 0.
//
// Containment and ordering compare "YYYY-MM-DD" strings lexically, never
// instants, so day boundaries cannot drift with the server timezone.
func SelectActiveSchedule(catalog []schedule.DutySchedulePeriod, referenceDate string, policy schedule.TieBreakPolicy) Selection {
	sorted := make([]schedule.DutySchedulePeriod, len(catalog))
	copy(sorted, catalog)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate < sorted[j].StartDate
	})

	if len(sorted) == 0 {
		return Selection{Sorted: sorted, SelectedIndex: 0}
	}

	var containing []int
	for i, p := range sorted {
		if p.Contains(referenceDate) {
			containing = append(containing, i)
		}
	}

	if len(containing) == 0 {
		// Reference date falls in a gap between periods: take the period whose
		// start is closest, earliest index winning ties.
		return Selection{Sorted: sorted, SelectedIndex: closestByStart(sorted, referenceDate)}
	}

	if len(containing) == 1 {
		return Selection{Sorted: sorted, SelectedIndex: containing[0]}
	}

	// Overlapping periods: an exact month-label match beats everything.
	refLabel := dateutil.MonthLabel(referenceDate)
	for _, idx := range containing {
		if sorted[idx].MonthSchedule == refLabel {
			return Selection{Sorted: sorted, SelectedIndex: idx}
		}
	}

	switch policy {
	case schedule.TieBreakFirstMatch:
		return Selection{Sorted: sorted, SelectedIndex: containing[0]}
	default:
		// Greatest month label wins: a later-dated approved period that still
		// covers the day takes precedence over an earlier one.
		best := containing[0]
		for _, idx := range containing[1:] {
			if sorted[idx].MonthSchedule > sorted[best].MonthSchedule {
				best = idx
			}
		}
		return Selection{Sorted: sorted, SelectedIndex: best}
	}
}

func closestByStart(sorted []schedule.DutySchedulePeriod, referenceDate string) int {
	best := 0
	bestDistance := -1
	for i, p := range sorted {
		distance, err := dateutil.DaysBetween(p.StartDate, referenceDate)
		if err != nil {
			continue
		}
		if bestDistance < 0 || distance < bestDistance {
			best = i
			bestDistance = distance
		}
	}
	return best
}

// displayAnchorOffsetDays places the display date pointer mid-period.
const displayAnchorOffsetDays = 15

// Navigator steps through a completed Selection without re-running selection.
// Moving the index only advances the display anchor, fixed at the new period's
// start date plus fifteen days.
type Navigator struct {
	selection   Selection
	clock       *dateutil.Clock
	CurrentDate string
}

func NewNavigator(selection Selection, clock *dateutil.Clock) *Navigator {
	n := &Navigator{selection: selection, clock: clock}
	n.CurrentDate = n.anchorFor(selection.SelectedIndex)
	return n
}

func (n *Navigator) Selection() Selection {
	return n.selection
}

func (n *Navigator) CanNavigatePrevious() bool {
	return n.selection.SelectedIndex > 0
}

func (n *Navigator) CanNavigateNext() bool {
	return n.selection.SelectedIndex < len(n.selection.Sorted)-1
}

// Previous moves to the chronologically earlier period. Returns false at the
// start of the catalog.
func (n *Navigator) Previous() bool {
	if !n.CanNavigatePrevious() {
		return false
	}
	n.selection.SelectedIndex--
	n.CurrentDate = n.anchorFor(n.selection.SelectedIndex)
	return true
}

// Next moves to the chronologically later period. Returns false at the end of
// the catalog.
func (n *Navigator) Next() bool {
	if !n.CanNavigateNext() {
		return false
	}
	n.selection.SelectedIndex++
	n.CurrentDate = n.anchorFor(n.selection.SelectedIndex)
	return true
}

func (n *Navigator) anchorFor(index int) string {
	if index < 0 || index >= len(n.selection.Sorted) {
		return ""
	}
	anchor, err := n.clock.AddDays(n.selection.Sorted[index].StartDate, displayAnchorOffsetDays)
	if err != nil {
		return ""
	}
	return anchor
}

type DutyScheduleServiceImpl struct {
	schedule.DutyScheduleRepository
	clock  *dateutil.Clock
	policy schedule.TieBreakPolicy
}

func NewDutyScheduleService(
	dutyScheduleRepo schedule.DutyScheduleRepository,
	clock *dateutil.Clock,
	policy schedule.TieBreakPolicy,
) schedule.DutyScheduleService {
	return &DutyScheduleServiceImpl{
		DutyScheduleRepository: dutyScheduleRepo,
		clock:                  clock,
		policy:                 policy,
	}
}

// GetDepartmentSchedules implements schedule.DutyScheduleService.
func (s *DutyScheduleServiceImpl) GetDepartmentSchedules(ctx context.Context, req schedule.CatalogRequest) (schedule.SelectionResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.SelectionResponse{}, err
	}

	referenceDate := req.Date
	if referenceDate == "" {
		referenceDate = s.clock.Today()
	}

	catalog, err := s.DutyScheduleRepository.ListByDepartment(ctx, req.DepartmentID)
	if err != nil {
		return schedule.SelectionResponse{}, fmt.Errorf("failed to list duty schedules: %w", err)
	}

	filtered := FilterStartedSchedules(catalog, referenceDate)
	selection := SelectActiveSchedule(filtered, referenceDate, s.policy)
	navigator := NewNavigator(selection, s.clock)

	periods := make([]schedule.PeriodResponse, 0, len(selection.Sorted))
	for _, p := range selection.Sorted {
		periods = append(periods, schedule.PeriodResponse{
			ID:            p.ID,
			Name:          p.Name,
			StartDate:     p.StartDate,
			EndDate:       p.EndDate,
			MonthSchedule: p.MonthSchedule,
		})
	}

	return schedule.SelectionResponse{
		Schedules:     periods,
		SelectedIndex: selection.SelectedIndex,
		CurrentDate:   navigator.CurrentDate,
		CanPrevious:   navigator.CanNavigatePrevious(),
		CanNext:       navigator.CanNavigateNext(),
	}, nil
}
