package attendance

import (
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/user"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/dateutil"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/validator"
)

// OthersLabel is the fallback bucket for status values outside the known set.
const OthersLabel = "Others"

// LatenessNone is the explicit marker shown when a record has no lateness to
// display; the cell is never left blank.
const LatenessNone = "none"

// statusStyles maps each known status to its presentation tuple.
var statusStyles = map[string]attendance.StatusStyle{
	attendance.StatusDuty:       {Background: "#E6F4EA", Text: "#1E7D34", Border: "#A5D6A7", Label: attendance.StatusDuty},
	attendance.StatusOnDuty:     {Background: "#E3F2FD", Text: "#1565C0", Border: "#90CAF9", Label: attendance.StatusOnDuty},
	attendance.StatusOff:        {Background: "#F5F5F5", Text: "#616161", Border: "#E0E0E0", Label: attendance.StatusOff},
	attendance.StatusHolidayOff: {Background: "#FFF8E1", Text: "#8D6E08", Border: "#FFE082", Label: attendance.StatusHolidayOff},
	attendance.StatusLeave:      {Background: "#F3E5F5", Text: "#6A1B9A", Border: "#CE93D8", Label: attendance.StatusLeave},
	attendance.StatusAbsent:     {Background: "#FDECEA", Text: "#C62828", Border: "#EF9A9A", Label: attendance.StatusAbsent},

	// Legacy statuses from older data keep rendering with their own styles.
	attendance.StatusPresent:    {Background: "#E6F4EA", Text: "#1E7D34", Border: "#A5D6A7", Label: attendance.StatusPresent},
	attendance.StatusLate:       {Background: "#FFF3E0", Text: "#B45309", Border: "#FFCC80", Label: attendance.StatusLate},
	attendance.StatusIncomplete: {Background: "#FFF8E1", Text: "#8D6E08", Border: "#FFE082", Label: attendance.StatusIncomplete},
	attendance.StatusNoShow:     {Background: "#FDECEA", Text: "#C62828", Border: "#EF9A9A", Label: attendance.StatusNoShow},
	attendance.StatusScheduled:  {Background: "#E3F2FD", Text: "#1565C0", Border: "#90CAF9", Label: attendance.StatusScheduled},
}

// StyleForStatus maps a status value to its presentation tuple. Unknown values
// render under a neutral "Others" style with the raw string preserved as the
// label; they are never dropped.
func StyleForStatus(status string) attendance.StatusStyle {
	if style, ok := statusStyles[status]; ok {
		return style
	}
	return attendance.StatusStyle{
		Background: "#FAFAFA",
		Text:       "#424242",
		Border:     "#BDBDBD",
		Label:      status,
	}
}

// IsKnownStatus reports whether the status belongs to the known set.
func IsKnownStatus(status string) bool {
	return validator.IsInSlice(status, attendance.KnownStatusValues)
}

// Reconciler turns raw period records into display-ready rows. It is pure:
// reconciling the same input again produces the same output, and the input is
// never mutated, so callers can safely discard stale results.
type Reconciler struct {
	clock *dateutil.Clock
}

func NewReconciler(clock *dateutil.Clock) *Reconciler {
	return &Reconciler{clock: clock}
}

// Reconcile annotates every record of one duty-schedule period. It does not
// invent missing days. Role drives the per-slot edit affordances.
func (r *Reconciler) Reconcile(records []attendance.AttendanceRecord, role user.Role) []attendance.ReconciledRecordResponse {
	out := make([]attendance.ReconciledRecordResponse, 0, len(records))
	for i := range records {
		out = append(out, r.reconcileRecord(&records[i], role))
	}
	return out
}

func (r *Reconciler) reconcileRecord(rec *attendance.AttendanceRecord, role user.Role) attendance.ReconciledRecordResponse {
	resp := attendance.ReconciledRecordResponse{
		ID:                 rec.ID,
		EmployeeID:         rec.EmployeeID,
		EmployeeName:       rec.EmployeeName,
		HospitalEmployeeID: rec.HospitalEmployeeID,
		Date:               rec.DatePH,
		ScheduleType:       rec.ScheduleType,
		Status:             StyleForStatus(rec.Status),
		Remarks:            rec.Remarks,
	}
	if rec.Shift != nil {
		resp.ShiftKind = string(rec.Shift.Kind)
	}

	slots := rec.DisplaySlots()
	resp.Slots = make([]attendance.SlotView, 0, len(slots))
	for _, slot := range slots {
		resp.Slots = append(resp.Slots, r.slotView(rec, slot, role))
	}

	// Lateness is display-only here, computed upstream; each half shows only
	// when positive.
	if rec.MorningLateMinutes > 0 {
		v := rec.MorningLateMinutes
		resp.MorningLateMinutes = &v
	}
	if rec.AfternoonLateMinutes > 0 {
		v := rec.AfternoonLateMinutes
		resp.AfternoonLateMinutes = &v
	}
	if rec.LateMinutes > 0 {
		v := rec.LateMinutes
		resp.LateMinutes = &v
	}
	if resp.MorningLateMinutes == nil && resp.AfternoonLateMinutes == nil && resp.LateMinutes == nil {
		resp.LatenessLabel = LatenessNone
	}

	return resp
}

func (r *Reconciler) slotView(rec *attendance.AttendanceRecord, slot attendance.SlotName, role user.Role) attendance.SlotView {
	view := attendance.SlotView{Slot: string(slot)}
	eligible := IsManualEntryEligible(rec, slot, role)

	punch := rec.PunchAt(slot)
	if punch == nil {
		// An empty slot becomes an actionable create affordance when the
		// acting role may backfill this day.
		view.Actionable = eligible
		return view
	}

	formatted := punch.Time.In(r.clock.Location()).Format(dateutil.ClockLayout)
	view.Time = &formatted
	view.Source = string(punch.Source)
	view.ManualEntryID = punch.ManualEntryID
	// Only manual punches can be re-opened for editing.
	view.Editable = punch.IsManual() && eligible
	return view
}

// SummarizeStatuses counts a page of records per status for the summary strip.
// Others is the complement of the known status set.
func SummarizeStatuses(records []attendance.ReconciledRecordResponse) attendance.StatusSummary {
	summary := attendance.StatusSummary{Counts: make(map[string]int)}
	for _, rec := range records {
		if IsKnownStatus(rec.Status.Label) {
			summary.Counts[rec.Status.Label]++
			continue
		}
		summary.Others++
	}
	return summary
}
