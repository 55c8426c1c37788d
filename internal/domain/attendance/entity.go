package attendance

import (
	"strings"
	"time"
)

// Planned day types. ScheduleType is the planned shape of the day, independent
// of whether the employee actually logged time.
const (
	ScheduleTypeDuty       = "duty"
	ScheduleTypeWork       = "work"
	ScheduleTypeOff        = "off"
	ScheduleTypeHolidayOff = "holiday_off"
	ScheduleTypeHoliday    = "holiday"
	ScheduleTypeLeave      = "leave"
	ScheduleTypeOnDuty     = "on duty"
)

// Current status values.
const (
	StatusDuty       = "Duty"
	StatusOnDuty     = "On Duty"
	StatusOff        = "Off"
	StatusHolidayOff = "Holiday Off"
	StatusLeave      = "Leave"
	StatusAbsent     = "Absent"
)

// Legacy status values still present in older records. They must be rendered,
// never rejected.
const (
	StatusPresent    = "Present"
	StatusLate       = "Late"
	StatusIncomplete = "Incomplete"
	StatusNoShow     = "No Show"
	StatusScheduled  = "Scheduled"
)

// KnownStatusValues is the full recognized set. Anything outside it renders
// under the "Others" bucket with its raw label preserved.
var KnownStatusValues = []string{
	StatusDuty, StatusOnDuty, StatusOff, StatusHolidayOff, StatusLeave, StatusAbsent,
	StatusPresent, StatusLate, StatusIncomplete, StatusNoShow, StatusScheduled,
}

type PunchSource string

const (
	SourceBiometric PunchSource = "biometric"
	SourceManual    PunchSource = "manual"
)

// PunchLog is a single time-in/time-out punch with its provenance.
type PunchLog struct {
	Time   time.Time
	Source PunchSource
	// ManualEntryID links a manual punch back to the originating entry.
	ManualEntryID *string
}

func (p *PunchLog) IsManual() bool {
	return p != nil && p.Source == SourceManual
}

type ShiftKind string

const (
	ShiftStandard ShiftKind = "Standard"
	ShiftShifting ShiftKind = "Shifting"
)

// StandardShift is a split morning/afternoon pattern with four punch slots.
// Times are local "HH:MM" values.
type StandardShift struct {
	MorningIn    string
	MorningOut   string
	AfternoonIn  string
	AfternoonOut string
}

// ShiftingShift is a single contiguous work block with two punch slots.
type ShiftingShift struct {
	StartTime string
	EndTime   string
}

// ShiftTemplate is a tagged union over the two shift shapes. Exactly the
// payload matching Kind is set; the reconciler branches on Kind exhaustively.
type ShiftTemplate struct {
	Kind     ShiftKind
	Standard *StandardShift
	Shifting *ShiftingShift
}

// SlotName identifies one of the six punch slots.
type SlotName string

const (
	SlotMorningIn    SlotName = "morningIn"
	SlotMorningOut   SlotName = "morningOut"
	SlotAfternoonIn  SlotName = "afternoonIn"
	SlotAfternoonOut SlotName = "afternoonOut"
	SlotTimeIn       SlotName = "timeIn"
	SlotTimeOut      SlotName = "timeOut"
)

var StandardSlots = []SlotName{SlotMorningIn, SlotMorningOut, SlotAfternoonIn, SlotAfternoonOut}

var ShiftingSlots = []SlotName{SlotTimeIn, SlotTimeOut}

var AllSlots = []SlotName{
	SlotMorningIn, SlotMorningOut, SlotAfternoonIn, SlotAfternoonOut,
	SlotTimeIn, SlotTimeOut,
}

type EntryType string

const (
	EntryCheckIn  EntryType = "CheckIn"
	EntryCheckOut EntryType = "CheckOut"
)

// EntryTypeForSlot derives check-in/check-out semantics from the slot
// identifier alone: a name containing "Out" is a check-out, a name containing
// "In" is a check-in. The mapping holds for all six slot names.
func EntryTypeForSlot(slot SlotName) (EntryType, bool) {
	name := string(slot)
	switch {
	case strings.Contains(name, "Out"):
		return EntryCheckOut, true
	case strings.Contains(name, "In"):
		return EntryCheckIn, true
	default:
		return "", false
	}
}

// AttendanceRecord is one employee-day inside a duty-schedule period, as
// fetched from the store. The reconciler annotates records for display but
// never mutates stored history; manual entries are applied by the store before
// the next fetch.
type AttendanceRecord struct {
	ID                 string
	SchedulePeriodID   string
	EmployeeID         string
	EmployeeName       string
	HospitalEmployeeID string
	// DatePH is the local calendar date this record covers, "YYYY-MM-DD".
	DatePH       string
	ScheduleType string
	Shift        *ShiftTemplate

	// Standard-shift punches
	MorningInLog    *PunchLog
	MorningOutLog   *PunchLog
	AfternoonInLog  *PunchLog
	AfternoonOutLog *PunchLog

	// Shifting-shift punches, also the fallback pair when Shift is absent
	TimeInLog  *PunchLog
	TimeOutLog *PunchLog

	Status string
	// Lateness is computed upstream from punch time vs. shift boundary and
	// carried through as given.
	MorningLateMinutes   int
	AfternoonLateMinutes int
	LateMinutes          int

	Remarks   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PunchAt returns the punch stored in the named slot.
func (r *AttendanceRecord) PunchAt(slot SlotName) *PunchLog {
	switch slot {
	case SlotMorningIn:
		return r.MorningInLog
	case SlotMorningOut:
		return r.MorningOutLog
	case SlotAfternoonIn:
		return r.AfternoonInLog
	case SlotAfternoonOut:
		return r.AfternoonOutLog
	case SlotTimeIn:
		return r.TimeInLog
	case SlotTimeOut:
		return r.TimeOutLog
	}
	return nil
}

// DisplaySlots resolves which punch slots the record surfaces, by shift shape.
// A record with no shift template falls back to the single timeIn/timeOut pair.
func (r *AttendanceRecord) DisplaySlots() []SlotName {
	if r.Shift == nil {
		return ShiftingSlots
	}
	switch r.Shift.Kind {
	case ShiftStandard:
		return StandardSlots
	case ShiftShifting:
		return ShiftingSlots
	}
	return ShiftingSlots
}

// ManualEntry is the write-side counterpart of a manual punch. The store
// applies it to the matching attendance slot; the next fetch sees the punch
// with manual provenance.
type ManualEntry struct {
	ID           string
	AttendanceID string
	EmployeeID   string
	LogTime      time.Time
	Type         EntryType
	TimeType     SlotName
	Remarks      string
	CreatedBy    string
	CreatedAt    time.Time
}
