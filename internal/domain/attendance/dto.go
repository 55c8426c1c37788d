package attendance

import (
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// ListRequest fetches the reconciled attendance of one duty-schedule period.
// Search is an opaque identity token: a 24-character hex value filters to that
// exact employee, anything else passes through unfiltered (name search is
// resolved upstream into an id, or ignored).
type ListRequest struct {
	SchedulePeriodID string `json:"-"`
	Search           string `json:"search,omitempty"`

	// Pagination
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

func (r *ListRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.SchedulePeriodID) {
		errs = append(errs, validator.ValidationError{
			Field:   "schedule_period_id",
			Message: "schedule_period_id is required",
		})
	}

	// Page validation
	if r.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if r.Page == 0 {
		r.Page = 1 // Default page
	}

	// Limit validation
	if r.Limit < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must be a positive number",
		})
	}
	if r.Limit == 0 {
		r.Limit = 20 // Default limit
	}
	if r.Limit > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "limit",
			Message: "limit must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ManualEntryRequest backfills one punch slot. Date and Time are local values;
// the service combines them into an absolute instant and reports a time-field
// error if the combination fails.
type ManualEntryRequest struct {
	AttendanceID string `json:"attendance_id"`
	EmployeeID   string `json:"employee_id"`
	Date         string `json:"date"`      // YYYY-MM-DD
	Time         string `json:"time"`      // HH:MM, 24-hour
	TimeType     string `json:"time_type"` // one of the six slot names
	Remarks      string `json:"remarks"`
}

func (r *ManualEntryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_id",
			Message: "attendance_id is required",
		})
	}

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if !validator.IsValidClockTime(r.Time) {
		errs = append(errs, validator.ValidationError{
			Field:   "time",
			Message: "time must be a valid 24-hour HH:MM value",
		})
	}

	if validator.IsEmpty(r.Remarks) {
		errs = append(errs, validator.ValidationError{
			Field:   "remarks",
			Message: "remarks is required",
		})
	}

	if _, ok := EntryTypeForSlot(SlotName(r.TimeType)); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "time_type",
			Message: "time_type must be one of: morningIn, morningOut, afternoonIn, afternoonOut, timeIn, timeOut",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StatusStyle is the presentation tuple for a status value. Unknown statuses
// keep their raw string as Label under a neutral "Others" style.
type StatusStyle struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Border     string `json:"border"`
	Label      string `json:"label"`
}

// SlotView is one punch slot resolved for display.
type SlotView struct {
	Slot          string  `json:"slot"`
	Time          *string `json:"time,omitempty"` // local HH:MM
	Source        string  `json:"source,omitempty"`
	ManualEntryID *string `json:"manual_entry_id,omitempty"`
	// Editable: an existing manual punch the acting role may re-open.
	Editable bool `json:"editable"`
	// Actionable: an empty slot the acting role may fill in create mode.
	Actionable bool `json:"actionable"`
}

type ReconciledRecordResponse struct {
	ID                 string      `json:"id"`
	EmployeeID         string      `json:"employee_id"`
	EmployeeName       string      `json:"employee_name"`
	HospitalEmployeeID string      `json:"hospital_employee_id"`
	Date               string      `json:"date"`
	ScheduleType       string      `json:"schedule_type"`
	ShiftKind          string      `json:"shift_kind,omitempty"`
	Status             StatusStyle `json:"status"`
	Slots              []SlotView  `json:"slots"`

	// Lateness per half-shift, present only when > 0
	MorningLateMinutes   *int `json:"morning_late_minutes,omitempty"`
	AfternoonLateMinutes *int `json:"afternoon_late_minutes,omitempty"`
	// LateMinutes is the aggregate lateness shifting-shift records carry,
	// present only when > 0.
	LateMinutes *int `json:"late_minutes,omitempty"`
	// LatenessLabel is the explicit "none" marker when no lateness field is
	// present; the cell is never blank.
	LatenessLabel string `json:"lateness_label"`

	Remarks *string `json:"remarks,omitempty"`
}

// StatusSummary counts records per status for the summary strip. Others is the
// complement of the known status set, not a tag stored on any record.
type StatusSummary struct {
	Counts map[string]int `json:"counts"`
	Others int            `json:"others"`
}

type ListAttendanceResponse struct {
	TotalCount int64                      `json:"total_count"`
	Page       int                        `json:"page"`
	Limit      int                        `json:"limit"`
	TotalPages int                        `json:"total_pages"`
	Showing    string                     `json:"showing"`
	Summary    StatusSummary              `json:"summary"`
	Records    []ReconciledRecordResponse `json:"records"`
}

type ManualEntryResponse struct {
	ID           string `json:"id"`
	AttendanceID string `json:"attendance_id"`
	EmployeeID   string `json:"employee_id"`
	LogTime      string `json:"log_time"` // RFC3339
	Type         string `json:"type"`
	TimeType     string `json:"time_type"`
	Remarks      string `json:"remarks"`
}
