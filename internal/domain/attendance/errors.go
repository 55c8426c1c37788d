package attendance

import "errors"

var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrManualEntryNotFound = errors.New("manual entry not found")
	ErrNotEligible         = errors.New("manual entry not allowed for this day")
	ErrUnknownTimeSlot     = errors.New("unknown attendance time slot")
)
