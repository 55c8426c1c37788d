package attendance

import (
	"strings"

	"github.com/mediserve-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/user"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/validator"
)

// restrictedDayTypes are the planned day types (and statuses) that never take
// a manual punch.
var restrictedDayTypes = []string{
	attendance.ScheduleTypeOff,
	attendance.ScheduleTypeHolidayOff,
	attendance.ScheduleTypeHoliday,
	attendance.ScheduleTypeLeave,
	attendance.ScheduleTypeOnDuty,
}

// IsManualEntryEligible is the single predicate gating both the create
// affordance on empty slots and the edit affordance on existing manual
// punches. Create and edit paths must share it so the two cannot drift.
//
// Eligibility holds when the acting role may edit attendance, the planned day
// type and the record status are outside the restricted set, and the resolved
// schedule type is exactly duty or work. When the day shape cannot be
// determined the answer is false.
func IsManualEntryEligible(rec *attendance.AttendanceRecord, slot attendance.SlotName, role user.Role) bool {
	if rec == nil {
		return false
	}
	if !user.CanEditAttendance(role) {
		return false
	}
	if _, ok := attendance.EntryTypeForSlot(slot); !ok {
		return false
	}

	scheduleType := strings.TrimSpace(strings.ToLower(rec.ScheduleType))
	if scheduleType == "" {
		return false
	}
	if validator.IsInSliceFold(scheduleType, restrictedDayTypes) {
		return false
	}
	if validator.IsInSliceFold(strings.TrimSpace(rec.Status), restrictedDayTypes) {
		return false
	}

	return scheduleType == attendance.ScheduleTypeDuty || scheduleType == attendance.ScheduleTypeWork
}
