package attendance

import (
	"testing"

	"github.com/mediserve-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func eligibilityRecord(scheduleType, status string) *attendance.AttendanceRecord {
	return &attendance.AttendanceRecord{
		ID:           "r1",
		EmployeeID:   "64a7f0c2e4b0a1b2c3d4e5f6",
		DatePH:       "2025-07-28",
		ScheduleType: scheduleType,
		Status:       status,
	}
}

func TestIsManualEntryEligible(t *testing.T) {
	cases := []struct {
		name         string
		scheduleType string
		status       string
		slot         attendance.SlotName
		role         user.Role
		want         bool
	}{
		{"manager on duty day", attendance.ScheduleTypeDuty, attendance.StatusAbsent, attendance.SlotMorningIn, user.RoleManager, true},
		{"manager on work day", attendance.ScheduleTypeWork, attendance.StatusIncomplete, attendance.SlotTimeOut, user.RoleManager, true},
		{"schedule type case-insensitive", "Duty", attendance.StatusAbsent, attendance.SlotMorningIn, user.RoleManager, true},
		{"off day blocks any role", attendance.ScheduleTypeOff, attendance.StatusOff, attendance.SlotMorningIn, user.RoleManager, false},
		{"OFF uppercase still blocked", "OFF", attendance.StatusAbsent, attendance.SlotMorningIn, user.RoleManager, false},
		{"holiday_off blocked", attendance.ScheduleTypeHolidayOff, attendance.StatusAbsent, attendance.SlotMorningIn, user.RoleManager, false},
		{"holiday blocked", attendance.ScheduleTypeHoliday, attendance.StatusAbsent, attendance.SlotMorningIn, user.RoleManager, false},
		{"leave blocked", attendance.ScheduleTypeLeave, attendance.StatusAbsent, attendance.SlotMorningIn, user.RoleManager, false},
		{"on duty blocked", attendance.ScheduleTypeOnDuty, attendance.StatusAbsent, attendance.SlotMorningIn, user.RoleManager, false},
		{"restricted status blocks duty day", attendance.ScheduleTypeDuty, "Leave", attendance.SlotMorningIn, user.RoleManager, false},
		{"restricted status case-insensitive", attendance.ScheduleTypeDuty, "OFF", attendance.SlotMorningIn, user.RoleManager, false},
		{"director blocked on duty day", attendance.ScheduleTypeDuty, attendance.StatusAbsent, attendance.SlotMorningIn, user.RoleDirector, false},
		{"hr blocked on duty day", attendance.ScheduleTypeDuty, attendance.StatusAbsent, attendance.SlotMorningIn, user.RoleHR, false},
		{"employee blocked on duty day", attendance.ScheduleTypeDuty, attendance.StatusAbsent, attendance.SlotMorningIn, user.RoleEmployee, false},
		{"undetermined schedule type", "", attendance.StatusAbsent, attendance.SlotMorningIn, user.RoleManager, false},
		{"unrecognized schedule type", "standby", attendance.StatusAbsent, attendance.SlotMorningIn, user.RoleManager, false},
		{"unknown slot", attendance.ScheduleTypeDuty, attendance.StatusAbsent, attendance.SlotName("lunch"), user.RoleManager, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := IsManualEntryEligible(eligibilityRecord(c.scheduleType, c.status), c.slot, c.role)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestIsManualEntryEligible_NilRecord(t *testing.T) {
	assert.False(t, IsManualEntryEligible(nil, attendance.SlotMorningIn, user.RoleManager))
}

func TestEntryTypeForSlot_AllSixSlots(t *testing.T) {
	cases := map[attendance.SlotName]attendance.EntryType{
		attendance.SlotMorningIn:    attendance.EntryCheckIn,
		attendance.SlotMorningOut:   attendance.EntryCheckOut,
		attendance.SlotAfternoonIn:  attendance.EntryCheckIn,
		attendance.SlotAfternoonOut: attendance.EntryCheckOut,
		attendance.SlotTimeIn:       attendance.EntryCheckIn,
		attendance.SlotTimeOut:      attendance.EntryCheckOut,
	}
	for slot, want := range cases {
		got, ok := attendance.EntryTypeForSlot(slot)
		assert.True(t, ok, "slot %s", slot)
		assert.Equal(t, want, got, "slot %s", slot)
	}

	_, ok := attendance.EntryTypeForSlot("break")
	assert.False(t, ok)
}
