package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mediserve-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/user"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/dateutil"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	attendance.ManualEntryRepository
	schedule.DutyScheduleRepository
	reconciler *Reconciler
	clock      *dateutil.Clock
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	manualEntryRepo attendance.ManualEntryRepository,
	dutyScheduleRepo schedule.DutyScheduleRepository,
	clock *dateutil.Clock,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository:   attendanceRepo,
		ManualEntryRepository:  manualEntryRepo,
		DutyScheduleRepository: dutyScheduleRepo,
		reconciler:             NewReconciler(clock),
		clock:                  clock,
	}
}

// ListPeriodAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListPeriodAttendance(ctx context.Context, req attendance.ListRequest, role user.Role) (attendance.ListAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	if _, err := s.DutyScheduleRepository.GetByID(ctx, req.SchedulePeriodID); err != nil {
		if errors.Is(err, schedule.ErrPeriodNotFound) {
			return attendance.ListAttendanceResponse{}, schedule.ErrPeriodNotFound
		}
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to get duty schedule period: %w", err)
	}

	records, err := s.AttendanceRepository.ListByPeriod(ctx, req.SchedulePeriodID)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	reconciled := s.reconciler.Reconcile(records, role)
	reconciled = FilterByIdentity(reconciled, req.Search)

	total := int64(len(reconciled))
	page := Paginate(reconciled, req.Page, req.Limit)

	totalPages := int(math.Ceil(float64(total) / float64(req.Limit)))
	// The range reflects the records actually returned; an out-of-range page
	// shows none of them.
	showing := fmt.Sprintf("0 of %d", total)
	if len(page) > 0 {
		start := (req.Page-1)*req.Limit + 1
		showing = fmt.Sprintf("%d-%d of %d", start, start+len(page)-1, total)
	}

	return attendance.ListAttendanceResponse{
		TotalCount: total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
		Showing:    showing,
		Summary:    SummarizeStatuses(page),
		Records:    page,
	}, nil
}

// SubmitManualEntry implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) SubmitManualEntry(ctx context.Context, req attendance.ManualEntryRequest, role user.Role, createdBy string) (attendance.ManualEntryResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ManualEntryResponse{}, err
	}

	record, err := s.AttendanceRepository.GetByID(ctx, req.AttendanceID)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ManualEntryResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.ManualEntryResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	slot := attendance.SlotName(req.TimeType)
	if !IsManualEntryEligible(&record, slot, role) {
		return attendance.ManualEntryResponse{}, attendance.ErrNotEligible
	}

	logTime, err := s.clock.CombineDateTime(req.Date, req.Time)
	if err != nil {
		// A date+time pair that does not combine into a real instant is a
		// time-field error, never a silent default.
		return attendance.ManualEntryResponse{}, validator.ValidationErrors{{
			Field:   "time",
			Message: "date and time do not combine into a valid timestamp",
		}}
	}

	entryType, ok := attendance.EntryTypeForSlot(slot)
	if !ok {
		return attendance.ManualEntryResponse{}, attendance.ErrUnknownTimeSlot
	}

	entry := attendance.ManualEntry{
		AttendanceID: record.ID,
		EmployeeID:   req.EmployeeID,
		LogTime:      logTime,
		Type:         entryType,
		TimeType:     slot,
		Remarks:      strings.TrimSpace(req.Remarks),
		CreatedBy:    createdBy,
	}

	saved, err := s.ManualEntryRepository.Apply(ctx, entry)
	if err != nil {
		return attendance.ManualEntryResponse{}, fmt.Errorf("failed to apply manual entry: %w", err)
	}

	return attendance.ManualEntryResponse{
		ID:           saved.ID,
		AttendanceID: saved.AttendanceID,
		EmployeeID:   saved.EmployeeID,
		LogTime:      saved.LogTime.Format(time.RFC3339),
		Type:         string(saved.Type),
		TimeType:     string(saved.TimeType),
		Remarks:      saved.Remarks,
	}, nil
}

// GetManualEntry implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetManualEntry(ctx context.Context, id string) (attendance.ManualEntryResponse, error) {
	entry, err := s.ManualEntryRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, attendance.ErrManualEntryNotFound) {
			return attendance.ManualEntryResponse{}, attendance.ErrManualEntryNotFound
		}
		return attendance.ManualEntryResponse{}, fmt.Errorf("failed to get manual entry: %w", err)
	}

	return attendance.ManualEntryResponse{
		ID:           entry.ID,
		AttendanceID: entry.AttendanceID,
		EmployeeID:   entry.EmployeeID,
		LogTime:      entry.LogTime.Format(time.RFC3339),
		Type:         string(entry.Type),
		TimeType:     string(entry.TimeType),
		Remarks:      entry.Remarks,
	}, nil
}
