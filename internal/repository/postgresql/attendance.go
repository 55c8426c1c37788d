package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

const attendanceColumns = `
	a.id, a.schedule_period_id, a.employee_id, e.full_name, e.hospital_employee_id,
	to_char(a.date_ph, 'YYYY-MM-DD'),
	a.schedule_type, a.shift_kind,
	a.shift_morning_in, a.shift_morning_out, a.shift_afternoon_in, a.shift_afternoon_out,
	a.shift_start_time, a.shift_end_time,
	a.morning_in_at, a.morning_in_source, a.morning_in_manual_entry_id,
	a.morning_out_at, a.morning_out_source, a.morning_out_manual_entry_id,
	a.afternoon_in_at, a.afternoon_in_source, a.afternoon_in_manual_entry_id,
	a.afternoon_out_at, a.afternoon_out_source, a.afternoon_out_manual_entry_id,
	a.time_in_at, a.time_in_source, a.time_in_manual_entry_id,
	a.time_out_at, a.time_out_source, a.time_out_manual_entry_id,
	a.status, a.morning_late_minutes, a.afternoon_late_minutes, a.late_minutes,
	a.remarks, a.created_at, a.updated_at
`

// scanAttendanceRecord reads one joined attendance row. Punch slots and the
// shift template are reassembled from their nullable columns.
func scanAttendanceRecord(row pgx.Row) (attendance.AttendanceRecord, error) {
	var rec attendance.AttendanceRecord
	var shiftKind *string
	var morningIn, morningOut, afternoonIn, afternoonOut *string
	var startTime, endTime *string

	punches := make([]struct {
		at            *time.Time
		source        *string
		manualEntryID *string
	}, 6)

	dest := []interface{}{
		&rec.ID, &rec.SchedulePeriodID, &rec.EmployeeID, &rec.EmployeeName, &rec.HospitalEmployeeID,
		&rec.DatePH,
		&rec.ScheduleType, &shiftKind,
		&morningIn, &morningOut, &afternoonIn, &afternoonOut,
		&startTime, &endTime,
	}
	for i := range punches {
		dest = append(dest, &punches[i].at, &punches[i].source, &punches[i].manualEntryID)
	}
	dest = append(dest,
		&rec.Status, &rec.MorningLateMinutes, &rec.AfternoonLateMinutes, &rec.LateMinutes,
		&rec.Remarks, &rec.CreatedAt, &rec.UpdatedAt,
	)

	if err := row.Scan(dest...); err != nil {
		return attendance.AttendanceRecord{}, err
	}

	if shiftKind != nil {
		switch attendance.ShiftKind(*shiftKind) {
		case attendance.ShiftStandard:
			rec.Shift = &attendance.ShiftTemplate{
				Kind: attendance.ShiftStandard,
				Standard: &attendance.StandardShift{
					MorningIn:    deref(morningIn),
					MorningOut:   deref(morningOut),
					AfternoonIn:  deref(afternoonIn),
					AfternoonOut: deref(afternoonOut),
				},
			}
		case attendance.ShiftShifting:
			rec.Shift = &attendance.ShiftTemplate{
				Kind: attendance.ShiftShifting,
				Shifting: &attendance.ShiftingShift{
					StartTime: deref(startTime),
					EndTime:   deref(endTime),
				},
			}
		}
	}

	logs := []**attendance.PunchLog{
		&rec.MorningInLog, &rec.MorningOutLog,
		&rec.AfternoonInLog, &rec.AfternoonOutLog,
		&rec.TimeInLog, &rec.TimeOutLog,
	}
	for i, p := range punches {
		if p.at == nil {
			continue
		}
		source := attendance.SourceBiometric
		if p.source != nil {
			source = attendance.PunchSource(*p.source)
		}
		*logs[i] = &attendance.PunchLog{
			Time:          *p.at,
			Source:        source,
			ManualEntryID: p.manualEntryID,
		}
	}

	return rec, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// ListByPeriod implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByPeriod(ctx context.Context, schedulePeriodID string) ([]attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.schedule_period_id = $1
		ORDER BY a.date_ph, e.full_name
	`

	rows, err := q.Query(ctx, query, schedulePeriodID)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var records []attendance.AttendanceRecord
	for rows.Next() {
		rec, err := scanAttendanceRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// GetByID implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.id = $1
	`

	rec, err := scanAttendanceRecord(q.QueryRow(ctx, query, id))

	if err == pgx.ErrNoRows {
		return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
	}

	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return rec, nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}
