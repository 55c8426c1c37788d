package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/database"
)

type dutyScheduleRepositoryImpl struct {
	db *database.DB
}

// ListByDepartment implements schedule.DutyScheduleRepository.
func (r *dutyScheduleRepositoryImpl) ListByDepartment(ctx context.Context, departmentID string) ([]schedule.DutySchedulePeriod, error) {
	q := GetQuerier(ctx, r.db)

	// Dates come back as canonical YYYY-MM-DD strings; selection compares
	// them lexically, never as instants.
	query := `
		SELECT id, department_id, name,
			   to_char(start_date, 'YYYY-MM-DD'),
			   to_char(end_date, 'YYYY-MM-DD'),
			   month_schedule, created_at, updated_at
		FROM duty_schedule_periods
		WHERE department_id = $1
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, departmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list duty schedule periods: %w", err)
	}
	defer rows.Close()

	var periods []schedule.DutySchedulePeriod
	for rows.Next() {
		var p schedule.DutySchedulePeriod
		err := rows.Scan(
			&p.ID, &p.DepartmentID, &p.Name,
			&p.StartDate, &p.EndDate, &p.MonthSchedule,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan duty schedule period: %w", err)
		}
		periods = append(periods, p)
	}

	return periods, nil
}

// GetByID implements schedule.DutyScheduleRepository.
func (r *dutyScheduleRepositoryImpl) GetByID(ctx context.Context, id string) (schedule.DutySchedulePeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, department_id, name,
			   to_char(start_date, 'YYYY-MM-DD'),
			   to_char(end_date, 'YYYY-MM-DD'),
			   month_schedule, created_at, updated_at
		FROM duty_schedule_periods
		WHERE id = $1
	`

	var p schedule.DutySchedulePeriod
	err := q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.DepartmentID, &p.Name,
		&p.StartDate, &p.EndDate, &p.MonthSchedule,
		&p.CreatedAt, &p.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return schedule.DutySchedulePeriod{}, schedule.ErrPeriodNotFound
	}

	if err != nil {
		return schedule.DutySchedulePeriod{}, fmt.Errorf("failed to get duty schedule period: %w", err)
	}

	return p, nil
}

func NewDutyScheduleRepository(db *database.DB) schedule.DutyScheduleRepository {
	return &dutyScheduleRepositoryImpl{db: db}
}
