package schedule

import "context"

// DutyScheduleRepository defines read access to duty-schedule periods.
// Periods are created and approved by an upstream scheduling system; this
// service never writes them.
type DutyScheduleRepository interface {
	// ListByDepartment retrieves all periods for a department, including
	// future and overlapping ones. The selector decides which is active.
	ListByDepartment(ctx context.Context, departmentID string) ([]DutySchedulePeriod, error)

	// GetByID retrieves a single period
	GetByID(ctx context.Context, id string) (DutySchedulePeriod, error)
}
