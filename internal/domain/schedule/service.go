package schedule

import "context"

// DutyScheduleService resolves which duty-schedule period is current for a
// department.
type DutyScheduleService interface {
	// GetDepartmentSchedules filters, sorts and selects the department's
	// catalog against the request date
	GetDepartmentSchedules(ctx context.Context, req CatalogRequest) (SelectionResponse, error)
}
