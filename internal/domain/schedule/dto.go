package schedule

import (
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/validator"
)

// CatalogRequest asks for the duty-schedule catalog of one department resolved
// against a reference date. Date defaults to "today" in the organization
// timezone when empty.
type CatalogRequest struct {
	DepartmentID string `json:"department_id"`
	Date         string `json:"date,omitempty"` // YYYY-MM-DD
}

func (r *CatalogRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.DepartmentID) {
		errs = append(errs, validator.ValidationError{
			Field:   "department_id",
			Message: "department_id is required",
		})
	}

	if r.Date != "" {
		if _, valid := validator.IsValidDate(r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type PeriodResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	StartDate     string `json:"start_date"`
	EndDate       string `json:"end_date"`
	MonthSchedule string `json:"month_schedule,omitempty"`
}

// SelectionResponse carries the sorted catalog and the position of the active
// period. An empty catalog yields Schedules=[] and SelectedIndex=0; the
// presentation layer renders that as "no schedules available", not an error.
type SelectionResponse struct {
	Schedules     []PeriodResponse `json:"schedules"`
	SelectedIndex int              `json:"selected_index"`
	// CurrentDate is the display anchor for the selected period, fixed at
	// start date + 15 days.
	CurrentDate string `json:"current_date,omitempty"`
	CanPrevious bool   `json:"can_previous"`
	CanNext     bool   `json:"can_next"`
}
