package schedule

import "errors"

var (
	ErrDepartmentRequired = errors.New("department ID is required")
	ErrInvalidDateFormat  = errors.New("invalid date format, use YYYY-MM-DD")
	ErrPeriodNotFound     = errors.New("duty schedule period not found")
)
