package response

import (
	"errors"
	"net/http"

	"github.com/mediserve-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/schedule"
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/user"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, user.ErrAuthRequired):
		Unauthorized(w, "Authentication required")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")
	case errors.Is(err, user.ErrUnknownRole):
		Forbidden(w, "Unknown role")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrDepartmentRequired):
		BadRequest(w, "Department ID is required", nil)
	case errors.Is(err, schedule.ErrInvalidDateFormat):
		BadRequest(w, "Date must be in YYYY-MM-DD format", nil)
	case errors.Is(err, schedule.ErrPeriodNotFound):
		NotFound(w, "Duty schedule period not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrManualEntryNotFound):
		NotFound(w, "Manual entry not found")
	case errors.Is(err, attendance.ErrNotEligible):
		Forbidden(w, "Manual entry not allowed for this day")
	case errors.Is(err, attendance.ErrUnknownTimeSlot):
		BadRequest(w, "Unknown attendance time slot", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
