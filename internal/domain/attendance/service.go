package attendance

import (
	"context"

	"github.com/mediserve-hris/attendance-backend-go/internal/domain/user"
)

// AttendanceService reconciles a period's raw records for display and accepts
// manual punch backfills.
type AttendanceService interface {
	// ListPeriodAttendance fetches, reconciles, filters and paginates the
	// records of one duty-schedule period. Role drives the per-slot
	// editable/actionable flags.
	ListPeriodAttendance(ctx context.Context, req ListRequest, role user.Role) (ListAttendanceResponse, error)

	// SubmitManualEntry validates and persists a manual punch for an eligible
	// attendance day
	SubmitManualEntry(ctx context.Context, req ManualEntryRequest, role user.Role, createdBy string) (ManualEntryResponse, error)

	// GetManualEntry retrieves one manual entry, used to pre-fill the edit
	// form when a manager re-opens a manual punch
	GetManualEntry(ctx context.Context, id string) (ManualEntryResponse, error)
}
