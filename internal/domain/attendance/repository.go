package attendance

import "context"

// AttendanceRepository defines read access to attendance records. Records are
// produced by the biometric import and the scheduling system; this service
// reads them per period and applies manual entries through SubmitManualEntry.
type AttendanceRepository interface {
	// ListByPeriod retrieves every record of one duty-schedule period,
	// ordered by date then employee name
	ListByPeriod(ctx context.Context, schedulePeriodID string) ([]AttendanceRecord, error)

	// GetByID retrieves a single record
	GetByID(ctx context.Context, id string) (AttendanceRecord, error)
}

// ManualEntryRepository persists manual punches. Apply writes the entry and
// updates the target punch slot on the attendance record in one transaction,
// so the next fetch of the period sees the punch with manual provenance.
type ManualEntryRepository interface {
	Apply(ctx context.Context, entry ManualEntry) (ManualEntry, error)

	// GetByID retrieves a manual entry, used to pre-fill the edit form
	GetByID(ctx context.Context, id string) (ManualEntry, error)
}
