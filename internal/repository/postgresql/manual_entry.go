package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/mediserve-hris/attendance-backend-go/internal/domain/attendance"
	"github.com/mediserve-hris/attendance-backend-go/internal/pkg/database"
)

type manualEntryRepositoryImpl struct {
	db *database.DB
}

// punchColumnsForSlot maps a slot name to its three punch columns. Column
// names are taken from this whitelist only, never from request input.
func punchColumnsForSlot(slot attendance.SlotName) (at, source, entryID string, ok bool) {
	switch slot {
	case attendance.SlotMorningIn:
		return "morning_in_at", "morning_in_source", "morning_in_manual_entry_id", true
	case attendance.SlotMorningOut:
		return "morning_out_at", "morning_out_source", "morning_out_manual_entry_id", true
	case attendance.SlotAfternoonIn:
		return "afternoon_in_at", "afternoon_in_source", "afternoon_in_manual_entry_id", true
	case attendance.SlotAfternoonOut:
		return "afternoon_out_at", "afternoon_out_source", "afternoon_out_manual_entry_id", true
	case attendance.SlotTimeIn:
		return "time_in_at", "time_in_source", "time_in_manual_entry_id", true
	case attendance.SlotTimeOut:
		return "time_out_at", "time_out_source", "time_out_manual_entry_id", true
	}
	return "", "", "", false
}

// Apply implements attendance.ManualEntryRepository. The entry insert and the
// punch-slot update commit together, so a period fetch never sees one without
// the other.
func (r *manualEntryRepositoryImpl) Apply(ctx context.Context, entry attendance.ManualEntry) (attendance.ManualEntry, error) {
	atCol, sourceCol, entryIDCol, ok := punchColumnsForSlot(entry.TimeType)
	if !ok {
		return attendance.ManualEntry{}, attendance.ErrUnknownTimeSlot
	}

	entry.ID = uuid.NewString()

	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		insertQuery := `
			INSERT INTO manual_entries (
				id, attendance_id, employee_id, log_time, type, time_type, remarks, created_by
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING created_at
		`

		err := tx.QueryRow(ctx, insertQuery,
			entry.ID, entry.AttendanceID, entry.EmployeeID, entry.LogTime,
			entry.Type, entry.TimeType, entry.Remarks, entry.CreatedBy,
		).Scan(&entry.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert manual entry: %w", err)
		}

		updateQuery := fmt.Sprintf(`
			UPDATE attendances
			SET %s = $1, %s = 'manual', %s = $2, updated_at = now()
			WHERE id = $3
			RETURNING id
		`, atCol, sourceCol, entryIDCol)

		var updatedID string
		if err := tx.QueryRow(ctx, updateQuery, entry.LogTime, entry.ID, entry.AttendanceID).Scan(&updatedID); err != nil {
			if err == pgx.ErrNoRows {
				return attendance.ErrAttendanceNotFound
			}
			return fmt.Errorf("failed to apply manual punch: %w", err)
		}

		return nil
	})
	if err != nil {
		return attendance.ManualEntry{}, err
	}

	return entry, nil
}

// GetByID implements attendance.ManualEntryRepository.
func (r *manualEntryRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.ManualEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, attendance_id, employee_id, log_time, type, time_type, remarks, created_by, created_at
		FROM manual_entries
		WHERE id = $1
	`

	var entry attendance.ManualEntry
	err := q.QueryRow(ctx, query, id).Scan(
		&entry.ID, &entry.AttendanceID, &entry.EmployeeID, &entry.LogTime,
		&entry.Type, &entry.TimeType, &entry.Remarks, &entry.CreatedBy, &entry.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return attendance.ManualEntry{}, attendance.ErrManualEntryNotFound
	}

	if err != nil {
		return attendance.ManualEntry{}, fmt.Errorf("failed to get manual entry: %w", err)
	}

	return entry, nil
}

func NewManualEntryRepository(db *database.DB) attendance.ManualEntryRepository {
	return &manualEntryRepositoryImpl{db: db}
}
