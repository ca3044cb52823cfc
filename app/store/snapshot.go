package store

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// Snapshot returns all employees and all attendance records read in the same transaction
func (s *SQLiteStore) Snapshot(ctx context.Context) (employees []Employee, records []Attendance, err error) {
	err = s.inReadTx(ctx, func(tx *sqlx.Tx) error {
		var txErr error
		if employees, txErr = listEmployees(ctx, tx); txErr != nil {
			return txErr
		}
		records, txErr = listAttendance(ctx, tx, AttendanceFilter{})
		return txErr
	})
	if err != nil {
		return nil, nil, err
	}
	return employees, records, nil
}
