package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/hrms-lite/hrms/app/store/enums"
)

// Attendance is a single daily attendance mark of an employee
type Attendance struct {
	ID         int64
	EmployeeID string
	Date       time.Time // calendar date, UTC midnight
	Status     enums.AttendanceStatus
}

// AttendanceFilter narrows ListAttendance, empty fields are not applied
type AttendanceFilter struct {
	EmployeeID string
	Date       time.Time
}

// attendanceRow is the storage shape of Attendance, dates kept as YYYY-MM-DD text
type attendanceRow struct {
	ID         int64                  `db:"id"`
	EmployeeID string                 `db:"employee_id"`
	Date       string                 `db:"date"`
	Status     enums.AttendanceStatus `db:"status"`
}

func (r attendanceRow) toAttendance() (Attendance, error) {
	date, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		return Attendance{}, fmt.Errorf("invalid date %q in attendance %d: %w", r.Date, r.ID, err)
	}
	return Attendance{ID: r.ID, EmployeeID: r.EmployeeID, Date: date, Status: r.Status}, nil
}

// ListAttendance returns attendance records matching the filter,
// newest date first and by employee id within the same date
func (s *SQLiteStore) ListAttendance(ctx context.Context, filter AttendanceFilter) ([]Attendance, error) {
	var res []Attendance
	err := s.inReadTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		res, err = listAttendance(ctx, tx, filter)
		return err
	})
	return res, err
}

// MarkAttendance records attendance for an existing employee.
// Returns ErrNotFound for unknown employee and ErrConflict if the day is already marked.
func (s *SQLiteStore) MarkAttendance(ctx context.Context, rec Attendance) (Attendance, error) {
	date := rec.Date.Format(DateLayout)
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		_, found, err := findEmployee(ctx, tx, "employee_id", rec.EmployeeID)
		if err != nil {
			return err
		}
		if !found {
			return employeeNotFound(rec.EmployeeID)
		}

		var existing int64
		err = tx.GetContext(ctx, &existing, `SELECT id FROM attendance WHERE employee_id = ? AND date = ? LIMIT 1`,
			rec.EmployeeID, date)
		switch {
		case err == nil:
			return duplicateAttendance(rec.EmployeeID, date)
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("failed to check attendance of %s on %s: %w", rec.EmployeeID, date, err)
		}

		id, err := insertAttendance(ctx, tx, rec)
		if err != nil {
			return err
		}
		rec.ID = id
		return nil
	})
	if err != nil {
		return Attendance{}, err
	}
	return rec, nil
}

func listAttendance(ctx context.Context, tx *sqlx.Tx, filter AttendanceFilter) ([]Attendance, error) {
	query := `SELECT id, employee_id, date, status FROM attendance`
	var conds []string
	var args []any
	if filter.EmployeeID != "" {
		conds = append(conds, "employee_id = ?")
		args = append(args, filter.EmployeeID)
	}
	if !filter.Date.IsZero() {
		conds = append(conds, "date = ?")
		args = append(args, filter.Date.Format(DateLayout))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY date DESC, employee_id ASC"

	rows := []attendanceRow{}
	if err := tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query attendance: %w", err)
	}

	res := make([]Attendance, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toAttendance()
		if err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, nil
}

func insertAttendance(ctx context.Context, tx *sqlx.Tx, rec Attendance) (int64, error) {
	row := attendanceRow{EmployeeID: rec.EmployeeID, Date: rec.Date.Format(DateLayout), Status: rec.Status}
	res, err := tx.NamedExecContext(ctx, `
		INSERT INTO attendance (employee_id, date, status)
		VALUES (:employee_id, :date, :status)`, row)
	if isUniqueViolation(err, "attendance.") {
		return 0, duplicateAttendance(row.EmployeeID, row.Date)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to insert attendance of %s on %s: %w", row.EmployeeID, row.Date, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get id of attendance: %w", err)
	}
	return id, nil
}
