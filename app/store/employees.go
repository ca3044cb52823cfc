package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Employee is a stored employee record. ID is assigned by the database,
// EmployeeID is the externally supplied business key.
type Employee struct {
	ID         int64  `db:"id" json:"id"`
	EmployeeID string `db:"employee_id" json:"employee_id"`
	FullName   string `db:"full_name" json:"full_name"`
	Email      string `db:"email" json:"email"`
	Department string `db:"department" json:"department"`
}

// ListEmployees returns all employees in creation order
func (s *SQLiteStore) ListEmployees(ctx context.Context) ([]Employee, error) {
	res := []Employee{}
	err := s.inReadTx(ctx, func(tx *sqlx.Tx) error {
		var err error
		res, err = listEmployees(ctx, tx)
		return err
	})
	return res, err
}

// GetEmployee returns the employee with the given business key or ErrNotFound
func (s *SQLiteStore) GetEmployee(ctx context.Context, employeeID string) (Employee, error) {
	var res Employee
	err := s.inReadTx(ctx, func(tx *sqlx.Tx) error {
		emp, found, err := findEmployee(ctx, tx, "employee_id", employeeID)
		if err != nil {
			return err
		}
		if !found {
			return employeeNotFound(employeeID)
		}
		res = emp
		return nil
	})
	return res, err
}

// CreateEmployee inserts a new employee and returns it with the assigned id.
// Duplicate employee id or email results in ErrConflict, both from the pre-check
// and from the storage constraint if a concurrent writer got there first.
func (s *SQLiteStore) CreateEmployee(ctx context.Context, emp Employee) (Employee, error) {
	err := s.inTx(ctx, func(tx *sqlx.Tx) error {
		_, found, err := findEmployee(ctx, tx, "employee_id", emp.EmployeeID)
		if err != nil {
			return err
		}
		if found {
			return duplicateEmployeeID(emp.EmployeeID)
		}

		if _, found, err = findEmployee(ctx, tx, "email", emp.Email); err != nil {
			return err
		}
		if found {
			return duplicateEmail(emp.Email)
		}

		id, err := insertEmployee(ctx, tx, emp)
		if err != nil {
			return err
		}
		emp.ID = id
		return nil
	})
	if err != nil {
		return Employee{}, err
	}
	return emp, nil
}

// DeleteEmployee removes the employee and all of its attendance records in one transaction
func (s *SQLiteStore) DeleteEmployee(ctx context.Context, employeeID string) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		_, found, err := findEmployee(ctx, tx, "employee_id", employeeID)
		if err != nil {
			return err
		}
		if !found {
			return employeeNotFound(employeeID)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM attendance WHERE employee_id = ?`, employeeID); err != nil {
			return fmt.Errorf("failed to delete attendance of %s: %w", employeeID, err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM employees WHERE employee_id = ?`, employeeID); err != nil {
			return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
		}
		return nil
	})
}

func listEmployees(ctx context.Context, tx *sqlx.Tx) ([]Employee, error) {
	res := []Employee{}
	if err := tx.SelectContext(ctx, &res,
		`SELECT id, employee_id, full_name, email, department FROM employees ORDER BY id`); err != nil {
		return nil, fmt.Errorf("failed to query employees: %w", err)
	}
	return res, nil
}

// findEmployee looks up a single employee by one of the unique columns
func findEmployee(ctx context.Context, tx *sqlx.Tx, column, value string) (Employee, bool, error) {
	var emp Employee
	query := `SELECT id, employee_id, full_name, email, department FROM employees WHERE ` + column + ` = ? LIMIT 1`
	err := tx.GetContext(ctx, &emp, query, value)
	if errors.Is(err, sql.ErrNoRows) {
		return Employee{}, false, nil
	}
	if err != nil {
		return Employee{}, false, fmt.Errorf("failed to get employee by %s: %w", column, err)
	}
	return emp, true, nil
}

func insertEmployee(ctx context.Context, tx *sqlx.Tx, emp Employee) (int64, error) {
	res, err := tx.NamedExecContext(ctx, `
		INSERT INTO employees (employee_id, full_name, email, department)
		VALUES (:employee_id, :full_name, :email, :department)`, emp)
	switch {
	case isUniqueViolation(err, "employees.employee_id"):
		return 0, duplicateEmployeeID(emp.EmployeeID)
	case isUniqueViolation(err, "employees.email"):
		return 0, duplicateEmail(emp.Email)
	case err != nil:
		return 0, fmt.Errorf("failed to insert employee %s: %w", emp.EmployeeID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get id of employee %s: %w", emp.EmployeeID, err)
	}
	return id, nil
}
