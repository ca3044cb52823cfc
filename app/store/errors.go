package store

import "errors"

var (
	// ErrNotFound is returned when a referenced employee does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when a write violates a uniqueness rule
	ErrConflict = errors.New("conflict")
)

// DetailError carries a client-facing message for one of the sentinel errors
type DetailError struct {
	Kind   error
	Detail string
}

func (e *DetailError) Error() string { return e.Detail }

func (e *DetailError) Unwrap() error { return e.Kind }

func employeeNotFound(employeeID string) error {
	return &DetailError{Kind: ErrNotFound, Detail: "Employee with ID '" + employeeID + "' not found."}
}

func duplicateEmployeeID(employeeID string) error {
	return &DetailError{Kind: ErrConflict, Detail: "Employee ID '" + employeeID + "' already exists."}
}

func duplicateEmail(email string) error {
	return &DetailError{Kind: ErrConflict, Detail: "Email '" + email + "' is already registered."}
}

func duplicateAttendance(employeeID, date string) error {
	return &DetailError{Kind: ErrConflict,
		Detail: "Attendance for employee '" + employeeID + "' on " + date + " already exists."}
}
