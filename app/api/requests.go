package api

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hrms-lite/hrms/app/store"
	"github.com/hrms-lite/hrms/app/store/enums"
)

// EmployeeCreateRequest is the body of POST /api/employees
type EmployeeCreateRequest struct {
	EmployeeID string `json:"employee_id" jsonschema:"required,minLength=1,maxLength=20"`
	FullName   string `json:"full_name" jsonschema:"required,minLength=1,maxLength=100"`
	Email      string `json:"email" jsonschema:"required,format=email"`
	Department string `json:"department" jsonschema:"required,minLength=1,maxLength=50"`
}

// Normalize trims surrounding whitespace of all fields and lowercases the email domain
func (r *EmployeeCreateRequest) Normalize() {
	emp := r.Employee()
	emp.Normalize()
	r.EmployeeID, r.FullName, r.Email, r.Department = emp.EmployeeID, emp.FullName, emp.Email, emp.Department
}

// Validate applies the store's employee rules, expects normalized input
func (r EmployeeCreateRequest) Validate() error {
	return r.Employee().Validate()
}

// Employee converts the request to a store record
func (r EmployeeCreateRequest) Employee() store.Employee {
	return store.Employee{EmployeeID: r.EmployeeID, FullName: r.FullName, Email: r.Email, Department: r.Department}
}

// AttendanceCreateRequest is the body of POST /api/attendance
type AttendanceCreateRequest struct {
	EmployeeID string `json:"employee_id" jsonschema:"required,minLength=1"`
	Date       string `json:"date" jsonschema:"required,format=date"`
	Status     string `json:"status" jsonschema:"required,enum=Present,enum=Absent"`
}

// Normalize trims surrounding whitespace of employee id and date
func (r *AttendanceCreateRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Date = strings.TrimSpace(r.Date)
}

// Validate checks employee id is set, date is YYYY-MM-DD and status is one of the known values
func (r AttendanceCreateRequest) Validate() error {
	statuses := make([]any, 0, len(enums.AttendanceStatusNames))
	for _, name := range enums.AttendanceStatusNames {
		statuses = append(statuses, name)
	}
	return validation.ValidateStruct(&r,
		validation.Field(&r.EmployeeID, validation.Required.Error("Employee ID cannot be blank")),
		validation.Field(&r.Date,
			validation.Required.Error("Date is required"),
			validation.Date(store.DateLayout).Error("date must be a valid YYYY-MM-DD date"),
		),
		validation.Field(&r.Status,
			validation.Required.Error("Status is required"),
			validation.In(statuses...).Error("status must be one of: "+strings.Join(enums.AttendanceStatusNames, ", ")),
		),
	)
}

// Attendance converts a validated request to a store record
func (r AttendanceCreateRequest) Attendance() (store.Attendance, error) {
	date, err := time.Parse(store.DateLayout, r.Date)
	if err != nil {
		return store.Attendance{}, err
	}
	status, err := enums.ParseAttendanceStatus(r.Status)
	if err != nil {
		return store.Attendance{}, err
	}
	return store.Attendance{EmployeeID: r.EmployeeID, Date: date, Status: status}, nil
}
