package store

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Normalize trims surrounding whitespace of all fields and lowercases the email domain
func (e *Employee) Normalize() {
	e.EmployeeID = strings.TrimSpace(e.EmployeeID)
	e.FullName = strings.TrimSpace(e.FullName)
	e.Email = NormalizeEmail(e.Email)
	e.Department = strings.TrimSpace(e.Department)
}

// Validate checks fields in order: employee id, full name, email, department.
// Expects normalized input, so blank strings fail as required.
func (e Employee) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.EmployeeID,
			validation.Required.Error("Employee ID cannot be blank"),
			validation.RuneLength(1, 20).Error("Employee ID must be at most 20 characters"),
		),
		validation.Field(&e.FullName,
			validation.Required.Error("Full name cannot be blank"),
			validation.RuneLength(1, 100).Error("Full name must be at most 100 characters"),
		),
		validation.Field(&e.Email,
			validation.Required.Error("Email cannot be blank"),
			is.EmailFormat.Error("value is not a valid email address"),
		),
		validation.Field(&e.Department,
			validation.Required.Error("Department cannot be blank"),
			validation.RuneLength(1, 50).Error("Department must be at most 50 characters"),
		),
	)
}

// NormalizeEmail trims the address and lowercases its domain part, the local part is kept as is
func NormalizeEmail(email string) string {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}
