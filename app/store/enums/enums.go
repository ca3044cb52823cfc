// Package enums provides type-safe enumeration types for stored records.
//
// The enum types are defined as unexported integer types in this file, and the go:generate
// directive invokes the go-pkgz/enum generator to create the exported types with string
// conversion, parsing, JSON text marshaling and database Scan/Value methods in *_enum.go files.
//
// Usage:
//
//	status := enums.AttendanceStatusPresent
//	fmt.Println(status.String()) // "Present"
//
//	parsed, err := enums.ParseAttendanceStatus("Absent")
//	if err != nil {
//	    // handle invalid input
//	}
//
// To regenerate the enum types after modifications:
//
//	go generate ./app/store/enums
package enums

//go:generate go run github.com/go-pkgz/enum@latest -type attendanceStatus

// attendanceStatus is the daily attendance mark of an employee.
// Use the exported AttendanceStatus type and its constants in actual code.
type attendanceStatus int

const (
	attendanceStatusPresent attendanceStatus = iota
	attendanceStatusAbsent
)
