package store

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/jmoiron/sqlx"
	"gopkg.in/yaml.v3"

	"github.com/hrms-lite/hrms/app/store/enums"
)

//go:embed seed.yml
var defaultSeed []byte

// Fixture is a set of records to populate an empty database with
type Fixture struct {
	Employees  []Employee
	Attendance []Attendance
}

type fixtureFile struct {
	Employees []struct {
		EmployeeID string `yaml:"employee_id"`
		FullName   string `yaml:"full_name"`
		Email      string `yaml:"email"`
		Department string `yaml:"department"`
	} `yaml:"employees"`
	Attendance []struct {
		EmployeeID string `yaml:"employee_id"`
		Date       string `yaml:"date"`
		Status     string `yaml:"status"`
	} `yaml:"attendance"`
}

// DefaultFixture returns the built-in sample data, five employees and eight attendance records
func DefaultFixture() (Fixture, error) {
	return ParseFixture(bytes.NewReader(defaultSeed))
}

// LoadFixture reads a yaml fixture from file, empty fname means the built-in one
func LoadFixture(fname string) (Fixture, error) {
	if fname == "" {
		return DefaultFixture()
	}
	fh, err := os.Open(fname) //nolint:gosec // fixture path comes from cli options
	if err != nil {
		return Fixture{}, fmt.Errorf("failed to open seed file: %w", err)
	}
	defer fh.Close()
	return ParseFixture(fh)
}

// ParseFixture decodes a yaml fixture. Employee fields are normalized and checked with the same
// rules as created employees, dates must be YYYY-MM-DD, status Present or Absent.
func ParseFixture(r io.Reader) (Fixture, error) {
	var ff fixtureFile
	if err := yaml.NewDecoder(r).Decode(&ff); err != nil && !errors.Is(err, io.EOF) {
		return Fixture{}, fmt.Errorf("failed to decode seed fixture: %w", err)
	}

	res := Fixture{Employees: []Employee{}, Attendance: []Attendance{}}
	for _, e := range ff.Employees {
		emp := Employee{EmployeeID: e.EmployeeID, FullName: e.FullName, Email: e.Email, Department: e.Department}
		emp.Normalize()
		res.Employees = append(res.Employees, emp)
	}
	for i, a := range ff.Attendance {
		date, err := time.Parse(DateLayout, strings.TrimSpace(a.Date))
		if err != nil {
			return Fixture{}, fmt.Errorf("invalid date %q in seed attendance #%d: %w", a.Date, i, err)
		}
		status, err := enums.ParseAttendanceStatus(a.Status)
		if err != nil {
			return Fixture{}, fmt.Errorf("invalid status in seed attendance #%d: %w", i, err)
		}
		res.Attendance = append(res.Attendance, Attendance{EmployeeID: strings.TrimSpace(a.EmployeeID),
			Date: date, Status: status})
	}

	if err := res.Validate(); err != nil {
		return Fixture{}, err
	}
	return res, nil
}

// Validate checks every employee against the employee rules and every attendance record
// refers to an employee of the fixture. Duplicates are left to the storage constraints.
func (fx Fixture) Validate() error {
	known := make(map[string]bool, len(fx.Employees))
	for i, emp := range fx.Employees {
		if err := emp.Validate(); err != nil {
			return fmt.Errorf("invalid seed employee #%d %q: %w", i, emp.EmployeeID, err)
		}
		known[emp.EmployeeID] = true
	}
	for i, rec := range fx.Attendance {
		if !known[rec.EmployeeID] {
			return fmt.Errorf("seed attendance #%d refers to unknown employee %q", i, rec.EmployeeID)
		}
		if _, err := enums.ParseAttendanceStatus(rec.Status.String()); err != nil {
			return fmt.Errorf("invalid status in seed attendance #%d: %w", i, err)
		}
	}
	return nil
}

// Seed populates an empty database with the fixture. It does nothing if any employee exists,
// and inserts everything or nothing otherwise. Returns true if records were inserted.
func (s *SQLiteStore) Seed(ctx context.Context, fx Fixture) (seeded bool, err error) {
	if err := fx.Validate(); err != nil {
		return false, err
	}

	err = s.inTx(ctx, func(tx *sqlx.Tx) error {
		var exists bool
		if err := tx.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM employees)`); err != nil {
			return fmt.Errorf("failed to probe employees: %w", err)
		}
		if exists {
			return nil
		}

		for _, emp := range fx.Employees {
			if _, err := insertEmployee(ctx, tx, emp); err != nil {
				return fmt.Errorf("failed to seed employee: %w", err)
			}
		}
		for _, rec := range fx.Attendance {
			if _, err := insertAttendance(ctx, tx, rec); err != nil {
				return fmt.Errorf("failed to seed attendance: %w", err)
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if seeded {
		log.Printf("[INFO] seeded %d employees and %d attendance records", len(fx.Employees), len(fx.Attendance))
	}
	return seeded, nil
}
