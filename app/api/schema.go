package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/go-pkgz/lgr"
	"github.com/invopop/jsonschema"
)

// RequestSchemas returns JSON schemas of the request payloads keyed by payload name
func RequestSchemas() ([]byte, error) {
	schemas := map[string]*jsonschema.Schema{
		"employee_create":   reflectSchema(&EmployeeCreateRequest{}, "Employee create request", "Body of POST /api/employees"),
		"attendance_create": reflectSchema(&AttendanceCreateRequest{}, "Attendance create request", "Body of POST /api/attendance"),
	}

	data, err := json.MarshalIndent(schemas, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

func reflectSchema(v any, title, description string) *jsonschema.Schema {
	r := jsonschema.Reflector{DoNotReference: true}
	schema := r.Reflect(v)
	schema.Title = title
	schema.Description = description
	schema.Version = "1.0.0"
	return schema
}

// handleSchema serves the request payload schemas
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	data, err := RequestSchemas()
	if err != nil {
		log.Printf("[ERROR] %s %s failed: %v", r.Method, r.URL.Path, err)
		s.writeJSONError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("[WARN] failed to write schema response: %v", err)
	}
}
