package api

import (
	"net/http"

	"github.com/hrms-lite/hrms/app/store"
)

// EmployeeResponse represents an employee in JSON API responses
type EmployeeResponse struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

func toEmployeeResponse(e store.Employee) EmployeeResponse {
	return EmployeeResponse{ID: e.ID, EmployeeID: e.EmployeeID, FullName: e.FullName, Email: e.Email,
		Department: e.Department}
}

// handleListEmployees returns all employees in creation order
func (s *Server) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	emps, err := s.store.ListEmployees(r.Context())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	resp := make([]EmployeeResponse, 0, len(emps))
	for _, e := range emps {
		resp = append(resp, toEmployeeResponse(e))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleGetEmployee returns a single employee by business id
func (s *Server) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := s.store.GetEmployee(r.Context(), r.PathValue("employee_id"))
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toEmployeeResponse(emp))
}

// handleCreateEmployee validates the payload and creates an employee
func (s *Server) handleCreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req EmployeeCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		s.writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	emp, err := s.store.CreateEmployee(r.Context(), req.Employee())
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toEmployeeResponse(emp))
}

// handleDeleteEmployee removes an employee with all attendance records, no body on success
func (s *Server) handleDeleteEmployee(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteEmployee(r.Context(), r.PathValue("employee_id")); err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
