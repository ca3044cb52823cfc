package api

import (
	"net/http"
	"time"

	"github.com/hrms-lite/hrms/app/store"
)

// AttendanceResponse represents an attendance record in JSON API responses
type AttendanceResponse struct {
	ID         int64  `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

func toAttendanceResponse(a store.Attendance) AttendanceResponse {
	return AttendanceResponse{ID: a.ID, EmployeeID: a.EmployeeID, Date: a.Date.Format(store.DateLayout),
		Status: a.Status.String()}
}

// handleListAttendance returns attendance records, optionally filtered by employee_id and date
func (s *Server) handleListAttendance(w http.ResponseWriter, r *http.Request) {
	filter := store.AttendanceFilter{EmployeeID: r.URL.Query().Get("employee_id")}
	if d := r.URL.Query().Get("date"); d != "" {
		date, err := time.Parse(store.DateLayout, d)
		if err != nil {
			s.writeJSONError(w, http.StatusUnprocessableEntity, "date must be a valid YYYY-MM-DD date")
			return
		}
		filter.Date = date
	}

	recs, err := s.store.ListAttendance(r.Context(), filter)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}

	resp := make([]AttendanceResponse, 0, len(recs))
	for _, a := range recs {
		resp = append(resp, toAttendanceResponse(a))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// handleMarkAttendance validates the payload and records attendance for an existing employee
func (s *Server) handleMarkAttendance(w http.ResponseWriter, r *http.Request) {
	var req AttendanceCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		s.writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	rec, err := req.Attendance()
	if err != nil {
		s.writeJSONError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	rec, err = s.store.MarkAttendance(r.Context(), rec)
	if err != nil {
		s.writeStoreError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, toAttendanceResponse(rec))
}
