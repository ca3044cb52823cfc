package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	log "github.com/go-pkgz/lgr"

	"github.com/hrms-lite/hrms/app/store"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[WARN] failed to encode JSON response: %v", err)
	}
}

// writeJSONError writes a JSON error response
func (s *Server) writeJSONError(w http.ResponseWriter, status int, detail string) {
	s.writeJSON(w, status, ErrorResponse{Detail: detail})
}

// writeStoreError maps store errors to status codes. Not found and conflict carry the
// store's detail message, anything else is logged and reported as 500.
func (s *Server) writeStoreError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrConflict):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s failed: %v", r.Method, r.URL.Path, err)
		s.writeJSONError(w, status, "Internal Server Error")
		return
	}

	detail := err.Error()
	var detailErr *store.DetailError
	if errors.As(err, &detailErr) {
		detail = detailErr.Detail
	}
	s.writeJSONError(w, status, detail)
}

// decodeJSON reads request body into v
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}
