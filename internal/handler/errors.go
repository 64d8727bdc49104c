package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pkordes/trip-planner/backend/internal/domain"
)

// errorResponse is the body of every error: a string summary, or the list of
// field issues for a validation failure.
type errorResponse struct {
	Error any `json:"error"`
}

// writeJSON writes v as the JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": message}.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// writeServiceError maps a service error onto a status code and body.
// Unexpected errors are logged and answered with fallback, which never
// contains internal detail.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: verr.Issues})
	case errors.Is(err, domain.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "Invalid ID format")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Trip not found")
	case errors.Is(err, domain.ErrUnavailable), errors.Is(err, context.DeadlineExceeded):
		s.log.ErrorContext(r.Context(), "store unavailable", "error", err)
		writeError(w, http.StatusServiceUnavailable, "Service unavailable")
	default:
		s.log.ErrorContext(r.Context(), fallback, "error", err)
		writeError(w, http.StatusInternalServerError, fallback)
	}
}
