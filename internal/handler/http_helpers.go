package handler

import (
	"encoding/json"
	"net/http"

	"pdf-extract-service/internal/domain"
	apperrors "pdf-extract-service/pkg/errors"
)

type contextKey string

const (
	requestIDContextKey contextKey = "request_id"

	// RequestIDHeader carries the per-request correlation id
	RequestIDHeader = "X-Request-ID"
)

// GetRequestIDFromContext extracts the request id set by the RequestID middleware
func GetRequestIDFromContext(r *http.Request) (string, bool) {
	id, ok := r.Context().Value(requestIDContextKey).(string)
	return id, ok
}

// writeJSON writes data as a JSON response. Extracted text is written verbatim,
// without HTML escaping.
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(data)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, domain.ErrorResponse{Error: message})
}

// writeAppError maps an error to its status code and client-facing message
func writeAppError(w http.ResponseWriter, err error) {
	writeError(w, apperrors.GetStatusCode(err), apperrors.GetMessage(err))
}
