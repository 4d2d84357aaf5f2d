package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"pdf-extract-service/internal/domain"

	"github.com/google/uuid"
)

// RequestMiddleware tags, logs and guards every request
type RequestMiddleware struct {
	logger domain.Logger
}

// NewRequestMiddleware creates a new request middleware
func NewRequestMiddleware(logger domain.Logger) *RequestMiddleware {
	return &RequestMiddleware{logger: logger}
}

// RequestID reuses the caller's X-Request-ID or generates one, and echoes it back
func (m *RequestMiddleware) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), requestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AccessLog writes one log line per request once the response is done
func (m *RequestMiddleware) AccessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		requestID, _ := GetRequestIDFromContext(r)
		m.logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", requestID,
		)
	})
}

// Recover turns a handler panic into a 500 response
func (m *RequestMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		defer func() {
			if p := recover(); p != nil {
				if p == http.ErrAbortHandler {
					panic(p)
				}
				requestID, _ := GetRequestIDFromContext(r)
				m.logger.Error("Handler panicked", fmt.Errorf("%v", p), "path", r.URL.Path, "request_id", requestID, "headers_sent", rec.wroteHeader)
				// Once a response has started it cannot be replaced.
				if !rec.wroteHeader {
					writeError(rec, http.StatusInternalServerError, "Internal server error")
				}
			}
		}()
		next.ServeHTTP(rec, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func (r *statusRecorder) WriteHeader(code int) {
	if !r.wroteHeader {
		r.status = code
		r.wroteHeader = true
	}
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if !r.wroteHeader {
		r.wroteHeader = true
	}
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
