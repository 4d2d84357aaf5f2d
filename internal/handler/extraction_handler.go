// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"

	"pdf-extract-service/internal/domain"
	apperrors "pdf-extract-service/pkg/errors"

	"github.com/go-playground/validator/v10"
)

// ExtractionHandler handles PDF text extraction requests
type ExtractionHandler struct {
	extractor      domain.Extractor
	validate       *validator.Validate
	maxRequestSize int64
	logger         domain.Logger
}

// NewExtractionHandler creates a new extraction handler
func NewExtractionHandler(extractor domain.Extractor, maxRequestSize int64, logger domain.Logger) *ExtractionHandler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names rather than Go field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ExtractionHandler{
		extractor:      extractor,
		validate:       validate,
		maxRequestSize: maxRequestSize,
		logger:         logger,
	}
}

// Extract handles POST /extract with a body of {"path": "..."}
func (h *ExtractionHandler) Extract(w http.ResponseWriter, r *http.Request) {
	requestID, _ := GetRequestIDFromContext(r)

	req, err := h.decodeRequest(w, r)
	if err != nil {
		h.logger.Debug("Rejected extraction request", "request_id", requestID, "error", err)
		writeAppError(w, err)
		return
	}

	result, err := h.extractor.Extract(req.Path)
	if err != nil {
		switch {
		case apperrors.IsType(err, apperrors.ErrorTypeNotFound):
			h.logger.Info("PDF not found", "request_id", requestID, "path", req.Path)
		default:
			h.logger.Error("PDF extraction failed", err, "request_id", requestID, "path", req.Path)
		}
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (h *ExtractionHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (*domain.ExtractionRequest, error) {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	var req domain.ExtractionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return nil, apperrors.NewValidationError("Request body too large")
		case errors.Is(err, io.EOF):
			return nil, apperrors.NewValidationError("Request body is required")
		default:
			return nil, apperrors.NewValidationError("Invalid JSON body", err.Error())
		}
	}

	if err := h.validate.Struct(&req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, apperrors.NewValidationError("Field '"+fieldErrs[0].Field()+"' is "+fieldErrs[0].Tag(), err.Error())
		}
		return nil, apperrors.NewValidationError("Invalid request", err.Error())
	}

	return &req, nil
}
