package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DukeRupert/felo-pricing/internal/domain"
)

// ErrorResponse writes an error response to the client.
// It maps domain error codes to HTTP status codes and formats appropriately
// based on the Accept header (JSON for API requests, plain text otherwise).
func ErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	code := domain.ErrorCode(err)
	message := domain.ErrorMessage(err)
	op := domain.ErrorOp(err)

	status := ErrorCodeToHTTPStatus(code)

	logError(logger, r, err, code, op, status)

	if acceptsJSON(r) {
		writeJSONError(w, status, code, message, nil)
		return
	}

	http.Error(w, message, status)
}

// ErrorCodeToHTTPStatus maps domain error codes to HTTP status codes.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest // 400
	case domain.ENOTFOUND:
		return http.StatusNotFound // 404
	case domain.EINTERNAL:
		return http.StatusInternalServerError // 500
	case domain.ENOTIMPL:
		return http.StatusNotImplemented // 501
	default:
		return http.StatusInternalServerError // 500
	}
}

// ValidationErrorResponse writes field-level selection errors to the response.
// JSON clients get the offending fields; HTML clients get a short message.
func ValidationErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		ErrorResponse(w, r, logger, err)
		return
	}

	logger.Info("validation error",
		"op", ve.Op,
		"field_count", len(ve.Fields),
		"path", r.URL.Path,
	)

	if acceptsJSON(r) {
		writeJSONError(w, http.StatusBadRequest, domain.EINVALID, "Validation failed", ve.Fields)
		return
	}

	http.Error(w, "Invalid plan selection. Please choose a listed segment and currency.", http.StatusBadRequest)
}

// NotFoundResponse is a convenience wrapper for 404 errors.
func NotFoundResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger) {
	err := domain.Errorf(domain.ENOTFOUND, "", "The requested page was not found")
	ErrorResponse(w, r, logger, err)
}

// InternalErrorResponse logs the error and returns a generic 500 response.
// The underlying error details are hidden from the user.
func InternalErrorResponse(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	ErrorResponse(w, r, logger, domain.Internal(err, "", "An unexpected error occurred"))
}

// logError logs the error with appropriate level based on status code.
func logError(logger *slog.Logger, r *http.Request, err error, code, op string, status int) {
	attrs := []any{
		"error", err.Error(),
		"code", code,
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
	}
	if op != "" {
		attrs = append(attrs, "op", op)
	}

	if status >= 500 {
		logger.Error("server error", attrs...)
	} else if status >= 400 {
		logger.Info("client error", attrs...)
	}
}

// acceptsJSON checks if the client prefers JSON responses.
func acceptsJSON(r *http.Request) bool {
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return true
	}

	// htmx requests want HTML
	if r.Header.Get("HX-Request") == "true" {
		return false
	}

	return strings.HasSuffix(r.URL.Path, ".json")
}

// JSONError is the body of every JSON error response.
type JSONError struct {
	Error JSONErrorBody `json:"error"`
}

// JSONErrorBody carries the code, message and optional field errors.
type JSONErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSONError(w http.ResponseWriter, status int, code, message string, fields map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(JSONError{Error: JSONErrorBody{
		Code:    code,
		Message: message,
		Fields:  fields,
	}})
}
