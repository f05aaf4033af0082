package middleware

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// RequestLoggingMiddleware logs HTTP requests with timing and status information.
type RequestLoggingMiddleware struct {
	logger    *slog.Logger
	skipPaths []string
}

// NewRequestLoggingMiddleware creates a new request logging middleware.
// Health checks, metrics scrapes and static assets are not logged.
func NewRequestLoggingMiddleware(logger *slog.Logger) *RequestLoggingMiddleware {
	return &RequestLoggingMiddleware{
		logger:    logger,
		skipPaths: []string{"/health", "/metrics", "/static/"},
	}
}

// Handler returns middleware that logs all HTTP requests.
func (m *RequestLoggingMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.shouldSkip(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		attrs := []any{
			"method", r.Method,
			"path", sanitizePath(r.URL.Path, r.URL.RawQuery),
			"status", wrapped.statusCode,
			"duration_ms", time.Since(start).Milliseconds(),
			"ip", getClientIP(r),
			"user_agent", r.UserAgent(),
		}
		if id := RequestID(r.Context()); id != "" {
			attrs = append(attrs, "request_id", id)
		}
		if r.Header.Get("HX-Request") == "true" {
			attrs = append(attrs, "htmx", true)
		}

		if wrapped.statusCode >= 500 {
			m.logger.Warn("request", attrs...)
		} else {
			m.logger.Info("request", attrs...)
		}
	})
}

func (m *RequestLoggingMiddleware) shouldSkip(path string) bool {
	for _, skip := range m.skipPaths {
		if strings.HasPrefix(path, skip) {
			return true
		}
	}
	return false
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// loggedParams are the query parameters that appear verbatim in logs.
// Everything else is redacted.
var loggedParams = map[string]bool{
	"segment":  true,
	"currency": true,
}

// sanitizePath keeps the selection parameters and redacts any other query value.
func sanitizePath(path, rawQuery string) string {
	if rawQuery == "" {
		return path
	}

	var safeParts []string
	for _, part := range strings.Split(rawQuery, "&") {
		key, value, ok := strings.Cut(part, "=")
		if !ok || key == "" {
			continue
		}
		name, err := url.QueryUnescape(key)
		if err != nil {
			continue
		}
		if loggedParams[strings.ToLower(name)] {
			safeParts = append(safeParts, key+"="+value)
		} else {
			safeParts = append(safeParts, key+"=[REDACTED]")
		}
	}

	if len(safeParts) == 0 {
		return path
	}
	return path + "?" + strings.Join(safeParts, "&")
}
