package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// =============================================================================
// Security Headers Middleware Tests
// =============================================================================

func serveSecure(isSecure bool) *httptest.ResponseRecorder {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	rec := httptest.NewRecorder()
	NewSecurityHeadersMiddleware(isSecure).Handler(handler).ServeHTTP(rec, httptest.NewRequest("GET", "/pricing", nil))
	return rec
}

func TestSecurityHeadersMiddleware_SetsAllHeaders(t *testing.T) {
	rec := serveSecure(true)

	tests := []struct {
		header   string
		expected string
	}{
		{"X-Frame-Options", "DENY"},
		{"X-Content-Type-Options", "nosniff"},
		{"Referrer-Policy", "strict-origin-when-cross-origin"},
		{"Permissions-Policy", "geolocation=(), microphone=(), camera=()"},
	}

	for _, tc := range tests {
		if got := rec.Header().Get(tc.header); got != tc.expected {
			t.Errorf("%s: expected %q, got %q", tc.header, tc.expected, got)
		}
	}

	if rec.Body.String() != "ok" {
		t.Errorf("body should pass through, got %q", rec.Body.String())
	}
}

func TestSecurityHeadersMiddleware_HSTSOnlyWhenSecure(t *testing.T) {
	if hsts := serveSecure(true).Header().Get("Strict-Transport-Security"); !strings.Contains(hsts, "max-age=31536000") {
		t.Errorf("expected HSTS in production, got %q", hsts)
	}
	if hsts := serveSecure(false).Header().Get("Strict-Transport-Security"); hsts != "" {
		t.Errorf("expected no HSTS in development, got %q", hsts)
	}
}

func TestSecurityHeadersMiddleware_CSP(t *testing.T) {
	csp := serveSecure(false).Header().Get("Content-Security-Policy")

	for _, want := range []string{
		"default-src 'self'",
		"https://unpkg.com",
		"connect-src 'self'",
		"frame-ancestors 'none'",
		"form-action 'self'",
	} {
		if !strings.Contains(csp, want) {
			t.Errorf("CSP should contain %q: %s", want, csp)
		}
	}
}
