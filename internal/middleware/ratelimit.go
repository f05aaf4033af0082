package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

// =============================================================================
// Rate Limiter
// =============================================================================

// RateLimiter counts requests per key in fixed windows.
type RateLimiter struct {
	maxRequests int
	window      time.Duration
	logger      *slog.Logger
	now         func() time.Time

	mu      sync.Mutex
	entries map[string]*rateLimitEntry
}

type rateLimitEntry struct {
	count       int
	windowStart time.Time
}

// NewRateLimiter creates a rate limiter that allows maxRequests per window.
// Expired entries are swept until ctx is cancelled. A non-positive window
// disables sweeping; every request then starts a new window.
func NewRateLimiter(ctx context.Context, maxRequests int, window time.Duration, logger *slog.Logger) *RateLimiter {
	rl := &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		logger:      logger,
		now:         time.Now,
		entries:     make(map[string]*rateLimitEntry),
	}

	if window > 0 {
		go rl.cleanup(ctx)
	}

	return rl
}

// Allow checks if a request from the given key should be allowed.
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	entry, exists := rl.entries[key]
	if !exists || now.Sub(entry.windowStart) > rl.window {
		rl.entries[key] = &rateLimitEntry{count: 1, windowStart: now}
		return true
	}

	if entry.count < rl.maxRequests {
		entry.count++
		return true
	}

	return false
}

// TimeUntilReset returns how long until the window of a key ends.
func (rl *RateLimiter) TimeUntilReset(key string) time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	entry, exists := rl.entries[key]
	if !exists {
		return 0
	}

	elapsed := rl.now().Sub(entry.windowStart)
	if elapsed >= rl.window {
		return 0
	}
	return rl.window - elapsed
}

// sweep removes expired entries.
func (rl *RateLimiter) sweep() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	for key, entry := range rl.entries {
		if now.Sub(entry.windowStart) > rl.window {
			delete(rl.entries, key)
		}
	}
}

func (rl *RateLimiter) cleanup(ctx context.Context) {
	ticker := time.NewTicker(rl.window)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

// =============================================================================
// Rate Limit Middleware
// =============================================================================

// RateLimitMiddleware wraps a rate limiter for use as HTTP middleware.
type RateLimitMiddleware struct {
	limiter *RateLimiter
	logger  *slog.Logger
}

// NewRateLimitMiddleware creates a new rate limit middleware.
func NewRateLimitMiddleware(limiter *RateLimiter, logger *slog.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit returns middleware that rate limits requests by client IP.
func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientIP := getClientIP(r)

		if m.limiter.Allow(clientIP) {
			next.ServeHTTP(w, r)
			return
		}

		m.logger.Warn("rate limit exceeded",
			"ip", clientIP,
			"path", r.URL.Path,
			"method", r.Method,
			"request_id", RequestID(r.Context()),
		)

		retryAfter := int(m.limiter.TimeUntilReset(clientIP).Seconds())
		if retryAfter < 1 {
			retryAfter = 1
		}
		w.Header().Set("Retry-After", strconv.Itoa(retryAfter))

		if wantsJSON(r) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_ = json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]string{
					"code":    "rate_limited",
					"message": "Too many requests. Please try again later.",
				},
			})
			return
		}

		http.Error(w, "Too many requests. Please wait a moment and try again.", http.StatusTooManyRequests)
	})
}

// =============================================================================
// Helpers
// =============================================================================

// wantsJSON reports whether the client asked for JSON. htmx requests want HTML.
func wantsJSON(r *http.Request) bool {
	if r.Header.Get("HX-Request") == "true" {
		return false
	}
	return strings.Contains(r.Header.Get("Accept"), "application/json") ||
		strings.HasSuffix(r.URL.Path, ".json")
}

// getClientIP extracts the client IP from the request, considering proxy headers.
func getClientIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs: client, proxy1, proxy2
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if clientIP := strings.TrimSpace(first); clientIP != "" {
			return clientIP
		}
	}

	// nginx
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr might not have a port
		return r.RemoteAddr
	}
	return ip
}
