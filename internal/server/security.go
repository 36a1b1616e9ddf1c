package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/striderush/StrideRush_Go/internal/logger"
)

// Detector tuning. Counters reset every window; movement clients poll
// frequently, so the request budget is sized for a chatty tracker app.
const (
	detectorWindow         = 3 * time.Minute
	failedAuthAlertAfter   = 8
	requestBudgetPerWindow = 600
	blockedRequestLogEvery = 50
)

// AuthMiddleware validates the API key on every non-public route using a
// constant time comparison.
func AuthMiddleware(apiKey string, trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, path := range PublicPaths {
				if strings.HasPrefix(r.URL.Path, path) {
					next.ServeHTTP(w, r)
					return
				}
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := clientIP(r, trustedProxies)
				detector.NoteAuthFailure(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"remote_addr", r.RemoteAddr,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request body size; GPS segment batches
// are the largest legitimate payloads and stay well under the limit.
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// SuspiciousActivityDetector tracks per-IP auth failures and request
// volume over a sliding reset window.
type SuspiciousActivityDetector struct {
	mu           sync.Mutex
	authFailures map[string]int
	requests     map[string]int
	windowStart  time.Time
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		authFailures: make(map[string]int),
		requests:     make(map[string]int),
		windowStart:  time.Now(),
	}
}

// NoteAuthFailure counts a failed key check and alerts once the IP
// crosses the threshold inside the current window.
func (d *SuspiciousActivityDetector) NoteAuthFailure(ip string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rotateWindow()
	d.authFailures[ip]++

	if d.authFailures[ip] >= failedAuthAlertAfter {
		slog.Warn(SecurityAlertFailedAuth,
			"ip", ip,
			"count", d.authFailures[ip])
	}
}

// AllowRequest counts the request and reports whether the IP is still
// inside its budget for the window.
func (d *SuspiciousActivityDetector) AllowRequest(ip string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.rotateWindow()
	d.requests[ip]++

	if d.requests[ip] > requestBudgetPerWindow {
		// Log a sample of blocked requests, not every one.
		if d.requests[ip]%blockedRequestLogEvery == 0 {
			slog.Warn(SecurityAlertHighRate,
				"ip", ip,
				"count_in_window", d.requests[ip])
		}
		return false
	}
	return true
}

// rotateWindow clears the counters once the window has elapsed. Caller
// must hold the mutex.
func (d *SuspiciousActivityDetector) rotateWindow() {
	if time.Since(d.windowStart) > detectorWindow {
		d.requests = make(map[string]int)
		d.authFailures = make(map[string]int)
		d.windowStart = time.Now()
	}
}

// SecurityLoggingMiddleware enforces the per-IP request budget.
func SecurityLoggingMiddleware(trustedProxies []string, detector *SuspiciousActivityDetector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r, trustedProxies)

			if !detector.AllowRequest(ip) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// clientIP resolves the caller's address. X-Forwarded-For is honored only
// when the direct peer is a configured trusted proxy, and then only its
// rightmost entry, since that is the hop the proxy itself vouches for.
func clientIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
		break
	}

	return remoteIP
}

// SecurityHeadersMiddleware sets the standard browser hardening headers.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set(HeaderContentType, HeaderValueNoSniff)
			w.Header().Set(HeaderFrameOptions, HeaderValueSameOrigin)
			w.Header().Set(HeaderXSSProtection, HeaderValueXSSBlock)
			w.Header().Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)

			next.ServeHTTP(w, r)
		})
	}
}
