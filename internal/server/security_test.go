package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware(t *testing.T) {
	const apiKey = "stride-api-key"
	middleware := AuthMiddleware(apiKey, nil, NewSuspiciousActivityDetector())

	tests := []struct {
		name           string
		providedKey    string
		path           string
		expectedStatus int
	}{
		{
			name:           "Valid Key On Movement Route",
			providedKey:    apiKey,
			path:           "/api/v1/movement/start",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Wrong Key On Balance Route",
			providedKey:    "not-the-key",
			path:           "/api/v1/coins/balance",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing Key On Spin Route",
			providedKey:    "",
			path:           "/api/v1/game/spin",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Healthz Is Public",
			providedKey:    "",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Version Is Public",
			providedKey:    "",
			path:           "/version",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Swagger Is Public",
			providedKey:    "",
			path:           "/swagger/index.html",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name           string
		remoteAddr     string
		forwardedFor   string
		trustedProxies []string
		expectedIP     string
	}{
		{
			name:       "Direct Connection",
			remoteAddr: "203.0.113.7:52001",
			expectedIP: "203.0.113.7",
		},
		{
			name:           "Forwarded Header From Untrusted Peer Ignored",
			remoteAddr:     "203.0.113.7:52001",
			forwardedFor:   "198.51.100.9",
			trustedProxies: []string{"10.0.0.1"},
			expectedIP:     "203.0.113.7",
		},
		{
			name:           "Trusted Proxy Uses Rightmost Hop",
			remoteAddr:     "10.0.0.1:4180",
			forwardedFor:   "198.51.100.9, 192.0.2.44",
			trustedProxies: []string{"10.0.0.1"},
			expectedIP:     "192.0.2.44",
		},
		{
			name:           "Trusted Proxy Without Header Falls Back",
			remoteAddr:     "10.0.0.1:4180",
			trustedProxies: []string{"10.0.0.1"},
			expectedIP:     "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/stride/status", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwardedFor != "" {
				req.Header.Set(HeaderForwardedFor, tt.forwardedFor)
			}

			assert.Equal(t, tt.expectedIP, clientIP(req, tt.trustedProxies))
		})
	}
}
