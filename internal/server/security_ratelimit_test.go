package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecurityLoggingMiddleware_EnforcesRequestBudget(t *testing.T) {
	detector := NewSuspiciousActivityDetector()
	handler := SecurityLoggingMiddleware(nil, detector)(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stride/status", nil)
	req.RemoteAddr = "203.0.113.50:39000"

	for i := 0; i < requestBudgetPerWindow; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equalf(t, http.StatusOK, rec.Code, "request %d should pass", i+1)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	// A different caller is not affected by the blocked IP.
	other := httptest.NewRequest(http.MethodGet, "/api/v1/stride/status", nil)
	other.RemoteAddr = "203.0.113.51:39000"
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDetector_AllowRequestPerIP(t *testing.T) {
	detector := NewSuspiciousActivityDetector()

	for ip := 0; ip < 3; ip++ {
		addr := fmt.Sprintf("198.51.100.%d", ip)
		for i := 0; i < requestBudgetPerWindow; i++ {
			assert.True(t, detector.AllowRequest(addr))
		}
		assert.False(t, detector.AllowRequest(addr))
	}
}
