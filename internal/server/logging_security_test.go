package server

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingMiddleware_RedactsCredentialHeaders(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	// Header logging only happens at debug level.
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	handler := loggingMiddleware(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/coins/balance?user_id=user-1", nil)
	req.Header.Set(HeaderAPIKey, "sk-stride-do-not-log")
	req.Header.Set(HeaderAuthorization, "Bearer session-token-41")
	req.Header.Set("User-Agent", "StrideRushApp/2.3")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	logged := buf.String()
	require.Contains(t, logged, LogMsgRequestHeaders)

	assert.NotContains(t, logged, "sk-stride-do-not-log")
	assert.NotContains(t, logged, "session-token-41")
	assert.Contains(t, logged, RedactedValue)

	// Non-credential headers still make it into the log.
	assert.Contains(t, logged, "StrideRushApp/2.3")
}
