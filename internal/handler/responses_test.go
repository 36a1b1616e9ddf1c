package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

func TestMapServiceErrorToUserMessage(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:           "Domain Timeout",
			err:            domain.ErrTimeout,
			expectedStatus: http.StatusGatewayTimeout,
			expectedMsg:    ErrMsgTimeoutError,
		},
		{
			name:           "Expired Transaction Deadline",
			err:            fmt.Errorf("failed to commit transaction: %w", context.DeadlineExceeded),
			expectedStatus: http.StatusGatewayTimeout,
			expectedMsg:    ErrMsgTimeoutError,
		},
		{
			name:           "Wrapped Not Found",
			err:            fmt.Errorf("movement lookup: %w", domain.ErrNotFound),
			expectedStatus: http.StatusNotFound,
			expectedMsg:    ErrMsgResourceNotFoundErr,
		},
		{
			name:           "Wrapped Insufficient Funds",
			err:            fmt.Errorf("spin debit: %w", domain.ErrInsufficientFunds),
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    ErrMsgNotEnoughCoinsError,
		},
		{
			name:           "Unknown Error Passes Short Message Through",
			err:            errors.New("pool exhausted"),
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "pool exhausted",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToUserMessage(tt.err)
			assert.Equal(t, tt.expectedStatus, status)
			assert.Equal(t, tt.expectedMsg, msg)
		})
	}
}
