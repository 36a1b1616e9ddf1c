package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/striderush/StrideRush_Go/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Headers are already sent, all we can do is log
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgAuthFailedError     = "Authentication failed. Please check your API key."
	ErrMsgResourceNotFoundErr = "Resource not found."
	ErrMsgTimeoutError        = "The operation timed out. Please try again."

	// Economy messages
	ErrMsgNotEnoughCoinsError = "Not enough coins"
	ErrMsgOutOfStockError     = "Sold out"

	// Movement messages
	ErrMsgUnknownTransportError  = "Unknown transport mode"
	ErrMsgMovementNotActiveError = "Movement is not active"
	ErrMsgAlreadyCompletedError  = "Movement was already completed"
	ErrMsgConflictingActiveError = "Another movement is already active"

	// Character messages
	ErrMsgInsufficientExpError = "Not enough exp to level up"

	// Cosmetic messages
	ErrMsgMaxEnhanceLevelError = "Already at max enhancement level"
	ErrMsgSlotOccupiedError    = "That equipment slot is occupied"

	// Achievement messages
	ErrMsgAlreadyClaimedError = "Already claimed"
	ErrMsgCriteriaNotMetError = "Achievement criteria not met"

	// Booster messages
	ErrMsgCodeExhaustedError = "That code has no redemptions left"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// This function converts internal service errors to appropriate HTTP status codes
// and messages that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, ErrMsgAuthFailedError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrUnknownTransportMode):
		return http.StatusBadRequest, ErrMsgUnknownTransportError
	case errors.Is(err, domain.ErrInvalidWeightTable):
		return http.StatusInternalServerError, ErrMsgGenericServerError
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, ErrMsgResourceNotFoundErr
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusBadRequest, ErrMsgNotEnoughCoinsError
	case errors.Is(err, domain.ErrOutOfStock):
		return http.StatusConflict, ErrMsgOutOfStockError
	case errors.Is(err, domain.ErrAlreadyClaimed):
		return http.StatusConflict, ErrMsgAlreadyClaimedError
	case errors.Is(err, domain.ErrAlreadyCompleted):
		return http.StatusConflict, ErrMsgAlreadyCompletedError
	case errors.Is(err, domain.ErrMovementNotActive):
		return http.StatusConflict, ErrMsgMovementNotActiveError
	case errors.Is(err, domain.ErrConflictingActiveResource):
		return http.StatusConflict, ErrMsgConflictingActiveError
	case errors.Is(err, domain.ErrInsufficientExp):
		return http.StatusBadRequest, ErrMsgInsufficientExpError
	case errors.Is(err, domain.ErrMaxEnhanceLevel):
		return http.StatusBadRequest, ErrMsgMaxEnhanceLevelError
	case errors.Is(err, domain.ErrSlotOccupied):
		return http.StatusConflict, ErrMsgSlotOccupiedError
	case errors.Is(err, domain.ErrAchievementNotMet):
		return http.StatusBadRequest, ErrMsgCriteriaNotMetError
	case errors.Is(err, domain.ErrCodeExhausted):
		return http.StatusConflict, ErrMsgCodeExhaustedError
	case errors.Is(err, domain.ErrTimeout):
		return http.StatusGatewayTimeout, ErrMsgTimeoutError
	// Transaction contexts carry a deadline; pgx surfaces its expiry as a
	// wrapped context.DeadlineExceeded rather than a domain error.
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, ErrMsgTimeoutError
	}

	// For wrapped errors with domain errors as the base, try unwrapping
	unwrapped := errors.Unwrap(err)
	if unwrapped != nil && unwrapped != err {
		return mapServiceErrorToUserMessage(unwrapped)
	}

	// Surface short custom messages from tests and mocks as-is
	errMsg := err.Error()
	if errMsg != "" && len(errMsg) < 200 {
		return http.StatusInternalServerError, errMsg
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
