package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Auth errors
	ErrMsgUnauthorized = "unauthorized"

	// Validation errors
	ErrMsgInvalidInput         = "invalid input"
	ErrMsgUnknownTransportMode = "unknown transport mode"
	ErrMsgInvalidWeightTable   = "invalid weight table"

	// Lookup errors
	ErrMsgNotFound = "not found"

	// Economy errors
	ErrMsgInsufficientFunds = "insufficient funds"
	ErrMsgOutOfStock        = "out of stock"

	// Idempotent-guard errors
	ErrMsgAlreadyClaimed   = "already claimed"
	ErrMsgAlreadyCompleted = "already completed"

	// Movement errors
	ErrMsgMovementNotActive = "movement is not active"
	ErrMsgConflictingActive = "a conflicting active resource exists"

	// Character errors
	ErrMsgInsufficientExp = "not enough exp to level up"

	// Cosmetic errors
	ErrMsgMaxEnhanceLevel = "cosmetic is already at max enhancement level"
	ErrMsgSlotOccupied    = "equipment slot is occupied"

	// Achievement errors
	ErrMsgAchievementNotMet = "achievement criteria not met"

	// Booster errors
	ErrMsgCodeExhausted = "booster code has no redemptions left"

	// Transactional scope errors
	ErrMsgTimeout  = "transaction timed out"
	ErrMsgTxClosed = "tx is closed"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Auth errors
	ErrUnauthorized = errors.New(ErrMsgUnauthorized)

	// Validation errors
	ErrInvalidInput         = errors.New(ErrMsgInvalidInput)
	ErrUnknownTransportMode = errors.New(ErrMsgUnknownTransportMode)
	ErrInvalidWeightTable   = errors.New(ErrMsgInvalidWeightTable)

	// Lookup errors
	ErrNotFound = errors.New(ErrMsgNotFound)

	// Economy errors
	ErrInsufficientFunds = errors.New(ErrMsgInsufficientFunds)
	ErrOutOfStock        = errors.New(ErrMsgOutOfStock)

	// Idempotent-guard errors
	ErrAlreadyClaimed   = errors.New(ErrMsgAlreadyClaimed)
	ErrAlreadyCompleted = errors.New(ErrMsgAlreadyCompleted)

	// Movement errors
	ErrMovementNotActive         = errors.New(ErrMsgMovementNotActive)
	ErrConflictingActiveResource = errors.New(ErrMsgConflictingActive)

	// Character errors
	ErrInsufficientExp = errors.New(ErrMsgInsufficientExp)

	// Cosmetic errors
	ErrMaxEnhanceLevel = errors.New(ErrMsgMaxEnhanceLevel)
	ErrSlotOccupied    = errors.New(ErrMsgSlotOccupied)

	// Achievement errors
	ErrAchievementNotMet = errors.New(ErrMsgAchievementNotMet)

	// Booster errors
	ErrCodeExhausted = errors.New(ErrMsgCodeExhausted)

	// Transactional scope errors
	ErrTimeout = errors.New(ErrMsgTimeout)
)
