package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidOffset     = "Invalid offset parameter"

	// Movement error messages
	ErrMsgInvalidMovementID   = "Invalid movement ID"
	ErrMsgMovementNotFoundMsg = "Movement not found"
	ErrMsgNoActiveMovement    = "No active movement"

	// Cosmetic error messages
	ErrMsgInvalidInstanceID = "Invalid cosmetic instance ID"

	// Ledger error messages
	ErrMsgGetBalanceFailed      = "Failed to get balance"
	ErrMsgGetTransactionsFailed = "Failed to get transactions"

	// Admin error messages
	ErrMsgAdminAccessDenied = "Admin access denied"
)

// Success messages for API responses
const (
	MsgMovementCancelledSuccess = "Movement cancelled"
	MsgCosmeticUnequippedMsg    = "Cosmetic unequipped"
)
