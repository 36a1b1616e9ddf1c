package handler

import (
	"net/http"
	"strings"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/ledger"
	"github.com/striderush/StrideRush_Go/internal/logger"
)

// AdminEmailHeader carries the operator identity for admin endpoints. The
// value must match an entry in the ADMIN_EMAILS allowlist.
const AdminEmailHeader = "X-Admin-Email"

type AdminGrantRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	CoinType    string `json:"coin_type" validate:"required,oneof=SC MC"`
	Amount      int64  `json:"amount" validate:"required"`
	Description string `json:"description" validate:"max=200"`
}

type AdminGrantResponse struct {
	UserID     string `json:"user_id"`
	CoinType   string `json:"coin_type"`
	NewBalance int64  `json:"new_balance"`
}

// HandleAdminGrant credits or deducts coins outside the normal reward flow.
// The allowlist is injected at startup; an empty allowlist disables the
// endpoint entirely.
func HandleAdminGrant(service ledger.Service, adminEmails []string) http.HandlerFunc {
	allowed := make(map[string]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.ToLower(strings.TrimSpace(email))
		if email != "" {
			allowed[email] = struct{}{}
		}
	}

	return func(w http.ResponseWriter, r *http.Request) {
		email := strings.ToLower(strings.TrimSpace(r.Header.Get(AdminEmailHeader)))
		if _, ok := allowed[email]; !ok {
			logger.FromContext(r.Context()).Warn("Rejected admin grant", "email", email)
			respondError(w, http.StatusForbidden, ErrMsgAdminAccessDenied)
			return
		}

		var req AdminGrantRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Admin grant"); err != nil {
			return
		}

		newBalance, err := service.ApplyStandalone(r.Context(), ledger.ApplyParams{
			UserID:      req.UserID,
			CoinType:    domain.CoinType(req.CoinType),
			Amount:      req.Amount,
			SourceType:  domain.SourceAdmin,
			SourceID:    &email,
			Description: req.Description,
		})
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to apply admin grant", "error", err, "admin", email)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		logger.FromContext(r.Context()).Info("Admin grant applied",
			"admin", email, "user_id", req.UserID, "coin_type", req.CoinType, "amount", req.Amount)

		respondJSON(w, http.StatusOK, AdminGrantResponse{
			UserID:     req.UserID,
			CoinType:   req.CoinType,
			NewBalance: newBalance,
		})
	}
}
