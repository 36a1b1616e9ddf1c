package handler

import (
	"net/http"

	"github.com/striderush/StrideRush_Go/internal/booster"
	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/metrics"
)

type RedeemBoosterRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Code   string `json:"code" validate:"required"`
}

// HandleRedeemBooster redeems a booster code for the user
func HandleRedeemBooster(service booster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RedeemBoosterRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Redeem booster"); err != nil {
			return
		}

		b, err := service.Redeem(r.Context(), req.UserID, req.Code)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to redeem booster", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		metrics.BoostersRedeemed.Inc()
		respondJSON(w, http.StatusCreated, b)
	}
}

// HandleGetActiveBooster reports the user's currently live booster
func HandleGetActiveBooster(service booster.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		status, err := service.GetActive(r.Context(), userID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get active booster", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, status)
	}
}
