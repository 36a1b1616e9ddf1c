package handler

import (
	"net/http"

	"github.com/striderush/StrideRush_Go/internal/ledger"
	"github.com/striderush/StrideRush_Go/internal/logger"
)

// HandleGetBalance returns both coin balances for a user
func HandleGetBalance(service ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		balance, err := service.GetBalance(r.Context(), userID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get balance", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, balance)
	}
}

// HandleGetTransactions returns a page of the user's coin transaction history
func HandleGetTransactions(service ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}
		limit, ok := GetOptionalIntParam(r, w, "limit", 0)
		if !ok {
			return
		}
		offset, ok := GetOptionalIntParam(r, w, "offset", 0)
		if !ok {
			return
		}

		transactions, err := service.GetTransactions(r.Context(), userID, limit, offset)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to get transactions", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: transactions})
	}
}
