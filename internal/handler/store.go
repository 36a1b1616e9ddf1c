package handler

import (
	"net/http"

	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/metrics"
	"github.com/striderush/StrideRush_Go/internal/store"
)

// HandleListStoreItems returns the purchasable catalogue
func HandleListStoreItems(service store.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := service.ListItems(r.Context())
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list store items", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: items})
	}
}

type PurchaseRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	ItemKey string `json:"item_key" validate:"required"`
}

// HandlePurchase buys one store item for the user
func HandlePurchase(service store.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Purchase item"); err != nil {
			return
		}

		purchase, err := service.Purchase(r.Context(), req.UserID, req.ItemKey)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to purchase item", "error", err,
				"item_key", req.ItemKey)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		metrics.StorePurchases.WithLabelValues(req.ItemKey).Inc()
		respondJSON(w, http.StatusCreated, purchase)
	}
}
