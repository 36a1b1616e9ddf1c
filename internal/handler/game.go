package handler

import (
	"net/http"

	"github.com/striderush/StrideRush_Go/internal/game"
	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/metrics"
)

type GameHandler struct {
	service game.Service
}

func NewGameHandler(service game.Service) *GameHandler {
	return &GameHandler{service: service}
}

func (h *GameHandler) HandleGetWheel(w http.ResponseWriter, r *http.Request) {
	wheel, err := h.service.GetWheel(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get wheel", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, wheel)
}

type SpinRequest struct {
	UserID string `json:"user_id" validate:"required"`
	// GameKind is optional while a single wheel exists; supplying one
	// that is not configured is a 404.
	GameKind string `json:"game_kind" validate:"omitempty,max=50"`
}

func (h *GameHandler) HandleSpin(w http.ResponseWriter, r *http.Request) {
	var req SpinRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Spin wheel"); err != nil {
		return
	}

	result, err := h.service.Spin(r.Context(), req.UserID, req.GameKind)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to spin roulette", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	metrics.RouletteSpins.WithLabelValues(result.Spin.SlotLabel).Inc()
	respondJSON(w, http.StatusOK, result)
}

func (h *GameHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	limit, ok := GetOptionalIntParam(r, w, "limit", 0)
	if !ok {
		return
	}

	spins, err := h.service.GetHistory(r.Context(), userID, limit)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get spin history", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: spins})
}
