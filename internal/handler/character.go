package handler

import (
	"net/http"

	"github.com/striderush/StrideRush_Go/internal/character"
	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/logger"
)

type CharacterHandler struct {
	service character.Service
}

func NewCharacterHandler(service character.Service) *CharacterHandler {
	return &CharacterHandler{service: service}
}

func (h *CharacterHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	state, err := h.service.GetOrCreate(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get character", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

type LevelUpRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Stat   string `json:"stat" validate:"required,oneof=endurance efficiency luck"`
}

func (h *CharacterHandler) HandleLevelUp(w http.ResponseWriter, r *http.Request) {
	var req LevelUpRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Level up"); err != nil {
		return
	}

	state, err := h.service.LevelUp(r.Context(), req.UserID, domain.StatKey(req.Stat))
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to level up", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

type GrantExpRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Amount int64  `json:"amount" validate:"required,gte=1"`
}

func (h *CharacterHandler) HandleGrantExp(w http.ResponseWriter, r *http.Request) {
	var req GrantExpRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Grant exp"); err != nil {
		return
	}

	state, err := h.service.GrantExp(r.Context(), req.UserID, req.Amount)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to grant exp", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, state)
}

type FeedRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Amount int    `json:"amount" validate:"required,gte=1"`
}

func (h *CharacterHandler) HandleFeed(w http.ResponseWriter, r *http.Request) {
	var req FeedRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Feed character"); err != nil {
		return
	}

	state, err := h.service.Feed(r.Context(), req.UserID, req.Amount)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to feed character", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, state)
}
