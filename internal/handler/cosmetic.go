package handler

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/striderush/StrideRush_Go/internal/cosmetic"
	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/metrics"
)

type CosmeticHandler struct {
	service cosmetic.Service
}

func NewCosmeticHandler(service cosmetic.Service) *CosmeticHandler {
	return &CosmeticHandler{service: service}
}

func (h *CosmeticHandler) HandleListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := h.service.ListTemplates(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list cosmetic templates", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: templates})
}

func (h *CosmeticHandler) HandleListOwned(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	instances, err := h.service.ListOwned(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to list owned cosmetics", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, DataResponse{Data: instances})
}

type MintCosmeticRequest struct {
	UserID      string `json:"user_id" validate:"required"`
	TemplateKey string `json:"template_key" validate:"required"`
}

func (h *CosmeticHandler) HandleMint(w http.ResponseWriter, r *http.Request) {
	var req MintCosmeticRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Mint cosmetic"); err != nil {
		return
	}

	instance, err := h.service.Mint(r.Context(), req.UserID, req.TemplateKey)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to mint cosmetic", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	metrics.CosmeticsMinted.WithLabelValues(req.TemplateKey).Inc()
	respondJSON(w, http.StatusCreated, instance)
}

type EnhanceCosmeticRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	InstanceID string `json:"instance_id" validate:"required,uuid"`
}

func (h *CosmeticHandler) HandleEnhance(w http.ResponseWriter, r *http.Request) {
	var req EnhanceCosmeticRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Enhance cosmetic"); err != nil {
		return
	}
	instanceID, err := uuid.Parse(req.InstanceID)
	if err != nil {
		http.Error(w, ErrMsgInvalidInstanceID, http.StatusBadRequest)
		return
	}

	result, err := h.service.Enhance(r.Context(), req.UserID, instanceID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to enhance cosmetic", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	outcome := "failure"
	if result.Success {
		outcome = "success"
	}
	metrics.EnhanceAttempts.WithLabelValues(outcome).Inc()

	respondJSON(w, http.StatusOK, result)
}

type EquipCosmeticRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	InstanceID string `json:"instance_id" validate:"required,uuid"`
	Slot       string `json:"slot" validate:"required"`
}

func (h *CosmeticHandler) HandleEquip(w http.ResponseWriter, r *http.Request) {
	var req EquipCosmeticRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Equip cosmetic"); err != nil {
		return
	}
	instanceID, err := uuid.Parse(req.InstanceID)
	if err != nil {
		http.Error(w, ErrMsgInvalidInstanceID, http.StatusBadRequest)
		return
	}

	instance, err := h.service.Equip(r.Context(), req.UserID, instanceID, req.Slot)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to equip cosmetic", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, instance)
}

type UnequipCosmeticRequest struct {
	UserID     string `json:"user_id" validate:"required"`
	InstanceID string `json:"instance_id" validate:"required,uuid"`
}

func (h *CosmeticHandler) HandleUnequip(w http.ResponseWriter, r *http.Request) {
	var req UnequipCosmeticRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Unequip cosmetic"); err != nil {
		return
	}
	instanceID, err := uuid.Parse(req.InstanceID)
	if err != nil {
		http.Error(w, ErrMsgInvalidInstanceID, http.StatusBadRequest)
		return
	}

	instance, err := h.service.Unequip(r.Context(), req.UserID, instanceID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to unequip cosmetic", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, instance)
}
