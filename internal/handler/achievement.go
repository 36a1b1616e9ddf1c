package handler

import (
	"net/http"

	"github.com/striderush/StrideRush_Go/internal/achievement"
	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/metrics"
)

// HandleListAchievements returns every achievement with the user's progress
func HandleListAchievements(service achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetQueryParam(r, w, "user_id")
		if !ok {
			return
		}

		progress, err := service.List(r.Context(), userID)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to list achievements", "error", err)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		respondJSON(w, http.StatusOK, DataResponse{Data: progress})
	}
}

type ClaimAchievementRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Code   string `json:"code" validate:"required"`
}

// HandleClaimAchievement claims a met achievement and credits its reward
func HandleClaimAchievement(service achievement.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimAchievementRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Claim achievement"); err != nil {
			return
		}

		claim, err := service.Claim(r.Context(), req.UserID, req.Code)
		if err != nil {
			logger.FromContext(r.Context()).Error("Failed to claim achievement", "error", err,
				"code", req.Code)
			statusCode, userMsg := mapServiceErrorToUserMessage(err)
			respondError(w, statusCode, userMsg)
			return
		}

		metrics.AchievementsClaimed.Inc()
		respondJSON(w, http.StatusCreated, claim)
	}
}
