package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/logger"
	"github.com/striderush/StrideRush_Go/internal/metrics"
	"github.com/striderush/StrideRush_Go/internal/movement"
	"github.com/striderush/StrideRush_Go/internal/stride"
)

// localDayFormat is the wire format for the client's local calendar day.
const localDayFormat = "2006-01-02"

type MovementHandler struct {
	service movement.Service
}

func NewMovementHandler(service movement.Service) *MovementHandler {
	return &MovementHandler{service: service}
}

type StartMovementRequest struct {
	UserID        string `json:"user_id" validate:"required"`
	TransportMode string `json:"transport_mode" validate:"required"`
}

func (h *MovementHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req StartMovementRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Start movement"); err != nil {
		return
	}

	mv, err := h.service.Start(r.Context(), req.UserID, req.TransportMode)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to start movement", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	metrics.MovementsStarted.WithLabelValues(mv.TransportMode).Inc()
	respondJSON(w, http.StatusCreated, mv)
}

type SegmentPayload struct {
	TransportMode string            `json:"transport_mode" validate:"required"`
	Points        []domain.GpsPoint `json:"points" validate:"required,min=2"`
}

type CompleteMovementRequest struct {
	UserID    string           `json:"user_id" validate:"required"`
	Segments  []SegmentPayload `json:"segments" validate:"required,min=1,dive"`
	LocalDay  string           `json:"local_day" validate:"required"`
	LocalHour int              `json:"local_hour" validate:"gte=0,lte=23"`
	Weather   string           `json:"weather"`
}

// CompleteMovementResponse flattens the completion outcome for clients.
type CompleteMovementResponse struct {
	Movement      *domain.Movement      `json:"movement"`
	StrideStatus  domain.StrideStatus   `json:"stride_status"`
	StrideOutcome stride.AdvanceOutcome `json:"stride_outcome"`
}

func (h *MovementHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	movementIDStr, ok := GetQueryParam(r, w, "id")
	if !ok {
		return
	}
	movementID, err := uuid.Parse(movementIDStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidMovementID, http.StatusBadRequest)
		return
	}

	var req CompleteMovementRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Complete movement"); err != nil {
		return
	}

	localDay, err := time.Parse(localDayFormat, req.LocalDay)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidInputError)
		return
	}

	segments := make([]movement.SegmentInput, 0, len(req.Segments))
	for _, seg := range req.Segments {
		segments = append(segments, movement.SegmentInput{
			TransportMode: seg.TransportMode,
			Points:        seg.Points,
		})
	}

	result, err := h.service.Complete(r.Context(), req.UserID, movement.CompleteParams{
		MovementID: movementID,
		Segments:   segments,
		LocalDay:   localDay,
		LocalHour:  req.LocalHour,
		Weather:    domain.WeatherCondition(req.Weather),
	})
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to complete movement", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	metrics.MovementsCompleted.Inc()
	metrics.DistanceValidated.Add(result.Movement.TotalDistanceM)
	if result.Movement.RewardBreakdown != nil {
		metrics.SCEarned.Add(float64(result.Movement.RewardBreakdown.CreditedSC))
	}

	respondJSON(w, http.StatusOK, CompleteMovementResponse{
		Movement:      result.Movement,
		StrideStatus:  result.StrideStatus,
		StrideOutcome: result.StrideOutcome,
	})
}

type CancelMovementRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

func (h *MovementHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	movementIDStr, ok := GetQueryParam(r, w, "id")
	if !ok {
		return
	}
	movementID, err := uuid.Parse(movementIDStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidMovementID, http.StatusBadRequest)
		return
	}

	var req CancelMovementRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Cancel movement"); err != nil {
		return
	}

	if err := h.service.Cancel(r.Context(), req.UserID, movementID); err != nil {
		logger.FromContext(r.Context()).Error("Failed to cancel movement", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	metrics.MovementsCancelled.Inc()
	respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgMovementCancelledSuccess})
}

func (h *MovementHandler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	mv, err := h.service.GetActive(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get active movement", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}
	if mv == nil {
		http.Error(w, ErrMsgNoActiveMovement, http.StatusNotFound)
		return
	}

	respondJSON(w, http.StatusOK, mv)
}

func (h *MovementHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	movementIDStr, ok := GetQueryParam(r, w, "id")
	if !ok {
		return
	}
	movementID, err := uuid.Parse(movementIDStr)
	if err != nil {
		http.Error(w, ErrMsgInvalidMovementID, http.StatusBadRequest)
		return
	}

	mv, err := h.service.Get(r.Context(), userID, movementID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get movement", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, mv)
}

func (h *MovementHandler) HandleStrideStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}

	status, err := h.service.GetStrideStatus(r.Context(), userID)
	if err != nil {
		logger.FromContext(r.Context()).Error("Failed to get stride status", "error", err)
		statusCode, userMsg := mapServiceErrorToUserMessage(err)
		respondError(w, statusCode, userMsg)
		return
	}

	respondJSON(w, http.StatusOK, status)
}
