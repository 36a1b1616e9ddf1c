package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/striderush/StrideRush_Go/internal/domain"
	"github.com/striderush/StrideRush_Go/internal/movement"
	"github.com/striderush/StrideRush_Go/internal/stride"
)

type MockMovementService struct {
	mock.Mock
}

func (m *MockMovementService) Start(ctx context.Context, userID, transportMode string) (*domain.Movement, error) {
	args := m.Called(ctx, userID, transportMode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementService) Complete(ctx context.Context, userID string, params movement.CompleteParams) (*movement.CompleteResult, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movement.CompleteResult), args.Error(1)
}

func (m *MockMovementService) Cancel(ctx context.Context, userID string, movementID uuid.UUID) error {
	args := m.Called(ctx, userID, movementID)
	return args.Error(0)
}

func (m *MockMovementService) GetActive(ctx context.Context, userID string) (*domain.Movement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementService) Get(ctx context.Context, userID string, movementID uuid.UUID) (*domain.Movement, error) {
	args := m.Called(ctx, userID, movementID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementService) GetStrideStatus(ctx context.Context, userID string) (*domain.StrideStatus, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StrideStatus), args.Error(1)
}

func TestHandleStartMovement(t *testing.T) {
	movementID := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockMovementService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Invalid JSON",
			reqBody:        "invalid json",
			setupMocks:     func(ms *MockMovementService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequest,
		},
		{
			name:           "Missing Transport Mode",
			reqBody:        StartMovementRequest{UserID: "user-1"},
			setupMocks:     func(ms *MockMovementService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:    "Unknown Transport Mode",
			reqBody: StartMovementRequest{UserID: "user-1", TransportMode: "jetpack"},
			setupMocks: func(ms *MockMovementService) {
				ms.On("Start", mock.Anything, "user-1", "jetpack").Return(nil, domain.ErrUnknownTransportMode)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgUnknownTransportError,
		},
		{
			name:    "Success",
			reqBody: StartMovementRequest{UserID: "user-1", TransportMode: "walk"},
			setupMocks: func(ms *MockMovementService) {
				ms.On("Start", mock.Anything, "user-1", "walk").Return(&domain.Movement{
					ID:            movementID,
					UserID:        "user-1",
					Status:        domain.MovementStatusActive,
					TransportMode: "walk",
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"transport_mode":"walk"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockMovementService)
			tt.setupMocks(mockSvc)
			h := NewMovementHandler(mockSvc)

			var body []byte
			if s, ok := tt.reqBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.reqBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/movement/start", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h.HandleStart(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleCompleteMovement(t *testing.T) {
	movementID := uuid.MustParse("00000000-0000-0000-0000-000000000002")

	validBody := CompleteMovementRequest{
		UserID: "user-1",
		Segments: []SegmentPayload{{
			TransportMode: "walk",
			Points: []domain.GpsPoint{
				{Lat: 37.5, Lng: 127.0, TimestampMs: 1000},
				{Lat: 37.501, Lng: 127.0, TimestampMs: 31000},
			},
		}},
		LocalDay:  "2025-06-01",
		LocalHour: 8,
		Weather:   "clear",
	}

	t.Run("Missing ID Query Param", func(t *testing.T) {
		mockSvc := new(MockMovementService)
		h := NewMovementHandler(mockSvc)

		body, _ := json.Marshal(validBody)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/movement/complete", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.HandleComplete(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Invalid Movement ID", func(t *testing.T) {
		mockSvc := new(MockMovementService)
		h := NewMovementHandler(mockSvc)

		body, _ := json.Marshal(validBody)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/movement/complete?id=not-a-uuid", bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.HandleComplete(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgInvalidMovementID)
	})

	t.Run("Invalid Local Day", func(t *testing.T) {
		mockSvc := new(MockMovementService)
		h := NewMovementHandler(mockSvc)

		badBody := validBody
		badBody.LocalDay = "June 1st"
		body, _ := json.Marshal(badBody)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/movement/complete?id="+movementID.String(), bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.HandleComplete(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Already Completed", func(t *testing.T) {
		mockSvc := new(MockMovementService)
		mockSvc.On("Complete", mock.Anything, "user-1", mock.Anything).Return(nil, domain.ErrAlreadyCompleted)
		h := NewMovementHandler(mockSvc)

		body, _ := json.Marshal(validBody)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/movement/complete?id="+movementID.String(), bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.HandleComplete(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, rec.Body.String(), ErrMsgAlreadyCompletedError)
		mockSvc.AssertExpectations(t)
	})

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockMovementService)
		mockSvc.On("Complete", mock.Anything, "user-1", mock.MatchedBy(func(p movement.CompleteParams) bool {
			return p.MovementID == movementID && len(p.Segments) == 1 && p.LocalHour == 8
		})).Return(&movement.CompleteResult{
			Movement: &domain.Movement{
				ID:     movementID,
				UserID: "user-1",
				Status: domain.MovementStatusCompleted,
			},
			StrideOutcome: stride.OutcomeExtended,
			StrideStatus:  domain.StrideStatus{Level: 2, Title: "Pacer", Multiplier: 1.1},
		}, nil)
		h := NewMovementHandler(mockSvc)

		body, _ := json.Marshal(validBody)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/movement/complete?id="+movementID.String(), bytes.NewReader(body))
		rec := httptest.NewRecorder()

		h.HandleComplete(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"stride_outcome":"extended"`)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleGetActiveMovement(t *testing.T) {
	t.Run("No Active Movement", func(t *testing.T) {
		mockSvc := new(MockMovementService)
		mockSvc.On("GetActive", mock.Anything, "user-1").Return(nil, nil)
		h := NewMovementHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/movement/active?user_id=user-1", nil)
		rec := httptest.NewRecorder()

		h.HandleGetActive(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Success", func(t *testing.T) {
		mockSvc := new(MockMovementService)
		mockSvc.On("GetActive", mock.Anything, "user-1").Return(&domain.Movement{
			ID:     uuid.MustParse("00000000-0000-0000-0000-000000000003"),
			UserID: "user-1",
			Status: domain.MovementStatusActive,
		}, nil)
		h := NewMovementHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/movement/active?user_id=user-1", nil)
		rec := httptest.NewRecorder()

		h.HandleGetActive(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ACTIVE"`)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandleStrideStatus(t *testing.T) {
	mockSvc := new(MockMovementService)
	mockSvc.On("GetStrideStatus", mock.Anything, "user-1").Return(&domain.StrideStatus{
		State:      domain.StrideState{UserID: "user-1", CurrentStreakDays: 12},
		Level:      3,
		Title:      "Strider",
		Multiplier: 1.2,
		DailyCapSC: 700,
	}, nil)
	h := NewMovementHandler(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/stride/status?user_id=user-1", nil)
	rec := httptest.NewRecorder()

	h.HandleStrideStatus(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Strider"`)
	mockSvc.AssertExpectations(t)
}
