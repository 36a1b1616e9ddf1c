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
)

type MockStoreService struct {
	mock.Mock
}

func (m *MockStoreService) ListItems(ctx context.Context) ([]domain.StoreItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StoreItem), args.Error(1)
}

func (m *MockStoreService) Purchase(ctx context.Context, userID, itemKey string) (*domain.StorePurchase, error) {
	args := m.Called(ctx, userID, itemKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StorePurchase), args.Error(1)
}

func TestHandlePurchase(t *testing.T) {
	tests := []struct {
		name           string
		reqBody        interface{}
		setupMocks     func(*MockStoreService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "Missing Item Key",
			reqBody:        PurchaseRequest{UserID: "user-1"},
			setupMocks:     func(ms *MockStoreService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name:    "Out Of Stock",
			reqBody: PurchaseRequest{UserID: "user-1", ItemKey: "stride_shield"},
			setupMocks: func(ms *MockStoreService) {
				ms.On("Purchase", mock.Anything, "user-1", "stride_shield").Return(nil, domain.ErrOutOfStock)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgOutOfStockError,
		},
		{
			name:    "Insufficient Funds",
			reqBody: PurchaseRequest{UserID: "user-1", ItemKey: "stride_shield"},
			setupMocks: func(ms *MockStoreService) {
				ms.On("Purchase", mock.Anything, "user-1", "stride_shield").Return(nil, domain.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgNotEnoughCoinsError,
		},
		{
			name:    "Success",
			reqBody: PurchaseRequest{UserID: "user-1", ItemKey: "stride_shield"},
			setupMocks: func(ms *MockStoreService) {
				ms.On("Purchase", mock.Anything, "user-1", "stride_shield").Return(&domain.StorePurchase{
					ID:       uuid.MustParse("00000000-0000-0000-0000-000000000011"),
					UserID:   "user-1",
					ItemKey:  "stride_shield",
					CoinType: domain.CoinMC,
					Price:    200,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"item_key":"stride_shield"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockStoreService)
			tt.setupMocks(mockSvc)
			h := HandlePurchase(mockSvc)

			var body []byte
			if s, ok := tt.reqBody.(string); ok {
				body = []byte(s)
			} else {
				body, _ = json.Marshal(tt.reqBody)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v1/store/purchase", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			h(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectedBody)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestHandleListStoreItems(t *testing.T) {
	mockSvc := new(MockStoreService)
	mockSvc.On("ListItems", mock.Anything).Return([]domain.StoreItem{
		{Key: "stride_shield", Name: "Stride Shield", CoinType: domain.CoinMC, Price: 200, Stock: -1},
	}, nil)
	h := HandleListStoreItems(mockSvc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/store/items", nil)
	rec := httptest.NewRecorder()

	h(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"key":"stride_shield"`)
	mockSvc.AssertExpectations(t)
}
