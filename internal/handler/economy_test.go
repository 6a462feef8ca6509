package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/economy"
)

func TestHandleListShopItems(t *testing.T) {
	svc := &MockEconomyService{}
	svc.On("ListShopItems", mock.Anything).Return([]domain.ShopItem{{ID: "item-001", Title: "Energy Drink", Price: 50}}, nil)

	rec := serve(t, http.MethodGet, "/shop/items", "/shop/items", HandleListShopItems(svc), nil)

	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeData[[]domain.ShopItem](t, decodeEnvelope(t, rec))
	require.Len(t, items, 1)
	assert.Equal(t, "item-001", items[0].ID)
}

func TestHandlePurchase(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*MockEconomyService)
		expectedStatus int
		expectedMsg    string
	}{
		{
			name: "Success",
			body: PurchaseRequest{PlayerID: "user-001", ItemID: "item-001"},
			setupMock: func(m *MockEconomyService) {
				m.On("Purchase", mock.Anything, "user-001", "item-001").Return(&economy.PurchaseResult{
					Message: "Purchased Energy Drink", CredsBalance: 1200,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "Purchased Energy Drink",
		},
		{
			name: "Not enough creds",
			body: PurchaseRequest{PlayerID: "user-001", ItemID: "item-005"},
			setupMock: func(m *MockEconomyService) {
				m.On("Purchase", mock.Anything, "user-001", "item-005").Return(nil, domain.ErrInsufficientFunds)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    domain.ErrMsgInsufficientFunds,
		},
		{
			name: "Unknown item",
			body: PurchaseRequest{PlayerID: "user-001", ItemID: "item-999"},
			setupMock: func(m *MockEconomyService) {
				m.On("Purchase", mock.Anything, "user-001", "item-999").Return(nil, domain.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    domain.ErrMsgItemNotFound,
		},
		{
			name:           "Unknown field rejected",
			body:           map[string]string{"player_id": "user-001", "item_id": "item-001", "price": "0"},
			setupMock:      func(m *MockEconomyService) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    ErrMsgInvalidRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockEconomyService{}
			tt.setupMock(svc)

			rec := serve(t, http.MethodPost, "/shop/purchase", "/shop/purchase", HandlePurchase(svc), tt.body)

			require.Equal(t, tt.expectedStatus, rec.Code, rec.Body.String())
			assert.Equal(t, tt.expectedMsg, decodeEnvelope(t, rec).Message)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleActivate(t *testing.T) {
	tests := []struct {
		name           string
		setupMock      func(*MockEconomyService)
		expectedStatus int
	}{
		{
			name: "Success",
			setupMock: func(m *MockEconomyService) {
				m.On("Activate", mock.Anything, "user-001", "inv-1").Return(&economy.ActivationResult{Message: "Activated"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Already active",
			setupMock: func(m *MockEconomyService) {
				m.On("Activate", mock.Anything, "user-001", "inv-1").Return(nil, domain.ErrItemAlreadyActive)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "Someone else's item",
			setupMock: func(m *MockEconomyService) {
				m.On("Activate", mock.Anything, "user-001", "inv-1").Return(nil, domain.ErrNotOwner)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockEconomyService{}
			tt.setupMock(svc)

			body := ActivateRequest{PlayerID: "user-001", InventoryID: "inv-1"}
			rec := serve(t, http.MethodPost, "/inventory/activate", "/inventory/activate", HandleActivate(svc), body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleGetInventory(t *testing.T) {
	svc := &MockEconomyService{}
	svc.On("GetInventory", mock.Anything, "user-001").Return([]domain.InventoryItem{{ID: "inv-1", ItemID: "item-003", Qty: 1}}, nil)
	svc.On("GetInventory", mock.Anything, "ghost").Return(nil, domain.ErrPlayerNotFound)

	rec := serve(t, http.MethodGet, "/inventory", "/inventory?player_id=user-001", HandleGetInventory(svc), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	inv := decodeData[[]domain.InventoryItem](t, decodeEnvelope(t, rec))
	require.Len(t, inv, 1)
	assert.Equal(t, "item-003", inv[0].ItemID)

	rec = serve(t, http.MethodGet, "/inventory", "/inventory?player_id=ghost", HandleGetInventory(svc), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(t, http.MethodGet, "/inventory", "/inventory", HandleGetInventory(svc), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
