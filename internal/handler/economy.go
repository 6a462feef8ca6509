package handler

import (
	"net/http"

	"github.com/osse101/HackArena_Go/internal/economy"
)

// PurchaseRequest buys one shop item
type PurchaseRequest struct {
	PlayerID string `json:"player_id" validate:"required,max=64"`
	ItemID   string `json:"item_id" validate:"required,max=64"`
}

// ActivateRequest activates an owned inventory entry
type ActivateRequest struct {
	PlayerID    string `json:"player_id" validate:"required,max=64"`
	InventoryID string `json:"inventory_id" validate:"required,max=64"`
}

// HandleListShopItems returns the shop catalog
// @Summary List shop items
// @Tags shop
// @Produce json
// @Success 200 {object} Response{data=[]domain.ShopItem}
// @Router /api/v1/shop/items [get]
func HandleListShopItems(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListShopItems(r.Context())
		if err != nil {
			respondServiceError(w, r, OpListShop, err)
			return
		}
		respondSuccess(w, http.StatusOK, "", items)
	}
}

// HandlePurchase buys an item
// @Summary Purchase an item
// @Description Debits creds and either applies a consumable or adds it to the inventory.
// @Tags shop
// @Accept json
// @Produce json
// @Param request body PurchaseRequest true "Purchase request"
// @Success 200 {object} Response{data=economy.PurchaseResult}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/shop/purchase [post]
func HandlePurchase(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PurchaseRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpPurchase); err != nil {
			return
		}

		res, err := svc.Purchase(r.Context(), req.PlayerID, req.ItemID)
		if err != nil {
			respondServiceError(w, r, OpPurchase, err)
			return
		}
		respondSuccess(w, http.StatusOK, res.Message, res)
	}
}

// HandleActivate activates an inventory entry
// @Summary Activate an item
// @Tags inventory
// @Accept json
// @Produce json
// @Param request body ActivateRequest true "Activate request"
// @Success 200 {object} Response{data=economy.ActivationResult}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/inventory/activate [post]
func HandleActivate(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ActivateRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpActivate); err != nil {
			return
		}

		res, err := svc.Activate(r.Context(), req.PlayerID, req.InventoryID)
		if err != nil {
			respondServiceError(w, r, OpActivate, err)
			return
		}
		respondSuccess(w, http.StatusOK, res.Message, res)
	}
}

// HandleGetInventory lists a player's inventory
// @Summary Get inventory
// @Tags inventory
// @Produce json
// @Param player_id query string true "Player id"
// @Success 200 {object} Response{data=[]domain.InventoryItem}
// @Failure 404 {object} Response
// @Router /api/v1/inventory [get]
func HandleGetInventory(svc economy.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		playerID, ok := GetQueryParam(r, w, "player_id")
		if !ok {
			return
		}

		items, err := svc.GetInventory(r.Context(), playerID)
		if err != nil {
			respondServiceError(w, r, OpGetInventory, err)
			return
		}
		respondSuccess(w, http.StatusOK, "", items)
	}
}
