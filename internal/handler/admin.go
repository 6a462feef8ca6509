package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HackArena_Go/internal/logger"
	"github.com/osse101/HackArena_Go/internal/player"
)

// CacheAdmin is the admin surface of the catalog cache
type CacheAdmin interface {
	Purge()
	Len() int
}

// CacheStatsResponse reports catalog cache occupancy
type CacheStatsResponse struct {
	Entries int `json:"entries"`
}

// RegenRequest triggers a manual stamina regeneration pass
type RegenRequest struct {
	Amount int `json:"amount" validate:"gte=1,max=100"`
}

// RegenResponse reports how many players were topped up
type RegenResponse struct {
	PlayersAffected int64 `json:"players_affected"`
}

// AdminHandler groups the operator endpoints
type AdminHandler struct {
	players player.Service
	cache   CacheAdmin
}

// NewAdminHandler creates the admin handler. cache may be nil.
func NewAdminHandler(players player.Service, cache CacheAdmin) *AdminHandler {
	return &AdminHandler{players: players, cache: cache}
}

// HandleDeletePlayer removes a player and everything they own
// @Summary Delete a player (admin)
// @Description Runs as one transaction. In-flight actions on the player fail with not found.
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Player id"
// @Success 200 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/admin/players/{id} [delete]
func (h *AdminHandler) HandleDeletePlayer(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.players.Delete(r.Context(), id); err != nil {
		respondServiceError(w, r, OpDeletePlayer, err)
		return
	}

	logger.FromContext(r.Context()).Info("Player deleted by admin", "player_id", id)
	respondSuccess(w, http.StatusOK, MsgPlayerDeleted, nil)
}

// HandleRegenStamina runs a stamina regeneration pass now
// @Summary Regenerate stamina (admin)
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body RegenRequest true "Amount"
// @Success 200 {object} Response{data=RegenResponse}
// @Router /api/v1/admin/stamina/regen [post]
func (h *AdminHandler) HandleRegenStamina(w http.ResponseWriter, r *http.Request) {
	var req RegenRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Regenerate stamina"); err != nil {
		return
	}

	n, err := h.players.RegenerateStamina(r.Context(), req.Amount)
	if err != nil {
		respondServiceError(w, r, "Regenerate stamina", err)
		return
	}
	respondSuccess(w, http.StatusOK, "", RegenResponse{PlayersAffected: n})
}

// HandleGetCacheStats reports catalog cache occupancy
// @Summary Catalog cache stats (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} Response{data=CacheStatsResponse}
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	entries := 0
	if h.cache != nil {
		entries = h.cache.Len()
	}
	respondSuccess(w, http.StatusOK, "", CacheStatsResponse{Entries: entries})
}

// HandlePurgeCache drops every cached catalog entry
// @Summary Purge catalog cache (admin)
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} Response
// @Router /api/v1/admin/cache/purge [post]
func (h *AdminHandler) HandlePurgeCache(w http.ResponseWriter, r *http.Request) {
	if h.cache != nil {
		h.cache.Purge()
	}
	logger.FromContext(r.Context()).Info("Catalog cache purged")
	respondSuccess(w, http.StatusOK, "Cache purged", nil)
}
