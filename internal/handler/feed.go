package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HackArena_Go/internal/feed"
)

// ReactRequest adds one reaction to a feed entry
type ReactRequest struct {
	Emoji string `json:"emoji" validate:"required,reaction"`
}

// HandleGetFeed returns the newest feed entries first
// @Summary Activity feed
// @Tags feed
// @Produce json
// @Param limit query int false "Max entries (default 20, max 100)"
// @Success 200 {object} Response{data=[]domain.FeedItem}
// @Failure 400 {object} Response
// @Router /api/v1/feed [get]
func HandleGetFeed(svc feed.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, ok := parseLimit(r, w)
		if !ok {
			return
		}

		items, err := svc.Recent(r.Context(), limit)
		if err != nil {
			respondServiceError(w, r, OpGetFeed, err)
			return
		}
		respondSuccess(w, http.StatusOK, "", items)
	}
}

// HandleReact increments a reaction counter
// @Summary React to a feed entry
// @Tags feed
// @Accept json
// @Produce json
// @Param id path string true "Feed item id"
// @Param request body ReactRequest true "Reaction"
// @Success 200 {object} Response{data=domain.FeedItem}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/feed/{id}/react [post]
func HandleReact(svc feed.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feedID := chi.URLParam(r, "id")

		var req ReactRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpReact); err != nil {
			return
		}

		item, err := svc.React(r.Context(), feedID, req.Emoji)
		if err != nil {
			respondServiceError(w, r, OpReact, err)
			return
		}
		respondSuccess(w, http.StatusOK, MsgReactionAdded, item)
	}
}
