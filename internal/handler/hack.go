package handler

import (
	"net/http"

	"github.com/osse101/HackArena_Go/internal/hack"
	"github.com/osse101/HackArena_Go/internal/logger"
)

// HackRequest names the two players of a hack
type HackRequest struct {
	AttackerID string `json:"attacker_id" validate:"required,max=64"`
	DefenderID string `json:"defender_id" validate:"required,max=64"`
}

// HandlePreviewHack emulates a hack without changing anything
// @Summary Preview a hack
// @Description Returns attacker and defender power, win probability and stamina cost. Nothing is written.
// @Tags hack
// @Produce json
// @Param attacker_id query string true "Attacker player id"
// @Param defender_id query string true "Defender player id"
// @Success 200 {object} Response{data=domain.HackEmulationResult}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Router /api/v1/hack/preview [get]
func HandlePreviewHack(svc hack.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attackerID, ok := GetQueryParam(r, w, "attacker_id")
		if !ok {
			return
		}
		defenderID, ok := GetQueryParam(r, w, "defender_id")
		if !ok {
			return
		}

		res, err := svc.Preview(r.Context(), attackerID, defenderID)
		if err != nil {
			respondServiceError(w, r, OpPreviewHack, err)
			return
		}

		respondSuccess(w, http.StatusOK, "", res)
	}
}

// HandleResolveHack resolves a hack as one transaction
// @Summary Resolve a hack
// @Description Samples the outcome, moves loot and XP, spends stamina and publishes a feed entry.
// @Tags hack
// @Accept json
// @Produce json
// @Param request body HackRequest true "Hack request"
// @Success 200 {object} Response{data=domain.HackResult}
// @Failure 400 {object} Response
// @Failure 404 {object} Response
// @Failure 503 {object} Response
// @Router /api/v1/hack [post]
func HandleResolveHack(svc hack.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HackRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpResolveHack); err != nil {
			return
		}

		res, err := svc.Hack(r.Context(), req.AttackerID, req.DefenderID)
		if err != nil {
			respondServiceError(w, r, OpResolveHack, err)
			return
		}

		logger.FromContext(r.Context()).Info("Hack resolved",
			"attacker_id", req.AttackerID,
			"defender_id", req.DefenderID,
			"win", res.Win)

		msg := MsgHackLost
		if res.Win {
			msg = MsgHackWon
		}
		respondSuccess(w, http.StatusOK, msg, res)
	}
}
