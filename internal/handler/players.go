package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/logger"
	"github.com/osse101/HackArena_Go/internal/player"
)

// RegisterPlayerRequest creates a player
type RegisterPlayerRequest struct {
	Username    string `json:"username" validate:"required,min=3,max=32,handle"`
	DisplayName string `json:"display_name" validate:"max=64"`
	Password    string `json:"password" validate:"required,min=6,max=72"`
	Bio         string `json:"bio" validate:"max=280"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url"`
}

// LoginRequest checks a username and password
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=32"`
	Password string `json:"password" validate:"required,max=72"`
}

// LoginResponse identifies the player. No session or token is issued.
type LoginResponse struct {
	PlayerID string `json:"player_id"`
	Username string `json:"username"`
}

// HandleRegisterPlayer registers a new player
// @Summary Register a player
// @Tags players
// @Accept json
// @Produce json
// @Param request body RegisterPlayerRequest true "Registration"
// @Success 201 {object} Response{data=domain.Player}
// @Failure 400 {object} Response
// @Failure 409 {object} Response
// @Router /api/v1/players [post]
func HandleRegisterPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterPlayerRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpRegister); err != nil {
			return
		}

		p, err := svc.Register(r.Context(), player.RegisterRequest{
			Username:    req.Username,
			DisplayName: req.DisplayName,
			Password:    req.Password,
			Bio:         req.Bio,
			AvatarURL:   req.AvatarURL,
		})
		if err != nil {
			respondServiceError(w, r, OpRegister, err)
			return
		}

		logger.FromContext(r.Context()).Info("Player registered", "player_id", p.ID, "username", p.Username)
		respondSuccess(w, http.StatusCreated, MsgPlayerRegistered, p)
	}
}

// HandleGetPlayer returns one player
// @Summary Get a player
// @Tags players
// @Produce json
// @Param id path string true "Player id"
// @Success 200 {object} Response{data=domain.Player}
// @Failure 404 {object} Response
// @Router /api/v1/players/{id} [get]
func HandleGetPlayer(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, OpGetPlayer, err)
			return
		}
		respondSuccess(w, http.StatusOK, "", p)
	}
}

// HandleListPlayers lists every player
// @Summary List players
// @Tags players
// @Produce json
// @Success 200 {object} Response{data=[]domain.Player}
// @Router /api/v1/players [get]
func HandleListPlayers(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		players, err := svc.List(r.Context())
		if err != nil {
			respondServiceError(w, r, OpListPlayers, err)
			return
		}
		if players == nil {
			players = []domain.Player{}
		}
		respondSuccess(w, http.StatusOK, "", players)
	}
}

// HandleLogin checks credentials
// @Summary Log in
// @Description Compares the password with the stored hash and returns the player id.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} Response{data=LoginResponse}
// @Failure 401 {object} Response
// @Router /api/v1/auth/login [post]
func HandleLogin(svc player.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpLogin); err != nil {
			return
		}

		p, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(w, r, OpLogin, err)
			return
		}
		respondSuccess(w, http.StatusOK, MsgLoginSuccess, LoginResponse{PlayerID: p.ID, Username: p.Username})
	}
}
