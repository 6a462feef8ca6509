// Package player manages player accounts: registration, lookup, login and
// admin deletion.
package player

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/engine"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/logger"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// RegisterRequest carries the fields a new player chooses
type RegisterRequest struct {
	Username    string
	DisplayName string
	Password    string
	Bio         string
	AvatarURL   string
}

// Service defines player account operations
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*domain.Player, error)
	Get(ctx context.Context, playerID string) (*domain.Player, error)
	List(ctx context.Context) ([]domain.Player, error)
	// Login checks a password against the stored hash. It issues no session.
	Login(ctx context.Context, username, password string) (*domain.Player, error)
	// Delete removes a player and everything they own in one transaction.
	Delete(ctx context.Context, playerID string) error
	// RegenerateStamina tops everyone up by amount, capped at their max.
	RegenerateStamina(ctx context.Context, amount int) (int64, error)
}

type service struct {
	repo   repository.Player
	runner *engine.Runner
	events event.Publisher
	cost   int
	now    func() time.Time
}

// NewService creates a new player service. events may be nil.
func NewService(repo repository.Player, runner *engine.Runner, events event.Publisher) Service {
	return &service{
		repo:   repo,
		runner: runner,
		events: events,
		cost:   bcrypt.DefaultCost,
		now:    time.Now,
	}
}

func validateRegistration(req RegisterRequest) error {
	n := len(req.Username)
	if n < MinUsernameLength || n > MaxUsernameLength || strings.ContainsAny(req.Username, " \t\n") {
		return fmt.Errorf("%w: username must be %d-%d characters without spaces", domain.ErrInvalidInput, MinUsernameLength, MaxUsernameLength)
	}
	if len(req.Password) < MinPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, MinPasswordLength)
	}
	return nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	if err := validateRegistration(req); err != nil {
		log.Warn(LogMsgRegisterRefused, "username", req.Username, "reason", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgHashPasswordFailed, err)
	}

	display := req.DisplayName
	if display == "" {
		display = req.Username
	}
	now := s.now().UTC()
	p := &domain.Player{
		ID:            uuid.NewString(),
		Username:      req.Username,
		DisplayName:   display,
		Bio:           req.Bio,
		AvatarURL:     req.AvatarURL,
		PasswordHash:  string(hash),
		Creds:         StartingCreds,
		Level:         domain.LevelForXP(0),
		Stamina:       StartingStaminaMax,
		StaminaMax:    StartingStaminaMax,
		HackingSkill:  StartingHackingSkill,
		SecurityLevel: StartingSecurityLevel,
		Badges:        []string{},
		LastOnlineAt:  now,
		CreatedAt:     now,
	}

	if err := s.repo.CreatePlayer(ctx, p); err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			log.Warn(LogMsgRegisterRefused, "username", req.Username, "reason", err)
			return nil, err
		}
		log.Error(ErrMsgCreatePlayerFailed, "username", req.Username, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrMsgCreatePlayerFailed, err)
	}

	log.Info(LogMsgPlayerRegistered, "player_id", p.ID, "username", p.Username)
	return p, nil
}

func (s *service) Get(ctx context.Context, playerID string) (*domain.Player, error) {
	p, err := s.repo.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetPlayerFailed, err)
	}
	if p == nil {
		return nil, domain.ErrPlayerNotFound
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]domain.Player, error) {
	players, err := s.repo.ListPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListPlayersFailed, err)
	}
	return players, nil
}

func (s *service) Login(ctx context.Context, username, password string) (*domain.Player, error) {
	log := logger.FromContext(ctx)

	p, err := s.repo.GetPlayerByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetPlayerFailed, err)
	}
	if p == nil || p.PasswordHash == "" {
		log.Warn(LogMsgLoginFailed, "username", username)
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(p.PasswordHash), []byte(password)); err != nil {
		log.Warn(LogMsgLoginFailed, "username", username)
		return nil, domain.ErrInvalidCredentials
	}

	log.Info(LogMsgLoginSucceeded, "player_id", p.ID)
	return p, nil
}

func (s *service) Delete(ctx context.Context, playerID string) error {
	err := s.runner.Run(ctx, OpDelete, func(ctx context.Context, u *engine.Unit) error {
		p, err := u.GetPlayer(ctx, playerID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgGetPlayerFailed, err)
		}
		if p == nil {
			return domain.ErrPlayerNotFound
		}
		if err := u.DeletePlayer(ctx, playerID); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgDeletePlayerFailed, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx).Info(LogMsgPlayerDeleted, "player_id", playerID)
	return nil
}

func (s *service) RegenerateStamina(ctx context.Context, amount int) (int64, error) {
	n, err := s.repo.RegenerateStamina(ctx, amount)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgRegenFailed, err)
	}

	if n > 0 && s.events != nil {
		if err := s.events.Publish(ctx, event.NewStaminaRegeneratedEvent(n, amount)); err != nil {
			logger.FromContext(ctx).Warn(ErrMsgRegenFailed, "error", err)
		}
	}
	logger.FromContext(ctx).Debug(LogMsgStaminaRegenerated, "players", n, "amount", amount)
	return n, nil
}
