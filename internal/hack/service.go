package hack

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/engine"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/feed"
	"github.com/osse101/HackArena_Go/internal/logger"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// Service defines the hack operations
type Service interface {
	// Preview emulates a hack without writing anything. The result is rounded
	// for display.
	Preview(ctx context.Context, attackerID, defenderID string) (*domain.HackEmulationResult, error)
	// Hack resolves a hack as one transaction.
	Hack(ctx context.Context, attackerID, defenderID string) (*domain.HackResult, error)
}

type service struct {
	players repository.Player
	runner  *engine.Runner
	feed    *feed.Publisher
	rnd     Rand
	now     func() time.Time
}

// NewService creates a new hack service
func NewService(players repository.Player, runner *engine.Runner, feedPub *feed.Publisher, rnd Rand) Service {
	return &service{
		players: players,
		runner:  runner,
		feed:    feedPub,
		rnd:     rnd,
		now:     time.Now,
	}
}

func (s *service) Preview(ctx context.Context, attackerID, defenderID string) (*domain.HackEmulationResult, error) {
	if attackerID == defenderID {
		return nil, domain.ErrSelfHack
	}

	attacker, err := s.loadPlayer(ctx, attackerID)
	if err != nil {
		return nil, err
	}
	defender, err := s.loadPlayer(ctx, defenderID)
	if err != nil {
		return nil, err
	}

	res := Rounded(Emulate(attacker, defender))
	return &res, nil
}

func (s *service) loadPlayer(ctx context.Context, id string) (*domain.Player, error) {
	p, err := s.players.GetPlayer(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgPreviewFailed, "player_id", id, "error", err)
		return nil, fmt.Errorf("%s: %w", ErrMsgGetPlayer, err)
	}
	if p == nil {
		return nil, domain.ErrPlayerNotFound
	}
	return p, nil
}

func (s *service) Hack(ctx context.Context, attackerID, defenderID string) (*domain.HackResult, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgHackStarted, "attacker_id", attackerID, "defender_id", defenderID)

	if attackerID == defenderID {
		return nil, domain.ErrSelfHack
	}

	var out domain.HackResult
	err := s.runner.Run(ctx, OpHack, func(ctx context.Context, u *engine.Unit) error {
		players, err := u.GetPlayers(ctx, attackerID, defenderID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgGetPlayer, err)
		}
		attacker, defender := players[attackerID], players[defenderID]
		if attacker == nil || defender == nil {
			return domain.ErrPlayerNotFound
		}

		em := Emulate(attacker, defender)
		if attacker.Stamina < em.StaminaCost {
			return domain.ErrInsufficientStamina
		}

		// Drawn per attempt so a retry samples against fresh balances
		res := Sample(em, attacker, defender, s.rnd)
		Apply(res, attacker, defender)
		attacker.LastOnlineAt = s.now().UTC()

		if err := u.UpdatePlayer(ctx, attacker); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgUpdateAttacker, err)
		}
		if err := u.UpdatePlayer(ctx, defender); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgUpdateDefender, err)
		}

		item, err := s.feed.Hack(ctx, u, attacker, defender, res)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgNarrate, err)
		}
		res.FeedItemID = item.ID

		u.Emit(event.NewHackResolvedEvent(attackerID, defenderID, res))
		out = res
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
			log.Warn(LogMsgHackRejected, "attacker_id", attackerID, "defender_id", defenderID, "reason", err)
		}
		return nil, err
	}

	log.Info(LogMsgHackResolved, "attacker_id", attackerID, "defender_id", defenderID,
		"win", out.Win, "loot", out.Loot.Creds, "stamina_cost", out.StaminaCost)
	return &out, nil
}
