package worker

import (
	"context"
	"time"

	"github.com/osse101/HackArena_Go/internal/logger"
)

// StaminaRegenerator is the slice of the player service the regen job needs.
type StaminaRegenerator interface {
	RegenerateStamina(ctx context.Context, amount int) (int64, error)
}

// StaminaRegenJob tops up every player's stamina by a fixed amount.
type StaminaRegenJob struct {
	regen  StaminaRegenerator
	amount int
}

// NewStaminaRegenJob creates the job. amount must be positive to have any effect.
func NewStaminaRegenJob(regen StaminaRegenerator, amount int) *StaminaRegenJob {
	return &StaminaRegenJob{regen: regen, amount: amount}
}

// Process runs one regeneration pass.
func (j *StaminaRegenJob) Process(ctx context.Context) error {
	if j.amount <= 0 {
		return nil
	}

	log := logger.FromContext(ctx)
	start := time.Now()
	log.Debug(LogMsgStaminaRegenStarting, "amount", j.amount)

	n, err := j.regen.RegenerateStamina(ctx, j.amount)
	if err != nil {
		log.Error(LogMsgStaminaRegenFailed, "error", err)
		return err
	}

	log.Info(LogMsgStaminaRegenCompleted,
		"players", n,
		"amount", j.amount,
		"duration", time.Since(start).String())
	return nil
}
