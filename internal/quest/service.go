package quest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/engine"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/feed"
	"github.com/osse101/HackArena_Go/internal/logger"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// ClaimResult describes a committed claim
type ClaimResult struct {
	Message      string          `json:"message"`
	Task         domain.UserTask `json:"task"`
	RewardCreds  int             `json:"reward_creds"`
	RewardXP     int             `json:"reward_xp"`
	CredsBalance int             `json:"creds_balance"`
	XP           int             `json:"xp"`
	Level        int             `json:"level"`
}

// Service defines the task board operations
type Service interface {
	ListTasks(ctx context.Context, playerID string) ([]domain.UserTask, error)
	ListTemplates(ctx context.Context) ([]domain.TaskTemplate, error)

	// Assign puts a template on a player's board as available.
	Assign(ctx context.Context, playerID, templateID string) (*domain.UserTask, error)
	// Accept moves an available task to in_progress.
	Accept(ctx context.Context, playerID, taskID string) (*domain.UserTask, error)
	// Claim pays a completed task's reward and marks it claimed, once.
	Claim(ctx context.Context, playerID, taskID string) (*ClaimResult, error)
	// Advance adds progress to every in-progress task counting conditionType
	// and returns the tasks it completed.
	Advance(ctx context.Context, playerID, conditionType string, amount int) ([]domain.UserTask, error)
}

type service struct {
	catalog repository.Catalog
	players repository.Player
	runner  *engine.Runner
	feed    *feed.Publisher
	now     func() time.Time
}

// NewService creates a new quest service
func NewService(catalog repository.Catalog, players repository.Player, runner *engine.Runner, feedPub *feed.Publisher) Service {
	return &service{
		catalog: catalog,
		players: players,
		runner:  runner,
		feed:    feedPub,
		now:     time.Now,
	}
}

func (s *service) ListTasks(ctx context.Context, playerID string) ([]domain.UserTask, error) {
	p, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetPlayerFailed, err)
	}
	if p == nil {
		return nil, domain.ErrPlayerNotFound
	}
	tasks, err := s.players.ListUserTasks(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgListTasksFailed, err)
	}
	return tasks, nil
}

func (s *service) ListTemplates(ctx context.Context) ([]domain.TaskTemplate, error) {
	return s.catalog.ListTaskTemplates(ctx)
}

func (s *service) template(ctx context.Context, templateID string) (*domain.TaskTemplate, error) {
	tmpl, err := s.catalog.GetTaskTemplate(ctx, templateID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetTemplateFailed, err)
	}
	if tmpl == nil {
		return nil, domain.ErrTemplateNotFound
	}
	return tmpl, nil
}

// ownedTask reads a task and the player in one go, checking ownership.
func ownedTask(ctx context.Context, u *engine.Unit, playerID, taskID string) (*domain.UserTask, *domain.Player, error) {
	task, err := u.GetUserTask(ctx, taskID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgGetTaskFailed, err)
	}
	player, err := u.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgGetPlayerFailed, err)
	}
	if player == nil {
		return nil, nil, domain.ErrPlayerNotFound
	}
	if task == nil || task.PlayerID != playerID {
		return nil, nil, domain.ErrTaskNotFound
	}
	return task, player, nil
}

func (s *service) Assign(ctx context.Context, playerID, templateID string) (*domain.UserTask, error) {
	tmpl, err := s.template(ctx, templateID)
	if err != nil {
		return nil, s.refuse(ctx, OpAssign, playerID, err)
	}

	var out domain.UserTask
	err = s.runner.Run(ctx, OpAssign, func(ctx context.Context, u *engine.Unit) error {
		player, err := u.GetPlayer(ctx, playerID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgGetPlayerFailed, err)
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}
		existing, err := u.FindUserTask(ctx, playerID, templateID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgGetTaskFailed, err)
		}
		if existing != nil {
			return domain.ErrTaskAlreadyExists
		}

		task := domain.UserTask{
			ID:         uuid.NewString(),
			PlayerID:   playerID,
			TemplateID: templateID,
			Status:     domain.TaskStatusAvailable,
			Progress:   domain.TaskProgress{Needed: tmpl.Condition.Count},
		}
		if err := u.InsertUserTask(ctx, &task); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgUpdateTaskFailed, err)
		}
		out = task
		return nil
	})
	if err != nil {
		return nil, s.refuse(ctx, OpAssign, playerID, err)
	}

	out.Template = tmpl
	logger.FromContext(ctx).Info(LogMsgTaskAssigned, "player_id", playerID, "task_id", out.ID, "template_id", templateID)
	return &out, nil
}

func (s *service) Accept(ctx context.Context, playerID, taskID string) (*domain.UserTask, error) {
	var out domain.UserTask
	err := s.runner.Run(ctx, OpAccept, func(ctx context.Context, u *engine.Unit) error {
		task, _, err := ownedTask(ctx, u, playerID, taskID)
		if err != nil {
			return err
		}
		if !task.Status.CanTransition(domain.TaskStatusInProgress) {
			return domain.ErrInvalidTaskState
		}

		now := s.now().UTC()
		task.Status = domain.TaskStatusInProgress
		task.AcceptedAt = &now
		if err := u.UpdateUserTask(ctx, task); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgUpdateTaskFailed, err)
		}

		u.Emit(event.NewTaskEvent(event.TaskAccepted, task, nil))
		out = *task
		return nil
	})
	if err != nil {
		return nil, s.refuse(ctx, OpAccept, playerID, err)
	}

	logger.FromContext(ctx).Info(LogMsgTaskAccepted, "player_id", playerID, "task_id", taskID)
	return &out, nil
}

func (s *service) Claim(ctx context.Context, playerID, taskID string) (*ClaimResult, error) {
	var out ClaimResult
	err := s.runner.Run(ctx, OpClaim, func(ctx context.Context, u *engine.Unit) error {
		task, player, err := ownedTask(ctx, u, playerID, taskID)
		if err != nil {
			return err
		}
		if task.Status != domain.TaskStatusCompleted {
			return domain.ErrInvalidTaskState
		}
		tmpl, err := s.template(ctx, task.TemplateID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		task.Status = domain.TaskStatusClaimed
		task.ClaimedAt = &now
		player.AddCreds(tmpl.RewardCreds)
		player.AddXP(tmpl.RewardXP)
		player.LastOnlineAt = now

		if err := u.UpdateUserTask(ctx, task); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgUpdateTaskFailed, err)
		}
		if err := u.UpdatePlayer(ctx, player); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgUpdatePlayerFailed, err)
		}
		if _, err := s.feed.TaskClaimed(ctx, u, player, tmpl); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgNarrateFailed, err)
		}
		u.Emit(event.NewTaskEvent(event.TaskClaimed, task, tmpl))

		task.Template = tmpl
		out = ClaimResult{
			Message:      fmt.Sprintf(MsgFmtClaimed, tmpl.Title, tmpl.RewardCreds, tmpl.RewardXP),
			Task:         *task,
			RewardCreds:  tmpl.RewardCreds,
			RewardXP:     tmpl.RewardXP,
			CredsBalance: player.Creds,
			XP:           player.XP,
			Level:        player.Level,
		}
		return nil
	})
	if err != nil {
		return nil, s.refuse(ctx, OpClaim, playerID, err)
	}

	logger.FromContext(ctx).Info(LogMsgTaskClaimed, "player_id", playerID, "task_id", taskID, "reward_creds", out.RewardCreds)
	return &out, nil
}

func (s *service) Advance(ctx context.Context, playerID, conditionType string, amount int) ([]domain.UserTask, error) {
	if amount <= 0 || conditionType == "" {
		return nil, domain.ErrInvalidInput
	}

	var completed []domain.UserTask
	err := s.runner.Run(ctx, OpAdvance, func(ctx context.Context, u *engine.Unit) error {
		completed = nil

		tasks, err := u.ListUserTasksByStatus(ctx, playerID, domain.TaskStatusInProgress)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgListTasksFailed, err)
		}

		now := s.now().UTC()
		for i := range tasks {
			task := &tasks[i]
			tmpl, err := s.template(ctx, task.TemplateID)
			if errors.Is(err, domain.ErrTemplateNotFound) {
				logger.FromContext(ctx).Warn(LogMsgMissingTemplate, "task_id", task.ID, "template_id", task.TemplateID)
				continue
			}
			if err != nil {
				return err
			}
			if tmpl.Condition.Type != conditionType {
				continue
			}

			task.Progress.Current = min(task.Progress.Needed, task.Progress.Current+amount)
			if task.Progress.Current >= task.Progress.Needed {
				task.Status = domain.TaskStatusCompleted
				task.CompletedAt = &now
			}
			if err := u.UpdateUserTask(ctx, task); err != nil {
				return fmt.Errorf("%s: %w", ErrMsgUpdateTaskFailed, err)
			}
			if task.Status == domain.TaskStatusCompleted {
				u.Emit(event.NewTaskEvent(event.TaskCompleted, task, tmpl))
				completed = append(completed, *task)
			}
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgAdvanceFailed, "player_id", playerID, "condition", conditionType, "error", err)
		return nil, err
	}

	logger.FromContext(ctx).Debug(LogMsgTasksAdvanced, "player_id", playerID, "condition", conditionType, "completed", len(completed))
	return completed, nil
}

func (s *service) refuse(ctx context.Context, op, playerID string, err error) error {
	log := logger.FromContext(ctx)
	if errors.Is(err, domain.ErrValidation) || errors.Is(err, domain.ErrNotFound) {
		log.Warn(LogMsgTaskRefused, "operation", op, "player_id", playerID, "reason", err)
	} else {
		log.Error(LogMsgTaskRefused, "operation", op, "player_id", playerID, "error", err)
	}
	return err
}
