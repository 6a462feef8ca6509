// Package quiz resolves multiple-choice answers against the question bank.
package quiz

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/engine"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/logger"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// OpAnswer is the engine operation name for answer submissions
const OpAnswer = "quiz.answer"

const (
	ErrMsgGetQuestionFailed  = "failed to get question"
	ErrMsgGetPlayerFailed    = "failed to get player"
	ErrMsgUpdatePlayerFailed = "failed to update player"

	LogMsgAnswerSubmitted = "Quiz answer submitted"
	LogMsgAnswerRefused   = "Quiz answer refused"
)

// Service defines the quiz operations
type Service interface {
	ListQuestions(ctx context.Context) ([]domain.Question, error)
	// SubmitAnswer scores choice (a zero-based index) and applies the reward
	// or penalty. The penalty is clamped so creds never go negative; the
	// result reports the delta actually applied.
	SubmitAnswer(ctx context.Context, playerID, questionID string, choice int) (*domain.QuizResult, error)
}

type service struct {
	catalog repository.Catalog
	runner  *engine.Runner
	now     func() time.Time
}

// NewService creates a new quiz service
func NewService(catalog repository.Catalog, runner *engine.Runner) Service {
	return &service{catalog: catalog, runner: runner, now: time.Now}
}

func (s *service) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	return s.catalog.ListQuestions(ctx)
}

func (s *service) SubmitAnswer(ctx context.Context, playerID, questionID string, choice int) (*domain.QuizResult, error) {
	log := logger.FromContext(ctx)

	q, err := s.catalog.GetQuestion(ctx, questionID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgGetQuestionFailed, err)
	}
	if q == nil {
		log.Warn(LogMsgAnswerRefused, "player_id", playerID, "question_id", questionID, "reason", domain.ErrQuestionNotFound)
		return nil, domain.ErrQuestionNotFound
	}
	if choice < 0 || choice >= len(q.Choices) {
		log.Warn(LogMsgAnswerRefused, "player_id", playerID, "question_id", questionID, "reason", domain.ErrInvalidChoice)
		return nil, domain.ErrInvalidChoice
	}

	correct := choice == q.CorrectChoice
	var out domain.QuizResult
	err = s.runner.Run(ctx, OpAnswer, func(ctx context.Context, u *engine.Unit) error {
		player, err := u.GetPlayer(ctx, playerID)
		if err != nil {
			return fmt.Errorf("%s: %w", ErrMsgGetPlayerFailed, err)
		}
		if player == nil {
			return domain.ErrPlayerNotFound
		}

		out = domain.QuizResult{QuestionID: q.ID, Correct: correct}
		if correct {
			out.CredsDelta = player.AddCreds(domain.QuizCorrectCreds)
			player.AddXP(domain.QuizCorrectXP)
			out.XPDelta = domain.QuizCorrectXP
		} else {
			out.CredsDelta = player.AddCreds(domain.QuizIncorrectCreds)
		}
		player.LastOnlineAt = s.now().UTC()

		if err := u.UpdatePlayer(ctx, player); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgUpdatePlayerFailed, err)
		}
		out.CredsBalance = player.Creds
		u.Emit(event.NewQuizAnsweredEvent(playerID, out))
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			log.Warn(LogMsgAnswerRefused, "player_id", playerID, "question_id", questionID, "reason", err)
		}
		return nil, err
	}

	log.Info(LogMsgAnswerSubmitted, "player_id", playerID, "question_id", questionID, "correct", correct, "creds_delta", out.CredsDelta)
	return &out, nil
}
