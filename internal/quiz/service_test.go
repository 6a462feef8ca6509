package quiz

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HackArena_Go/internal/database/memory"
	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/engine"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/testing/fixtures"
)

const (
	rightChoice = 2
	wrongChoice = 0
)

func setupService(t *testing.T) (Service, *memory.Store, *fixtures.Recorder) {
	t.Helper()
	store := memory.NewStore()
	fixtures.Seed(t, store)
	rec := &fixtures.Recorder{}
	runner := engine.NewRunner(store, rec, engine.Config{MaxAttempts: 10, BaseDelay: time.Microsecond, MaxDelay: time.Millisecond})
	return NewService(store, runner), store, rec
}

func TestSubmitAnswer(t *testing.T) {
	tests := []struct {
		name      string
		creds     int
		choice    int
		wantDelta int
		wantXP    int
		wantCreds int
	}{
		{"correct", 100, rightChoice, 20, 10, 120},
		{"incorrect", 100, wrongChoice, -5, 0, 95},
		{"incorrect clamps at zero", 3, wrongChoice, -3, 0, 0},
		{"incorrect when broke", 0, wrongChoice, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, store, rec := setupService(t)
			ctx := context.Background()
			p := &domain.Player{ID: "quizzer", Username: "quizzer", Creds: tt.creds, Level: 1, StaminaMax: 100}
			require.NoError(t, store.CreatePlayer(ctx, p))

			res, err := svc.SubmitAnswer(ctx, "quizzer", fixtures.QuestionPorts, tt.choice)

			require.NoError(t, err)
			assert.Equal(t, tt.choice == rightChoice, res.Correct)
			assert.Equal(t, tt.wantDelta, res.CredsDelta)
			assert.Equal(t, tt.wantXP, res.XPDelta)
			assert.Equal(t, tt.wantCreds, res.CredsBalance)

			after, _ := store.GetPlayer(ctx, "quizzer")
			assert.Equal(t, tt.wantCreds, after.Creds)
			assert.Equal(t, tt.wantXP, after.XP)
			assert.Equal(t, []event.Type{event.QuizAnswered}, rec.Types())
		})
	}
}

func TestSubmitAnswer_RepeatedMissesNeverGoNegative(t *testing.T) {
	svc, store, _ := setupService(t)
	ctx := context.Background()
	p := &domain.Player{ID: "quizzer", Username: "quizzer", Creds: 12, Level: 1, StaminaMax: 100}
	require.NoError(t, store.CreatePlayer(ctx, p))

	for i := 0; i < 5; i++ {
		_, err := svc.SubmitAnswer(ctx, "quizzer", fixtures.QuestionPorts, wrongChoice)
		require.NoError(t, err)
	}

	after, _ := store.GetPlayer(ctx, "quizzer")
	assert.Equal(t, 0, after.Creds)
}

func TestSubmitAnswer_Refusals(t *testing.T) {
	svc, _, rec := setupService(t)
	ctx := context.Background()

	_, err := svc.SubmitAnswer(ctx, fixtures.NeoPwnerID, "q-missing", 0)
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)

	_, err = svc.SubmitAnswer(ctx, fixtures.NeoPwnerID, fixtures.QuestionPorts, 4)
	assert.ErrorIs(t, err, domain.ErrInvalidChoice)

	_, err = svc.SubmitAnswer(ctx, fixtures.NeoPwnerID, fixtures.QuestionPorts, -1)
	assert.ErrorIs(t, err, domain.ErrInvalidChoice)

	_, err = svc.SubmitAnswer(ctx, "ghost", fixtures.QuestionPorts, rightChoice)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)

	assert.Empty(t, rec.Events())
}

func TestListQuestions(t *testing.T) {
	svc, _, _ := setupService(t)

	qs, err := svc.ListQuestions(context.Background())

	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Len(t, qs[0].Choices, 4)
}
