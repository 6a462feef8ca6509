package quest

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/HackArena_Go/internal/database/memory"
	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/engine"
	"github.com/osse101/HackArena_Go/internal/event"
	"github.com/osse101/HackArena_Go/internal/feed"
	"github.com/osse101/HackArena_Go/internal/testing/fixtures"
)

func setupService(t *testing.T) (Service, *memory.Store, *fixtures.Recorder) {
	t.Helper()
	store := memory.NewStore()
	fixtures.Seed(t, store)
	rec := &fixtures.Recorder{}
	runner := engine.NewRunner(store, rec, engine.Config{MaxAttempts: 100, BaseDelay: time.Microsecond, MaxDelay: time.Millisecond})
	return NewService(store, store, runner, feed.NewPublisher()), store, rec
}

// completedTask walks a template through assign, accept and enough progress
// to complete it.
func completedTask(t *testing.T, svc Service, playerID, templateID string) *domain.UserTask {
	t.Helper()
	ctx := context.Background()
	task, err := svc.Assign(ctx, playerID, templateID)
	require.NoError(t, err)
	_, err = svc.Accept(ctx, playerID, task.ID)
	require.NoError(t, err)
	done, err := svc.Advance(ctx, playerID, task.Template.Condition.Type, task.Template.Condition.Count)
	require.NoError(t, err)
	require.Len(t, done, 1)
	return &done[0]
}

func TestAssign(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	task, err := svc.Assign(ctx, fixtures.NeoPwnerID, fixtures.TaskShopper)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusAvailable, task.Status)
	assert.Equal(t, domain.TaskProgress{Current: 0, Needed: 2}, task.Progress)

	_, err = svc.Assign(ctx, fixtures.NeoPwnerID, fixtures.TaskShopper)
	assert.ErrorIs(t, err, domain.ErrTaskAlreadyExists)

	_, err = svc.Assign(ctx, fixtures.NeoPwnerID, "task-missing")
	assert.ErrorIs(t, err, domain.ErrTemplateNotFound)

	_, err = svc.Assign(ctx, "ghost", fixtures.TaskShopper)
	assert.ErrorIs(t, err, domain.ErrPlayerNotFound)
}

func TestAccept(t *testing.T) {
	svc, _, rec := setupService(t)
	ctx := context.Background()
	task, err := svc.Assign(ctx, fixtures.NeoPwnerID, fixtures.TaskFirstBlood)
	require.NoError(t, err)

	accepted, err := svc.Accept(ctx, fixtures.NeoPwnerID, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusInProgress, accepted.Status)
	assert.NotNil(t, accepted.AcceptedAt)
	assert.Equal(t, []event.Type{event.TaskAccepted}, rec.Types())

	_, err = svc.Accept(ctx, fixtures.NeoPwnerID, task.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTaskState)

	_, err = svc.Accept(ctx, fixtures.GlitchWitchID, task.ID)
	assert.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestAdvance(t *testing.T) {
	svc, store, _ := setupService(t)
	ctx := context.Background()
	shopper, _ := svc.Assign(ctx, fixtures.NeoPwnerID, fixtures.TaskShopper)
	blood, _ := svc.Assign(ctx, fixtures.NeoPwnerID, fixtures.TaskFirstBlood)
	_, err := svc.Accept(ctx, fixtures.NeoPwnerID, shopper.ID)
	require.NoError(t, err)

	t.Run("only matching conditions move", func(t *testing.T) {
		done, err := svc.Advance(ctx, fixtures.NeoPwnerID, domain.ConditionPurchases, 1)
		require.NoError(t, err)
		assert.Empty(t, done)

		tasks, _ := store.ListUserTasks(ctx, fixtures.NeoPwnerID)
		for _, task := range tasks {
			switch task.ID {
			case shopper.ID:
				assert.Equal(t, 1, task.Progress.Current)
			case blood.ID:
				assert.Equal(t, 0, task.Progress.Current)
				assert.Equal(t, domain.TaskStatusAvailable, task.Status)
			}
		}
	})

	t.Run("caps at needed and completes", func(t *testing.T) {
		done, err := svc.Advance(ctx, fixtures.NeoPwnerID, domain.ConditionPurchases, 5)
		require.NoError(t, err)
		require.Len(t, done, 1)
		assert.Equal(t, domain.TaskStatusCompleted, done[0].Status)
		assert.Equal(t, 2, done[0].Progress.Current)
		assert.NotNil(t, done[0].CompletedAt)
	})

	t.Run("invalid amount", func(t *testing.T) {
		_, err := svc.Advance(ctx, fixtures.NeoPwnerID, domain.ConditionPurchases, 0)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestClaim(t *testing.T) {
	// ARRANGE
	svc, store, rec := setupService(t)
	ctx := context.Background()
	task := completedTask(t, svc, fixtures.CyberSamuraiID, fixtures.TaskFirstBlood)

	// ACT
	res, err := svc.Claim(ctx, fixtures.CyberSamuraiID, task.ID)

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusClaimed, res.Task.Status)
	assert.Equal(t, 3550, res.CredsBalance)
	assert.Equal(t, 950, res.XP)
	assert.Equal(t, domain.LevelForXP(950), res.Level)
	assert.Equal(t, "Claimed First Blood: +100 creds, +50 XP", res.Message)

	p, _ := store.GetPlayer(ctx, fixtures.CyberSamuraiID)
	assert.Equal(t, 3550, p.Creds)
	items, _ := store.RecentFeed(ctx, 10)
	require.Len(t, items, 1)
	assert.Equal(t, "CyberSamurai completed First Blood for 100 creds", items[0].Text)

	types := rec.Types()
	assert.Equal(t, []event.Type{event.FeedPublished, event.TaskClaimed}, types[len(types)-2:])
}

func TestClaim_TwiceFailsWithoutPaying(t *testing.T) {
	svc, store, _ := setupService(t)
	ctx := context.Background()
	task := completedTask(t, svc, fixtures.NeoPwnerID, fixtures.TaskFirstBlood)
	_, err := svc.Claim(ctx, fixtures.NeoPwnerID, task.ID)
	require.NoError(t, err)
	before, _ := store.GetPlayer(ctx, fixtures.NeoPwnerID)

	_, err = svc.Claim(ctx, fixtures.NeoPwnerID, task.ID)

	assert.ErrorIs(t, err, domain.ErrInvalidTaskState)
	after, _ := store.GetPlayer(ctx, fixtures.NeoPwnerID)
	assert.Equal(t, before.Creds, after.Creds)
	assert.Equal(t, before.XP, after.XP)
	assert.Equal(t, before.Version, after.Version)
}

func TestClaim_Refusals(t *testing.T) {
	svc, store, _ := setupService(t)
	ctx := context.Background()

	t.Run("not completed", func(t *testing.T) {
		task, err := svc.Assign(ctx, fixtures.NeoPwnerID, fixtures.TaskShopper)
		require.NoError(t, err)
		_, err = svc.Claim(ctx, fixtures.NeoPwnerID, task.ID)
		assert.ErrorIs(t, err, domain.ErrInvalidTaskState)
	})

	t.Run("missing task", func(t *testing.T) {
		_, err := svc.Claim(ctx, fixtures.NeoPwnerID, "nope")
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("missing template", func(t *testing.T) {
		tx, err := store.BeginTx(ctx)
		require.NoError(t, err)
		orphan := &domain.UserTask{PlayerID: fixtures.DarkCodeID, TemplateID: "retired", Status: domain.TaskStatusCompleted}
		require.NoError(t, tx.InsertUserTask(ctx, orphan))
		require.NoError(t, tx.Commit(ctx))

		_, err = svc.Claim(ctx, fixtures.DarkCodeID, orphan.ID)
		assert.ErrorIs(t, err, domain.ErrTemplateNotFound)
		p, _ := store.GetPlayer(ctx, fixtures.DarkCodeID)
		assert.Equal(t, 15000, p.Creds)
	})
}

func TestClaim_ConcurrentPaysOnce(t *testing.T) {
	svc, store, _ := setupService(t)
	ctx := context.Background()
	task := completedTask(t, svc, fixtures.GlitchWitchID, fixtures.TaskFirstBlood)

	var wg sync.WaitGroup
	var paid atomic.Int32
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Claim(ctx, fixtures.GlitchWitchID, task.ID); err == nil {
				paid.Add(1)
			} else {
				assert.ErrorIs(t, err, domain.ErrInvalidTaskState)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), paid.Load())
	p, _ := store.GetPlayer(ctx, fixtures.GlitchWitchID)
	assert.Equal(t, 8300, p.Creds)
}

func TestEventHandler_DrivesProgress(t *testing.T) {
	svc, store, _ := setupService(t)
	ctx := context.Background()
	task, _ := svc.Assign(ctx, fixtures.NeoPwnerID, fixtures.TaskFirstBlood)
	_, err := svc.Accept(ctx, fixtures.NeoPwnerID, task.ID)
	require.NoError(t, err)

	bus := event.NewMemoryBus()
	NewEventHandler(svc).Register(bus)

	loss := event.NewHackResolvedEvent(fixtures.NeoPwnerID, fixtures.DarkCodeID, domain.HackResult{})
	require.NoError(t, bus.Publish(ctx, loss))
	tasks, _ := store.ListUserTasks(ctx, fixtures.NeoPwnerID)
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.TaskStatusInProgress, tasks[0].Status)

	win := event.NewHackResolvedEvent(fixtures.NeoPwnerID, fixtures.DarkCodeID, domain.HackResult{Win: true})
	require.NoError(t, bus.Publish(ctx, win))
	tasks, _ = store.ListUserTasks(ctx, fixtures.NeoPwnerID)
	assert.Equal(t, domain.TaskStatusCompleted, tasks[0].Status)
}

func TestEventHandler_DecodesSerializedPayload(t *testing.T) {
	svc, store, _ := setupService(t)
	ctx := context.Background()
	task, _ := svc.Assign(ctx, fixtures.NeoPwnerID, fixtures.TaskShopper)
	_, err := svc.Accept(ctx, fixtures.NeoPwnerID, task.ID)
	require.NoError(t, err)

	h := NewEventHandler(svc)
	evt := event.Event{Type: event.ItemPurchased, Payload: map[string]any{"player_id": fixtures.NeoPwnerID}}
	require.NoError(t, h.HandleItemPurchased(ctx, evt))

	tasks, _ := store.ListUserTasks(ctx, fixtures.NeoPwnerID)
	assert.Equal(t, 1, tasks[0].Progress.Current)
}
