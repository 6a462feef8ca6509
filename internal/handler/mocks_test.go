package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/economy"
	"github.com/osse101/HackArena_Go/internal/player"
	"github.com/osse101/HackArena_Go/internal/quest"
)

type MockHackService struct{ mock.Mock }

func (m *MockHackService) Preview(ctx context.Context, attackerID, defenderID string) (*domain.HackEmulationResult, error) {
	args := m.Called(ctx, attackerID, defenderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HackEmulationResult), args.Error(1)
}

func (m *MockHackService) Hack(ctx context.Context, attackerID, defenderID string) (*domain.HackResult, error) {
	args := m.Called(ctx, attackerID, defenderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.HackResult), args.Error(1)
}

type MockEconomyService struct{ mock.Mock }

func (m *MockEconomyService) ListShopItems(ctx context.Context) ([]domain.ShopItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItem), args.Error(1)
}

func (m *MockEconomyService) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockEconomyService) Purchase(ctx context.Context, playerID, itemID string) (*economy.PurchaseResult, error) {
	args := m.Called(ctx, playerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.PurchaseResult), args.Error(1)
}

func (m *MockEconomyService) Activate(ctx context.Context, playerID, inventoryID string) (*economy.ActivationResult, error) {
	args := m.Called(ctx, playerID, inventoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*economy.ActivationResult), args.Error(1)
}

type MockQuestService struct{ mock.Mock }

func (m *MockQuestService) ListTasks(ctx context.Context, playerID string) ([]domain.UserTask, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserTask), args.Error(1)
}

func (m *MockQuestService) ListTemplates(ctx context.Context) ([]domain.TaskTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaskTemplate), args.Error(1)
}

func (m *MockQuestService) Assign(ctx context.Context, playerID, templateID string) (*domain.UserTask, error) {
	args := m.Called(ctx, playerID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTask), args.Error(1)
}

func (m *MockQuestService) Accept(ctx context.Context, playerID, taskID string) (*domain.UserTask, error) {
	args := m.Called(ctx, playerID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTask), args.Error(1)
}

func (m *MockQuestService) Claim(ctx context.Context, playerID, taskID string) (*quest.ClaimResult, error) {
	args := m.Called(ctx, playerID, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quest.ClaimResult), args.Error(1)
}

func (m *MockQuestService) Advance(ctx context.Context, playerID, conditionType string, amount int) ([]domain.UserTask, error) {
	args := m.Called(ctx, playerID, conditionType, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserTask), args.Error(1)
}

type MockQuizService struct{ mock.Mock }

func (m *MockQuizService) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuizService) SubmitAnswer(ctx context.Context, playerID, questionID string, choice int) (*domain.QuizResult, error) {
	args := m.Called(ctx, playerID, questionID, choice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizResult), args.Error(1)
}

type MockFeedService struct{ mock.Mock }

func (m *MockFeedService) Recent(ctx context.Context, limit int) ([]domain.FeedItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeedItem), args.Error(1)
}

func (m *MockFeedService) React(ctx context.Context, feedID, emoji string) (*domain.FeedItem, error) {
	args := m.Called(ctx, feedID, emoji)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeedItem), args.Error(1)
}

type MockPlayerService struct{ mock.Mock }

func (m *MockPlayerService) Register(ctx context.Context, req player.RegisterRequest) (*domain.Player, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) Get(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) List(ctx context.Context) ([]domain.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Player), args.Error(1)
}

func (m *MockPlayerService) Login(ctx context.Context, username, password string) (*domain.Player, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockPlayerService) Delete(ctx context.Context, playerID string) error {
	return m.Called(ctx, playerID).Error(0)
}

func (m *MockPlayerService) RegenerateStamina(ctx context.Context, amount int) (int64, error) {
	args := m.Called(ctx, amount)
	return args.Get(0).(int64), args.Error(1)
}

type MockCache struct {
	purged  int
	entries int
}

func (m *MockCache) Purge()   { m.purged++; m.entries = 0 }
func (m *MockCache) Len() int { return m.entries }
