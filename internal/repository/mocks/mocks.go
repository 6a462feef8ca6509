package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// MockTx implements repository.Tx for testing
type MockTx struct {
	mock.Mock
}

func (m *MockTx) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockTx) GetPlayers(ctx context.Context, playerIDs ...string) (map[string]*domain.Player, error) {
	args := m.Called(ctx, playerIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*domain.Player), args.Error(1)
}

func (m *MockTx) GetInventoryItem(ctx context.Context, inventoryID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, inventoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockTx) FindInventoryItem(ctx context.Context, playerID, itemID string) (*domain.InventoryItem, error) {
	args := m.Called(ctx, playerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InventoryItem), args.Error(1)
}

func (m *MockTx) GetUserTask(ctx context.Context, taskID string) (*domain.UserTask, error) {
	args := m.Called(ctx, taskID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTask), args.Error(1)
}

func (m *MockTx) FindUserTask(ctx context.Context, playerID, templateID string) (*domain.UserTask, error) {
	args := m.Called(ctx, playerID, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserTask), args.Error(1)
}

func (m *MockTx) ListUserTasksByStatus(ctx context.Context, playerID string, status domain.TaskStatus) ([]domain.UserTask, error) {
	args := m.Called(ctx, playerID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserTask), args.Error(1)
}

func (m *MockTx) GetFeedItem(ctx context.Context, feedID string) (*domain.FeedItem, error) {
	args := m.Called(ctx, feedID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeedItem), args.Error(1)
}

func (m *MockTx) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockTx) DeletePlayer(ctx context.Context, playerID string) error {
	args := m.Called(ctx, playerID)
	return args.Error(0)
}

func (m *MockTx) InsertInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockTx) UpdateInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockTx) DeleteInventoryItem(ctx context.Context, inventoryID string) error {
	args := m.Called(ctx, inventoryID)
	return args.Error(0)
}

func (m *MockTx) InsertUserTask(ctx context.Context, task *domain.UserTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTx) UpdateUserTask(ctx context.Context, task *domain.UserTask) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTx) AppendFeedItem(ctx context.Context, item *domain.FeedItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockTx) UpdateFeedReactions(ctx context.Context, feedID string, reactions map[string]int) error {
	args := m.Called(ctx, feedID, reactions)
	return args.Error(0)
}

func (m *MockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ensure MockTx implements repository.Tx
var _ repository.Tx = (*MockTx)(nil)

// MockStore implements repository.Store for testing
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetShopItem(ctx context.Context, itemID string) (*domain.ShopItem, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShopItem), args.Error(1)
}

func (m *MockStore) ListShopItems(ctx context.Context) ([]domain.ShopItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItem), args.Error(1)
}

func (m *MockStore) GetTaskTemplate(ctx context.Context, templateID string) (*domain.TaskTemplate, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TaskTemplate), args.Error(1)
}

func (m *MockStore) ListTaskTemplates(ctx context.Context) ([]domain.TaskTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TaskTemplate), args.Error(1)
}

func (m *MockStore) GetQuestion(ctx context.Context, questionID string) (*domain.Question, error) {
	args := m.Called(ctx, questionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockStore) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockStore) UpsertShopItem(ctx context.Context, item domain.ShopItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockStore) UpsertTaskTemplate(ctx context.Context, template domain.TaskTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

func (m *MockStore) UpsertQuestion(ctx context.Context, question domain.Question) error {
	args := m.Called(ctx, question)
	return args.Error(0)
}

func (m *MockStore) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockStore) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockStore) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Player), args.Error(1)
}

func (m *MockStore) CreatePlayer(ctx context.Context, player *domain.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *MockStore) ListInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryItem), args.Error(1)
}

func (m *MockStore) ListUserTasks(ctx context.Context, playerID string) ([]domain.UserTask, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UserTask), args.Error(1)
}

func (m *MockStore) RecentFeed(ctx context.Context, limit int) ([]domain.FeedItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FeedItem), args.Error(1)
}

func (m *MockStore) RegenerateStamina(ctx context.Context, amount int) (int64, error) {
	args := m.Called(ctx, amount)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) BeginTx(ctx context.Context) (repository.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(repository.Tx), args.Error(1)
}

func (m *MockStore) Close() {
	m.Called()
}

// Ensure MockStore implements repository.Store
var _ repository.Store = (*MockStore)(nil)
