// Package memory is an in-process storage backend with optimistic
// concurrency. Every record carries a version; a transaction remembers the
// version of everything it read and commit fails with domain.ErrTxConflict
// if any of them moved.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// Store implements repository.Store in memory
type Store struct {
	mu sync.Mutex

	// versions covers records and index keys. A missing key reads as 0.
	versions map[string]int64

	players   map[string]*domain.Player
	usernames map[string]string
	inventory map[string]*domain.InventoryItem
	invOwner  map[string]string
	tasks     map[string]*domain.UserTask
	taskOwner map[string]string
	feed      map[string]*domain.FeedItem
	seq       int64

	items     map[string]domain.ShopItem
	templates map[string]domain.TaskTemplate
	questions map[string]domain.Question
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		versions:  make(map[string]int64),
		players:   make(map[string]*domain.Player),
		usernames: make(map[string]string),
		inventory: make(map[string]*domain.InventoryItem),
		invOwner:  make(map[string]string),
		tasks:     make(map[string]*domain.UserTask),
		taskOwner: make(map[string]string),
		feed:      make(map[string]*domain.FeedItem),
		items:     make(map[string]domain.ShopItem),
		templates: make(map[string]domain.TaskTemplate),
		questions: make(map[string]domain.Question),
	}
}

var _ repository.Store = (*Store)(nil)

// BeginTx starts an optimistic transaction
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	return &tx{s: s, reads: make(map[string]int64)}, nil
}

func (s *Store) Close() {}

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error { return nil }

// bump must be called with mu held
func (s *Store) bump(keys ...string) {
	for _, k := range keys {
		s.versions[k]++
	}
}

// ============================================================================
// Catalog
// ============================================================================

func (s *Store) GetShopItem(ctx context.Context, itemID string) (*domain.ShopItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[itemID]
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (s *Store) ListShopItems(ctx context.Context) ([]domain.ShopItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ShopItem, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Tier != out[j].Tier {
			return out[i].Tier < out[j].Tier
		}
		return out[i].Price < out[j].Price
	})
	return out, nil
}

func (s *Store) GetTaskTemplate(ctx context.Context, templateID string) (*domain.TaskTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.templates[templateID]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (s *Store) ListTaskTemplates(ctx context.Context) ([]domain.TaskTemplate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.TaskTemplate, 0, len(s.templates))
	for _, t := range s.templates {
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) GetQuestion(ctx context.Context, questionID string) (*domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[questionID]
	if !ok {
		return nil, nil
	}
	q.Choices = append([]string(nil), q.Choices...)
	return &q, nil
}

func (s *Store) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Question, 0, len(s.questions))
	for _, q := range s.questions {
		q.Choices = append([]string(nil), q.Choices...)
		out = append(out, q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpsertShopItem(ctx context.Context, item domain.ShopItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = item
	return nil
}

func (s *Store) UpsertTaskTemplate(ctx context.Context, template domain.TaskTemplate) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.templates[template.ID] = template
	return nil
}

func (s *Store) UpsertQuestion(ctx context.Context, question domain.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	question.Choices = append([]string(nil), question.Choices...)
	s.questions[question.ID] = question
	return nil
}

// ============================================================================
// Players
// ============================================================================

func (s *Store) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.players[playerID]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

func (s *Store) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.usernames[username]
	if !ok {
		return nil, nil
	}
	return s.players[id].Clone(), nil
}

func (s *Store) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, *p.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (s *Store) CreatePlayer(ctx context.Context, player *domain.Player) error {
	if err := player.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.usernames[player.Username]; taken {
		return domain.ErrUsernameTaken
	}
	if player.ID == "" {
		player.ID = uuid.NewString()
	}
	if _, exists := s.players[player.ID]; exists {
		return domain.ErrUsernameTaken
	}

	player.Version = 1
	s.players[player.ID] = player.Clone()
	s.usernames[player.Username] = player.ID
	s.bump(playerKey(player.ID), usernameKey(player.Username))
	return nil
}

func (s *Store) ListInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.InventoryItem
	for _, inv := range s.inventory {
		if inv.PlayerID != playerID {
			continue
		}
		c := *inv
		if item, ok := s.items[inv.ItemID]; ok {
			c.Item = &item
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (s *Store) ListUserTasks(ctx context.Context, playerID string) ([]domain.UserTask, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []domain.UserTask
	for _, t := range s.tasks {
		if t.PlayerID != playerID {
			continue
		}
		c := *t
		if tmpl, ok := s.templates[t.TemplateID]; ok {
			c.Template = &tmpl
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TemplateID < out[j].TemplateID })
	return out, nil
}

// RegenerateStamina raises stamina for everyone below max in one critical
// section and bumps versions so in-flight transactions that read those
// players retry.
func (s *Store) RegenerateStamina(ctx context.Context, amount int) (int64, error) {
	if amount <= 0 {
		return 0, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, p := range s.players {
		if p.Stamina >= p.StaminaMax {
			continue
		}
		c := p.Clone()
		c.RefillStamina(amount)
		c.Version++
		s.players[id] = c
		s.bump(playerKey(id))
		n++
	}
	return n, nil
}

// ============================================================================
// Feed
// ============================================================================

func (s *Store) RecentFeed(ctx context.Context, limit int) ([]domain.FeedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.FeedItem, 0, len(s.feed))
	for _, f := range s.feed {
		out = append(out, *f.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq > out[j].Seq })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
