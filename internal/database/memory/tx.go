package memory

import (
	"context"
	"maps"
	"sort"

	"github.com/google/uuid"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// op is a buffered write. check runs for every op before any apply so a
// commit is all-or-nothing.
type op struct {
	check func(s *Store) error
	apply func(s *Store)
}

type tx struct {
	s     *Store
	reads map[string]int64
	ops   []op
	done  bool
}

var _ repository.Tx = (*tx)(nil)

// observe records the version of key, failing fast when a re-read sees a
// different version than the first read. Caller holds s.mu.
func (t *tx) observe(key string) error {
	v := t.s.versions[key]
	if prev, seen := t.reads[key]; seen && prev != v {
		return domain.ErrTxConflict
	}
	t.reads[key] = v
	return nil
}

// beginRead locks the store for a read, enforcing read-before-write.
func (t *tx) beginRead() error {
	if t.done {
		return repository.ErrTxClosed
	}
	if len(t.ops) > 0 {
		return domain.ErrReadAfterWrite
	}
	t.s.mu.Lock()
	return nil
}

func (t *tx) write(o op) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.ops = append(t.ops, o)
	return nil
}

// ============================================================================
// Reads
// ============================================================================

func (t *tx) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	if err := t.beginRead(); err != nil {
		return nil, err
	}
	defer t.s.mu.Unlock()

	if err := t.observe(playerKey(playerID)); err != nil {
		return nil, err
	}
	p, ok := t.s.players[playerID]
	if !ok {
		return nil, nil
	}
	return p.Clone(), nil
}

func (t *tx) GetPlayers(ctx context.Context, playerIDs ...string) (map[string]*domain.Player, error) {
	if err := t.beginRead(); err != nil {
		return nil, err
	}
	defer t.s.mu.Unlock()

	ids := append([]string(nil), playerIDs...)
	sort.Strings(ids)
	out := make(map[string]*domain.Player, len(ids))
	for _, id := range ids {
		if err := t.observe(playerKey(id)); err != nil {
			return nil, err
		}
		if p, ok := t.s.players[id]; ok {
			out[id] = p.Clone()
		}
	}
	return out, nil
}

func (t *tx) GetInventoryItem(ctx context.Context, inventoryID string) (*domain.InventoryItem, error) {
	if err := t.beginRead(); err != nil {
		return nil, err
	}
	defer t.s.mu.Unlock()

	if err := t.observe(inventoryKey(inventoryID)); err != nil {
		return nil, err
	}
	inv, ok := t.s.inventory[inventoryID]
	if !ok {
		return nil, nil
	}
	c := *inv
	return &c, nil
}

func (t *tx) FindInventoryItem(ctx context.Context, playerID, itemID string) (*domain.InventoryItem, error) {
	if err := t.beginRead(); err != nil {
		return nil, err
	}
	defer t.s.mu.Unlock()

	if err := t.observe(inventoryOwnerKey(playerID, itemID)); err != nil {
		return nil, err
	}
	id, ok := t.s.invOwner[inventoryOwnerKey(playerID, itemID)]
	if !ok {
		return nil, nil
	}
	if err := t.observe(inventoryKey(id)); err != nil {
		return nil, err
	}
	c := *t.s.inventory[id]
	return &c, nil
}

func (t *tx) GetUserTask(ctx context.Context, taskID string) (*domain.UserTask, error) {
	if err := t.beginRead(); err != nil {
		return nil, err
	}
	defer t.s.mu.Unlock()

	if err := t.observe(taskKey(taskID)); err != nil {
		return nil, err
	}
	task, ok := t.s.tasks[taskID]
	if !ok {
		return nil, nil
	}
	c := *task
	return &c, nil
}

func (t *tx) FindUserTask(ctx context.Context, playerID, templateID string) (*domain.UserTask, error) {
	if err := t.beginRead(); err != nil {
		return nil, err
	}
	defer t.s.mu.Unlock()

	if err := t.observe(taskOwnerKey(playerID, templateID)); err != nil {
		return nil, err
	}
	id, ok := t.s.taskOwner[taskOwnerKey(playerID, templateID)]
	if !ok {
		return nil, nil
	}
	if err := t.observe(taskKey(id)); err != nil {
		return nil, err
	}
	c := *t.s.tasks[id]
	return &c, nil
}

func (t *tx) ListUserTasksByStatus(ctx context.Context, playerID string, status domain.TaskStatus) ([]domain.UserTask, error) {
	if err := t.beginRead(); err != nil {
		return nil, err
	}
	defer t.s.mu.Unlock()

	if err := t.observe(tasksOfKey(playerID)); err != nil {
		return nil, err
	}
	var out []domain.UserTask
	for id, task := range t.s.tasks {
		if task.PlayerID != playerID || task.Status != status {
			continue
		}
		if err := t.observe(taskKey(id)); err != nil {
			return nil, err
		}
		out = append(out, *task)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (t *tx) GetFeedItem(ctx context.Context, feedID string) (*domain.FeedItem, error) {
	if err := t.beginRead(); err != nil {
		return nil, err
	}
	defer t.s.mu.Unlock()

	if err := t.observe(feedKey(feedID)); err != nil {
		return nil, err
	}
	f, ok := t.s.feed[feedID]
	if !ok {
		return nil, nil
	}
	return f.Clone(), nil
}

// ============================================================================
// Writes
// ============================================================================

func (t *tx) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	if err := player.Validate(); err != nil {
		return err
	}
	c := player.Clone()
	return t.write(op{
		check: func(s *Store) error {
			if _, ok := s.players[c.ID]; !ok {
				return domain.ErrPlayerNotFound
			}
			return nil
		},
		apply: func(s *Store) {
			c.Version = s.players[c.ID].Version + 1
			s.players[c.ID] = c
			s.bump(playerKey(c.ID))
		},
	})
}

func (t *tx) DeletePlayer(ctx context.Context, playerID string) error {
	return t.write(op{
		check: func(s *Store) error {
			if _, ok := s.players[playerID]; !ok {
				return domain.ErrPlayerNotFound
			}
			return nil
		},
		apply: func(s *Store) {
			p := s.players[playerID]
			delete(s.usernames, p.Username)
			delete(s.players, playerID)
			s.bump(playerKey(playerID), usernameKey(p.Username), tasksOfKey(playerID))

			for id, inv := range s.inventory {
				if inv.PlayerID == playerID {
					delete(s.inventory, id)
					delete(s.invOwner, inventoryOwnerKey(playerID, inv.ItemID))
					s.bump(inventoryKey(id), inventoryOwnerKey(playerID, inv.ItemID))
				}
			}
			for id, task := range s.tasks {
				if task.PlayerID == playerID {
					delete(s.tasks, id)
					delete(s.taskOwner, taskOwnerKey(playerID, task.TemplateID))
					s.bump(taskKey(id), taskOwnerKey(playerID, task.TemplateID))
				}
			}
		},
	})
}

func (t *tx) InsertInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	c := *item
	c.Item = nil
	owner := inventoryOwnerKey(c.PlayerID, c.ItemID)
	return t.write(op{
		check: func(s *Store) error {
			if _, ok := s.players[c.PlayerID]; !ok {
				return domain.ErrPlayerNotFound
			}
			if _, taken := s.invOwner[owner]; taken {
				return domain.ErrTxConflict
			}
			return nil
		},
		apply: func(s *Store) {
			c.Version = 1
			s.inventory[c.ID] = &c
			s.invOwner[owner] = c.ID
			s.bump(inventoryKey(c.ID), owner)
		},
	})
}

func (t *tx) UpdateInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	c := *item
	c.Item = nil
	return t.write(op{
		check: func(s *Store) error {
			if _, ok := s.inventory[c.ID]; !ok {
				return domain.ErrInventoryNotFound
			}
			return nil
		},
		apply: func(s *Store) {
			c.Version = s.inventory[c.ID].Version + 1
			s.inventory[c.ID] = &c
			s.bump(inventoryKey(c.ID))
		},
	})
}

func (t *tx) DeleteInventoryItem(ctx context.Context, inventoryID string) error {
	return t.write(op{
		check: func(s *Store) error {
			if _, ok := s.inventory[inventoryID]; !ok {
				return domain.ErrInventoryNotFound
			}
			return nil
		},
		apply: func(s *Store) {
			inv := s.inventory[inventoryID]
			owner := inventoryOwnerKey(inv.PlayerID, inv.ItemID)
			delete(s.inventory, inventoryID)
			delete(s.invOwner, owner)
			s.bump(inventoryKey(inventoryID), owner)
		},
	})
}

func (t *tx) InsertUserTask(ctx context.Context, task *domain.UserTask) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	c := *task
	c.Template = nil
	owner := taskOwnerKey(c.PlayerID, c.TemplateID)
	return t.write(op{
		check: func(s *Store) error {
			if _, ok := s.players[c.PlayerID]; !ok {
				return domain.ErrPlayerNotFound
			}
			if _, taken := s.taskOwner[owner]; taken {
				return domain.ErrTaskAlreadyExists
			}
			return nil
		},
		apply: func(s *Store) {
			c.Version = 1
			s.tasks[c.ID] = &c
			s.taskOwner[owner] = c.ID
			s.bump(taskKey(c.ID), owner, tasksOfKey(c.PlayerID))
		},
	})
}

func (t *tx) UpdateUserTask(ctx context.Context, task *domain.UserTask) error {
	c := *task
	c.Template = nil
	return t.write(op{
		check: func(s *Store) error {
			if _, ok := s.tasks[c.ID]; !ok {
				return domain.ErrTaskNotFound
			}
			return nil
		},
		apply: func(s *Store) {
			c.Version = s.tasks[c.ID].Version + 1
			s.tasks[c.ID] = &c
			s.bump(taskKey(c.ID), tasksOfKey(c.PlayerID))
		},
	})
}

// AppendFeedItem buffers the entry. Its Seq is assigned inside the commit
// critical section, so sequence order is commit order.
func (t *tx) AppendFeedItem(ctx context.Context, item *domain.FeedItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	return t.write(op{
		check: func(s *Store) error {
			if _, exists := s.feed[item.ID]; exists {
				return domain.ErrTxConflict
			}
			return nil
		},
		apply: func(s *Store) {
			s.seq++
			item.Seq = s.seq
			s.feed[item.ID] = item.Clone()
			s.bump(feedKey(item.ID))
		},
	})
}

func (t *tx) UpdateFeedReactions(ctx context.Context, feedID string, reactions map[string]int) error {
	counts := maps.Clone(reactions)
	return t.write(op{
		check: func(s *Store) error {
			if _, ok := s.feed[feedID]; !ok {
				return domain.ErrFeedItemNotFound
			}
			return nil
		},
		apply: func(s *Store) {
			s.feed[feedID].Reactions = counts
			s.bump(feedKey(feedID))
		},
	})
}

// ============================================================================
// Commit / Rollback
// ============================================================================

func (t *tx) Commit(ctx context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true

	s := t.s
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, v := range t.reads {
		if s.versions[key] != v {
			return domain.ErrTxConflict
		}
	}
	for _, o := range t.ops {
		if err := o.check(s); err != nil {
			return err
		}
	}
	for _, o := range t.ops {
		o.apply(s)
	}
	return nil
}

func (t *tx) Rollback(ctx context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true
	t.ops = nil
	return nil
}
