// Package postgres implements repository.Store on PostgreSQL. Action
// transactions run at SERIALIZABLE isolation and lock the rows they read, so
// write skew surfaces as a serialization failure that the engine retries.
package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// Store implements repository.Store for PostgreSQL
type Store struct {
	db *pgxpool.Pool
}

// NewStore creates a new Store
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

var _ repository.Store = (*Store)(nil)

// BeginTx starts a serializable transaction
func (s *Store) BeginTx(ctx context.Context) (repository.Tx, error) {
	tx, err := s.db.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return nil, wrap(ErrMsgFailedToBeginTransaction, err)
	}
	return &pgTx{tx: tx}, nil
}

// Close releases the pool
func (s *Store) Close() {
	s.db.Close()
}

// ---- Catalog ----

func (s *Store) GetShopItem(ctx context.Context, itemID string) (*domain.ShopItem, error) {
	row := s.db.QueryRow(ctx, `SELECT `+shopItemColumns+` FROM shop_items WHERE id = $1`, itemID)
	return one(row, scanShopItem, ErrMsgFailedToGetShopItem)
}

func (s *Store) ListShopItems(ctx context.Context) ([]domain.ShopItem, error) {
	rows, err := s.db.Query(ctx, `SELECT `+shopItemColumns+` FROM shop_items ORDER BY tier, price, id`)
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetShopItem, err)
	}
	return many(rows, scanShopItem, ErrMsgFailedToGetShopItem)
}

func (s *Store) GetTaskTemplate(ctx context.Context, templateID string) (*domain.TaskTemplate, error) {
	row := s.db.QueryRow(ctx, `SELECT `+templateColumns+` FROM task_templates WHERE id = $1`, templateID)
	return one(row, scanTemplate, ErrMsgFailedToGetTaskTemplate)
}

func (s *Store) ListTaskTemplates(ctx context.Context) ([]domain.TaskTemplate, error) {
	rows, err := s.db.Query(ctx, `SELECT `+templateColumns+` FROM task_templates ORDER BY id`)
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetTaskTemplate, err)
	}
	return many(rows, scanTemplate, ErrMsgFailedToGetTaskTemplate)
}

func (s *Store) GetQuestion(ctx context.Context, questionID string) (*domain.Question, error) {
	row := s.db.QueryRow(ctx, `SELECT `+questionColumns+` FROM questions WHERE id = $1`, questionID)
	return one(row, scanQuestion, ErrMsgFailedToGetQuestion)
}

func (s *Store) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	rows, err := s.db.Query(ctx, `SELECT `+questionColumns+` FROM questions ORDER BY id`)
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetQuestion, err)
	}
	return many(rows, scanQuestion, ErrMsgFailedToGetQuestion)
}

// ---- Seeder ----

func (s *Store) UpsertShopItem(ctx context.Context, item domain.ShopItem) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO shop_items (id, slug, title, description, price, tier, item_type, payload, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			slug = EXCLUDED.slug, title = EXCLUDED.title, description = EXCLUDED.description,
			price = EXCLUDED.price, tier = EXCLUDED.tier, item_type = EXCLUDED.item_type,
			payload = EXCLUDED.payload, image_url = EXCLUDED.image_url
	`, item.ID, item.Slug, item.Title, item.Description, item.Price, item.Tier, item.ItemType, item.Payload, item.ImageURL)
	if err != nil {
		return wrap(ErrMsgFailedToUpsertCatalog, err)
	}
	return nil
}

func (s *Store) UpsertTaskTemplate(ctx context.Context, t domain.TaskTemplate) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO task_templates (id, title, description, reward_creds, reward_xp, condition_type, condition_count)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, description = EXCLUDED.description,
			reward_creds = EXCLUDED.reward_creds, reward_xp = EXCLUDED.reward_xp,
			condition_type = EXCLUDED.condition_type, condition_count = EXCLUDED.condition_count
	`, t.ID, t.Title, t.Description, t.RewardCreds, t.RewardXP, t.Condition.Type, t.Condition.Count)
	if err != nil {
		return wrap(ErrMsgFailedToUpsertCatalog, err)
	}
	return nil
}

func (s *Store) UpsertQuestion(ctx context.Context, q domain.Question) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO questions (id, prompt, choices, correct_choice, category)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			prompt = EXCLUDED.prompt, choices = EXCLUDED.choices,
			correct_choice = EXCLUDED.correct_choice, category = EXCLUDED.category
	`, q.ID, q.Prompt, q.Choices, q.CorrectChoice, q.Category)
	if err != nil {
		return wrap(ErrMsgFailedToUpsertCatalog, err)
	}
	return nil
}

// ---- Players ----

func (s *Store) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	row := s.db.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1`, playerID)
	return one(row, scanPlayer, ErrMsgFailedToGetPlayer)
}

func (s *Store) GetPlayerByUsername(ctx context.Context, username string) (*domain.Player, error) {
	row := s.db.QueryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE username = $1`, username)
	return one(row, scanPlayer, ErrMsgFailedToGetPlayer)
}

func (s *Store) ListPlayers(ctx context.Context) ([]domain.Player, error) {
	rows, err := s.db.Query(ctx, `SELECT `+playerColumns+` FROM players ORDER BY username`)
	if err != nil {
		return nil, wrap(ErrMsgFailedToListPlayers, err)
	}
	players, err := many(rows, scanPlayer, ErrMsgFailedToListPlayers)
	if players == nil && err == nil {
		players = []domain.Player{}
	}
	return players, err
}

func (s *Store) CreatePlayer(ctx context.Context, p *domain.Player) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Badges == nil {
		p.Badges = []string{}
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO players (id, username, display_name, bio, avatar_url, password_hash, creds, xp, level,
			stamina, stamina_max, hacking_skill, security_level, badges, last_online_at, created_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, 1)
	`, p.ID, p.Username, p.DisplayName, p.Bio, p.AvatarURL, p.PasswordHash, p.Creds, p.XP, p.Level,
		p.Stamina, p.StaminaMax, p.HackingSkill, p.SecurityLevel, p.Badges, p.LastOnlineAt, p.CreatedAt)
	if err != nil {
		return wrap(ErrMsgFailedToInsertPlayer, err)
	}
	p.Version = 1
	return nil
}

func (s *Store) ListInventory(ctx context.Context, playerID string) ([]domain.InventoryItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT inv.id, inv.player_id, inv.item_id, inv.qty, inv.activated, inv.activated_at, inv.version,
			si.id, si.slug, si.title, si.description, si.price, si.tier, si.item_type, si.payload, si.image_url
		FROM inventory_items inv
		JOIN shop_items si ON si.id = inv.item_id
		WHERE inv.player_id = $1
		ORDER BY inv.item_id
	`, playerID)
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetInventory, err)
	}
	return many(rows, func(r rowScanner) (*domain.InventoryItem, error) {
		var inv domain.InventoryItem
		var si domain.ShopItem
		err := r.Scan(&inv.ID, &inv.PlayerID, &inv.ItemID, &inv.Qty, &inv.Activated, &inv.ActivatedAt, &inv.Version,
			&si.ID, &si.Slug, &si.Title, &si.Description, &si.Price, &si.Tier, &si.ItemType, &si.Payload, &si.ImageURL)
		if err != nil {
			return nil, err
		}
		inv.Item = &si
		return &inv, nil
	}, ErrMsgFailedToGetInventory)
}

func (s *Store) ListUserTasks(ctx context.Context, playerID string) ([]domain.UserTask, error) {
	rows, err := s.db.Query(ctx, `
		SELECT ut.id, ut.player_id, ut.template_id, ut.status, ut.progress_current, ut.progress_needed,
			ut.accepted_at, ut.completed_at, ut.claimed_at, ut.version,
			tt.id, tt.title, tt.description, tt.reward_creds, tt.reward_xp, tt.condition_type, tt.condition_count
		FROM user_tasks ut
		JOIN task_templates tt ON tt.id = ut.template_id
		WHERE ut.player_id = $1
		ORDER BY ut.template_id
	`, playerID)
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetUserTasks, err)
	}
	return many(rows, func(r rowScanner) (*domain.UserTask, error) {
		var t domain.UserTask
		var tt domain.TaskTemplate
		err := r.Scan(&t.ID, &t.PlayerID, &t.TemplateID, &t.Status, &t.Progress.Current, &t.Progress.Needed,
			&t.AcceptedAt, &t.CompletedAt, &t.ClaimedAt, &t.Version,
			&tt.ID, &tt.Title, &tt.Description, &tt.RewardCreds, &tt.RewardXP, &tt.Condition.Type, &tt.Condition.Count)
		if err != nil {
			return nil, err
		}
		t.Template = &tt
		return &t, nil
	}, ErrMsgFailedToGetUserTasks)
}

// RegenerateStamina is a single UPDATE, so it is atomic on its own.
func (s *Store) RegenerateStamina(ctx context.Context, amount int) (int64, error) {
	if amount <= 0 {
		return 0, nil
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE players
		SET stamina = LEAST(stamina_max, stamina + $1), version = version + 1
		WHERE stamina < stamina_max
	`, amount)
	if err != nil {
		return 0, wrap(ErrMsgFailedToRegenStamina, err)
	}
	return tag.RowsAffected(), nil
}

// ---- Feed ----

func (s *Store) RecentFeed(ctx context.Context, limit int) ([]domain.FeedItem, error) {
	query := `SELECT ` + feedColumns + ` FROM feed_items ORDER BY seq DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetFeed, err)
	}
	items, err := many(rows, scanFeedItem, ErrMsgFailedToGetFeed)
	if items == nil && err == nil {
		items = []domain.FeedItem{}
	}
	return items, err
}

// Ping checks connectivity for the health check
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}
