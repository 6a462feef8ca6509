package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// pgTx is one serializable action transaction. Reads take row locks with
// FOR UPDATE so the rows a decision was made on cannot move underneath it.
type pgTx struct {
	tx   pgx.Tx
	done bool
}

var _ repository.Tx = (*pgTx)(nil)

func (t *pgTx) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return t.tx.QueryRow(ctx, sql, args...)
}

// exec runs a write and returns notFound when it touched no rows.
func (t *pgTx) exec(ctx context.Context, msg string, notFound error, sql string, args ...any) error {
	if t.done {
		return repository.ErrTxClosed
	}
	tag, err := t.tx.Exec(ctx, sql, args...)
	if err != nil {
		return wrap(msg, err)
	}
	if notFound != nil && tag.RowsAffected() == 0 {
		return notFound
	}
	return nil
}

// ---- Reads ----

func (t *pgTx) GetPlayer(ctx context.Context, playerID string) (*domain.Player, error) {
	row := t.queryRow(ctx, `SELECT `+playerColumns+` FROM players WHERE id = $1 FOR UPDATE`, playerID)
	return one(row, scanPlayer, ErrMsgFailedToGetPlayer)
}

// GetPlayers locks in ascending id order so two hacks on the same pair never
// deadlock.
func (t *pgTx) GetPlayers(ctx context.Context, playerIDs ...string) (map[string]*domain.Player, error) {
	rows, err := t.tx.Query(ctx, `SELECT `+playerColumns+` FROM players WHERE id = ANY($1) ORDER BY id FOR UPDATE`, playerIDs)
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetPlayer, err)
	}
	players, err := many(rows, scanPlayer, ErrMsgFailedToGetPlayer)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*domain.Player, len(players))
	for i := range players {
		out[players[i].ID] = &players[i]
	}
	return out, nil
}

func (t *pgTx) GetInventoryItem(ctx context.Context, inventoryID string) (*domain.InventoryItem, error) {
	row := t.queryRow(ctx, `SELECT `+inventoryColumns+` FROM inventory_items WHERE id = $1 FOR UPDATE`, inventoryID)
	return one(row, scanInventoryItem, ErrMsgFailedToGetInventory)
}

func (t *pgTx) FindInventoryItem(ctx context.Context, playerID, itemID string) (*domain.InventoryItem, error) {
	row := t.queryRow(ctx, `SELECT `+inventoryColumns+` FROM inventory_items WHERE player_id = $1 AND item_id = $2 FOR UPDATE`, playerID, itemID)
	return one(row, scanInventoryItem, ErrMsgFailedToGetInventory)
}

func (t *pgTx) GetUserTask(ctx context.Context, taskID string) (*domain.UserTask, error) {
	row := t.queryRow(ctx, `SELECT `+userTaskColumns+` FROM user_tasks WHERE id = $1 FOR UPDATE`, taskID)
	return one(row, scanUserTask, ErrMsgFailedToGetUserTasks)
}

func (t *pgTx) FindUserTask(ctx context.Context, playerID, templateID string) (*domain.UserTask, error) {
	row := t.queryRow(ctx, `SELECT `+userTaskColumns+` FROM user_tasks WHERE player_id = $1 AND template_id = $2 FOR UPDATE`, playerID, templateID)
	return one(row, scanUserTask, ErrMsgFailedToGetUserTasks)
}

func (t *pgTx) ListUserTasksByStatus(ctx context.Context, playerID string, status domain.TaskStatus) ([]domain.UserTask, error) {
	rows, err := t.tx.Query(ctx, `SELECT `+userTaskColumns+` FROM user_tasks WHERE player_id = $1 AND status = $2 ORDER BY id FOR UPDATE`, playerID, status)
	if err != nil {
		return nil, wrap(ErrMsgFailedToGetUserTasks, err)
	}
	return many(rows, scanUserTask, ErrMsgFailedToGetUserTasks)
}

func (t *pgTx) GetFeedItem(ctx context.Context, feedID string) (*domain.FeedItem, error) {
	row := t.queryRow(ctx, `SELECT `+feedColumns+` FROM feed_items WHERE id = $1 FOR UPDATE`, feedID)
	return one(row, scanFeedItem, ErrMsgFailedToGetFeed)
}

// ---- Writes ----

func (t *pgTx) UpdatePlayer(ctx context.Context, p *domain.Player) error {
	if err := p.Validate(); err != nil {
		return err
	}
	return t.exec(ctx, ErrMsgFailedToUpdatePlayer, domain.ErrPlayerNotFound, `
		UPDATE players SET
			display_name = $2, bio = $3, avatar_url = $4, creds = $5, xp = $6, level = $7,
			stamina = $8, stamina_max = $9, hacking_skill = $10, security_level = $11,
			badges = $12, last_online_at = $13, version = version + 1
		WHERE id = $1
	`, p.ID, p.DisplayName, p.Bio, p.AvatarURL, p.Creds, p.XP, p.Level,
		p.Stamina, p.StaminaMax, p.HackingSkill, p.SecurityLevel, p.Badges, p.LastOnlineAt)
}

// DeletePlayer relies on ON DELETE CASCADE for inventory and tasks.
func (t *pgTx) DeletePlayer(ctx context.Context, playerID string) error {
	return t.exec(ctx, ErrMsgFailedToDeletePlayer, domain.ErrPlayerNotFound,
		`DELETE FROM players WHERE id = $1`, playerID)
}

func (t *pgTx) InsertInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	err := t.exec(ctx, ErrMsgFailedToWriteInventory, nil, `
		INSERT INTO inventory_items (id, player_id, item_id, qty, activated, activated_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, 1)
	`, item.ID, item.PlayerID, item.ItemID, item.Qty, item.Activated, item.ActivatedAt)
	if isForeignKeyViolation(err) {
		return domain.ErrPlayerNotFound
	}
	return err
}

func (t *pgTx) UpdateInventoryItem(ctx context.Context, item *domain.InventoryItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	return t.exec(ctx, ErrMsgFailedToWriteInventory, domain.ErrInventoryNotFound, `
		UPDATE inventory_items SET qty = $2, activated = $3, activated_at = $4, version = version + 1
		WHERE id = $1
	`, item.ID, item.Qty, item.Activated, item.ActivatedAt)
}

func (t *pgTx) DeleteInventoryItem(ctx context.Context, inventoryID string) error {
	return t.exec(ctx, ErrMsgFailedToWriteInventory, domain.ErrInventoryNotFound,
		`DELETE FROM inventory_items WHERE id = $1`, inventoryID)
}

func (t *pgTx) InsertUserTask(ctx context.Context, task *domain.UserTask) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	err := t.exec(ctx, ErrMsgFailedToWriteUserTask, nil, `
		INSERT INTO user_tasks (id, player_id, template_id, status, progress_current, progress_needed,
			accepted_at, completed_at, claimed_at, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 1)
	`, task.ID, task.PlayerID, task.TemplateID, task.Status, task.Progress.Current, task.Progress.Needed,
		task.AcceptedAt, task.CompletedAt, task.ClaimedAt)
	if isForeignKeyViolation(err) {
		return domain.ErrPlayerNotFound
	}
	return err
}

func (t *pgTx) UpdateUserTask(ctx context.Context, task *domain.UserTask) error {
	return t.exec(ctx, ErrMsgFailedToWriteUserTask, domain.ErrTaskNotFound, `
		UPDATE user_tasks SET
			status = $2, progress_current = $3, progress_needed = $4,
			accepted_at = $5, completed_at = $6, claimed_at = $7, version = version + 1
		WHERE id = $1
	`, task.ID, task.Status, task.Progress.Current, task.Progress.Needed,
		task.AcceptedAt, task.CompletedAt, task.ClaimedAt)
}

// AppendFeedItem takes the feed advisory lock before drawing a seq. The lock
// is held until commit or rollback, so a later seq always commits later.
func (t *pgTx) AppendFeedItem(ctx context.Context, item *domain.FeedItem) error {
	if t.done {
		return repository.ErrTxClosed
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Reactions == nil {
		item.Reactions = domain.NewReactionCounters()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now().UTC()
	}

	if _, err := t.tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, FeedLockKey); err != nil {
		return wrap(ErrMsgFailedToAppendFeed, err)
	}
	err := t.tx.QueryRow(ctx, `
		INSERT INTO feed_items (id, type, text, actor_id, target_id, reactions, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING seq
	`, item.ID, item.Type, item.Text, item.ActorID, item.TargetID, item.Reactions, item.CreatedAt).Scan(&item.Seq)
	if err != nil {
		return wrap(ErrMsgFailedToAppendFeed, err)
	}
	return nil
}

func (t *pgTx) UpdateFeedReactions(ctx context.Context, feedID string, reactions map[string]int) error {
	return t.exec(ctx, ErrMsgFailedToUpdateReactions, domain.ErrFeedItemNotFound,
		`UPDATE feed_items SET reactions = $2 WHERE id = $1`, feedID, reactions)
}

func (t *pgTx) Commit(ctx context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true
	if err := t.tx.Commit(ctx); err != nil {
		return wrap(ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

func (t *pgTx) Rollback(ctx context.Context) error {
	if t.done {
		return repository.ErrTxClosed
	}
	t.done = true
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return err
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeForeignKeyViolation
}
