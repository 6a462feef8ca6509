package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/HackArena_Go/internal/domain"
)

// rowScanner is satisfied by both pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

const playerColumns = `id, username, display_name, bio, avatar_url, password_hash, creds, xp, level,
	stamina, stamina_max, hacking_skill, security_level, badges, last_online_at, created_at, version`

func scanPlayer(row rowScanner) (*domain.Player, error) {
	var p domain.Player
	err := row.Scan(&p.ID, &p.Username, &p.DisplayName, &p.Bio, &p.AvatarURL, &p.PasswordHash,
		&p.Creds, &p.XP, &p.Level, &p.Stamina, &p.StaminaMax, &p.HackingSkill, &p.SecurityLevel,
		&p.Badges, &p.LastOnlineAt, &p.CreatedAt, &p.Version)
	if err != nil {
		return nil, err
	}
	if p.Badges == nil {
		p.Badges = []string{}
	}
	return &p, nil
}

const shopItemColumns = `id, slug, title, description, price, tier, item_type, payload, image_url`

func scanShopItem(row rowScanner) (*domain.ShopItem, error) {
	var i domain.ShopItem
	if err := row.Scan(&i.ID, &i.Slug, &i.Title, &i.Description, &i.Price, &i.Tier, &i.ItemType, &i.Payload, &i.ImageURL); err != nil {
		return nil, err
	}
	return &i, nil
}

const inventoryColumns = `id, player_id, item_id, qty, activated, activated_at, version`

func scanInventoryItem(row rowScanner) (*domain.InventoryItem, error) {
	var i domain.InventoryItem
	if err := row.Scan(&i.ID, &i.PlayerID, &i.ItemID, &i.Qty, &i.Activated, &i.ActivatedAt, &i.Version); err != nil {
		return nil, err
	}
	return &i, nil
}

const templateColumns = `id, title, description, reward_creds, reward_xp, condition_type, condition_count`

func scanTemplate(row rowScanner) (*domain.TaskTemplate, error) {
	var t domain.TaskTemplate
	if err := row.Scan(&t.ID, &t.Title, &t.Description, &t.RewardCreds, &t.RewardXP, &t.Condition.Type, &t.Condition.Count); err != nil {
		return nil, err
	}
	return &t, nil
}

const userTaskColumns = `id, player_id, template_id, status, progress_current, progress_needed,
	accepted_at, completed_at, claimed_at, version`

func scanUserTask(row rowScanner) (*domain.UserTask, error) {
	var t domain.UserTask
	err := row.Scan(&t.ID, &t.PlayerID, &t.TemplateID, &t.Status, &t.Progress.Current, &t.Progress.Needed,
		&t.AcceptedAt, &t.CompletedAt, &t.ClaimedAt, &t.Version)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

const questionColumns = `id, prompt, choices, correct_choice, category`

func scanQuestion(row rowScanner) (*domain.Question, error) {
	var q domain.Question
	if err := row.Scan(&q.ID, &q.Prompt, &q.Choices, &q.CorrectChoice, &q.Category); err != nil {
		return nil, err
	}
	return &q, nil
}

const feedColumns = `id, seq, type, text, actor_id, target_id, reactions, created_at`

func scanFeedItem(row rowScanner) (*domain.FeedItem, error) {
	var f domain.FeedItem
	if err := row.Scan(&f.ID, &f.Seq, &f.Type, &f.Text, &f.ActorID, &f.TargetID, &f.Reactions, &f.CreatedAt); err != nil {
		return nil, err
	}
	if f.Reactions == nil {
		f.Reactions = domain.NewReactionCounters()
	}
	return &f, nil
}

// one runs scan over a single-row result, mapping no rows to (nil, nil).
func one[T any](row pgx.Row, scan func(rowScanner) (*T, error), msg string) (*T, error) {
	v, err := scan(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrap(msg, err)
	}
	return v, nil
}

// many drains rows through scan.
func many[T any](rows pgx.Rows, scan func(rowScanner) (*T, error), msg string) ([]T, error) {
	defer rows.Close()
	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, wrap(msg, err)
		}
		out = append(out, *v)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap(msg, err)
	}
	return out, nil
}

// wrap adds context to err after translating PostgreSQL failures that the
// engine and services branch on.
func wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, translate(err))
}

func translate(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case PgErrorCodeSerializationFailure, PgErrorCodeDeadlockDetected:
		return fmt.Errorf("%w: %s", domain.ErrTxConflict, pgErr.Message)
	case PgErrorCodeUniqueViolation:
		switch pgErr.ConstraintName {
		case ConstraintPlayersUsername:
			return domain.ErrUsernameTaken
		case ConstraintUserTaskOwner:
			return domain.ErrTaskAlreadyExists
		}
		return fmt.Errorf("%w: %s", domain.ErrTxConflict, pgErr.ConstraintName)
	case PgErrorCodeCheckViolation:
		return fmt.Errorf("%w: %s", domain.ErrIntegrityViolation, pgErr.ConstraintName)
	}
	return err
}
