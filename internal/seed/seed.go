// Package seed loads the embedded starter catalog (demo players, shop items,
// task board and quiz bank) into a store.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"time"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/logger"
	"github.com/osse101/HackArena_Go/internal/repository"
	"github.com/osse101/HackArena_Go/internal/validation"
)

//go:embed data/*.json
var files embed.FS

// File names inside the data directory
const (
	CatalogFile       = "catalog.json"
	CatalogSchemaFile = "catalog.schema.json"
)

// Player is a seeded demo player
type Player struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	DisplayName   string   `json:"display_name"`
	Bio           string   `json:"bio"`
	AvatarURL     string   `json:"avatar_url"`
	Creds         int      `json:"creds"`
	XP            int      `json:"xp"`
	Stamina       int      `json:"stamina"`
	StaminaMax    int      `json:"stamina_max"`
	HackingSkill  int      `json:"hacking_skill"`
	SecurityLevel int      `json:"security_level"`
	Badges        []string `json:"badges"`
}

// Question carries the answer, which the API never serializes
type Question struct {
	ID            string   `json:"id"`
	Prompt        string   `json:"prompt"`
	Choices       []string `json:"choices"`
	CorrectChoice int      `json:"correct_choice"`
	Category      string   `json:"category"`
}

// Catalog is the decoded seed file
type Catalog struct {
	Version       string                `json:"version"`
	Players       []Player              `json:"players"`
	ShopItems     []domain.ShopItem     `json:"shop_items"`
	TaskTemplates []domain.TaskTemplate `json:"task_templates"`
	Questions     []Question            `json:"questions"`
}

// Result counts what Apply wrote
type Result struct {
	ShopItems      int `json:"shop_items"`
	TaskTemplates  int `json:"task_templates"`
	Questions      int `json:"questions"`
	PlayersCreated int `json:"players_created"`
	PlayersSkipped int `json:"players_skipped"`
}

// Load validates and decodes the embedded catalog.
func Load() (*Catalog, error) {
	data, err := fs.Sub(files, "data")
	if err != nil {
		return nil, err
	}
	raw, err := fs.ReadFile(data, CatalogFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", CatalogFile, err)
	}
	return Parse(raw, validation.NewSchemaValidator(data))
}

// Parse validates raw against the catalog schema, decodes it and checks the
// cross-record rules a schema cannot express.
func Parse(raw []byte, v validation.SchemaValidator) (*Catalog, error) {
	if err := v.ValidateBytes(raw, CatalogSchemaFile); err != nil {
		return nil, fmt.Errorf("invalid seed catalog: %w", err)
	}

	var c Catalog
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("failed to decode seed catalog: %w", err)
	}

	for _, p := range c.Players {
		if p.Stamina > p.StaminaMax {
			return nil, fmt.Errorf("%w: player %s stamina %d exceeds max %d", domain.ErrInvalidInput, p.ID, p.Stamina, p.StaminaMax)
		}
	}
	for _, q := range c.Questions {
		if q.CorrectChoice >= len(q.Choices) {
			return nil, fmt.Errorf("%w: question %s correct_choice %d out of range", domain.ErrInvalidInput, q.ID, q.CorrectChoice)
		}
	}
	return &c, nil
}

// Apply upserts the reference data and creates any demo player that does not
// exist yet. Existing players are left untouched.
func Apply(ctx context.Context, store repository.Store, c *Catalog) (Result, error) {
	var res Result

	for _, item := range c.ShopItems {
		if err := store.UpsertShopItem(ctx, item); err != nil {
			return res, fmt.Errorf("failed to seed item %s: %w", item.ID, err)
		}
		res.ShopItems++
	}
	for _, tmpl := range c.TaskTemplates {
		if err := store.UpsertTaskTemplate(ctx, tmpl); err != nil {
			return res, fmt.Errorf("failed to seed template %s: %w", tmpl.ID, err)
		}
		res.TaskTemplates++
	}
	for _, q := range c.Questions {
		err := store.UpsertQuestion(ctx, domain.Question{
			ID: q.ID, Prompt: q.Prompt, Choices: q.Choices, CorrectChoice: q.CorrectChoice, Category: q.Category,
		})
		if err != nil {
			return res, fmt.Errorf("failed to seed question %s: %w", q.ID, err)
		}
		res.Questions++
	}

	now := time.Now().UTC()
	for _, sp := range c.Players {
		existing, err := store.GetPlayer(ctx, sp.ID)
		if err != nil {
			return res, fmt.Errorf("failed to look up player %s: %w", sp.ID, err)
		}
		if existing != nil {
			res.PlayersSkipped++
			continue
		}
		badges := sp.Badges
		if badges == nil {
			badges = []string{}
		}
		p := &domain.Player{
			ID:            sp.ID,
			Username:      sp.Username,
			DisplayName:   sp.DisplayName,
			Bio:           sp.Bio,
			AvatarURL:     sp.AvatarURL,
			Creds:         sp.Creds,
			XP:            sp.XP,
			Level:         domain.LevelForXP(sp.XP),
			Stamina:       sp.Stamina,
			StaminaMax:    sp.StaminaMax,
			HackingSkill:  sp.HackingSkill,
			SecurityLevel: sp.SecurityLevel,
			Badges:        badges,
			LastOnlineAt:  now,
			CreatedAt:     now,
		}
		if err := store.CreatePlayer(ctx, p); err != nil {
			return res, fmt.Errorf("failed to seed player %s: %w", sp.ID, err)
		}
		res.PlayersCreated++
	}

	logger.FromContext(ctx).Info("Seed catalog applied",
		"items", res.ShopItems, "templates", res.TaskTemplates, "questions", res.Questions,
		"players_created", res.PlayersCreated, "players_skipped", res.PlayersSkipped)
	return res, nil
}
