package repository

import (
	"context"

	"github.com/osse101/HackArena_Go/internal/domain"
)

// Catalog defines read access to immutable reference data
type Catalog interface {
	GetShopItem(ctx context.Context, itemID string) (*domain.ShopItem, error)
	ListShopItems(ctx context.Context) ([]domain.ShopItem, error)
	GetTaskTemplate(ctx context.Context, templateID string) (*domain.TaskTemplate, error)
	ListTaskTemplates(ctx context.Context) ([]domain.TaskTemplate, error)
	GetQuestion(ctx context.Context, questionID string) (*domain.Question, error)
	ListQuestions(ctx context.Context) ([]domain.Question, error)
}

// Seeder writes reference data. Upserts are keyed by id.
type Seeder interface {
	UpsertShopItem(ctx context.Context, item domain.ShopItem) error
	UpsertTaskTemplate(ctx context.Context, template domain.TaskTemplate) error
	UpsertQuestion(ctx context.Context, question domain.Question) error
}
