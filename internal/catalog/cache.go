// Package catalog caches the immutable reference data (shop items, task
// templates and quiz questions) in front of the store.
package catalog

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/HackArena_Go/internal/domain"
	"github.com/osse101/HackArena_Go/internal/repository"
)

// CacheSchemaVersion is bumped when cached shapes change so old entries miss.
const CacheSchemaVersion = "1.0"

// Defaults used when Config leaves a field zero
const (
	DefaultCacheSize = 512
	DefaultCacheTTL  = 5 * time.Minute
)

const (
	keyShopItems = "shop_items"
	keyTemplates = "task_templates"
	keyQuestions = "questions"
)

// Config sizes the cache
type Config struct {
	Size int
	TTL  time.Duration
}

type entry struct {
	version  string
	value    any
	cachedAt time.Time
}

// Cache is a read-through repository.Catalog. Misses for unknown ids are not
// cached.
type Cache struct {
	next repository.Catalog
	lru  *expirable.LRU[string, *entry]
}

var _ repository.Catalog = (*Cache)(nil)

// NewCache wraps next with an expiring LRU.
func NewCache(next repository.Catalog, cfg Config) *Cache {
	if cfg.Size <= 0 {
		cfg.Size = DefaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultCacheTTL
	}
	return &Cache{
		next: next,
		lru:  expirable.NewLRU[string, *entry](cfg.Size, nil, cfg.TTL),
	}
}

func (c *Cache) get(key string) (any, bool) {
	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	if e.version != CacheSchemaVersion {
		c.lru.Remove(key)
		return nil, false
	}
	return e.value, true
}

func (c *Cache) set(key string, value any) {
	c.lru.Add(key, &entry{version: CacheSchemaVersion, value: value, cachedAt: time.Now()})
}

// Purge drops every entry. Call after reseeding.
func (c *Cache) Purge() {
	c.lru.Purge()
}

// Len reports the number of live entries.
func (c *Cache) Len() int {
	return c.lru.Len()
}

// cached is the read-through path shared by every lookup.
func cached[T any](c *Cache, key string, load func() (T, bool, error)) (T, error) {
	if v, ok := c.get(key); ok {
		if t, ok := v.(T); ok {
			return t, nil
		}
	}
	v, found, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	if found {
		c.set(key, v)
	}
	return v, nil
}

func (c *Cache) GetShopItem(ctx context.Context, itemID string) (*domain.ShopItem, error) {
	item, err := cached(c, "item:"+itemID, func() (*domain.ShopItem, bool, error) {
		v, err := c.next.GetShopItem(ctx, itemID)
		return v, v != nil, err
	})
	if err != nil || item == nil {
		return nil, err
	}
	cp := *item
	return &cp, nil
}

func (c *Cache) ListShopItems(ctx context.Context) ([]domain.ShopItem, error) {
	items, err := cached(c, keyShopItems, func() ([]domain.ShopItem, bool, error) {
		v, err := c.next.ListShopItems(ctx)
		return v, true, err
	})
	return append([]domain.ShopItem(nil), items...), err
}

func (c *Cache) GetTaskTemplate(ctx context.Context, templateID string) (*domain.TaskTemplate, error) {
	tmpl, err := cached(c, "template:"+templateID, func() (*domain.TaskTemplate, bool, error) {
		v, err := c.next.GetTaskTemplate(ctx, templateID)
		return v, v != nil, err
	})
	if err != nil || tmpl == nil {
		return nil, err
	}
	cp := *tmpl
	return &cp, nil
}

func (c *Cache) ListTaskTemplates(ctx context.Context) ([]domain.TaskTemplate, error) {
	tmpls, err := cached(c, keyTemplates, func() ([]domain.TaskTemplate, bool, error) {
		v, err := c.next.ListTaskTemplates(ctx)
		return v, true, err
	})
	return append([]domain.TaskTemplate(nil), tmpls...), err
}

func (c *Cache) GetQuestion(ctx context.Context, questionID string) (*domain.Question, error) {
	q, err := cached(c, "question:"+questionID, func() (*domain.Question, bool, error) {
		v, err := c.next.GetQuestion(ctx, questionID)
		return v, v != nil, err
	})
	if err != nil || q == nil {
		return nil, err
	}
	cp := *q
	cp.Choices = append([]string(nil), q.Choices...)
	return &cp, nil
}

func (c *Cache) ListQuestions(ctx context.Context) ([]domain.Question, error) {
	qs, err := cached(c, keyQuestions, func() ([]domain.Question, bool, error) {
		v, err := c.next.ListQuestions(ctx)
		return v, true, err
	})
	if err != nil {
		return nil, err
	}
	out := make([]domain.Question, len(qs))
	for i, q := range qs {
		out[i] = q
		out[i].Choices = append([]string(nil), q.Choices...)
	}
	return out, nil
}
