package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"trivia-api/internal/cache"
	"trivia-api/internal/domain"
	"trivia-api/internal/logger"

	"go.uber.org/zap"
)

// ErrCategoriesNotCached is returned when the category listing is not in the cache.
var ErrCategoriesNotCached = errors.New("category listing not found in cache")

// CategoryCacheService caches the full category listing. Categories are seed
// data, so entries only expire by TTL.
type CategoryCacheService interface {
	Get(ctx context.Context) ([]*domain.Category, error)
	Put(ctx context.Context, categories []*domain.Category) error
}

type categoryCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

type cachedCategory struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

// NewCategoryCacheService returns a no-op service when cache is nil.
func NewCategoryCacheService(cache domain.Cache, ttl time.Duration) CategoryCacheService {
	if cache == nil {
		logger.Get().Info("CategoryCacheService initialized without cache, category listing will not be cached")
		return noopCategoryCacheService{}
	}
	return &categoryCacheServiceImpl{cache: cache, ttl: ttl}
}

func categoriesKey() string {
	return cache.CategoryListKey()
}

func (s *categoryCacheServiceImpl) Get(ctx context.Context) ([]*domain.Category, error) {
	key := categoriesKey()
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			logger.Get().Debug("Category cache miss", zap.String("key", key))
			return nil, ErrCategoriesNotCached
		}
		return nil, domain.NewError(domain.CodeInternal, fmt.Sprintf("failed to read categories from cache key %s", key), err)
	}
	if data == "" {
		return nil, ErrCategoriesNotCached
	}

	var entries []cachedCategory
	if err := json.Unmarshal([]byte(data), &entries); err != nil {
		return nil, domain.NewError(domain.CodeInternal, fmt.Sprintf("failed to decode categories from cache key %s", key), err)
	}

	categories := make([]*domain.Category, len(entries))
	for i, e := range entries {
		categories[i] = &domain.Category{ID: e.ID, Type: e.Type}
	}
	return categories, nil
}

func (s *categoryCacheServiceImpl) Put(ctx context.Context, categories []*domain.Category) error {
	entries := make([]cachedCategory, len(categories))
	for i, c := range categories {
		entries[i] = cachedCategory{ID: c.ID, Type: c.Type}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return domain.NewError(domain.CodeInternal, "failed to encode categories for caching", err)
	}

	key := categoriesKey()
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return domain.NewError(domain.CodeInternal, fmt.Sprintf("failed to write categories to cache key %s", key), err)
	}
	logger.Get().Debug("Cached category listing", zap.String("key", key), zap.Duration("ttl", s.ttl))
	return nil
}

type noopCategoryCacheService struct{}

func (noopCategoryCacheService) Get(ctx context.Context) ([]*domain.Category, error) {
	return nil, ErrCategoriesNotCached
}

func (noopCategoryCacheService) Put(ctx context.Context, categories []*domain.Category) error {
	return nil
}
