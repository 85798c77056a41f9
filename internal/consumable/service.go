package consumable

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/event"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/logger"
)

// Repository defines the persistence operations the catalog needs
type Repository interface {
	GetByID(ctx context.Context, id string) (*domain.Consumable, error)
	GetByName(ctx context.Context, name string) (*domain.Consumable, error)
	Search(ctx context.Context, query, category string, limit int) ([]domain.Consumable, error)
	Upsert(ctx context.Context, c *domain.Consumable) error
}

// Service defines the catalog business logic
type Service interface {
	GetByID(ctx context.Context, id string) (*domain.Consumable, error)
	GetByName(ctx context.Context, name string) (*domain.Consumable, error)
	Search(ctx context.Context, query, category string, limit int) ([]domain.Consumable, error)
	ResolveMany(ctx context.Context, ids []string) ([]domain.Consumable, error)
	Shutdown(ctx context.Context) error
}

type service struct {
	repo      Repository
	publisher *event.ResilientPublisher
	cache     *catalogCache
}

// NewService creates a new catalog service. cacheSize/cacheTTL of zero fall
// back to the package defaults.
func NewService(repo Repository, publisher *event.ResilientPublisher, cacheSize int, cacheTTL time.Duration) Service {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}

	return &service{
		repo:      repo,
		publisher: publisher,
		cache:     newCatalogCache(cacheSize, cacheTTL),
	}
}

// GetByID returns a catalog entry by UUID, serving repeated lookups from the
// LRU cache.
func (s *service) GetByID(ctx context.Context, id string) (*domain.Consumable, error) {
	if c, ok := s.cache.GetByID(id); ok {
		return c, nil
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get consumable: %w", err)
	}

	s.cache.Set(c)
	return c, nil
}

// GetByName returns a catalog entry by case-insensitive name.
func (s *service) GetByName(ctx context.Context, name string) (*domain.Consumable, error) {
	if c, ok := s.cache.GetByName(name); ok {
		return c, nil
	}

	c, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get consumable by name: %w", err)
	}

	s.cache.Set(c)
	return c, nil
}

// Search finds catalog entries matching the query, optionally filtered by
// category. The limit is clamped to [1, MaxSearchLimit] with a default when
// unset. Every search is announced on the event bus for metrics.
func (s *service) Search(ctx context.Context, query, category string, limit int) ([]domain.Consumable, error) {
	log := logger.FromContext(ctx)

	if !domain.IsValidCategory(category) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidCategory, category)
	}

	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}
	if limit > domain.MaxSearchLimit {
		limit = domain.MaxSearchLimit
	}

	query = strings.TrimSpace(query)

	results, err := s.repo.Search(ctx, query, category, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search catalog: %w", err)
	}

	log.Debug(LogMsgSearchPerformed, "query", query, "category", category, "results", len(results))

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewSearchPerformedEvent(query, category, len(results)))
	}

	return results, nil
}

// ResolveMany resolves a list of consumable IDs into catalog entries,
// preserving input order. A single unknown ID fails the whole resolution so
// experiments never run with silently missing ingredients.
func (s *service) ResolveMany(ctx context.Context, ids []string) ([]domain.Consumable, error) {
	resolved := make([]domain.Consumable, 0, len(ids))
	for _, id := range ids {
		c, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, *c)
	}
	return resolved, nil
}

// Shutdown gracefully shuts down the catalog service
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)
	s.cache.Clear()
	log.Info(LogMsgShutdownComplete)
	return nil
}
