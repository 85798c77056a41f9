package achievement

import (
	"context"
	"fmt"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/event"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/logger"
)

// Repository defines the achievement persistence operations
type Repository interface {
	Unlock(ctx context.Context, userID, achievementKey string) (bool, error)
	ListByUser(ctx context.Context, userID string) ([]domain.UnlockedAchievement, error)
	UpsertDefinition(ctx context.Context, a domain.Achievement) error
}

// Service defines the achievement business logic
type Service interface {
	Definitions() []domain.Achievement
	ListUserAchievements(ctx context.Context, userID string) ([]domain.UnlockedAchievement, error)
	Unlock(ctx context.Context, userID, username, key string) (bool, error)
	SeedDefinitions(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type service struct {
	repo      Repository
	publisher *event.ResilientPublisher
}

// NewService creates a new achievement service
func NewService(repo Repository, publisher *event.ResilientPublisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

// Definitions returns the badge catalog in display order
func (s *service) Definitions() []domain.Achievement {
	return Definitions()
}

// ListUserAchievements returns the badges a user has unlocked
func (s *service) ListUserAchievements(ctx context.Context, userID string) ([]domain.UnlockedAchievement, error) {
	unlocked, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list achievements: %w", err)
	}
	return unlocked, nil
}

// Unlock records a badge for a user. Unlocks are idempotent: only the first
// call per user and key reports true and publishes the unlock event.
func (s *service) Unlock(ctx context.Context, userID, username, key string) (bool, error) {
	def, ok := DefinitionByKey(key)
	if !ok {
		return false, fmt.Errorf("unknown achievement %q: %w", key, domain.ErrAchievementNotFound)
	}

	first, err := s.repo.Unlock(ctx, userID, key)
	if err != nil {
		return false, fmt.Errorf("failed to unlock achievement: %w", err)
	}
	if !first {
		return false, nil
	}

	logger.FromContext(ctx).Info(LogMsgAchievementUnlocked,
		"user_id", userID,
		"achievement", key,
		"rarity", def.Rarity)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewAchievementUnlockedEvent(userID, username, def))
	}

	return true, nil
}

// SeedDefinitions writes the badge catalog into the database so API
// consumers can join unlock rows against titles and rarities
func (s *service) SeedDefinitions(ctx context.Context) error {
	for _, def := range Definitions() {
		if err := s.repo.UpsertDefinition(ctx, def); err != nil {
			return fmt.Errorf("failed to seed achievement %s: %w", def.Key, err)
		}
	}
	return nil
}

// Shutdown gracefully shuts down the achievement service
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	if s.publisher != nil {
		if err := s.publisher.Shutdown(ctx); err != nil {
			log.Error("Failed to shut down achievement publisher", "error", err)
			return err
		}
	}

	log.Info(LogMsgShutdownComplete)
	return nil
}
