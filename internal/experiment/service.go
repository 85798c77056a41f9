package experiment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/event"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/gamification"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/logger"
)

// Repository defines the persistence operations the experiment service needs
type Repository interface {
	Insert(ctx context.Context, exp *domain.Experiment) error
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Experiment, error)
}

// Catalog resolves consumable IDs into full consumable records
type Catalog interface {
	ResolveMany(ctx context.Context, ids []string) ([]domain.Consumable, error)
}

// ProfileService defines the profile operations the experiment service needs
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	AwardXP(ctx context.Context, userID string, amount int, source string) (*domain.XPAward, error)
}

// Service defines the experiment business logic
type Service interface {
	RunExperiment(ctx context.Context, userID string, consumableIDs []string, notes string) (*domain.Experiment, error)
	ListExperiments(ctx context.Context, userID string, limit int) ([]domain.Experiment, error)
	Shutdown(ctx context.Context) error
}

type service struct {
	repo      Repository
	catalog   Catalog
	profiles  ProfileService
	publisher *event.ResilientPublisher
	now       func() time.Time
}

// NewService creates a new experiment service
func NewService(repo Repository, catalog Catalog, profiles ProfileService, publisher *event.ResilientPublisher) Service {
	return &service{
		repo:      repo,
		catalog:   catalog,
		profiles:  profiles,
		publisher: publisher,
		now:       time.Now,
	}
}

// RunExperiment validates the combination, scores it, persists the outcome,
// and awards XP through the profile service.
func (s *service) RunExperiment(ctx context.Context, userID string, consumableIDs []string, notes string) (*domain.Experiment, error) {
	log := logger.FromContext(ctx)

	if _, err := s.profiles.GetProfile(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to resolve experimenter: %w", err)
	}

	if err := validateCombination(consumableIDs); err != nil {
		return nil, err
	}

	consumables, err := s.catalog.ResolveMany(ctx, consumableIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve consumables: %w", err)
	}

	result := ScoreCombination(consumables)

	exp := &domain.Experiment{
		ID:          uuid.NewString(),
		UserID:      userID,
		Consumables: consumables,
		Results:     []domain.ExperimentResult{result},
		Success:     result.OverallScore >= SuccessThreshold,
		Notes:       notes,
		CreatedAt:   s.now().UTC(),
	}
	exp.XPAwarded = gamification.CalculateExperimentXP(*exp)

	if err := s.repo.Insert(ctx, exp); err != nil {
		return nil, fmt.Errorf("failed to persist experiment: %w", err)
	}

	award, err := s.profiles.AwardXP(ctx, userID, exp.XPAwarded, domain.XPSourceExperiment)
	if err != nil {
		// The experiment is already recorded; surface the award failure
		return nil, fmt.Errorf("failed to award experiment XP: %w", err)
	}

	log.Info(LogMsgExperimentCompleted,
		"experiment_id", exp.ID,
		"user_id", userID,
		"consumables", len(consumableIDs),
		"overall_score", result.OverallScore,
		"success", exp.Success,
		"xp_awarded", exp.XPAwarded,
		"leveled_up", award.LeveledUp)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewExperimentCompletedEvent(*exp))
	}

	return exp, nil
}

// ListExperiments returns the user's most recent experiments, newest first.
func (s *service) ListExperiments(ctx context.Context, userID string, limit int) ([]domain.Experiment, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	experiments, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list experiments: %w", err)
	}
	return experiments, nil
}

// Shutdown gracefully shuts down the experiment service
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	if s.publisher != nil {
		if err := s.publisher.Shutdown(ctx); err != nil {
			log.Error("Failed to shut down experiment publisher", "error", err)
			return err
		}
	}

	log.Info(LogMsgShutdownComplete)
	return nil
}

// validateCombination enforces combination size and distinctness rules
func validateCombination(consumableIDs []string) error {
	if len(consumableIDs) < domain.MinCombinationSize {
		return fmt.Errorf("combination needs at least %d consumables: %w", domain.MinCombinationSize, domain.ErrNotEnoughConsumables)
	}
	if len(consumableIDs) > domain.MaxCombinationSize {
		return fmt.Errorf("combination allows at most %d consumables: %w", domain.MaxCombinationSize, domain.ErrTooManyConsumables)
	}

	seen := make(map[string]struct{}, len(consumableIDs))
	for _, id := range consumableIDs {
		if _, dup := seen[id]; dup {
			return fmt.Errorf("consumable %s listed twice: %w", id, domain.ErrDuplicateConsumable)
		}
		seen[id] = struct{}{}
	}
	return nil
}
