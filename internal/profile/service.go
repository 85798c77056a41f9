package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/event"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/gamification"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/logger"
)

// Repository defines the profile persistence operations
type Repository interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	AddXP(ctx context.Context, userID string, amount int) (int, error)
	SetLevel(ctx context.Context, userID string, level int) error
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
}

// UserRepository defines the user persistence operations the profile
// service needs
type UserRepository interface {
	CreateUser(ctx context.Context, username string) (*domain.User, error)
}

// Service defines the profile and progression business logic
type Service interface {
	Register(ctx context.Context, username string) (*domain.User, error)
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	GetLevelProgress(ctx context.Context, userID string) (*domain.LevelProgress, error)
	AwardXP(ctx context.Context, userID string, amount int, source string) (*domain.XPAward, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	Shutdown(ctx context.Context) error
}

type service struct {
	repo      Repository
	users     UserRepository
	publisher *event.ResilientPublisher
}

// NewService creates a new profile service
func NewService(repo Repository, users UserRepository, publisher *event.ResilientPublisher) Service {
	return &service{
		repo:      repo,
		users:     users,
		publisher: publisher,
	}
}

// Register creates a user with a fresh level-1 profile
func (s *service) Register(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	username = strings.TrimSpace(username)
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return nil, fmt.Errorf("username must be %d-%d characters: %w",
			MinUsernameLength, MaxUsernameLength, domain.ErrInvalidInput)
	}

	user, err := s.users.CreateUser(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}

	log.Info(LogMsgUserRegistered, "user_id", user.ID, "username", user.Username)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewUserRegisteredEvent(user.ID, user.Username))
	}

	return user, nil
}

// GetProfile returns a user's profile
func (s *service) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// GetLevelProgress reports where the user's cumulative XP sits inside the
// current level band. The level is derived from XP rather than the stored
// column, so a stale stored level cannot skew the band arithmetic.
func (s *service) GetLevelProgress(ctx context.Context, userID string) (*domain.LevelProgress, error) {
	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	level := gamification.CalculateLevel(profile.TotalXP)
	progress := gamification.GetLevelProgress(profile.TotalXP, level)
	return &progress, nil
}

// AwardXP adds XP to a profile and handles level-up side effects. Crossing
// a reward-tier breakpoint grants that tier's bonus XP exactly once; the
// level is recomputed after the bonus in the same pass, and a bonus that
// itself crosses another breakpoint grants no further bonus.
func (s *service) AwardXP(ctx context.Context, userID string, amount int, source string) (*domain.XPAward, error) {
	log := logger.FromContext(ctx)

	if amount < 0 {
		return nil, fmt.Errorf("xp amount must not be negative: %w", domain.ErrInvalidInput)
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	oldLevel := profile.Level
	totalXP, err := s.repo.AddXP(ctx, userID, amount)
	if err != nil {
		return nil, fmt.Errorf("failed to add xp: %w", err)
	}

	newLevel := gamification.CalculateLevel(totalXP)

	bonusXP := 0
	if newLevel > oldLevel {
		bonusXP = milestoneBonusBetween(oldLevel, newLevel)
		if bonusXP > 0 {
			totalXP, err = s.repo.AddXP(ctx, userID, bonusXP)
			if err != nil {
				return nil, fmt.Errorf("failed to add milestone bonus xp: %w", err)
			}
			newLevel = gamification.CalculateLevel(totalXP)
		}
	}

	if newLevel > oldLevel {
		if err := s.repo.SetLevel(ctx, userID, newLevel); err != nil {
			return nil, fmt.Errorf("failed to set level: %w", err)
		}
	}

	leveledUp := newLevel > oldLevel
	rewards := gamification.GetLevelRewards(newLevel)

	log.Info(LogMsgXPAwarded,
		"user_id", userID,
		"amount", amount,
		"bonus_xp", bonusXP,
		"total_xp", totalXP,
		"source", source,
		"leveled_up", leveledUp)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewXPAwardedEvent(userID, amount, bonusXP, totalXP, source))
	}

	if leveledUp {
		log.Info(LogMsgLevelUp,
			"user_id", userID,
			"old_level", oldLevel,
			"new_level", newLevel,
			"title", rewards.Title)
		if s.publisher != nil {
			s.publisher.PublishWithRetry(ctx, event.NewLevelUpEvent(userID, profile.Username, oldLevel, newLevel, rewards))
		}
	}

	return &domain.XPAward{
		UserID:    userID,
		Amount:    amount,
		BonusXP:   bonusXP,
		TotalXP:   totalXP,
		OldLevel:  oldLevel,
		NewLevel:  newLevel,
		LeveledUp: leveledUp,
		Rewards:   rewards,
	}, nil
}

// Leaderboard returns the top profiles by total XP
func (s *service) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = domain.DefaultLeaderboardLimit
	}
	if limit > domain.MaxLeaderboardLimit {
		limit = domain.MaxLeaderboardLimit
	}

	entries, err := s.repo.Leaderboard(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	return entries, nil
}

// Shutdown gracefully shuts down the profile service
func (s *service) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShuttingDown)

	if s.publisher != nil {
		if err := s.publisher.Shutdown(ctx); err != nil {
			log.Error("Failed to shut down profile publisher", "error", err)
			return err
		}
	}

	log.Info(LogMsgShutdownComplete)
	return nil
}

// milestoneBonusBetween sums the one-time tier bonuses for every breakpoint
// crossed moving from oldLevel to newLevel
func milestoneBonusBetween(oldLevel, newLevel int) int {
	bonus := 0
	for level := oldLevel + 1; level <= newLevel; level++ {
		bonus += gamification.MilestoneBonusXP(level)
	}
	return bonus
}
