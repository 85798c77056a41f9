package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

// Shared testify mocks for the service interfaces consumed by handlers.

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) Register(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockProfileService) GetLevelProgress(ctx context.Context, userID string) (*domain.LevelProgress, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LevelProgress), args.Error(1)
}

func (m *MockProfileService) AwardXP(ctx context.Context, userID string, amount int, source string) (*domain.XPAward, error) {
	args := m.Called(ctx, userID, amount, source)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.XPAward), args.Error(1)
}

func (m *MockProfileService) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockProfileService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockConsumableService struct {
	mock.Mock
}

func (m *MockConsumableService) GetByID(ctx context.Context, id string) (*domain.Consumable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Consumable), args.Error(1)
}

func (m *MockConsumableService) GetByName(ctx context.Context, name string) (*domain.Consumable, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Consumable), args.Error(1)
}

func (m *MockConsumableService) Search(ctx context.Context, query, category string, limit int) ([]domain.Consumable, error) {
	args := m.Called(ctx, query, category, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Consumable), args.Error(1)
}

func (m *MockConsumableService) ResolveMany(ctx context.Context, ids []string) ([]domain.Consumable, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Consumable), args.Error(1)
}

func (m *MockConsumableService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockExperimentService struct {
	mock.Mock
}

func (m *MockExperimentService) RunExperiment(ctx context.Context, userID string, consumableIDs []string, notes string) (*domain.Experiment, error) {
	args := m.Called(ctx, userID, consumableIDs, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Experiment), args.Error(1)
}

func (m *MockExperimentService) ListExperiments(ctx context.Context, userID string, limit int) ([]domain.Experiment, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Experiment), args.Error(1)
}

func (m *MockExperimentService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockAchievementService struct {
	mock.Mock
}

func (m *MockAchievementService) Definitions() []domain.Achievement {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Achievement)
}

func (m *MockAchievementService) ListUserAchievements(ctx context.Context, userID string) ([]domain.UnlockedAchievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UnlockedAchievement), args.Error(1)
}

func (m *MockAchievementService) Unlock(ctx context.Context, userID, username, key string) (bool, error) {
	args := m.Called(ctx, userID, username, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockAchievementService) SeedDefinitions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockAchievementService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
