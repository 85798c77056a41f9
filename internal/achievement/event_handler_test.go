package achievement

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/event"
)

type MockService struct {
	mock.Mock
}

func (m *MockService) Definitions() []domain.Achievement {
	args := m.Called()
	return args.Get(0).([]domain.Achievement)
}

func (m *MockService) ListUserAchievements(ctx context.Context, userID string) ([]domain.UnlockedAchievement, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UnlockedAchievement), args.Error(1)
}

func (m *MockService) Unlock(ctx context.Context, userID, username, key string) (bool, error) {
	args := m.Called(ctx, userID, username, key)
	return args.Bool(0), args.Error(1)
}

func (m *MockService) SeedDefinitions(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockService) Shutdown(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockProfileGetter struct {
	mock.Mock
}

func (m *MockProfileGetter) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

type MockExperimentCounter struct {
	mock.Mock
}

func (m *MockExperimentCounter) CountByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func handlerFixtures() (*MockService, *MockProfileGetter, *MockExperimentCounter, *EventHandler) {
	svc := new(MockService)
	profiles := new(MockProfileGetter)
	counter := new(MockExperimentCounter)
	handler := NewEventHandler(svc, profiles, counter)
	return svc, profiles, counter, handler
}

func expectUsername(profiles *MockProfileGetter) {
	profiles.On("GetProfile", mock.Anything, testUserID).
		Return(&domain.Profile{UserID: testUserID, Username: "tester"}, nil)
}

func experimentEvent(payload domain.ExperimentCompletedPayload) event.Event {
	return event.Event{
		Version: event.EventSchemaVersion,
		Type:    event.ExperimentCompleted,
		Payload: payload,
	}
}

func TestHandleExperimentCompleted_FirstExperimentOnly(t *testing.T) {
	svc, profiles, counter, handler := handlerFixtures()
	expectUsername(profiles)
	counter.On("CountByUser", mock.Anything, testUserID).Return(1, nil)
	svc.On("Unlock", mock.Anything, testUserID, "tester", domain.AchievementFirstExperiment).Return(true, nil)

	err := handler.HandleExperimentCompleted(context.Background(), experimentEvent(domain.ExperimentCompletedPayload{
		ExperimentID:    "exp-1",
		UserID:          testUserID,
		ConsumableCount: 2,
		SafetyScore:     80,
		NoveltyScore:    30,
	}))

	assert.NoError(t, err)
	svc.AssertExpectations(t)
	svc.AssertNumberOfCalls(t, "Unlock", 1)
}

func TestHandleExperimentCompleted_AllExperimentBadges(t *testing.T) {
	svc, profiles, counter, handler := handlerFixtures()
	expectUsername(profiles)
	counter.On("CountByUser", mock.Anything, testUserID).Return(TenExperimentsCount, nil)
	svc.On("Unlock", mock.Anything, testUserID, "tester", mock.Anything).Return(true, nil)

	err := handler.HandleExperimentCompleted(context.Background(), experimentEvent(domain.ExperimentCompletedPayload{
		ExperimentID:    "exp-10",
		UserID:          testUserID,
		ConsumableCount: 5,
		SafetyScore:     100,
		NoveltyScore:    95,
	}))

	assert.NoError(t, err)
	for _, key := range []string{
		domain.AchievementFirstExperiment,
		domain.AchievementFiveIngredients,
		domain.AchievementPerfectSafety,
		domain.AchievementHighNovelty,
		domain.AchievementTenExperiments,
	} {
		svc.AssertCalled(t, "Unlock", mock.Anything, testUserID, "tester", key)
	}
}

func TestHandleExperimentCompleted_CountErrorSkipsCountBadge(t *testing.T) {
	svc, profiles, counter, handler := handlerFixtures()
	expectUsername(profiles)
	counter.On("CountByUser", mock.Anything, testUserID).Return(0, errors.New("db down"))
	svc.On("Unlock", mock.Anything, testUserID, "tester", domain.AchievementFirstExperiment).Return(false, nil)

	err := handler.HandleExperimentCompleted(context.Background(), experimentEvent(domain.ExperimentCompletedPayload{
		UserID:          testUserID,
		ConsumableCount: 2,
	}))

	assert.NoError(t, err)
	svc.AssertNotCalled(t, "Unlock", mock.Anything, testUserID, "tester", domain.AchievementTenExperiments)
}

func TestHandleExperimentCompleted_UnlockFailureDoesNotStopOthers(t *testing.T) {
	svc, profiles, counter, handler := handlerFixtures()
	expectUsername(profiles)
	counter.On("CountByUser", mock.Anything, testUserID).Return(3, nil)
	svc.On("Unlock", mock.Anything, testUserID, "tester", domain.AchievementFirstExperiment).
		Return(false, errors.New("db hiccup"))
	svc.On("Unlock", mock.Anything, testUserID, "tester", domain.AchievementPerfectSafety).Return(true, nil)

	err := handler.HandleExperimentCompleted(context.Background(), experimentEvent(domain.ExperimentCompletedPayload{
		UserID:          testUserID,
		ConsumableCount: 2,
		SafetyScore:     100,
	}))

	assert.NoError(t, err)
	svc.AssertCalled(t, "Unlock", mock.Anything, testUserID, "tester", domain.AchievementPerfectSafety)
}

func TestHandleExperimentCompleted_ProfileLookupFailureUsesEmptyUsername(t *testing.T) {
	svc, profiles, counter, handler := handlerFixtures()
	profiles.On("GetProfile", mock.Anything, testUserID).Return(nil, domain.ErrUserNotFound)
	counter.On("CountByUser", mock.Anything, testUserID).Return(1, nil)
	svc.On("Unlock", mock.Anything, testUserID, "", domain.AchievementFirstExperiment).Return(true, nil)

	err := handler.HandleExperimentCompleted(context.Background(), experimentEvent(domain.ExperimentCompletedPayload{
		UserID:          testUserID,
		ConsumableCount: 2,
	}))

	assert.NoError(t, err)
	svc.AssertExpectations(t)
}

func TestHandleExperimentCompleted_BadPayload(t *testing.T) {
	_, _, _, handler := handlerFixtures()

	err := handler.HandleExperimentCompleted(context.Background(), event.Event{
		Type:    event.ExperimentCompleted,
		Payload: make(chan int),
	})

	assert.Error(t, err)
}

func TestHandleLevelUp_LevelTen(t *testing.T) {
	svc, _, _, handler := handlerFixtures()
	svc.On("Unlock", mock.Anything, testUserID, "tester", domain.AchievementLevelTen).Return(true, nil)

	err := handler.HandleLevelUp(context.Background(), event.Event{
		Type: event.LevelUp,
		Payload: domain.LevelUpPayload{
			UserID:   testUserID,
			Username: "tester",
			OldLevel: 9,
			NewLevel: 10,
		},
	})

	assert.NoError(t, err)
	svc.AssertExpectations(t)
	svc.AssertNotCalled(t, "Unlock", mock.Anything, testUserID, "tester", domain.AchievementLevelTwenty)
}

func TestHandleLevelUp_LevelTwentyUnlocksBoth(t *testing.T) {
	svc, _, _, handler := handlerFixtures()
	svc.On("Unlock", mock.Anything, testUserID, "tester", mock.Anything).Return(true, nil)

	err := handler.HandleLevelUp(context.Background(), event.Event{
		Type: event.LevelUp,
		Payload: domain.LevelUpPayload{
			UserID:   testUserID,
			Username: "tester",
			OldLevel: 18,
			NewLevel: 20,
		},
	})

	assert.NoError(t, err)
	svc.AssertCalled(t, "Unlock", mock.Anything, testUserID, "tester", domain.AchievementLevelTen)
	svc.AssertCalled(t, "Unlock", mock.Anything, testUserID, "tester", domain.AchievementLevelTwenty)
}

func TestHandleLevelUp_BelowThresholds(t *testing.T) {
	svc, _, _, handler := handlerFixtures()

	err := handler.HandleLevelUp(context.Background(), event.Event{
		Type: event.LevelUp,
		Payload: domain.LevelUpPayload{
			UserID:   testUserID,
			Username: "tester",
			OldLevel: 4,
			NewLevel: 5,
		},
	})

	assert.NoError(t, err)
	svc.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister_SubscribesToBus(t *testing.T) {
	svc, profiles, counter, handler := handlerFixtures()
	expectUsername(profiles)
	counter.On("CountByUser", mock.Anything, testUserID).Return(1, nil)
	svc.On("Unlock", mock.Anything, testUserID, "tester", domain.AchievementFirstExperiment).Return(true, nil)

	bus := event.NewMemoryBus()
	handler.Register(bus)

	err := bus.Publish(context.Background(), experimentEvent(domain.ExperimentCompletedPayload{
		UserID:          testUserID,
		ConsumableCount: 2,
	}))

	assert.NoError(t, err)
	svc.AssertCalled(t, "Unlock", mock.Anything, testUserID, "tester", domain.AchievementFirstExperiment)
}
