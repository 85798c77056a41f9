package profile

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Profile), args.Error(1)
}

func (m *MockRepository) AddXP(ctx context.Context, userID string, amount int) (int, error) {
	args := m.Called(ctx, userID, amount)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) SetLevel(ctx context.Context, userID string, level int) error {
	args := m.Called(ctx, userID, level)
	return args.Error(0)
}

func (m *MockRepository) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

const testUserID = "550e8400-e29b-41d4-a716-446655440000"

func profileWith(level, totalXP int) *domain.Profile {
	return &domain.Profile{
		UserID:   testUserID,
		Username: "tester",
		TotalXP:  totalXP,
		Level:    level,
	}
}

func TestRegister_Success(t *testing.T) {
	repo := new(MockRepository)
	users := new(MockUserRepository)
	svc := NewService(repo, users, nil)

	users.On("CreateUser", mock.Anything, "alchemist").
		Return(&domain.User{ID: testUserID, Username: "alchemist"}, nil)

	user, err := svc.Register(context.Background(), "  alchemist  ")

	assert.NoError(t, err)
	assert.Equal(t, "alchemist", user.Username)
	users.AssertExpectations(t)
}

func TestRegister_InvalidUsername(t *testing.T) {
	tests := []struct {
		name     string
		username string
	}{
		{"too short", "ab"},
		{"too long", strings.Repeat("x", MaxUsernameLength+1)},
		{"whitespace only", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := new(MockUserRepository)
			svc := NewService(new(MockRepository), users, nil)

			_, err := svc.Register(context.Background(), tt.username)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
		})
	}
}

func TestRegister_UsernameTaken(t *testing.T) {
	users := new(MockUserRepository)
	svc := NewService(new(MockRepository), users, nil)

	users.On("CreateUser", mock.Anything, "alchemist").Return(nil, domain.ErrUsernameTaken)

	_, err := svc.Register(context.Background(), "alchemist")

	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestAwardXP_NegativeAmount(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockUserRepository), nil)

	_, err := svc.AwardXP(context.Background(), testUserID, -5, domain.XPSourceExperiment)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "AddXP", mock.Anything, mock.Anything, mock.Anything)
}

func TestAwardXP_NoLevelUp(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockUserRepository), nil)

	repo.On("GetProfile", mock.Anything, testUserID).Return(profileWith(1, 0), nil)
	repo.On("AddXP", mock.Anything, testUserID, 50).Return(50, nil)

	award, err := svc.AwardXP(context.Background(), testUserID, 50, domain.XPSourceExperiment)

	assert.NoError(t, err)
	assert.Equal(t, 50, award.Amount)
	assert.Equal(t, 0, award.BonusXP)
	assert.Equal(t, 50, award.TotalXP)
	assert.Equal(t, 1, award.OldLevel)
	assert.Equal(t, 1, award.NewLevel)
	assert.False(t, award.LeveledUp)
	assert.Equal(t, "Novice Alchemist", award.Rewards.Title)
	repo.AssertNotCalled(t, "SetLevel", mock.Anything, mock.Anything, mock.Anything)
}

func TestAwardXP_LevelUpWithoutBreakpoint(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockUserRepository), nil)

	repo.On("GetProfile", mock.Anything, testUserID).Return(profileWith(1, 0), nil)
	repo.On("AddXP", mock.Anything, testUserID, 150).Return(150, nil)
	repo.On("SetLevel", mock.Anything, testUserID, 2).Return(nil)

	award, err := svc.AwardXP(context.Background(), testUserID, 150, domain.XPSourceExperiment)

	assert.NoError(t, err)
	assert.True(t, award.LeveledUp)
	assert.Equal(t, 2, award.NewLevel)
	assert.Equal(t, 0, award.BonusXP)
	repo.AssertExpectations(t)
	// Level 2 is not a reward breakpoint, so XP is only added once
	repo.AssertNumberOfCalls(t, "AddXP", 1)
}

func TestAwardXP_BreakpointGrantsBonusOnce(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockUserRepository), nil)

	repo.On("GetProfile", mock.Anything, testUserID).Return(profileWith(4, 680), nil)
	repo.On("AddXP", mock.Anything, testUserID, 20).Return(700, nil).Once()
	repo.On("AddXP", mock.Anything, testUserID, 50).Return(750, nil).Once()
	repo.On("SetLevel", mock.Anything, testUserID, 5).Return(nil)

	award, err := svc.AwardXP(context.Background(), testUserID, 20, domain.XPSourceExperiment)

	assert.NoError(t, err)
	assert.Equal(t, 50, award.BonusXP)
	assert.Equal(t, 750, award.TotalXP)
	assert.Equal(t, 5, award.NewLevel)
	assert.True(t, award.LeveledUp)
	assert.Equal(t, "Apprentice Alchemist", award.Rewards.Title)
	repo.AssertExpectations(t)
}

func TestAwardXP_MultipleBreakpointsSumEachOnce(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockUserRepository), nil)

	// From level 4 to level 10 crosses the Apprentice (50) and Journeyman
	// (100) breakpoints in a single award
	repo.On("GetProfile", mock.Anything, testUserID).Return(profileWith(4, 690), nil)
	repo.On("AddXP", mock.Anything, testUserID, 2100).Return(2790, nil).Once()
	repo.On("AddXP", mock.Anything, testUserID, 150).Return(2940, nil).Once()
	repo.On("SetLevel", mock.Anything, testUserID, 10).Return(nil)

	award, err := svc.AwardXP(context.Background(), testUserID, 2100, domain.XPSourceExperiment)

	assert.NoError(t, err)
	assert.Equal(t, 150, award.BonusXP)
	assert.Equal(t, 10, award.NewLevel)
	assert.Equal(t, "Journeyman Alchemist", award.Rewards.Title)
	repo.AssertExpectations(t)
}

func TestAwardXP_UserNotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockUserRepository), nil)

	repo.On("GetProfile", mock.Anything, testUserID).Return(nil, domain.ErrUserNotFound)

	_, err := svc.AwardXP(context.Background(), testUserID, 10, domain.XPSourceExperiment)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAwardXP_ZeroAmountStillRecorded(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockUserRepository), nil)

	repo.On("GetProfile", mock.Anything, testUserID).Return(profileWith(3, 300), nil)
	repo.On("AddXP", mock.Anything, testUserID, 0).Return(300, nil)

	award, err := svc.AwardXP(context.Background(), testUserID, 0, domain.XPSourceExperiment)

	assert.NoError(t, err)
	assert.Equal(t, 0, award.Amount)
	assert.Equal(t, 300, award.TotalXP)
	assert.False(t, award.LeveledUp)
}

func TestGetLevelProgress_DerivesLevelFromXP(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockUserRepository), nil)

	// Stored level lags behind the XP-derived level
	repo.On("GetProfile", mock.Anything, testUserID).Return(profileWith(1, 150), nil)

	progress, err := svc.GetLevelProgress(context.Background(), testUserID)

	assert.NoError(t, err)
	assert.Equal(t, 100, progress.CurrentLevelXP)
	assert.Equal(t, 250, progress.NextLevelXP)
	assert.Equal(t, 33, progress.Progress)
	assert.Equal(t, 100, progress.XPNeeded)
}

func TestGetLevelProgress_AtLevelCap(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockUserRepository), nil)

	repo.On("GetProfile", mock.Anything, testUserID).Return(profileWith(20, 999999), nil)

	progress, err := svc.GetLevelProgress(context.Background(), testUserID)

	assert.NoError(t, err)
	assert.Equal(t, 0, progress.NextLevelXP)
	assert.Equal(t, 100, progress.Progress)
	assert.Equal(t, 0, progress.XPNeeded)
}

func TestGetLevelProgress_UserNotFound(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockUserRepository), nil)

	repo.On("GetProfile", mock.Anything, testUserID).Return(nil, domain.ErrUserNotFound)

	_, err := svc.GetLevelProgress(context.Background(), testUserID)

	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLeaderboard_LimitClamping(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero gets default", 0, domain.DefaultLeaderboardLimit},
		{"oversized gets max", 500, domain.MaxLeaderboardLimit},
		{"in range passes through", 25, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockRepository)
			svc := NewService(repo, new(MockUserRepository), nil)

			repo.On("Leaderboard", mock.Anything, tt.wantLimit).
				Return([]domain.LeaderboardEntry{}, nil)

			_, err := svc.Leaderboard(context.Background(), tt.limit)

			assert.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestLeaderboard_RepoError(t *testing.T) {
	repo := new(MockRepository)
	svc := NewService(repo, new(MockUserRepository), nil)

	repo.On("Leaderboard", mock.Anything, domain.DefaultLeaderboardLimit).
		Return(nil, errors.New("db down"))

	_, err := svc.Leaderboard(context.Background(), 0)

	assert.Error(t, err)
}
