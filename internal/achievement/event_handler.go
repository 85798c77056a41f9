package achievement

import (
	"context"
	"fmt"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/event"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/logger"
)

// ExperimentCounter reports how many experiments a user has recorded
type ExperimentCounter interface {
	CountByUser(ctx context.Context, userID string) (int, error)
}

// ProfileGetter resolves profiles so unlock announcements carry a username
type ProfileGetter interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
}

// EventHandler evaluates unlock conditions against progression events
type EventHandler struct {
	service     Service
	profiles    ProfileGetter
	experiments ExperimentCounter
}

// NewEventHandler creates a new achievement event handler
func NewEventHandler(service Service, profiles ProfileGetter, experiments ExperimentCounter) *EventHandler {
	return &EventHandler{
		service:     service,
		profiles:    profiles,
		experiments: experiments,
	}
}

// Register subscribes the handler to the events that can unlock badges
func (h *EventHandler) Register(bus event.Bus) {
	bus.Subscribe(event.ExperimentCompleted, h.HandleExperimentCompleted)
	bus.Subscribe(event.LevelUp, h.HandleLevelUp)
}

// HandleExperimentCompleted evaluates the experiment-driven badges
func (h *EventHandler) HandleExperimentCompleted(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.ExperimentCompletedPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode experiment completed payload: %w", err)
	}

	username := h.lookupUsername(ctx, payload.UserID)

	h.tryUnlock(ctx, payload.UserID, username, domain.AchievementFirstExperiment)

	if payload.ConsumableCount >= FiveIngredientsCount {
		h.tryUnlock(ctx, payload.UserID, username, domain.AchievementFiveIngredients)
	}
	if payload.SafetyScore >= PerfectSafetyScore {
		h.tryUnlock(ctx, payload.UserID, username, domain.AchievementPerfectSafety)
	}
	if payload.NoveltyScore >= HighNoveltyScore {
		h.tryUnlock(ctx, payload.UserID, username, domain.AchievementHighNovelty)
	}

	h.checkExperimentCount(ctx, payload.UserID, username)

	return nil
}

// HandleLevelUp evaluates the level-driven badges
func (h *EventHandler) HandleLevelUp(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.LevelUpPayload](evt.Payload)
	if err != nil {
		return fmt.Errorf("failed to decode level up payload: %w", err)
	}

	if payload.NewLevel >= LevelTenThreshold {
		h.tryUnlock(ctx, payload.UserID, payload.Username, domain.AchievementLevelTen)
	}
	if payload.NewLevel >= LevelTwentyThreshold {
		h.tryUnlock(ctx, payload.UserID, payload.Username, domain.AchievementLevelTwenty)
	}

	return nil
}

// checkExperimentCount looks up the user's experiment total for the
// count-based badge. The triggering experiment is already persisted when
// its event fires, so the count includes it.
func (h *EventHandler) checkExperimentCount(ctx context.Context, userID, username string) {
	count, err := h.experiments.CountByUser(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to count experiments for achievement check",
			"user_id", userID, "error", err)
		return
	}

	if count >= TenExperimentsCount {
		h.tryUnlock(ctx, userID, username, domain.AchievementTenExperiments)
	}
}

// tryUnlock attempts an unlock and logs failures instead of propagating
// them; one badge failing must not stop the remaining checks.
func (h *EventHandler) tryUnlock(ctx context.Context, userID, username, key string) {
	if _, err := h.service.Unlock(ctx, userID, username, key); err != nil {
		logger.FromContext(ctx).Warn(LogMsgUnlockFailed,
			"user_id", userID, "achievement", key, "error", err)
	}
}

// lookupUsername resolves a username for announcement payloads, falling back
// to empty when the profile cannot be loaded
func (h *EventHandler) lookupUsername(ctx context.Context, userID string) string {
	if h.profiles == nil {
		return ""
	}
	profile, err := h.profiles.GetProfile(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Warn("Failed to resolve username for achievement",
			"user_id", userID, "error", err)
		return ""
	}
	return profile.Username
}
