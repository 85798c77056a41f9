package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/achievement"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/config"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/event"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/metrics"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/notify"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/profile"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus           event.Bus
	AchievementService achievement.Service
	ProfileService     profile.Service
	ExperimentCounter  achievement.ExperimentCounter
	Config             *config.Config
}

// RegisterEventHandlers sets up all event handlers and subscribers.
// This includes:
// - Achievement handler (evaluates unlocks on experiment and level-up events)
// - Metrics collector (for event-based metrics)
// - Discord announcer (level-up and badge announcements, when configured)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	achievementHandler := achievement.NewEventHandler(deps.AchievementService, deps.ProfileService, deps.ExperimentCounter)
	achievementHandler.Register(deps.EventBus)
	slog.Info(LogMsgAchievementHandlerRegistered)

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	// The announcer is optional; without a token the lab runs silently
	if deps.Config.DiscordToken == "" {
		slog.Info(LogMsgAnnouncerDisabled)
		return nil
	}

	announcer, err := notify.NewAnnouncer(deps.Config.DiscordToken, deps.Config.DiscordChannelID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedCreateAnnouncer, err)
	}
	announcer.Register(deps.EventBus)
	slog.Info(LogMsgAnnouncerRegistered, "channel_id", deps.Config.DiscordChannelID)

	return nil
}
