package bootstrap

import (
	"context"
	"log/slog"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/achievement"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/consumable"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/event"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/experiment"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/profile"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	ConsumableService  consumable.Service
	ProfileService     profile.Service
	ExperimentService  experiment.Service
	AchievementService achievement.Service
	ResilientPublisher *event.ResilientPublisher
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down services in the correct order:
// 1. HTTP server (stop accepting new requests)
// 2. Application services (complete in-flight operations)
// 3. Event publisher (flush pending events to ensure consistency)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	// Shutdown server first (stop accepting new requests)
	if err := components.Server.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}

	// Shutdown services (order doesn't matter, all run independently)
	shutdownService(ctx, ServiceNameExperiment, components.ExperimentService)
	shutdownService(ctx, ServiceNameConsumable, components.ConsumableService)
	shutdownService(ctx, ServiceNameProfile, components.ProfileService)
	shutdownService(ctx, ServiceNameAchievement, components.AchievementService)

	// Shutdown resilient publisher last to flush pending events
	slog.Info(LogMsgShuttingDownEventPublisher)
	if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
		slog.Error(LogMsgResilientPublisherFailed, "error", err)
	}

	slog.Info(LogMsgServerStopped)
}

type shutdownableService interface {
	Shutdown(context.Context) error
}

// shutdownService shuts down a service and logs any error without stopping
// the rest of the sequence.
func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
