package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/achievement"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/config"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/consumable"
)

// SyncCatalog loads, validates, and syncs the consumable catalog to the database.
// It handles the complete lifecycle: load JSON → validate → sync to DB → log results.
// Entries are upserted by name, so re-running against an unchanged file is a no-op
// in effect.
func SyncCatalog(ctx context.Context, repo consumable.Repository) error {
	slog.Info(LogMsgSyncingCatalog)
	catalogLoader := consumable.NewCatalogLoader()

	catalog, err := catalogLoader.Load(config.ConfigPathConsumables)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	if err := catalogLoader.Validate(catalog); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidCatalog, err)
	}

	syncResult, err := catalogLoader.SyncToDatabase(ctx, catalog, repo)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSyncCatalog, err)
	}

	slog.Info(LogMsgCatalogSynced,
		"version", catalog.Version,
		"synced", syncResult.ConsumablesSynced)

	return nil
}

// SeedAchievements writes the static badge definitions into the database so
// unlock rows can be joined against titles and rarities.
func SeedAchievements(ctx context.Context, svc achievement.Service) error {
	slog.Info(LogMsgSeedingAchievements)

	if err := svc.SeedDefinitions(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSeedAchievements, err)
	}

	slog.Info(LogMsgAchievementsSeeded, "definitions", len(achievement.Definitions()))
	return nil
}
