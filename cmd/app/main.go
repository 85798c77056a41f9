package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/achievement"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/bootstrap"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/config"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/consumable"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/database"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/experiment"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/profile"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/server"
)

// ShutdownTimeout bounds how long graceful shutdown may take before
// in-flight work is abandoned
const ShutdownTimeout = 15 * time.Second

// @title Consumable Alchemy API
// @version 1.0
// @description Gamified consumable experimentation: catalog search, simulated experiments, XP, levels, and achievements.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Logger setup failed", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		slog.Warn(warning)
	}

	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Event system initialization failed", "error", err)
		os.Exit(1)
	}

	repos := bootstrap.InitializeRepositories(dbPool)

	consumableService := consumable.NewService(repos.Consumable, resilientPublisher, cfg.CacheSize, cfg.CacheTTL)
	profileService := profile.NewService(repos.Profile, repos.User, resilientPublisher)
	experimentService := experiment.NewService(repos.Experiment, consumableService, profileService, resilientPublisher)
	achievementService := achievement.NewService(repos.Achievement, resilientPublisher)

	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:           eventBus,
		AchievementService: achievementService,
		ProfileService:     profileService,
		ExperimentCounter:  repos.Experiment,
		Config:             cfg,
	}); err != nil {
		slog.Error("Event handler registration failed", "error", err)
		os.Exit(1)
	}

	// Startup sync keeps the catalog and badge definitions current even when
	// cmd/setup has not been re-run after a config change
	startupCtx := context.Background()
	if err := bootstrap.SyncCatalog(startupCtx, repos.Consumable); err != nil {
		slog.Error("Catalog sync failed", "error", err)
		os.Exit(1)
	}
	if err := bootstrap.SeedAchievements(startupCtx, achievementService); err != nil {
		slog.Error("Achievement seeding failed", "error", err)
		os.Exit(1)
	}

	srv := server.NewServer(
		cfg.Port,
		cfg.APIKey,
		cfg.TrustedProxies,
		cfg.ServiceName,
		dbPool,
		consumableService,
		profileService,
		experimentService,
		achievementService,
	)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ConsumableService:  consumableService,
		ProfileService:     profileService,
		ExperimentService:  experimentService,
		AchievementService: achievementService,
		ResilientPublisher: resilientPublisher,
	})
}
