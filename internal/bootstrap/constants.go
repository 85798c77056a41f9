package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting alchemy lab"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventDefaultMaxRetries is the default number of retry attempts for failed event publishing
	EventDefaultMaxRetries = 5

	// EventDefaultRetryDelay is the default base delay between retry attempts (exponential backoff)
	EventDefaultRetryDelay = 2 * time.Second

	// EventDefaultDeadLetterPath is the default file path for dead-letter event logging
	EventDefaultDeadLetterPath = "data/dead_letter_events.jsonl"
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Catalog Sync Messages
// =============================================================================

const (
	// Catalog sync log messages
	LogMsgSyncingCatalog      = "Syncing consumable catalog from JSON config..."
	LogMsgCatalogSynced       = "Consumable catalog synced successfully"
	LogMsgSeedingAchievements = "Seeding achievement definitions..."
	LogMsgAchievementsSeeded  = "Achievement definitions seeded"

	// Catalog sync error messages
	ErrMsgFailedLoadCatalog      = "failed to load consumable catalog"
	ErrMsgInvalidCatalog         = "invalid consumable catalog"
	ErrMsgFailedSyncCatalog      = "failed to sync consumable catalog to database"
	ErrMsgFailedSeedAchievements = "failed to seed achievement definitions"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered   = "Metrics collector registered"
	LogMsgAchievementHandlerRegistered = "Achievement event handler registered"
	LogMsgAnnouncerRegistered          = "Discord announcer registered"
	LogMsgAnnouncerDisabled            = "Discord announcer disabled (no token configured)"
	ErrMsgFailedRegisterMetrics        = "failed to register metrics collector"
	ErrMsgFailedCreateAnnouncer        = "failed to create Discord announcer"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"

	// Service names for shutdown logging
	ServiceNameConsumable  = "consumable"
	ServiceNameProfile     = "profile"
	ServiceNameExperiment  = "experiment"
	ServiceNameAchievement = "achievement"
)

// Shutdown log message format (service name will be prepended)
const (
	LogMsgServiceShutdownFailed = " service shutdown failed"
)
