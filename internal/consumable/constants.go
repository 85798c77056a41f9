package consumable

import "time"

// Cache defaults, used when config supplies no values
const (
	// DefaultCacheSize is the default maximum number of cached catalog entries
	DefaultCacheSize = 512

	// DefaultCacheTTL is the default time-to-live for cached entries
	DefaultCacheTTL = 5 * time.Minute
)

// Log message constants
const (
	LogMsgSearchPerformed   = "Catalog search performed"
	LogMsgConsumableFetched = "Consumable fetched"
	LogMsgShuttingDown      = "Consumable service shutting down..."
	LogMsgShutdownComplete  = "Consumable service shutdown complete"
	LogMsgCatalogSynced     = "Consumable catalog synced"
)

// Catalog loader error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"

	ErrMsgCatalogNil    = "catalog is nil"
	ErrMsgNoConsumables = "no consumables defined"
)

// Format strings used with fmt.Errorf for per-entry validation errors
const (
	ErrFmtEntryAtIndexEmpty      = "%w: entry at index %d has empty name"
	ErrFmtEntryBadCategory       = "%w: entry '%s' has unknown category '%s'"
	ErrFmtEntryBadRarity         = "%w: entry '%s' has unknown rarity '%s'"
	ErrFmtEntryNegativeNutrition = "%w: entry '%s' has negative nutrition values"
	ErrFmtEntryBadABV            = "%w: entry '%s' has alcohol_abv outside 0-100"
	ErrFmtUpsertFailed           = "failed to upsert consumable '%s': %w"
)
