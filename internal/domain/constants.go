package domain

// Level bounds for the alchemy progression curve
const (
	MinLevel = 1
	MaxLevel = 20
)

// Experiment combination size bounds
const (
	MinCombinationSize = 2
	MaxCombinationSize = 8
)

// Catalog search limits
const (
	DefaultSearchLimit = 20
	MaxSearchLimit     = 100
)

// Leaderboard limits
const (
	DefaultLeaderboardLimit = 10
	MaxLeaderboardLimit     = 100
)

// Shared metadata keys used across multiple modules for event payloads
// These keys ensure consistency when publishing and consuming events
const (
	// MetadataKeyExperimentID is used to store experiment IDs in event metadata
	MetadataKeyExperimentID = "experiment_id"

	// MetadataKeySource is used to store the source/origin in event metadata
	MetadataKeySource = "source"
)

// XP award source constants, recorded on profile.xp_awarded events
const (
	XPSourceExperiment = "experiment"
	XPSourceMilestone  = "milestone"
)
