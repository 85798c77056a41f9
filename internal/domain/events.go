package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking. These represent domain events that can be published
// and consumed by multiple modules.
//
// Event types follow the pattern: <entity>.<action> (e.g., "experiment.completed")
const (
	// EventTypeExperimentCompleted is published when an experiment finishes scoring
	EventTypeExperimentCompleted = "experiment.completed"

	// EventTypeXPAwarded is published when a profile receives XP from any source
	EventTypeXPAwarded = "profile.xp_awarded"

	// EventTypeLevelUp is published when an XP award raises a profile's level
	EventTypeLevelUp = "profile.level_up"

	// EventTypeAchievementUnlocked is published on the first unlock of a badge
	EventTypeAchievementUnlocked = "achievement.unlocked"

	// EventTypeUserRegistered is published when a new user registers
	EventTypeUserRegistered = "user.registered"

	// EventTypeSearchPerformed is published when a user searches the catalog
	EventTypeSearchPerformed = "catalog.search_performed"
)
