package achievement

// Unlock condition thresholds
const (
	// TenExperimentsCount is the experiment total required for Lab Regular
	TenExperimentsCount = 10

	// FiveIngredientsCount is the combination size required for Master Mixer
	FiveIngredientsCount = 5

	// PerfectSafetyScore is the safety score required for Safety First
	PerfectSafetyScore = 100.0

	// HighNoveltyScore is the novelty score required for Mad Scientist
	HighNoveltyScore = 90.0

	// LevelTenThreshold is the level required for Seasoned Alchemist
	LevelTenThreshold = 10

	// LevelTwentyThreshold is the level required for Grand Master
	LevelTwentyThreshold = 20
)

// Log message constants
const (
	LogMsgAchievementUnlocked = "Achievement unlocked"
	LogMsgUnlockFailed        = "Failed to unlock achievement"
	LogMsgShuttingDown        = "Achievement service shutting down..."
	LogMsgShutdownComplete    = "Achievement service shutdown complete"
)
