package domain

import "time"

// Achievement key constants - stable code identifiers
const (
	AchievementFirstExperiment = "first_experiment"
	AchievementTenExperiments  = "ten_experiments"
	AchievementFiveIngredients = "five_ingredients"
	AchievementPerfectSafety   = "perfect_safety"
	AchievementHighNovelty     = "high_novelty"
	AchievementLevelTen        = "level_ten"
	AchievementLevelTwenty     = "level_twenty"
)

// Achievement represents a badge definition users can unlock
type Achievement struct {
	Key         string `json:"key" db:"achievement_key"`
	Title       string `json:"title" db:"title"`
	Description string `json:"description" db:"description"`
	Rarity      Rarity `json:"rarity" db:"rarity"`
	SortOrder   int    `json:"sort_order" db:"sort_order"`
}

// UserAchievement represents an unlocked badge for a user
type UserAchievement struct {
	UserID         string    `json:"user_id" db:"user_id"`
	AchievementKey string    `json:"achievement_key" db:"achievement_key"`
	UnlockedAt     time.Time `json:"unlocked_at" db:"unlocked_at"`
}

// UnlockedAchievement is an achievement definition joined with its unlock time
type UnlockedAchievement struct {
	Achievement
	UnlockedAt time.Time `json:"unlocked_at"`
}
