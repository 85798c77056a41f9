package domain

import "time"

// Profile represents a user's cumulative alchemy progression
type Profile struct {
	UserID                string    `json:"user_id" db:"user_id"`
	Username              string    `json:"username" db:"username"`
	TotalXP               int       `json:"total_xp" db:"total_xp"`
	Level                 int       `json:"level" db:"level"`
	ExperimentsRun        int       `json:"experiments_run" db:"experiments_run"`
	SuccessfulExperiments int       `json:"successful_experiments" db:"successful_experiments"`
	UpdatedAt             time.Time `json:"updated_at" db:"updated_at"`
}

// LevelProgress describes where cumulative XP sits inside the current level
// band. Progress is an integer percentage in [0,100]; XPNeeded is 0 at max
// level (NextLevelXP carries the same 0 sentinel).
type LevelProgress struct {
	CurrentLevelXP int `json:"current_level_xp"`
	NextLevelXP    int `json:"next_level_xp"`
	Progress       int `json:"progress"`
	XPNeeded       int `json:"xp_needed"`
}

// LevelRewards describes the reward tier a level grants: a display title,
// a one-time bonus XP amount, and the feature unlocks for the tier.
type LevelRewards struct {
	Title   string   `json:"title"`
	BonusXP int      `json:"bonus_xp"`
	Unlocks []string `json:"unlocks"`
}

// XPAward summarizes the outcome of awarding XP to a profile.
type XPAward struct {
	UserID    string       `json:"user_id"`
	Amount    int          `json:"amount"`
	BonusXP   int          `json:"bonus_xp,omitempty"`
	TotalXP   int          `json:"total_xp"`
	OldLevel  int          `json:"old_level"`
	NewLevel  int          `json:"new_level"`
	LeveledUp bool         `json:"leveled_up"`
	Rewards   LevelRewards `json:"rewards"`
}

// LeaderboardEntry is one row of the XP leaderboard.
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	TotalXP  int    `json:"total_xp"`
	Level    int    `json:"level"`
}
