package domain

// ExperimentCompletedPayload is the event payload for experiment.completed events
type ExperimentCompletedPayload struct {
	ExperimentID    string  `json:"experiment_id"`
	UserID          string  `json:"user_id"`
	ConsumableCount int     `json:"consumable_count"`
	SafetyScore     float64 `json:"safety_score"`
	NoveltyScore    float64 `json:"novelty_score"`
	OverallScore    float64 `json:"overall_score"`
	Success         bool    `json:"success"`
	XPAwarded       int     `json:"xp_awarded"`
	Timestamp       int64   `json:"timestamp"`
}

// XPAwardedPayload is the event payload for profile.xp_awarded events
type XPAwardedPayload struct {
	UserID    string `json:"user_id"`
	Amount    int    `json:"amount"`
	BonusXP   int    `json:"bonus_xp"`
	TotalXP   int    `json:"total_xp"`
	Source    string `json:"source"`
	Timestamp int64  `json:"timestamp"`
}

// LevelUpPayload is the event payload for profile.level_up events
type LevelUpPayload struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	OldLevel  int    `json:"old_level"`
	NewLevel  int    `json:"new_level"`
	Title     string `json:"title"`
	BonusXP   int    `json:"bonus_xp"`
	Timestamp int64  `json:"timestamp"`
}

// AchievementUnlockedPayload is the event payload for achievement.unlocked events
type AchievementUnlockedPayload struct {
	UserID         string `json:"user_id"`
	Username       string `json:"username"`
	AchievementKey string `json:"achievement_key"`
	Title          string `json:"title"`
	Rarity         string `json:"rarity"`
	Timestamp      int64  `json:"timestamp"`
}

// UserRegisteredPayload is the event payload for user.registered events
type UserRegisteredPayload struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Timestamp int64  `json:"timestamp"`
}

// SearchPerformedPayload is the event payload for catalog.search_performed events
type SearchPerformedPayload struct {
	Query       string `json:"query"`
	Category    string `json:"category,omitempty"`
	ResultCount int    `json:"result_count"`
	Timestamp   int64  `json:"timestamp"`
}
