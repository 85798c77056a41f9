package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"

	// User management error messages
	ErrMsgRegisterUserFailed    = "Failed to register user"
	ErrMsgGetProfileFailed      = "Failed to retrieve profile"
	ErrMsgGetProgressFailed     = "Failed to retrieve level progress"
	ErrMsgGetAchievementsFailed = "Failed to retrieve achievements"

	// Catalog error messages
	ErrMsgSearchFailed        = "Failed to perform search"
	ErrMsgGetConsumableFailed = "Failed to retrieve consumable"

	// Experiment error messages
	ErrMsgRunExperimentFailed   = "Failed to run experiment"
	ErrMsgListExperimentsFailed = "Failed to retrieve experiments"

	// Leaderboard and rewards error messages
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgGetRewardsFailed     = "Failed to retrieve level rewards"

	// Parameter validation error messages
	ErrMsgInvalidIntParam = "Invalid %s parameter"
	ErrMsgInvalidLimit    = "Invalid limit parameter"
	ErrMsgInvalidLevel    = "Invalid level parameter"
)
