package profile

// Username bounds enforced at registration, after trimming whitespace
const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
)

// Log message constants
const (
	LogMsgUserRegistered   = "User registered"
	LogMsgXPAwarded        = "XP awarded"
	LogMsgLevelUp          = "Level up"
	LogMsgShuttingDown     = "Profile service shutting down..."
	LogMsgShutdownComplete = "Profile service shutdown complete"
)
