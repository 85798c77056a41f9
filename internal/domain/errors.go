package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound  = "user not found"
	ErrMsgUsernameTaken = "username already taken"

	// Consumable errors
	ErrMsgConsumableNotFound = "consumable not found"
	ErrMsgInvalidCategory    = "invalid category"

	// Experiment errors
	ErrMsgNotEnoughConsumables = "not enough consumables for an experiment"
	ErrMsgTooManyConsumables   = "too many consumables for an experiment"
	ErrMsgDuplicateConsumable  = "duplicate consumable in combination"
	ErrMsgExperimentNotFound   = "experiment not found"

	// Achievement errors
	ErrMsgAchievementNotFound = "achievement not found"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken = errors.New(ErrMsgUsernameTaken)

	// Consumable errors
	ErrConsumableNotFound = errors.New(ErrMsgConsumableNotFound)
	ErrInvalidCategory    = errors.New(ErrMsgInvalidCategory)

	// Experiment errors
	ErrNotEnoughConsumables = errors.New(ErrMsgNotEnoughConsumables)
	ErrTooManyConsumables   = errors.New(ErrMsgTooManyConsumables)
	ErrDuplicateConsumable  = errors.New(ErrMsgDuplicateConsumable)
	ErrExperimentNotFound   = errors.New(ErrMsgExperimentNotFound)

	// Achievement errors
	ErrAchievementNotFound = errors.New(ErrMsgAchievementNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
