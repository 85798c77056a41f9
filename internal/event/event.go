package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}

	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}

	return nil
}

// Common event types
const (
	ExperimentCompleted = Type(domain.EventTypeExperimentCompleted)
	XPAwarded           = Type(domain.EventTypeXPAwarded)
	LevelUp             = Type(domain.EventTypeLevelUp)
	AchievementUnlocked = Type(domain.EventTypeAchievementUnlocked)
	UserRegistered      = Type(domain.EventTypeUserRegistered)
	SearchPerformed     = Type(domain.EventTypeSearchPerformed)
)

// Type-safe event constructors

// NewExperimentCompletedEvent creates a new experiment completed event
func NewExperimentCompletedEvent(exp domain.Experiment) Event {
	payload := domain.ExperimentCompletedPayload{
		ExperimentID:    exp.ID,
		UserID:          exp.UserID,
		ConsumableCount: len(exp.Consumables),
		Success:         exp.Success,
		XPAwarded:       exp.XPAwarded,
		Timestamp:       time.Now().Unix(),
	}
	if result, ok := exp.PrimaryResult(); ok {
		payload.SafetyScore = result.SafetyScore
		payload.NoveltyScore = result.NoveltyScore
		payload.OverallScore = result.OverallScore
	}

	return Event{
		Version: EventSchemaVersion,
		Type:    ExperimentCompleted,
		Payload: payload,
		Metadata: map[string]interface{}{
			domain.MetadataKeyExperimentID: exp.ID,
		},
	}
}

// NewXPAwardedEvent creates a new XP awarded event
func NewXPAwardedEvent(userID string, amount, bonusXP, totalXP int, source string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    XPAwarded,
		Payload: domain.XPAwardedPayload{
			UserID:    userID,
			Amount:    amount,
			BonusXP:   bonusXP,
			TotalXP:   totalXP,
			Source:    source,
			Timestamp: time.Now().Unix(),
		},
		Metadata: map[string]interface{}{
			domain.MetadataKeySource: source,
		},
	}
}

// NewLevelUpEvent creates a new level up event
func NewLevelUpEvent(userID, username string, oldLevel, newLevel int, rewards domain.LevelRewards) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    LevelUp,
		Payload: domain.LevelUpPayload{
			UserID:    userID,
			Username:  username,
			OldLevel:  oldLevel,
			NewLevel:  newLevel,
			Title:     rewards.Title,
			BonusXP:   rewards.BonusXP,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewAchievementUnlockedEvent creates a new achievement unlocked event
func NewAchievementUnlockedEvent(userID, username string, achievement domain.Achievement) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AchievementUnlocked,
		Payload: domain.AchievementUnlockedPayload{
			UserID:         userID,
			Username:       username,
			AchievementKey: achievement.Key,
			Title:          achievement.Title,
			Rarity:         string(achievement.Rarity),
			Timestamp:      time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewUserRegisteredEvent creates a new user registered event
func NewUserRegisteredEvent(userID, username string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    UserRegistered,
		Payload: domain.UserRegisteredPayload{
			UserID:    userID,
			Username:  username,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewSearchPerformedEvent creates a new catalog search event
func NewSearchPerformedEvent(query, category string, resultCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SearchPerformed,
		Payload: domain.SearchPerformedPayload{
			Query:       query,
			Category:    category,
			ResultCount: resultCount,
			Timestamp:   time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers execute
// synchronously in subscription order; every handler runs even when an
// earlier one fails, and their errors are aggregated.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
