package metrics

import (
	"context"
	"strconv"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/domain"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/event"
	"github.com/solventworks/ConsumableAlchemy_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	// Subscribe to all event types we care about
	eventTypes := []event.Type{
		event.ExperimentCompleted,
		event.XPAwarded,
		event.LevelUp,
		event.AchievementUnlocked,
		event.UserRegistered,
		event.SearchPerformed,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics. Payloads that fail to
// decode still count toward EventsPublished; the business metric is skipped.
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch evt.Type {
	case event.ExperimentCompleted:
		payload, err := event.DecodePayload[domain.ExperimentCompletedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecode, "type", evt.Type, "error", err)
			return nil
		}
		outcome := OutcomeFailure
		if payload.Success {
			outcome = OutcomeSuccess
		}
		ExperimentsRun.WithLabelValues(outcome).Inc()

	case event.XPAwarded:
		payload, err := event.DecodePayload[domain.XPAwardedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecode, "type", evt.Type, "error", err)
			return nil
		}
		XPAwarded.WithLabelValues(payload.Source).Add(float64(payload.Amount + payload.BonusXP))

	case event.LevelUp:
		payload, err := event.DecodePayload[domain.LevelUpPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecode, "type", evt.Type, "error", err)
			return nil
		}
		LevelUps.WithLabelValues(strconv.Itoa(payload.NewLevel)).Inc()

	case event.AchievementUnlocked:
		payload, err := event.DecodePayload[domain.AchievementUnlockedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgEventPayloadDecode, "type", evt.Type, "error", err)
			return nil
		}
		AchievementsUnlocked.WithLabelValues(payload.AchievementKey).Inc()

	case event.UserRegistered:
		UsersRegistered.Inc()

	case event.SearchPerformed:
		SearchesPerformed.Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}

// instrumentedBus decorates an event bus so deliveries with failing handlers
// show up in the event_handler_errors_total counter.
type instrumentedBus struct {
	inner event.Bus
}

// InstrumentBus wraps a bus with handler-error accounting.
func InstrumentBus(bus event.Bus) event.Bus {
	return &instrumentedBus{inner: bus}
}

func (b *instrumentedBus) Publish(ctx context.Context, evt event.Event) error {
	err := b.inner.Publish(ctx, evt)
	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
	}
	return err
}

func (b *instrumentedBus) Subscribe(eventType event.Type, handler event.Handler) {
	b.inner.Subscribe(eventType, handler)
}
