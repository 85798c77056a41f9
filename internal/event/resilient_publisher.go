package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/solventworks/ConsumableAlchemy_Go/internal/logger"
)

// ResilientPublisher wraps an event bus with asynchronous retry logic and a
// dead-letter file for events that exhaust their retries. Callers are never
// blocked by a failing subscriber: the first publish attempt happens inline,
// failures are handed to a background worker that retries with exponential
// backoff.
type ResilientPublisher struct {
	bus        Bus
	retryQueue chan retryEntry
	maxRetries int
	retryDelay time.Duration
	deadLetter *DeadLetterWriter

	shutdown chan struct{}
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// retryEntry tracks an event waiting for its next publish attempt
type retryEntry struct {
	event   Event
	attempt int // 1-based number of the next retry attempt
}

// NewResilientPublisher creates a publisher around the given bus and starts
// its retry worker. maxRetries <= 0 falls back to RetryMaxAttempts;
// retryDelay is the delay before the first retry and doubles on each
// subsequent attempt.
func NewResilientPublisher(bus Bus, maxRetries int, retryDelay time.Duration, deadLetterPath string) (*ResilientPublisher, error) {
	if maxRetries <= 0 {
		maxRetries = RetryMaxAttempts
	}

	dlw, err := NewDeadLetterWriter(deadLetterPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dead-letter file: %w", err)
	}

	p := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, RetryQueueBufferSize),
		maxRetries: maxRetries,
		retryDelay: retryDelay,
		deadLetter: dlw,
		shutdown:   make(chan struct{}),
	}

	p.wg.Add(1)
	go p.retryWorker()

	return p, nil
}

// PublishWithRetry attempts to publish an event, queueing it for background
// retry on failure. The caller is decoupled from the retry mechanism: this
// never returns an error and never blocks beyond the first attempt.
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, event Event) {
	err := p.bus.Publish(ctx, event)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"max_retries", p.maxRetries)

	p.enqueue(retryEntry{event: event, attempt: 1})
}

// Subscribe delegates to the wrapped bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.bus.Subscribe(eventType, handler)
}

// Shutdown stops the retry worker, draining any queued events with a final
// publish attempt each. Returns ctx.Err() when the context expires before the
// drain completes.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return p.deadLetter.Close()
	case <-ctx.Done():
		logger.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

// enqueue adds an entry to the retry queue, spilling to the dead-letter file
// when the queue is full rather than blocking the caller.
func (p *ResilientPublisher) enqueue(entry retryEntry) {
	select {
	case p.retryQueue <- entry:
	default:
		logger.Warn(LogMsgRetryQueueFull, "event_type", entry.event.Type)
		p.writeDeadLetter(entry.event, entry.attempt, fmt.Errorf("retry queue full"))
	}
}

// retryWorker processes the retry queue until shutdown, then drains what
// remains so no queued event is silently dropped.
func (p *ResilientPublisher) retryWorker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.shutdown:
			p.drain()
			return
		case entry := <-p.retryQueue:
			p.process(entry)
		}
	}
}

// process waits out the backoff delay for an entry and attempts to publish.
// Failed attempts requeue with an incremented attempt count until maxRetries,
// then land in the dead-letter file. A shutdown signal cuts the wait short so
// the final attempt happens promptly.
func (p *ResilientPublisher) process(entry retryEntry) {
	timer := time.NewTimer(CalculateRetryDelay(p.retryDelay, entry.attempt))
	select {
	case <-timer.C:
	case <-p.shutdown:
		timer.Stop()
	}

	err := p.bus.Publish(context.Background(), entry.event)
	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded,
			"event_type", entry.event.Type,
			"attempt", entry.attempt)
		return
	}

	if entry.attempt >= p.maxRetries {
		logger.Warn(LogMsgEventRetryExhausted,
			"event_type", entry.event.Type,
			"attempts", entry.attempt,
			"error", err)
		p.writeDeadLetter(entry.event, entry.attempt, err)
		return
	}

	logger.Warn(LogMsgEventRetryFailed,
		"event_type", entry.event.Type,
		"attempt", entry.attempt,
		"error", err)
	p.enqueue(retryEntry{event: entry.event, attempt: entry.attempt + 1})
}

// drain gives every queued entry one final immediate attempt, dead-lettering
// whatever still fails.
func (p *ResilientPublisher) drain() {
	drained := 0
	for {
		select {
		case entry := <-p.retryQueue:
			drained++
			if err := p.bus.Publish(context.Background(), entry.event); err != nil {
				p.writeDeadLetter(entry.event, entry.attempt, err)
			}
		default:
			if drained > 0 {
				logger.Info(LogMsgQueueDrainedShutdown, "count", drained)
			}
			return
		}
	}
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error) {
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "error", err, "event_type", event.Type)
	}
}
