package webhook

import (
	"context"
	"log/slog"
	"sync"

	"veristub/internal/platform/metrics"
	"veristub/pkg/domain"
	"veristub/pkg/requestcontext"
)

// Callback receives every emitted event. Returning an error (or panicking)
// is logged and isolated; it never reaches the emitter.
type Callback func(ctx context.Context, event Event) error

type registration struct {
	name string
	fn   Callback
}

// Dispatcher delivers events to every registered callback in registration
// order, sequentially, so consumer side effects are observably ordered.
//
// Emit never fails: it is called from inside state-mutating operations, and a
// consumer bug must not corrupt an otherwise successful transition.
type Dispatcher struct {
	mu        sync.RWMutex
	callbacks []registration

	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewDispatcher(logger *slog.Logger, m *metrics.Metrics) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{logger: logger, metrics: m}
}

// Register adds a callback under a name. Registering an existing name
// overwrites the callback but keeps its original delivery position.
func (d *Dispatcher) Register(name string, fn Callback) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.callbacks {
		if d.callbacks[i].name == name {
			d.callbacks[i].fn = fn
			return
		}
	}
	d.callbacks = append(d.callbacks, registration{name: name, fn: fn})
}

// Unregister removes a callback if present; no-op if absent.
func (d *Dispatcher) Unregister(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.callbacks {
		if d.callbacks[i].name == name {
			d.callbacks = append(d.callbacks[:i], d.callbacks[i+1:]...)
			return
		}
	}
}

// Count returns the number of registered callbacks.
func (d *Dispatcher) Count() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.callbacks)
}

// Clear removes all registrations. Used on bulk reset.
func (d *Dispatcher) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.callbacks = nil
}

// Emit constructs an event around the payload and delivers it to every
// registered callback in order, awaiting each in turn. Callback failures are
// logged with the callback identity and event type, then dropped.
func (d *Dispatcher) Emit(ctx context.Context, eventType EventType, payload Payload) Event {
	event := Event{
		ID:        domain.NewEventID(),
		Type:      eventType,
		CreatedAt: requestcontext.Now(ctx),
		Data:      payload,
	}

	d.mu.RLock()
	targets := make([]registration, len(d.callbacks))
	copy(targets, d.callbacks)
	d.mu.RUnlock()

	start := requestcontext.Now(ctx)
	for _, target := range targets {
		d.deliver(ctx, target, event)
	}
	d.metrics.ObserveWebhookLatency(requestcontext.Now(ctx).Sub(start))

	return event
}

func (d *Dispatcher) deliver(ctx context.Context, target registration, event Event) {
	defer func() {
		if r := recover(); r != nil {
			d.metrics.IncrementWebhookDelivery(string(event.Type), "error")
			d.logger.ErrorContext(ctx, "webhook callback panicked",
				"callback", target.name,
				"event_type", event.Type,
				"event_id", event.ID,
				"panic", r,
			)
		}
	}()

	if err := target.fn(ctx, event); err != nil {
		d.metrics.IncrementWebhookDelivery(string(event.Type), "error")
		d.logger.ErrorContext(ctx, "webhook callback failed",
			"callback", target.name,
			"event_type", event.Type,
			"event_id", event.ID,
			"error", err.Error(),
		)
		return
	}
	d.metrics.IncrementWebhookDelivery(string(event.Type), "ok")
}
