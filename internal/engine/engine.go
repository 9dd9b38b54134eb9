// Package engine composes the simulation engine: store, dispatcher,
// scheduler, lifecycle service, and outcome processor behind one explicitly
// constructed instance. Nothing here is a package-level singleton; callers
// inject the engine wherever it is needed, which keeps ClearAll testable
// per instance.
package engine

import (
	"context"
	"log/slog"
	"time"

	"veristub/internal/inquiry"
	"veristub/internal/platform/metrics"
	"veristub/internal/schedule"
	"veristub/internal/simulator"
	"veristub/internal/webhook"
)

// Stats reports the engine's record and registration counts.
type Stats struct {
	Inquiries     int `json:"inquiries"`
	Verifications int `json:"verifications"`
	Callbacks     int `json:"callbacks"`
}

// Engine is the public surface consumed by transports and orchestration.
type Engine struct {
	Inquiries *inquiry.Service
	Simulator *simulator.Processor

	store      inquiry.Store
	dispatcher *webhook.Dispatcher
	scheduler  schedule.Scheduler
	logger     *slog.Logger
}

// Config carries construction-time knobs.
type Config struct {
	Environment string

	// AutoDecisionDelay is applied as-is; zero means automatic decisions
	// land without the simulated latency (useful in tests).
	AutoDecisionDelay time.Duration

	Metrics *metrics.Metrics
	Logger  *slog.Logger

	// Scheduler overrides the timer-backed default; tests inject
	// schedule.NewManual() to control when background work fires.
	Scheduler schedule.Scheduler
}

// New wires an engine from in-memory components.
func New(cfg Config) *Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	scheduler := cfg.Scheduler
	if scheduler == nil {
		scheduler = schedule.NewTimerScheduler(logger)
	}

	store := inquiry.NewInMemoryStore()
	dispatcher := webhook.NewDispatcher(logger, cfg.Metrics)

	opts := []inquiry.Option{
		inquiry.WithMetrics(cfg.Metrics),
		inquiry.WithDecisionDelay(cfg.AutoDecisionDelay),
	}
	if cfg.Environment != "" {
		opts = append(opts, inquiry.WithEnvironment(cfg.Environment))
	}
	service := inquiry.NewService(store, dispatcher, logger, opts...)
	processor := simulator.NewProcessor(service, scheduler, logger, cfg.Metrics)

	return &Engine{
		Inquiries:  service,
		Simulator:  processor,
		store:      store,
		dispatcher: dispatcher,
		scheduler:  scheduler,
		logger:     logger,
	}
}

// RegisterWebhook adds a named callback; an existing name is overwritten.
func (e *Engine) RegisterWebhook(name string, fn webhook.Callback) {
	e.dispatcher.Register(name, fn)
}

// UnregisterWebhook removes a named callback if present.
func (e *Engine) UnregisterWebhook(name string) {
	e.dispatcher.Unregister(name)
}

// Dispatcher exposes the webhook dispatcher for adapters that register
// themselves.
func (e *Engine) Dispatcher() *webhook.Dispatcher {
	return e.dispatcher
}

// ClearAll resets the engine: outstanding background work is cancelled
// first so a stale task cannot mutate state created after the reset, then
// the store and the callback registry are emptied. Idempotent.
func (e *Engine) ClearAll(ctx context.Context) {
	e.scheduler.CancelAll()
	if err := e.store.Clear(ctx); err != nil {
		e.logger.ErrorContext(ctx, "store clear failed", "error", err.Error())
	}
	e.dispatcher.Clear()
	e.logger.InfoContext(ctx, "engine state cleared")
}

// Stats reports current record and callback counts.
func (e *Engine) Stats(ctx context.Context) Stats {
	return Stats{
		Inquiries:     e.store.CountInquiries(ctx),
		Verifications: e.store.CountVerifications(ctx),
		Callbacks:     e.dispatcher.Count(),
	}
}
