// Package schedule runs fire-and-forget background tasks with bulk
// cancellation. Business logic submits a delayed closure and gets back a
// handle; CancelAll stops every outstanding timer and cancels the context of
// every running task, so a stale task cannot mutate state created after a
// reset.
package schedule

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is a unit of background work. Errors are logged and dropped; tasks
// are best-effort by design.
type Task func(ctx context.Context) error

// Scheduler is the contract business logic depends on, so tests can swap in
// Manual and avoid wall-clock waits.
type Scheduler interface {
	// AfterFunc runs the task after d (immediately when d <= 0) on its own
	// goroutine. The name identifies the task in logs.
	AfterFunc(d time.Duration, name string, task Task) Handle
	// CancelAll stops pending timers and cancels running tasks.
	CancelAll()
}

// Handle cancels one scheduled task. Cancelling an already-finished task is
// a no-op.
type Handle interface {
	Cancel()
}

// TimerScheduler is the production Scheduler, backed by time.AfterFunc with a
// registry of outstanding work.
type TimerScheduler struct {
	logger *slog.Logger

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	nextID  uint64
	pending map[uint64]*timerHandle
}

func NewTimerScheduler(logger *slog.Logger) *TimerScheduler {
	if logger == nil {
		logger = slog.Default()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &TimerScheduler{
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		pending: make(map[uint64]*timerHandle),
	}
}

type timerHandle struct {
	s     *TimerScheduler
	id    uint64
	timer *time.Timer
}

func (h *timerHandle) Cancel() {
	h.s.mu.Lock()
	defer h.s.mu.Unlock()
	if h.timer != nil {
		h.timer.Stop()
	}
	delete(h.s.pending, h.id)
}

func (s *TimerScheduler) AfterFunc(d time.Duration, name string, task Task) Handle {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	taskCtx := s.ctx
	handle := &timerHandle{s: s, id: id}
	s.pending[id] = handle

	run := func() {
		s.mu.Lock()
		delete(s.pending, id)
		s.mu.Unlock()
		s.run(taskCtx, name, task)
	}
	handle.timer = time.AfterFunc(maxDuration(d, 0), run)
	s.mu.Unlock()

	return handle
}

// CancelAll stops every pending timer and cancels the context shared by
// running tasks. The scheduler stays usable: tasks submitted afterwards get a
// fresh context. Idempotent and safe to call with tasks in flight.
func (s *TimerScheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, handle := range s.pending {
		if handle.timer != nil {
			handle.timer.Stop()
		}
		delete(s.pending, id)
	}
	s.cancel()
	s.ctx, s.cancel = context.WithCancel(context.Background())
}

func (s *TimerScheduler) run(ctx context.Context, name string, task Task) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled task panicked", "task", name, "panic", r)
		}
	}()
	if err := ctx.Err(); err != nil {
		return
	}
	if err := task(ctx); err != nil {
		s.logger.Error("scheduled task failed", "task", name, "error", err.Error())
	}
}

func maxDuration(a, b time.Duration) time.Duration {
	if a > b {
		return a
	}
	return b
}
