package schedule

import (
	"context"
	"sync"
	"time"
)

// Manual is a Scheduler for tests: tasks don't run until Fire is called, so
// no test waits on wall-clock timers.
type Manual struct {
	mu       sync.Mutex
	ctx      context.Context
	cancel   context.CancelFunc
	pending  []*manualTask
	canceled int
}

type manualTask struct {
	name     string
	task     Task
	canceled bool
}

func NewManual() *Manual {
	ctx, cancel := context.WithCancel(context.Background())
	return &Manual{ctx: ctx, cancel: cancel}
}

func (m *Manual) AfterFunc(_ time.Duration, name string, task Task) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()
	mt := &manualTask{name: name, task: task}
	m.pending = append(m.pending, mt)
	return manualHandle{m: m, task: mt}
}

type manualHandle struct {
	m    *Manual
	task *manualTask
}

func (h manualHandle) Cancel() {
	h.m.mu.Lock()
	defer h.m.mu.Unlock()
	h.task.canceled = true
}

// Fire synchronously runs every pending task in submission order and returns
// how many ran. Task errors are returned to the caller so tests can assert
// on them.
func (m *Manual) Fire() (int, []error) {
	m.mu.Lock()
	tasks := m.pending
	ctx := m.ctx
	m.pending = nil
	m.mu.Unlock()

	ran := 0
	var errs []error
	for _, mt := range tasks {
		if mt.canceled {
			continue
		}
		ran++
		if err := mt.task(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return ran, errs
}

// Pending returns the number of tasks waiting to fire.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, mt := range m.pending {
		if !mt.canceled {
			n++
		}
	}
	return n
}

func (m *Manual) CancelAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.canceled += len(m.pending)
	m.pending = nil
	m.cancel()
	m.ctx, m.cancel = context.WithCancel(context.Background())
}
