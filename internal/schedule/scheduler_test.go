package schedule

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTimerScheduler() *TimerScheduler {
	return NewTimerScheduler(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestTimerSchedulerRunsTask(t *testing.T) {
	s := newTestTimerScheduler()
	done := make(chan struct{})

	s.AfterFunc(0, "immediate", func(context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task never ran")
	}
}

func TestTimerSchedulerCancelStopsPendingTask(t *testing.T) {
	s := newTestTimerScheduler()
	var ran atomic.Bool

	handle := s.AfterFunc(time.Hour, "far-future", func(context.Context) error {
		ran.Store(true)
		return nil
	})
	handle.Cancel()

	time.Sleep(50 * time.Millisecond)
	assert.False(t, ran.Load())

	// Cancelling twice is a no-op.
	handle.Cancel()
}

func TestTimerSchedulerCancelAll(t *testing.T) {
	s := newTestTimerScheduler()
	var ran atomic.Int32

	for i := 0; i < 3; i++ {
		s.AfterFunc(time.Hour, "pending", func(context.Context) error {
			ran.Add(1)
			return nil
		})
	}
	s.CancelAll()

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, ran.Load())

	// The scheduler stays usable after a reset.
	done := make(chan struct{})
	s.AfterFunc(0, "after-reset", func(ctx context.Context) error {
		require.NoError(t, ctx.Err(), "fresh task must get a live context")
		close(done)
		return nil
	})
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task submitted after CancelAll never ran")
	}
}

func TestTimerSchedulerCancelAllAbortsRunningTask(t *testing.T) {
	s := newTestTimerScheduler()
	started := make(chan struct{})
	aborted := make(chan struct{})

	s.AfterFunc(0, "long-running", func(ctx context.Context) error {
		close(started)
		select {
		case <-ctx.Done():
			close(aborted)
		case <-time.After(5 * time.Second):
		}
		return nil
	})

	<-started
	s.CancelAll()

	select {
	case <-aborted:
	case <-time.After(2 * time.Second):
		t.Fatal("running task did not observe cancellation")
	}
}

func TestTimerSchedulerSurvivesPanicAndError(t *testing.T) {
	s := newTestTimerScheduler()
	done := make(chan struct{})

	s.AfterFunc(0, "panicky", func(context.Context) error {
		panic("task blew up")
	})
	s.AfterFunc(0, "failing", func(context.Context) error {
		return errors.New("task failed")
	})
	s.AfterFunc(time.Millisecond, "survivor", func(context.Context) error {
		close(done)
		return nil
	})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler stopped running tasks after a panic")
	}
}

func TestManualHoldsTasksUntilFired(t *testing.T) {
	m := NewManual()
	var order []string

	m.AfterFunc(time.Hour, "first", func(context.Context) error {
		order = append(order, "first")
		return nil
	})
	m.AfterFunc(0, "second", func(context.Context) error {
		order = append(order, "second")
		return nil
	})

	require.Equal(t, 2, m.Pending())
	assert.Empty(t, order, "tasks must not run before Fire")

	ran, errs := m.Fire()
	assert.Equal(t, 2, ran)
	assert.Empty(t, errs)
	assert.Equal(t, []string{"first", "second"}, order, "tasks fire in submission order")
	assert.Zero(t, m.Pending())
}

func TestManualFireReturnsTaskErrors(t *testing.T) {
	m := NewManual()
	wantErr := errors.New("task failed")
	m.AfterFunc(0, "failing", func(context.Context) error { return wantErr })
	m.AfterFunc(0, "ok", func(context.Context) error { return nil })

	ran, errs := m.Fire()
	assert.Equal(t, 2, ran)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], wantErr)
}

func TestManualCancel(t *testing.T) {
	t.Run("cancelled task is skipped by Fire", func(t *testing.T) {
		m := NewManual()
		var ran bool
		handle := m.AfterFunc(0, "cancelled", func(context.Context) error {
			ran = true
			return nil
		})
		handle.Cancel()

		require.Zero(t, m.Pending())
		fired, _ := m.Fire()
		assert.Zero(t, fired)
		assert.False(t, ran)
	})

	t.Run("CancelAll drops pending tasks and cancels the shared context", func(t *testing.T) {
		m := NewManual()
		m.AfterFunc(0, "stale", func(context.Context) error { return nil })
		m.CancelAll()

		assert.Zero(t, m.Pending())
		fired, _ := m.Fire()
		assert.Zero(t, fired)

		// Tasks submitted after the reset get a live context.
		m.AfterFunc(0, "fresh", func(ctx context.Context) error {
			assert.NoError(t, ctx.Err())
			return nil
		})
		fired, errs := m.Fire()
		assert.Equal(t, 1, fired)
		assert.Empty(t, errs)
	})
}
