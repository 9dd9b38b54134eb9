package webhook

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"veristub/pkg/requestcontext"
)

func newTestDispatcher() *Dispatcher {
	return NewDispatcher(slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
}

func recordingCallback(calls *[]string, name string) Callback {
	return func(context.Context, Event) error {
		*calls = append(*calls, name)
		return nil
	}
}

func TestEmitDeliversInRegistrationOrder(t *testing.T) {
	d := newTestDispatcher()
	var calls []string
	d.Register("first", recordingCallback(&calls, "first"))
	d.Register("second", recordingCallback(&calls, "second"))
	d.Register("third", recordingCallback(&calls, "third"))

	d.Emit(context.Background(), EventInquiryCreated, Payload{ID: "inq_mock_1", Kind: KindInquiry})

	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestEmitBuildsEvent(t *testing.T) {
	d := newTestDispatcher()
	now := time.Date(2026, 4, 1, 9, 30, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)

	var received Event
	d.Register("capture", func(_ context.Context, event Event) error {
		received = event
		return nil
	})

	emitted := d.Emit(ctx, EventInquiryCompleted, Payload{ID: "inq_mock_1", Kind: KindInquiry})

	assert.Contains(t, emitted.ID, "evt_")
	assert.Equal(t, EventInquiryCompleted, emitted.Type)
	assert.Equal(t, now, emitted.CreatedAt)
	assert.Equal(t, emitted.ID, received.ID)
	assert.Equal(t, "inq_mock_1", received.Data.ID)
}

func TestEventIDsAreDistinct(t *testing.T) {
	d := newTestDispatcher()
	first := d.Emit(context.Background(), EventInquiryCreated, Payload{})
	second := d.Emit(context.Background(), EventInquiryCreated, Payload{})
	assert.NotEqual(t, first.ID, second.ID)
}

func TestFailureIsolation(t *testing.T) {
	t.Run("erroring callback does not block later callbacks", func(t *testing.T) {
		d := newTestDispatcher()
		var calls []string
		d.Register("broken", func(context.Context, Event) error {
			calls = append(calls, "broken")
			return errors.New("consumer bug")
		})
		d.Register("healthy", recordingCallback(&calls, "healthy"))

		d.Emit(context.Background(), EventInquiryCreated, Payload{})

		assert.Equal(t, []string{"broken", "healthy"}, calls)
	})

	t.Run("panicking callback does not block later callbacks", func(t *testing.T) {
		d := newTestDispatcher()
		var calls []string
		d.Register("panicky", func(context.Context, Event) error {
			panic("consumer blew up")
		})
		d.Register("healthy", recordingCallback(&calls, "healthy"))

		require.NotPanics(t, func() {
			d.Emit(context.Background(), EventInquiryCreated, Payload{})
		})
		assert.Equal(t, []string{"healthy"}, calls)
	})
}

func TestRegister(t *testing.T) {
	t.Run("overwriting keeps the original delivery position", func(t *testing.T) {
		d := newTestDispatcher()
		var calls []string
		d.Register("first", recordingCallback(&calls, "first-v1"))
		d.Register("second", recordingCallback(&calls, "second"))
		d.Register("first", recordingCallback(&calls, "first-v2"))

		require.Equal(t, 2, d.Count())
		d.Emit(context.Background(), EventInquiryCreated, Payload{})
		assert.Equal(t, []string{"first-v2", "second"}, calls)
	})
}

func TestUnregister(t *testing.T) {
	d := newTestDispatcher()
	var calls []string
	d.Register("keep", recordingCallback(&calls, "keep"))
	d.Register("drop", recordingCallback(&calls, "drop"))

	d.Unregister("drop")
	require.Equal(t, 1, d.Count())

	// Unregistering an absent name is a no-op.
	d.Unregister("absent")
	require.Equal(t, 1, d.Count())

	d.Emit(context.Background(), EventInquiryCreated, Payload{})
	assert.Equal(t, []string{"keep"}, calls)
}

func TestClear(t *testing.T) {
	d := newTestDispatcher()
	d.Register("one", func(context.Context, Event) error { return nil })
	d.Register("two", func(context.Context, Event) error { return nil })

	d.Clear()
	assert.Zero(t, d.Count())

	// Registry stays usable after a clear.
	d.Register("three", func(context.Context, Event) error { return nil })
	assert.Equal(t, 1, d.Count())
}

func TestEmitWithNoCallbacks(t *testing.T) {
	d := newTestDispatcher()
	event := d.Emit(context.Background(), EventInquiryExpired, Payload{ID: "inq_mock_1"})
	assert.Equal(t, EventInquiryExpired, event.Type)
}
