package domain_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"go-oms/shared/common/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	customerCreated domain.EventName = "CustomerCreatedEvent"
	productCreated  domain.EventName = "ProductCreatedEvent"
)

type testEvent struct {
	domain.BaseEvent
	Data string
}

func newTestEvent(name domain.EventName, data string) *testEvent {
	return &testEvent{BaseEvent: domain.NewBaseEvent(name), Data: data}
}

// recorder จดลำดับการเรียก handler ทุกตัวลงใน log ร่วมกัน
type recorder struct {
	name string
	log  *[]string
	err  error
}

func (r *recorder) Handle(_ context.Context, evt domain.Event) error {
	*r.log = append(*r.log, r.name+":"+string(evt.EventName()))
	return r.err
}

func TestRegister(t *testing.T) {
	d := domain.NewEventDispatcher()
	var log []string
	first := &recorder{name: "first", log: &log}
	second := &recorder{name: "second", log: &log}

	d.Register(customerCreated, first)
	d.Register(customerCreated, second)

	handlers := d.Handlers(customerCreated)
	require.Len(t, handlers, 2)
	assert.Same(t, first, handlers[0])
	assert.Same(t, second, handlers[1])
	assert.Empty(t, d.Handlers(productCreated))
}

func TestNotify(t *testing.T) {
	t.Run("invokes every handler once in registration order", func(t *testing.T) {
		d := domain.NewEventDispatcher()
		var log []string
		d.Register(customerCreated, &recorder{name: "first", log: &log})
		d.Register(customerCreated, &recorder{name: "second", log: &log})
		d.Register(productCreated, &recorder{name: "product", log: &log})

		err := d.Notify(context.Background(), newTestEvent(customerCreated, ""))

		require.NoError(t, err)
		assert.Equal(t, []string{"first:CustomerCreatedEvent", "second:CustomerCreatedEvent"}, log)
	})

	t.Run("does nothing for an event without handlers", func(t *testing.T) {
		d := domain.NewEventDispatcher()
		var log []string
		d.Register(productCreated, &recorder{name: "product", log: &log})

		err := d.Notify(context.Background(), newTestEvent(customerCreated, ""))

		require.NoError(t, err)
		assert.Empty(t, log)
	})

	t.Run("duplicate registration is invoked twice", func(t *testing.T) {
		d := domain.NewEventDispatcher()
		var log []string
		h := &recorder{name: "dup", log: &log}
		d.Register(customerCreated, h)
		d.Register(customerCreated, h)

		require.NoError(t, d.Notify(context.Background(), newTestEvent(customerCreated, "")))

		assert.Len(t, log, 2)
	})

	t.Run("a failing handler stops the remaining handlers", func(t *testing.T) {
		d := domain.NewEventDispatcher()
		var log []string
		boom := errors.New("boom")
		d.Register(customerCreated, &recorder{name: "first", log: &log})
		d.Register(customerCreated, &recorder{name: "failing", log: &log, err: boom})
		d.Register(customerCreated, &recorder{name: "never", log: &log})

		err := d.Notify(context.Background(), newTestEvent(customerCreated, ""))

		assert.ErrorIs(t, err, boom)
		assert.EqualError(t, err, "error handling event CustomerCreatedEvent: boom")
		assert.Equal(t, []string{"first:CustomerCreatedEvent", "failing:CustomerCreatedEvent"}, log)
	})
}

func TestUnregister(t *testing.T) {
	t.Run("removes only the first matching reference", func(t *testing.T) {
		d := domain.NewEventDispatcher()
		var log []string
		a := &recorder{name: "a", log: &log}
		b := &recorder{name: "b", log: &log}
		d.Register(customerCreated, a)
		d.Register(customerCreated, b)
		d.Register(customerCreated, a)

		d.Unregister(customerCreated, a)

		handlers := d.Handlers(customerCreated)
		require.Len(t, handlers, 2)
		assert.Same(t, b, handlers[0])
		assert.Same(t, a, handlers[1])
	})

	t.Run("unknown handler is a no-op", func(t *testing.T) {
		d := domain.NewEventDispatcher()
		var log []string
		a := &recorder{name: "a", log: &log}
		d.Register(customerCreated, a)

		d.Unregister(customerCreated, &recorder{name: "other", log: &log})
		d.Unregister(productCreated, a)

		assert.Len(t, d.Handlers(customerCreated), 1)
	})

	t.Run("unregister all clears every event", func(t *testing.T) {
		d := domain.NewEventDispatcher()
		var log []string
		d.Register(customerCreated, &recorder{name: "a", log: &log})
		d.Register(productCreated, &recorder{name: "b", log: &log})

		d.UnregisterAll()

		assert.Empty(t, d.Handlers(customerCreated))
		assert.Empty(t, d.Handlers(productCreated))
		require.NoError(t, d.Notify(context.Background(), newTestEvent(customerCreated, "")))
		assert.Empty(t, log)
	})
}

// counter นับจำนวนครั้งที่ถูกเรียก ใช้ได้จากหลาย goroutine
type counter struct {
	name  string
	calls atomic.Int64
}

func (c *counter) Handle(_ context.Context, _ domain.Event) error {
	c.calls.Add(1)
	return nil
}

func TestConcurrentRegisterAndNotify(t *testing.T) {
	d := domain.NewEventDispatcher()
	stable := &counter{name: "stable"}
	d.Register(customerCreated, stable)

	const workers = 8
	const rounds = 100

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			h := &counter{name: "temp"}
			for j := 0; j < rounds; j++ {
				d.Register(customerCreated, h)
				_ = d.Handlers(customerCreated)
				d.Unregister(customerCreated, h)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				assert.NoError(t, d.Notify(context.Background(), newTestEvent(customerCreated, "x")))
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(workers*rounds), stable.calls.Load())
	handlers := d.Handlers(customerCreated)
	require.Len(t, handlers, 1)
	assert.Same(t, stable, handlers[0])
}

func TestBaseEvent(t *testing.T) {
	evt := newTestEvent(customerCreated, "payload")

	assert.Equal(t, customerCreated, evt.EventName())
	assert.False(t, evt.OccurredAt().IsZero())
	assert.Equal(t, "payload", evt.Data)
}
