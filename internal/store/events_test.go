package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_FanOut(t *testing.T) {
	bus := NewEventBus()

	a, _ := bus.Subscribe()
	b, _ := bus.Subscribe()

	bus.Publish(EntryChanged{ID: "e1"})

	select {
	case ev := <-a:
		assert.Equal(t, EntryChanged{ID: "e1"}, ev)
	case <-time.After(time.Second):
		t.Fatal("subscriber a did not receive event")
	}

	select {
	case ev := <-b:
		assert.Equal(t, EntryChanged{ID: "e1"}, ev)
	case <-time.After(time.Second):
		t.Fatal("subscriber b did not receive event")
	}
}

func TestEventBus_PublishNeverBlocks(t *testing.T) {
	bus := NewEventBus()
	_, _ = bus.Subscribe() // never drained

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < eventBufSize*2; i++ {
			bus.Publish(EntryDeleted{ID: "e"})
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full subscriber")
	}
}

func TestEventBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()

	gone, cancel := bus.Subscribe()
	kept, _ := bus.Subscribe()

	cancel()
	cancel() // idempotent
	assert.Len(t, bus.subs, 1)

	bus.Publish(EntryChanged{ID: "e1"})

	require.Equal(t, EntryChanged{ID: "e1"}, <-kept)
	select {
	case ev := <-gone:
		t.Fatalf("cancelled subscriber received %v", ev)
	default:
	}
}

func TestEventBus_TypedEvents(t *testing.T) {
	bus := NewEventBus()
	sub, _ := bus.Subscribe()

	bus.Publish(EntryChanged{ID: "a"})
	bus.Publish(EntryDeleted{ID: "b"})
	bus.Publish(StoreRefreshed{})

	require.Equal(t, EntryChanged{ID: "a"}, <-sub)
	require.Equal(t, EntryDeleted{ID: "b"}, <-sub)
	require.Equal(t, StoreRefreshed{}, <-sub)
}
