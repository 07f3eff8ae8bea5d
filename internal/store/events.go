package store

import "sync"

// Event is a typed change notification emitted by the local store. The sync
// engine only reacts to these; it never originates record mutations itself.
type Event interface {
	isEvent()
}

// EntryChanged signals that the entry with ID was created or updated.
type EntryChanged struct{ ID string }

// EntryDeleted signals that the entry with ID was removed.
type EntryDeleted struct{ ID string }

// StoreRefreshed signals that remote merges changed local data and views
// should reload.
type StoreRefreshed struct{}

func (EntryChanged) isEvent()   {}
func (EntryDeleted) isEvent()   {}
func (StoreRefreshed) isEvent() {}

// eventBufSize bounds each subscriber channel. Publishing never blocks: when
// a subscriber is full the event is dropped, and the scheduler's periodic
// updatedAt catch-up sweep picks up anything a dropped event would have
// marked dirty.
const eventBufSize = 64

// EventBus is a small typed fan-out channel between the local store and its
// observers.
type EventBus struct {
	mu   sync.Mutex
	subs []chan Event
}

// NewEventBus constructs an empty event bus.
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers a new observer and returns its receive channel
// together with a cancel function that removes the subscription. Cancel is
// idempotent; after it returns the channel receives nothing further.
func (b *EventBus) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, eventBufSize)

	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()

	return ch, func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, sub := range b.subs {
			if sub == ch {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Publish delivers ev to every subscriber without blocking.
func (b *EventBus) Publish(ev Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
