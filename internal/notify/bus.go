// Package notify is the client's in-process event bus.
//
// Views that show secret lists or summaries subscribe when they become
// active and unsubscribe on teardown; the save and delete flows publish.
// Publishing never blocks: a subscriber whose buffer is full misses the
// event and the drop is logged.
package notify

import (
	"slices"
	"sync"

	"github.com/MKhiriev/go-secret-keeper/internal/logger"
	"github.com/google/uuid"
)

// DefaultBuffer is the channel capacity used when Subscribe gets n <= 0.
const DefaultBuffer = 16

// Subscription is one registered listener.
type Subscription struct {
	ID uuid.UUID

	// C receives the events. It is closed by Unsubscribe and Close.
	C <-chan Event

	ch     chan Event
	topics []string
}

func (s *Subscription) wants(topic string) bool {
	return len(s.topics) == 0 || slices.Contains(s.topics, topic)
}

// Bus fans events out to subscribers.
type Bus struct {
	mu     sync.RWMutex
	subs   map[uuid.UUID]*Subscription
	closed bool

	log *logger.Logger
}

// NewBus returns an empty bus. A nil logger discards drop reports.
func NewBus(log *logger.Logger) *Bus {
	if log == nil {
		log = logger.Nop()
	}
	return &Bus{subs: make(map[uuid.UUID]*Subscription), log: log}
}

// Subscribe registers a listener with a buffer of n events. When topics are
// given only events of those topics are delivered. Subscribing to a closed
// bus returns a subscription whose channel is already closed.
func (b *Bus) Subscribe(n int, topics ...string) *Subscription {
	if n <= 0 {
		n = DefaultBuffer
	}

	ch := make(chan Event, n)
	sub := &Subscription{ID: uuid.New(), C: ch, ch: ch, topics: topics}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return sub
	}
	b.subs[sub.ID] = sub
	return sub
}

// Unsubscribe removes the listener and closes its channel. Unknown ids are
// ignored.
func (b *Bus) Unsubscribe(id uuid.UUID) {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub, ok := b.subs[id]
	if !ok {
		return
	}
	delete(b.subs, id)
	close(sub.ch)
}

// Publish delivers e to every interested subscriber and returns the number
// of subscribers that received it.
func (b *Bus) Publish(e Event) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for id, sub := range b.subs {
		if !sub.wants(e.Topic()) {
			continue
		}
		select {
		case sub.ch <- e:
			delivered++
		default:
			b.log.Warn().Str("topic", e.Topic()).Str("subscription", id.String()).Msg("subscriber buffer full, event dropped")
		}
	}
	return delivered
}

// Len returns the number of active subscriptions.
func (b *Bus) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

// Close unsubscribes everybody. Later publishes are no-ops.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
}
