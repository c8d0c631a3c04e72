package pubsub

import (
	"sync"

	"github.com/greeny34/alfred-fantasy-football-sub000/internal/logger"
)

// Event types carried on the draft bus
const (
	EventPickRecorded    = "pick.recorded"
	EventStrategyUpdated = "strategy.updated"
)

// Event is one message on the draft bus
type Event struct {
	Type      string         `json:"type"`
	SessionID string         `json:"sessionId,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
}

// Upstream is an interface for upstream publishers (e.g., NATS)
type Upstream interface {
	Publish(Event)
	Subscribe() chan Event
	Unsubscribe(chan Event)
}

// Bus implements in-process publish-subscribe over draft events,
// optionally bridged to an upstream broker so every instance sees every
// event
type Bus struct {
	mu          sync.RWMutex
	subscribers []chan Event
	upstream    Upstream
}

// New creates a local-only Bus
func New() *Bus {
	return &Bus{subscribers: []chan Event{}}
}

// NewWithUpstream creates a Bus bridged to an upstream publisher.
// Publishes go to the upstream; events arriving from the upstream are
// forwarded to local subscribers.
func NewWithUpstream(upstream Upstream) *Bus {
	b := &Bus{
		subscribers: []chan Event{},
		upstream:    upstream,
	}

	// Subscribe before returning so no published event slips past the
	// bridge
	ch := upstream.Subscribe()
	go func() {
		for event := range ch {
			logger.Debug("Forwarding upstream event", "type", event.Type, "session", event.SessionID)
			b.deliver(event)
		}
		logger.Debug("Upstream channel closed")
	}()

	return b
}

// Subscribe adds a subscriber and returns its receive channel
func (b *Bus) Subscribe() chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, 16)
	b.subscribers = append(b.subscribers, ch)
	return ch
}

// Unsubscribe removes a subscriber and closes its channel
func (b *Bus) Unsubscribe(ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, sub := range b.subscribers {
		if sub == ch {
			close(ch)
			b.subscribers = append(b.subscribers[:i], b.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to every subscriber. With an upstream
// configured the event goes there first and comes back through the
// bridge; publishing never blocks on a slow subscriber.
func (b *Bus) Publish(event Event) {
	if b.upstream != nil {
		b.upstream.Publish(event)
		return
	}
	b.deliver(event)
}

func (b *Bus) deliver(event Event) {
	b.mu.RLock()
	subs := make([]chan Event, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.RUnlock()

	for _, ch := range subs {
		select {
		case ch <- event:
		default:
			// Slow subscriber, drop rather than stall the publisher
		}
	}
}
