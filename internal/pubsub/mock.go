package pubsub

import "sync"

// MockUpstream is an Upstream for tests: it records published events
// and echoes them to subscribers like a real broker would
type MockUpstream struct {
	mu          sync.RWMutex
	published   []Event
	subscribers []chan Event
}

// NewMockUpstream creates a mock upstream broker
func NewMockUpstream() *MockUpstream {
	return &MockUpstream{}
}

func (m *MockUpstream) Publish(event Event) {
	m.mu.Lock()
	m.published = append(m.published, event)
	subs := make([]chan Event, len(m.subscribers))
	copy(subs, m.subscribers)
	m.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- event:
		default:
		}
	}
}

func (m *MockUpstream) Subscribe() chan Event {
	ch := make(chan Event, 100)
	m.mu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.mu.Unlock()
	return ch
}

func (m *MockUpstream) Unsubscribe(ch chan Event) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, sub := range m.subscribers {
		if sub == ch {
			m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
			close(ch)
			break
		}
	}
}

// Published returns a copy of every event published so far
func (m *MockUpstream) Published() []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Event, len(m.published))
	copy(out, m.published)
	return out
}
