// Package events is a minimal in-process change bus: writers announce that a
// collection changed and sibling components re-run their load sequence.
package events

import "sync"

// Topic constants announced by the store-backed helpers.
const (
	TopicNotificationAdded = "notificationAdded"
	TopicEmailSent         = "emailSent"
)

// Handler receives the topic that fired.
type Handler func(topic string)

// Bus fans a published topic out to its subscribers. A nil *Bus is valid and
// drops every publish, so components that do not care about change
// announcements can pass nil.
type Bus struct {
	mu   sync.RWMutex
	subs map[string][]Handler
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[string][]Handler)}
}

// Subscribe registers a handler for a topic.
func (b *Bus) Subscribe(topic string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], h)
}

// Publish invokes every handler subscribed to the topic, synchronously and
// in subscription order.
func (b *Bus) Publish(topic string) {
	if b == nil {
		return
	}
	b.mu.RLock()
	handlers := append([]Handler(nil), b.subs[topic]...)
	b.mu.RUnlock()

	for _, h := range handlers {
		h(topic)
	}
}
