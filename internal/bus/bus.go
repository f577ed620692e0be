// Package bus provides the in-process broadcast used to keep open views in
// sync: a mutation to a collection is published on its topic and every
// subscriber receives it.
package bus

import "sync"

// Topics mirror the collection names that emit change events.
const (
	TopicTransactions  = "transactions"
	TopicProperties    = "properties"
	TopicNotifications = "notifications"
)

// Event describes a single mutation.
type Event struct {
	Topic  string
	Action string // "created", "updated", "deleted"
	ID     string
}

type Bus struct {
	mu   sync.Mutex
	subs map[string][]chan Event
}

func New() *Bus {
	return &Bus{subs: make(map[string][]chan Event)}
}

// Subscribe returns a channel of events for the topic and a cancel function.
// The channel is buffered; a subscriber that falls behind drops events rather
// than blocking publishers.
func (b *Bus) Subscribe(topic string) (<-chan Event, func()) {
	ch := make(chan Event, 16)

	b.mu.Lock()
	b.subs[topic] = append(b.subs[topic], ch)
	b.mu.Unlock()

	cancel := func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.subs[topic]
		for i, sub := range subs {
			if sub == ch {
				b.subs[topic] = append(subs[:i], subs[i+1:]...)
				close(ch)

				return
			}
		}
	}

	return ch, cancel
}

// Publish delivers the event to all current subscribers of its topic.
func (b *Bus) Publish(ev Event) {
	b.mu.Lock()
	subs := make([]chan Event, len(b.subs[ev.Topic]))
	copy(subs, b.subs[ev.Topic])
	b.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- ev:
		default:
		}
	}
}
