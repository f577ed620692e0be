package bus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbeaver/property-management/internal/bus"
)

func TestPublishSubscribe(t *testing.T) {
	b := bus.New()

	ch, cancel := b.Subscribe(bus.TopicTransactions)
	defer cancel()

	b.Publish(bus.Event{Topic: bus.TopicTransactions, Action: "created", ID: "tx-1"})

	select {
	case ev := <-ch:
		assert.Equal(t, "created", ev.Action)
		assert.Equal(t, "tx-1", ev.ID)
	default:
		t.Fatal("expected an event")
	}
}

func TestTopicsAreIsolated(t *testing.T) {
	b := bus.New()

	ch, cancel := b.Subscribe(bus.TopicProperties)
	defer cancel()

	b.Publish(bus.Event{Topic: bus.TopicTransactions, Action: "created", ID: "tx-1"})

	select {
	case ev := <-ch:
		t.Fatalf("unexpected event %+v", ev)
	default:
	}
}

func TestCancelStopsDelivery(t *testing.T) {
	b := bus.New()

	ch, cancel := b.Subscribe(bus.TopicTransactions)
	cancel()

	b.Publish(bus.Event{Topic: bus.TopicTransactions, Action: "created", ID: "tx-1"})

	_, open := <-ch
	assert.False(t, open, "channel closes on cancel")
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	b := bus.New()

	ch, cancel := b.Subscribe(bus.TopicTransactions)
	defer cancel()

	// Overfill the buffer; Publish must never block.
	for i := 0; i < 100; i++ {
		b.Publish(bus.Event{Topic: bus.TopicTransactions, Action: "created", ID: "tx"})
	}

	received := 0

	for {
		select {
		case <-ch:
			received++
			continue
		default:
		}

		break
	}

	require.Greater(t, received, 0)
	assert.LessOrEqual(t, received, 16)
}
