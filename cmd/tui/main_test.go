package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbeaver/property-management/cmd/tui/internal/view"
	"github.com/nirbeaver/property-management/internal/bus"
)

func TestWaitForEventDeliversChange(t *testing.T) {
	events := bus.New()

	ch, cancel := events.Subscribe(bus.TopicTransactions)
	defer cancel()

	events.Publish(bus.Event{Topic: bus.TopicTransactions, Action: "created", ID: "abc"})

	msg := waitForEvent(ch)()

	changed, ok := msg.(view.RecordsChangedMsg)
	require.True(t, ok, "expected a RecordsChangedMsg, got %T", msg)
	assert.Equal(t, bus.TopicTransactions, changed.Topic)
}

func TestWaitForEventStopsOnCancel(t *testing.T) {
	events := bus.New()

	ch, cancel := events.Subscribe(bus.TopicProperties)
	cancel()

	msg := waitForEvent(ch)()
	assert.Nil(t, msg)
}

func TestEventChanPicksSubscriptionByTopic(t *testing.T) {
	events := bus.New()

	txCh, cancelTx := events.Subscribe(bus.TopicTransactions)
	defer cancelTx()
	propCh, cancelProp := events.Subscribe(bus.TopicProperties)
	defer cancelProp()

	m := model{txEvents: txCh, propEvents: propCh}

	assert.Equal(t, propCh, m.eventChan(bus.TopicProperties))
	assert.Equal(t, txCh, m.eventChan(bus.TopicTransactions))
}
