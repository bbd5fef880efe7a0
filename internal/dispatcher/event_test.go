package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rorical/DictPanel/internal/eventbus"
)

func TestListenForCoreEvents(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	d := NewEventDispatcher(eb)
	defer d.Stop()

	require.NoError(t, eb.SendToUI(eventbus.DownloadFinishedEvent{Attempt: 3}))

	msg := d.ListenForCoreEvents()()
	assert.Equal(t, CoreEventMsg{Event: eventbus.DownloadFinishedEvent{Attempt: 3}}, msg)
}

func TestListenForCoreEventsAfterStop(t *testing.T) {
	eb := eventbus.NewEventBus()
	defer eb.Close()
	d := NewEventDispatcher(eb)
	d.Stop()

	assert.Nil(t, d.ListenForCoreEvents()())
}

func TestListenForCoreEventsClosedBus(t *testing.T) {
	eb := eventbus.NewEventBus()
	d := NewEventDispatcher(eb)
	defer d.Stop()
	eb.Close()

	assert.Nil(t, d.ListenForCoreEvents()())
}
