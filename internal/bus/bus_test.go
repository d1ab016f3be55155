package bus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableside/internal/bus"
)

func TestEventBus_DeliversSynchronously(t *testing.T) {
	b := bus.New()

	calls := 0
	require.NoError(t, b.Subscribe(bus.RefreshDashboard, func() {
		calls++
	}))

	b.Publish(bus.RefreshDashboard)
	b.Publish(bus.RefreshDashboard)

	// Synchronous dispatch: both deliveries happened before Publish returned.
	assert.Equal(t, 2, calls)
}

func TestEventBus_MultipleListeners(t *testing.T) {
	b := bus.New()

	first, second := 0, 0
	require.NoError(t, b.Subscribe(bus.RefreshDashboard, func() { first++ }))
	require.NoError(t, b.Subscribe(bus.RefreshDashboard, func() { second++ }))

	b.Publish(bus.RefreshDashboard)

	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)
}

func TestEventBus_Unsubscribe(t *testing.T) {
	b := bus.New()

	calls := 0
	handler := func() { calls++ }
	require.NoError(t, b.Subscribe(bus.RefreshDashboard, handler))

	b.Publish(bus.RefreshDashboard)
	require.NoError(t, b.Unsubscribe(bus.RefreshDashboard, handler))
	b.Publish(bus.RefreshDashboard)

	assert.Equal(t, 1, calls)
}

func TestEventBus_EventsAreIndependent(t *testing.T) {
	b := bus.New()

	calls := 0
	require.NoError(t, b.Subscribe("something-else", func() { calls++ }))

	b.Publish(bus.RefreshDashboard)

	assert.Zero(t, calls)
}
