package bus

import evbus "github.com/asaskevich/EventBus"

// RefreshDashboard tells the admin dashboard to re-fetch after another part
// of the UI changed shared data (e.g. a submitted order).
const RefreshDashboard = "refresh-dashboard"

// Bus delivers named signals to listeners in the same process, synchronously,
// with no queuing and no delivery guarantee beyond "registered at dispatch
// time".
type Bus interface {
	Publish(event string)
	Subscribe(event string, handler func()) error
	Unsubscribe(event string, handler func()) error
}

// EventBus is the default Bus, a thin facade over asaskevich/EventBus with
// synchronous dispatch.
type EventBus struct {
	inner evbus.Bus
}

func New() *EventBus {
	return &EventBus{inner: evbus.New()}
}

func (b *EventBus) Publish(event string) {
	b.inner.Publish(event)
}

func (b *EventBus) Subscribe(event string, handler func()) error {
	return b.inner.Subscribe(event, handler)
}

// Unsubscribe deregisters a previously subscribed handler. The same function
// value must be passed; anonymous closures need to be kept by the caller.
func (b *EventBus) Unsubscribe(event string, handler func()) error {
	return b.inner.Unsubscribe(event, handler)
}

var _ Bus = (*EventBus)(nil)
