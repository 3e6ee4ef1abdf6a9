package events

// Publisher defines the interface for emitting change notifications.
// Services depend on this rather than on the concrete Hub so tests can
// substitute a recorder or pass nil.
type Publisher interface {
	Publish(event Event)
}

// Compile-time verification that *Hub implements Publisher
var _ Publisher = (*Hub)(nil)

// Publish emits an event through p if p is non-nil. Notification is
// fire-and-forget; a nil publisher disables it entirely.
func Publish(p Publisher, event Event) {
	if p != nil {
		p.Publish(event)
	}
}
