package outbox

import "context"

// Event is anything the bus can route by name.
type Event interface {
	EventName() string
}

// Handler reacts to one delivered event.
type Handler func(ctx context.Context, e Event) error

type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// Subscriber registers handlers per event name.
type Subscriber interface {
	Subscribe(eventName string, h Handler)
}
