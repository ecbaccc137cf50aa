package events

import (
	"context"
	"sync"
)

// EventHandler consumes a single report lifecycle event.
type EventHandler func(context.Context, Event) error

// Dispatcher routes report events to subscribed handlers.
type Dispatcher interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType EventType, handler EventHandler)
}

// memoryDispatcher invokes handlers synchronously in subscription order.
type memoryDispatcher struct {
	mu       sync.RWMutex
	handlers map[EventType][]EventHandler
}

// NewInMemoryDispatcher returns a dispatcher backed by process memory.
func NewInMemoryDispatcher() Dispatcher {
	return &memoryDispatcher{handlers: make(map[EventType][]EventHandler)}
}

// Publish delivers the event to every handler registered for its type.
// A failing handler does not prevent delivery to the remaining ones.
func (d *memoryDispatcher) Publish(ctx context.Context, event Event) error {
	d.mu.RLock()
	subscribed := make([]EventHandler, len(d.handlers[event.Type]))
	copy(subscribed, d.handlers[event.Type])
	d.mu.RUnlock()

	for _, handle := range subscribed {
		_ = handle(ctx, event)
	}
	return nil
}

func (d *memoryDispatcher) Subscribe(eventType EventType, handler EventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[eventType] = append(d.handlers[eventType], handler)
}
