package event

import "sync"

// Handler is a function that handles an event.
type Handler func(Event)

// PanicHandler receives a recovered handler panic.
type PanicHandler func(event Event, recovered any)

// Bus is a synchronous pub-sub event bus. Handlers run on the publisher's
// goroutine in registration order, so event order follows publish order.
type Bus struct {
	mu            sync.RWMutex
	subscriptions map[string][]Handler // eventType -> handlers
	onPanic       PanicHandler
}

// NewBus creates a new event bus.
func NewBus() *Bus {
	return &Bus{
		subscriptions: make(map[string][]Handler),
	}
}

// OnPanic sets the function that is told about recovered handler panics.
// Without one, panics are recovered silently.
func (b *Bus) OnPanic(fn PanicHandler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onPanic = fn
}

// Subscribe registers a handler for a specific event type. Subscriptions
// last for the life of the bus.
func (b *Bus) Subscribe(eventType string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscriptions[eventType] = append(b.subscriptions[eventType], handler)
}

// SubscribeAll registers a handler for every event type.
func (b *Bus) SubscribeAll(handler Handler) {
	b.Subscribe("*", handler)
}

// Publish dispatches an event to all registered handlers.
// Handlers subscribed to the event type run first, followed by wildcard
// handlers. A panicking handler is recovered and the remaining handlers
// still run.
func (b *Bus) Publish(event Event) {
	if b == nil {
		return
	}

	b.mu.RLock()
	eventType := event.EventType()
	handlers := make([]Handler, 0, len(b.subscriptions[eventType])+len(b.subscriptions["*"]))
	handlers = append(handlers, b.subscriptions[eventType]...)
	handlers = append(handlers, b.subscriptions["*"]...)
	onPanic := b.onPanic
	b.mu.RUnlock()

	for _, handler := range handlers {
		safeCall(handler, event, onPanic)
	}
}

func safeCall(handler Handler, event Event, onPanic PanicHandler) {
	defer func() {
		if r := recover(); r != nil && onPanic != nil {
			onPanic(event, r)
		}
	}()
	handler(event)
}
