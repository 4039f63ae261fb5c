package utilities

import "sync"

type EventHandler func(data interface{})

// EventBus is a minimal in-process pub/sub used to decouple side effects
// (report generation) from request handling. Handlers run on their own
// goroutines; publishers never block on subscribers.
type EventBus struct {
	handlers map[string][]EventHandler
	mu       sync.RWMutex
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[string][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(event string, handler EventHandler) {
	eb.mu.Lock()
	defer eb.mu.Unlock()
	eb.handlers[event] = append(eb.handlers[event], handler)
}

func (eb *EventBus) Publish(event string, data interface{}) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	for _, handler := range eb.handlers[event] {
		go handler(data)
	}
}

// Global instance
var GlobalEventBus = NewEventBus()
