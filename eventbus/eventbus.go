// Package eventbus lets hosts observe widget activity (selection, search,
// open/close, catalog swaps) without polling state. Dispatch is synchronous:
// Publish returns after every subscriber has run, so event order always
// matches intent order.
package eventbus

import (
	"log"
	"runtime/debug"
	"sync"
)

// EventType identifies a kind of widget event.
type EventType string

const (
	EventSelectionChanged EventType = "selection_changed"
	EventSelectionCleared EventType = "selection_cleared"
	EventSearchChanged    EventType = "search_changed"
	EventOpenToggled      EventType = "open_toggled"
	EventItemsReplaced    EventType = "items_replaced"
)

// Event is anything publishable on the bus.
type Event interface {
	Type() EventType
}

// SelectionChangedEvent fires when a selection is committed, either by
// choosing a row or by confirming the top search match. Items are identified
// by label, as in the state machine.
type SelectionChangedEvent struct {
	Label string
}

// SelectionClearedEvent fires when the selection is dropped.
type SelectionClearedEvent struct{}

// SearchChangedEvent fires on every edit of the search text.
type SearchChangedEvent struct {
	Query   string
	Matches int
}

// OpenToggledEvent fires when the list expands or collapses.
type OpenToggledEvent struct {
	IsOpen bool
}

// ItemsReplacedEvent fires when the catalog is swapped.
type ItemsReplacedEvent struct {
	Count int
}

func (SelectionChangedEvent) Type() EventType { return EventSelectionChanged }
func (SelectionClearedEvent) Type() EventType { return EventSelectionCleared }
func (SearchChangedEvent) Type() EventType    { return EventSearchChanged }
func (OpenToggledEvent) Type() EventType      { return EventOpenToggled }
func (ItemsReplacedEvent) Type() EventType    { return EventItemsReplaced }

// Handler is a function that handles events.
type Handler func(Event)

// Bus is the interface for the event bus.
type Bus interface {
	Publish(event Event)
	Subscribe(eventType EventType, handler Handler) func()
}

// bus is the concrete implementation of Bus
type bus struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[EventType]map[int]Handler
}

// New creates a new event bus
func New() Bus {
	return &bus{
		handlers: make(map[EventType]map[int]Handler),
	}
}

// Publish delivers the event to every subscriber of its type and returns
// once all of them have run. Relative order between subscribers is not
// specified. A panicking handler is logged and isolated from the others.
func (b *bus) Publish(event Event) {
	b.mu.RLock()
	handlers := make([]Handler, 0, len(b.handlers[event.Type()]))
	for _, h := range b.handlers[event.Type()] {
		handlers = append(handlers, h)
	}
	b.mu.RUnlock()

	for _, handler := range handlers {
		b.call(handler, event)
	}
}

// Subscribe registers a handler for one event type and returns its
// unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make(map[int]Handler)
	}
	id := b.nextID
	b.nextID++
	b.handlers[eventType][id] = handler

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.handlers[eventType], id)
	}
}

func (b *bus) call(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Event handler panic for %s: %v\nStack: %s", event.Type(), r, debug.Stack())
		}
	}()
	handler(event)
}
