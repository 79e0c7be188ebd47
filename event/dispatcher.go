package event

import (
	"errors"
	"fmt"
)

// ErrNilEvent is returned when Dispatch is called with a nil event.
var ErrNilEvent = errors.New("event: nil event")

// Listener receives dispatched events. A non-nil error aborts the
// dispatch of the current event.
type Listener func(Event) error

// Dispatcher routes events to general listeners, which see every event,
// and to listeners registered for a single Kind.
//
// Dispatch is synchronous and runs on the caller's goroutine. General
// listeners run first, in registration order, followed by the listeners
// for the event's kind, in registration order. Dispatcher is not safe
// for concurrent use; the engine drives it from the main loop thread.
type Dispatcher struct {
	general []Listener
	byKind  map[Kind][]Listener
}

// NewDispatcher returns an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		byKind: make(map[Kind][]Listener),
	}
}

// RegisterGeneralListener adds l to the listeners invoked for every event.
func (d *Dispatcher) RegisterGeneralListener(l Listener) {
	if l == nil {
		return
	}
	d.general = append(d.general, l)
}

// RegisterListener adds l to the listeners invoked for events of kind k.
func (d *Dispatcher) RegisterListener(k Kind, l Listener) {
	if l == nil {
		return
	}
	d.byKind[k] = append(d.byKind[k], l)
}

// Dispatch delivers e to every matching listener and returns once they
// have all run. Listeners registered during a dispatch are first invoked
// on the next one.
func (d *Dispatcher) Dispatch(e Event) error {
	if e == nil {
		return ErrNilEvent
	}

	// snapshot before iterating
	general := append([]Listener(nil), d.general...)
	specific := append([]Listener(nil), d.byKind[e.Kind()]...)

	for _, l := range general {
		if err := l(e); err != nil {
			return fmt.Errorf("dispatch %s: %w", e.Kind(), err)
		}
	}
	for _, l := range specific {
		if err := l(e); err != nil {
			return fmt.Errorf("dispatch %s: %w", e.Kind(), err)
		}
	}
	return nil
}

// ListenerCount returns the number of listeners an event of kind k reaches.
func (d *Dispatcher) ListenerCount(k Kind) int {
	return len(d.general) + len(d.byKind[k])
}
