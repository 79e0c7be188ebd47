// Package layer defines the Layer contract and the ordered Stack the
// application drives every frame.
package layer

import (
	"github.com/richinsley/bungine/clock"
	"github.com/richinsley/bungine/event"
)

// Layer is a unit of per-frame update, GUI and event logic.
//
// OnAttach runs when the layer is pushed; OnDetach exactly once, when it
// is popped or when the application shuts down. An error from any hook
// terminates the main loop.
type Layer interface {
	OnAttach() error
	OnUpdate(ts clock.TimeStep) error
	RenderImGui(ts clock.TimeStep) error
	OnEvent(e event.Event) error
	OnDetach() error
}

// Base implements every Layer hook as a no-op. Embed it and override
// only the hooks a layer needs.
type Base struct{}

func (Base) OnAttach() error                  { return nil }
func (Base) OnUpdate(clock.TimeStep) error    { return nil }
func (Base) RenderImGui(clock.TimeStep) error { return nil }
func (Base) OnEvent(event.Event) error        { return nil }
func (Base) OnDetach() error                  { return nil }
