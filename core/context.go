// Package core binds a renderer factory to the event dispatcher shared by
// everything built on it.
package core

import (
	"errors"
	"sync/atomic"

	"github.com/richinsley/bungine/event"
	"github.com/richinsley/bungine/graphics"
)

var (
	// ErrNoFactory is returned by NewContext for a nil factory.
	ErrNoFactory = errors.New("core: nil renderer factory")
	// ErrAlreadyCreated is returned when a second application claims a
	// Context.
	ErrAlreadyCreated = errors.New("core: application already created")
)

// Context selects the backend and owns the dispatcher its window posts
// events to. At most one application may be built on a Context.
type Context struct {
	factory    graphics.RendererFactory
	dispatcher *event.Dispatcher
	claimed    atomic.Bool
}

func NewContext(factory graphics.RendererFactory) (*Context, error) {
	if factory == nil {
		return nil, ErrNoFactory
	}
	return &Context{
		factory:    factory,
		dispatcher: event.NewDispatcher(),
	}, nil
}

func (c *Context) Factory() graphics.RendererFactory { return c.factory }
func (c *Context) Dispatcher() *event.Dispatcher     { return c.dispatcher }
func (c *Context) Backend() graphics.Backend         { return c.factory.Backend() }

// Claim marks the Context as owned by an application. Only the first
// call succeeds.
func (c *Context) Claim() error {
	if !c.claimed.CompareAndSwap(false, true) {
		return ErrAlreadyCreated
	}
	return nil
}
