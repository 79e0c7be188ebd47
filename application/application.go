// Package application drives the main loop: it owns the window, the
// layer stack and the GUI overlay, relays events to layers and tears
// everything down once the loop ends.
package application

import (
	"errors"
	"fmt"

	"github.com/richinsley/bungine/clock"
	"github.com/richinsley/bungine/core"
	"github.com/richinsley/bungine/event"
	"github.com/richinsley/bungine/graphics"
	"github.com/richinsley/bungine/gui"
	"github.com/richinsley/bungine/layer"
	"github.com/richinsley/bungine/logger"
	"github.com/richinsley/bungine/renderer"
)

// ErrAlreadyCreated is returned by New when the context already backs an
// application.
var ErrAlreadyCreated = core.ErrAlreadyCreated

// ErrAlreadyRan is returned by a second call to Run.
var ErrAlreadyRan = errors.New("application: already ran")

// Option configures an Application at construction.
type Option func(*Application)

// WithClock replaces the frame clock. The default is the window when it
// implements clock.Clock, otherwise a system clock.
func WithClock(c clock.Clock) Option {
	return func(a *Application) {
		if c != nil {
			a.clock = c
		}
	}
}

// WithOverlay replaces the default gui.Layer.
func WithOverlay(o gui.Overlay) Option {
	return func(a *Application) {
		if o != nil {
			a.overlay = o
		}
	}
}

type Application struct {
	ctx      *core.Context
	window   graphics.Window
	input    graphics.Input
	renderer *renderer.Renderer
	stack    layer.Stack
	overlay  gui.Overlay
	clock    clock.Clock

	running       bool
	ran           bool
	lastFrameTime float64
	frames        uint64
}

// New builds the application on ctx: it claims the context, creates the
// window, attaches the overlay, initializes the renderer and then
// registers the event relay, close and resize listeners. Any failure
// aborts construction and releases what was already acquired.
func New(ctx *core.Context, props graphics.WindowProperties, opts ...Option) (*Application, error) {
	if ctx == nil {
		return nil, fmt.Errorf("application: nil context")
	}
	if err := ctx.Claim(); err != nil {
		return nil, err
	}

	a := &Application{
		ctx:      ctx,
		renderer: renderer.New(ctx.Factory()),
		running:  true,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.overlay == nil {
		a.overlay = gui.NewLayer()
	}

	window, err := ctx.Factory().CreateWindow(props, ctx.Dispatcher())
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	a.window = window
	logger.Logger().Info("application created",
		"title", props.Title, "width", props.Width, "height", props.Height, "backend", ctx.Backend())

	if err := a.overlay.OnAttach(); err != nil {
		window.Destroy()
		return nil, fmt.Errorf("attach overlay: %w", err)
	}
	if err := a.renderer.Init(); err != nil {
		window.Destroy()
		return nil, errors.Join(err, a.overlay.OnDetach())
	}
	a.renderer.OnWindowResize(window.Width(), window.Height())

	// Listeners go in only once construction can no longer fail, so a
	// failed New leaves the dispatcher as it found it.
	d := ctx.Dispatcher()
	d.RegisterGeneralListener(a.OnEvent)
	d.RegisterListener(event.KindWindowClose, func(event.Event) error {
		a.running = false
		return nil
	})
	d.RegisterListener(event.KindWindowResize, func(e event.Event) error {
		if r, ok := e.(event.WindowResize); ok {
			a.renderer.OnWindowResize(r.Width, r.Height)
		}
		return nil
	})

	if input, err := ctx.Factory().NewInput(window); err != nil {
		logger.Logger().Warn("input unavailable", "err", err)
	} else {
		a.input = input
	}

	if a.clock == nil {
		if c, ok := window.(clock.Clock); ok {
			a.clock = c
		} else {
			a.clock = clock.NewSystem()
		}
	}
	return a, nil
}

func (a *Application) PushLayer(l layer.Layer) error   { return a.stack.PushLayer(l) }
func (a *Application) PushOverlay(l layer.Layer) error { return a.stack.PushOverlay(l) }
func (a *Application) PopLayer(l layer.Layer) error    { return a.stack.PopLayer(l) }
func (a *Application) PopOverlay(l layer.Layer) error  { return a.stack.PopOverlay(l) }

// OnEvent relays e to the layers in reverse stack order, so overlays and
// the most recently pushed layers see it first.
func (a *Application) OnEvent(e event.Event) error {
	for l := range a.stack.Backward() {
		if err := l.OnEvent(e); err != nil {
			return fmt.Errorf("%T: %w", l, err)
		}
	}
	return nil
}

// Run executes frames until the running flag is cleared or a frame
// fails, then tears down. It returns the frame error joined with any
// teardown errors.
func (a *Application) Run() error {
	if a.ran {
		return ErrAlreadyRan
	}
	a.ran = true
	logger.Logger().Info("application running")

	var err error
	for a.running {
		if err = a.frame(); err != nil {
			break
		}
		a.frames++
	}
	return errors.Join(err, a.shutdown())
}

func (a *Application) frame() error {
	now := a.clock.Time()
	ts := clock.TimeStep(now - a.lastFrameTime)
	a.lastFrameTime = now

	if err := a.overlay.OnUpdate(ts); err != nil {
		return fmt.Errorf("overlay update: %w", err)
	}
	for l := range a.stack.All() {
		if err := l.OnUpdate(ts); err != nil {
			return fmt.Errorf("update %T: %w", l, err)
		}
	}

	if err := a.overlay.BeginRender(); err != nil {
		return fmt.Errorf("begin gui frame: %w", err)
	}
	for l := range a.stack.All() {
		if err := l.RenderImGui(ts); err != nil {
			return fmt.Errorf("gui %T: %w", l, err)
		}
	}
	if err := a.overlay.RenderImGui(ts); err != nil {
		return fmt.Errorf("overlay gui: %w", err)
	}
	if err := a.overlay.EndRender(); err != nil {
		return fmt.Errorf("end gui frame: %w", err)
	}

	return a.window.OnUpdate()
}

func (a *Application) shutdown() error {
	logger.Logger().Info("application shutting down", "frames", a.frames)
	a.running = false
	a.window.Destroy()

	var errs []error
	for l := range a.stack.All() {
		if err := l.OnDetach(); err != nil {
			errs = append(errs, fmt.Errorf("detach %T: %w", l, err))
		}
	}
	if err := a.overlay.OnDetach(); err != nil {
		errs = append(errs, fmt.Errorf("detach overlay: %w", err))
	}
	a.stack = layer.Stack{}
	return errors.Join(errs...)
}

// Close asks the loop to stop after the current frame.
func (a *Application) Close() { a.running = false }

func (a *Application) Window() graphics.Window      { return a.window }
func (a *Application) Input() graphics.Input        { return a.input }
func (a *Application) Renderer() *renderer.Renderer { return a.renderer }
func (a *Application) Context() *core.Context       { return a.ctx }
func (a *Application) Overlay() gui.Overlay         { return a.overlay }
func (a *Application) Running() bool                { return a.running }

// Frame returns the number of completed frames.
func (a *Application) Frame() uint64 { return a.frames }
