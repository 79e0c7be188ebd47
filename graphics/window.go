// Package graphics defines the capability contracts a rendering backend
// implements: the window, the factory, and the GPU resources it makes.
package graphics

import "errors"

// ErrWindowInit wraps every failure to bring up the native windowing
// subsystem or to create a window. It is fatal at startup.
var ErrWindowInit = errors.New("graphics: window initialization failed")

// WindowProperties are fixed at construction.
type WindowProperties struct {
	Title     string
	Width     int
	Height    int
	VSync     bool
	Resizable bool
	// Hidden creates the window without showing it.
	Hidden bool
}

// DefaultWindowProperties returns the properties used when none are given.
func DefaultWindowProperties() WindowProperties {
	return WindowProperties{
		Title:  "bungine",
		Width:  1280,
		Height: 720,
		VSync:  true,
	}
}

// Window owns a native window and its rendering context.
type Window interface {
	Resource

	// Init creates the native window, makes its context current, installs
	// the close callback where the platform has one and applies the vsync
	// setting.
	Init(props WindowProperties) error
	// Destroy releases all native resources. Calls after the first are no-ops.
	Destroy()
	// OnUpdate presents the frame and pumps OS events. Errors returned by
	// listeners invoked from OS callbacks surface here.
	OnUpdate() error

	VSync() bool
	SetVSync(enabled bool)
	WindowID() uintptr
	Width() int
	Height() int
	Title() string
}
