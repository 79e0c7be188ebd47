// Package event defines engine events and the synchronous dispatcher that
// routes them to listeners.
package event

import "fmt"

// Kind identifies the category of an Event.
type Kind int

const (
	KindNone Kind = iota
	KindWindowClose
	KindWindowResize
	KindKey
	KindMouseButton
	KindMouseMove
	KindScroll

	// KindUser is the first kind available to applications. Define custom
	// kinds as KindUser, KindUser+1, ...
	KindUser Kind = 1000
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindWindowClose:
		return "window-close"
	case KindWindowResize:
		return "window-resize"
	case KindKey:
		return "key"
	case KindMouseButton:
		return "mouse-button"
	case KindMouseMove:
		return "mouse-move"
	case KindScroll:
		return "scroll"
	}
	if k >= KindUser {
		return fmt.Sprintf("user(%d)", int(k-KindUser))
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Event is anything with a Kind. Events are values: they are built by a
// backend callback or by application code, delivered synchronously and
// then dropped.
type Event interface {
	Kind() Kind
}

// WindowClose is emitted when the user asks the native window to close.
type WindowClose struct {
	WindowID uintptr
}

func (WindowClose) Kind() Kind { return KindWindowClose }

// WindowResize carries the new framebuffer size in pixels.
type WindowResize struct {
	Width, Height int
}

func (WindowResize) Kind() Kind { return KindWindowResize }

// Key is a raw key transition as reported by the backend. Codes are
// passed through unmapped.
type Key struct {
	Key      int
	Scancode int
	Action   int
	Mods     int
}

func (Key) Kind() Kind { return KindKey }

// MouseButton is a raw mouse button transition.
type MouseButton struct {
	Button int
	Action int
	Mods   int
}

func (MouseButton) Kind() Kind { return KindMouseButton }

// MouseMove reports the cursor position in window coordinates.
type MouseMove struct {
	X, Y float64
}

func (MouseMove) Kind() Kind { return KindMouseMove }

// Scroll reports wheel or trackpad offsets.
type Scroll struct {
	XOffset, YOffset float64
}

func (Scroll) Kind() Kind { return KindScroll }
