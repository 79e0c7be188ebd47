package graphics

import (
	"errors"
	"fmt"

	"github.com/richinsley/bungine/event"
)

// ErrBackendMismatch is returned when resources from two backends are
// combined.
var ErrBackendMismatch = errors.New("graphics: backend mismatch")

// Backend identifies a family of concrete implementations.
type Backend int

const (
	BackendNone Backend = iota
	BackendOpenGL
)

func (b Backend) String() string {
	switch b {
	case BackendNone:
		return "none"
	case BackendOpenGL:
		return "opengl"
	default:
		return fmt.Sprintf("backend(%d)", int(b))
	}
}

// Resource is implemented by everything a RendererFactory produces.
type Resource interface {
	Backend() Backend
}

// CheckBackend returns ErrBackendMismatch unless r belongs to want.
func CheckBackend(want Backend, r Resource) error {
	if r == nil {
		return fmt.Errorf("%w: nil resource, want %s", ErrBackendMismatch, want)
	}
	if got := r.Backend(); got != want {
		return fmt.Errorf("%w: %T is %s, want %s", ErrBackendMismatch, r, got, want)
	}
	return nil
}

// RendererFactory selects a backend family. Everything it produces is
// mutually compatible; objects from two factories must not be mixed.
//
// NewRendererAPI must only be called once the window's context is current.
type RendererFactory interface {
	Backend() Backend

	// CreateWindow creates and initializes a window whose close callback
	// dispatches event.WindowClose through d.
	CreateWindow(props WindowProperties, d *event.Dispatcher) (Window, error)
	NewShader(vertexSrc, fragmentSrc string) (Shader, error)
	NewVertexBuffer(vertices []float32) (VertexBuffer, error)
	NewIndexBuffer(indices []uint32) (IndexBuffer, error)
	NewVertexArray() (VertexArray, error)
	NewTexture2D(path string) (Texture2D, error)
	NewRendererAPI() RendererAPI
	NewInput(w Window) (Input, error)
}
