// Package opengl is the OpenGL 4.1 backend: a graphics.RendererFactory
// whose products all share one GL context.
package opengl

import (
	"fmt"

	"github.com/richinsley/bungine/event"
	"github.com/richinsley/bungine/glfwcontext"
	"github.com/richinsley/bungine/graphics"
	"github.com/richinsley/bungine/headless"
)

// Factory produces OpenGL windows and resources.
type Factory struct {
	headless      bool
	textureFilter string
	textureWrap   string
}

// Option configures a Factory.
type Option func(*Factory)

// WithHeadless makes CreateWindow return an EGL pbuffer instead of a
// GLFW window.
func WithHeadless() Option {
	return func(f *Factory) { f.headless = true }
}

// WithTextureSampling sets the filter ("linear", "nearest", "mipmap") and
// wrap ("repeat", "clamp") used by NewTexture2D.
func WithTextureSampling(filter, wrap string) Option {
	return func(f *Factory) {
		f.textureFilter = filter
		f.textureWrap = wrap
	}
}

// NewFactory returns an OpenGL factory.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		textureFilter: "linear",
		textureWrap:   "repeat",
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Factory) Backend() graphics.Backend { return graphics.BackendOpenGL }

// Headless reports whether the factory creates offscreen windows.
func (f *Factory) Headless() bool { return f.headless }

func (f *Factory) CreateWindow(props graphics.WindowProperties, d *event.Dispatcher) (graphics.Window, error) {
	var w graphics.Window
	if f.headless {
		w = headless.New()
	} else {
		w = glfwcontext.New(d)
	}
	if err := w.Init(props); err != nil {
		return nil, err
	}
	return w, nil
}

func (f *Factory) NewShader(vertexSrc, fragmentSrc string) (graphics.Shader, error) {
	s, err := NewShader(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (f *Factory) NewVertexBuffer(vertices []float32) (graphics.VertexBuffer, error) {
	vb, err := NewVertexBuffer(vertices)
	if err != nil {
		return nil, err
	}
	return vb, nil
}

func (f *Factory) NewIndexBuffer(indices []uint32) (graphics.IndexBuffer, error) {
	ib, err := NewIndexBuffer(indices)
	if err != nil {
		return nil, err
	}
	return ib, nil
}

func (f *Factory) NewVertexArray() (graphics.VertexArray, error) {
	return NewVertexArray(), nil
}

func (f *Factory) NewTexture2D(path string) (graphics.Texture2D, error) {
	tex, err := NewTexture2D(path, f.textureFilter, f.textureWrap)
	if err != nil {
		return nil, err
	}
	return tex, nil
}

func (f *Factory) NewRendererAPI() graphics.RendererAPI {
	return &RendererAPI{}
}

// NewInput binds an Input poller to a GLFW window. Headless windows have
// no input devices and get an Input that reports nothing pressed.
func (f *Factory) NewInput(w graphics.Window) (graphics.Input, error) {
	if err := graphics.CheckBackend(graphics.BackendOpenGL, w); err != nil {
		return nil, err
	}
	switch win := w.(type) {
	case *glfwcontext.Window:
		return glfwcontext.NewInput(win), nil
	case *headless.Window:
		return nullInput{}, nil
	default:
		return nil, fmt.Errorf("%w: %T is not an OpenGL window", graphics.ErrBackendMismatch, w)
	}
}

type nullInput struct{}

func (nullInput) Backend() graphics.Backend         { return graphics.BackendOpenGL }
func (nullInput) IsKeyPressed(int) bool             { return false }
func (nullInput) IsMouseButtonPressed(int) bool     { return false }
func (nullInput) MousePosition() (float32, float32) { return 0, 0 }
