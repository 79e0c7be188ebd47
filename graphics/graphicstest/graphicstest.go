// Package graphicstest provides an in-memory graphics backend for tests.
// Nothing touches a GPU; every call is recorded.
package graphicstest

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/bungine/event"
	"github.com/richinsley/bungine/graphics"
)

// BackendFake is the Backend tag of every fake resource.
const BackendFake graphics.Backend = 100

// Factory is a graphics.RendererFactory producing fakes.
type Factory struct {
	// WindowErr, if set, is returned by CreateWindow.
	WindowErr error
	// APIInitErr, if set, is returned by RendererAPI.Init.
	APIInitErr error
	// Pixels is returned by RendererAPI.ReadPixels when non-nil.
	Pixels []byte

	Windows []*Window
	API     *RendererAPI
}

func (f *Factory) Backend() graphics.Backend { return BackendFake }

func (f *Factory) CreateWindow(props graphics.WindowProperties, d *event.Dispatcher) (graphics.Window, error) {
	if f.WindowErr != nil {
		return nil, fmt.Errorf("%w: %v", graphics.ErrWindowInit, f.WindowErr)
	}
	w := &Window{Dispatcher: d}
	if err := w.Init(props); err != nil {
		return nil, err
	}
	f.Windows = append(f.Windows, w)
	return w, nil
}

func (f *Factory) NewShader(vertexSrc, fragmentSrc string) (graphics.Shader, error) {
	return &Shader{Vertex: vertexSrc, Fragment: fragmentSrc, Uniforms: map[string]any{}}, nil
}

func (f *Factory) NewVertexBuffer(vertices []float32) (graphics.VertexBuffer, error) {
	return &VertexBuffer{Data: append([]float32(nil), vertices...)}, nil
}

func (f *Factory) NewIndexBuffer(indices []uint32) (graphics.IndexBuffer, error) {
	return &IndexBuffer{Data: append([]uint32(nil), indices...)}, nil
}

func (f *Factory) NewVertexArray() (graphics.VertexArray, error) {
	return &VertexArray{}, nil
}

func (f *Factory) NewTexture2D(path string) (graphics.Texture2D, error) {
	return &Texture2D{Path: path, W: 1, H: 1}, nil
}

func (f *Factory) NewRendererAPI() graphics.RendererAPI {
	f.API = &RendererAPI{InitErr: f.APIInitErr, Pixels: f.Pixels}
	return f.API
}

func (f *Factory) NewInput(w graphics.Window) (graphics.Input, error) {
	if err := graphics.CheckBackend(BackendFake, w); err != nil {
		return nil, err
	}
	return &Input{Keys: map[int]bool{}, Buttons: map[int]bool{}}, nil
}

// Window is a fake window. OnPresent, if set, runs inside OnUpdate the
// way OS callbacks run inside a poll.
type Window struct {
	Dispatcher *event.Dispatcher
	Props      graphics.WindowProperties
	OnPresent  func(w *Window) error

	Presents  int
	Destroyed int
	vsync     bool
}

func (w *Window) Backend() graphics.Backend { return BackendFake }

func (w *Window) Init(props graphics.WindowProperties) error {
	w.Props = props
	w.SetVSync(props.VSync)
	return nil
}

func (w *Window) Destroy() { w.Destroyed++ }

func (w *Window) OnUpdate() error {
	w.Presents++
	if w.OnPresent != nil {
		return w.OnPresent(w)
	}
	return nil
}

// RequestClose dispatches a WindowClose as the OS close button would.
func (w *Window) RequestClose() error {
	return w.Dispatcher.Dispatch(event.WindowClose{WindowID: w.WindowID()})
}

func (w *Window) VSync() bool           { return w.vsync }
func (w *Window) SetVSync(enabled bool) { w.vsync = enabled }
func (w *Window) WindowID() uintptr     { return 1 }
func (w *Window) Width() int            { return w.Props.Width }
func (w *Window) Height() int           { return w.Props.Height }
func (w *Window) Title() string         { return w.Props.Title }

// Shader records uniform uploads.
type Shader struct {
	Vertex, Fragment string
	Uniforms         map[string]any
	Binds            int
	Destroyed        bool
}

func (s *Shader) Backend() graphics.Backend { return BackendFake }
func (s *Shader) Bind()                     { s.Binds++ }
func (s *Shader) Unbind()                   {}
func (s *Shader) Destroy()                  { s.Destroyed = true }

func (s *Shader) UploadUniformInt(name string, v int32) error {
	s.Uniforms[name] = v
	return nil
}

func (s *Shader) UploadUniformFloat(name string, v float32) error {
	s.Uniforms[name] = v
	return nil
}

func (s *Shader) UploadUniformFloat4(name string, v mgl32.Vec4) error {
	s.Uniforms[name] = v
	return nil
}

func (s *Shader) UploadUniformMat4(name string, m mgl32.Mat4) error {
	s.Uniforms[name] = m
	return nil
}

type VertexBuffer struct {
	Data      []float32
	layout    graphics.BufferLayout
	Destroyed bool
}

func (vb *VertexBuffer) Backend() graphics.Backend              { return BackendFake }
func (vb *VertexBuffer) Bind()                                  {}
func (vb *VertexBuffer) Unbind()                                {}
func (vb *VertexBuffer) Layout() graphics.BufferLayout          { return vb.layout }
func (vb *VertexBuffer) SetLayout(layout graphics.BufferLayout) { vb.layout = layout }
func (vb *VertexBuffer) Destroy()                               { vb.Destroyed = true }

type IndexBuffer struct {
	Data      []uint32
	Destroyed bool
}

func (ib *IndexBuffer) Backend() graphics.Backend { return BackendFake }
func (ib *IndexBuffer) Bind()                     {}
func (ib *IndexBuffer) Unbind()                   {}
func (ib *IndexBuffer) Count() int                { return len(ib.Data) }
func (ib *IndexBuffer) Destroy()                  { ib.Destroyed = true }

type VertexArray struct {
	vbs       []graphics.VertexBuffer
	ib        graphics.IndexBuffer
	Binds     int
	Destroyed bool
}

func (va *VertexArray) Backend() graphics.Backend { return BackendFake }
func (va *VertexArray) Bind()                     { va.Binds++ }
func (va *VertexArray) Unbind()                   {}
func (va *VertexArray) Destroy()                  { va.Destroyed = true }

func (va *VertexArray) AddVertexBuffer(vb graphics.VertexBuffer) error {
	if err := graphics.CheckBackend(BackendFake, vb); err != nil {
		return err
	}
	if vb.Layout().Empty() {
		return graphics.ErrEmptyLayout
	}
	va.vbs = append(va.vbs, vb)
	return nil
}

func (va *VertexArray) SetIndexBuffer(ib graphics.IndexBuffer) error {
	if err := graphics.CheckBackend(BackendFake, ib); err != nil {
		return err
	}
	va.ib = ib
	return nil
}

func (va *VertexArray) VertexBuffers() []graphics.VertexBuffer { return va.vbs }
func (va *VertexArray) IndexBuffer() graphics.IndexBuffer      { return va.ib }

type Texture2D struct {
	Path      string
	W, H      int
	BoundSlot uint32
	Destroyed bool
}

func (t *Texture2D) Backend() graphics.Backend { return BackendFake }
func (t *Texture2D) Width() int                { return t.W }
func (t *Texture2D) Height() int               { return t.H }
func (t *Texture2D) Bind(slot uint32)          { t.BoundSlot = slot }
func (t *Texture2D) Destroy()                  { t.Destroyed = true }

// RendererAPI records the commands it receives.
type RendererAPI struct {
	InitErr error
	Pixels  []byte

	Initialized bool
	Viewport    [4]int
	ClearColor  mgl32.Vec4
	Clears      int
	Draws       []graphics.VertexArray
	Reads       int
}

func (r *RendererAPI) Backend() graphics.Backend { return BackendFake }

func (r *RendererAPI) Init() error {
	if r.InitErr != nil {
		return r.InitErr
	}
	r.Initialized = true
	return nil
}

func (r *RendererAPI) SetViewport(x, y, width, height int) {
	r.Viewport = [4]int{x, y, width, height}
}

func (r *RendererAPI) SetClearColor(color mgl32.Vec4) { r.ClearColor = color }
func (r *RendererAPI) Clear()                         { r.Clears++ }

func (r *RendererAPI) DrawIndexed(va graphics.VertexArray) error {
	if err := graphics.CheckBackend(BackendFake, va); err != nil {
		return err
	}
	r.Draws = append(r.Draws, va)
	return nil
}

// ReadPixels returns Pixels if set, otherwise a buffer where every byte
// of row y equals y.
func (r *RendererAPI) ReadPixels(x, y, width, height int) ([]byte, error) {
	r.Reads++
	if r.Pixels != nil {
		return append([]byte(nil), r.Pixels...), nil
	}
	buf := make([]byte, width*height*4)
	for row := 0; row < height; row++ {
		for i := 0; i < width*4; i++ {
			buf[row*width*4+i] = byte(row)
		}
	}
	return buf, nil
}

// Input reports the states set in its maps.
type Input struct {
	Keys    map[int]bool
	Buttons map[int]bool
	X, Y    float32
}

func (in *Input) Backend() graphics.Backend         { return BackendFake }
func (in *Input) IsKeyPressed(key int) bool         { return in.Keys[key] }
func (in *Input) IsMouseButtonPressed(b int) bool   { return in.Buttons[b] }
func (in *Input) MousePosition() (float32, float32) { return in.X, in.Y }
