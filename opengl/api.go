package opengl

import (
	"fmt"
	"sync"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/bungine/graphics"
	"github.com/richinsley/bungine/logger"
)

// glInitOnce loads GL function pointers once per process.
var glInitOnce sync.Once

// RendererAPI issues GL commands on the current context.
type RendererAPI struct{}

func (r *RendererAPI) Backend() graphics.Backend { return graphics.BackendOpenGL }

// Init loads GL entry points and sets blend and depth state. The window
// context must be current.
func (r *RendererAPI) Init() error {
	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Enable(gl.DEPTH_TEST)

	logger.Logger().Info("OpenGL initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}

func (r *RendererAPI) SetViewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (r *RendererAPI) SetClearColor(color mgl32.Vec4) {
	gl.ClearColor(color[0], color[1], color[2], color[3])
}

func (r *RendererAPI) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// DrawIndexed draws va's index buffer as triangles.
func (r *RendererAPI) DrawIndexed(va graphics.VertexArray) error {
	if err := graphics.CheckBackend(graphics.BackendOpenGL, va); err != nil {
		return err
	}
	ib := va.IndexBuffer()
	if ib == nil {
		return fmt.Errorf("draw indexed: vertex array has no index buffer")
	}
	va.Bind()
	gl.DrawElements(gl.TRIANGLES, int32(ib.Count()), gl.UNSIGNED_INT, nil)
	return nil
}

// ReadPixels reads RGBA8 pixels from the current read framebuffer.
func (r *RendererAPI) ReadPixels(x, y, width, height int) ([]byte, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("read pixels: invalid size %dx%d", width, height)
	}
	buf := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(buf))
	if code := gl.GetError(); code != gl.NO_ERROR {
		return nil, fmt.Errorf("read pixels: gl error 0x%x", code)
	}
	return buf, nil
}
