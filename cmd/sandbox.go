package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/bungine/application"
	"github.com/richinsley/bungine/clock"
	"github.com/richinsley/bungine/event"
	"github.com/richinsley/bungine/graphics"
	"github.com/richinsley/bungine/layer"
	"github.com/richinsley/bungine/logger"
	"github.com/richinsley/bungine/renderer"
	"github.com/richinsley/bungine/shader"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	cameraSpeed  = 1.5  // units per second
	cameraZoom   = 1.0  // half height of the view
	pulseSeconds = 1.25 // one colour pulse
)

// sandboxLayer draws a spinning, pulsing square and an optional textured
// quad, with the camera driven by the arrow keys.
type sandboxLayer struct {
	layer.Base

	app         *application.Application
	texturePath string

	camera   *renderer.OrthographicCamera
	flat     graphics.Shader
	square   graphics.VertexArray
	textured graphics.Shader
	quad     graphics.VertexArray
	texture  graphics.Texture2D

	pulse    *gween.Sequence
	spin     *gween.Tween
	rotation float32
}

func newSandboxLayer(app *application.Application, texturePath string) *sandboxLayer {
	return &sandboxLayer{app: app, texturePath: texturePath}
}

func (s *sandboxLayer) OnAttach() error {
	f := s.app.Context().Factory()

	aspect := float32(s.app.Window().Width()) / float32(s.app.Window().Height())
	s.camera = renderer.NewOrthographicCamera(-aspect*cameraZoom, aspect*cameraZoom, -cameraZoom, cameraZoom)

	var err error
	vs, fs := shader.FlatColor(true)
	if s.flat, err = f.NewShader(vs, fs); err != nil {
		return fmt.Errorf("flat color shader: %w", err)
	}
	s.square, err = newVertexArray(f,
		[]float32{
			-0.5, -0.5, 0,
			0.5, -0.5, 0,
			0.5, 0.5, 0,
			-0.5, 0.5, 0,
		},
		graphics.NewBufferLayout(graphics.BufferElement{Name: "aPosition", Type: graphics.Float3}),
	)
	if err != nil {
		return err
	}

	if s.texturePath != "" {
		if err := s.attachTexture(f); err != nil {
			return err
		}
	}

	s.pulse = gween.NewSequence(gween.New(0.2, 1, pulseSeconds, ease.InOutSine))
	s.pulse.SetYoyo(true)
	s.pulse.SetLoop(-1)
	s.spin = gween.New(0, 360, 4, ease.InOutQuad)
	return nil
}

func (s *sandboxLayer) attachTexture(f graphics.RendererFactory) error {
	var err error
	vs, fs := shader.Texture(false)
	if s.textured, err = f.NewShader(vs, fs); err != nil {
		return fmt.Errorf("texture shader: %w", err)
	}
	if s.texture, err = f.NewTexture2D(s.texturePath); err != nil {
		return err
	}
	s.quad, err = newVertexArray(f,
		[]float32{
			-0.5, -0.5, 0, 0, 0,
			0.5, -0.5, 0, 1, 0,
			0.5, 0.5, 0, 1, 1,
			-0.5, 0.5, 0, 0, 1,
		},
		graphics.NewBufferLayout(
			graphics.BufferElement{Name: "aPosition", Type: graphics.Float3},
			graphics.BufferElement{Name: "aTexCoord", Type: graphics.Float2},
		),
	)
	if err != nil {
		return err
	}
	s.textured.Bind()
	if err := s.textured.UploadUniformInt("uTexture", 0); err != nil {
		return err
	}
	logger.Logger().Info("texture loaded", "path", s.texturePath, "width", s.texture.Width(), "height", s.texture.Height())
	return nil
}

func newVertexArray(f graphics.RendererFactory, vertices []float32, layout graphics.BufferLayout) (graphics.VertexArray, error) {
	va, err := f.NewVertexArray()
	if err != nil {
		return nil, err
	}
	vb, err := f.NewVertexBuffer(vertices)
	if err != nil {
		va.Destroy()
		return nil, err
	}
	vb.SetLayout(layout)
	if err := va.AddVertexBuffer(vb); err != nil {
		vb.Destroy()
		va.Destroy()
		return nil, err
	}
	ib, err := f.NewIndexBuffer([]uint32{0, 1, 2, 2, 3, 0})
	if err != nil {
		va.Destroy()
		return nil, err
	}
	if err := va.SetIndexBuffer(ib); err != nil {
		ib.Destroy()
		va.Destroy()
		return nil, err
	}
	return va, nil
}

func (s *sandboxLayer) OnUpdate(ts clock.TimeStep) error {
	s.moveCamera(ts)

	brightness, _, _ := s.pulse.Update(ts.Seconds())
	rotation, done := s.spin.Update(ts.Seconds())
	s.rotation = rotation
	if done {
		s.spin.Reset()
	}

	r := s.app.Renderer()
	r.SetClearColor(mgl32.Vec4{0.1, 0.1, 0.12, 1})
	r.Clear()

	scene, err := r.BeginScene(s.camera)
	if err != nil {
		return err
	}
	defer scene.End()

	s.flat.Bind()
	if err := s.flat.UploadUniformFloat4("uColor", mgl32.Vec4{0.2, 0.3 * brightness, 0.8 * brightness, 1}); err != nil {
		return err
	}
	transform := mgl32.Translate3D(-0.6, 0, 0).Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(s.rotation)))
	if err := scene.Submit(s.flat, s.square, transform); err != nil {
		return err
	}

	if s.texture != nil {
		s.texture.Bind(0)
		if err := scene.Submit(s.textured, s.quad, mgl32.Translate3D(0.6, 0, 0)); err != nil {
			return err
		}
	}
	return nil
}

func (s *sandboxLayer) moveCamera(ts clock.TimeStep) {
	in := s.app.Input()
	if in == nil {
		return
	}
	pos := s.camera.Position()
	step := cameraSpeed * ts.Seconds()
	if in.IsKeyPressed(int(glfw.KeyLeft)) {
		pos[0] -= step
	}
	if in.IsKeyPressed(int(glfw.KeyRight)) {
		pos[0] += step
	}
	if in.IsKeyPressed(int(glfw.KeyDown)) {
		pos[1] -= step
	}
	if in.IsKeyPressed(int(glfw.KeyUp)) {
		pos[1] += step
	}
	if pos != s.camera.Position() {
		s.camera.SetPosition(pos)
	}
}

func (s *sandboxLayer) OnEvent(e event.Event) error {
	switch e := e.(type) {
	case event.Key:
		if e.Key == int(glfw.KeyEscape) && e.Action == int(glfw.Press) {
			s.app.Close()
		}
	case event.WindowResize:
		if e.Width > 0 && e.Height > 0 {
			aspect := float32(e.Width) / float32(e.Height)
			s.camera.SetProjection(-aspect*cameraZoom, aspect*cameraZoom, -cameraZoom, cameraZoom)
		}
	}
	return nil
}

// OnDetach runs after the window, and with it the GL context, is gone;
// the GL objects were released with the context.
func (s *sandboxLayer) OnDetach() error {
	logger.Logger().Debug("sandbox detached", "rotation", s.rotation)
	return nil
}
