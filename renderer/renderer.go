// Package renderer is the backend-neutral render command surface: scene
// submission with a camera, viewport and clear handling.
package renderer

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/bungine/graphics"
	"github.com/richinsley/bungine/logger"
)

// ErrNotInitialized is returned when the renderer is used before Init.
var ErrNotInitialized = errors.New("renderer: not initialized")

// Renderer owns the RendererAPI produced by the active factory.
type Renderer struct {
	factory graphics.RendererFactory
	api     graphics.RendererAPI
}

// New returns a Renderer for factory. Call Init once the window context
// is current.
func New(factory graphics.RendererFactory) *Renderer {
	return &Renderer{factory: factory}
}

// Init creates and initializes the backend's RendererAPI.
func (r *Renderer) Init() error {
	api := r.factory.NewRendererAPI()
	if err := graphics.CheckBackend(r.factory.Backend(), api); err != nil {
		return err
	}
	if err := api.Init(); err != nil {
		return fmt.Errorf("renderer init: %w", err)
	}
	r.api = api
	logger.Logger().Info("renderer initialized", "backend", r.factory.Backend())
	return nil
}

// API returns the command executor, nil before Init.
func (r *Renderer) API() graphics.RendererAPI { return r.api }

// OnWindowResize resets the viewport to the new framebuffer size.
func (r *Renderer) OnWindowResize(width, height int) {
	if r.api == nil {
		return
	}
	r.api.SetViewport(0, 0, width, height)
}

func (r *Renderer) SetClearColor(color mgl32.Vec4) {
	if r.api != nil {
		r.api.SetClearColor(color)
	}
}

func (r *Renderer) Clear() {
	if r.api != nil {
		r.api.Clear()
	}
}

// BeginScene starts a scene viewed through camera.
func (r *Renderer) BeginScene(camera *OrthographicCamera) (*Scene, error) {
	if r.api == nil {
		return nil, ErrNotInitialized
	}
	if camera == nil {
		return nil, fmt.Errorf("begin scene: nil camera")
	}
	return &Scene{
		api:            r.api,
		viewProjection: camera.ViewProjection(),
	}, nil
}
