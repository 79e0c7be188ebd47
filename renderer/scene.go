package renderer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/bungine/graphics"
)

// Uniform names every scene shader must declare.
const (
	UniformViewProjection = "uViewProjection"
	UniformTransform      = "uTransform"
)

// Scene collects draw submissions between BeginScene and End.
type Scene struct {
	api            graphics.RendererAPI
	viewProjection mgl32.Mat4
	submitted      int
	ended          bool
}

// Submit draws va with shader at transform.
func (s *Scene) Submit(shader graphics.Shader, va graphics.VertexArray, transform mgl32.Mat4) error {
	if s.ended {
		return fmt.Errorf("submit: scene already ended")
	}
	backend := s.api.Backend()
	if err := graphics.CheckBackend(backend, shader); err != nil {
		return err
	}
	if err := graphics.CheckBackend(backend, va); err != nil {
		return err
	}

	shader.Bind()
	if err := shader.UploadUniformMat4(UniformViewProjection, s.viewProjection); err != nil {
		return err
	}
	if err := shader.UploadUniformMat4(UniformTransform, transform); err != nil {
		return err
	}
	va.Bind()
	if err := s.api.DrawIndexed(va); err != nil {
		return err
	}
	s.submitted++
	return nil
}

// Submitted returns the number of successful submissions.
func (s *Scene) Submitted() int { return s.submitted }

// End closes the scene. Further submissions fail.
func (s *Scene) End() {
	s.ended = true
}
