package opengl

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/bungine/graphics"
	"github.com/richinsley/bungine/logger"
	"github.com/richinsley/bungine/translator"
)

// ErrShaderDestroyed is returned when uploading uniforms to a destroyed shader.
var ErrShaderDestroyed = errors.New("opengl: shader destroyed")

// Shader is a linked GL program. Sources starting with "#version 300 es"
// are translated to GLSL 4.10 first.
type Shader struct {
	program uint32
	// source uniform name -> name in the compiled program
	mappedNames map[string]string
	locations   map[string]int32
}

// NewShader compiles and links a program from vertex and fragment sources.
func NewShader(vertexSrc, fragmentSrc string) (*Shader, error) {
	s := &Shader{
		mappedNames: make(map[string]string),
		locations:   make(map[string]int32),
	}

	var err error
	if translator.NeedsTranslation(vertexSrc) {
		vertexSrc, err = s.translate(vertexSrc, translator.StageVertex)
		if err != nil {
			return nil, err
		}
	}
	if translator.NeedsTranslation(fragmentSrc) {
		fragmentSrc, err = s.translate(fragmentSrc, translator.StageFragment)
		if err != nil {
			return nil, err
		}
	}

	s.program, err = newProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}
	logger.Logger().Debug("shader program linked", "program", s.program)
	return s, nil
}

func (s *Shader) translate(src, stage string) (string, error) {
	res, err := translator.Translate(src, stage)
	if err != nil {
		return "", err
	}
	for name, mapped := range res.Uniforms {
		s.mappedNames[name] = mapped
	}
	return res.Code, nil
}

func (s *Shader) Backend() graphics.Backend { return graphics.BackendOpenGL }

func (s *Shader) Bind()   { gl.UseProgram(s.program) }
func (s *Shader) Unbind() { gl.UseProgram(0) }

// Program returns the GL program name.
func (s *Shader) Program() uint32 { return s.program }

// location returns -1 for uniforms the linker removed.
func (s *Shader) location(name string) (int32, error) {
	if s.program == 0 {
		return -1, ErrShaderDestroyed
	}
	if loc, ok := s.locations[name]; ok {
		return loc, nil
	}
	glName := name
	if mapped, ok := s.mappedNames[name]; ok {
		glName = mapped
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(glName+"\x00"))
	if loc == -1 {
		logger.Logger().Debug("uniform not active", "uniform", name, "program", s.program)
	}
	s.locations[name] = loc
	return loc, nil
}

func (s *Shader) UploadUniformInt(name string, v int32) error {
	loc, err := s.location(name)
	if err != nil {
		return err
	}
	if loc != -1 {
		gl.Uniform1i(loc, v)
	}
	return nil
}

func (s *Shader) UploadUniformFloat(name string, v float32) error {
	loc, err := s.location(name)
	if err != nil {
		return err
	}
	if loc != -1 {
		gl.Uniform1f(loc, v)
	}
	return nil
}

func (s *Shader) UploadUniformFloat4(name string, v mgl32.Vec4) error {
	loc, err := s.location(name)
	if err != nil {
		return err
	}
	if loc != -1 {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
	return nil
}

func (s *Shader) UploadUniformMat4(name string, m mgl32.Mat4) error {
	loc, err := s.location(name)
	if err != nil {
		return err
	}
	if loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &m[0])
	}
	return nil
}

func (s *Shader) Destroy() {
	if s.program == 0 {
		return
	}
	gl.DeleteProgram(s.program)
	s.program = 0
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", log)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", logText)
	}
	return shader, nil
}
