package opengl

import (
	"errors"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/bungine/graphics"
)

// ErrEmptyBuffer is returned when creating a buffer from no data.
var ErrEmptyBuffer = errors.New("opengl: empty buffer data")

// VertexBuffer is a GL_ARRAY_BUFFER with static data.
type VertexBuffer struct {
	id     uint32
	layout graphics.BufferLayout
}

// NewVertexBuffer uploads vertices into a new buffer object.
func NewVertexBuffer(vertices []float32) (*VertexBuffer, error) {
	if len(vertices) == 0 {
		return nil, ErrEmptyBuffer
	}
	vb := &VertexBuffer{}
	gl.GenBuffers(1, &vb.id)
	gl.BindBuffer(gl.ARRAY_BUFFER, vb.id)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vb, nil
}

func (vb *VertexBuffer) Backend() graphics.Backend { return graphics.BackendOpenGL }

func (vb *VertexBuffer) Bind()   { gl.BindBuffer(gl.ARRAY_BUFFER, vb.id) }
func (vb *VertexBuffer) Unbind() { gl.BindBuffer(gl.ARRAY_BUFFER, 0) }

func (vb *VertexBuffer) Layout() graphics.BufferLayout          { return vb.layout }
func (vb *VertexBuffer) SetLayout(layout graphics.BufferLayout) { vb.layout = layout }

func (vb *VertexBuffer) Destroy() {
	if vb.id != 0 {
		gl.DeleteBuffers(1, &vb.id)
		vb.id = 0
	}
}

// IndexBuffer is a GL_ELEMENT_ARRAY_BUFFER of uint32 indices.
type IndexBuffer struct {
	id    uint32
	count int
}

// NewIndexBuffer uploads indices into a new buffer object.
func NewIndexBuffer(indices []uint32) (*IndexBuffer, error) {
	if len(indices) == 0 {
		return nil, ErrEmptyBuffer
	}
	ib := &IndexBuffer{count: len(indices)}
	gl.GenBuffers(1, &ib.id)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return ib, nil
}

func (ib *IndexBuffer) Backend() graphics.Backend { return graphics.BackendOpenGL }

func (ib *IndexBuffer) Bind()      { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, ib.id) }
func (ib *IndexBuffer) Unbind()    { gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0) }
func (ib *IndexBuffer) Count() int { return ib.count }

func (ib *IndexBuffer) Destroy() {
	if ib.id != 0 {
		gl.DeleteBuffers(1, &ib.id)
		ib.id = 0
	}
}
