package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/bungine/graphics"
)

// VertexArray records attribute bindings for its vertex buffers and the
// bound index buffer.
type VertexArray struct {
	id            uint32
	attribIndex   uint32
	vertexBuffers []graphics.VertexBuffer
	indexBuffer   graphics.IndexBuffer
}

// NewVertexArray creates an empty vertex array object.
func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.id)
	return va
}

func (va *VertexArray) Backend() graphics.Backend { return graphics.BackendOpenGL }

func (va *VertexArray) Bind()   { gl.BindVertexArray(va.id) }
func (va *VertexArray) Unbind() { gl.BindVertexArray(0) }

// glBaseType maps an attribute type to its GL component type.
func glBaseType(t graphics.ShaderDataType) uint32 {
	switch t {
	case graphics.Int, graphics.Int2, graphics.Int3, graphics.Int4:
		return gl.INT
	case graphics.Bool:
		return gl.UNSIGNED_BYTE
	default:
		return gl.FLOAT
	}
}

// attribSlot is one vertex attribute location fed from a buffer.
type attribSlot struct {
	index      uint32
	size       int32
	xtype      uint32
	normalized bool
	integer    bool
	offset     int
}

// attribSlots assigns layout's elements to locations starting at first.
// Matrices take one location per column. Every attribute advances per
// vertex.
func attribSlots(layout graphics.BufferLayout, first uint32) []attribSlot {
	var slots []attribSlot
	index := first
	for _, e := range layout.Elements() {
		switch e.Type {
		case graphics.Mat3, graphics.Mat4:
			n := int32(3)
			if e.Type == graphics.Mat4 {
				n = 4
			}
			for col := int32(0); col < n; col++ {
				slots = append(slots, attribSlot{
					index:      index,
					size:       n,
					xtype:      gl.FLOAT,
					normalized: e.Normalized,
					offset:     e.Offset + int(4*n*col),
				})
				index++
			}
		default:
			slots = append(slots, attribSlot{
				index:      index,
				size:       int32(e.Type.ComponentCount()),
				xtype:      glBaseType(e.Type),
				normalized: e.Normalized,
				integer:    e.Type.IsInteger(),
				offset:     e.Offset,
			})
			index++
		}
	}
	return slots
}

// AddVertexBuffer binds vb's attributes at the next free locations.
func (va *VertexArray) AddVertexBuffer(vb graphics.VertexBuffer) error {
	if err := graphics.CheckBackend(graphics.BackendOpenGL, vb); err != nil {
		return err
	}
	if _, ok := vb.(*VertexBuffer); !ok {
		return fmt.Errorf("%w: %T is not an OpenGL vertex buffer", graphics.ErrBackendMismatch, vb)
	}
	layout := vb.Layout()
	if layout.Empty() {
		return graphics.ErrEmptyLayout
	}

	gl.BindVertexArray(va.id)
	vb.Bind()

	stride := int32(layout.Stride())
	slots := attribSlots(layout, va.attribIndex)
	for _, a := range slots {
		gl.EnableVertexAttribArray(a.index)
		if a.integer {
			gl.VertexAttribIPointer(a.index, a.size, a.xtype, stride, gl.PtrOffset(a.offset))
		} else {
			gl.VertexAttribPointer(a.index, a.size, a.xtype, a.normalized, stride, gl.PtrOffset(a.offset))
		}
	}
	va.attribIndex += uint32(len(slots))

	gl.BindVertexArray(0)
	va.vertexBuffers = append(va.vertexBuffers, vb)
	return nil
}

// SetIndexBuffer binds ib to the vertex array.
func (va *VertexArray) SetIndexBuffer(ib graphics.IndexBuffer) error {
	if err := graphics.CheckBackend(graphics.BackendOpenGL, ib); err != nil {
		return err
	}
	if _, ok := ib.(*IndexBuffer); !ok {
		return fmt.Errorf("%w: %T is not an OpenGL index buffer", graphics.ErrBackendMismatch, ib)
	}
	gl.BindVertexArray(va.id)
	ib.Bind()
	gl.BindVertexArray(0)
	va.indexBuffer = ib
	return nil
}

func (va *VertexArray) VertexBuffers() []graphics.VertexBuffer {
	return append([]graphics.VertexBuffer(nil), va.vertexBuffers...)
}

func (va *VertexArray) IndexBuffer() graphics.IndexBuffer { return va.indexBuffer }

// Destroy deletes the vertex array and every buffer bound to it.
func (va *VertexArray) Destroy() {
	for _, vb := range va.vertexBuffers {
		vb.Destroy()
	}
	if va.indexBuffer != nil {
		va.indexBuffer.Destroy()
	}
	if va.id != 0 {
		gl.DeleteVertexArrays(1, &va.id)
		va.id = 0
	}
}
