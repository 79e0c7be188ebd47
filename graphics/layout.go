package graphics

import (
	"errors"
	"fmt"
)

// ErrEmptyLayout is returned when a vertex buffer without a layout is
// added to a vertex array.
var ErrEmptyLayout = errors.New("graphics: vertex buffer has no layout")

// ShaderDataType is the type of one vertex attribute.
type ShaderDataType int

const (
	ShaderDataNone ShaderDataType = iota
	Float
	Float2
	Float3
	Float4
	Mat3
	Mat4
	Int
	Int2
	Int3
	Int4
	Bool
)

// Size returns the size in bytes of t.
func (t ShaderDataType) Size() int {
	switch t {
	case Float, Int:
		return 4
	case Float2, Int2:
		return 4 * 2
	case Float3, Int3:
		return 4 * 3
	case Float4, Int4:
		return 4 * 4
	case Mat3:
		return 4 * 3 * 3
	case Mat4:
		return 4 * 4 * 4
	case Bool:
		return 1
	}
	return 0
}

// ComponentCount returns the number of scalar components in t.
func (t ShaderDataType) ComponentCount() int {
	switch t {
	case Float, Int, Bool:
		return 1
	case Float2, Int2:
		return 2
	case Float3, Int3:
		return 3
	case Float4, Int4:
		return 4
	case Mat3:
		return 3 * 3
	case Mat4:
		return 4 * 4
	}
	return 0
}

// IsInteger reports whether t is uploaded as an integer attribute.
func (t ShaderDataType) IsInteger() bool {
	switch t {
	case Int, Int2, Int3, Int4, Bool:
		return true
	}
	return false
}

func (t ShaderDataType) String() string {
	names := [...]string{"none", "float", "float2", "float3", "float4", "mat3", "mat4", "int", "int2", "int3", "int4", "bool"}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return fmt.Sprintf("ShaderDataType(%d)", int(t))
}

// BufferElement is one named attribute in a BufferLayout.
type BufferElement struct {
	Name       string
	Type       ShaderDataType
	Normalized bool
	Size       int
	Offset     int
}

// BufferLayout describes interleaved vertex attributes.
type BufferLayout struct {
	elements []BufferElement
	stride   int
}

// NewBufferLayout computes offsets and stride for elements in order.
func NewBufferLayout(elements ...BufferElement) BufferLayout {
	l := BufferLayout{elements: make([]BufferElement, len(elements))}
	offset := 0
	for i, e := range elements {
		e.Size = e.Type.Size()
		e.Offset = offset
		offset += e.Size
		l.elements[i] = e
	}
	l.stride = offset
	return l
}

func (l BufferLayout) Elements() []BufferElement {
	return append([]BufferElement(nil), l.elements...)
}

func (l BufferLayout) Stride() int { return l.stride }
func (l BufferLayout) Empty() bool { return len(l.elements) == 0 }
