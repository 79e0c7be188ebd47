package graphics

import (
	"errors"
	"testing"
)

func TestShaderDataTypeSizes(t *testing.T) {
	tests := []struct {
		typ        ShaderDataType
		size       int
		components int
	}{
		{Float, 4, 1},
		{Float2, 8, 2},
		{Float3, 12, 3},
		{Float4, 16, 4},
		{Mat3, 36, 9},
		{Mat4, 64, 16},
		{Int, 4, 1},
		{Int4, 16, 4},
		{Bool, 1, 1},
		{ShaderDataNone, 0, 0},
	}
	for _, tt := range tests {
		if got := tt.typ.Size(); got != tt.size {
			t.Errorf("%v.Size() = %d, want %d", tt.typ, got, tt.size)
		}
		if got := tt.typ.ComponentCount(); got != tt.components {
			t.Errorf("%v.ComponentCount() = %d, want %d", tt.typ, got, tt.components)
		}
	}
}

func TestBufferLayoutOffsets(t *testing.T) {
	l := NewBufferLayout(
		BufferElement{Name: "aPosition", Type: Float3},
		BufferElement{Name: "aColor", Type: Float4},
		BufferElement{Name: "aTexCoord", Type: Float2},
	)

	if l.Stride() != 36 {
		t.Errorf("Stride() = %d, want 36", l.Stride())
	}
	wantOffsets := []int{0, 12, 28}
	for i, e := range l.Elements() {
		if e.Offset != wantOffsets[i] {
			t.Errorf("element %q offset = %d, want %d", e.Name, e.Offset, wantOffsets[i])
		}
	}
	if l.Empty() {
		t.Error("Empty() = true, want false")
	}
	if !(BufferLayout{}).Empty() {
		t.Error("zero layout Empty() = false, want true")
	}
}

func TestBufferLayoutElementsIsCopy(t *testing.T) {
	l := NewBufferLayout(BufferElement{Name: "a", Type: Float})
	els := l.Elements()
	els[0].Name = "changed"
	if l.Elements()[0].Name != "a" {
		t.Error("mutating Elements() result changed the layout")
	}
}

type fakeResource Backend

func (f fakeResource) Backend() Backend { return Backend(f) }

func TestCheckBackend(t *testing.T) {
	if err := CheckBackend(BackendOpenGL, fakeResource(BackendOpenGL)); err != nil {
		t.Errorf("CheckBackend(same) = %v, want nil", err)
	}
	if err := CheckBackend(BackendOpenGL, fakeResource(BackendNone)); !errors.Is(err, ErrBackendMismatch) {
		t.Errorf("CheckBackend(other) = %v, want %v", err, ErrBackendMismatch)
	}
	if err := CheckBackend(BackendOpenGL, nil); !errors.Is(err, ErrBackendMismatch) {
		t.Errorf("CheckBackend(nil) = %v, want %v", err, ErrBackendMismatch)
	}
}

func TestBackendString(t *testing.T) {
	if BackendOpenGL.String() != "opengl" {
		t.Errorf("BackendOpenGL.String() = %q", BackendOpenGL.String())
	}
	if Backend(9).String() != "backend(9)" {
		t.Errorf("Backend(9).String() = %q", Backend(9).String())
	}
}
