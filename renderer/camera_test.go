package renderer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraDefaultsToProjection(t *testing.T) {
	c := NewOrthographicCamera(-2, 2, -1, 1)
	if !c.View().ApproxEqual(mgl32.Ident4()) {
		t.Errorf("View() = %v, want identity", c.View())
	}
	want := mgl32.Ortho(-2, 2, -1, 1, -1, 1)
	if !c.ViewProjection().ApproxEqual(want) {
		t.Errorf("ViewProjection() = %v, want %v", c.ViewProjection(), want)
	}
}

func TestCameraPosition(t *testing.T) {
	c := NewOrthographicCamera(-1, 1, -1, 1)
	c.SetPosition(mgl32.Vec3{1, 2, 0})

	got := c.View().Mul4x1(mgl32.Vec4{1, 2, 0, 1})
	if !got.ApproxEqual(mgl32.Vec4{0, 0, 0, 1}) {
		t.Errorf("camera position maps to %v, want origin", got)
	}
	if c.Position() != (mgl32.Vec3{1, 2, 0}) {
		t.Errorf("Position() = %v", c.Position())
	}
}

func TestCameraRotation(t *testing.T) {
	c := NewOrthographicCamera(-1, 1, -1, 1)
	c.SetRotation(90)

	got := c.View().Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	want := mgl32.Vec4{0, -1, 0, 1}
	if !got.ApproxEqualThreshold(want, 1e-5) {
		t.Errorf("rotated point = %v, want %v", got, want)
	}
	if c.Rotation() != 90 {
		t.Errorf("Rotation() = %v, want 90", c.Rotation())
	}
}

func TestCameraSetProjectionKeepsView(t *testing.T) {
	c := NewOrthographicCamera(-1, 1, -1, 1)
	c.SetPosition(mgl32.Vec3{0.5, 0, 0})
	view := c.View()

	c.SetProjection(-4, 4, -3, 3)
	if !c.View().ApproxEqual(view) {
		t.Errorf("SetProjection changed the view matrix")
	}
	want := mgl32.Ortho(-4, 4, -3, 3, -1, 1).Mul4(view)
	if !c.ViewProjection().ApproxEqual(want) {
		t.Errorf("ViewProjection() = %v, want %v", c.ViewProjection(), want)
	}
}
