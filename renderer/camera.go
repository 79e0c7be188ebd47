package renderer

import "github.com/go-gl/mathgl/mgl32"

// OrthographicCamera is a 2D camera looking down -Z.
type OrthographicCamera struct {
	projection     mgl32.Mat4
	view           mgl32.Mat4
	viewProjection mgl32.Mat4

	position mgl32.Vec3
	rotation float32 // degrees around Z
}

// NewOrthographicCamera returns a camera at the origin with the given
// clip-space bounds and near/far planes at -1 and 1.
func NewOrthographicCamera(left, right, bottom, top float32) *OrthographicCamera {
	c := &OrthographicCamera{
		projection: mgl32.Ortho(left, right, bottom, top, -1, 1),
		view:       mgl32.Ident4(),
	}
	c.recalculateViewMatrix()
	return c
}

// SetProjection replaces the projection bounds, e.g. after a resize.
func (c *OrthographicCamera) SetProjection(left, right, bottom, top float32) {
	c.projection = mgl32.Ortho(left, right, bottom, top, -1, 1)
	c.viewProjection = c.projection.Mul4(c.view)
}

func (c *OrthographicCamera) Position() mgl32.Vec3 { return c.position }

func (c *OrthographicCamera) SetPosition(p mgl32.Vec3) {
	c.position = p
	c.recalculateViewMatrix()
}

func (c *OrthographicCamera) Rotation() float32 { return c.rotation }

func (c *OrthographicCamera) SetRotation(degrees float32) {
	c.rotation = degrees
	c.recalculateViewMatrix()
}

func (c *OrthographicCamera) Projection() mgl32.Mat4     { return c.projection }
func (c *OrthographicCamera) View() mgl32.Mat4           { return c.view }
func (c *OrthographicCamera) ViewProjection() mgl32.Mat4 { return c.viewProjection }

func (c *OrthographicCamera) recalculateViewMatrix() {
	transform := mgl32.Translate3D(c.position.X(), c.position.Y(), c.position.Z()).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(c.rotation)))
	c.view = transform.Inv()
	c.viewProjection = c.projection.Mul4(c.view)
}
