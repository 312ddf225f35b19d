package quarkgl

import "math"

// OrbitController provides basic orbit/zoom interactions for a camera.
//
// It does not depend on any input system.
type OrbitController struct {
	Target Vec3
	Yaw    Scalar
	Pitch  Scalar
	Radius Scalar

	MinRadius Scalar
	MaxRadius Scalar
}

// LookFrom points the controller at target from eye, deriving yaw, pitch and radius.
func (c *OrbitController) LookFrom(eye, target Vec3) {
	d := eye.Sub(target)
	c.Target = target
	c.Radius = Len(d)
	if c.Radius == 0 {
		c.Yaw, c.Pitch = 0, 0
		return
	}
	c.Yaw = math.Atan2(d.X, d.Z)
	c.Pitch = -math.Asin(d.Y / c.Radius)
}

func (c *OrbitController) Apply(cam *Camera) {
	if cam == nil {
		return
	}
	r := c.Radius
	if r == 0 {
		r = 3
	}
	if c.MinRadius != 0 && r < c.MinRadius {
		r = c.MinRadius
	}
	if c.MaxRadius != 0 && r > c.MaxRadius {
		r = c.MaxRadius
	}

	m := Mat4Mul(Mat4RotateY(c.Yaw), Mat4RotateX(c.Pitch))
	p := TransformPoint(m, V3(0, 0, r))

	cam.Position = c.Target.Add(p)
	cam.Target = c.Target
	if cam.Up == (Vec3{}) {
		cam.Up = V3(0, 1, 0)
	}
}

func (c *OrbitController) Rotate(deltaYaw, deltaPitch Scalar) {
	c.Yaw += deltaYaw
	c.Pitch += deltaPitch
}

func (c *OrbitController) Zoom(delta Scalar) {
	c.Radius += delta
	if c.MinRadius != 0 && c.Radius < c.MinRadius {
		c.Radius = c.MinRadius
	}
	if c.MaxRadius != 0 && c.Radius > c.MaxRadius {
		c.Radius = c.MaxRadius
	}
}
