package quarkgl

import "math"

// Scalar is the numeric type used by QuarkGL math operations.
type Scalar = float64

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z Scalar
}

// Vec4 is a 4D vector.
type Vec4 struct {
	X, Y, Z, W Scalar
}

// Mat4 is a column-major 4x4 matrix.
//
// It matches the conventional OpenGL layout:
// m[col*4+row].
type Mat4 [16]Scalar

func V3(x, y, z Scalar) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3   { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3   { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Mul(s Scalar) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

// MaxComponent returns the largest of X, Y and Z.
func (v Vec3) MaxComponent() Scalar { return math.Max(v.X, math.Max(v.Y, v.Z)) }

func Dot(a, b Vec3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func Cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func Len(v Vec3) Scalar { return math.Sqrt(Dot(v, v)) }

func Normalize(v Vec3) Vec3 {
	l := Len(v)
	if l == 0 {
		return Vec3{}
	}
	return v.Mul(1 / l)
}

func Clamp01(v Scalar) Scalar {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func Mat4Mul(a, b Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out[col*4+row] =
				a[0*4+row]*b[col*4+0] +
					a[1*4+row]*b[col*4+1] +
					a[2*4+row]*b[col*4+2] +
					a[3*4+row]*b[col*4+3]
		}
	}
	return out
}

func Mat4MulV4(m Mat4, v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// TransformPoint applies m to p with w=1.
func TransformPoint(m Mat4, p Vec3) Vec3 {
	r := Mat4MulV4(m, Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	return Vec3{X: r.X, Y: r.Y, Z: r.Z}
}

func Mat4Translate(v Vec3) Mat4 {
	m := Mat4Identity()
	m[12] = v.X
	m[13] = v.Y
	m[14] = v.Z
	return m
}

func Mat4Scale(v Vec3) Mat4 {
	m := Mat4Identity()
	m[0] = v.X
	m[5] = v.Y
	m[10] = v.Z
	return m
}

func Mat4RotateX(rad Scalar) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

func Mat4RotateY(rad Scalar) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

func Mat4RotateZ(rad Scalar) Mat4 {
	c, s := math.Cos(rad), math.Sin(rad)
	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4RotateAxis rotates by rad about a (normalized internally) axis.
// A zero axis yields the identity.
func Mat4RotateAxis(axis Vec3, rad Scalar) Mat4 {
	a := Normalize(axis)
	if a == (Vec3{}) || rad == 0 {
		return Mat4Identity()
	}
	c, s := math.Cos(rad), math.Sin(rad)
	t := 1 - c
	x, y, z := a.X, a.Y, a.Z
	return Mat4{
		t*x*x + c, t*x*y + s*z, t*x*z - s*y, 0,
		t*x*y - s*z, t*y*y + c, t*y*z + s*x, 0,
		t*x*z + s*y, t*y*z - s*x, t*z*z + c, 0,
		0, 0, 0, 1,
	}
}

// EulerOrder is the axis order in which Euler angles are composed.
type EulerOrder uint8

const (
	// EulerXYZ composes Rx·Ry·Rz (the scene default).
	EulerXYZ EulerOrder = iota
	// EulerZYX composes Rz·Ry·Rx, the roll/pitch/yaw convention of URDF.
	EulerZYX
)

// Mat4Euler builds a rotation matrix from Euler angles in the given order.
func Mat4Euler(r Vec3, order EulerOrder) Mat4 {
	rx, ry, rz := Mat4RotateX(r.X), Mat4RotateY(r.Y), Mat4RotateZ(r.Z)
	if order == EulerZYX {
		return Mat4Mul(rz, Mat4Mul(ry, rx))
	}
	return Mat4Mul(rx, Mat4Mul(ry, rz))
}

func Mat4LookAt(eye, target, up Vec3) Mat4 {
	f := Normalize(target.Sub(eye))
	s := Normalize(Cross(f, up))
	u := Cross(s, f)

	// Column-major.
	return Mat4{
		s.X, u.X, -f.X, 0,
		s.Y, u.Y, -f.Y, 0,
		s.Z, u.Z, -f.Z, 0,
		-Dot(s, eye), -Dot(u, eye), Dot(f, eye), 1,
	}
}

func Mat4Perspective(fovYRad Scalar, aspect Scalar, zNear, zFar Scalar) Mat4 {
	if aspect == 0 {
		aspect = 1
	}
	f := 1 / math.Tan(fovYRad/2)
	nf := 1 / (zNear - zFar)
	return Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (zFar + zNear) * nf, -1,
		0, 0, (2 * zFar * zNear) * nf, 0,
	}
}

func Mat4Ortho(left, right, bottom, top, zNear, zFar Scalar) Mat4 {
	rl := right - left
	tb := top - bottom
	fn := zFar - zNear
	if rl == 0 {
		rl = 1
	}
	if tb == 0 {
		tb = 1
	}
	if fn == 0 {
		fn = 1
	}
	return Mat4{
		2 / rl, 0, 0, 0,
		0, 2 / tb, 0, 0,
		0, 0, -2 / fn, 0,
		-(right + left) / rl, -(top + bottom) / tb, -(zFar + zNear) / fn, 1,
	}
}

// Box3 is an axis-aligned bounding box. The zero value is empty.
type Box3 struct {
	Min, Max Vec3
	set      bool
}

// Expand grows the box to contain p.
func (b *Box3) Expand(p Vec3) {
	if !b.set {
		b.Min, b.Max, b.set = p, p, true
		return
	}
	b.Min = Vec3{math.Min(b.Min.X, p.X), math.Min(b.Min.Y, p.Y), math.Min(b.Min.Z, p.Z)}
	b.Max = Vec3{math.Max(b.Max.X, p.X), math.Max(b.Max.Y, p.Y), math.Max(b.Max.Z, p.Z)}
}

// Empty reports whether no point was ever added.
func (b Box3) Empty() bool { return !b.set }

// Size is Max-Min, or zero for an empty box.
func (b Box3) Size() Vec3 {
	if !b.set {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}

// Center is the midpoint, or the origin for an empty box.
func (b Box3) Center() Vec3 {
	if !b.set {
		return Vec3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}
