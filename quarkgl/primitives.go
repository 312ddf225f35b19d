package quarkgl

// boxCorners lists the 8 unit-cube corners in the order used by boxIndices.
var boxCorners = [8]Vec3{
	{-0.5, -0.5, -0.5}, {0.5, -0.5, -0.5}, {0.5, 0.5, -0.5}, {-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5}, {0.5, -0.5, 0.5}, {0.5, 0.5, 0.5}, {-0.5, 0.5, 0.5},
}

var boxIndices = []uint16{
	0, 2, 1, 0, 3, 2, // -z
	4, 5, 6, 4, 6, 7, // +z
	0, 1, 5, 0, 5, 4, // -y
	3, 7, 6, 3, 6, 2, // +y
	0, 4, 7, 0, 7, 3, // -x
	1, 2, 6, 1, 6, 5, // +x
}

// BoxMesh returns an axis-aligned box of the given size centred on the origin.
func BoxMesh(size Vec3, c Color) *Mesh {
	verts := make([]Vertex, len(boxCorners))
	for i, p := range boxCorners {
		verts[i] = Vertex{Pos: V3(p.X*size.X, p.Y*size.Y, p.Z*size.Z), Color: c}
	}
	return NewMesh(verts, append([]uint16(nil), boxIndices...), c)
}

// SegmentMesh returns a square beam of the given thickness from a to b.
// A degenerate segment yields a small cube at a.
func SegmentMesh(a, b Vec3, thickness Scalar, c Color) *Mesh {
	d := b.Sub(a)
	l := Len(d)
	if l == 0 {
		m := BoxMesh(V3(thickness, thickness, thickness), c)
		m.Transform = Mat4Translate(a)
		return m
	}
	fwd := d.Mul(1 / l)
	ref := V3(0, 0, 1)
	if abs(Dot(fwd, ref)) > 0.9 {
		ref = V3(1, 0, 0)
	}
	side := Normalize(Cross(fwd, ref))
	up := Cross(side, fwd)

	half := thickness / 2
	verts := make([]Vertex, 0, 8)
	for _, end := range [2]Vec3{a, b} {
		for _, o := range [4][2]Scalar{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
			p := end.Add(side.Mul(o[0] * half)).Add(up.Mul(o[1] * half))
			verts = append(verts, Vertex{Pos: p, Color: c})
		}
	}
	return NewMesh(verts, append([]uint16(nil), boxIndices...), c)
}

// GridMesh returns a flat square of size×size on the XZ plane at height y.
func GridMesh(size, y Scalar, c Color) *Mesh {
	h := size / 2
	verts := []Vertex{
		{Pos: V3(-h, y, -h), Color: c},
		{Pos: V3(h, y, -h), Color: c},
		{Pos: V3(h, y, h), Color: c},
		{Pos: V3(-h, y, h), Color: c},
	}
	return NewMesh(verts, []uint16{0, 1, 2, 0, 2, 3}, c)
}

func abs(v Scalar) Scalar {
	if v < 0 {
		return -v
	}
	return v
}
