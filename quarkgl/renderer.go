package quarkgl

import "math"

// Renderer is a fixed-pipeline software renderer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode       RenderMode
	Depth      bool
	ClearColor Color

	depthBuf []float64
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{
		Mode:       RenderSolidFlat,
		ClearColor: RGB(0, 0, 0),
	}
	r.EnableDepth(enableDepth, w, h)
	return r
}

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float64, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
}

// ToggleWireframe flips between wireframe and flat shading.
func (r *Renderer) ToggleWireframe() {
	if r.Mode == RenderWireframe {
		r.Mode = RenderSolidFlat
		return
	}
	r.Mode = RenderWireframe
}

// Render renders every enabled mesh of the scene graph into the target.
// Node world matrices are used as they are; callers refresh them first.
func (r *Renderer) Render(t Target, s *Scene) {
	if r == nil || t == nil || s == nil {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	t.Clear(r.ClearColor)

	if r.Depth {
		r.EnableDepth(true, w, h)
		for i := range r.depthBuf {
			r.depthBuf[i] = math.Inf(1)
		}
	}

	aspect := Scalar(w) / Scalar(h)
	viewProj := Mat4Mul(s.Camera.Projection(aspect), s.Camera.View())

	s.Root.Traverse(func(n *Node) {
		if n.Mesh == nil || !n.Mesh.Enabled {
			return
		}
		model := Mat4Mul(n.world, n.Mesh.transform())
		r.renderMesh(t, w, h, viewProj, model, n.Mesh, s.Light)
	})
}

type screenPoint struct {
	x, y int
	z    float64
}

func (r *Renderer) renderMesh(t Target, w, h int, viewProj, model Mat4, m *Mesh, light Light) {
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	mvp := Mat4Mul(viewProj, model)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		idx := [3]int{int(m.Indices[i]), int(m.Indices[i+1]), int(m.Indices[i+2])}
		var pts [3]screenPoint
		var world [3]Vec3
		ok := true
		for k, vi := range idx {
			if vi >= len(m.Vertices) {
				ok = false
				break
			}
			pos := m.Vertices[vi].Pos
			world[k] = TransformPoint(model, pos)
			p := Mat4MulV4(mvp, Vec4{X: pos.X, Y: pos.Y, Z: pos.Z, W: 1})
			// Trivial clip: drop anything behind the eye.
			if p.W <= 0 {
				ok = false
				break
			}
			pts[k] = toScreen(p, w, h)
		}
		if !ok {
			continue
		}

		base := m.Material.BaseColor
		if light.Mode == LightAmbientDirectional {
			n := Normalize(Cross(world[1].Sub(world[0]), world[2].Sub(world[0])))
			base = base.MulScalar(lightIntensity(light, n))
		}

		switch r.Mode {
		case RenderWireframe:
			r.drawLine(t, pts[0], pts[1], base)
			r.drawLine(t, pts[1], pts[2], base)
			r.drawLine(t, pts[2], pts[0], base)
		case RenderSolidVertexColor:
			cols := [3]Color{m.Vertices[idx[0]].Color, m.Vertices[idx[1]].Color, m.Vertices[idx[2]].Color}
			r.fillTriangle(t, w, h, pts, func(a0, a1, a2 float64) Color {
				return Color{
					R: uint8(clamp(a0*float64(cols[0].R)+a1*float64(cols[1].R)+a2*float64(cols[2].R), 0, 255)),
					G: uint8(clamp(a0*float64(cols[0].G)+a1*float64(cols[1].G)+a2*float64(cols[2].G), 0, 255)),
					B: uint8(clamp(a0*float64(cols[0].B)+a1*float64(cols[1].B)+a2*float64(cols[2].B), 0, 255)),
					A: 0xFF,
				}
			})
		default:
			r.fillTriangle(t, w, h, pts, func(_, _, _ float64) Color { return base })
		}
	}
}

func toScreen(p Vec4, w, h int) screenPoint {
	inv := 1 / p.W
	x, y, z := p.X*inv, p.Y*inv, p.Z*inv
	sx := (x*0.5 + 0.5) * float64(w-1)
	sy := (1 - (y*0.5 + 0.5)) * float64(h-1)
	return screenPoint{x: int(math.Round(sx)), y: int(math.Round(sy)), z: z}
}

func lightIntensity(l Light, n Vec3) Scalar {
	amb := Clamp01(l.Ambient)
	ld := Normalize(l.Dir)
	if ld == (Vec3{}) {
		return amb
	}
	// Two-sided: bone meshes are not guaranteed to have consistent winding.
	d := math.Abs(Dot(n, ld))
	return Clamp01(amb + d*Clamp01(l.DirAmount))
}

func (r *Renderer) depthTest(w, x, y int, z float64) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	idx := y*w + x
	if x < 0 || y < 0 || x >= w || idx >= len(r.depthBuf) {
		return false
	}
	if z >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = z
	return true
}

func (r *Renderer) drawLine(t Target, a, b screenPoint, c Color) {
	x0, y0, x1, y1 := a.x, a.y, b.x, b.y
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (r *Renderer) fillTriangle(t Target, w, h int, p [3]screenPoint, shade func(a0, a1, a2 float64) Color) {
	minX := max(min(p[0].x, p[1].x, p[2].x), 0)
	maxX := min(max(p[0].x, p[1].x, p[2].x), w-1)
	minY := max(min(p[0].y, p[1].y, p[2].y), 0)
	maxY := min(max(p[0].y, p[1].y, p[2].y), h-1)
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(p[0], p[1], p[2].x, p[2].y)
	if area == 0 {
		return
	}
	invArea := 1 / float64(area)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			w0 := edgeFn(p[1], p[2], x, y)
			w1 := edgeFn(p[2], p[0], x, y)
			w2 := edgeFn(p[0], p[1], x, y)
			// Accept both windings.
			if !((w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0)) {
				continue
			}
			a0 := float64(w0) * invArea
			a1 := float64(w1) * invArea
			a2 := float64(w2) * invArea
			z := a0*p[0].z + a1*p[1].z + a2*p[2].z
			if !r.depthTest(w, x, y, z) {
				continue
			}
			t.SetPixel(x, y, shade(a0, a1, a2))
		}
	}
}

func edgeFn(a, b screenPoint, x, y int) int {
	return (x-a.x)*(b.y-a.y) - (y-a.y)*(b.x-a.x)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
