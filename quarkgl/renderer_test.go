package quarkgl

import "testing"

func TestRenderDrawsVisibleBox(t *testing.T) {
	const w, h = 32, 32
	target := &RGB565Target{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}

	s := CreateScene()
	s.Camera.Position = V3(0, 0, 4)
	s.Camera.Target = V3(0, 0, 0)
	box := NewNode("box")
	box.Mesh = BoxMesh(V3(1, 1, 1), RGB(0xFF, 0xFF, 0xFF))
	s.Add(box)
	s.Root.UpdateWorld(false)

	r := NewRenderer(w, h, true)
	r.Render(target, s)

	center := (h/2)*target.Stride + (w/2)*2
	if target.Buf[center] == 0 && target.Buf[center+1] == 0 {
		t.Fatalf("expected box pixel at the centre")
	}
	if target.Buf[0] != 0 || target.Buf[1] != 0 {
		t.Fatalf("expected clear colour at the corner")
	}
}

func TestToggleWireframe(t *testing.T) {
	r := NewRenderer(0, 0, false)
	r.ToggleWireframe()
	if r.Mode != RenderWireframe {
		t.Fatalf("mode %v", r.Mode)
	}
	r.ToggleWireframe()
	if r.Mode != RenderSolidFlat {
		t.Fatalf("mode %v", r.Mode)
	}
}

func TestColorMulScalarKeepsAlpha(t *testing.T) {
	c := RGBA(200, 100, 50, 0x80).MulScalar(0.5)
	if c.R != 99 || c.G != 49 || c.B != 24 || c.A != 0x80 {
		t.Fatalf("MulScalar = %+v", c)
	}
	if got := RGB(10, 20, 30).MulScalar(2); got != RGB(10, 20, 30) {
		t.Fatalf("MulScalar clamps to 1, got %+v", got)
	}
}
