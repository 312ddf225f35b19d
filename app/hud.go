package app

import (
	"fmt"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"

	"quadtrot/gait"
	"quadtrot/hal"
	"quadtrot/internal/buildinfo"
)

var (
	colorHUD    = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	colorHUDDim = color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xFF}
	colorPaused = color.RGBA{R: 0xFF, G: 0xDD, B: 0x66, A: 0xFF}

	colorPanicFG = color.RGBA{R: 0, G: 0, B: 0, A: 0xFF}
)

const hudLineHeight = 10

type hud struct {
	d    fbDisplay
	font tinyfont.Fonter
}

func newHUD(fb hal.Framebuffer) *hud {
	return &hud{d: fbDisplay{fb: fb}, font: &proggy.TinySZ8pt7b}
}

// status is what the HUD shows for one frame.
type status struct {
	Model  string
	Frame  gait.Frame
	Calves int
	Hips   int
	Mode   string
	Paused bool
}

func (v *Viewer) status() status {
	s := status{Model: v.model.Name, Frame: v.frame, Mode: v.renderer.Mode.String(), Paused: v.paused}
	if links := v.rig.Links(); links != nil {
		s.Calves = len(links.Calves())
		s.Hips = len(links.Hips()) + len(links.Shoulders())
	}
	return s
}

func (s status) lines() []string {
	return []string{
		fmt.Sprintf("quadtrot %s  %s", buildinfo.Short(), s.Model),
		fmt.Sprintf("cycle %.2f  A %.2f  B %.2f", s.Frame.Cycle, s.Frame.EaseA, s.Frame.EaseB),
		fmt.Sprintf("calves %d  hips %d  %s", s.Calves, s.Hips, s.Mode),
	}
}

func (h *hud) draw(s status) {
	if h == nil {
		return
	}
	y := int16(hudLineHeight)
	for i, line := range s.lines() {
		c := colorHUD
		if i > 0 {
			c = colorHUDDim
		}
		tinyfont.WriteLine(h.d, h.font, 4, y, line, c)
		y += hudLineHeight
	}
	if s.Paused {
		tinyfont.WriteLine(h.d, h.font, 4, y, "paused", colorPaused)
	}
}

type fbDisplay struct {
	fb hal.Framebuffer
}

func (d fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	buf := d.fb.Buffer()
	if buf == nil {
		return
	}

	ix, iy := int(x), int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.fb.Height() {
		return
	}

	pixel := uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
	off := iy*d.fb.StrideBytes() + ix*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func (d fbDisplay) Display() error { return d.fb.Present() }
