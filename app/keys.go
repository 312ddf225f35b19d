package app

import "quadtrot/hal"

const (
	orbitStep = 0.05
	zoomStep  = 0.25
)

// handleKeys drains pending key events without blocking.
func (v *Viewer) handleKeys() {
	in := v.h.Input()
	if in == nil {
		return
	}
	kbd := in.Keyboard()
	if kbd == nil {
		return
	}
	ch := kbd.Events()
	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				return
			}
			v.handleKey(ev)
		default:
			return
		}
	}
}

func (v *Viewer) handleKey(ev hal.KeyEvent) {
	if !ev.Press {
		return
	}
	switch ev.Code {
	case hal.KeyLeft:
		v.orbit.Rotate(-orbitStep, 0)
	case hal.KeyRight:
		v.orbit.Rotate(orbitStep, 0)
	case hal.KeyUp:
		v.orbit.Rotate(0, -orbitStep)
	case hal.KeyDown:
		v.orbit.Rotate(0, orbitStep)
	case hal.KeyPageUp:
		v.orbit.Zoom(-zoomStep)
	case hal.KeyPageDown:
		v.orbit.Zoom(zoomStep)
	}

	switch ev.Rune {
	case 'w', 'W':
		if v.renderer != nil {
			v.renderer.ToggleWireframe()
		}
	case ' ':
		v.paused = !v.paused
		v.log.Debug().Bool("paused", v.paused).Msg("pause toggled")
	}
}
