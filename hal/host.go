package hal

import "time"

// DefaultWidth and DefaultHeight are the framebuffer size used by the runners.
const (
	DefaultWidth  = 480
	DefaultHeight = 320
)

// Host is the desktop HAL: an in-memory framebuffer, a keyboard queue and a step clock.
type Host struct {
	fb  *hostFramebuffer
	kbd *hostKeyboard
	clk *hostClock
}

// NewHost returns a host HAL with a w×h framebuffer.
// A positive fixedHz makes every clock step last exactly 1/fixedHz seconds;
// zero measures wall time.
func NewHost(w, h int, fixedHz int) *Host {
	if w <= 0 {
		w = DefaultWidth
	}
	if h <= 0 {
		h = DefaultHeight
	}
	return &Host{
		fb:  newHostFramebuffer(w, h),
		kbd: newHostKeyboard(),
		clk: newHostClock(time.Now, fixedHz),
	}
}

func (h *Host) Display() Display { return hostDisplay{fb: h.fb} }
func (h *Host) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *Host) Clock() Clock     { return h.clk }

// Step advances the clock by one step.
func (h *Host) Step() { h.clk.step() }

// Press queues a key event. It reports false when the queue is full.
func (h *Host) Press(ev KeyEvent) bool {
	select {
	case h.kbd.ch <- ev:
		return true
	default:
		return false
	}
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }
