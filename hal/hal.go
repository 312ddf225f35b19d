package hal

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal key identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyPageUp
	KeyPageDown
)

// KeyEvent is a keyboard event. Text input arrives with Code KeyUnknown and a Rune.
type KeyEvent struct {
	Code  KeyCode
	Press bool
	Rune  rune
}

// Keyboard provides key events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the framebuffer (if available).
type Display interface {
	Framebuffer() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Clock reports how much time passed between steps.
type Clock interface {
	// Delta is the elapsed time of the current step in seconds. The first step is zero.
	Delta() float64
	// Elapsed is the sum of all deltas so far.
	Elapsed() float64
	// Steps is the number of steps taken.
	Steps() uint64
}

// HAL is the only contact point between the viewer and the host.
type HAL interface {
	Display() Display
	Input() Input
	Clock() Clock
}
