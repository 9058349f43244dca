package hal

import "errors"

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// ErrStop is returned by an app step to end the run loop cleanly.
var ErrStop = errors.New("stop requested")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatRGB565 is 16bpp little-endian: rrrrrggggggbbbbb.
	PixelFormatRGB565 PixelFormat = iota + 1
	// PixelFormatBGR888 is 24bpp, blue first.
	PixelFormatBGR888
)

// BytesPerPixel returns the packed size of one pixel, or 0 if unknown.
func (f PixelFormat) BytesPerPixel() int {
	switch f {
	case PixelFormatRGB565:
		return 2
	case PixelFormatBGR888:
		return 3
	default:
		return 0
	}
}

func (f PixelFormat) String() string {
	switch f {
	case PixelFormatRGB565:
		return "rgb565"
	case PixelFormatBGR888:
		return "bgr888"
	default:
		return "unknown"
	}
}

// Framebuffer is a simple pixel buffer plus a "present" hook.
//
// Rotated framebuffers are stored the way handheld LCDs scan them: one memory
// row of StrideBytes is one screen column, from the bottom pixel up.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	Rotated() bool
	StrideBytes() int
	Buffer() []byte
	ClearRGB(r, g, b uint8)
	Present() error
}

// KeyCode is a minimal button identifier.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyA
	KeyB
	KeyX
	KeyY
	KeyStart
	KeySelect
)

func (k KeyCode) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyA:
		return "A"
	case KeyB:
		return "B"
	case KeyX:
		return "X"
	case KeyY:
		return "Y"
	case KeyStart:
		return "start"
	case KeySelect:
		return "select"
	default:
		return "unknown"
	}
}

// KeyEvent is a button event.
type KeyEvent struct {
	Code  KeyCode
	Press bool
}

// Keyboard provides button events (best-effort on each platform).
type Keyboard interface {
	Events() <-chan KeyEvent
}

// Display provides access to the two screens. Either may be nil.
type Display interface {
	Top() Framebuffer
	Bottom() Framebuffer
}

// Input provides access to input devices (if available).
type Input interface {
	Keyboard() Keyboard
}

// Time provides the vertical blank signal.
//
// One value is delivered per displayed frame; values are dropped if nobody is
// waiting.
type Time interface {
	VBlank() <-chan uint64
}

// HAL provides the only contact point between the app and the outside world.
type HAL interface {
	Logger() Logger
	Display() Display
	Input() Input
	Time() Time
}
