//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

type hostHAL struct {
	logger *hostLogger
	top    *MemFramebuffer
	bottom *MemFramebuffer
	kbd    *hostKeyboard
	t      *hostTime
}

// New returns a host HAL implementation logging to stdout.
func New() HAL {
	return newHost(os.Stdout)
}

func newHost(w io.Writer) *hostHAL {
	return &hostHAL{
		logger: &hostLogger{w: w},
		top:    NewMemFramebuffer(TopWidth, ScreenHeight, PixelFormatBGR888, true),
		bottom: NewMemFramebuffer(BottomWidth, ScreenHeight, PixelFormatBGR888, true),
		kbd:    newHostKeyboard(),
		t:      newHostTime(),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{top: h.top, bottom: h.bottom} }
func (h *hostHAL) Input() Input     { return hostInput{kbd: h.kbd} }
func (h *hostHAL) Time() Time       { return h.t }

type hostDisplay struct {
	top    *MemFramebuffer
	bottom *MemFramebuffer
}

func (d hostDisplay) Top() Framebuffer    { return d.top }
func (d hostDisplay) Bottom() Framebuffer { return d.bottom }

type hostInput struct {
	kbd *hostKeyboard
}

func (in hostInput) Keyboard() Keyboard { return in.kbd }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
