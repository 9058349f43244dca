//go:build tinygo && !baremetal

package hal

import (
	"bufio"
	"os"
	"time"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	top    *MemFramebuffer
	bottom *MemFramebuffer
	kbd    *tinyGoHostKeyboard
	t      *tinyGoHostTime
}

// New returns a TinyGo-on-host HAL implementation.
//
// This is used by `tinygo run` targets like linux/wasm where there is no
// panel. Screens live in memory; buttons are read from stdin one letter at a
// time (a, b, s = Start).
func New() HAL {
	return &tinyGoHostHAL{
		logger: &tinyGoHostLogger{},
		top:    NewMemFramebuffer(TopWidth, ScreenHeight, PixelFormatBGR888, true),
		bottom: NewMemFramebuffer(BottomWidth, ScreenHeight, PixelFormatBGR888, true),
		kbd:    newTinyGoHostKeyboard(),
		t:      newTinyGoHostTime(60),
	}
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) Display() Display { return tinyGoHostDisplay{top: h.top, bottom: h.bottom} }
func (h *tinyGoHostHAL) Input() Input     { return tinyGoHostInput{kbd: h.kbd} }
func (h *tinyGoHostHAL) Time() Time       { return h.t }

type tinyGoHostDisplay struct {
	top    Framebuffer
	bottom Framebuffer
}

func (d tinyGoHostDisplay) Top() Framebuffer    { return d.top }
func (d tinyGoHostDisplay) Bottom() Framebuffer { return d.bottom }

type tinyGoHostInput struct {
	kbd Keyboard
}

func (in tinyGoHostInput) Keyboard() Keyboard { return in.kbd }

type tinyGoHostTime struct {
	ch  chan uint64
	seq uint64
}

func newTinyGoHostTime(hz int) *tinyGoHostTime {
	t := &tinyGoHostTime{ch: make(chan uint64, 1)}
	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(hz))
		defer ticker.Stop()
		for range ticker.C {
			t.seq++
			select {
			case t.ch <- t.seq:
			default:
			}
		}
	}()
	return t
}

func (t *tinyGoHostTime) VBlank() <-chan uint64 { return t.ch }

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostKeyboard struct {
	ch chan KeyEvent
}

func newTinyGoHostKeyboard() *tinyGoHostKeyboard {
	k := &tinyGoHostKeyboard{ch: make(chan KeyEvent, 16)}
	go k.readStdin()
	return k
}

func (k *tinyGoHostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *tinyGoHostKeyboard) readStdin() {
	r := bufio.NewReader(os.Stdin)
	for {
		b, err := r.ReadByte()
		if err != nil {
			return
		}
		var code KeyCode
		switch b {
		case 'a', 'A':
			code = KeyA
		case 'b', 'B':
			code = KeyB
		case 's', 'S':
			code = KeyStart
		default:
			continue
		}
		k.ch <- KeyEvent{Code: code, Press: true}
		k.ch <- KeyEvent{Code: code, Press: false}
	}
}
