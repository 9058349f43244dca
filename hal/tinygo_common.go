//go:build tinygo && baremetal

package hal

import (
	"machine"
	"time"
)

type tinyGoDisplay struct {
	top    Framebuffer
	bottom Framebuffer
}

func (d tinyGoDisplay) Top() Framebuffer    { return d.top }
func (d tinyGoDisplay) Bottom() Framebuffer { return d.bottom }

type tinyGoInput struct {
	kbd Keyboard
}

func (in tinyGoInput) Keyboard() Keyboard { return in.kbd }

type tinyGoTime struct {
	ch  chan uint64
	seq uint64
}

// newTinyGoTime emits a vblank signal at the panel refresh rate.
func newTinyGoTime(hz int) *tinyGoTime {
	t := &tinyGoTime{ch: make(chan uint64, 1)}
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

func (t *tinyGoTime) VBlank() <-chan uint64 { return t.ch }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func newUARTLogger() *uartLogger {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	return &uartLogger{uart: uart}
}
