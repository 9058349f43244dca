//go:build tinygo && baremetal && !picocalc

package hal

type tinyGoHAL struct {
	logger *uartLogger
	top    Framebuffer
	bottom Framebuffer
	kbd    Keyboard
	t      *tinyGoTime
}

// New returns a bare Pico 2 (RP2350) HAL with a UART logger. There is no
// panel: both screens live in memory and are never pushed anywhere.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	return &tinyGoHAL{
		logger: newUARTLogger(),
		top:    NewMemFramebuffer(BottomWidth, 80, PixelFormatRGB565, false),
		bottom: NewMemFramebuffer(BottomWidth, ScreenHeight, PixelFormatBGR888, true),
		kbd:    &stubKeyboard{},
		t:      newTinyGoTime(60),
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) Display() Display { return tinyGoDisplay{top: h.top, bottom: h.bottom} }
func (h *tinyGoHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *tinyGoHAL) Time() Time       { return h.t }
