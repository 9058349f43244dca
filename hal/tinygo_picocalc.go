//go:build tinygo && baremetal && picocalc

package hal

import "time"

// The PicoCalc has a single 320x320 panel. The top 80 lines carry the text
// console and the remaining 320x240 area shows the image.
const (
	picoCalcPanelSize  = 320
	picoCalcTopHeight  = 80
	picoCalcViewHeight = 240
)

type picoCalcHAL struct {
	logger *uartLogger
	top    Framebuffer
	bottom Framebuffer
	kbd    Keyboard
	t      *tinyGoTime
}

// New returns a PicoCalc HAL implementation (Pico/Pico2 on the PicoCalc carrier).
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
func New() HAL {
	logger := newUARTLogger()

	top := NewMemFramebuffer(picoCalcPanelSize, picoCalcTopHeight, PixelFormatRGB565, false)
	bottom := NewMemFramebuffer(picoCalcPanelSize, picoCalcViewHeight, PixelFormatBGR888, true)
	if lcd, err := initILI9488(); err == nil {
		top.present = func(buf []byte) error {
			return lcd.blitRGB565LittleEndian(buf, 0, 0, picoCalcPanelSize, picoCalcTopHeight)
		}
		bottom.present = func(buf []byte) error {
			return lcd.blitBGR888Rotated(buf, 0, picoCalcTopHeight, picoCalcPanelSize, picoCalcViewHeight)
		}
	} else {
		logger.WriteLineString("lcd: " + err.Error())
	}

	var kbd Keyboard
	if kb, err := newPicoCalcKeyboard(); err == nil {
		kbd = kb
	} else {
		logger.WriteLineString("keyboard: " + err.Error())
		kbd = &stubKeyboard{}
	}

	return &picoCalcHAL{
		logger: logger,
		top:    top,
		bottom: bottom,
		kbd:    kbd,
		t:      newTinyGoTime(60),
	}
}

func (h *picoCalcHAL) Logger() Logger   { return h.logger }
func (h *picoCalcHAL) Display() Display { return tinyGoDisplay{top: h.top, bottom: h.bottom} }
func (h *picoCalcHAL) Input() Input     { return tinyGoInput{kbd: h.kbd} }
func (h *picoCalcHAL) Time() Time       { return h.t }

type picoCalcKeyboard struct {
	ch chan KeyEvent
}

func (k *picoCalcKeyboard) Events() <-chan KeyEvent { return k.ch }

func newPicoCalcKeyboard() (*picoCalcKeyboard, error) {
	dev := &picoCalcKeyboard{ch: make(chan KeyEvent, 64)}
	kbd, err := initI2CKeyboard()
	if err != nil {
		return nil, err
	}

	go func() {
		defer close(dev.ch)
		for {
			ev, ok := kbd.readEvent()
			if ok {
				select {
				case dev.ch <- ev:
				default:
				}
			}
			time.Sleep(2 * time.Millisecond)
		}
	}()

	return dev, nil
}
