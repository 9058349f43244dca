//go:build tinygo && baremetal && picocalc

package hal

import (
	"errors"
	"machine"
	"time"

	"github.com/cenkalti/backoff"
)

const (
	picoCalcKbdAddr uint16 = 0x1F
	picoCalcKbdCmd         = 0x09
)

const (
	picoCalcKeyEnter     byte = 0x0A
	picoCalcKeyReturn    byte = 0x0D
	picoCalcKeyBackspace byte = 0x08
	picoCalcKeyEsc       byte = 0xB1
	picoCalcKeyLeft      byte = 0xB4
	picoCalcKeyUp        byte = 0xB5
	picoCalcKeyDown      byte = 0xB6
	picoCalcKeyRight     byte = 0xB7
)

var errKeyboardUnavailable = errors.New("keyboard: I2C unavailable")

type i2cKeyboard struct {
	i2c   *machine.I2C
	write [1]byte
	read  [2]byte
}

func initI2CKeyboard() (*i2cKeyboard, error) {
	write := [1]byte{picoCalcKbdCmd}

	// Prefer I2C1 (original PicoCalc wiring), but some TinyGo targets expose only I2C0.
	for _, bus := range []*machine.I2C{machine.I2C1, machine.I2C0} {
		if bus == nil {
			continue
		}
		for _, freq := range []uint32{100_000, 400_000} {
			if err := bus.Configure(machine.I2CConfig{
				SCL:       machine.GP7,
				SDA:       machine.GP6,
				Frequency: freq,
			}); err != nil {
				continue
			}

			k := &i2cKeyboard{i2c: bus, write: write}

			// The keyboard MCU can be slow to answer right after power-up.
			probe := func() error {
				return k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:])
			}
			err := backoff.Retry(probe, &backoff.ExponentialBackOff{
				InitialInterval:     5 * time.Millisecond,
				RandomizationFactor: 0.,
				Multiplier:          2.,
				MaxInterval:         100 * time.Millisecond,
				MaxElapsedTime:      500 * time.Millisecond,
				Clock:               backoff.SystemClock})
			if err == nil {
				return k, nil
			}
		}
	}

	return nil, errKeyboardUnavailable
}

func (k *i2cKeyboard) readEvent() (KeyEvent, bool) {
	if err := k.i2c.Tx(picoCalcKbdAddr, k.write[:], k.read[:]); err != nil {
		return KeyEvent{}, false
	}
	if k.read[0] == 0 && k.read[1] == 0 {
		return KeyEvent{}, false
	}

	eventType := k.read[0]
	key := k.read[1]

	switch eventType {
	case 0x01: // key down
		return k.translate(key, true)
	case 0x03: // key up
		return k.translate(key, false)
	default:
		// held or unknown
		return KeyEvent{}, false
	}
}

func (k *i2cKeyboard) translate(code byte, press bool) (KeyEvent, bool) {
	kc := picoCalcKeyCode(code)
	if kc == KeyUnknown {
		return KeyEvent{}, false
	}
	return KeyEvent{Code: kc, Press: press}, true
}

func picoCalcKeyCode(code byte) KeyCode {
	switch code {
	case 'a', 'A':
		return KeyA
	case 'b', 'B':
		return KeyB
	case 'x', 'X':
		return KeyX
	case 'y', 'Y':
		return KeyY
	case picoCalcKeyEnter, picoCalcKeyReturn:
		return KeyStart
	case picoCalcKeyEsc, picoCalcKeyBackspace:
		return KeySelect
	case picoCalcKeyLeft:
		return KeyLeft
	case picoCalcKeyRight:
		return KeyRight
	case picoCalcKeyUp:
		return KeyUp
	case picoCalcKeyDown:
		return KeyDown
	default:
		return KeyUnknown
	}
}
