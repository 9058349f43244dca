//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent

	pads []ebiten.GamepadID
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

var hostKeyMap = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyA, KeyA},
	{ebiten.KeyZ, KeyA},
	{ebiten.KeyB, KeyB},
	{ebiten.KeyX, KeyB},
	{ebiten.KeyS, KeyX},
	{ebiten.KeyY, KeyY},
	{ebiten.KeyEnter, KeyStart},
	{ebiten.KeyBackspace, KeySelect},
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
}

var hostPadMap = []struct {
	button ebiten.StandardGamepadButton
	code   KeyCode
}{
	{ebiten.StandardGamepadButtonRightBottom, KeyA},
	{ebiten.StandardGamepadButtonRightRight, KeyB},
	{ebiten.StandardGamepadButtonRightLeft, KeyY},
	{ebiten.StandardGamepadButtonRightTop, KeyX},
	{ebiten.StandardGamepadButtonCenterRight, KeyStart},
	{ebiten.StandardGamepadButtonCenterLeft, KeySelect},
	{ebiten.StandardGamepadButtonLeftTop, KeyUp},
	{ebiten.StandardGamepadButtonLeftBottom, KeyDown},
	{ebiten.StandardGamepadButtonLeftLeft, KeyLeft},
	{ebiten.StandardGamepadButtonLeftRight, KeyRight},
}

func (k *hostKeyboard) poll() {
	emit := func(code KeyCode, press bool) {
		select {
		case k.ch <- KeyEvent{Code: code, Press: press}:
		default:
		}
	}

	for _, m := range hostKeyMap {
		if inpututil.IsKeyJustPressed(m.key) {
			emit(m.code, true)
		}
		if inpututil.IsKeyJustReleased(m.key) {
			emit(m.code, false)
		}
	}

	k.pads = ebiten.AppendGamepadIDs(k.pads[:0])
	for _, id := range k.pads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, m := range hostPadMap {
			if inpututil.IsStandardGamepadButtonJustPressed(id, m.button) {
				emit(m.code, true)
			}
			if inpututil.IsStandardGamepadButtonJustReleased(id, m.button) {
				emit(m.code, false)
			}
		}
	}
}
