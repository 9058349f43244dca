// Package hid turns the hal button event stream into per-tick key sets.
//
// Scan is called once per tick. KeysDown reports buttons pressed since the
// previous scan; KeysHeld reports buttons currently held.
package hid

import "flipview/hal"

// Keys is a set of buttons.
type Keys uint16

// Key returns the set containing only code.
func Key(code hal.KeyCode) Keys {
	if code == hal.KeyUnknown || code > 15 {
		return 0
	}
	return 1 << code
}

const (
	KeyA      = Keys(1 << hal.KeyA)
	KeyB      = Keys(1 << hal.KeyB)
	KeyX      = Keys(1 << hal.KeyX)
	KeyY      = Keys(1 << hal.KeyY)
	KeyStart  = Keys(1 << hal.KeyStart)
	KeySelect = Keys(1 << hal.KeySelect)
	KeyUp     = Keys(1 << hal.KeyUp)
	KeyDown   = Keys(1 << hal.KeyDown)
	KeyLeft   = Keys(1 << hal.KeyLeft)
	KeyRight  = Keys(1 << hal.KeyRight)
)

// Contains reports whether every key in other is in k.
func (k Keys) Contains(other Keys) bool {
	return other != 0 && k&other == other
}

// Pad tracks button state across scans.
type Pad struct {
	events <-chan hal.KeyEvent

	down Keys
	held Keys
	up   Keys
}

// New returns a pad reading from kbd. A nil keyboard yields a pad that never
// reports a key.
func New(kbd hal.Keyboard) *Pad {
	p := &Pad{}
	if kbd != nil {
		p.events = kbd.Events()
	}
	return p
}

// Scan drains pending events without blocking.
func (p *Pad) Scan() {
	p.down = 0
	p.up = 0
	if p.events == nil {
		return
	}
	for {
		select {
		case ev, ok := <-p.events:
			if !ok {
				p.events = nil
				return
			}
			p.apply(ev)
		default:
			return
		}
	}
}

func (p *Pad) apply(ev hal.KeyEvent) {
	k := Key(ev.Code)
	if k == 0 {
		return
	}
	if ev.Press {
		if p.held&k == 0 {
			p.down |= k
		}
		p.held |= k
		return
	}
	p.held &^= k
	p.up |= k
}

// KeysDown returns the keys pressed during the last scan.
func (p *Pad) KeysDown() Keys { return p.down }

// KeysHeld returns the keys held at the end of the last scan.
func (p *Pad) KeysHeld() Keys { return p.held }

// KeysUp returns the keys released during the last scan.
func (p *Pad) KeysUp() Keys { return p.up }
