package app

import (
	"errors"
	"fmt"
	"runtime/debug"

	"flipview/hal"
)

// Run builds a viewer and steps it once per vertical blank until Start is
// pressed. It returns nil on a clean stop.
//
// A panic during start-up or inside the loop is drawn on the bottom screen
// before it is returned as an error.
func Run(h hal.HAL, cfg Config) (err error) {
	defer func() {
		v := recover()
		if v == nil {
			return
		}
		stack := debug.Stack()
		if l := h.Logger(); l != nil {
			l.WriteLineString(fmt.Sprintf("flipview: panic: %v", v))
		}
		if disp := h.Display(); disp != nil {
			showPanic(disp.Bottom(), v, stack)
		}
		err = fmt.Errorf("app: panic: %v", v)
	}()

	step, err := NewWithConfig(h, cfg)
	if err != nil {
		return err
	}
	var vblank <-chan uint64
	if t := h.Time(); t != nil {
		vblank = t.VBlank()
	}
	if vblank == nil {
		return ErrNoVBlank
	}

	for range vblank {
		if err := step(); err != nil {
			if errors.Is(err, hal.ErrStop) {
				return nil
			}
			return err
		}
	}
	return nil
}
