//go:build !tinygo && !cgo

package hal

import "errors"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale int
	TPS   int
}

func RunWindow(_ func(HAL) (func() error, error), _ WindowConfig) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
