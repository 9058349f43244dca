//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/time/rate"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Hz      int
	Ticks   uint64
}

// RunHeadless runs the app without opening a window. It returns nil when the
// tick budget is spent or the app stops itself with ErrStop.
func RunHeadless(ctx context.Context, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	return runHeadless(ctx, newHost(os.Stdout), newApp, cfg)
}

func runHeadless(ctx context.Context, h *hostHAL, newApp func(HAL) (func() error, error), cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	step, err := newApp(h)
	if err != nil {
		return err
	}

	lim := rate.NewLimiter(rate.Limit(cfg.Hz), 1)
	var tick uint64
	for {
		if err := lim.Wait(ctx); err != nil {
			// Wait fails early when the deadline would pass before the next frame.
			<-ctx.Done()
			return ctx.Err()
		}
		h.t.frame()
		if step != nil {
			if err := step(); err != nil {
				if errors.Is(err, ErrStop) {
					return nil
				}
				return err
			}
		}
		tick++
		if cfg.Ticks > 0 && tick >= cfg.Ticks {
			return nil
		}
	}
}
