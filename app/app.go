// Package app is the image viewer: it shows one picture on the bottom screen
// and mirrors it as the A and B buttons are pressed.
package app

import (
	"errors"
	"fmt"

	"flipview/asset"
	"flipview/console"
	"flipview/flip"
	"flipview/hal"
	"flipview/hid"
	"flipview/internal/buildinfo"

	"github.com/google/uuid"
)

var (
	ErrNoDisplay   = errors.New("app: no bottom screen")
	ErrFramebuffer = errors.New("app: bottom screen does not fit the image")
	ErrNoVBlank    = errors.New("app: no vblank source")
)

// Instructions are printed on the top screen at start-up.
var Instructions = []string{
	"Press A to flip the image over the x-axis.",
	"Press B to flip the image over the y-axis.",
	"Press Start to exit",
}

type Config struct {
	Asset asset.Source
}

type session struct {
	log    *sessionLog
	con    *console.Console
	bottom hal.Framebuffer
	pad    *hid.Pad
	set    *flip.Set
	m      flip.Machine
}

// New starts a viewer with the built-in test card.
func New(h hal.HAL) (func() error, error) {
	return NewWithConfig(h, Config{})
}

// NewWithConfig loads the image, prints the instructions and presents the
// original orientation. The returned step function advances the viewer by
// one frame; it returns hal.ErrStop once Start is pressed.
//
// A configuration error is logged, drawn on the bottom screen and returned.
func NewWithConfig(h hal.HAL, cfg Config) (func() error, error) {
	s := &session{log: newSessionLog(h.Logger(), uuid.New())}
	var top hal.Framebuffer
	if disp := h.Display(); disp != nil {
		top = disp.Top()
		s.bottom = disp.Bottom()
	}
	s.log.printf("%s", buildinfo.String())
	bootStep(h, "loading image")

	if err := s.load(cfg); err != nil {
		s.log.printf("fatal: %v", err)
		if s.bottom != nil {
			showFatal(s.bottom, err)
		}
		return nil, err
	}

	s.con = console.New(top)
	for _, line := range Instructions {
		s.con.Println(line)
	}
	if err := s.con.Flush(); err != nil {
		s.log.printf("console: %v", err)
	}

	var kbd hal.Keyboard
	if in := h.Input(); in != nil {
		kbd = in.Keyboard()
	}
	s.pad = hid.New(kbd)

	if err := hal.Blit(s.bottom, s.set.Select(flip.Original)); err != nil {
		s.log.printf("fatal: %v", err)
		return nil, err
	}
	s.log.printf("orientation: %s", flip.Original)
	return s.step, nil
}

func (s *session) load(cfg Config) error {
	if s.bottom == nil {
		return ErrNoDisplay
	}
	img, err := asset.Open(cfg.Asset)
	if err != nil {
		return err
	}
	set, err := flip.Derive(img.Pixels, img.Stride())
	if err != nil {
		return fmt.Errorf("image %dx%d: %w", img.Width, img.Height, err)
	}

	fb := s.bottom
	switch {
	case fb.Format() != hal.PixelFormatBGR888:
		return fmt.Errorf("bottom screen is %s, want %s: %w", fb.Format(), hal.PixelFormatBGR888, ErrFramebuffer)
	case !fb.Rotated():
		return fmt.Errorf("bottom screen is not column-major: %w", ErrFramebuffer)
	case len(fb.Buffer()) != set.Len():
		return fmt.Errorf("bottom screen holds %d bytes, image has %d: %w", len(fb.Buffer()), set.Len(), ErrFramebuffer)
	}
	s.set = set
	s.log.printf("image %dx%d, %d bytes", img.Width, img.Height, set.Len())
	return nil
}

func (s *session) step() error {
	s.pad.Scan()
	down := s.pad.KeysDown()

	o, changed := s.m.Step(down.Contains(hid.KeyA), down.Contains(hid.KeyB))
	if changed {
		s.log.printf("orientation: %s", o)
		s.con.Printf("orientation: %s\n", o)
		if err := s.con.Flush(); err != nil {
			s.log.printf("console: %v", err)
		}
	}
	if err := hal.Blit(s.bottom, s.set.Select(o)); err != nil {
		return err
	}

	if down.Contains(hid.KeyStart) {
		s.log.printf("exit")
		return hal.ErrStop
	}
	return nil
}
