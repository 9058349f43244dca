//go:build !tinygo && cgo

package hal

import (
	"errors"

	"flipview/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale int
	TPS   int
}

// RunWindow starts a desktop window that shows both screens stacked and
// forwards keyboard and gamepad input. It blocks until the window closes or
// the app returns ErrStop.
func RunWindow(newApp func(HAL) (func() error, error), cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 1
	}
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}

	h := New().(*hostHAL)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{
		h:      h,
		step:   step,
		top:    newScreenImage(h.top),
		bottom: newScreenImage(h.bottom),
	}
	ebiten.SetWindowTitle("flipview (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(TopWidth*cfg.Scale, 2*ScreenHeight*cfg.Scale)
	ebiten.SetTPS(cfg.TPS)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h    *hostHAL
	step func() error

	top       *screenImage
	bottom    *screenImage
	topImg    *ebiten.Image
	bottomImg *ebiten.Image
}

func (g *hostGame) Update() error {
	g.h.kbd.poll()
	g.h.t.frame()
	if g.step != nil {
		if err := g.step(); err != nil {
			if errors.Is(err, ErrStop) {
				return ebiten.Termination
			}
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.topImg == nil {
		g.topImg = ebiten.NewImage(g.h.top.Width(), g.h.top.Height())
		g.bottomImg = ebiten.NewImage(g.h.bottom.Width(), g.h.bottom.Height())
	}

	g.topImg.WritePixels(g.top.refresh())
	g.bottomImg.WritePixels(g.bottom.refresh())

	screen.DrawImage(g.topImg, nil)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(TopWidth-BottomWidth)/2, ScreenHeight)
	screen.DrawImage(g.bottomImg, op)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return TopWidth, 2 * ScreenHeight
}
