package console

import (
	"image/color"

	"flipview/hal"

	"tinygo.org/x/drivers"
)

// fbDisplay adapts a hal.Framebuffer to the tinyterm display contract. Pixels
// are written in the framebuffer's own format and orientation.
type fbDisplay struct {
	fb hal.Framebuffer
}

func newFBDisplay(fb hal.Framebuffer) *fbDisplay {
	return &fbDisplay{fb: fb}
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil {
		return
	}
	hal.SetPixelRGB(d.fb, int(x), int(y), c.R, c.G, c.B)
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil {
		return nil
	}
	w, h := d.fb.Width(), d.fb.Height()
	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			hal.SetPixelRGB(d.fb, px, py, c.R, c.G, c.B)
		}
	}
	return nil
}

// ScrollUp moves the content up by lines pixels and clears the exposed band.
func (d *fbDisplay) ScrollUp(lines int16, bg color.RGBA) error {
	if d.fb == nil || lines <= 0 {
		return nil
	}
	w, h := d.fb.Width(), d.fb.Height()
	n := int(lines)
	if n >= h {
		return d.FillRectangle(0, 0, int16(w), int16(h), bg)
	}

	if !d.fb.Rotated() {
		buf := d.fb.Buffer()
		stride := d.fb.StrideBytes()
		dstLen := (h - n) * stride
		if n*stride+dstLen <= len(buf) {
			copy(buf[:dstLen], buf[n*stride:n*stride+dstLen])
			return d.FillRectangle(0, int16(h-n), int16(w), int16(n), bg)
		}
	}

	for y := 0; y < h-n; y++ {
		for x := 0; x < w; x++ {
			r, g, b := hal.PixelRGB(d.fb, x, y+n)
			hal.SetPixelRGB(d.fb, x, y, r, g, b)
		}
	}
	return d.FillRectangle(0, int16(h-n), int16(w), int16(n), bg)
}

// SetScroll is a no-op: the terminal is configured for software scrolling.
func (d *fbDisplay) SetScroll(line int16) {
	_ = line
}

func (d *fbDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
