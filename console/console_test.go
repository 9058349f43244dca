package console

import (
	"image/color"
	"testing"

	"flipview/hal"
)

func litPixels(fb hal.Framebuffer) int {
	n := 0
	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if r, g, b := hal.PixelRGB(fb, x, y); r|g|b != 0 {
				n++
			}
		}
	}
	return n
}

func TestConsolePrintsAndFlushes(t *testing.T) {
	fb := hal.NewMemFramebuffer(320, 80, hal.PixelFormatRGB565, false)
	fb.ClearRGB(0xFF, 0, 0)

	c := New(fb)
	if n := litPixels(fb); n != 0 {
		t.Fatalf("New() left %d lit pixels, want cleared screen", n)
	}

	c.Println("Press A to flip the image over the x-axis.")
	if litPixels(fb) == 0 {
		t.Fatal("Println() drew nothing")
	}
	if got := fb.Presents(); got != 0 {
		t.Fatalf("Presents() = %d before Flush, want 0", got)
	}
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush() err = %v", err)
	}
	if got := fb.Presents(); got != 1 {
		t.Fatalf("Presents() = %d after Flush, want 1", got)
	}

	c.Clear()
	if n := litPixels(fb); n != 0 {
		t.Fatalf("Clear() left %d lit pixels", n)
	}
}

func TestConsoleRotatedFramebuffer(t *testing.T) {
	fb := hal.NewMemFramebuffer(120, 40, hal.PixelFormatBGR888, true)
	c := New(fb)
	c.Printf("orientation: %s\n", "original")
	if litPixels(fb) == 0 {
		t.Fatal("Printf() drew nothing on a rotated framebuffer")
	}
}

func TestConsoleNilFramebuffer(t *testing.T) {
	c := New(nil)
	c.Println("ignored")
	if err := c.Flush(); err != nil {
		t.Fatalf("Flush() err = %v", err)
	}
}

func TestFillRectangleClamps(t *testing.T) {
	fb := hal.NewMemFramebuffer(8, 4, hal.PixelFormatBGR888, false)
	d := newFBDisplay(fb)
	if err := d.FillRectangle(-2, 2, 4, 10, color.RGBA{R: 0xFF, A: 0xFF}); err != nil {
		t.Fatalf("FillRectangle() err = %v", err)
	}
	if got := litPixels(fb); got != 4 {
		t.Fatalf("lit pixels = %d, want 4", got)
	}
	if r, _, _ := hal.PixelRGB(fb, 1, 3); r != 0xFF {
		t.Fatalf("PixelRGB(1, 3) red = %d, want 255", r)
	}
}

func TestScrollUp(t *testing.T) {
	for _, rotated := range []bool{false, true} {
		fb := hal.NewMemFramebuffer(6, 5, hal.PixelFormatBGR888, rotated)
		hal.SetPixelRGB(fb, 2, 3, 0x10, 0x20, 0x30)
		hal.SetPixelRGB(fb, 4, 0, 0xFF, 0xFF, 0xFF)

		d := newFBDisplay(fb)
		if err := d.ScrollUp(2, color.RGBA{}); err != nil {
			t.Fatalf("rotated=%v: ScrollUp() err = %v", rotated, err)
		}
		if r, g, b := hal.PixelRGB(fb, 2, 1); r != 0x10 || g != 0x20 || b != 0x30 {
			t.Fatalf("rotated=%v: PixelRGB(2, 1) = (%d, %d, %d), want scrolled pixel", rotated, r, g, b)
		}
		if got := litPixels(fb); got != 1 {
			t.Fatalf("rotated=%v: lit pixels = %d, want 1", rotated, got)
		}
	}
}

func bandLit(fb hal.Framebuffer, y0, y1 int) bool {
	for y := y0; y < y1; y++ {
		for x := 0; x < fb.Width(); x++ {
			if r, g, b := hal.PixelRGB(fb, x, y); r|g|b != 0 {
				return true
			}
		}
	}
	return false
}

func TestConsoleScrollsUp(t *testing.T) {
	fb := hal.NewMemFramebuffer(120, 3*fontHeight, hal.PixelFormatRGB565, false)
	c := New(fb)
	c.Println("one")
	c.Println("two")
	c.Println("three")

	// The last newline moves every row up by one and clears the bottom row.
	if !bandLit(fb, 0, fontHeight) {
		t.Fatal("top row is blank after scrolling, want the second line")
	}
	if !bandLit(fb, fontHeight, 2*fontHeight) {
		t.Fatal("middle row is blank after scrolling, want the third line")
	}
	if bandLit(fb, 2*fontHeight, 3*fontHeight) {
		t.Fatal("bottom row is not cleared after scrolling")
	}
}

func TestConsoleTooSmall(t *testing.T) {
	for _, fb := range []*hal.MemFramebuffer{
		hal.NewMemFramebuffer(0, 0, hal.PixelFormatRGB565, false),
		hal.NewMemFramebuffer(120, fontHeight-1, hal.PixelFormatBGR888, true),
	} {
		c := New(fb)
		c.Println("ignored")
		c.Clear()
		if err := c.Flush(); err != nil {
			t.Fatalf("%dx%d: Flush() err = %v", fb.Width(), fb.Height(), err)
		}
	}
}
