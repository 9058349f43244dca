package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"flipview/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	fatalFontHeight = 10
	fatalFontOffset = 6
)

// showFatal replaces the contents of fb with an error report, black on white.
func showFatal(fb hal.Framebuffer, err error) {
	lines := []string{"flipview: fatal error"}
	for _, part := range strings.Split(err.Error(), ": ") {
		lines = append(lines, "  "+part)
	}
	showLines(fb, lines)
}

// showPanic reports a recovered panic and the stack that raised it.
func showPanic(fb hal.Framebuffer, v any, stack []byte) {
	lines := []string{"flipview: panic", fmt.Sprintf("panic: %v", v)}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line != "" {
				lines = append(lines, line)
			}
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}
	showLines(fb, lines)
}

func showLines(fb hal.Framebuffer, lines []string) {
	if fb == nil {
		return
	}
	fb.ClearRGB(0xFF, 0xFF, 0xFF)

	font := &proggy.TinySZ8pt7b
	_, outboxWidth := tinyfont.LineWidth(font, "0")
	fontWidth := int16(outboxWidth)
	if fontWidth <= 0 {
		_ = fb.Present()
		return
	}

	d := fatalDisplay{fb: fb}
	fg := color.RGBA{A: 0xFF}
	cols := int16(fb.Width()) / fontWidth
	if cols <= 0 {
		cols = 1
	}
	maxH := int16(fb.Height())

	y := int16(0)
	for _, line := range lines {
		for len(line) > 0 {
			if y+fatalFontHeight > maxH {
				_ = fb.Present()
				return
			}
			chunk, rest := takeRunes(line, cols)
			drawTextLine(d, font, fontWidth, fatalFontOffset, 0, y, chunk, fg)
			y += fatalFontHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = fb.Present()
}

func drawTextLine(
	d fatalDisplay,
	font tinyfont.Fonter,
	fontWidth, fontOffset int16,
	x0, y0 int16,
	s string,
	fg color.RGBA,
) {
	x := x0
	for _, r := range s {
		tinyfont.DrawChar(d, font, x, y0+fontOffset, r, fg)
		x += fontWidth
	}
}

// fatalDisplay draws straight into a framebuffer without presenting.
type fatalDisplay struct {
	fb hal.Framebuffer
}

func (d fatalDisplay) Size() (x, y int16) {
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d fatalDisplay) SetPixel(x, y int16, c color.RGBA) {
	hal.SetPixelRGB(d.fb, int(x), int(y), c.R, c.G, c.B)
}

func (d fatalDisplay) Display() error { return nil }

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if utf8.RuneCountInString(s) <= int(n) {
		return s, ""
	}
	i := 0
	for count := int16(0); i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i], s[i:]
}
