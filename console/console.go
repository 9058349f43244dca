// Package console prints text onto a framebuffer through a VT100-style
// terminal.
package console

import (
	"fmt"
	"sync"

	"flipview/hal"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

const (
	fontHeight = 10
	fontOffset = 6
)

// Console is a text terminal drawn on one screen.
type Console struct {
	mu sync.Mutex
	fb hal.Framebuffer
	d  *fbDisplay
	t  *tinyterm.Terminal
}

// New clears fb and returns a console drawing on it. Output is not visible
// until Flush.
func New(fb hal.Framebuffer) *Console {
	c := &Console{fb: fb, d: newFBDisplay(fb)}
	c.reset()
	return c
}

func (c *Console) reset() {
	c.t = nil
	if c.fb == nil || c.fb.Width() <= 0 || c.fb.Height() < fontHeight {
		return
	}
	c.fb.ClearRGB(0, 0, 0)
	c.t = tinyterm.NewTerminal(c.d)
	c.t.Configure(&tinyterm.Config{
		Font:              &proggy.TinySZ8pt7b,
		FontHeight:        fontHeight,
		FontOffset:        fontOffset,
		UseSoftwareScroll: true,
	})
}

// Write implements io.Writer.
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.t == nil {
		return len(p), nil
	}
	return c.t.Write(p)
}

func (c *Console) Println(args ...any) {
	_, _ = fmt.Fprintln(c, args...)
}

func (c *Console) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c, format, args...)
}

// Clear wipes the screen and moves the cursor home.
func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

// Flush presents the framebuffer.
func (c *Console) Flush() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.d.Display()
}
