package hal

import (
	"errors"
	"fmt"
	"sync"
)

// ErrFramebufferSize reports a blit whose source does not match the
// framebuffer size exactly.
var ErrFramebufferSize = errors.New("framebuffer size mismatch")

// MemFramebuffer is a framebuffer held in ordinary memory. The present hook,
// if any, pushes the buffer to real hardware.
type MemFramebuffer struct {
	mu      sync.Mutex
	width   int
	height  int
	format  PixelFormat
	rotated bool
	stride  int
	buf     []byte

	present  func(buf []byte) error
	presents uint64
}

// NewMemFramebuffer allocates a width x height framebuffer.
func NewMemFramebuffer(width, height int, format PixelFormat, rotated bool) *MemFramebuffer {
	bpp := format.BytesPerPixel()
	stride := width * bpp
	rows := height
	if rotated {
		stride = height * bpp
		rows = width
	}
	return &MemFramebuffer{
		width:   width,
		height:  height,
		format:  format,
		rotated: rotated,
		stride:  stride,
		buf:     make([]byte, stride*rows),
	}
}

func (f *MemFramebuffer) Width() int          { return f.width }
func (f *MemFramebuffer) Height() int         { return f.height }
func (f *MemFramebuffer) Format() PixelFormat { return f.format }
func (f *MemFramebuffer) Rotated() bool       { return f.rotated }
func (f *MemFramebuffer) StrideBytes() int    { return f.stride }
func (f *MemFramebuffer) Buffer() []byte      { return f.buf }

func (f *MemFramebuffer) ClearRGB(r, g, b uint8) {
	f.mu.Lock()
	defer f.mu.Unlock()
	FillRGB(f.buf, f.format, r, g, b)
}

func (f *MemFramebuffer) Present() error {
	f.mu.Lock()
	f.presents++
	hook := f.present
	f.mu.Unlock()
	if hook == nil {
		return nil
	}
	return hook(f.buf)
}

// Presents returns how many times Present has been called.
func (f *MemFramebuffer) Presents() uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.presents
}

// Snapshot copies the current buffer contents into dst.
func (f *MemFramebuffer) Snapshot(dst []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.buf)
}

// Blit copies src into fb and presents it. src must be exactly the size of
// the framebuffer; nothing is converted or scaled.
func Blit(fb Framebuffer, src []byte) error {
	buf := fb.Buffer()
	if buf == nil {
		return ErrNotImplemented
	}
	if len(src) != len(buf) {
		return fmt.Errorf("blit %d bytes into %d: %w", len(src), len(buf), ErrFramebufferSize)
	}
	copy(buf, src)
	return fb.Present()
}
