// Package asset supplies the base image shown by the viewer.
//
// Images are stored the way the console scans its bottom panel: packed BGR,
// 3 bytes per pixel, rotated 90 degrees clockwise so that each run of Height
// pixels in memory is one screen column, from the bottom up.
package asset

import (
	"errors"
	"fmt"
	"os"
)

// Default geometry of the bottom screen.
const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

const bytesPerPixel = 3

var (
	ErrSize     = errors.New("asset: size mismatch")
	ErrChecksum = errors.New("asset: checksum mismatch")
	ErrFormat   = errors.New("asset: unsupported format")
)

// Image is a raw rotated BGR image.
type Image struct {
	Pixels []byte
	Width  int
	Height int
}

// Stride returns the length in pixels of one memory row.
func (m Image) Stride() int { return m.Height }

// Size returns the expected byte length for w x h pixels.
func Size(w, h int) int { return w * h * bytesPerPixel }

// LoadRaw reads a raw image of exactly w x h pixels.
func LoadRaw(path string, w, h int) (Image, error) {
	if w <= 0 || h <= 0 {
		return Image{}, fmt.Errorf("load %s: invalid geometry %dx%d: %w", path, w, h, ErrSize)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Image{}, fmt.Errorf("load %s: %w", path, err)
	}
	if len(b) != Size(w, h) {
		return Image{}, fmt.Errorf("load %s: %d bytes, want %d for %dx%d: %w", path, len(b), Size(w, h), w, h, ErrSize)
	}
	return Image{Pixels: b, Width: w, Height: h}, nil
}

// Source selects where the base image comes from.
type Source struct {
	Manifest string
	Path     string
	Width    int
	Height   int
}

// Open loads the image named by src: the manifest if set, else the raw file,
// else a generated test card.
func Open(src Source) (Image, error) {
	w, h := src.Width, src.Height
	if w == 0 {
		w = DefaultWidth
	}
	if h == 0 {
		h = DefaultHeight
	}
	switch {
	case src.Manifest != "":
		return LoadManifest(src.Manifest)
	case src.Path != "":
		return LoadRaw(src.Path, w, h)
	default:
		return TestCard(w, h), nil
	}
}
