package flip

import (
	"errors"
	"fmt"
)

// BytesPerPixel is the packed pixel size of every buffer handled here.
const BytesPerPixel = 3

// ErrMisaligned reports a buffer whose length does not split into whole
// pixels or whole rows.
var ErrMisaligned = errors.New("flip: misaligned buffer")

// Validate checks that a buffer of n bytes splits into rows of h pixels.
func Validate(n, h int) error {
	if h <= 0 {
		return fmt.Errorf("row height %d: %w", h, ErrMisaligned)
	}
	if n%BytesPerPixel != 0 {
		return fmt.Errorf("length %d is not a multiple of %d: %w", n, BytesPerPixel, ErrMisaligned)
	}
	if n%(h*BytesPerPixel) != 0 {
		return fmt.Errorf("length %d is not a multiple of row size %d: %w", n, h*BytesPerPixel, ErrMisaligned)
	}
	return nil
}

// MirrorPixels returns a copy of b with the order of its pixels reversed.
func MirrorPixels(b []byte) ([]byte, error) {
	if len(b)%BytesPerPixel != 0 {
		return nil, fmt.Errorf("length %d is not a multiple of %d: %w", len(b), BytesPerPixel, ErrMisaligned)
	}
	return reverseChunks(b, BytesPerPixel), nil
}

// MirrorRows returns a copy of b with the order of its rows of h pixels
// reversed. Pixels keep their order inside a row.
func MirrorRows(b []byte, h int) ([]byte, error) {
	if err := Validate(len(b), h); err != nil {
		return nil, err
	}
	return reverseChunks(b, h*BytesPerPixel), nil
}

// MirrorBoth mirrors b across both axes.
func MirrorBoth(b []byte, h int) ([]byte, error) {
	if err := Validate(len(b), h); err != nil {
		return nil, err
	}
	return reverseChunks(reverseChunks(b, h*BytesPerPixel), BytesPerPixel), nil
}

// reverseChunks copies src into a new buffer with its size-byte chunks in
// reverse order. len(src) must be a multiple of size.
func reverseChunks(src []byte, size int) []byte {
	dst := make([]byte, len(src))
	n := len(src)
	for off := 0; off < n; off += size {
		copy(dst[n-off-size:n-off], src[off:off+size])
	}
	return dst
}
