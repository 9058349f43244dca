package flip

// Set holds the base image and its three mirrored variants, indexed by
// Orientation. All four buffers have the same length and are never written
// after Derive returns.
type Set struct {
	height int
	bufs   [len(Orientations)][]byte
}

// Derive validates base against the row height h and precomputes the three
// mirrored variants. On error no variant is built.
func Derive(base []byte, h int) (*Set, error) {
	if err := Validate(len(base), h); err != nil {
		return nil, err
	}
	s := &Set{height: h}
	rows := reverseChunks(base, h*BytesPerPixel)
	s.bufs[Original] = base
	s.bufs[FlippedVertically] = reverseChunks(base, BytesPerPixel)
	s.bufs[FlippedHorizontally] = rows
	s.bufs[FlippedVerticallyAndHorizontally] = reverseChunks(rows, BytesPerPixel)
	return s, nil
}

// Select returns the buffer shown for orientation o. Unknown values fall back
// to the base image.
func (s *Set) Select(o Orientation) []byte {
	if int(o) >= len(s.bufs) {
		return s.bufs[Original]
	}
	return s.bufs[o]
}

// Height returns the row height in pixels.
func (s *Set) Height() int { return s.height }

// Len returns the length in bytes shared by every buffer in the set.
func (s *Set) Len() int { return len(s.bufs[Original]) }
