package asset

// TestCard draws an image in which every mirror orientation looks different:
// four coloured quadrants, a white marker in the top-left corner and
// gradients running right and down.
func TestCard(w, h int) Image {
	m := Image{Pixels: make([]byte, Size(w, h)), Width: w, Height: h}
	mx, my := w/8, h/8
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			var r, g, b uint8
			left, top := x < w/2, y < h/2
			shade := uint8(64 + (x*96)/w + (y*64)/h)
			switch {
			case left && top:
				r = shade
			case !left && top:
				g = shade
			case left && !top:
				b = shade
			default:
				r, g = shade, shade
			}
			if x < mx && y < my {
				r, g, b = 0xFF, 0xFF, 0xFF
			}
			if x == w/2 || y == h/2 {
				r, g, b = 0, 0, 0
			}
			m.Set(x, y, r, g, b)
		}
	}
	return m
}

// Set writes screen pixel (x, y) in the rotated layout.
func (m Image) Set(x, y int, r, g, b uint8) {
	off := m.offset(x, y)
	if off < 0 {
		return
	}
	m.Pixels[off+0] = b
	m.Pixels[off+1] = g
	m.Pixels[off+2] = r
}

// At reads screen pixel (x, y) from the rotated layout.
func (m Image) At(x, y int) (r, g, b uint8) {
	off := m.offset(x, y)
	if off < 0 {
		return 0, 0, 0
	}
	return m.Pixels[off+2], m.Pixels[off+1], m.Pixels[off+0]
}

func (m Image) offset(x, y int) int {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return -1
	}
	off := (x*m.Height + (m.Height - 1 - y)) * bytesPerPixel
	if off+bytesPerPixel > len(m.Pixels) {
		return -1
	}
	return off
}
