package hal

func rgb565(r, g, b uint8) uint16 {
	rr := uint16(r>>3) & 0x1F
	gg := uint16(g>>2) & 0x3F
	bb := uint16(b>>3) & 0x1F
	return (rr << 11) | (gg << 5) | bb
}

func rgb888From565(p uint16) (r, g, b uint8) {
	rr := (p >> 11) & 0x1F
	gg := (p >> 5) & 0x3F
	bb := p & 0x1F

	r = uint8((rr * 255) / 31)
	g = uint8((gg * 255) / 63)
	b = uint8((bb * 255) / 31)
	return r, g, b
}

// PixelOffset returns the byte offset of screen pixel (x, y) in fb, or -1 if
// the pixel lies outside the buffer.
func PixelOffset(fb Framebuffer, x, y int) int {
	w, h := fb.Width(), fb.Height()
	if x < 0 || x >= w || y < 0 || y >= h {
		return -1
	}
	bpp := fb.Format().BytesPerPixel()
	if bpp == 0 {
		return -1
	}
	var off int
	if fb.Rotated() {
		off = x*fb.StrideBytes() + (h-1-y)*bpp
	} else {
		off = y*fb.StrideBytes() + x*bpp
	}
	if off+bpp > len(fb.Buffer()) {
		return -1
	}
	return off
}

// SetPixelRGB writes one pixel in the framebuffer's native format.
func SetPixelRGB(fb Framebuffer, x, y int, r, g, b uint8) {
	off := PixelOffset(fb, x, y)
	if off < 0 {
		return
	}
	putPixel(fb.Buffer()[off:], fb.Format(), r, g, b)
}

// PixelRGB reads one pixel back as 8-bit channels.
func PixelRGB(fb Framebuffer, x, y int) (r, g, b uint8) {
	off := PixelOffset(fb, x, y)
	if off < 0 {
		return 0, 0, 0
	}
	return getPixel(fb.Buffer()[off:], fb.Format())
}

// FillRGB fills buf with one colour in the given format.
func FillRGB(buf []byte, format PixelFormat, r, g, b uint8) {
	bpp := format.BytesPerPixel()
	if bpp == 0 {
		return
	}
	for i := 0; i+bpp <= len(buf); i += bpp {
		putPixel(buf[i:], format, r, g, b)
	}
}

func putPixel(dst []byte, format PixelFormat, r, g, b uint8) {
	switch format {
	case PixelFormatRGB565:
		p := rgb565(r, g, b)
		dst[0] = byte(p)
		dst[1] = byte(p >> 8)
	case PixelFormatBGR888:
		dst[0] = b
		dst[1] = g
		dst[2] = r
	}
}

func getPixel(src []byte, format PixelFormat) (r, g, b uint8) {
	switch format {
	case PixelFormatRGB565:
		return rgb888From565(uint16(src[0]) | uint16(src[1])<<8)
	case PixelFormatBGR888:
		return src[2], src[1], src[0]
	}
	return 0, 0, 0
}
