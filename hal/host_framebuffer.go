//go:build !tinygo

package hal

import "image"

// snapshotRGBA converts the current contents of fb into dst, undoing the
// rotated layout. scratch must be at least len(fb.Buffer()) bytes.
func snapshotRGBA(fb *MemFramebuffer, scratch []byte, dst *image.RGBA) {
	fb.Snapshot(scratch)

	w, h := fb.Width(), fb.Height()
	bpp := fb.Format().BytesPerPixel()
	stride := fb.StrideBytes()
	if bpp == 0 {
		return
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var off int
			if fb.Rotated() {
				off = x*stride + (h-1-y)*bpp
			} else {
				off = y*stride + x*bpp
			}
			r, g, b := getPixel(scratch[off:], fb.Format())
			j := dst.PixOffset(x, y)
			dst.Pix[j+0] = r
			dst.Pix[j+1] = g
			dst.Pix[j+2] = b
			dst.Pix[j+3] = 0xFF
		}
	}
}

// screenImage keeps the scratch state needed to show one framebuffer.
type screenImage struct {
	fb      *MemFramebuffer
	scratch []byte
	img     *image.RGBA
}

func newScreenImage(fb *MemFramebuffer) *screenImage {
	return &screenImage{
		fb:      fb,
		scratch: make([]byte, len(fb.Buffer())),
		img:     image.NewRGBA(image.Rect(0, 0, fb.Width(), fb.Height())),
	}
}

func (s *screenImage) refresh() []byte {
	snapshotRGBA(s.fb, s.scratch, s.img)
	return s.img.Pix
}
