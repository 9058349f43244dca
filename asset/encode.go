package asset

import "image"

// Encode converts img into the rotated BGR layout: the picture is turned 90
// degrees clockwise and its red and blue channels swapped. Width and Height
// keep the screen dimensions of img.
func Encode(img image.Image) Image {
	b := img.Bounds()
	m := Image{
		Pixels: make([]byte, Size(b.Dx(), b.Dy())),
		Width:  b.Dx(),
		Height: b.Dy(),
	}
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			r, g, bl, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.Set(x, y, uint8(r>>8), uint8(g>>8), uint8(bl>>8))
		}
	}
	return m
}

// Decode is the inverse of Encode.
func Decode(m Image) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			r, g, b := m.At(x, y)
			i := out.PixOffset(x, y)
			out.Pix[i+0] = r
			out.Pix[i+1] = g
			out.Pix[i+2] = b
			out.Pix[i+3] = 0xFF
		}
	}
	return out
}
