package vision

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/lucasb-eyer/go-colorful"
)

// Triple is one colour value in channel order (c0, c1, c2). For BGR images
// that is (blue, green, red); for HSV images it is (hue, saturation, value).
type Triple [3]uint8

// Range is an inclusive per-channel interval.
type Range struct {
	Lower Triple
	Upper Triple
}

// Contains reports whether every channel of t lies within the range.
func (r Range) Contains(t Triple) bool {
	for i := range t {
		if t[i] < r.Lower[i] || t[i] > r.Upper[i] {
			return false
		}
	}
	return true
}

// Gray returns a single-channel copy of img.
//
// Colour images are reduced with imaging.Grayscale, which weights the
// channels 0.299R + 0.587G + 0.114B. Alpha is discarded. A grayscale input is
// copied as is.
func Gray(img image.Image) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))

	if g, ok := img.(*image.Gray); ok {
		for y := 0; y < b.Dy(); y++ {
			off := g.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+b.Dx()], g.Pix[off:off+b.Dx()])
		}
		return dst
	}

	luma := imaging.Grayscale(img)
	for i := range dst.Pix {
		dst.Pix[i] = luma.Pix[i*4]
	}
	return dst
}

// ToHSV converts img to the 8-bit HSV layout used by OpenCV: H in [0,179]
// (degrees halved), S and V in [0,255]. The result stores H, S and V in
// channels 0, 1 and 2. Grayscale input is treated as a colour image with
// equal channels.
func ToHSV(img image.Image) image.Image {
	src := split(img).colour()
	out := src.blank()

	for i := 0; i < src.w*src.h; i++ {
		c := colorful.Color{
			R: float64(src.ch[2][i]) / 255,
			G: float64(src.ch[1][i]) / 255,
			B: float64(src.ch[0][i]) / 255,
		}
		h, s, v := c.Hsv()
		hue := int(math.Round(h / 2))
		if hue >= 180 {
			hue -= 180
		}
		out.ch[0][i] = uint8(hue)
		out.ch[1][i] = saturate(s * 255)
		out.ch[2][i] = saturate(v * 255)
	}
	return out.image()
}

// Mask keeps the pixels whose channel triple falls inside any of the ranges
// and turns every other pixel black. Alpha is unchanged.
//
// Grayscale images are compared as if all three channels held the gray
// value and stay single-channel.
func Mask(img image.Image, ranges ...Range) image.Image {
	src := split(img)
	out := src.blank()

	for i := 0; i < src.w*src.h; i++ {
		var t Triple
		for c := range t {
			t[c] = src.ch[c%len(src.ch)][i]
		}
		for _, r := range ranges {
			if r.Contains(t) {
				for c := range src.ch {
					out.ch[c][i] = src.ch[c][i]
				}
				break
			}
		}
	}
	return out.image()
}
