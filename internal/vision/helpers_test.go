package vision

import (
	"image"
	"image/color"
)

// grayImage builds a w x h grayscale image filled with fill.
func grayImage(w, h int, fill uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for i := range g.Pix {
		g.Pix[i] = fill
	}
	return g
}

// solidImage builds a w x h opaque colour image filled with c.
func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// grayAt returns the value of a single-channel result at (x, y).
func grayAt(img image.Image, x, y int) uint8 {
	return img.(*image.Gray).GrayAt(x, y).Y
}

var (
	redPixel   = color.NRGBA{R: 255, A: 255}
	greenPixel = color.NRGBA{G: 255, A: 255}
	bluePixel  = color.NRGBA{B: 255, A: 255}
)

func grayValue(v uint8) color.Gray {
	return color.Gray{Y: v}
}
