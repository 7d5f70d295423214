package vision

import (
	"image"
	"math"

	"github.com/anthonynsimon/bild/convolution"
	"github.com/anthonynsimon/bild/effect"
)

// fixedGaussian holds the small Gaussian kernels OpenCV uses when sigma is
// derived from the size.
var fixedGaussian = map[int][]float64{
	1: {1},
	3: {0.25, 0.5, 0.25},
	5: {0.0625, 0.25, 0.375, 0.25, 0.0625},
	7: {0.03125, 0.109375, 0.21875, 0.28125, 0.21875, 0.109375, 0.03125},
}

// convolveOptions rounds results to the nearest level: bild truncates after
// adding the bias.
var convolveOptions = &convolution.Options{Bias: 0.5, KeepAlpha: true}

// Filter2D correlates img with the structuring element used as an
// unnormalised 0/1 kernel. The output keeps the source depth and channel
// count. Borders replicate the edge pixel.
func Filter2D(img image.Image, k *Kernel) image.Image {
	ck := convolution.NewKernel(k.Width, k.Height)
	copy(ck.Matrix, k.Weights())
	return likeSource(img, convolution.Convolve(img, ck, convolveOptions))
}

// Median replaces each pixel with the median of its ksize x ksize
// neighbourhood, channel by channel. ksize must be odd. Borders replicate
// the edge pixel.
func Median(img image.Image, ksize int) image.Image {
	src := split(img)
	out := src.blank()
	rect := image.Rect(0, 0, src.w, src.h)

	for c, plane := range src.ch {
		// A gray plane sorts by its own value in bild's pixel ranking.
		m := effect.Median(&image.Gray{Pix: plane, Stride: src.w, Rect: rect}, float64(ksize/2))
		for y := 0; y < src.h; y++ {
			for x := 0; x < src.w; x++ {
				out.ch[c][y*src.w+x] = m.Pix[m.PixOffset(x, y)]
			}
		}
	}
	return out.image()
}

// Blur applies a normalised box filter of the given size.
func Blur(img image.Image, size image.Point) image.Image {
	ck := convolution.NewKernel(size.X, size.Y)
	for i := range ck.Matrix {
		ck.Matrix[i] = 1
	}
	return likeSource(img, convolution.Convolve(img, ck.Normalized(), convolveOptions))
}

// GaussianBlur applies a Gaussian filter of the given odd size, deriving
// sigma from each dimension the way OpenCV does for sigma 0.
func GaussianBlur(img image.Image, size image.Point) image.Image {
	gx := GaussianWeights(size.X)
	gy := GaussianWeights(size.Y)

	ck := convolution.NewKernel(size.X, size.Y)
	for y, wy := range gy {
		for x, wx := range gx {
			ck.Matrix[y*ck.Width+x] = wx * wy
		}
	}
	return likeSource(img, convolution.Convolve(img, ck, convolveOptions))
}

// GaussianWeights returns the 1-D Gaussian kernel of length n with
// sigma = 0.3*((n-1)*0.5 - 1) + 0.8. The weights sum to 1.
func GaussianWeights(n int) []float64 {
	if w, ok := fixedGaussian[n]; ok {
		return append([]float64(nil), w...)
	}

	sigma := 0.3*((float64(n)-1)*0.5-1) + 0.8
	scale := -0.5 / (sigma * sigma)
	w := make([]float64, n)
	sum := 0.0
	for i := range w {
		x := float64(i) - float64(n-1)*0.5
		w[i] = math.Exp(scale * x * x)
		sum += w[i]
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}
