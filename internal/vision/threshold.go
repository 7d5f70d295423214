package vision

import (
	"image"
	"math"
)

// ThresholdType selects how pixels above and below the threshold are mapped.
type ThresholdType int

const (
	// ThresholdBinary maps v > t to max and everything else to 0.
	ThresholdBinary ThresholdType = iota
	// ThresholdBinaryInv maps v > t to 0 and everything else to max.
	ThresholdBinaryInv
	// ThresholdTrunc clips values above t to t.
	ThresholdTrunc
	// ThresholdToZero keeps v > t and zeroes the rest.
	ThresholdToZero
	// ThresholdToZeroInv zeroes v > t and keeps the rest.
	ThresholdToZeroInv
)

// flt32Epsilon is FLT_EPSILON, used as the class-probability cut-off in Otsu.
const flt32Epsilon = 1.1920929e-07

// Threshold converts img to grayscale and applies a fixed threshold.
//
// Parameters:
//   - img: Source image. Colour images are converted with Gray first.
//   - thresh: Threshold value. Fractional values are floored.
//   - maxValue: Value written by the binary modes. Rounded and clipped to
//     [0,255].
//   - typ: Threshold mode.
//
// Returns a single-channel image.
func Threshold(img image.Image, thresh, maxValue float64, typ ThresholdType) image.Image {
	g := Gray(img)
	t := math.Max(-1, math.Min(255, math.Floor(thresh)))
	applyThreshold(g, int(t), saturate(maxValue), typ)
	return g
}

// ThresholdOtsu is Threshold with the threshold chosen by Otsu's method on
// the grayscale histogram. It returns the threshold that was used.
func ThresholdOtsu(img image.Image, maxValue float64, typ ThresholdType) (float64, image.Image) {
	g := Gray(img)
	t := Otsu(g)
	applyThreshold(g, int(t), saturate(maxValue), typ)
	return t, g
}

// Otsu returns the threshold that maximises the between-class variance of
// the image histogram. Ties keep the lowest threshold.
func Otsu(g *image.Gray) float64 {
	var hist [256]int
	b := g.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := g.PixOffset(b.Min.X, y)
		for _, v := range g.Pix[off : off+b.Dx()] {
			hist[v]++
		}
	}

	n := b.Dx() * b.Dy()
	if n == 0 {
		return 0
	}
	scale := 1 / float64(n)

	mu := 0.0
	for i, c := range hist {
		mu += float64(i) * float64(c)
	}
	mu *= scale

	var q1, mu1, maxSigma, maxVal float64
	for i, c := range hist {
		p := float64(c) * scale
		mu1 *= q1
		q1 += p
		q2 := 1 - q1

		if math.Min(q1, q2) < flt32Epsilon || math.Max(q1, q2) > 1-flt32Epsilon {
			continue
		}

		mu1 = (mu1 + float64(i)*p) / q1
		mu2 := (mu - q1*mu1) / q2
		sigma := q1 * q2 * (mu1 - mu2) * (mu1 - mu2)
		if sigma > maxSigma {
			maxSigma = sigma
			maxVal = float64(i)
		}
	}
	return maxVal
}

// applyThreshold rewrites g in place.
func applyThreshold(g *image.Gray, t int, maxValue uint8, typ ThresholdType) {
	var lut [256]uint8
	for v := 0; v < 256; v++ {
		above := v > t
		switch typ {
		case ThresholdBinary:
			if above {
				lut[v] = maxValue
			}
		case ThresholdBinaryInv:
			if !above {
				lut[v] = maxValue
			}
		case ThresholdTrunc:
			if above {
				lut[v] = uint8(clamp(t, 0, 255))
			} else {
				lut[v] = uint8(v)
			}
		case ThresholdToZero:
			if above {
				lut[v] = uint8(v)
			}
		case ThresholdToZeroInv:
			if !above {
				lut[v] = uint8(v)
			}
		}
	}
	for i, v := range g.Pix {
		g.Pix[i] = lut[v]
	}
}
