package vision

import (
	"fmt"
	"image"
	"math"
	"strings"
)

// Shape identifies a structuring-element shape.
type Shape int

const (
	ShapeRect    Shape = 0
	ShapeEllipse Shape = 1
	ShapeCross   Shape = 2
)

// String returns the shape name.
func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeEllipse:
		return "ellipse"
	case ShapeCross:
		return "cross"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Kernel is a binary structuring element. Mask is stored row-major with
// Width*Height entries; Anchor is the element's origin.
type Kernel struct {
	Width  int
	Height int
	Anchor image.Point
	Mask   []bool
}

// At reports whether the element is set at column x, row y.
func (k *Kernel) At(x, y int) bool {
	return k.Mask[y*k.Width+x]
}

// Weights returns the element as 0/1 weights, row-major.
func (k *Kernel) Weights() []float64 {
	w := make([]float64, len(k.Mask))
	for i, on := range k.Mask {
		if on {
			w[i] = 1
		}
	}
	return w
}

// String renders the mask one row per line, for test diagnostics.
func (k *Kernel) String() string {
	var sb strings.Builder
	for y := 0; y < k.Height; y++ {
		for x := 0; x < k.Width; x++ {
			if k.At(x, y) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if y < k.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// RectKernel returns a fully set size.X by size.Y element.
func RectKernel(size image.Point) *Kernel {
	return StructuringElement(ShapeRect, size)
}

// EllipseKernel returns the ellipse inscribed in a size.X by size.Y box.
func EllipseKernel(size image.Point) *Kernel {
	return StructuringElement(ShapeEllipse, size)
}

// CrossKernel returns a cross through the centre of a size.X by size.Y box.
func CrossKernel(size image.Point) *Kernel {
	return StructuringElement(ShapeCross, size)
}

// StructuringElement builds a structuring element of the given shape.
//
// The layout is pixel-for-pixel that of OpenCV's getStructuringElement with
// the default anchor:
//   - The anchor is (width/2, height/2).
//   - A 1x1 element is always a rectangle.
//   - A cross sets row height/2 and column width/2.
//   - Ellipse rows span c±round(c*sqrt(1-dy²/r²)) with r = height/2 and
//     c = width/2.
//
// Width and height must be positive. Unknown shapes produce a rectangle;
// callers are expected to have validated the shape already.
func StructuringElement(shape Shape, size image.Point) *Kernel {
	w, h := size.X, size.Y
	k := &Kernel{
		Width:  w,
		Height: h,
		Anchor: image.Pt(w/2, h/2),
		Mask:   make([]bool, w*h),
	}

	if w == 1 && h == 1 {
		shape = ShapeRect
	}

	r := h / 2
	c := w / 2
	invR2 := 0.0
	if r > 0 {
		invR2 = 1 / float64(r*r)
	}

	for i := 0; i < h; i++ {
		j1, j2 := 0, 0
		switch {
		case shape == ShapeCross && i != k.Anchor.Y:
			j1 = k.Anchor.X
			j2 = j1 + 1
		case shape == ShapeCross, shape != ShapeEllipse:
			j2 = w
		default:
			dy := i - r
			if abs(dy) <= r {
				dx := int(math.RoundToEven(float64(c) * math.Sqrt(float64(r*r-dy*dy)*invR2)))
				j1 = max(c-dx, 0)
				j2 = min(c+dx+1, w)
			}
		}
		for j := j1; j < j2; j++ {
			k.Mask[i*w+j] = true
		}
	}
	return k
}

// offsets returns the (dx, dy) displacement of every set cell relative to
// the anchor.
func (k *Kernel) offsets() []image.Point {
	var pts []image.Point
	for y := 0; y < k.Height; y++ {
		for x := 0; x < k.Width; x++ {
			if k.At(x, y) {
				pts = append(pts, image.Pt(x-k.Anchor.X, y-k.Anchor.Y))
			}
		}
	}
	return pts
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
