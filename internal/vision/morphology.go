package vision

import "image"

// MorphOp selects a compound morphological operation.
type MorphOp int

const (
	MorphOpen MorphOp = iota
	MorphClose
	MorphGradient
	MorphTopHat
	MorphBlackHat
)

// String returns the operation name.
func (op MorphOp) String() string {
	switch op {
	case MorphOpen:
		return "open"
	case MorphClose:
		return "close"
	case MorphGradient:
		return "gradient"
	case MorphTopHat:
		return "tophat"
	case MorphBlackHat:
		return "blackhat"
	default:
		return "unknown"
	}
}

// Erode replaces every pixel with the minimum over the structuring element,
// channel by channel, repeated iterations times.
//
// Neighbours that fall outside the image are ignored, which matches OpenCV's
// default border for erosion. Alpha is carried through unchanged.
func Erode(img image.Image, k *Kernel, iterations int) image.Image {
	return morph(split(img), k, iterations, true).image()
}

// Dilate replaces every pixel with the maximum over the structuring element.
// See Erode for border and alpha handling.
func Dilate(img image.Image, k *Kernel, iterations int) image.Image {
	return morph(split(img), k, iterations, false).image()
}

// MorphologyEx applies a compound operation built from erosion and dilation:
//   - open: dilate(erode(src))
//   - close: erode(dilate(src))
//   - gradient: dilate(src) - erode(src)
//   - tophat: src - open(src)
//   - blackhat: close(src) - src
//
// Each erosion and dilation runs iterations times. Differences saturate at 0.
func MorphologyEx(img image.Image, op MorphOp, k *Kernel, iterations int) image.Image {
	src := split(img)

	var out *planes
	switch op {
	case MorphOpen:
		out = morph(morph(src, k, iterations, true), k, iterations, false)
	case MorphClose:
		out = morph(morph(src, k, iterations, false), k, iterations, true)
	case MorphGradient:
		out = subtract(morph(src, k, iterations, false), morph(src, k, iterations, true))
	case MorphTopHat:
		opened := morph(morph(src, k, iterations, true), k, iterations, false)
		out = subtract(src, opened)
	case MorphBlackHat:
		closed := morph(morph(src, k, iterations, false), k, iterations, true)
		out = subtract(closed, src)
	default:
		out = src
	}
	return out.image()
}

func morph(src *planes, k *Kernel, iterations int, erode bool) *planes {
	offs := k.offsets()
	cur := src
	for it := 0; it < iterations; it++ {
		next := cur.blank()
		for c := range cur.ch {
			extremum(cur.ch[c], next.ch[c], cur.w, cur.h, offs, erode)
		}
		cur = next
	}
	if cur == src {
		cur = src.blank()
		for c := range src.ch {
			copy(cur.ch[c], src.ch[c])
		}
	}
	return cur
}

func extremum(src, dst []uint8, w, h int, offs []image.Point, erode bool) {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := src[y*w+x]
			seen := false
			for _, o := range offs {
				sx, sy := x+o.X, y+o.Y
				if sx < 0 || sy < 0 || sx >= w || sy >= h {
					continue
				}
				s := src[sy*w+sx]
				switch {
				case !seen:
					v = s
					seen = true
				case erode && s < v:
					v = s
				case !erode && s > v:
					v = s
				}
			}
			dst[y*w+x] = v
		}
	}
}

// subtract returns a - b per channel, clipped at 0. Alpha comes from a.
func subtract(a, b *planes) *planes {
	out := a.blank()
	for c := range a.ch {
		for i, av := range a.ch[c] {
			if bv := b.ch[c][i]; av > bv {
				out.ch[c][i] = av - bv
			}
		}
	}
	return out
}
