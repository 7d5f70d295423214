package vision

import (
	"image"

	"github.com/disintegration/imaging"
)

// planes is an image split into separate 8-bit channels.
//
// Colour images carry three channels in BGR order plus alpha. Grayscale
// images carry one channel and no alpha.
type planes struct {
	w, h  int
	ch    [][]uint8
	alpha []uint8
}

// split decomposes img into channel planes. *image.Gray stays single-channel;
// everything else is normalised through imaging.Clone to NRGBA first.
func split(img image.Image) *planes {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if g, ok := img.(*image.Gray); ok {
		p := &planes{w: w, h: h, ch: [][]uint8{make([]uint8, w*h)}}
		for y := 0; y < h; y++ {
			off := g.PixOffset(b.Min.X, b.Min.Y+y)
			copy(p.ch[0][y*w:(y+1)*w], g.Pix[off:off+w])
		}
		return p
	}

	src := imaging.Clone(img)
	p := &planes{
		w:     w,
		h:     h,
		ch:    [][]uint8{make([]uint8, w*h), make([]uint8, w*h), make([]uint8, w*h)},
		alpha: make([]uint8, w*h),
	}
	for i := 0; i < w*h; i++ {
		px := src.Pix[i*4 : i*4+4 : i*4+4]
		p.ch[0][i] = px[2]
		p.ch[1][i] = px[1]
		p.ch[2][i] = px[0]
		p.alpha[i] = px[3]
	}
	return p
}

// blank returns planes with the same shape and alpha as p and zeroed channels.
func (p *planes) blank() *planes {
	out := &planes{w: p.w, h: p.h, ch: make([][]uint8, len(p.ch))}
	for i := range p.ch {
		out.ch[i] = make([]uint8, p.w*p.h)
	}
	if p.alpha != nil {
		out.alpha = append([]uint8(nil), p.alpha...)
	}
	return out
}

// colour returns p expanded to three channels. Colour planes are returned as is.
func (p *planes) colour() *planes {
	if len(p.ch) == 3 {
		return p
	}
	out := &planes{w: p.w, h: p.h, alpha: make([]uint8, p.w*p.h)}
	for i := 0; i < 3; i++ {
		out.ch = append(out.ch, append([]uint8(nil), p.ch[0]...))
	}
	for i := range out.alpha {
		out.alpha[i] = 255
	}
	return out
}

// image reassembles the planes. The result always starts at (0,0).
func (p *planes) image() image.Image {
	rect := image.Rect(0, 0, p.w, p.h)
	if len(p.ch) == 1 {
		g := image.NewGray(rect)
		copy(g.Pix, p.ch[0])
		return g
	}

	dst := image.NewNRGBA(rect)
	for i := 0; i < p.w*p.h; i++ {
		dst.Pix[i*4] = p.ch[2][i]
		dst.Pix[i*4+1] = p.ch[1][i]
		dst.Pix[i*4+2] = p.ch[0][i]
		dst.Pix[i*4+3] = p.alpha[i]
	}
	return dst
}

// likeSource converts a filter result back to a single channel when the
// source was grayscale, so filters preserve the channel count.
func likeSource(src, dst image.Image) image.Image {
	if _, ok := src.(*image.Gray); !ok {
		return imaging.Clone(dst)
	}
	b := dst.Bounds()
	g := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	n := imaging.Clone(dst)
	for i := 0; i < b.Dx()*b.Dy(); i++ {
		g.Pix[i] = n.Pix[i*4]
	}
	return g
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// saturate rounds v to the nearest integer and clips it to the uint8 range.
func saturate(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
