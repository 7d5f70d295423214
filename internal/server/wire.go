package server

import (
	"github.com/ironsheep/ocr-keywords/internal/keyword"
	"github.com/ironsheep/ocr-keywords/internal/ocr"
	"github.com/ironsheep/ocr-keywords/internal/vision"
)

// wireValue converts a keyword result into its JSON form. Images are
// registered in the store and replaced by their handle ID.
func (s *Server) wireValue(v interface{}) interface{} {
	switch r := v.(type) {
	case *vision.Image:
		if r == nil {
			return nil
		}
		return s.store.Put(r)
	case *keyword.ThresholdResult:
		if r == nil {
			return nil
		}
		id := s.store.Put(r.Image)
		if r.Automatic {
			return []interface{}{r.Threshold, id}
		}
		return id
	case *ocr.Point:
		if r == nil {
			return nil
		}
		return point(*r)
	case []ocr.Point:
		if r == nil {
			return nil
		}
		out := make([][]float64, len(r))
		for i, p := range r {
			out[i] = point(p)
		}
		return out
	case *ocr.Bounds:
		if r == nil {
			return nil
		}
		return bounds(*r)
	case []ocr.Bounds:
		if r == nil {
			return nil
		}
		out := make([][]int, len(r))
		for i, b := range r {
			out[i] = bounds(b)
		}
		return out
	default:
		return v
	}
}

func point(p ocr.Point) []float64 {
	return []float64{p.X, p.Y}
}

func bounds(b ocr.Bounds) []int {
	return []int{b.Left, b.Top, b.Width, b.Height}
}
