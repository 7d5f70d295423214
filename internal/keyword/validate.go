package keyword

import (
	"fmt"
	"image"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/ironsheep/ocr-keywords/internal/vision"
)

// The validators accept the loosely-typed values a runner sends: Go numbers,
// numeric strings and lists in any slice or array form. JSON numbers arrive
// as float64, so an integral float counts as an integer throughout.

// ValidateImage resolves v to an image handle. v may be a *vision.Image, a
// vision.Image or a handle ID known to store. Anything else, including a
// file path, is rejected.
func ValidateImage(v any, store *vision.Store) (*vision.Image, error) {
	switch img := v.(type) {
	case *vision.Image:
		if img != nil && img.Pixels() != nil {
			return img, nil
		}
	case vision.Image:
		if img.Pixels() != nil {
			return &img, nil
		}
	case string:
		if store != nil {
			if h, ok := store.Get(img); ok {
				return h, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: the image argument %v (%T) is not an image returned by an image processing keyword",
		ErrInvalidImage, v, v)
}

// ValidateKernelSize checks a two-component kernel size. Each component is
// coerced the way the runner's list items are, through float to int, so
// "1.1" and 1.9 both become 1. Components must be positive and, when
// oddOnly is set, odd.
func ValidateKernelSize(size any, oddOnly bool) (image.Point, error) {
	items, ok := asList(size)
	if !ok || len(items) != 2 {
		return image.Point{}, kernelSizeError(size, "want a list of two positive integers")
	}

	var dims [2]int
	for i, item := range items {
		n, ok := truncInt(item)
		if !ok || n <= 0 {
			return image.Point{}, kernelSizeError(size, "want a list of two positive integers")
		}
		if oddOnly && n%2 == 0 {
			return image.Point{}, kernelSizeError(size, "both components must be odd")
		}
		dims[i] = n
	}
	return image.Pt(dims[0], dims[1]), nil
}

// ValidateKernelScalar checks a single kernel size, which must be a positive
// odd integer. Integral numeric strings are accepted.
func ValidateKernelScalar(size any) (int, error) {
	n, ok := looseInt(size)
	if !ok || n <= 0 || n%2 == 0 {
		return 0, kernelSizeError(size, "want a positive odd integer")
	}
	return n, nil
}

func kernelSizeError(size any, want string) error {
	return fmt.Errorf("%w: %v (%T): %s", ErrInvalidKernelSize, size, size, want)
}

// ValidateKernelShape checks a shape selector: 0 rectangle, 1 ellipse or
// 2 cross.
func ValidateKernelShape(sel any) (vision.Shape, error) {
	n, ok := strictInt(sel)
	if !ok || n < 0 || n > 2 {
		return 0, fmt.Errorf("%w: %v (%T): want 0 (rectangle), 1 (ellipse) or 2 (cross)",
			ErrInvalidKernelShape, sel, sel)
	}
	return vision.Shape(n), nil
}

// ValidateIteration checks an iteration count, which must be an integer of
// at least 1.
func ValidateIteration(n any) (int, error) {
	v, ok := strictInt(n)
	if !ok {
		return 0, fmt.Errorf("%w: %v (%T): iteration must be an integer", ErrInvalidIteration, n, n)
	}
	if v < 1 {
		return 0, fmt.Errorf("%w: %d: iteration must be greater than or equal to 1", ErrInvalidIteration, v)
	}
	return v, nil
}

// ValidateColourBounds checks each bound is a list of three integers in
// [0,255]. Integral numeric strings are accepted. It stops at the first bad
// bound.
func ValidateColourBounds(bounds ...any) ([]vision.Triple, error) {
	out := make([]vision.Triple, 0, len(bounds))
	for _, b := range bounds {
		items, ok := asList(b)
		if !ok || len(items) != 3 {
			return nil, fmt.Errorf("%w: %v (%T): want a list of three integers", ErrInvalidColourBounds, b, b)
		}
		var t vision.Triple
		for i, item := range items {
			n, ok := looseInt(item)
			if !ok || n < 0 || n > 255 {
				return nil, fmt.Errorf("%w: %v: every component must be an integer between 0 and 255",
					ErrInvalidColourBounds, b)
			}
			t[i] = uint8(n)
		}
		out = append(out, t)
	}
	return out, nil
}

// ValidateThresholdPair checks that threshold and max are both numbers.
// No range is enforced.
func ValidateThresholdPair(threshold, max any) (float64, float64, error) {
	t, ok := number(threshold)
	if !ok {
		return 0, 0, fmt.Errorf("%w: threshold %v (%T) is not a number", ErrInvalidThreshold, threshold, threshold)
	}
	m, ok := number(max)
	if !ok {
		return 0, 0, fmt.Errorf("%w: max threshold %v (%T) is not a number", ErrInvalidThreshold, max, max)
	}
	return t, m, nil
}

// ValidateDepth checks a destination depth. Only negative values, meaning
// "same as the source", are supported.
func ValidateDepth(d any) (int, error) {
	n, ok := truncInt(d)
	if !ok || n >= 0 {
		return 0, fmt.Errorf("%w: %v (%T): depth must be a negative integer", ErrInvalidDepth, d, d)
	}
	return n, nil
}

// ValidatePathReadable checks that p is a path to a decodable image.
func ValidatePathReadable(p any) (string, error) {
	s, ok := p.(string)
	if !ok || !vision.CanDecode(s) {
		return "", fmt.Errorf("%w: %v (%T) is not a readable image file", ErrInvalidPath, p, p)
	}
	return s, nil
}

// ValidatePathWritable checks that an image could be written to p.
func ValidatePathWritable(p any) (string, error) {
	s, ok := p.(string)
	if !ok || !vision.CanEncode(s) {
		return "", fmt.Errorf("%w: %v (%T) cannot be written as an image file", ErrInvalidPath, p, p)
	}
	return s, nil
}

// asList returns the items of any slice or array, or of an image.Point.
func asList(v any) ([]any, bool) {
	if p, ok := v.(image.Point); ok {
		return []any{p.X, p.Y}, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return items, true
	}
	return nil, false
}

// number returns v as float64 if it is a Go numeric type. Strings, bools
// and nil are not numbers.
func number(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return 0, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f, !math.IsNaN(f)
	}
	return 0, false
}

// strictInt accepts integers and integral floats only.
func strictInt(v any) (int, bool) {
	f, ok := number(v)
	if !ok || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

// looseInt is strictInt that also accepts integral numeric strings.
func looseInt(v any) (int, bool) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		v = f
	}
	return strictInt(v)
}

// truncInt converts numbers and numeric strings to int, truncating toward
// zero.
func truncInt(v any) (int, bool) {
	if s, ok := v.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return 0, false
		}
		v = f
	}
	f, ok := number(v)
	if !ok || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(math.Trunc(f)), true
}
