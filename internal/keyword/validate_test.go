package keyword

import (
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/ocr-keywords/internal/vision"
)

func TestValidateImage(t *testing.T) {
	store := vision.NewStore()
	handle := vision.NewImage(image.NewGray(image.Rect(0, 0, 2, 2)))
	id := store.Put(handle)

	t.Run("handle", func(t *testing.T) {
		got, err := ValidateImage(handle, store)
		require.NoError(t, err)
		assert.Same(t, handle, got)
	})

	t.Run("value", func(t *testing.T) {
		got, err := ValidateImage(*handle, store)
		require.NoError(t, err)
		assert.Equal(t, handle.Pixels(), got.Pixels())
	})

	t.Run("stored id", func(t *testing.T) {
		got, err := ValidateImage(id, store)
		require.NoError(t, err)
		assert.Same(t, handle, got)
	})

	invalid := []any{
		nil,
		"/tmp/screenshot.png",
		"img-unknown",
		(*vision.Image)(nil),
		vision.Image{},
		42,
		image.NewGray(image.Rect(0, 0, 1, 1)),
	}
	for _, v := range invalid {
		_, err := ValidateImage(v, store)
		assert.ErrorIs(t, err, ErrInvalidImage, "value %#v", v)
	}

	_, err := ValidateImage(id, nil)
	assert.ErrorIs(t, err, ErrInvalidImage, "ids need a store")
}

func TestValidateKernelSize(t *testing.T) {
	tests := []struct {
		name    string
		size    any
		oddOnly bool
		want    image.Point
		wantErr bool
	}{
		{"int slice", []int{3, 5}, false, image.Pt(3, 5), false},
		{"json floats", []any{3.0, 3.0}, false, image.Pt(3, 3), false},
		{"runner strings", []any{"1", "1"}, false, image.Pt(1, 1), false},
		{"fractional strings truncate", []string{"1.1", "2.9"}, false, image.Pt(1, 2), false},
		{"fractional floats truncate", []float64{3.7, 1.2}, false, image.Pt(3, 1), false},
		{"array", [2]int{2, 4}, false, image.Pt(2, 4), false},
		{"point", image.Pt(7, 7), true, image.Pt(7, 7), false},
		{"even allowed", []int{2, 2}, false, image.Pt(2, 2), false},
		{"zero", []int{0, 0}, false, image.Point{}, true},
		{"negative", []int{3, -3}, false, image.Point{}, true},
		{"truncates to zero", []any{"0.5", 1}, false, image.Point{}, true},
		{"even with odd only", []int{3, 4}, true, image.Point{}, true},
		{"one component", []int{3}, false, image.Point{}, true},
		{"three components", []int{3, 3, 3}, false, image.Point{}, true},
		{"scalar", 3, false, image.Point{}, true},
		{"string", "3,3", false, image.Point{}, true},
		{"non-numeric item", []any{"a", 3}, false, image.Point{}, true},
		{"nil item", []any{nil, 3}, false, image.Point{}, true},
		{"nil", nil, false, image.Point{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateKernelSize(tt.size, tt.oddOnly)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidKernelSize)
				assert.Contains(t, err.Error(), "(", "message carries the value type")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateKernelSize_Idempotent(t *testing.T) {
	size := []any{"3", 5.0}
	first, err := ValidateKernelSize(size, true)
	require.NoError(t, err)
	second, err := ValidateKernelSize(size, true)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidateKernelScalar(t *testing.T) {
	valid := map[any]int{1: 1, 3: 3, 5.0: 5, "7": 7, int64(9): 9}
	for in, want := range valid {
		got, err := ValidateKernelScalar(in)
		require.NoError(t, err, "value %#v", in)
		assert.Equal(t, want, got)
	}

	for _, in := range []any{0, -1, 2, 4.0, 3.5, "3.5", "x", nil, []int{3}} {
		_, err := ValidateKernelScalar(in)
		assert.ErrorIs(t, err, ErrInvalidKernelSize, "value %#v", in)
	}
}

func TestValidateKernelShape(t *testing.T) {
	for in, want := range map[any]vision.Shape{0: vision.ShapeRect, 1.0: vision.ShapeEllipse, int8(2): vision.ShapeCross} {
		got, err := ValidateKernelShape(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	for _, in := range []any{3, -1, 1.5, "1", nil, true} {
		_, err := ValidateKernelShape(in)
		assert.ErrorIs(t, err, ErrInvalidKernelShape, "value %#v", in)
	}
}

func TestValidateIteration(t *testing.T) {
	for _, in := range []any{1, 2.0, uint(10), int64(100)} {
		_, err := ValidateIteration(in)
		assert.NoError(t, err, "value %#v", in)
	}

	tests := []struct {
		in  any
		msg string
	}{
		{0, "greater than or equal to 1"},
		{-3, "greater than or equal to 1"},
		{1.5, "must be an integer"},
		{"2", "must be an integer"},
		{nil, "must be an integer"},
	}
	for _, tt := range tests {
		_, err := ValidateIteration(tt.in)
		require.ErrorIs(t, err, ErrInvalidIteration, "value %#v", tt.in)
		assert.Contains(t, err.Error(), tt.msg)
	}
}

func TestValidateColourBounds(t *testing.T) {
	got, err := ValidateColourBounds([]int{0, 0, 200}, []any{"0", 0.0, "255"})
	require.NoError(t, err)
	assert.Equal(t, []vision.Triple{{0, 0, 200}, {0, 0, 255}}, got)

	invalid := []any{
		[]int{0, 0, 256},
		[]int{-1, 0, 0},
		[]int{0, 0},
		[]int{0, 0, 0, 0},
		[]any{0, 0, 1.5},
		[]any{0, 0, "red"},
		[]any{0, nil, 0},
		"0,0,0",
		nil,
	}
	for _, b := range invalid {
		_, err := ValidateColourBounds([]int{0, 0, 0}, b)
		assert.ErrorIs(t, err, ErrInvalidColourBounds, "bound %#v", b)
	}
}

func TestValidateThresholdPair(t *testing.T) {
	thr, max, err := ValidateThresholdPair(127, 255.0)
	require.NoError(t, err)
	assert.Equal(t, 127.0, thr)
	assert.Equal(t, 255.0, max)

	_, _, err = ValidateThresholdPair(-20.5, 1000)
	assert.NoError(t, err, "no range is enforced")

	for _, pair := range [][2]any{{"127", 255}, {127, "255"}, {nil, 255}, {127, nil}, {true, 255}} {
		_, _, err := ValidateThresholdPair(pair[0], pair[1])
		assert.ErrorIs(t, err, ErrInvalidThreshold, "pair %#v", pair)
	}
}

func TestValidateDepth(t *testing.T) {
	for _, in := range []any{-1, -1.0, "-1", -5, "-2.5"} {
		_, err := ValidateDepth(in)
		assert.NoError(t, err, "value %#v", in)
	}
	for _, in := range []any{0, 1, 3.0, "-0.5", "deep", nil} {
		_, err := ValidateDepth(in)
		assert.ErrorIs(t, err, ErrInvalidDepth, "value %#v", in)
	}
}

func TestValidatePaths(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "in.png")
	require.NoError(t, vision.Encode(vision.NewImage(image.NewGray(image.Rect(0, 0, 2, 2))), png))
	txt := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(txt, []byte("hello"), 0o644))

	got, err := ValidatePathReadable(png)
	require.NoError(t, err)
	assert.Equal(t, png, got)

	for _, p := range []any{txt, filepath.Join(dir, "missing.png"), 7, nil} {
		_, err := ValidatePathReadable(p)
		assert.ErrorIs(t, err, ErrInvalidPath, "path %#v", p)
	}

	_, err = ValidatePathWritable(filepath.Join(dir, "out.jpg"))
	assert.NoError(t, err)

	for _, p := range []any{filepath.Join(dir, "out.txt"), filepath.Join(dir, "nope", "out.png"), "", nil} {
		_, err := ValidatePathWritable(p)
		assert.ErrorIs(t, err, ErrInvalidPath, "path %#v", p)
	}
}
