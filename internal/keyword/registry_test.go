package keyword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/ocr-keywords/internal/ocr"
	"github.com/ironsheep/ocr-keywords/internal/vision"
)

func TestKeywordNames(t *testing.T) {
	lib, _ := newTestLibrary(t, &fakeEngine{})

	names := lib.KeywordNames()
	assert.Len(t, names, 27)
	assert.Equal(t, "Get Binary Image", names[0])
	for _, want := range []string{
		"Apply Erosion To Image", "Apply Black Hat To Image", "Apply Filter2D To Image",
		"Mask Colours", "Read Image", "Save Image", "Validate Image Content",
		"Locate Multiple Text Bounds",
	} {
		assert.Contains(t, names, want)
	}

	for _, name := range names {
		kw, ok := lib.Keyword(name)
		require.True(t, ok, name)
		assert.NotEmpty(t, kw.Doc, name)
	}
}

func TestKeywordArguments(t *testing.T) {
	lib, _ := newTestLibrary(t, &fakeEngine{}, WithOCRDefaults(ocr.Options{Language: "deu"}))

	tests := map[string][]string{
		"Apply Erosion To Image":  {"processed_img", "kernel_size", "kernel_type=0", "iteration=1"},
		"Get Binary Image":        {"processed_img", "apply_otsu=False", "inverse=False", "max_threshold=255", "threshold=127"},
		"Get Trunc Image":         {"processed_img", "apply_otsu=False", "max_threshold=255", "threshold=127"},
		"Apply Filter2D To Image": {"processed_img", "kernel_size", "kernel_type=0", "depth=-1"},
		"Save Image":              {"processed_img", "path=None"},
		"Get Image Content":       {"processed_img", "pyt_conf=--psm 6", "lang=deu"},
		"Mask Colour":             {"processed_img", "lower_bound_colour", "upper_bound_colour"},
	}

	for name, want := range tests {
		kw, ok := lib.Keyword(name)
		require.True(t, ok, name)
		assert.Equal(t, want, kw.Arguments(), name)
	}
}

func TestKeywordLookupIgnoresCaseAndSeparators(t *testing.T) {
	lib, _ := newTestLibrary(t, &fakeEngine{})

	for _, name := range []string{"apply erosion to image", "APPLY_EROSION_TO_IMAGE", "applyErosionToImage"} {
		kw, ok := lib.Keyword(name)
		require.True(t, ok, name)
		assert.Equal(t, "Apply Erosion To Image", kw.Name)
	}
}

func TestRun(t *testing.T) {
	lib, _ := newTestLibrary(t, &fakeEngine{})
	src := testImage()

	ret, err := lib.Run("Apply Erosion To Image", []any{src, []any{3.0, 3.0}}, nil)
	require.NoError(t, err)
	assert.IsType(t, &vision.Image{}, ret)

	ret, err = lib.Run("Get Binary Image", []any{src}, map[string]any{"apply_otsu": "True"})
	require.NoError(t, err)
	res, ok := ret.(*ThresholdResult)
	require.True(t, ok)
	assert.True(t, res.Automatic)

	ret, err = lib.Run("Save Image", []any{src, 7}, nil)
	assert.ErrorIs(t, err, ErrInvalidPath)
	assert.Nil(t, ret)
}

func TestRun_NilResults(t *testing.T) {
	lib, _ := newTestLibrary(t, &fakeEngine{})

	ret, err := lib.Run("Locate Text Coordinates", []any{testImage(), "nothing"}, nil)
	require.NoError(t, err)
	assert.Nil(t, ret.(*ocr.Point))

	ret, err = lib.Run("Convert Image To Gray Scale", []any{"not-a-handle"}, nil)
	assert.ErrorIs(t, err, ErrInvalidImage)
	assert.Nil(t, ret)
}

func TestRun_BindingErrors(t *testing.T) {
	lib, _ := newTestLibrary(t, &fakeEngine{})
	src := testImage()

	_, err := lib.Run("No Such Keyword", nil, nil)
	assert.ErrorIs(t, err, ErrUnknownKeyword)

	_, err = lib.Run("Apply Erosion To Image", []any{src}, nil)
	assert.ErrorContains(t, err, "missing value for argument 'kernel_size'")

	_, err = lib.Run("Apply Erosion To Image", []any{src, []int{3, 3}}, map[string]any{"size": 3})
	assert.ErrorContains(t, err, "unexpected named argument 'size'")

	_, err = lib.Run("Apply Erosion To Image", []any{src, []int{3, 3}}, map[string]any{"kernel_size": []int{3, 3}})
	assert.ErrorContains(t, err, "multiple values for argument 'kernel_size'")

	_, err = lib.Run("Convert Image To HSV", []any{src, 1}, nil)
	assert.ErrorContains(t, err, "expects at most 1 arguments, got 2")

	_, err = lib.Run("Get Binary Image", []any{src, "maybe"}, nil)
	assert.ErrorContains(t, err, "cannot be converted to a boolean")
}

func TestArgsBool(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{nil, false},
		{true, true},
		{"TRUE", true},
		{"yes", true},
		{" on ", true},
		{"1", true},
		{"False", false},
		{"None", false},
		{"", false},
		{0, false},
		{2.5, true},
	}

	for _, tt := range tests {
		got, err := args{"flag": tt.value}.bool("flag")
		require.NoError(t, err, "value %v", tt.value)
		assert.Equal(t, tt.want, got, "value %v", tt.value)
	}
}

func TestArgString(t *testing.T) {
	assert.Equal(t, "text", Arg{Name: "text", Required: true}.String())
	assert.Equal(t, "path=None", Arg{Name: "path"}.String())
	assert.Equal(t, "inverse=True", Arg{Name: "inverse", Default: true}.String())
	assert.Equal(t, "depth=-1", Arg{Name: "depth", Default: -1}.String())
}
