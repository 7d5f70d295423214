package keyword

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/ocr-keywords/internal/vision"
)

// Keyword is one entry of the runner-facing keyword table.
type Keyword struct {
	Name string
	Args []Arg
	Doc  string

	call func(a args) (any, error)
}

// Arguments returns the argument list as the runner displays it.
func (k *Keyword) Arguments() []string {
	out := make([]string, len(k.Args))
	for i, a := range k.Args {
		out[i] = a.String()
	}
	return out
}

const (
	imageDoc = "The image argument must be an image returned by another keyword " +
		"(Read Image or any processing keyword)."
	kernelDoc = "kernel_size is a list of two positive integers such as [3, 3]. " +
		"kernel_type selects the structuring element: 0 rectangle, 1 ellipse, 2 cross."
	ocrDoc = "pyt_conf takes tesseract options (--psm N, --oem N, --dpi N, -l LANG, -c NAME=VALUE) " +
		"and lang a Tesseract language code; join several with +."
	thresholdDoc = "The image is converted to gray scale first. With apply_otsu the threshold " +
		"is computed from the histogram and the keyword returns [threshold, image]; " +
		"otherwise it returns the image."
)

var (
	argImage        = Arg{Name: "processed_img", Required: true}
	argKernelSize   = Arg{Name: "kernel_size", Required: true}
	argKernelType   = Arg{Name: "kernel_type", Default: 0}
	argIteration    = Arg{Name: "iteration", Default: 1}
	argApplyOtsu    = Arg{Name: "apply_otsu", Default: false}
	argInverse      = Arg{Name: "inverse", Default: false}
	argMaxThreshold = Arg{Name: "max_threshold", Default: 255}
	argThreshold    = Arg{Name: "threshold", Default: 127}
	argImagePath    = Arg{Name: "img_path", Required: true}
	argText         = Arg{Name: "text", Required: true}
)

// registry builds the keyword table. OCR argument defaults come from the
// library's configured OCR options.
func (l *Library) registry() []*Keyword {
	argPytConf := Arg{Name: "pyt_conf", Default: l.ocrOpts.Config}
	argLang := Arg{Name: "lang", Default: l.ocrOpts.Language}

	morph := func(name, doc string, fn func(img, size, shape, iter any) (any, error)) *Keyword {
		return &Keyword{
			Name: name,
			Args: []Arg{argImage, argKernelSize, argKernelType, argIteration},
			Doc:  doc + "\n\n" + kernelDoc + " iteration is an integer of at least 1.",
			call: func(a args) (any, error) {
				return fn(a["processed_img"], a["kernel_size"], a["kernel_type"], a["iteration"])
			},
		}
	}

	return []*Keyword{
		// Thresholding
		{
			Name: "Get Binary Image",
			Args: []Arg{argImage, argApplyOtsu, argInverse, argMaxThreshold, argThreshold},
			Doc: "Converts an image to a binary image: pixels above the threshold become " +
				"max_threshold and the rest black, or the reverse with inverse.\n\n" + thresholdDoc,
			call: func(a args) (any, error) {
				otsu, inv, err := flags(a, "apply_otsu", "inverse")
				if err != nil {
					return nil, err
				}
				return l.GetBinaryImage(a["processed_img"], otsu, inv, a["max_threshold"], a["threshold"])
			},
		},
		{
			Name: "Get To Zero Image",
			Args: []Arg{argImage, argApplyOtsu, argInverse, argMaxThreshold, argThreshold},
			Doc: "Sets pixels at or below the threshold to black and keeps the rest in gray " +
				"scale. With inverse the pixels above the threshold are set to black instead.\n\n" + thresholdDoc,
			call: func(a args) (any, error) {
				otsu, inv, err := flags(a, "apply_otsu", "inverse")
				if err != nil {
					return nil, err
				}
				return l.GetToZeroImage(a["processed_img"], otsu, inv, a["max_threshold"], a["threshold"])
			},
		},
		{
			Name: "Get Trunc Image",
			Args: []Arg{argImage, argApplyOtsu, argMaxThreshold, argThreshold},
			Doc: "Clips pixels above the threshold to the threshold and keeps the rest in " +
				"gray scale.\n\n" + thresholdDoc,
			call: func(a args) (any, error) {
				otsu, err := a.bool("apply_otsu")
				if err != nil {
					return nil, err
				}
				return l.GetTruncImage(a["processed_img"], otsu, a["max_threshold"], a["threshold"])
			},
		},

		// Morphology
		morph("Apply Erosion To Image", "Erodes the image.", wrapImage(l.ApplyErosionToImage)),
		morph("Apply Dilation To Image", "Dilates the image.", wrapImage(l.ApplyDilationToImage)),
		morph("Apply Opening To Image", "Applies an erosion followed by a dilation, "+
			"which removes small specks.", wrapImage(l.ApplyOpeningToImage)),
		morph("Apply Closing To Image", "Applies a dilation followed by an erosion, "+
			"which fills small holes.", wrapImage(l.ApplyClosingToImage)),
		morph("Apply Gradient To Image", "Returns the difference between the dilation and "+
			"the erosion of the image, outlining shapes.", wrapImage(l.ApplyGradientToImage)),
		morph("Apply Top Hat To Image", "Returns the difference between the image and its "+
			"opening.", wrapImage(l.ApplyTopHatToImage)),
		morph("Apply Black Hat To Image", "Returns the difference between the closing of the "+
			"image and the image.", wrapImage(l.ApplyBlackHatToImage)),

		// Filtering and blurring
		{
			Name: "Apply Filter2D To Image",
			Args: []Arg{argImage, argKernelSize, argKernelType, {Name: "depth", Default: -1}},
			Doc: "Correlates the image with the structuring element as an unnormalised kernel.\n\n" +
				kernelDoc + " depth must be negative; -1 keeps the source depth.",
			call: func(a args) (any, error) {
				return imageResult(l.ApplyFilter2DToImage(a["processed_img"], a["kernel_size"], a["kernel_type"], a["depth"]))
			},
		},
		{
			Name: "Apply Median Filtering To Image",
			Args: []Arg{argImage, argKernelSize},
			Doc:  "Replaces each pixel with the median of its neighbourhood. kernel_size is a single positive odd integer.",
			call: func(a args) (any, error) {
				return imageResult(l.ApplyMedianFilteringToImage(a["processed_img"], a["kernel_size"]))
			},
		},
		{
			Name: "Apply Averaging Blur To Image",
			Args: []Arg{argImage, argKernelSize},
			Doc:  "Blurs the image with a normalised box filter. kernel_size is a list of two positive integers.",
			call: func(a args) (any, error) {
				return imageResult(l.ApplyAveragingBlurToImage(a["processed_img"], a["kernel_size"]))
			},
		},
		{
			Name: "Apply Gaussian Blur To Image",
			Args: []Arg{argImage, argKernelSize},
			Doc: "Blurs the image with a Gaussian kernel. kernel_size is a list of two positive " +
				"odd integers; sigma is derived from the size.",
			call: func(a args) (any, error) {
				return imageResult(l.ApplyGaussianBlurToImage(a["processed_img"], a["kernel_size"]))
			},
		},

		// Colour
		{
			Name: "Convert Image To Gray Scale",
			Args: []Arg{argImage},
			Doc:  "Converts an image to gray scale.\n\n" + imageDoc,
			call: func(a args) (any, error) {
				return imageResult(l.ConvertImageToGrayScale(a["processed_img"]))
			},
		},
		{
			Name: "Convert Image To HSV",
			Args: []Arg{argImage},
			Doc: "Converts a BGR image to HSV. Hue is stored as 0-179, saturation and value " +
				"as 0-255.\n\n" + imageDoc,
			call: func(a args) (any, error) {
				return imageResult(l.ConvertImageToHSV(a["processed_img"]))
			},
		},
		{
			Name: "Mask Colour",
			Args: []Arg{argImage, {Name: "lower_bound_colour", Required: true}, {Name: "upper_bound_colour", Required: true}},
			Doc: "Masks every colour outside the bounds; masked pixels become black. Bounds " +
				"are lists of three integers from 0 to 255 in the image's channel order: " +
				"blue, green, red for a read image and hue, saturation, value after Convert Image To HSV.",
			call: func(a args) (any, error) {
				return imageResult(l.MaskColour(a["processed_img"], a["lower_bound_colour"], a["upper_bound_colour"]))
			},
		},
		{
			Name: "Mask Colours",
			Args: []Arg{
				argImage,
				{Name: "lower_bound_colour1", Required: true}, {Name: "upper_bound_colour1", Required: true},
				{Name: "lower_bound_colour2", Required: true}, {Name: "upper_bound_colour2", Required: true},
			},
			Doc: "Masks every colour outside both pairs of bounds. See Mask Colour for the bound format.",
			call: func(a args) (any, error) {
				return imageResult(l.MaskColours(a["processed_img"],
					a["lower_bound_colour1"], a["upper_bound_colour1"],
					a["lower_bound_colour2"], a["upper_bound_colour2"]))
			},
		},

		// Reading and saving
		{
			Name: "Read Image",
			Args: []Arg{argImagePath},
			Doc:  "Reads an image file. PNG, JPEG, GIF, BMP, TIFF and WebP files are supported.",
			call: func(a args) (any, error) {
				return imageResult(l.ReadImage(a["img_path"]))
			},
		},
		{
			Name: "Get Gray Scale Image",
			Args: []Arg{argImagePath},
			Doc:  "Reads an image file and converts it to gray scale.",
			call: func(a args) (any, error) {
				return imageResult(l.GetGrayScaleImage(a["img_path"]))
			},
		},
		{
			Name: "Save Image",
			Args: []Arg{argImage, {Name: "path", Default: nil}},
			Doc: "Saves an image and links it in the log. Without a path the image is written " +
				"to the output directory as ocrlibrary-saved-image-N.png. The format follows " +
				"the path's extension. Returns True when the image was written.",
			call: func(a args) (any, error) {
				return l.SaveImage(a["processed_img"], a["path"])
			},
		},

		// Content
		{
			Name: "Get Image Content",
			Args: []Arg{argImage, argPytConf, argLang},
			Doc:  "Returns all text recognised in the image.\n\n" + ocrDoc,
			call: func(a args) (any, error) {
				return l.GetImageContent(a["processed_img"], a["pyt_conf"], a["lang"])
			},
		},
		{
			Name: "Validate Image Content",
			Args: []Arg{argImage, {Name: "expected_content", Required: true}, argPytConf, argLang},
			Doc: "Fails unless expected_content occurs in the text recognised in the image.\n\n" +
				ocrDoc,
			call: func(a args) (any, error) {
				return l.ValidateImageContent(a["processed_img"], a["expected_content"], a["pyt_conf"], a["lang"])
			},
		},

		// Location
		{
			Name: "Locate Text Coordinates",
			Args: []Arg{argImage, argText, argPytConf, argLang},
			Doc: "Returns the centre [x, y] of the first word equal to text, or None. Only " +
				"single words are matched.\n\n" + ocrDoc,
			call: func(a args) (any, error) {
				return l.LocateTextCoordinates(a["processed_img"], a["text"], a["pyt_conf"], a["lang"])
			},
		},
		{
			Name: "Locate Multiple Text Coordinates",
			Args: []Arg{argImage, argText, argPytConf, argLang},
			Doc: "Returns the centres of every word equal to text in reading order, or None.\n\n" +
				ocrDoc,
			call: func(a args) (any, error) {
				return l.LocateMultipleTextCoordinates(a["processed_img"], a["text"], a["pyt_conf"], a["lang"])
			},
		},
		{
			Name: "Locate Text Bounds",
			Args: []Arg{argImage, argText, argPytConf, argLang},
			Doc: "Returns the box [x, y, w, h] around the first word equal to text, or None. " +
				"x is the left edge and y the top edge.\n\n" + ocrDoc,
			call: func(a args) (any, error) {
				return l.LocateTextBounds(a["processed_img"], a["text"], a["pyt_conf"], a["lang"])
			},
		},
		{
			Name: "Locate Multiple Text Bounds",
			Args: []Arg{argImage, argText, argPytConf, argLang},
			Doc: "Returns the boxes around every word equal to text in reading order, or None.\n\n" +
				ocrDoc,
			call: func(a args) (any, error) {
				return l.LocateMultipleTextBounds(a["processed_img"], a["text"], a["pyt_conf"], a["lang"])
			},
		},
	}
}

func wrapImage(fn func(img, size, shape, iter any) (*vision.Image, error)) func(img, size, shape, iter any) (any, error) {
	return func(img, size, shape, iter any) (any, error) {
		return imageResult(fn(img, size, shape, iter))
	}
}

// imageResult keeps a nil handle from becoming a non-nil interface.
func imageResult(img *vision.Image, err error) (any, error) {
	if err != nil || img == nil {
		return nil, err
	}
	return img, nil
}

func flags(a args, first, second string) (bool, bool, error) {
	x, err := a.bool(first)
	if err != nil {
		return false, false, err
	}
	y, err := a.bool(second)
	if err != nil {
		return false, false, err
	}
	return x, y, nil
}

// normalize folds a keyword name the way the runner matches names:
// case, spaces and underscores are ignored.
func normalize(name string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "_", "").Replace(name))
}

func index(kws []*Keyword) map[string]*Keyword {
	m := make(map[string]*Keyword, len(kws))
	for _, k := range kws {
		m[normalize(k.Name)] = k
	}
	return m
}

// KeywordNames returns every keyword name in registration order.
func (l *Library) KeywordNames() []string {
	names := make([]string, 0, len(l.order))
	for _, k := range l.order {
		names = append(names, k.Name)
	}
	return names
}

// Keyword looks up a keyword by name, ignoring case, spaces and
// underscores.
func (l *Library) Keyword(name string) (*Keyword, bool) {
	k, ok := l.keywords[normalize(name)]
	return k, ok
}

// Run binds the arguments and invokes the named keyword.
//
// Parameters:
//   - name: Keyword name as the runner writes it, e.g. "Apply Erosion To Image".
//   - positional: Positional argument values in declaration order.
//   - named: Named argument values keyed by argument name, e.g. "kernel_type".
//
// Returns:
//   - any: The keyword's result. Images are *vision.Image, threshold
//     keywords return *ThresholdResult, location keywords return points or
//     bounds. A keyword with nothing to return yields nil.
//   - error: ErrUnknownKeyword for an unknown name, a binding error for bad
//     arguments, or the keyword's own error.
func (l *Library) Run(name string, positional []any, named map[string]any) (any, error) {
	kw, ok := l.Keyword(name)
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownKeyword, name)
	}
	a, err := bind(kw.Name, kw.Args, positional, named)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	ret, err := kw.call(a)
	entry := l.log.WithFields(logrus.Fields{
		"keyword":  kw.Name,
		"duration": time.Since(start),
	})
	if err != nil {
		entry.WithField("kind", KindOf(err)).Debugf("keyword failed: %v", err)
		return nil, err
	}
	entry.Debug("keyword finished")
	return ret, nil
}
