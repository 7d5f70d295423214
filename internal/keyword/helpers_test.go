package keyword

import (
	"errors"
	"image"
	"image/color"
	"io"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/ocr-keywords/internal/ocr"
	"github.com/ironsheep/ocr-keywords/internal/vision"
)

// fakeEngine is an ocr.Engine returning canned results.
type fakeEngine struct {
	text   string
	tokens []ocr.Token
	err    error
	calls  []ocr.Options
}

func (f *fakeEngine) Text(_ image.Image, opts ocr.Options) (string, error) {
	f.calls = append(f.calls, opts)
	return f.text, f.err
}

func (f *fakeEngine) Data(_ image.Image, opts ocr.Options) ([]ocr.Token, error) {
	f.calls = append(f.calls, opts)
	return f.tokens, f.err
}

var errEngine = errors.New("tesseract exploded")

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestLibrary returns a library over a fresh store and engine, and the
// HTML lines it reports.
func newTestLibrary(t *testing.T, engine *fakeEngine, opts ...Option) (*Library, *[]string) {
	t.Helper()
	var reported []string
	opts = append([]Option{
		WithLogger(quietLogger()),
		WithReporter(func(html string) { reported = append(reported, html) }),
	}, opts...)
	return New(vision.NewStore(), engine, opts...), &reported
}

// testImage returns a 9x9 colour handle: white background with a black
// 3x3 square in the middle.
func testImage() *vision.Image {
	img := image.NewNRGBA(image.Rect(0, 0, 9, 9))
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			c := color.NRGBA{255, 255, 255, 255}
			if x >= 3 && x < 6 && y >= 3 && y < 6 {
				c = color.NRGBA{0, 0, 0, 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return vision.NewImage(img)
}

func grayPix(img *vision.Image) []uint8 {
	return img.Pixels().(*image.Gray).Pix
}
