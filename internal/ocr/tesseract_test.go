package ocr

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawText draws text on an image using basicfont
func drawText(img *image.RGBA, x, y int, text string, col color.Color) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// textImage renders text in black on white and scales it up by an integer
// factor, since Tesseract struggles with 13px glyphs.
func textImage(text string, scale int) *image.RGBA {
	w := len(text)*7 + 40
	h := 40

	small := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(small, small.Bounds(), image.White, image.Point{}, draw.Src)
	drawText(small, 20, 25, text, color.Black)

	img := image.NewRGBA(image.Rect(0, 0, w*scale, h*scale))
	for y := 0; y < h*scale; y++ {
		for x := 0; x < w*scale; x++ {
			img.Set(x, y, small.At(x/scale, y/scale))
		}
	}
	return img
}

// skipWithoutTesseract skips the test when err looks like a missing
// Tesseract installation or language pack.
func skipWithoutTesseract(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "tesseract") || strings.Contains(msg, "library") ||
		strings.Contains(msg, "language") || strings.Contains(msg, "tessdata") {
		t.Skip("Tesseract not available")
	}
}

func newTestEngine() *Tesseract {
	log := logrus.New()
	log.SetLevel(logrus.DebugLevel)
	return NewTesseract("", log)
}

func TestTesseract_Text(t *testing.T) {
	text, err := newTestEngine().Text(textImage("HELLO WORLD", 4), Options{Config: "--psm 6", Language: "eng"})
	skipWithoutTesseract(t, err)
	require.NoError(t, err)

	t.Logf("Extracted text: %q", text)
	assert.Contains(t, strings.ToUpper(text), "HELLO")
}

func TestTesseract_Data(t *testing.T) {
	img := textImage("OK CANCEL OK", 4)
	tokens, err := newTestEngine().Data(img, Options{Config: "--psm 6 --oem 1", Language: "eng"})
	skipWithoutTesseract(t, err)
	require.NoError(t, err)

	for i, tok := range tokens {
		t.Logf("  Token %d: %q at (%d,%d %dx%d) confidence %.2f",
			i, tok.Text, tok.Left, tok.Top, tok.Width, tok.Height, tok.Confidence)
		assert.NotEmpty(t, tok.Text)
		assert.True(t, image.Rect(tok.Left, tok.Top, tok.Left+tok.Width, tok.Top+tok.Height).In(img.Bounds()))
		assert.GreaterOrEqual(t, tok.Confidence, 0.0)
		assert.LessOrEqual(t, tok.Confidence, 1.0)
	}

	if matches := LocateAllBounds(tokens, "OK"); len(matches) == 2 {
		assert.Less(t, matches[0].Left, matches[1].Left, "scan order is left to right")
	}
}

func TestTesseract_BlankImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 50))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	text, err := newTestEngine().Text(img, Options{Config: "--psm 6", Language: "eng"})
	skipWithoutTesseract(t, err)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(text))
}

func TestTesseract_InvalidConfig(t *testing.T) {
	_, err := newTestEngine().Text(textImage("X", 1), Options{Config: "--bogus 1", Language: "eng"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported tesseract option")

	_, err = newTestEngine().Data(textImage("X", 1), Options{Config: "--psm", Language: "eng"})
	assert.Error(t, err)
}

func TestTesseract_InvalidLanguage(t *testing.T) {
	_, err := newTestEngine().Text(textImage("X", 2), Options{Language: "not_a_language"})
	assert.Error(t, err)
}
