package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"github.com/sirupsen/logrus"
)

// Tesseract is the Engine backed by the Tesseract library through gosseract.
//
// Every call creates and closes its own gosseract client, so a Tesseract
// value may be shared between goroutines.
type Tesseract struct {
	// TessdataPrefix is the directory holding *.traineddata files. Empty
	// means the Tesseract default (or TESSDATA_PREFIX from the environment).
	TessdataPrefix string

	// Log receives debug output. Nil disables logging.
	Log logrus.FieldLogger
}

// NewTesseract creates a Tesseract engine.
func NewTesseract(tessdataPrefix string, log logrus.FieldLogger) *Tesseract {
	return &Tesseract{TessdataPrefix: tessdataPrefix, Log: log}
}

// Text performs OCR on img and returns all recognised text.
//
// Parameters:
//   - img: The image to read. It is PNG-encoded in memory and handed to
//     Tesseract; no temporary file is written.
//   - opts: Config string and language. See ParseConfig for the options
//     understood in opts.Config.
//
// Returns:
//   - string: The recognised text with Tesseract's spacing and newlines.
//   - error: Non-nil if the config cannot be parsed, the language data is
//     missing or recognition fails.
func (t *Tesseract) Text(img image.Image, opts Options) (string, error) {
	client, err := t.client(img, opts)
	if err != nil {
		return "", err
	}
	defer client.Close()

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return text, nil
}

// Data performs OCR on img and returns word-level tokens.
//
// Tokens come from Tesseract's RIL_WORD iterator level in layout order.
// Empty words are dropped. Confidence is scaled from Tesseract's 0-100 to
// 0.0-1.0.
func (t *Tesseract) Data(img image.Image, opts Options) ([]Token, error) {
	client, err := t.client(img, opts)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("failed to get word boxes: %w", err)
	}

	tokens := make([]Token, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		tokens = append(tokens, Token{
			Text:       box.Word,
			Left:       box.Box.Min.X,
			Top:        box.Box.Min.Y,
			Width:      box.Box.Dx(),
			Height:     box.Box.Dy(),
			Confidence: float64(box.Confidence) / 100.0,
		})
	}
	return tokens, nil
}

// client prepares a gosseract client for one call. The caller must Close it.
func (t *Tesseract) client(img image.Image, opts Options) (*gosseract.Client, error) {
	cfg, err := ParseConfig(opts.Config)
	if err != nil {
		return nil, err
	}

	lang := opts.Language
	if cfg.Language != "" {
		lang = cfg.Language
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image for OCR: %w", err)
	}

	client := gosseract.NewClient()
	if t.TessdataPrefix != "" {
		client.TessdataPrefix = t.TessdataPrefix
	}

	if err := t.configure(client, cfg, lang); err != nil {
		client.Close()
		return nil, err
	}
	if err := client.SetImageFromBytes(buf.Bytes()); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to set image: %w", err)
	}
	return client, nil
}

func (t *Tesseract) configure(client *gosseract.Client, cfg Config, lang string) error {
	if lang != "" {
		if err := client.SetLanguage(strings.Split(lang, "+")...); err != nil {
			return fmt.Errorf("failed to set language: %w", err)
		}
	}
	if cfg.PSM >= 0 {
		if err := client.SetPageSegMode(gosseract.PageSegMode(cfg.PSM)); err != nil {
			return fmt.Errorf("failed to set page segmentation mode: %w", err)
		}
	}
	for _, v := range cfg.Variables {
		if err := client.SetVariable(gosseract.SettableVariable(v.Name), v.Value); err != nil {
			return fmt.Errorf("failed to set variable %s: %w", v.Name, err)
		}
	}
	if cfg.OEM >= 0 && t.Log != nil {
		// gosseract initialises with the default engine mode only.
		t.Log.WithField("oem", cfg.OEM).Debug("ignoring --oem, engine mode is fixed by the library")
	}
	if t.Log != nil {
		t.Log.WithFields(logrus.Fields{
			"lang": lang,
			"psm":  cfg.PSM,
		}).Debug("tesseract configured")
	}
	return nil
}
