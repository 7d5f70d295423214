package ocr

import "image"

// Options carries the per-call Tesseract settings a keyword passes through.
type Options struct {
	// Config is a tesseract command-line style option string, e.g. "--psm 6".
	// See ParseConfig for the accepted options.
	Config string

	// Language is a Tesseract language code. Several languages are joined
	// with "+", e.g. "eng+deu".
	Language string
}

// Token is one recognised word with its bounding box.
type Token struct {
	Text       string  `json:"text"`
	Left       int     `json:"left"`
	Top        int     `json:"top"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Confidence float64 `json:"confidence"` // 0.0 to 1.0
}

// Engine is the OCR collaborator used by the keyword library.
//
// Text returns the full recognised text. Data returns word-level tokens in
// the engine's layout order (top to bottom, left to right within a line).
// Implementations must not modify img.
type Engine interface {
	Text(img image.Image, opts Options) (string, error)
	Data(img image.Image, opts Options) ([]Token, error)
}
