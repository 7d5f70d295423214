package keyword

import (
	"errors"
	"fmt"
	"strings"
)

// GetImageContent returns all text Tesseract recognises in img. A nil
// config or lang uses the library default ("--psm 6" and "eng" unless
// configured otherwise).
func (l *Library) GetImageContent(img, config, lang any) (string, error) {
	src, err := l.image(img)
	if err != nil {
		return "", err
	}
	return l.engine.Text(src.Pixels(), l.ocrOptions(config, lang))
}

// ValidateImageContent reports whether expected occurs in the text
// recognised in img. A missing substring is an ErrContentNotFound error
// carrying both texts.
func (l *Library) ValidateImageContent(img, expected, config, lang any) (bool, error) {
	src, err := l.image(img)
	if err != nil {
		return false, err
	}
	want, ok := stringArg(expected)
	if !ok {
		return false, errors.New("expected content must not be None")
	}

	actual, err := l.engine.Text(src.Pixels(), l.ocrOptions(config, lang))
	if err != nil {
		return false, err
	}
	if !strings.Contains(actual, want) {
		return false, fmt.Errorf("%w: the expected content: %s\nwas not found in the actual content: %s",
			ErrContentNotFound, want, actual)
	}
	return true, nil
}
