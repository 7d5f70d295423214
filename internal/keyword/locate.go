package keyword

import (
	"github.com/ironsheep/ocr-keywords/internal/ocr"
)

// LocateTextCoordinates returns the centre of the first word in img equal
// to text, or nil when there is none. Only single words can be found.
func (l *Library) LocateTextCoordinates(img, text, config, lang any) (*ocr.Point, error) {
	tokens, target, err := l.tokens(img, text, config, lang)
	if err != nil {
		return nil, err
	}
	p, ok := ocr.LocateText(tokens, target)
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// LocateMultipleTextCoordinates returns the centres of every word equal to
// text in OCR scan order, or nil when there is none.
func (l *Library) LocateMultipleTextCoordinates(img, text, config, lang any) ([]ocr.Point, error) {
	tokens, target, err := l.tokens(img, text, config, lang)
	if err != nil {
		return nil, err
	}
	return ocr.LocateAllText(tokens, target), nil
}

// LocateTextBounds returns the bounding box of the first word equal to
// text, or nil when there is none.
func (l *Library) LocateTextBounds(img, text, config, lang any) (*ocr.Bounds, error) {
	tokens, target, err := l.tokens(img, text, config, lang)
	if err != nil {
		return nil, err
	}
	b, ok := ocr.LocateBounds(tokens, target)
	if !ok {
		return nil, nil
	}
	return &b, nil
}

// LocateMultipleTextBounds returns the bounding boxes of every word equal
// to text in OCR scan order, or nil when there is none.
func (l *Library) LocateMultipleTextBounds(img, text, config, lang any) ([]ocr.Bounds, error) {
	tokens, target, err := l.tokens(img, text, config, lang)
	if err != nil {
		return nil, err
	}
	return ocr.LocateAllBounds(tokens, target), nil
}

func (l *Library) tokens(img, text, config, lang any) ([]ocr.Token, string, error) {
	src, err := l.image(img)
	if err != nil {
		return nil, "", err
	}
	target, _ := stringArg(text)
	tokens, err := l.engine.Data(src.Pixels(), l.ocrOptions(config, lang))
	if err != nil {
		return nil, "", err
	}
	return tokens, target, nil
}
