package keyword

import (
	"github.com/ironsheep/ocr-keywords/internal/vision"
)

// ConvertImageToGrayScale converts img to a single-channel image.
func (l *Library) ConvertImageToGrayScale(img any) (*vision.Image, error) {
	src, err := l.image(img)
	if err != nil {
		return nil, err
	}
	return vision.NewImage(vision.Gray(src.Pixels())), nil
}

// ConvertImageToHSV converts a BGR image to HSV. Hue is stored halved
// (0-179) so that every channel fits in 8 bits.
func (l *Library) ConvertImageToHSV(img any) (*vision.Image, error) {
	src, err := l.image(img)
	if err != nil {
		return nil, err
	}
	return vision.NewImage(vision.ToHSV(src.Pixels())), nil
}

// MaskColour blacks out every pixel outside [lower, upper]. Bounds are
// compared channel by channel, so they are BGR triples for a BGR image and
// HSV triples for an image from ConvertImageToHSV.
func (l *Library) MaskColour(img, lower, upper any) (*vision.Image, error) {
	return l.mask(img, lower, upper)
}

// MaskColours blacks out every pixel outside both ranges.
func (l *Library) MaskColours(img, lower1, upper1, lower2, upper2 any) (*vision.Image, error) {
	return l.mask(img, lower1, upper1, lower2, upper2)
}

// mask takes bounds as lower/upper pairs.
func (l *Library) mask(img any, bounds ...any) (*vision.Image, error) {
	src, err := l.image(img)
	if err != nil {
		return nil, err
	}
	triples, err := ValidateColourBounds(bounds...)
	if err != nil {
		return nil, err
	}
	ranges := make([]vision.Range, 0, len(triples)/2)
	for i := 0; i+1 < len(triples); i += 2 {
		ranges = append(ranges, vision.Range{Lower: triples[i], Upper: triples[i+1]})
	}
	return vision.NewImage(vision.Mask(src.Pixels(), ranges...)), nil
}
