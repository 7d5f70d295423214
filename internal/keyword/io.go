package keyword

import (
	"fmt"
	"html"
	"path/filepath"

	"github.com/ironsheep/ocr-keywords/internal/vision"
)

// ReadImage decodes the image file at path.
func (l *Library) ReadImage(path any) (*vision.Image, error) {
	p, err := ValidatePathReadable(path)
	if err != nil {
		return nil, err
	}
	return vision.Decode(p)
}

// GetGrayScaleImage decodes the image file at path and converts it to
// grayscale.
func (l *Library) GetGrayScaleImage(path any) (*vision.Image, error) {
	p, err := ValidatePathReadable(path)
	if err != nil {
		return nil, err
	}
	img, err := vision.Decode(p)
	if err != nil {
		return nil, err
	}
	return vision.NewImage(vision.Gray(img.Pixels())), nil
}

// SaveImage writes img to path, choosing the format from the extension.
// With a nil path the image is written to the output directory as
// ocrlibrary-saved-image-N.png, N counting up from 1 for each such save.
// Either way a preview link is reported to the runner's log.
func (l *Library) SaveImage(img, path any) (bool, error) {
	src, err := l.image(img)
	if err != nil {
		return false, err
	}

	var p string
	if path == nil {
		n := l.saved.Add(1)
		p = filepath.Join(l.outputDir, fmt.Sprintf("ocrlibrary-saved-image-%d.png", n))
	} else if p, err = ValidatePathWritable(path); err != nil {
		return false, err
	}

	href := html.EscapeString(p)
	l.report(fmt.Sprintf(`<a href="%s"><img src="%s" width="800px"></a>`, href, href))

	if err := vision.Encode(src, p); err != nil {
		return false, err
	}
	return true, nil
}
