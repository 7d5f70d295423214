package vision

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Decode loads an image file into a handle.
//
// Supported formats are those registered with the image package: PNG, JPEG,
// GIF, BMP, TIFF and WebP. EXIF orientation is not applied; the pixels are
// returned as stored. Grayscale files are promoted to three equal colour
// channels, so every decoded image is colour.
func Decode(path string) (*Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return NewImage(imaging.Clone(img)), nil
}

// Encode writes img to path. The format is chosen from the file extension.
func Encode(img *Image, path string) error {
	if err := imaging.Save(img.Pixels(), path); err != nil {
		return fmt.Errorf("failed to encode image %s: %w", path, err)
	}
	return nil
}

// CanDecode reports whether path names a readable file in a known image
// format. Only the header is read.
func CanDecode(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	_, _, err = image.DecodeConfig(f)
	return err == nil
}

// CanEncode reports whether Encode could write path: the extension must map
// to an encodable format and the parent directory must exist.
func CanEncode(path string) bool {
	if _, err := imaging.FormatFromFilename(path); err != nil {
		return false
	}
	info, err := os.Stat(filepath.Dir(path))
	return err == nil && info.IsDir()
}
