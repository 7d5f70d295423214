package keyword

import (
	"github.com/ironsheep/ocr-keywords/internal/vision"
)

// ThresholdResult is the outcome of a threshold keyword. When Automatic is
// set the threshold was chosen by Otsu's method and the runner receives
// [Threshold, Image]; otherwise it receives the image alone.
type ThresholdResult struct {
	Threshold float64
	Image     *vision.Image
	Automatic bool
}

// GetBinaryImage converts img to grayscale and thresholds it to a binary
// image: pixels above the threshold become maxThreshold and the rest 0, or
// the reverse when inverse is set. With applyOtsu the threshold argument is
// validated but ignored.
func (l *Library) GetBinaryImage(img any, applyOtsu, inverse bool, maxThreshold, threshold any) (*ThresholdResult, error) {
	typ := vision.ThresholdBinary
	if inverse {
		typ = vision.ThresholdBinaryInv
	}
	return l.threshold(img, applyOtsu, typ, maxThreshold, threshold)
}

// GetToZeroImage converts img to grayscale and zeroes the pixels at or
// below the threshold, keeping the rest. With inverse the pixels above the
// threshold are zeroed instead.
func (l *Library) GetToZeroImage(img any, applyOtsu, inverse bool, maxThreshold, threshold any) (*ThresholdResult, error) {
	typ := vision.ThresholdToZero
	if inverse {
		typ = vision.ThresholdToZeroInv
	}
	return l.threshold(img, applyOtsu, typ, maxThreshold, threshold)
}

// GetTruncImage converts img to grayscale and clips pixels above the
// threshold to the threshold.
func (l *Library) GetTruncImage(img any, applyOtsu bool, maxThreshold, threshold any) (*ThresholdResult, error) {
	return l.threshold(img, applyOtsu, vision.ThresholdTrunc, maxThreshold, threshold)
}

func (l *Library) threshold(img any, otsu bool, typ vision.ThresholdType, maxThreshold, threshold any) (*ThresholdResult, error) {
	src, err := l.image(img)
	if err != nil {
		return nil, err
	}
	t, max, err := ValidateThresholdPair(threshold, maxThreshold)
	if err != nil {
		return nil, err
	}

	if otsu {
		t, out := vision.ThresholdOtsu(src.Pixels(), max, typ)
		return &ThresholdResult{Threshold: t, Image: vision.NewImage(out), Automatic: true}, nil
	}
	out := vision.Threshold(src.Pixels(), t, max, typ)
	return &ThresholdResult{Threshold: t, Image: vision.NewImage(out)}, nil
}
