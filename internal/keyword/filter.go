package keyword

import (
	"github.com/ironsheep/ocr-keywords/internal/vision"
)

// ApplyFilter2DToImage correlates img with the unnormalised structuring
// element described by kernelSize and kernelShape. depth must be negative,
// meaning the output keeps the source depth.
func (l *Library) ApplyFilter2DToImage(img, kernelSize, kernelShape, depth any) (*vision.Image, error) {
	src, err := l.image(img)
	if err != nil {
		return nil, err
	}
	k, err := resolveKernel(kernelSize, kernelShape, false)
	if err != nil {
		return nil, err
	}
	if _, err := ValidateDepth(depth); err != nil {
		return nil, err
	}
	return vision.NewImage(vision.Filter2D(src.Pixels(), k)), nil
}

// ApplyMedianFilteringToImage replaces each pixel with the median of its
// kernelSize x kernelSize neighbourhood. kernelSize is a single odd integer.
func (l *Library) ApplyMedianFilteringToImage(img, kernelSize any) (*vision.Image, error) {
	src, err := l.image(img)
	if err != nil {
		return nil, err
	}
	n, err := ValidateKernelScalar(kernelSize)
	if err != nil {
		return nil, err
	}
	return vision.NewImage(vision.Median(src.Pixels(), n)), nil
}

// ApplyAveragingBlurToImage blurs img with a normalised box filter.
func (l *Library) ApplyAveragingBlurToImage(img, kernelSize any) (*vision.Image, error) {
	src, err := l.image(img)
	if err != nil {
		return nil, err
	}
	size, err := ValidateKernelSize(kernelSize, false)
	if err != nil {
		return nil, err
	}
	return vision.NewImage(vision.Blur(src.Pixels(), size)), nil
}

// ApplyGaussianBlurToImage blurs img with a Gaussian kernel. Both kernel
// dimensions must be odd; sigma is derived from the size.
func (l *Library) ApplyGaussianBlurToImage(img, kernelSize any) (*vision.Image, error) {
	src, err := l.image(img)
	if err != nil {
		return nil, err
	}
	size, err := ValidateKernelSize(kernelSize, true)
	if err != nil {
		return nil, err
	}
	return vision.NewImage(vision.GaussianBlur(src.Pixels(), size)), nil
}
