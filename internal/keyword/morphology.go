package keyword

import (
	"image"

	"github.com/ironsheep/ocr-keywords/internal/vision"
)

// ApplyErosionToImage erodes img with the structuring element described by
// kernelSize and kernelShape, iteration times.
func (l *Library) ApplyErosionToImage(img, kernelSize, kernelShape, iteration any) (*vision.Image, error) {
	return l.morph(img, kernelSize, kernelShape, iteration, vision.Erode)
}

// ApplyDilationToImage dilates img.
func (l *Library) ApplyDilationToImage(img, kernelSize, kernelShape, iteration any) (*vision.Image, error) {
	return l.morph(img, kernelSize, kernelShape, iteration, vision.Dilate)
}

// ApplyOpeningToImage applies an erosion followed by a dilation.
func (l *Library) ApplyOpeningToImage(img, kernelSize, kernelShape, iteration any) (*vision.Image, error) {
	return l.morph(img, kernelSize, kernelShape, iteration, morphEx(vision.MorphOpen))
}

// ApplyClosingToImage applies a dilation followed by an erosion.
func (l *Library) ApplyClosingToImage(img, kernelSize, kernelShape, iteration any) (*vision.Image, error) {
	return l.morph(img, kernelSize, kernelShape, iteration, morphEx(vision.MorphClose))
}

// ApplyGradientToImage returns the difference between the dilation and the
// erosion of img, which outlines shapes.
func (l *Library) ApplyGradientToImage(img, kernelSize, kernelShape, iteration any) (*vision.Image, error) {
	return l.morph(img, kernelSize, kernelShape, iteration, morphEx(vision.MorphGradient))
}

// ApplyTopHatToImage returns the difference between img and its opening.
func (l *Library) ApplyTopHatToImage(img, kernelSize, kernelShape, iteration any) (*vision.Image, error) {
	return l.morph(img, kernelSize, kernelShape, iteration, morphEx(vision.MorphTopHat))
}

// ApplyBlackHatToImage returns the difference between the closing of img
// and img.
func (l *Library) ApplyBlackHatToImage(img, kernelSize, kernelShape, iteration any) (*vision.Image, error) {
	return l.morph(img, kernelSize, kernelShape, iteration, morphEx(vision.MorphBlackHat))
}

type morphFunc func(img image.Image, k *vision.Kernel, iterations int) image.Image

func morphEx(op vision.MorphOp) morphFunc {
	return func(img image.Image, k *vision.Kernel, iterations int) image.Image {
		return vision.MorphologyEx(img, op, k, iterations)
	}
}

func (l *Library) morph(img, kernelSize, kernelShape, iteration any, apply morphFunc) (*vision.Image, error) {
	src, err := l.image(img)
	if err != nil {
		return nil, err
	}
	k, err := resolveKernel(kernelSize, kernelShape, false)
	if err != nil {
		return nil, err
	}
	n, err := ValidateIteration(iteration)
	if err != nil {
		return nil, err
	}
	return vision.NewImage(apply(src.Pixels(), k, n)), nil
}
