package keyword

import (
	"fmt"
	"image"

	"github.com/ironsheep/ocr-keywords/internal/vision"
)

// shapeKernels maps each kernel shape selector to its structuring-element
// constructor.
var shapeKernels = map[vision.Shape]func(image.Point) *vision.Kernel{
	vision.ShapeRect:    vision.RectKernel,
	vision.ShapeEllipse: vision.EllipseKernel,
	vision.ShapeCross:   vision.CrossKernel,
}

// resolveKernel validates a shaped kernel size and a shape selector and
// builds the structuring element they describe.
func resolveKernel(size, shape any, oddOnly bool) (*vision.Kernel, error) {
	dims, err := ValidateKernelSize(size, oddOnly)
	if err != nil {
		return nil, err
	}
	sel, err := ValidateKernelShape(shape)
	if err != nil {
		return nil, err
	}
	build, ok := shapeKernels[sel]
	if !ok {
		return nil, fmt.Errorf("%w: no structuring element for %s", ErrInvalidKernelShape, sel)
	}
	return build(dims), nil
}
