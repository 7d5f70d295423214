package keyword

import "errors"

// Error kinds reported by the keywords. Concrete errors wrap one of these,
// so callers match with errors.Is.
var (
	ErrInvalidImage        = errors.New("invalid image")
	ErrInvalidKernelSize   = errors.New("invalid kernel size")
	ErrInvalidKernelShape  = errors.New("invalid kernel shape")
	ErrInvalidIteration    = errors.New("invalid iteration")
	ErrInvalidColourBounds = errors.New("invalid colour bounds")
	ErrInvalidThreshold    = errors.New("invalid threshold")
	ErrInvalidDepth        = errors.New("invalid depth")
	ErrInvalidPath         = errors.New("invalid path")
	ErrContentNotFound     = errors.New("content not found")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidImage, "InvalidImage"},
	{ErrInvalidKernelSize, "InvalidKernelSize"},
	{ErrInvalidKernelShape, "InvalidKernelShape"},
	{ErrInvalidIteration, "InvalidIteration"},
	{ErrInvalidColourBounds, "InvalidColourBounds"},
	{ErrInvalidThreshold, "InvalidThreshold"},
	{ErrInvalidDepth, "InvalidDepth"},
	{ErrInvalidPath, "InvalidPath"},
	{ErrContentNotFound, "ContentNotFound"},
}

// KindOf returns the error kind name reported to the runner: one of the
// names above for keyword errors, "Error" for anything else and "" for nil.
func KindOf(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "Error"
}

// ErrUnknownKeyword is returned by Run for a name no keyword answers to.
// It is a dispatch error rather than a keyword failure, so KindOf reports
// it as "Error".
var ErrUnknownKeyword = errors.New("unknown keyword")
