// Package vision is the image-processing collaborator behind the keyword
// library.
//
// It provides the operations the keywords dispatch to: colour conversion,
// range masking, thresholding (including Otsu), morphology with OpenCV-style
// structuring elements, linear and median filters, and file decode/encode
// with feasibility probes. Decoding and encoding go through
// disintegration/imaging, linear filters through bild/convolution, the
// median filter through bild/effect and HSV conversion through go-colorful.
//
// # Channel Order
//
// Colour images follow the BGR convention: channel 0 is blue, 1 is green
// and 2 is red. ToHSV stores hue, saturation and value in channels 0, 1 and
// 2 with hue halved to fit 0-179. Grayscale images are *image.Gray and have
// one channel. Every operation returns a new image whose bounds start at
// (0,0); inputs are never modified.
//
// # Handles
//
// Image wraps a decoded buffer. Store maps handles to string IDs so they can
// be passed across the keyword server's JSON-RPC boundary.
//
// # Thread Safety
//
// Store is safe for concurrent use. All other functions are stateless.
package vision
