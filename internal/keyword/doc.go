// Package keyword implements the image-processing and OCR keywords exposed
// to the test runner.
//
// Every keyword follows the same shape: validate the loosely-typed
// arguments, build a structuring element when the operation needs one,
// make exactly one call into the vision or ocr package and return its
// result. Keywords never modify their input image.
//
// # Arguments
//
// Arguments arrive as the runner sends them, so the validators accept Go
// numbers, numeric strings and lists in any slice form. The first invalid
// argument fails the keyword with an error wrapping one of the Err* kinds;
// KindOf maps an error to the kind name reported to the runner.
//
// # Discovery
//
// Library.KeywordNames, Library.Keyword and Library.Run expose the keyword
// table by runner-facing name ("Apply Erosion To Image"). Run binds
// positional and named arguments against the table and fills defaults.
package keyword
