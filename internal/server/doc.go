// Package server exposes the OCR keyword library to a test runner over
// JSON-RPC 2.0 on stdio.
//
// # Protocol
//
// Requests arrive one per line on stdin and each gets one response line on
// stdout. Log output goes to stderr.
//
// Supported methods:
//   - initialize: Server name, version and protocol version
//   - ping: Health check
//   - get_keyword_names: All keyword names in registration order
//   - get_keyword_arguments: Argument list of one keyword, e.g.
//     ["processed_img", "kernel_size", "kernel_type=0", "iteration=1"]
//   - get_keyword_documentation: Documentation of one keyword
//   - run_keyword: Run a keyword with positional args and named kwargs
//   - release_image: Drop an image handle from the store
//
// # Image Handles
//
// Keywords that produce images return a handle ID such as
// "img-6f1c...". Pass the ID as the image argument of the next keyword.
// Handles stay valid until released or until the process exits.
//
// # Errors
//
// A failing keyword is reported in the run_keyword result with status FAIL,
// the error message and its kind (InvalidKernelSize, InvalidPath, ...).
// JSON-RPC errors are reserved for protocol problems:
//   - -32601: Unknown method
//   - -32602: Invalid params
//   - -32000: Unknown keyword
package server
