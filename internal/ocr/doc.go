// Package ocr provides Optical Character Recognition (OCR) for the keyword
// library using Tesseract.
//
// This package wraps the Tesseract OCR engine (via gosseract/v2) behind the
// Engine interface, so keywords can be tested against a fake engine. It
// also parses tesseract-style option strings and locates words in
// word-level results.
//
// # Prerequisites
//
// Tesseract must be installed on the system:
//   - Ubuntu/Debian: apt-get install tesseract-ocr libtesseract-dev
//   - macOS: brew install tesseract
//
// Language data files are required for each language:
//   - Ubuntu/Debian: apt-get install tesseract-ocr-eng (for English)
//   - Other languages: tesseract-ocr-<lang> packages
//
// # Options
//
// Keywords take a config string in tesseract command-line form, by default
// "--psm 6", and a language code, by default "eng". ParseConfig documents
// the accepted options. The OCR engine mode (--oem) is accepted but not
// applied because gosseract always initialises Tesseract with its default
// engine mode.
//
// # Locating Text
//
// LocateText, LocateAllText, LocateBounds and LocateAllBounds scan tokens
// in the order the engine produced them and compare the token text exactly.
// Results are never re-sorted, so repeated words come back in Tesseract's
// layout order.
package ocr
