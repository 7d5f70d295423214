package keyword

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/ironsheep/ocr-keywords/internal/ocr"
	"github.com/ironsheep/ocr-keywords/internal/vision"
)

// DefaultOCROptions are the config string and language keywords use when
// the caller gives none.
var DefaultOCROptions = ocr.Options{Config: "--psm 6", Language: "eng"}

// Library holds the state shared by the keywords: the image handle store,
// the OCR engine and the auto-save counter.
//
// A Library is safe for concurrent use as long as its reporter is.
type Library struct {
	store     *vision.Store
	engine    ocr.Engine
	outputDir string
	ocrOpts   ocr.Options
	log       logrus.FieldLogger
	report    func(html string)

	// saved numbers images written by SaveImage without a path.
	saved atomic.Int64

	order    []*Keyword
	keywords map[string]*Keyword
}

// Option configures a Library.
type Option func(*Library)

// WithOutputDir sets the directory SaveImage writes to when no path is
// given. The default is the working directory.
func WithOutputDir(dir string) Option {
	return func(l *Library) { l.outputDir = dir }
}

// WithOCRDefaults overrides DefaultOCROptions. Empty fields keep the
// built-in default.
func WithOCRDefaults(opts ocr.Options) Option {
	return func(l *Library) {
		if opts.Config != "" {
			l.ocrOpts.Config = opts.Config
		}
		if opts.Language != "" {
			l.ocrOpts.Language = opts.Language
		}
	}
}

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(l *Library) { l.log = log }
}

// WithReporter sets the function receiving HTML lines meant for the
// runner's log, such as the preview link written by SaveImage.
func WithReporter(fn func(html string)) Option {
	return func(l *Library) { l.report = fn }
}

// New creates a keyword library over store and engine.
func New(store *vision.Store, engine ocr.Engine, opts ...Option) *Library {
	l := &Library{
		store:     store,
		engine:    engine,
		outputDir: ".",
		ocrOpts:   DefaultOCROptions,
		log:       logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.report == nil {
		l.report = func(html string) {
			l.log.WithField("html", true).Info(html)
		}
	}
	l.order = l.registry()
	l.keywords = index(l.order)
	return l
}

// Store returns the handle store the library resolves image IDs against.
func (l *Library) Store() *vision.Store {
	return l.store
}

// image resolves an image argument against the library's store.
func (l *Library) image(v any) (*vision.Image, error) {
	return ValidateImage(v, l.store)
}

// ocrOptions fills in the library defaults for nil config or language.
func (l *Library) ocrOptions(config, lang any) ocr.Options {
	opts := l.ocrOpts
	if s, ok := stringArg(config); ok {
		opts.Config = s
	}
	if s, ok := stringArg(lang); ok {
		opts.Language = s
	}
	return opts
}
