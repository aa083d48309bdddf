package strata

import (
	"github.com/sirupsen/logrus"

	"github.com/tsawler/strata/layout"
)

// documentOptions holds the configuration a Document is built with.
type documentOptions struct {
	config        layout.Config
	debugBasename string
	logLevel      logrus.Level
}

// defaultDocumentOptions returns the default document configuration.
func defaultDocumentOptions() documentOptions {
	return documentOptions{
		config:   layout.DefaultConfig(),
		logLevel: logrus.WarnLevel,
	}
}

// Option configures a Document at construction time.
type Option func(*documentOptions)

// WithConfig replaces the default segmentation configuration.
func WithConfig(config layout.Config) Option {
	return func(o *documentOptions) {
		o.config = config
	}
}

// WithDebugImages enables per-stage debug images from the start, as if
// EnableDebug had been called with the given basename.
func WithDebugImages(basename string) Option {
	return func(o *documentOptions) {
		o.debugBasename = basename
	}
}

// WithLogLevel sets the logging level of the library's loggers.
func WithLogLevel(level logrus.Level) Option {
	return func(o *documentOptions) {
		o.logLevel = level
	}
}
