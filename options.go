package cubescramble

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/SeamusWaldron/cubescramble/internal/render"
)

// DefaultMaxScrambleLength is the longest scramble, in bytes, accepted by
// default.
const DefaultMaxScrambleLength = 4096

// Option configures puzzle behavior.
type Option func(*config)

type config struct {
	logger            logrus.FieldLogger
	strictDepth       bool
	maxScrambleLength int
	scheme            ColorScheme
	layout            Layout
}

func defaultConfig() *config {
	return &config{
		logger:            discardLogger(),
		strictDepth:       false,
		maxScrambleLength: DefaultMaxScrambleLength,
		layout:            render.DefaultLayout(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithLogger sets the logger used for debug output.
// By default nothing is logged.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStrictDepth makes moves whose depth reaches the opposite face an error.
// When disabled (default), such moves are silently skipped.
func WithStrictDepth(enabled bool) Option {
	return func(c *config) {
		c.strictDepth = enabled
	}
}

// WithMaxScrambleLength limits the scramble size in bytes.
// Zero or a negative value removes the limit.
func WithMaxScrambleLength(n int) Option {
	return func(c *config) {
		c.maxScrambleLength = n
	}
}

// WithColorScheme sets the face colours used by Draw. The scheme is used as
// given: a face missing from it is painted black.
func WithColorScheme(scheme ColorScheme) Option {
	return func(c *config) {
		c.scheme = scheme
	}
}

// WithLayout sets the facelet size and face gap used by Draw.
func WithLayout(layout Layout) Option {
	return func(c *config) {
		if layout.CubieSize > 0 {
			c.layout.CubieSize = layout.CubieSize
		}
		if layout.Gap >= 0 {
			c.layout.Gap = layout.Gap
		}
	}
}
