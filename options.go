package gridmap

import "github.com/rs/zerolog"

// Options holds configuration for a Registry and the translators it
// creates.
type Options struct {
	rowCount int
	colCount int
	logger   zerolog.Logger
}

func defaultOptions() *Options {
	return &Options{
		logger: zerolog.Nop(),
	}
}

// Option configures a Registry.
type Option func(*Options)

// WithAxisCounts sets the initial physical row and column counts for
// translators created by the registry (default: 0, grown by the host).
func WithAxisCounts(rows, cols int) Option {
	return func(o *Options) {
		o.rowCount = rows
		o.colCount = cols
	}
}

// WithLogger sets the logger used for registry lifecycle events
// (default: no-op).
func WithLogger(logger zerolog.Logger) Option {
	return func(o *Options) { o.logger = logger }
}
