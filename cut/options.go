package cut

import "github.com/rs/zerolog"

// Options configures FurthestMinVertexCut's optional verbose tracing.
// The zero value is not safe to use directly; always start from
// DefaultOptions.
type Options struct {
	// Logger is forwarded to the underlying flow.Network's MaxFlow call.
	// Defaults to a disabled logger.
	Logger zerolog.Logger
}

// DefaultOptions returns an Options with tracing disabled.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger attaches a logger that receives the same per-augmenting-path
// events flow.WithLogger would; pass zerolog.Nop() (the default) to
// disable.
func WithLogger(log zerolog.Logger) func(*Options) {
	return func(o *Options) { o.Logger = log }
}
