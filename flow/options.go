package flow

import "github.com/rs/zerolog"

// Options configures MaxFlow's optional verbose tracing. The zero value
// is not safe to use directly (its Logger is the zero zerolog.Logger,
// which would panic on Write); always start from DefaultOptions.
type Options struct {
	// Logger receives one debug-level event per augmenting path found.
	// Defaults to a disabled logger, so tracing costs nothing unless a
	// caller opts in.
	Logger zerolog.Logger
}

// DefaultOptions returns an Options with tracing disabled.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger attaches a logger that receives one event per augmenting
// path MaxFlow pushes; pass zerolog.Nop() (the default) to disable.
func WithLogger(log zerolog.Logger) func(*Options) {
	return func(o *Options) { o.Logger = log }
}
