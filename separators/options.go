package separators

import "github.com/rs/zerolog"

// Options configures ImportantSeparators' optional verbose tracing. The
// zero value is not safe to use directly; always start from
// DefaultOptions.
type Options struct {
	// Logger receives one debug-level event per branching step (the
	// boundary vertex chosen and the remaining budget k; both branches
	// are always explored) and is forwarded to cut.FurthestMinVertexCut
	// for per-flow tracing too. Defaults to a disabled logger.
	Logger zerolog.Logger
}

// DefaultOptions returns an Options with tracing disabled.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}

// WithLogger attaches a logger that receives one event per recursive
// branch decision; pass zerolog.Nop() (the default) to disable.
func WithLogger(log zerolog.Logger) func(*Options) {
	return func(o *Options) { o.Logger = log }
}
