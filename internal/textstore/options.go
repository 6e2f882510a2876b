package textstore

import (
	"io"
	"log/slog"

	"github.com/mesh-intelligence/yada/pkg/types"
)

// Option configures a Catalog or LogManager.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger that receives load diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// reportSkipped logs a line that was skipped during a load.
func reportSkipped(logger *slog.Logger, perr *types.ParseError) {
	logger.Warn("skipping line",
		"file", perr.File,
		"line", perr.Line,
		"text", perr.Text,
		"err", perr.Err,
	)
}

// Logger returns the logger that opts select.
func Logger(opts ...Option) *slog.Logger {
	return buildOptions(opts).logger
}
