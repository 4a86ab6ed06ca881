package annotate

import (
	"go.uber.org/zap"

	"jsonplus/diagnostic"
)

// Option configures how New builds a tree.
type Option func(*config)

type config struct {
	strict      bool
	expandLists bool
	logger      *zap.Logger
	diags       *diagnostic.Diagnostics
}

func newConfig(opts []Option) *config {
	c := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithStrict makes fields of an unsupported kind fail with
// *UnsupportedKindError instead of being skipped.
func WithStrict() Option {
	return func(c *config) { c.strict = true }
}

// WithListExpansion keeps one leaf per list element. Without it, elements of
// a non-empty list overwrite each other and only the last one is kept.
func WithListExpansion() Option {
	return func(c *config) { c.expandLists = true }
}

// WithLogger sets the logger used for debug output about skipped and
// collapsed fields. A nil logger is ignored.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithDiagnostics records skipped and collapsed fields into d.
func WithDiagnostics(d *diagnostic.Diagnostics) Option {
	return func(c *config) { c.diags = d }
}
