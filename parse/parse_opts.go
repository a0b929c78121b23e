package parse

import (
	"log/slog"
	"os"

	"github.com/sl-format/sl/debug"
)

// DefaultMaxDepth bounds nesting when no WithMaxDepth option is given.
const DefaultMaxDepth = 64

type parseOpts struct {
	maxDepth int
	log      *slog.Logger
}

func defaultOpts() *parseOpts {
	o := &parseOpts{maxDepth: DefaultMaxDepth}
	if debug.Parse() {
		o.log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	} else {
		o.log = slog.New(slog.DiscardHandler)
	}
	return o
}

type ParseOption func(*parseOpts)

// WithMaxDepth sets the deepest nesting accepted, both of grouping brackets
// and of tree nodes.  Values below 1 select DefaultMaxDepth.
func WithMaxDepth(n int) ParseOption {
	return func(o *parseOpts) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		o.maxDepth = n
	}
}

// WithLogger traces each split at debug level on l.
func WithLogger(l *slog.Logger) ParseOption {
	return func(o *parseOpts) {
		if l != nil {
			o.log = l
		}
	}
}
