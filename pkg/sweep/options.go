package sweep

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures [Build].
type Option func(*options)

type options struct {
	pairs        []int
	logger       *log.Logger
	keepFrontier bool
}

func defaultOptions() options {
	return options{logger: log.NewWithOptions(io.Discard, log.Options{})}
}

// WithPairs routes only the given pairs (1-based). Terminals of the other
// pairs become ordinary cells. With no ids, every pair is routed.
func WithPairs(ids ...int) Option {
	return func(o *options) { o.pairs = append(o.pairs, ids...) }
}

// WithLogger sets the logger that receives per-level debug output.
// A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithKeepFrontier keeps every node's frontier state in the diagram after
// the sweep. By default a level's states are released as soon as all of its
// nodes are linked. Keep them for debugging or DOT output with frontier
// labels.
func WithKeepFrontier(keep bool) Option {
	return func(o *options) { o.keepFrontier = keep }
}
