// Package pipeline runs the solve pipeline shared by the CLI commands.
//
// A solve has three steps:
//
//  1. Order: arrange the board's edges with the selected [ordering.Orderer]
//  2. Sweep: build the decision diagram with [sweep.Build]
//  3. Summarize: count the routings and materialize the first few
//     ([boardio.Summary])
//
// [Runner] adds caching on top: summaries are stored under a key derived
// from the board and the options, so solving the same puzzle twice only
// sweeps once. Commands that need the diagram itself (dot, browse) call
// [Build] directly, since diagrams are never cached.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	summary, hit, err := runner.SolveWithCacheInfo(ctx, board, pipeline.Options{
//	    Ordering: "diagonal",
//	    Limit:    10,
//	})
package pipeline

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/numberlink/pkg/cache"
	"github.com/matzehuels/numberlink/pkg/diagram"
	nlerrors "github.com/matzehuels/numberlink/pkg/errors"
	"github.com/matzehuels/numberlink/pkg/grid"
	"github.com/matzehuels/numberlink/pkg/ordering"
	"github.com/matzehuels/numberlink/pkg/sweep"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultOrdering is the edge orderer used when none is given.
	DefaultOrdering = ordering.DefaultName

	// DefaultLimit is the number of solutions kept in a summary.
	DefaultLimit = 10
)

// Format constants for diagram output.
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ValidFormats lists the supported diagram output formats.
var ValidFormats = []string{FormatDOT, FormatSVG}

// =============================================================================
// Options
// =============================================================================

// Options configures a solve.
type Options struct {
	Pairs        []int  `json:"pairs,omitempty"`    // routed pairs, nil for all
	Ordering     string `json:"ordering,omitempty"` // orderer name
	Limit        int    `json:"limit,omitempty"`    // solutions to keep; 0 keeps all
	Refresh      bool   `json:"refresh,omitempty"`  // ignore cached summaries
	KeepFrontier bool   `json:"-"`                  // keep states for DOT labels

	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// ValidateFormat checks that a diagram output format is valid.
func ValidateFormat(format string) error {
	return nlerrors.ValidateChoice(nlerrors.ErrCodeUnsupported, "format", format, ValidFormats)
}

// ValidateOrdering checks that an orderer name is valid.
func ValidateOrdering(name string) error {
	return nlerrors.ValidateChoice(nlerrors.ErrCodeInvalidOrdering, "ordering", name, ordering.Names)
}

// ValidateAndSetDefaults checks the options and fills in defaults.
// Calling it more than once has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Ordering == "" {
		o.Ordering = DefaultOrdering
	}
	if err := ValidateOrdering(o.Ordering); err != nil {
		return err
	}
	if o.Limit < 0 {
		return nlerrors.New(nlerrors.ErrCodeInvalidInput, "limit must not be negative, got %d", o.Limit)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// SummaryKeyOpts returns the cache key options of a solve.
func (o *Options) SummaryKeyOpts() cache.SummaryKeyOpts {
	return cache.SummaryKeyOpts{
		Pairs:    o.Pairs,
		Ordering: o.Ordering,
		Limit:    o.Limit,
	}
}

// =============================================================================
// Stages
// =============================================================================

// Order arranges the edges of b with the orderer named in opts.
func Order(b *grid.Board, opts Options) (*ordering.Order, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	o, err := ordering.ByName(opts.Ordering)
	if err != nil {
		return nil, nlerrors.Wrap(nlerrors.ErrCodeInvalidOrdering, err, "ordering")
	}
	ord, err := ordering.New(b, o)
	if err != nil {
		return nil, nlerrors.Wrap(nlerrors.ErrCodeInternal, err, "order edges")
	}
	return ord, nil
}

// Build orders the edges of b and sweeps them into a decision diagram.
func Build(ctx context.Context, b *grid.Board, opts Options) (*sweep.Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	ord, err := Order(b, opts)
	if err != nil {
		return nil, err
	}
	res, err := sweep.Build(ctx, b, ord,
		sweep.WithPairs(opts.Pairs...),
		sweep.WithLogger(opts.Logger),
		sweep.WithKeepFrontier(opts.KeepFrontier),
	)
	switch {
	case err == nil:
		return res, nil
	case errors.Is(err, sweep.ErrUnknownPair):
		return nil, nlerrors.Wrap(nlerrors.ErrCodeInvalidPairs, err, "sweep")
	case errors.Is(err, sweep.ErrOrderMismatch):
		return nil, nlerrors.Wrap(nlerrors.ErrCodeInternal, err, "sweep")
	}
	return nil, err
}

// RenderOptions configures [Render].
type RenderOptions struct {
	Format     string // FormatDOT or FormatSVG
	Frontier   bool   // show frontier states; needs Options.KeepFrontier
	HideReject bool   // drop the Reject sentinel
}

// Render draws the diagram of res. Nodes are labelled with the board edge
// they decide.
func Render(res *sweep.Result, opts RenderOptions) ([]byte, error) {
	if err := ValidateFormat(opts.Format); err != nil {
		return nil, err
	}
	dot := diagram.ToDOT(res.Diagram, diagram.DOTOptions{
		EdgeLabel: func(pos int) string {
			return res.Board.Edge(res.Order.EdgeAt(pos)).String()
		},
		Frontier:   opts.Frontier,
		HideReject: opts.HideReject,
	})
	if opts.Format == FormatDOT {
		return []byte(dot), nil
	}
	svg, err := diagram.RenderSVG(dot)
	if err != nil {
		return nil, nlerrors.Wrap(nlerrors.ErrCodeInternal, err, "render svg")
	}
	return svg, nil
}
