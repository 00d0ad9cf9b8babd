package sweep

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/matzehuels/numberlink/pkg/diagram"
	"github.com/matzehuels/numberlink/pkg/frontier"
	"github.com/matzehuels/numberlink/pkg/grid"
	"github.com/matzehuels/numberlink/pkg/observability"
	"github.com/matzehuels/numberlink/pkg/ordering"
)

var (
	// ErrUnknownPair is returned by [Build] when [WithPairs] names a pair
	// the board does not have.
	ErrUnknownPair = errors.New("unknown pair")

	// ErrOrderMismatch is returned by [Build] when the order does not cover
	// the board's edges.
	ErrOrderMismatch = errors.New("edge order does not match board")
)

// Stats summarizes a sweep.
type Stats struct {
	Levels        int           // edge positions processed
	Nodes         int           // internal diagram nodes
	MaxLevelWidth int           // largest number of nodes on one level
	Merged        int           // children found in a level table
	Pruned        int           // branches sent to Reject
	Duration      time.Duration // wall time of the sweep
}

// Result is the outcome of [Build].
type Result struct {
	Diagram *diagram.Diagram
	Board   *grid.Board
	Order   *ordering.Order
	Pairs   []int // routed pair numbers, ascending
	Stats   Stats
}

// Build sweeps the edges of b in the order o and returns the decision
// diagram of every feasible routing of the selected pairs.
//
// Each root-to-Accept path of the diagram corresponds to exactly one edge
// set in which every routed pair is joined by a simple path, paths do not
// touch, and every other cell is either unused or passed straight through.
// The set is the positions at which the path takes the take branch.
func Build(ctx context.Context, b *grid.Board, o *ordering.Order, opts ...Option) (*Result, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if o.Len() != b.EdgeCount() {
		return nil, fmt.Errorf("%w: %d positions, %d edges", ErrOrderMismatch, o.Len(), b.EdgeCount())
	}
	pairs, err := selectPairs(b, cfg.pairs)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	hooks := observability.Sweep()
	hooks.OnSweepStart(ctx, o.Len(), len(pairs))

	res, err := run(ctx, b, o, pairs, cfg)
	d := time.Since(start)
	nodes := 0
	if res != nil {
		res.Stats.Duration = d
		nodes = res.Stats.Nodes
	}
	hooks.OnSweepComplete(ctx, nodes, d, err)
	if err != nil {
		return nil, err
	}
	cfg.logger.Debug("sweep complete",
		"levels", res.Stats.Levels,
		"nodes", res.Stats.Nodes,
		"max_width", res.Stats.MaxLevelWidth,
		"merged", res.Stats.Merged,
		"pruned", res.Stats.Pruned,
		"elapsed", d.Round(time.Millisecond))
	return res, nil
}

func selectPairs(b *grid.Board, ids []int) ([]int, error) {
	if len(ids) == 0 {
		all := make([]int, b.PairCount())
		for i := range all {
			all[i] = i + 1
		}
		return all, nil
	}
	out := slices.Clone(ids)
	slices.Sort(out)
	out = slices.Compact(out)
	for _, k := range out {
		if k < 1 || k > b.PairCount() {
			return nil, fmt.Errorf("%w: %d (board has %d)", ErrUnknownPair, k, b.PairCount())
		}
	}
	return out, nil
}

func run(ctx context.Context, b *grid.Board, o *ordering.Order, pairs []int, cfg options) (*Result, error) {
	r := &rules{board: b, order: o, routed: make([]bool, b.PairCount()+1)}
	for _, k := range pairs {
		r.routed[k] = true
	}

	d := diagram.New()
	res := &Result{Diagram: d, Board: b, Order: o, Pairs: pairs}
	stats := &res.Stats
	hooks := observability.Sweep()

	d.SetRoot(d.NewNode(0, frontier.New(b.NodeCount())))
	last := o.Len() - 1

	for pos := 0; pos <= last; pos++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lo, hi := d.LevelRange(pos)
		if lo == hi {
			break
		}
		stats.Levels++
		stats.MaxLevelWidth = max(stats.MaxLevelWidth, int(hi-lo))

		next := make(map[uint64][]diagram.Handle)
		merged := 0
		child := func(s *frontier.State) diagram.Handle {
			if s == nil {
				stats.Pruned++
				return diagram.Reject
			}
			if pos == last {
				if s.Len() != 0 {
					panic(fmt.Sprintf("sweep: %d frontier entries left after the last edge", s.Len()))
				}
				return diagram.Accept
			}
			h, found := intern(d, next, pos+1, s)
			if found {
				merged++
			}
			return h
		}

		for h := lo; h < hi; h++ {
			s := d.Frontier(h)
			skip := child(r.skip(s, pos))
			take := child(r.take(s, pos))
			d.SetChildren(h, skip, take)
		}
		stats.Merged += merged
		if !cfg.keepFrontier {
			d.ReleaseLevel(pos)
		}

		hooks.OnLevelComplete(ctx, pos, int(hi-lo), merged)
		nlo, nhi := d.LevelRange(pos + 1)
		cfg.logger.Debug("level",
			"pos", pos,
			"edge", b.Edge(o.EdgeAt(pos)),
			"live", hi-lo,
			"next", nhi-nlo,
			"merged", merged)
	}

	stats.Nodes = d.Len() - 2
	return res, nil
}

// intern returns the level node for state s, allocating it if no node with
// the same signature exists yet. found reports whether an existing node was
// reused.
func intern(d *diagram.Diagram, table map[uint64][]diagram.Handle, level int, s *frontier.State) (h diagram.Handle, found bool) {
	key := s.Canonicalize()
	for _, cand := range table[key] {
		if d.Frontier(cand).Equal(s) {
			return cand, true
		}
	}
	h = d.NewNode(level, s)
	table[key] = append(table[key], h)
	return h, false
}
