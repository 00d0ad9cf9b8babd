package diagram

import (
	"errors"
	"fmt"

	"github.com/matzehuels/numberlink/pkg/frontier"
)

var (
	// ErrFrozen is the cause of the panic raised when [Diagram.SetChildren]
	// is called twice for the same node.
	ErrFrozen = errors.New("node children already set")

	// ErrInvalidHandle is the cause of panics raised for handles that do not
	// name an internal node of the diagram.
	ErrInvalidHandle = errors.New("invalid handle")

	// ErrLevelOrder is the cause of the panic raised when [Diagram.NewNode]
	// is asked for a level below the one currently being filled.
	ErrLevelOrder = errors.New("levels must be allocated in ascending order")
)

// Handle addresses a node of a [Diagram].
type Handle int32

const (
	// Reject is the sentinel reached by every infeasible assignment.
	Reject Handle = 0
	// Accept is the sentinel reached by every feasible assignment.
	Accept Handle = 1

	unset Handle = -1
)

// IsTerminal reports whether h is one of the two sentinels.
func (h Handle) IsTerminal() bool { return h == Reject || h == Accept }

func (h Handle) String() string {
	switch h {
	case Reject:
		return "reject"
	case Accept:
		return "accept"
	}
	return fmt.Sprintf("#%d", int32(h))
}

type node struct {
	level      int
	skip, take Handle
}

// Diagram is an arena of decision nodes. The zero value is not usable; call
// [New]. A Diagram is not safe for concurrent mutation.
type Diagram struct {
	nodes     []node
	frontiers []*frontier.State
	starts    []Handle // first handle of each level
	root      Handle
}

// New returns a diagram holding only the two sentinels. Its root is [Reject]
// until [Diagram.SetRoot] is called.
func New() *Diagram {
	return &Diagram{
		nodes: []node{
			Reject: {level: -1, skip: Reject, take: Reject},
			Accept: {level: -1, skip: Accept, take: Accept},
		},
		frontiers: make([]*frontier.State, 2),
		root:      Reject,
	}
}

// NewNode allocates an unlinked node on level with frontier state st. The
// diagram keeps st; callers must not modify it afterwards. Levels must be
// filled in non-decreasing order; skipped levels stay empty.
func (d *Diagram) NewNode(level int, st *frontier.State) Handle {
	top := len(d.starts) - 1
	if level < 0 || level < top {
		panic(fmt.Errorf("diagram: new node on level %d while filling %d: %w", level, top, ErrLevelOrder))
	}
	for len(d.starts) <= level {
		d.starts = append(d.starts, Handle(len(d.nodes)))
	}
	h := Handle(len(d.nodes))
	d.nodes = append(d.nodes, node{level: level, skip: unset, take: unset})
	d.frontiers = append(d.frontiers, st)
	return h
}

// SetChildren links h to its skip and take children. It panics if h is a
// sentinel, unknown, already linked, or if a child is not a valid handle.
func (d *Diagram) SetChildren(h, skip, take Handle) {
	d.mustInternal(h)
	n := &d.nodes[h]
	if n.skip != unset {
		panic(fmt.Errorf("diagram: node %v: %w", h, ErrFrozen))
	}
	for _, c := range [2]Handle{skip, take} {
		if c < 0 || int(c) >= len(d.nodes) {
			panic(fmt.Errorf("diagram: child %v of %v: %w", c, h, ErrInvalidHandle))
		}
	}
	n.skip, n.take = skip, take
}

func (d *Diagram) mustInternal(h Handle) {
	if h.IsTerminal() || h < 0 || int(h) >= len(d.nodes) {
		panic(fmt.Errorf("diagram: %v: %w", h, ErrInvalidHandle))
	}
}

func (d *Diagram) mustValid(h Handle) {
	if h < 0 || int(h) >= len(d.nodes) {
		panic(fmt.Errorf("diagram: %v: %w", h, ErrInvalidHandle))
	}
}

// SetRoot records the entry node of the diagram.
func (d *Diagram) SetRoot(h Handle) {
	d.mustValid(h)
	d.root = h
}

// Root returns the entry node of the diagram.
func (d *Diagram) Root() Handle { return d.root }

// Level returns the edge position decided by h, or -1 for a sentinel.
func (d *Diagram) Level(h Handle) int {
	d.mustValid(h)
	return d.nodes[h].level
}

// Skip returns the child followed when the edge of h is not selected.
func (d *Diagram) Skip(h Handle) Handle {
	d.mustInternal(h)
	return d.nodes[h].skip
}

// Take returns the child followed when the edge of h is selected.
func (d *Diagram) Take(h Handle) Handle {
	d.mustInternal(h)
	return d.nodes[h].take
}

// Linked reports whether the children of h have been set. Sentinels are
// always linked.
func (d *Diagram) Linked(h Handle) bool {
	d.mustValid(h)
	return d.nodes[h].skip != unset
}

// Frontier returns the frontier state h was created for, or nil for a
// sentinel or a node whose level was released.
func (d *Diagram) Frontier(h Handle) *frontier.State {
	d.mustValid(h)
	return d.frontiers[h]
}

// IsTerminal reports whether h is a sentinel.
func (d *Diagram) IsTerminal(h Handle) bool { return h.IsTerminal() }

// Len returns the number of handles, sentinels included.
func (d *Diagram) Len() int { return len(d.nodes) }

// Levels returns the number of levels that hold at least one allocated
// handle slot; trailing levels with no nodes are not counted.
func (d *Diagram) Levels() int { return len(d.starts) }

// LevelRange returns the half-open handle range [lo, hi) of level i.
func (d *Diagram) LevelRange(i int) (lo, hi Handle) {
	if i < 0 || i >= len(d.starts) {
		return 0, 0
	}
	lo = d.starts[i]
	hi = Handle(len(d.nodes))
	if i+1 < len(d.starts) {
		hi = d.starts[i+1]
	}
	return lo, hi
}

// ReleaseLevel drops the frontier states of level i. Builders call it once
// every node of the level is linked and the states are no longer needed.
func (d *Diagram) ReleaseLevel(i int) {
	lo, hi := d.LevelRange(i)
	clear(d.frontiers[lo:hi])
}
