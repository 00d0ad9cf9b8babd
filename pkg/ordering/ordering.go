package ordering

import (
	"fmt"
	"slices"

	"github.com/matzehuels/numberlink/pkg/grid"
)

// Orderer produces a total order over the edges of a board.
// OrderEdges returns every edge id exactly once; position i of the result is
// the i-th edge of the sweep.
type Orderer interface {
	OrderEdges(b *grid.Board) []int
}

// Orderer names accepted by [ByName].
const (
	NameDiagonal = "diagonal"
	NameRowMajor = "rowmajor"
)

// DefaultName is the orderer used when none is requested.
const DefaultName = NameDiagonal

// Names lists the registered orderer names in display order.
var Names = []string{NameDiagonal, NameRowMajor}

// ByName returns the orderer registered under name. An empty name selects
// [DefaultName].
func ByName(name string) (Orderer, error) {
	switch name {
	case "", NameDiagonal:
		return Diagonal{}, nil
	case NameRowMajor:
		return RowMajor{}, nil
	}
	return nil, fmt.Errorf("unknown ordering %q (valid: %v)", name, Names)
}

// Diagonal sweeps anti-diagonals d = x+y from the top-left corner. Every edge
// joins diagonal d to diagonal d+1 and is emitted while diagonal d is swept.
// Even diagonals are walked with increasing x, emitting each cell's down edge
// before its right edge; odd diagonals are walked back with decreasing x,
// right edge before down edge. Consecutive cells of a diagonal share a
// neighbor on the next diagonal, so a node entering the frontier is usually
// completed by the very next edge.
type Diagonal struct{}

// OrderEdges implements [Orderer].
func (Diagonal) OrderEdges(b *grid.Board) []int {
	w, h := b.Width(), b.Height()
	out := make([]int, 0, b.EdgeCount())
	for d := 0; d <= w+h-2; d++ {
		lo, hi := max(0, d-h+1), min(d, w-1)
		if d%2 == 0 {
			for x := lo; x <= hi; x++ {
				out = appendCell(out, b.NodeAt(x, d-x), grid.Down, grid.Right)
			}
		} else {
			for x := hi; x >= lo; x-- {
				out = appendCell(out, b.NodeAt(x, d-x), grid.Right, grid.Down)
			}
		}
	}
	return out
}

// RowMajor emits, for each cell in row-major order, its right edge then its
// down edge. This reproduces the board's own edge numbering.
type RowMajor struct{}

// OrderEdges implements [Orderer].
func (RowMajor) OrderEdges(b *grid.Board) []int {
	out := make([]int, 0, b.EdgeCount())
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			out = appendCell(out, b.NodeAt(x, y), grid.Right, grid.Down)
		}
	}
	return out
}

func appendCell(out []int, n *grid.Node, dirs ...grid.Direction) []int {
	for _, d := range dirs {
		if id := n.Neighbor(d); id >= 0 {
			out = append(out, id)
		}
	}
	return out
}

// Order is a validated edge order together with the per-position frontier
// bookkeeping the sweep needs. It is immutable after [New].
type Order struct {
	edges    []int   // position -> edge id
	pos      []int   // edge id -> position
	closing  [][]int // position -> nodes whose last incident edge is here
	entering [][]int // position -> nodes whose first incident edge is here
}

// New runs o on b and validates that the result is a permutation of the
// board's edge ids.
func New(b *grid.Board, o Orderer) (*Order, error) {
	return FromEdges(b, o.OrderEdges(b))
}

// FromEdges wraps an explicit edge sequence. It returns an error if edges is
// not a permutation of 0..b.EdgeCount()-1.
func FromEdges(b *grid.Board, edges []int) (*Order, error) {
	m := b.EdgeCount()
	if len(edges) != m {
		return nil, fmt.Errorf("ordering: got %d edges, board has %d", len(edges), m)
	}
	ord := &Order{
		edges:    slices.Clone(edges),
		pos:      make([]int, m),
		closing:  make([][]int, m),
		entering: make([][]int, m),
	}
	for i := range ord.pos {
		ord.pos[i] = -1
	}
	for i, id := range edges {
		if id < 0 || id >= m {
			return nil, fmt.Errorf("ordering: position %d: edge %d out of range", i, id)
		}
		if ord.pos[id] >= 0 {
			return nil, fmt.Errorf("ordering: edge %d appears twice", id)
		}
		ord.pos[id] = i
	}

	for _, n := range b.Nodes() {
		if len(n.Edges()) == 0 {
			continue
		}
		first, last := m, -1
		for _, e := range n.Edges() {
			p := ord.pos[e]
			first = min(first, p)
			last = max(last, p)
		}
		// node ids are visited in ascending order, so each list stays sorted
		ord.entering[first] = append(ord.entering[first], n.ID)
		ord.closing[last] = append(ord.closing[last], n.ID)
	}
	return ord, nil
}

// Len returns the number of positions (= edges).
func (o *Order) Len() int { return len(o.edges) }

// EdgeAt returns the edge id processed at position pos.
func (o *Order) EdgeAt(pos int) int { return o.edges[pos] }

// PositionOf returns the position of edge id.
func (o *Order) PositionOf(id int) int { return o.pos[id] }

// Edges returns a copy of the full position -> edge id sequence.
func (o *Order) Edges() []int { return slices.Clone(o.edges) }

// Closing returns the ascending ids of the nodes whose last incident edge is
// processed at pos. These nodes leave the frontier after pos.
// The returned slice must not be modified.
func (o *Order) Closing(pos int) []int { return o.closing[pos] }

// Entering returns the ascending ids of the nodes whose first incident edge
// is processed at pos. The returned slice must not be modified.
func (o *Order) Entering(pos int) []int { return o.entering[pos] }
