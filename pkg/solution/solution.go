// Package solution turns accepted diagram paths into routed board solutions.
//
// A diagram path is a list of edge positions. [FromPositions] maps them to
// edge ids and [Decompose] splits the edge set into one cell path per pair,
// checking every routing rule on the way. Decompose is independent of the
// diagram builder and serves as its checker in tests.
package solution

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/numberlink/pkg/grid"
	"github.com/matzehuels/numberlink/pkg/ordering"
)

var (
	// ErrInvalidEdge is returned when an edge id is off the board or listed
	// twice.
	ErrInvalidEdge = errors.New("invalid edge")

	// ErrDegree is returned when a cell has an illegal number of selected
	// edges: a routed terminal needs exactly one, any other cell zero or two.
	ErrDegree = errors.New("illegal cell degree")

	// ErrMispaired is returned when a path leaves one terminal and ends at
	// a terminal of a different pair.
	ErrMispaired = errors.New("path joins terminals of different pairs")

	// ErrCycle is returned when selected edges are left over after every
	// pair was walked; with legal degrees they can only form loops.
	ErrCycle = errors.New("selected edges form a cycle")
)

// Path is the route of one pair.
type Path struct {
	Pair  int   // pair number
	Nodes []int // cell ids from Start(Pair) to End(Pair)
	Edges []int // edge ids in walking order
}

// Solution is a verified routing of some pairs of a board.
type Solution struct {
	board *grid.Board
	edges []int
	Paths []Path
}

// FromPositions converts the take positions of a diagram path into
// ascending edge ids.
func FromPositions(o *ordering.Order, positions []int) []int {
	out := make([]int, len(positions))
	for i, p := range positions {
		out[i] = o.EdgeAt(p)
	}
	slices.Sort(out)
	return out
}

// Decompose checks that edges route exactly the given pairs of b and
// returns the per-pair paths. A nil or empty pairs slice means every pair.
// Terminals of other pairs are treated as ordinary cells.
func Decompose(b *grid.Board, edges []int, pairs []int) (*Solution, error) {
	if len(pairs) == 0 {
		pairs = make([]int, b.PairCount())
		for i := range pairs {
			pairs[i] = i + 1
		}
	} else {
		pairs = slices.Compact(slices.Sorted(slices.Values(pairs)))
	}
	routed := make([]bool, b.PairCount()+1)
	for _, k := range pairs {
		if k < 1 || k > b.PairCount() {
			return nil, fmt.Errorf("solution: pair %d: %w", k, grid.ErrOutOfRange)
		}
		routed[k] = true
	}

	selected := make([]bool, b.EdgeCount())
	for _, e := range edges {
		if e < 0 || e >= b.EdgeCount() || selected[e] {
			return nil, fmt.Errorf("solution: edge %d: %w", e, ErrInvalidEdge)
		}
		selected[e] = true
	}

	for i := range b.Nodes() {
		n := &b.Nodes()[i]
		deg := 0
		for _, e := range n.Edges() {
			if selected[e] {
				deg++
			}
		}
		want := "0 or 2"
		ok := deg == 0 || deg == 2
		if routed[n.Terminal] {
			want, ok = "1", deg == 1
		}
		if !ok {
			return nil, fmt.Errorf("solution: cell %v has degree %d, want %s: %w", n.Point(), deg, want, ErrDegree)
		}
	}

	used := make([]bool, b.EdgeCount())
	s := &Solution{board: b, edges: slices.Sorted(slices.Values(edges))}
	for _, k := range pairs {
		p, err := walk(b, selected, used, k)
		if err != nil {
			return nil, err
		}
		s.Paths = append(s.Paths, p)
	}
	for e, sel := range selected {
		if sel && !used[e] {
			return nil, fmt.Errorf("solution: edge %v: %w", b.Edge(e), ErrCycle)
		}
	}
	return s, nil
}

// walk follows the selected edges from the first terminal of pair k until
// the path ends. Degrees were checked, so the walk stops at the first cell
// of degree 1 and cannot revisit a cell.
func walk(b *grid.Board, selected, used []bool, k int) (Path, error) {
	start, end := b.Start(k), b.End(k)
	p := Path{Pair: k, Nodes: []int{start.ID}}
	cur, prev := start.ID, -1
	for {
		next := -1
		for _, e := range b.Node(cur).Edges() {
			if selected[e] && e != prev {
				next = e
				break
			}
		}
		if next < 0 {
			break
		}
		used[next] = true
		p.Edges = append(p.Edges, next)
		cur, prev = b.Edge(next).Other(cur), next
		p.Nodes = append(p.Nodes, cur)
	}
	if cur != end.ID {
		return Path{}, fmt.Errorf("solution: pair %d runs from %v to %v: %w", k, start.Point(), b.Node(cur).Point(), ErrMispaired)
	}
	return p, nil
}

// Board returns the board the solution routes.
func (s *Solution) Board() *grid.Board { return s.board }

// Edges returns the selected edge ids in ascending order.
func (s *Solution) Edges() []int { return slices.Clone(s.edges) }

// Cells returns the pair number occupying each cell, indexed [y][x];
// 0 marks an unused cell.
func (s *Solution) Cells() [][]int {
	out := make([][]int, s.board.Height())
	for y := range out {
		out[y] = make([]int, s.board.Width())
	}
	for _, p := range s.Paths {
		for _, id := range p.Nodes {
			n := s.board.Node(id)
			out[n.Y][n.X] = p.Pair
		}
	}
	return out
}

// Key identifies the solution by its edge set.
func (s *Solution) Key() string {
	parts := make([]string, len(s.edges))
	for i, e := range s.edges {
		parts[i] = strconv.Itoa(e)
	}
	return strings.Join(parts, ",")
}

// String draws the board with every cell labelled by the pair routed
// through it.
func (s *Solution) String() string {
	var sb strings.Builder
	for _, row := range s.Cells() {
		for _, k := range row {
			sb.WriteByte(grid.Glyph(k))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
