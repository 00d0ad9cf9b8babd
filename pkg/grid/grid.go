package grid

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidSize is returned by [New] when width or height is not positive.
	ErrInvalidSize = errors.New("board width and height must be positive")

	// ErrNoPairs is returned by [New] when no terminal pair is given.
	ErrNoPairs = errors.New("board needs at least one terminal pair")

	// ErrTerminalOutOfBounds is returned by [New] when a terminal lies
	// outside the board.
	ErrTerminalOutOfBounds = errors.New("terminal outside the board")

	// ErrDuplicateTerminal is returned by [New] when two terminals share a cell.
	ErrDuplicateTerminal = errors.New("cell used by more than one terminal")

	// ErrOutOfRange is the cause of panics raised by accessors given an
	// invalid node, edge or pair id.
	ErrOutOfRange = errors.New("id out of range")
)

// Direction names one of the four orthogonal neighbors of a cell.
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

// Directions lists all directions in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("direction(%d)", int(d))
}

// Point is a cell coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Pair is one numbered connection: a path must join From and To.
type Pair struct {
	From, To Point
}

// Node is a grid cell.
type Node struct {
	ID       int // row-major id
	X, Y     int // coordinates
	Terminal int // pair number (1-based), 0 if the cell is not a terminal

	neighbors [4]int // edge id per Direction, -1 when absent
	edges     []int  // incident edge ids, ascending
}

// Point returns the node's coordinates.
func (n *Node) Point() Point { return Point{n.X, n.Y} }

// IsTerminal reports whether the node is an endpoint of some pair.
func (n *Node) IsTerminal() bool { return n.Terminal != 0 }

// Neighbor returns the id of the edge leaving the node in direction d, or -1
// if the node lies on that border of the board.
func (n *Node) Neighbor(d Direction) int { return n.neighbors[d] }

// Edges returns the ids of all incident edges in ascending order.
// The returned slice must not be modified.
func (n *Node) Edges() []int { return n.edges }

// Degree returns the number of incident edges (2 to 4, or fewer on 1×N boards).
func (n *Node) Degree() int { return len(n.edges) }

// Edge is an undirected connection between two adjacent cells.
// Node1 is always the smaller node id.
type Edge struct {
	ID           int
	Node1, Node2 int
	From, To     Point
}

// Other returns the endpoint of e that is not node.
func (e *Edge) Other(node int) int {
	if node == e.Node1 {
		return e.Node2
	}
	return e.Node1
}

// String formats the edge as "(x,y)-(x,y)". It is a debugging aid, not a
// stable machine format.
func (e *Edge) String() string { return e.From.String() + "-" + e.To.String() }

type terminals struct {
	start, end int // node ids
}

// Board is the immutable grid graph of one puzzle.
// The zero value is not usable - use [New] or [MustNew].
type Board struct {
	width, height int
	nodes         []Node
	edges         []Edge
	pairs         []terminals
}

// New builds a board of the given size whose terminals are the endpoints of
// pairs. Pair i (0-based in the slice) becomes pair number i+1.
//
// Returns ErrInvalidSize when width or height is not positive, ErrNoPairs
// when pairs is empty, ErrTerminalOutOfBounds when an endpoint lies outside
// the grid and ErrDuplicateTerminal when two endpoints share a cell. Errors
// are wrapped with the offending pair and coordinates.
func New(width, height int, pairs []Pair) (*Board, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidSize)
	}
	if len(pairs) == 0 {
		return nil, ErrNoPairs
	}

	b := &Board{
		width:  width,
		height: height,
		nodes:  make([]Node, width*height),
		pairs:  make([]terminals, len(pairs)),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			id := b.index(x, y)
			b.nodes[id] = Node{ID: id, X: x, Y: y, neighbors: [4]int{-1, -1, -1, -1}}
		}
	}

	for i, p := range pairs {
		k := i + 1
		for _, pt := range []Point{p.From, p.To} {
			if !b.InBounds(pt.X, pt.Y) {
				return nil, fmt.Errorf("pair %d at %s: %w", k, pt, ErrTerminalOutOfBounds)
			}
			n := &b.nodes[b.index(pt.X, pt.Y)]
			if n.Terminal != 0 {
				return nil, fmt.Errorf("pair %d at %s: %w", k, pt, ErrDuplicateTerminal)
			}
			n.Terminal = k
		}
		b.pairs[i] = terminals{start: b.index(p.From.X, p.From.Y), end: b.index(p.To.X, p.To.Y)}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x+1 < width {
				b.link(x, y, x+1, y, Right, Left)
			}
			if y+1 < height {
				b.link(x, y, x, y+1, Down, Up)
			}
		}
	}
	return b, nil
}

// MustNew is like [New] but panics on invalid input.
func MustNew(width, height int, pairs []Pair) *Board {
	b, err := New(width, height, pairs)
	if err != nil {
		panic("grid: " + err.Error())
	}
	return b
}

func (b *Board) link(x1, y1, x2, y2 int, out, in Direction) {
	id := len(b.edges)
	n1, n2 := &b.nodes[b.index(x1, y1)], &b.nodes[b.index(x2, y2)]
	b.edges = append(b.edges, Edge{
		ID:    id,
		Node1: n1.ID,
		Node2: n2.ID,
		From:  Point{x1, y1},
		To:    Point{x2, y2},
	})
	n1.neighbors[out] = id
	n2.neighbors[in] = id
	n1.edges = append(n1.edges, id)
	n2.edges = append(n2.edges, id)
}

func (b *Board) index(x, y int) int { return y*b.width + x }

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// PairCount returns the number of terminal pairs K.
func (b *Board) PairCount() int { return len(b.pairs) }

// NodeCount returns width×height.
func (b *Board) NodeCount() int { return len(b.nodes) }

// EdgeCount returns the number of edges.
func (b *Board) EdgeCount() int { return len(b.edges) }

// MaxNodeID returns the largest valid node id.
func (b *Board) MaxNodeID() int { return len(b.nodes) - 1 }

// MaxEdgeID returns the largest valid edge id, or -1 for a single cell.
func (b *Board) MaxEdgeID() int { return len(b.edges) - 1 }

// InBounds reports whether (x,y) lies on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// NodeAt returns the node at (x,y). It panics if the cell is off the board.
func (b *Board) NodeAt(x, y int) *Node {
	if !b.InBounds(x, y) {
		panic(fmt.Errorf("grid: cell (%d,%d): %w", x, y, ErrOutOfRange))
	}
	return &b.nodes[b.index(x, y)]
}

// Node returns the node with the given id. It panics on an invalid id.
func (b *Board) Node(id int) *Node {
	if id < 0 || id >= len(b.nodes) {
		panic(fmt.Errorf("grid: node %d: %w", id, ErrOutOfRange))
	}
	return &b.nodes[id]
}

// Edge returns the edge with the given id. It panics on an invalid id.
func (b *Board) Edge(id int) *Edge {
	if id < 0 || id >= len(b.edges) {
		panic(fmt.Errorf("grid: edge %d: %w", id, ErrOutOfRange))
	}
	return &b.edges[id]
}

// Start returns the first terminal of pair k (1-based).
func (b *Board) Start(k int) *Node { return b.Node(b.pair(k).start) }

// End returns the second terminal of pair k (1-based).
func (b *Board) End(k int) *Node { return b.Node(b.pair(k).end) }

func (b *Board) pair(k int) terminals {
	if k < 1 || k > len(b.pairs) {
		panic(fmt.Errorf("grid: pair %d: %w", k, ErrOutOfRange))
	}
	return b.pairs[k-1]
}

// Pairs returns the terminal coordinates of every pair, in pair order.
func (b *Board) Pairs() []Pair {
	out := make([]Pair, len(b.pairs))
	for i, t := range b.pairs {
		out[i] = Pair{From: b.nodes[t.start].Point(), To: b.nodes[t.end].Point()}
	}
	return out
}

// Nodes returns all nodes in id order. The slice aliases the board and must
// not be modified.
func (b *Board) Nodes() []Node { return b.nodes }

// Edges returns all edges in id order. The slice aliases the board and must
// not be modified.
func (b *Board) Edges() []Edge { return b.edges }

// String draws the board with one character per cell: '.' for an empty cell
// and the pair number (base 36) for a terminal.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			sb.WriteByte(Glyph(b.nodes[b.index(x, y)].Terminal))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Glyph returns the single-character label of pair k: '.' for 0, then
// 1-9, a-z, and '#' beyond that.
func Glyph(k int) byte {
	const digits = "0123456789abcdefghijklmnopqrstuvwxyz"
	switch {
	case k == 0:
		return '.'
	case k < len(digits):
		return digits[k]
	}
	return '#'
}
