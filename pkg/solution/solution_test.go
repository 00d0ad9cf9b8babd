package solution

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/numberlink/pkg/grid"
	"github.com/matzehuels/numberlink/pkg/ordering"
)

func pt(x, y int) grid.Point { return grid.Point{X: x, Y: y} }

func corner3x3() *grid.Board {
	return grid.MustNew(3, 3, []grid.Pair{{From: pt(0, 0), To: pt(2, 2)}})
}

func TestDecompose(t *testing.T) {
	b := corner3x3()
	// along the top row, then down the right column
	s, err := Decompose(b, []int{9, 0, 4, 2}, nil)
	require.NoError(t, err)

	require.Len(t, s.Paths, 1)
	assert.Equal(t, 1, s.Paths[0].Pair)
	assert.Equal(t, []int{0, 1, 2, 5, 8}, s.Paths[0].Nodes)
	assert.Equal(t, []int{0, 2, 4, 9}, s.Paths[0].Edges)
	assert.Equal(t, []int{0, 2, 4, 9}, s.Edges())
	assert.Equal(t, "0,2,4,9", s.Key())
	assert.Equal(t, "111\n..1\n..1\n", s.String())
	assert.Equal(t, [][]int{{1, 1, 1}, {0, 0, 1}, {0, 0, 1}}, s.Cells())
	assert.Same(t, b, s.Board())
}

func TestDecomposeErrors(t *testing.T) {
	crossed := grid.MustNew(2, 2, []grid.Pair{
		{From: pt(0, 0), To: pt(1, 1)},
		{From: pt(1, 0), To: pt(0, 1)},
	})

	tests := []struct {
		name  string
		board *grid.Board
		edges []int
		want  error
	}{
		{"DeadEnd", corner3x3(), []int{0}, ErrDegree},
		{"TerminalUnused", corner3x3(), nil, ErrDegree},
		{"Branch", corner3x3(), []int{0, 1, 2, 3, 4, 9}, ErrDegree},
		{"Loop", corner3x3(), []int{0, 2, 4, 9, 5, 6, 8, 10}, ErrCycle},
		{"Mispaired", crossed, []int{0, 3}, ErrMispaired},
		{"Duplicate", corner3x3(), []int{0, 0, 2, 4, 9}, ErrInvalidEdge},
		{"OffBoard", corner3x3(), []int{12}, ErrInvalidEdge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decompose(tt.board, tt.edges, nil)
			if !errors.Is(err, tt.want) {
				t.Errorf("Decompose() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestDecomposePairSubset(t *testing.T) {
	// 1...1 with pair 2 in the middle: routing only pair 1 runs through it
	b := grid.MustNew(4, 1, []grid.Pair{
		{From: pt(0, 0), To: pt(3, 0)},
		{From: pt(1, 0), To: pt(2, 0)},
	})
	edges := []int{0, 1, 2}

	s, err := Decompose(b, edges, []int{1})
	require.NoError(t, err)
	require.Len(t, s.Paths, 1)
	assert.Equal(t, []int{0, 1, 2, 3}, s.Paths[0].Nodes)

	_, err = Decompose(b, edges, nil)
	assert.ErrorIs(t, err, ErrDegree)

	_, err = Decompose(b, edges, []int{3})
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

func TestFromPositions(t *testing.T) {
	b := corner3x3()
	o, err := ordering.New(b, ordering.Diagonal{})
	require.NoError(t, err)

	// diagonal order starts with edges 1 and 0
	assert.Equal(t, []int{0, 1}, FromPositions(o, []int{0, 1}))
	assert.Empty(t, FromPositions(o, nil))
}
