package boardio

import (
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"strings"

	nlerrors "github.com/matzehuels/numberlink/pkg/errors"
	"github.com/matzehuels/numberlink/pkg/grid"
	"github.com/matzehuels/numberlink/pkg/solution"
	"github.com/matzehuels/numberlink/pkg/sweep"
)

// Summary is the serializable outcome of a solve.
type Summary struct {
	Width         int        `json:"width"`
	Height        int        `json:"height"`
	Pairs         []int      `json:"pairs"`
	Ordering      string     `json:"ordering"`
	Count         *big.Int   `json:"count"`
	Nodes         int        `json:"nodes"`
	Levels        int        `json:"levels"`
	MaxLevelWidth int        `json:"max_level_width"`
	Solutions     []Solution `json:"solutions"`
}

// Solution is one routing inside a [Summary].
type Solution struct {
	Edges []int    `json:"edges"`
	Rows  []string `json:"rows"`
}

// NewSummary materializes up to limit solutions of res; limit <= 0 keeps
// all of them. ordering is recorded as given.
func NewSummary(res *sweep.Result, ordering string, limit int) (*Summary, error) {
	s := &Summary{
		Width:         res.Board.Width(),
		Height:        res.Board.Height(),
		Pairs:         res.Pairs,
		Ordering:      ordering,
		Count:         res.Diagram.Count(),
		Nodes:         res.Stats.Nodes,
		Levels:        res.Stats.Levels,
		MaxLevelWidth: res.Stats.MaxLevelWidth,
		Solutions:     []Solution{},
	}
	for p := range res.Diagram.Paths() {
		if limit > 0 && len(s.Solutions) == limit {
			break
		}
		sol, err := solution.Decompose(res.Board, solution.FromPositions(res.Order, p), res.Pairs)
		if err != nil {
			return nil, nlerrors.Wrap(nlerrors.ErrCodeInternal, err, "diagram accepted an invalid routing")
		}
		s.Solutions = append(s.Solutions, Solution{
			Edges: sol.Edges(),
			Rows:  strings.Split(strings.TrimSuffix(sol.String(), "\n"), "\n"),
		})
	}
	return s, nil
}

// Truncated reports whether the summary holds fewer solutions than exist.
func (s *Summary) Truncated() bool {
	return s.Count.Cmp(big.NewInt(int64(len(s.Solutions)))) > 0
}

// Decode rebuilds the stored solutions on b, verifying each one.
func (s *Summary) Decode(b *grid.Board) ([]*solution.Solution, error) {
	if b.Width() != s.Width || b.Height() != s.Height {
		return nil, nlerrors.New(nlerrors.ErrCodeInvalidInput,
			"summary is for a %dx%d board, got %dx%d", s.Width, s.Height, b.Width(), b.Height())
	}
	out := make([]*solution.Solution, len(s.Solutions))
	for i, sol := range s.Solutions {
		d, err := solution.Decompose(b, sol.Edges, s.Pairs)
		if err != nil {
			return nil, nlerrors.Wrap(nlerrors.ErrCodeInvalidFormat, err, "solution %d", i+1)
		}
		out[i] = d
	}
	return out, nil
}

// WriteSummaryJSON encodes s as indented JSON.
func WriteSummaryJSON(w io.Writer, s *Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadSummaryJSON decodes a summary written by [WriteSummaryJSON].
func ReadSummaryJSON(r io.Reader) (*Summary, error) {
	var s Summary
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, nlerrors.Wrap(nlerrors.ErrCodeInvalidFormat, err, "decode summary")
	}
	if s.Count == nil {
		return nil, nlerrors.New(nlerrors.ErrCodeInvalidFormat, "summary without count")
	}
	return &s, nil
}
