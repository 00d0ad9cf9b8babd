package boardio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	nlerrors "github.com/matzehuels/numberlink/pkg/errors"
	"github.com/matzehuels/numberlink/pkg/grid"
)

// ReadText decodes a board in the text format.
func ReadText(r io.Reader) (*grid.Board, error) {
	var (
		nums  []int
		lines []int // source line of each number
	)
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text, _, _ := strings.Cut(sc.Text(), "#")
		for _, tok := range strings.Fields(text) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, nlerrors.New(nlerrors.ErrCodeInvalidFormat, "line %d: %q is not an integer", line, tok)
			}
			nums = append(nums, n)
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nlerrors.Wrap(nlerrors.ErrCodeInvalidFormat, err, "read")
	}

	if len(nums) < 3 {
		return nil, nlerrors.New(nlerrors.ErrCodeInvalidFormat, "missing header: want width, height and pair count")
	}
	w, h, n := nums[0], nums[1], nums[2]
	if n < 0 {
		return nil, nlerrors.New(nlerrors.ErrCodeInvalidFormat, "line %d: negative pair count %d", lines[2], n)
	}
	body := nums[3:]
	if want := 4 * n; len(body) != want {
		return nil, nlerrors.New(nlerrors.ErrCodeInvalidFormat,
			"header announces %d pairs (%d coordinates), found %d coordinates", n, want, len(body))
	}

	pairs := make([]grid.Pair, n)
	for i := range pairs {
		c := body[4*i : 4*i+4]
		pairs[i] = grid.Pair{
			From: grid.Point{X: c[0], Y: c[1]},
			To:   grid.Point{X: c[2], Y: c[3]},
		}
	}
	return newBoard(w, h, pairs)
}

// WriteText encodes b in the text format. The output of WriteText is the
// canonical encoding of a board (see [Canonical]).
func WriteText(w io.Writer, b *grid.Board) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %d\n", b.Width(), b.Height(), b.PairCount())
	for _, p := range b.Pairs() {
		fmt.Fprintf(bw, "%d %d %d %d\n", p.From.X, p.From.Y, p.To.X, p.To.Y)
	}
	return bw.Flush()
}

// Canonical returns the text encoding of b. Boards with the same size and
// the same pairs in the same order have the same encoding.
func Canonical(b *grid.Board) []byte {
	var sb strings.Builder
	_ = WriteText(&sb, b)
	return []byte(sb.String())
}
