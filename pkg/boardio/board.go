package boardio

import (
	"errors"
	"path/filepath"
	"strings"

	nlerrors "github.com/matzehuels/numberlink/pkg/errors"
	"github.com/matzehuels/numberlink/pkg/grid"
)

// Format names a board file format.
type Format string

const (
	FormatText Format = "text"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Formats lists the supported formats.
var Formats = []string{string(FormatText), string(FormatTOML), string(FormatJSON)}

// FormatOf picks the format from a file extension. Files that are neither
// .toml nor .json are read as text.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".json":
		return FormatJSON
	}
	return FormatText
}

// boardFile is the structured form shared by the TOML and JSON formats.
type boardFile struct {
	Width  int        `json:"width" toml:"width"`
	Height int        `json:"height" toml:"height"`
	Pairs  []pairFile `json:"pairs" toml:"pairs"`
}

type pairFile struct {
	From [2]int `json:"from" toml:"from"`
	To   [2]int `json:"to" toml:"to"`
}

func toFile(b *grid.Board) boardFile {
	f := boardFile{Width: b.Width(), Height: b.Height()}
	for _, p := range b.Pairs() {
		f.Pairs = append(f.Pairs, pairFile{
			From: [2]int{p.From.X, p.From.Y},
			To:   [2]int{p.To.X, p.To.Y},
		})
	}
	return f
}

func (f boardFile) board() (*grid.Board, error) {
	pairs := make([]grid.Pair, len(f.Pairs))
	for i, p := range f.Pairs {
		pairs[i] = grid.Pair{
			From: grid.Point{X: p.From[0], Y: p.From[1]},
			To:   grid.Point{X: p.To[0], Y: p.To[1]},
		}
	}
	return newBoard(f.Width, f.Height, pairs)
}

// newBoard validates the size before building, so oversized inputs never
// allocate a board.
func newBoard(width, height int, pairs []grid.Pair) (*grid.Board, error) {
	if err := nlerrors.ValidateDimensions(width, height); err != nil {
		return nil, err
	}
	b, err := grid.New(width, height, pairs)
	if err != nil {
		return nil, nlerrors.Wrap(nlerrors.ErrCodeInvalidBoard, err, "invalid board")
	}
	return b, nil
}

// withPath prefixes the message of a coded error with the file it came from.
func withPath(path string, err error) error {
	var e *nlerrors.Error
	if errors.As(err, &e) {
		return &nlerrors.Error{Code: e.Code, Message: path + ": " + e.Message, Cause: e.Cause}
	}
	return nlerrors.Wrap(nlerrors.ErrCodeInvalidFormat, err, "%s", path)
}
