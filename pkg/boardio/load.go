package boardio

import (
	"io"
	"os"

	nlerrors "github.com/matzehuels/numberlink/pkg/errors"
	"github.com/matzehuels/numberlink/pkg/grid"
)

// Read decodes a board in the given format.
func Read(r io.Reader, f Format) (*grid.Board, error) {
	switch f {
	case FormatText:
		return ReadText(r)
	case FormatTOML:
		return ReadTOML(r)
	case FormatJSON:
		return ReadJSON(r)
	}
	return nil, nlerrors.New(nlerrors.ErrCodeUnsupported, "unsupported board format %q", f)
}

// Write encodes b in the given format.
func Write(w io.Writer, b *grid.Board, f Format) error {
	switch f {
	case FormatText:
		return WriteText(w, b)
	case FormatTOML:
		return WriteTOML(w, b)
	case FormatJSON:
		return WriteJSON(w, b)
	}
	return nlerrors.New(nlerrors.ErrCodeUnsupported, "unsupported board format %q", f)
}

// Load reads the board file at path, choosing the format by extension
// (see [FormatOf]). Errors carry the path in their message.
func Load(path string) (*grid.Board, error) {
	if err := nlerrors.ValidatePath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nlerrors.New(nlerrors.ErrCodeFileNotFound, "board file not found: %s", path)
	}
	if err != nil {
		return nil, nlerrors.Wrap(nlerrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	b, err := Read(f, FormatOf(path))
	if err != nil {
		return nil, withPath(path, err)
	}
	return b, nil
}
