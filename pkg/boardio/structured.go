package boardio

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	nlerrors "github.com/matzehuels/numberlink/pkg/errors"
	"github.com/matzehuels/numberlink/pkg/grid"
)

// ReadTOML decodes a board in the TOML format. Unknown keys are rejected.
func ReadTOML(r io.Reader) (*grid.Board, error) {
	var f boardFile
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, nlerrors.Wrap(nlerrors.ErrCodeInvalidFormat, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, nlerrors.New(nlerrors.ErrCodeInvalidFormat, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return f.board()
}

// WriteTOML encodes b in the TOML format.
func WriteTOML(w io.Writer, b *grid.Board) error {
	if err := toml.NewEncoder(w).Encode(toFile(b)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ReadJSON decodes a board in the JSON format. Unknown fields are rejected.
func ReadJSON(r io.Reader) (*grid.Board, error) {
	var f boardFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, nlerrors.Wrap(nlerrors.ErrCodeInvalidFormat, err, "decode json")
	}
	return f.board()
}

// WriteJSON encodes b in the JSON format.
func WriteJSON(w io.Writer, b *grid.Board) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(toFile(b)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
