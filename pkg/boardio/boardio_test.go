package boardio

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	nlerrors "github.com/matzehuels/numberlink/pkg/errors"
	"github.com/matzehuels/numberlink/pkg/grid"
)

func sample() *grid.Board {
	return grid.MustNew(4, 3, []grid.Pair{
		{From: grid.Point{X: 0, Y: 0}, To: grid.Point{X: 3, Y: 2}},
		{From: grid.Point{X: 3, Y: 0}, To: grid.Point{X: 1, Y: 1}},
	})
}

func sameBoard(t *testing.T, got, want *grid.Board) {
	t.Helper()
	if got.String() != want.String() {
		t.Errorf("board =\n%swant\n%s", got, want)
	}
	if !bytes.Equal(Canonical(got), Canonical(want)) {
		t.Errorf("canonical = %q, want %q", Canonical(got), Canonical(want))
	}
}

func TestReadText(t *testing.T) {
	in := `# two pairs
4 3 2
0 0 3 2   # first
3 0 1 1
`
	b, err := ReadText(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadText: %v", err)
	}
	sameBoard(t, b, sample())
	if got := b.Start(2).Point(); got != (grid.Point{X: 3, Y: 0}) {
		t.Errorf("Start(2) = %v", got)
	}
}

func TestReadTextErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  nlerrors.Code
	}{
		{"empty", "", nlerrors.ErrCodeInvalidFormat},
		{"short header", "3 3", nlerrors.ErrCodeInvalidFormat},
		{"not a number", "3 x 1\n0 0 2 2", nlerrors.ErrCodeInvalidFormat},
		{"missing coordinates", "3 3 1\n0 0 2", nlerrors.ErrCodeInvalidFormat},
		{"extra coordinates", "3 3 1\n0 0 2 2 1", nlerrors.ErrCodeInvalidFormat},
		{"negative count", "3 3 -1", nlerrors.ErrCodeInvalidFormat},
		{"no pairs", "3 3 0", nlerrors.ErrCodeInvalidBoard},
		{"outside", "3 3 1\n0 0 3 3", nlerrors.ErrCodeInvalidBoard},
		{"shared cell", "3 3 2\n0 0 2 2\n2 2 1 1", nlerrors.ErrCodeInvalidBoard},
		{"zero width", "0 3 1\n0 0 0 1", nlerrors.ErrCodeInvalidBoard},
		{"too large", "100 100 1\n0 0 1 1", nlerrors.ErrCodeTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadText(strings.NewReader(tt.input))
			if !nlerrors.Is(err, tt.code) {
				t.Errorf("ReadText(%q) error = %v, want code %s", tt.input, err, tt.code)
			}
		})
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sample()); err != nil {
		t.Fatal(err)
	}
	want := "4 3 2\n0 0 3 2\n3 0 1 1\n"
	if buf.String() != want {
		t.Errorf("WriteText = %q, want %q", buf.String(), want)
	}
}

func TestReadTOML(t *testing.T) {
	in := `
width = 4
height = 3

[[pairs]]
from = [0, 0]
to = [3, 2]

[[pairs]]
from = [3, 0]
to = [1, 1]
`
	b, err := ReadTOML(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	sameBoard(t, b, sample())
}

func TestReadTOMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  nlerrors.Code
	}{
		{"syntax", "width = ", nlerrors.ErrCodeInvalidFormat},
		{"unknown key", "width = 2\nheight = 2\ncolor = 1\n[[pairs]]\nfrom = [0, 0]\nto = [1, 1]\n", nlerrors.ErrCodeInvalidFormat},
		{"no pairs", "width = 2\nheight = 2\n", nlerrors.ErrCodeInvalidBoard},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadTOML(strings.NewReader(tt.input))
			if !nlerrors.Is(err, tt.code) {
				t.Errorf("ReadTOML error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestReadJSON(t *testing.T) {
	in := `{"width": 4, "height": 3, "pairs": [
		{"from": [0, 0], "to": [3, 2]},
		{"from": [3, 0], "to": [1, 1]}
	]}`
	b, err := ReadJSON(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	sameBoard(t, b, sample())

	_, err = ReadJSON(strings.NewReader(`{"width": 2, "height": 2, "extra": true}`))
	if !nlerrors.Is(err, nlerrors.ErrCodeInvalidFormat) {
		t.Errorf("unknown field error = %v", err)
	}
}

func TestWriteRead(t *testing.T) {
	for _, f := range Formats {
		t.Run(f, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, sample(), Format(f)); err != nil {
				t.Fatalf("Write: %v", err)
			}
			b, err := Read(&buf, Format(f))
			if err != nil {
				t.Fatalf("Read: %v\n%s", err, buf.String())
			}
			sameBoard(t, b, sample())
		})
	}

	if _, err := Read(strings.NewReader(""), "yaml"); !nlerrors.Is(err, nlerrors.ErrCodeUnsupported) {
		t.Errorf("Read(yaml) error = %v", err)
	}
	if err := Write(&bytes.Buffer{}, sample(), "yaml"); !nlerrors.Is(err, nlerrors.ErrCodeUnsupported) {
		t.Errorf("Write(yaml) error = %v", err)
	}
}

func TestFormatOf(t *testing.T) {
	tests := map[string]Format{
		"board.toml":  FormatTOML,
		"BOARD.JSON":  FormatJSON,
		"board.txt":   FormatText,
		"puzzles/p01": FormatText,
	}
	for path, want := range tests {
		if got := FormatOf(path); got != want {
			t.Errorf("FormatOf(%q) = %s, want %s", path, got, want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	b, err := Load(write("ok.txt", "4 3 2\n0 0 3 2\n3 0 1 1\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	sameBoard(t, b, sample())

	bad := write("bad.json", "{")
	_, err = Load(bad)
	if !nlerrors.Is(err, nlerrors.ErrCodeInvalidFormat) {
		t.Fatalf("Load(bad) error = %v", err)
	}
	if !strings.Contains(nlerrors.UserMessage(err), bad) {
		t.Errorf("error message %q does not name the file", nlerrors.UserMessage(err))
	}

	_, err = Load(filepath.Join(dir, "missing.txt"))
	if !nlerrors.Is(err, nlerrors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v", err)
	}
	_, err = Load("")
	if !nlerrors.Is(err, nlerrors.ErrCodeInvalidPath) {
		t.Errorf("Load(\"\") error = %v", err)
	}
}

func TestExampleBoards(t *testing.T) {
	paths, err := filepath.Glob("../../examples/boards/*")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) == 0 {
		t.Skip("no example boards")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			if _, err := Load(path); err != nil {
				t.Errorf("Load(%s): %v", path, err)
			}
		})
	}
}
