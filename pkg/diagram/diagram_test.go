package diagram

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/numberlink/pkg/frontier"
)

// small builds
//
//	a(0) --skip--> b(1) --skip--> reject
//	                    --take--> accept
//	     --take--> c(1) --skip--> accept
//	                    --take--> accept
func small(t *testing.T) (*Diagram, Handle, Handle, Handle) {
	t.Helper()
	d := New()
	a := d.NewNode(0, frontier.New(10))
	b := d.NewNode(1, frontier.New(10))
	c := d.NewNode(1, frontier.New(10))
	d.SetChildren(a, b, c)
	d.SetChildren(b, Reject, Accept)
	d.SetChildren(c, Accept, Accept)
	d.SetRoot(a)
	return d, a, b, c
}

func panicErr(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
			if err == nil {
				err = fmt.Errorf("non-error panic: %v", r)
			}
		}
	}()
	fn()
	return nil
}

func TestNewDiagram(t *testing.T) {
	d := New()
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
	if d.Root() != Reject {
		t.Errorf("Root() = %v, want reject", d.Root())
	}
	if d.Levels() != 0 {
		t.Errorf("Levels() = %d, want 0", d.Levels())
	}
	if d.Satisfiable() {
		t.Error("empty diagram should not be satisfiable")
	}
	if got := d.Count().Int64(); got != 0 {
		t.Errorf("Count() = %d, want 0", got)
	}
}

func TestStructure(t *testing.T) {
	d, a, b, c := small(t)

	if d.Skip(a) != b || d.Take(a) != c {
		t.Errorf("children of a = (%v, %v), want (%v, %v)", d.Skip(a), d.Take(a), b, c)
	}
	if d.Level(a) != 0 || d.Level(b) != 1 || d.Level(Accept) != -1 {
		t.Error("unexpected levels")
	}
	if !d.IsTerminal(Accept) || !d.IsTerminal(Reject) || d.IsTerminal(a) {
		t.Error("IsTerminal mismatch")
	}
	if lo, hi := d.LevelRange(0); lo != a || hi != b {
		t.Errorf("LevelRange(0) = [%v,%v)", lo, hi)
	}
	if lo, hi := d.LevelRange(1); lo != b || hi != c+1 {
		t.Errorf("LevelRange(1) = [%v,%v)", lo, hi)
	}
	if lo, hi := d.LevelRange(7); lo != hi {
		t.Errorf("LevelRange(7) should be empty, got [%v,%v)", lo, hi)
	}
}

func TestSkippedLevelsStayEmpty(t *testing.T) {
	d := New()
	d.NewNode(0, nil)
	h := d.NewNode(3, nil)
	if d.Levels() != 4 {
		t.Fatalf("Levels() = %d, want 4", d.Levels())
	}
	for _, lvl := range []int{1, 2} {
		if lo, hi := d.LevelRange(lvl); lo != hi {
			t.Errorf("level %d not empty: [%v,%v)", lvl, lo, hi)
		}
	}
	if lo, _ := d.LevelRange(3); lo != h {
		t.Errorf("level 3 starts at %v, want %v", lo, h)
	}
}

func TestFaults(t *testing.T) {
	tests := []struct {
		name string
		fn   func(d *Diagram, a, b, c Handle)
		want error
	}{
		{"DoubleSetChildren", func(d *Diagram, a, b, c Handle) { d.SetChildren(a, Reject, Reject) }, ErrFrozen},
		{"SetChildrenOnSentinel", func(d *Diagram, a, b, c Handle) { d.SetChildren(Accept, a, b) }, ErrInvalidHandle},
		{"SetChildrenUnknown", func(d *Diagram, a, b, c Handle) { d.SetChildren(99, a, b) }, ErrInvalidHandle},
		{"UnknownChild", func(d *Diagram, a, b, c Handle) {
			h := d.NewNode(2, nil)
			d.SetChildren(h, Accept, 99)
		}, ErrInvalidHandle},
		{"LevelOrder", func(d *Diagram, a, b, c Handle) { d.NewNode(0, nil) }, ErrLevelOrder},
		{"SkipOfSentinel", func(d *Diagram, a, b, c Handle) { d.Skip(Reject) }, ErrInvalidHandle},
		{"SetRootUnknown", func(d *Diagram, a, b, c Handle) { d.SetRoot(-3) }, ErrInvalidHandle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, a, b, c := small(t)
			err := panicErr(func() { tt.fn(d, a, b, c) })
			if !errors.Is(err, tt.want) {
				t.Errorf("panic = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFrozenNodeKeepsChildren(t *testing.T) {
	d, a, b, c := small(t)
	_ = panicErr(func() { d.SetChildren(a, Reject, Reject) })
	if d.Skip(a) != b || d.Take(a) != c {
		t.Error("failed SetChildren modified a frozen node")
	}
}

func TestCountAndPaths(t *testing.T) {
	d, _, _, _ := small(t)

	if got := d.Count().Int64(); got != 3 {
		t.Errorf("Count() = %d, want 3", got)
	}
	if !d.Satisfiable() {
		t.Error("Satisfiable() = false")
	}

	var got [][]int
	for p := range d.Paths() {
		got = append(got, p)
	}
	want := [][]int{{1}, {0}, {0, 1}}
	if !slices.EqualFunc(got, want, slices.Equal) {
		t.Errorf("Paths() = %v, want %v", got, want)
	}

	first, ok := d.First()
	if !ok || !slices.Equal(first, []int{1}) {
		t.Errorf("First() = %v, %v", first, ok)
	}
}

func TestPathsStopsEarly(t *testing.T) {
	d, _, _, _ := small(t)
	n := 0
	for range d.Paths() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("visited %d paths, want 2", n)
	}
}

func TestUnlinkedChildrenCountAsReject(t *testing.T) {
	d := New()
	a := d.NewNode(0, nil)
	b := d.NewNode(1, nil)
	d.SetChildren(a, b, Accept)
	d.SetRoot(a)

	if got := d.Count().Int64(); got != 1 {
		t.Errorf("Count() = %d, want 1", got)
	}
	if d.Linked(b) {
		t.Error("b should be unlinked")
	}
}

func TestCountSharesNodes(t *testing.T) {
	// a chain of n diamonds has 2^n paths
	const n = 70
	d := New()
	prev := d.NewNode(0, nil)
	d.SetRoot(prev)
	for lvl := 1; lvl <= n; lvl++ {
		next := d.NewNode(lvl, nil)
		d.SetChildren(prev, next, next)
		prev = next
	}
	d.SetChildren(prev, Accept, Reject)

	want := "1180591620717411303424" // 2^70
	if got := d.Count().String(); got != want {
		t.Errorf("Count() = %s, want %s", got, want)
	}
}

func TestReleaseLevel(t *testing.T) {
	d, a, b, _ := small(t)
	d.ReleaseLevel(0)
	if d.Frontier(a) != nil {
		t.Error("frontier of released level still held")
	}
	if d.Frontier(b) == nil {
		t.Error("frontier of unreleased level dropped")
	}
	if d.Frontier(Accept) != nil {
		t.Error("sentinel has a frontier")
	}
}

func TestToDOT(t *testing.T) {
	d, _, _, _ := small(t)

	dot := ToDOT(d, DOTOptions{})
	for _, want := range []string{
		"digraph D {",
		"n0 [label=\"0\"",
		"n1 [label=\"1\"",
		"n2 [label=\"0\"];",
		"{ rank=same; n3; n4; }",
		"n2 -> n3 [style=dashed];",
		"n2 -> n4;",
		"n3 -> n0 [style=dashed];",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}

	hidden := ToDOT(d, DOTOptions{
		HideReject: true,
		EdgeLabel:  func(level int) string { return fmt.Sprintf("e%d", level) },
	})
	if strings.Contains(hidden, "n0") {
		t.Errorf("HideReject left reject in output:\n%s", hidden)
	}
	if !strings.Contains(hidden, "n2 [label=\"e0\"];") {
		t.Errorf("EdgeLabel not applied:\n%s", hidden)
	}
}

func TestToDOTSkipsUnreachable(t *testing.T) {
	d, _, _, _ := small(t)
	orphan := d.NewNode(2, nil)
	d.SetChildren(orphan, Accept, Accept)

	dot := ToDOT(d, DOTOptions{})
	if strings.Contains(dot, fmt.Sprintf("n%d ", orphan)) {
		t.Errorf("unreachable node rendered:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="10pt" height="20pt" viewBox="0.00 0.00 10.00 20.00" xmlns="x"><g/></svg>`)
	got := string(normalizeViewBox(in))
	if !strings.HasPrefix(got, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10.00 20.00" width="10" height="20">`) {
		t.Errorf("normalizeViewBox() = %s", got)
	}

	plain := []byte("<svg><g/></svg>")
	if string(normalizeViewBox(plain)) != string(plain) {
		t.Error("svg without viewBox should be untouched")
	}
}
