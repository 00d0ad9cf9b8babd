// Package frontier implements the compact boundary state tracked by the
// decision-diagram sweep.
//
// A [State] records, for every node on the frontier, how many selected edges
// it already has and which partial path it belongs to. Component labels are
// plain ints: a negative label -k means the path is anchored to terminal
// pair k, a non-negative label names an anonymous path fragment. Anonymous
// labels are bookkeeping only and may be renamed freely; [State.Canonicalize]
// and [State.Signature] exploit this to merge states whose histories differ
// but whose futures are identical.
package frontier

import (
	"encoding/binary"
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Entry is one frontier node.
type Entry struct {
	Node   int // node id
	Degree int // selected incident edges so far: 0, 1 or 2
	Comp   int // component label; negative = anchored to pair -Comp
}

// State is an ordered list of entries, sorted by node id without duplicates.
//
// Canonical anonymous labels are allocated from base upward, so base must be
// larger than every node id that is used as a fresh label (the builder passes
// the board's node count). The zero value is an empty state with base 0.
type State struct {
	base    int
	entries []Entry
}

// New returns an empty state whose canonical anonymous labels start at base.
func New(base int) *State {
	return &State{base: base}
}

// Base returns the first canonical anonymous label.
func (s *State) Base() int { return s.base }

// Len returns the number of entries.
func (s *State) Len() int { return len(s.entries) }

// NodeAt returns the node id of the entry at pos.
func (s *State) NodeAt(pos int) int { return s.entries[pos].Node }

// DegreeAt returns the degree of the entry at pos.
func (s *State) DegreeAt(pos int) int { return s.entries[pos].Degree }

// ComponentAt returns the component label of the entry at pos.
func (s *State) ComponentAt(pos int) int { return s.entries[pos].Comp }

// IncrementDegree adds one to the degree at pos. Callers validate the
// degree limit before calling.
func (s *State) IncrementDegree(pos int) { s.entries[pos].Degree++ }

// Find returns the position of node, or -1 if it is not on the frontier.
func (s *State) Find(node int) int {
	pos, ok := slices.BinarySearchFunc(s.entries, node, cmpNode)
	if !ok {
		return -1
	}
	return pos
}

// Add inserts a new entry keeping the list sorted and returns its position.
// Adding a node that is already present panics.
func (s *State) Add(node, degree, comp int) int {
	pos, ok := slices.BinarySearchFunc(s.entries, node, cmpNode)
	if ok {
		panic(fmt.Sprintf("frontier: node %d already on the frontier", node))
	}
	s.entries = slices.Insert(s.entries, pos, Entry{Node: node, Degree: degree, Comp: comp})
	return pos
}

// ReplaceComponent relabels every entry of component from as to. This is
// the union of two path fragments; a full scan is fine since frontiers are
// narrow.
func (s *State) ReplaceComponent(from, to int) {
	for i := range s.entries {
		if s.entries[i].Comp == from {
			s.entries[i].Comp = to
		}
	}
}

// Delete removes the entries of the given nodes. ids must be ascending and
// every id must be present; violations panic because they mean the sweep's
// closing bookkeeping is out of sync with the state.
func (s *State) Delete(ids []int) {
	if len(ids) == 0 {
		return
	}
	out := s.entries[:0]
	j := 0
	for _, e := range s.entries {
		if j < len(ids) && e.Node == ids[j] {
			j++
			if j < len(ids) && ids[j] <= ids[j-1] {
				panic(fmt.Sprintf("frontier: delete ids not ascending: %v", ids))
			}
			continue
		}
		out = append(out, e)
	}
	if j != len(ids) {
		panic(fmt.Sprintf("frontier: delete %d: node not on the frontier", ids[j]))
	}
	s.entries = out
}

// Clone returns an independent copy.
func (s *State) Clone() *State {
	return &State{base: s.base, entries: slices.Clone(s.entries)}
}

// Entries returns a copy of the entry list.
func (s *State) Entries() []Entry { return slices.Clone(s.entries) }

// Canonicalize rewrites anonymous (non-negative) labels in place: the label
// of a component becomes base plus the position of its first entry. Negative
// labels are left untouched. It returns the structural hash of the result.
//
// Two states that differ only in the naming of anonymous components are
// equal after Canonicalize.
func (s *State) Canonicalize() uint64 {
	// frontiers hold a handful of components; a linear table beats a map
	type relabel struct{ from, to int }
	var buf [8]relabel
	seen := buf[:0]

	for i := range s.entries {
		c := s.entries[i].Comp
		if c < 0 {
			continue
		}
		to := -1
		for _, r := range seen {
			if r.from == c {
				to = r.to
				break
			}
		}
		if to < 0 {
			to = s.base + i
			seen = append(seen, relabel{from: c, to: to})
		}
		s.entries[i].Comp = to
	}
	return s.hash()
}

func (s *State) hash() uint64 {
	d := xxhash.New()
	var b [24]byte
	for _, e := range s.entries {
		binary.LittleEndian.PutUint64(b[0:], uint64(e.Node))
		binary.LittleEndian.PutUint64(b[8:], uint64(e.Degree))
		binary.LittleEndian.PutUint64(b[16:], uint64(e.Comp))
		_, _ = d.Write(b[:])
	}
	return d.Sum64()
}

// Equal reports whether both states hold identical entries. For states that
// were canonicalized this is signature equality.
func (s *State) Equal(o *State) bool {
	return slices.Equal(s.entries, o.entries)
}

// Signature returns the canonical key of s without modifying it.
func (s *State) Signature() Signature {
	c := s.Clone()
	h := c.Canonicalize()
	return Signature{hash: h, entries: c.entries}
}

// String dumps the state as one "node: degree, component" line per entry.
// It is a debugging aid, not a stable format.
func (s *State) String() string {
	var sb strings.Builder
	for i, e := range s.entries {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "%d: %d, %d", e.Node, e.Degree, e.Comp)
	}
	return sb.String()
}

func cmpNode(e Entry, node int) int { return e.Node - node }

// Signature is the canonical form of a [State]: the reduction key under
// which the sweep merges equivalent diagram nodes.
type Signature struct {
	hash    uint64
	entries []Entry
}

// Hash returns the structural hash of the canonical entries.
func (g Signature) Hash() uint64 { return g.hash }

// Equal reports whether two signatures describe the same canonical state.
// Hashes are compared first; entries are compared to rule out collisions.
func (g Signature) Equal(o Signature) bool {
	return g.hash == o.hash && slices.Equal(g.entries, o.entries)
}

// String renders the canonical entries on one line.
func (g Signature) String() string {
	parts := make([]string, len(g.entries))
	for i, e := range g.entries {
		parts[i] = fmt.Sprintf("%d:%d/%d", e.Node, e.Degree, e.Comp)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
