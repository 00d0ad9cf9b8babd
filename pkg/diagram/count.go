package diagram

import (
	"iter"
	"math/big"
	"slices"
)

// Count returns the number of distinct root-to-Accept paths. Unlinked
// children count as Reject.
func (d *Diagram) Count() *big.Int {
	counts := make([]*big.Int, len(d.nodes))
	zero, one := new(big.Int), big.NewInt(1)
	counts[Reject], counts[Accept] = zero, one

	get := func(h Handle) *big.Int {
		if h == unset {
			return zero
		}
		return counts[h]
	}
	// children are allocated after their parents
	for h := len(d.nodes) - 1; h > int(Accept); h-- {
		n := d.nodes[h]
		s, t := get(n.skip), get(n.take)
		switch {
		case s.Sign() == 0:
			counts[h] = t
		case t.Sign() == 0:
			counts[h] = s
		default:
			counts[h] = new(big.Int).Add(s, t)
		}
	}
	return new(big.Int).Set(counts[d.root])
}

// Satisfiable reports whether at least one path reaches Accept.
func (d *Diagram) Satisfiable() bool {
	return d.live()[d.root]
}

// live marks the handles from which Accept is reachable.
func (d *Diagram) live() []bool {
	live := make([]bool, len(d.nodes))
	live[Accept] = true
	for h := len(d.nodes) - 1; h > int(Accept); h-- {
		n := d.nodes[h]
		live[h] = (n.skip != unset && live[n.skip]) || (n.take != unset && live[n.take])
	}
	return live
}

// Paths yields the take positions of every root-to-Accept path in ascending
// order. Paths are produced depth-first, skip branch before take branch, and
// subtrees that cannot reach Accept are never entered. Each yielded slice is
// owned by the caller.
func (d *Diagram) Paths() iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		live := d.live()
		var path []int
		var walk func(h Handle) bool
		walk = func(h Handle) bool {
			if h == Accept {
				return yield(slices.Clone(path))
			}
			if h == unset || !live[h] {
				return true
			}
			n := d.nodes[h]
			if !walk(n.skip) {
				return false
			}
			path = append(path, n.level)
			ok := walk(n.take)
			path = path[:len(path)-1]
			return ok
		}
		walk(d.root)
	}
}

// First returns the first path yielded by [Diagram.Paths], or false if the
// diagram has none.
func (d *Diagram) First() ([]int, bool) {
	for p := range d.Paths() {
		return p, true
	}
	return nil, false
}
