package sweep

import (
	"fmt"

	"github.com/matzehuels/numberlink/pkg/frontier"
	"github.com/matzehuels/numberlink/pkg/grid"
	"github.com/matzehuels/numberlink/pkg/ordering"
)

// rules holds the per-board data the branch functions consult.
type rules struct {
	board  *grid.Board
	order  *ordering.Order
	routed []bool // by pair number; routed[0] is always false
}

// terminal returns the pair number of node id if that pair is routed in
// this sweep, 0 otherwise.
func (r *rules) terminal(id int) int {
	k := r.board.Node(id).Terminal
	if r.routed[k] {
		return k
	}
	return 0
}

// limit is the largest number of selected edges node id may have.
func (r *rules) limit(id int) int {
	if r.terminal(id) != 0 {
		return 1
	}
	return 2
}

// component is the label of a node entering the frontier: anchored to its
// pair for a routed terminal, a fresh anonymous fragment otherwise.
func (r *rules) component(id int) int {
	if k := r.terminal(id); k != 0 {
		return -k
	}
	return id
}

// skip derives the child state for not selecting the edge at pos, or nil if
// that branch is infeasible.
func (r *rules) skip(st *frontier.State, pos int) *frontier.State {
	e := r.board.Edge(r.order.EdgeAt(pos))
	c := st.Clone()
	for _, n := range [2]int{e.Node1, e.Node2} {
		if c.Find(n) < 0 {
			c.Add(n, 0, r.component(n))
		}
	}
	if !r.close(c, pos) {
		return nil
	}
	return c
}

// take derives the child state for selecting the edge at pos, or nil if
// that branch is infeasible.
func (r *rules) take(st *frontier.State, pos int) *frontier.State {
	e := r.board.Edge(r.order.EdgeAt(pos))
	c := st.Clone()
	for _, n := range [2]int{e.Node1, e.Node2} {
		p := c.Find(n)
		if p < 0 {
			c.Add(n, 1, r.component(n))
			continue
		}
		if c.DegreeAt(p) >= r.limit(n) {
			return nil
		}
		c.IncrementDegree(p)
	}

	ca := c.ComponentAt(c.Find(e.Node1))
	cb := c.ComponentAt(c.Find(e.Node2))
	switch {
	case ca == cb && ca >= 0:
		// loop inside one fragment
		return nil
	case ca == cb:
		// both halves of the same pair meet: the path is complete
	case ca < 0 && cb < 0:
		return nil
	case ca < 0:
		c.ReplaceComponent(cb, ca)
	default:
		c.ReplaceComponent(ca, cb)
	}

	if !r.close(c, pos) {
		return nil
	}
	return c
}

// close checks the final degree of every node whose last edge is at pos and
// removes those nodes from c. It reports false if any of them is illegal.
func (r *rules) close(c *frontier.State, pos int) bool {
	closing := r.order.Closing(pos)
	for _, n := range closing {
		p := c.Find(n)
		if p < 0 {
			panic(fmt.Sprintf("sweep: closing node %d at position %d is not on the frontier", n, pos))
		}
		deg := c.DegreeAt(p)
		if r.terminal(n) != 0 {
			if deg != 1 {
				return false
			}
		} else if deg == 1 {
			return false
		}
	}
	c.Delete(closing)
	return true
}
