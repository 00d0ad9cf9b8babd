// Package diagram stores the shared binary decision diagram produced by the
// frontier sweep.
//
// # Overview
//
// A [Diagram] is an arena of decision nodes addressed by [Handle]. Two
// handles are reserved: [Reject] (0) and [Accept] (1). Every other node sits
// on a level equal to the edge position it decides, holds the frontier state
// it was created for, and has two children: the skip child (edge not
// selected) and the take child (edge selected).
//
// Nodes of one level occupy a contiguous handle range ([Diagram.LevelRange]).
// Children are always allocated after their parents, so descending handle
// order is a valid bottom-up order; [Diagram.Count] and [Diagram.Paths] rely
// on this.
//
// # Write-once nodes
//
// [Diagram.SetChildren] may be called exactly once per internal node. A
// second call, or a call on a sentinel or unknown handle, panics with an
// error wrapping [ErrFrozen] or [ErrInvalidHandle]: nodes are shared between
// many parents after deduplication, and rewriting one would silently change
// every path through it.
//
// # Queries
//
//	n := d.Count()               // number of root-to-Accept paths
//	for p := range d.Paths() {  // take positions of each accepted path
//		...
//	}
//
// # Rendering
//
// [ToDOT] converts a diagram to Graphviz DOT for debugging and [RenderSVG]
// renders DOT in-process with [github.com/goccy/go-graphviz].
package diagram
