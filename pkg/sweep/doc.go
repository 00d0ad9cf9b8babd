// Package sweep builds the decision diagram of a routing board with the
// frontier method.
//
// # Overview
//
// [Build] processes the board's edges in the positions fixed by an
// [ordering.Order]. Level i of the diagram holds one node per distinct
// frontier signature reachable after deciding the first i edges. For every
// node of level i the builder derives two children:
//
//   - skip: edge i is not selected. Its endpoints join the frontier with
//     degree 0 if they are new.
//   - take: edge i is selected. Endpoint degrees grow by one and the two
//     path fragments meeting at the edge are merged.
//
// A branch is sent to [diagram.Reject] as soon as it breaks a rule:
//
//   - a terminal would get a second selected edge, any other cell a third;
//   - the edge would close a loop of one anonymous fragment;
//   - the edge would join fragments anchored to two different pairs;
//   - a node leaving the frontier ends with the wrong degree (1 for a
//     terminal, 0 or 2 otherwise).
//
// Surviving children are canonicalized and looked up in a per-level table
// keyed by the signature hash, so histories with the same future share one
// node. At the last position surviving children are [diagram.Accept].
//
// # Pair subsets
//
// [WithPairs] restricts routing to some pairs. Terminals of the other pairs
// are treated as ordinary cells: degree 0 or 2 and an anonymous component.
//
// # Failure semantics
//
// A board without a solution is not an error; its diagram's root reaches
// only Reject. Build returns errors for invalid input and for a cancelled
// context (checked between levels). Bookkeeping faults panic.
package sweep
