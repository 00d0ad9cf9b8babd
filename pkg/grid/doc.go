// Package grid provides the immutable board graph of a Numberlink-style
// routing puzzle.
//
// # Overview
//
// A [Board] is a width×height grid of cells. Every cell is a [Node] and every
// pair of orthogonally adjacent cells is joined by an undirected [Edge]. Some
// cells are terminals: the two endpoints of one numbered connection [Pair].
// A solution selects a subset of edges forming one simple path per pair.
//
// # Identifiers
//
// Node ids are row-major (y*width + x). Edge ids are assigned while scanning
// cells in the same order, emitting the edge to the right neighbor before the
// edge to the neighbor below. Terminal ids are pair numbers starting at 1;
// both endpoints of pair k carry terminal id k, and 0 means "not a terminal".
//
// # Construction
//
// Use [New] to build a board from its dimensions and pairs. New validates
// its input and returns sentinel errors ([ErrInvalidSize], [ErrNoPairs],
// [ErrTerminalOutOfBounds], [ErrDuplicateTerminal]). [MustNew] panics
// instead and is meant for literals and tests.
//
// # Faults
//
// Accessors take ids that callers derive from the board itself. An
// out-of-range id is a programming error and panics rather than returning
// an error, since the decision-diagram builder would otherwise silently
// corrupt its shared state.
//
// # Concurrency
//
// A Board is never mutated after construction and is safe for concurrent
// reads.
package grid
