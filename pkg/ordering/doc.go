// Package ordering provides deterministic edge orders for the frontier
// sweep of a grid board.
//
// # The Ordering Problem
//
// The decision-diagram builder processes edges one at a time. At any point
// the frontier is the set of nodes that have at least one processed and one
// unprocessed incident edge; the builder's state space, and hence the number
// of diagram nodes per level, grows exponentially with the frontier width.
// A good edge order keeps the frontier narrow. Finding the order with the
// minimum maximal width is hard in general; for grids a sweep along one
// dimension already bounds the width by the other dimension.
//
// This package provides two orderers:
//
//   - [Diagonal]: anti-diagonal zig-zag from the top-left to the bottom-right
//     corner. The frontier never holds more than the cells of two adjacent
//     diagonals, i.e. at most 2×min(width, height) nodes. This is the default.
//   - [RowMajor]: row by row, right edge before down edge. The frontier holds
//     at most width+1 nodes, so it competes with Diagonal on boards that are
//     taller than wide.
//
// # Determinism
//
// Orders are pure functions of the board geometry. Calling an orderer twice
// on the same board returns identical slices; the builder relies on this to
// replay an order when materialising solutions.
//
// # Usage
//
//	order, err := ordering.New(board, ordering.Diagonal{})
//	if err != nil {
//	    return err
//	}
//	for pos := 0; pos < order.Len(); pos++ {
//	    e := board.Edge(order.EdgeAt(pos))
//	    leaving := order.Closing(pos) // nodes whose last edge is e
//	    _ = leaving
//	}
//
// [Widths] and [MaxWidth] measure the frontier width of any order, which is
// useful to compare orderers on a given board.
package ordering
