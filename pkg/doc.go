// Package pkg provides the libraries behind the numberlink tool.
//
// # Overview
//
// A Numberlink puzzle is a grid with numbered terminal pairs. A routing joins
// each pair with a path of orthogonally adjacent cells; different paths never
// share a cell, and cells not on a path stay empty. The libraries here build
// a decision diagram of every routing with the frontier method: the board's
// edges are decided one at a time in a fixed order, and partial routings that
// look the same to the undecided edges are merged.
//
// # Architecture
//
//	Board file (text, TOML, JSON)
//	         ↓
//	    [boardio] package (parse and validate)
//	         ↓
//	    [grid] package (cells, edges, terminal pairs)
//	         ↓
//	    [ordering] package (edge order and frontier bookkeeping)
//	         ↓
//	    [sweep] package (level-by-level diagram construction)
//	         ↓
//	    [diagram] package (count, enumerate, draw)
//	         ↓
//	    [solution] package (per-pair paths of one routing)
//
// # Quick Start
//
//	b := grid.MustNew(3, 3, []grid.Pair{{From: grid.Point{X: 0, Y: 0}, To: grid.Point{X: 2, Y: 2}}})
//	ord, _ := ordering.New(b, ordering.Diagonal{})
//	res, _ := sweep.Build(context.Background(), b, ord)
//	fmt.Println(res.Diagram.Count()) // 12
//
//	for p := range res.Diagram.Paths() {
//	    sol, _ := solution.Decompose(b, solution.FromPositions(ord, p), res.Pairs)
//	    fmt.Print(sol)
//	}
//
// # Main Packages
//
// ## Core
//
// [grid] - The board graph: cells are nodes, orthogonal neighbours share an
// edge, terminals carry their pair number.
//
// [ordering] - Edge orderers (diagonal, row-major) and the per-position
// entering and closing node lists the sweep relies on.
//
// [frontier] - The state of a partial routing restricted to the frontier
// cells: degree and connected component of each, with a canonical signature
// for merging.
//
// [diagram] - The decision diagram arena: levels, children, the two terminal
// sentinels, path counting with math/big, path enumeration and DOT output.
//
// [sweep] - Builds a diagram from a board and an order.
//
// [solution] - Turns an accepted edge set back into per-pair paths and
// verifies it independently of the sweep.
//
// ## Infrastructure
//
// [pipeline] - Order, sweep and summarize with caching; used by the CLI.
//
// [boardio] - Board file formats and solve summaries.
//
// [cache] - Summary cache backends (file, null) with hook reporting.
//
// [observability] - Sweep and cache hooks for progress and metrics.
//
// [errors] - Coded errors and input validation at the file and CLI boundary.
//
// [buildinfo] - Version information injected at build time.
//
// # Testing
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/sweep/...    # Sweep tests, including the SAT cross-check
//	go test -run Example       # Examples only
package pkg
