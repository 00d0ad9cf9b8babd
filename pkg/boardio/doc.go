// Package boardio reads and writes Numberlink boards and solve summaries.
//
// # Overview
//
// A board is a width, a height and a list of terminal pairs. Pair k in a
// file becomes pair number k (1-based) of the [grid.Board]. Three formats
// are supported.
//
// # Text
//
// The compact format used by puzzle collections: a header line with the
// width, the height and the number of pairs, followed by one line per pair
// with the two terminal coordinates. Everything after '#' on a line is a
// comment.
//
//	# 3x3, one pair from corner to corner
//	3 3 1
//	0 0 2 2
//
// # TOML
//
//	width = 3
//	height = 3
//
//	[[pairs]]
//	from = [0, 0]
//	to = [2, 2]
//
// # JSON
//
//	{"width": 3, "height": 3, "pairs": [{"from": [0, 0], "to": [2, 2]}]}
//
// # Errors
//
// All readers return coded errors from [github.com/matzehuels/numberlink/pkg/errors]:
// INVALID_FORMAT for syntax problems, INVALID_BOARD when the contents do
// not describe a valid board, and TOO_LARGE for boards beyond
// [errors.MaxCells]. [Load] adds INVALID_PATH and FILE_NOT_FOUND.
//
// # Summaries
//
// A [Summary] is the serializable outcome of a solve: counts, diagram size
// and the first few solutions. The CLI prints it with --json and stores it
// in the solve cache.
package boardio
