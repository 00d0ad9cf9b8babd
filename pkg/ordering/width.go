package ordering

// Widths returns, for every position, the number of frontier nodes alive
// while that position's edge is processed: nodes that entered at or before
// pos and leave at or after pos. This is the size of the state the builder
// holds at each step.
func Widths(o *Order) []int {
	out := make([]int, o.Len())
	live := 0
	for pos := range out {
		live += len(o.entering[pos])
		out[pos] = live
		live -= len(o.closing[pos])
	}
	return out
}

// MaxWidth returns the largest value of [Widths], or 0 for an empty order.
func MaxWidth(o *Order) int {
	best := 0
	for _, w := range Widths(o) {
		best = max(best, w)
	}
	return best
}
