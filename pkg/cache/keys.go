package cache

import "slices"

// SummaryKeyOpts are the solve options that change a summary.
type SummaryKeyOpts struct {
	Pairs    []int  // routed pairs, nil for all
	Ordering string // edge orderer name
	Limit    int    // number of solutions kept in the summary
}

// Keyer derives cache keys.
type Keyer interface {
	// SummaryKey returns the key of a solve summary for the board whose
	// canonical encoding hashes to boardHash.
	SummaryKey(boardHash string, opts SummaryKeyOpts) string
}

// DefaultKeyer hashes every option into the key.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// SummaryKey implements [Keyer].
func (DefaultKeyer) SummaryKey(boardHash string, opts SummaryKeyOpts) string {
	pairs := slices.Clone(opts.Pairs)
	slices.Sort(pairs)
	return hashKey("summary", boardHash, pairs, opts.Ordering, opts.Limit)
}
