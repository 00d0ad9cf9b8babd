package cache

// ScopedKeyer wraps a Keyer with a prefix. The CLI scopes keys by release so
// that a summary written by one version is never served to another.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1.2.0:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SummaryKey generates a prefixed summary key.
func (k *ScopedKeyer) SummaryKey(boardHash string, opts SummaryKeyOpts) string {
	return k.prefix + k.inner.SummaryKey(boardHash, opts)
}
