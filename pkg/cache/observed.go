package cache

import (
	"context"
	"time"

	"github.com/matzehuels/numberlink/pkg/observability"
)

// Observed reports the traffic of an inner cache to the registered
// [observability.CacheHooks]. keyType labels every event.
type Observed struct {
	inner   Cache
	keyType string
}

// NewObserved wraps inner.
func NewObserved(inner Cache, keyType string) *Observed {
	return &Observed{inner: inner, keyType: keyType}
}

// Get implements [Cache].
func (o *Observed) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok, err := o.inner.Get(ctx, key)
	if err == nil {
		if ok {
			observability.Cache().OnCacheHit(ctx, o.keyType)
		} else {
			observability.Cache().OnCacheMiss(ctx, o.keyType)
		}
	}
	return data, ok, err
}

// Set implements [Cache].
func (o *Observed) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if err := o.inner.Set(ctx, key, data, ttl); err != nil {
		return err
	}
	observability.Cache().OnCacheSet(ctx, o.keyType, len(data))
	return nil
}

// Delete implements [Cache].
func (o *Observed) Delete(ctx context.Context, key string) error {
	return o.inner.Delete(ctx, key)
}

// Close implements [Cache].
func (o *Observed) Close() error { return o.inner.Close() }

var _ Cache = (*Observed)(nil)
