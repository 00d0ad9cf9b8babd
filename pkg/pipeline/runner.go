package pipeline

import (
	"bytes"
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/numberlink/pkg/boardio"
	"github.com/matzehuels/numberlink/pkg/cache"
	"github.com/matzehuels/numberlink/pkg/grid"
)

// Runner encapsulates solving with caching.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Close releases the cache.
func (r *Runner) Close() error {
	return r.Cache.Close()
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// SolveWithCacheInfo solves b and reports whether the summary came from
// the cache.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, b *grid.Board, opts Options) (*boardio.Summary, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	boardHash := cache.Hash(boardio.Canonical(b))
	cacheKey := r.Keyer.SummaryKey(boardHash, opts.SummaryKeyOpts())

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			s, err := boardio.ReadSummaryJSON(bytes.NewReader(data))
			if err == nil {
				r.Logger.Debug("summary from cache", "key", cacheKey)
				return s, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
	}

	start := time.Now()
	res, err := Build(ctx, b, opts)
	if err != nil {
		return nil, false, err
	}
	s, err := boardio.NewSummary(res, opts.Ordering, opts.Limit)
	if err != nil {
		return nil, false, err
	}
	r.Logger.Info("solved board",
		"count", s.Count,
		"nodes", res.Stats.Nodes,
		"duration", time.Since(start).Round(time.Millisecond))

	var buf bytes.Buffer
	if err := boardio.WriteSummaryJSON(&buf, s); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, buf.Bytes(), cache.TTLSummary)
	}

	return s, false, nil // Cache miss
}

// Solve is a convenience wrapper that calls SolveWithCacheInfo and discards
// the cache hit info.
func (r *Runner) Solve(ctx context.Context, b *grid.Board, opts Options) (*boardio.Summary, error) {
	s, _, err := r.SolveWithCacheInfo(ctx, b, opts)
	return s, err
}
