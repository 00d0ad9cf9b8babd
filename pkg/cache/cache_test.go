package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/numberlink/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()
	base := SummaryKeyOpts{Pairs: []int{1, 2}, Ordering: "diagonal", Limit: 10}

	key := k.SummaryKey("abc", base)
	if !strings.HasPrefix(key, "summary:") {
		t.Errorf("SummaryKey missing prefix: %s", key)
	}

	// pair order does not matter
	swapped := base
	swapped.Pairs = []int{2, 1}
	if k.SummaryKey("abc", swapped) != key {
		t.Error("SummaryKey should not depend on pair order")
	}
	if base.Pairs[0] != 1 || swapped.Pairs[0] != 2 {
		t.Error("SummaryKey must not reorder the caller's pairs")
	}

	variants := []SummaryKeyOpts{
		{Pairs: []int{1}, Ordering: "diagonal", Limit: 10},
		{Pairs: []int{1, 2}, Ordering: "rowmajor", Limit: 10},
		{Pairs: []int{1, 2}, Ordering: "diagonal", Limit: 0},
	}
	for _, v := range variants {
		if k.SummaryKey("abc", v) == key {
			t.Errorf("SummaryKey(%+v) collides with %+v", v, base)
		}
	}
	if k.SummaryKey("abd", base) == key {
		t.Error("Different boards should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	opts := SummaryKeyOpts{Ordering: "diagonal"}
	inner := NewDefaultKeyer()
	k := NewScopedKeyer(inner, "v1:")

	got := k.SummaryKey("abc", opts)
	want := "v1:" + inner.SummaryKey("abc", opts)
	if got != want {
		t.Errorf("SummaryKey = %q, want %q", got, want)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	k := NewScopedKeyer(nil, "dev:")
	key := k.SummaryKey("abc", SummaryKeyOpts{})
	if !strings.HasPrefix(key, "dev:summary:") {
		t.Errorf("SummaryKey with nil inner = %q", key)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "cache")
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if c.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", c.Dir(), dir)
	}

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, "key")
	if err != nil || !hit {
		t.Fatalf("Get(key) = hit %v, err %v", hit, err)
	}
	if string(data) != "value" {
		t.Errorf("Get(key) = %q, want %q", data, "value")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "key"); hit {
		t.Error("entry should be gone after Delete")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete of a missing key: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	if err := c.Set(ctx, "short", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should miss")
	}
	if _, err := os.Stat(c.path("short")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed")
	}

	// zero TTL never expires
	if err := c.Set(ctx, "forever", []byte("x"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without TTL should hit")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	path := c.path("bad")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "bad"); hit || err != nil {
		t.Errorf("corrupt entry: hit %v, err %v", hit, err)
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), time.Hour); err != nil {
			t.Fatalf("Set(%s): %v", k, err)
		}
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear removed %d entries, want 3", n)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("cache dir not empty after Clear: %d entries", len(entries))
	}

	// clearing an empty cache is fine
	if n, err := c.Clear(); err != nil || n != 0 {
		t.Errorf("second Clear = %d, %v", n, err)
	}
}

type recordingCacheHooks struct {
	hits, misses, sets int
	keyType            string
	size               int
}

func (h *recordingCacheHooks) OnCacheHit(_ context.Context, keyType string) {
	h.hits++
	h.keyType = keyType
}

func (h *recordingCacheHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.misses++
	h.keyType = keyType
}

func (h *recordingCacheHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.sets++
	h.keyType = keyType
	h.size = size
}

func TestObserved(t *testing.T) {
	hooks := &recordingCacheHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	ctx := context.Background()
	fc, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	c := NewObserved(fc, "summary")
	defer c.Close()

	_, _, _ = c.Get(ctx, "k")
	if err := c.Set(ctx, "k", []byte("12345"), time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}
	_, _, _ = c.Get(ctx, "k")
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	if hooks.misses != 1 || hooks.hits != 1 || hooks.sets != 1 {
		t.Errorf("hooks = %d misses, %d hits, %d sets", hooks.misses, hooks.hits, hooks.sets)
	}
	if hooks.keyType != "summary" {
		t.Errorf("keyType = %q", hooks.keyType)
	}
	if hooks.size != 5 {
		t.Errorf("size = %d, want 5", hooks.size)
	}
}
