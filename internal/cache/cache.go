package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Cache is a tag-aware, TTL-bounded byte cache. Entries are stored under
// an exact key and associated with coarse invalidation tags; writers
// invalidate by tag, readers look up by key. Implementations must be
// safe for concurrent use.
type Cache interface {
	// Get returns the entry for key, reporting whether it was present
	// and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value under key, attaches it to tags and evicts it
	// after ttl regardless of tag invalidation.
	Set(ctx context.Context, key string, value []byte, tags []string, ttl time.Duration) error
	// Invalidate drops every entry associated with any of the tags.
	Invalidate(ctx context.Context, tags ...string) error
	// Flush drops all entries.
	Flush(ctx context.Context) error
	Close() error
}

// Remember implements the read-through pattern: return the cached value
// for key, or run fetch, store its result and return it. Values round
// trip through JSON, so cache hits are byte-identical to the previously
// stored result. Cache failures degrade to calling fetch directly; they
// never break the read path.
func Remember[T any](ctx context.Context, c Cache, key string, tags []string, ttl time.Duration, fetch func(ctx context.Context) (T, error)) (T, error) {
	var result T

	if raw, ok, err := c.Get(ctx, key); err == nil && ok {
		if err := json.Unmarshal(raw, &result); err == nil {
			return result, nil
		}
	}

	result, err := fetch(ctx)
	if err != nil {
		return result, err
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return result, fmt.Errorf("marshal cache entry %q: %w", key, err)
	}

	// Best effort: a failed store still returns the fresh result.
	_ = c.Set(ctx, key, raw, tags, ttl)

	return result, nil
}
