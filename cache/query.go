package cache

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"storefront/logger"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/singleflight"
)

// QueryCache is a read-through cache for API queries with tag invalidation.
// Concurrent fetches of the same key share one upstream call. A caller that gives up
// does not cancel the shared call for the others.
type QueryCache struct {
	store Store
	ttl   time.Duration
	group singleflight.Group
}

func NewQueryCache(store Store, ttl time.Duration) *QueryCache {
	return &QueryCache{store: store, ttl: ttl}
}

// Key digests the query parts into a fixed-size cache key.
func Key(parts ...string) string {
	sum := blake2b.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(sum[:])
}

// Fetch returns the cached value for key or calls fn and caches its result under tags.
// A nil cache always calls fn.
func Fetch[T any](ctx context.Context, qc *QueryCache, key string, tags []string, fn func(context.Context) (T, error)) (T, error) {
	var out T
	if qc == nil {
		return fn(ctx)
	}

	if raw, ok, err := qc.store.Get(ctx, key); err != nil {
		logger.Log.Warn("cache read failed", "key", key, "error", err)
	} else if ok {
		if err := json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
		logger.Log.Warn("cache entry undecodable, refetching", "key", key)
	}

	// The shared call outlives any single caller; each caller still stops on its own ctx.
	ch := qc.group.DoChan(key, func() (interface{}, error) {
		fetchCtx := context.WithoutCancel(ctx)
		v, err := fn(fetchCtx)
		if err != nil {
			return nil, err
		}
		b, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		if err := qc.store.Set(fetchCtx, key, b, tags, qc.ttl); err != nil {
			logger.Log.Warn("cache write failed", "key", key, "error", err)
		}
		return b, nil
	})

	select {
	case <-ctx.Done():
		return out, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return out, res.Err
		}
		if err := json.Unmarshal(res.Val.([]byte), &out); err != nil {
			return out, err
		}
		return out, nil
	}
}

// Invalidate drops every cached query carrying any of tags.
func (qc *QueryCache) Invalidate(ctx context.Context, tags ...string) {
	if qc == nil || len(tags) == 0 {
		return
	}
	n, err := qc.store.InvalidateTags(ctx, tags...)
	if err != nil {
		logger.Log.Warn("cache invalidation failed", "tags", tags, "error", err)
		return
	}
	logger.Log.Debug("cache invalidated", "tags", tags, "entries", n)
}

// Store exposes the underlying store, e.g. for the purge scheduler.
func (qc *QueryCache) Store() Store {
	return qc.store
}
