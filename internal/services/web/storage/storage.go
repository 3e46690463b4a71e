package storage

import (
	"context"
	"time"
)

// CacheEntry stores one content API payload and its freshness metadata.
type CacheEntry struct {
	CacheKey     string
	Scope        string
	PayloadBytes []byte
	Stale        bool
	CheckedAt    time.Time
	RefreshedAt  time.Time
	ExpiresAt    time.Time
}

// Expired reports whether the entry has passed its expiry at now. Entries
// without an expiry never expire.
func (e CacheEntry) Expired(now time.Time) bool {
	return !e.ExpiresAt.IsZero() && !now.Before(e.ExpiresAt)
}

// Store is the persistence contract for the content cache.
type Store interface {
	Close() error
	GetCacheEntry(ctx context.Context, cacheKey string) (CacheEntry, bool, error)
	PutCacheEntry(ctx context.Context, entry CacheEntry) error
	DeleteCacheEntry(ctx context.Context, cacheKey string) error
	// MarkScopeStale flags every entry of scope so the next read refetches.
	MarkScopeStale(ctx context.Context, scope string, checkedAt time.Time) error
	// PruneExpired deletes entries whose expiry is at or before now and
	// returns how many were removed.
	PruneExpired(ctx context.Context, now time.Time) (int64, error)
}
