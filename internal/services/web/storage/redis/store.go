package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	webstorage "github.com/pleromasprings/website/internal/services/web/storage"
)

const defaultPrefix = "pleroma:cache:"

const (
	fieldScope       = "scope"
	fieldPayload     = "payload"
	fieldStale       = "stale"
	fieldCheckedAt   = "checked_at"
	fieldRefreshedAt = "refreshed_at"
	fieldExpiresAt   = "expires_at"
)

// Store keeps each cache entry in a hash that Redis expires on its own. A set
// per scope tracks member keys for MarkScopeStale.
type Store struct {
	client *goredis.Client
	prefix string
}

// Options selects the Redis server holding the cache.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Open connects to the Redis server described by opts and verifies it
// answers.
func Open(ctx context.Context, opts Options) (*Store, error) {
	opts.Addr = strings.TrimSpace(opts.Addr)
	if opts.Addr == "" {
		return nil, fmt.Errorf("redis address is required")
	}
	if opts.DB < 0 {
		return nil, fmt.Errorf("redis db must not be negative")
	}
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	return New(client, ""), nil
}

// New wraps an existing client. An empty prefix uses the default namespace.
func New(client *goredis.Client, prefix string) *Store {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Store{client: client, prefix: prefix}
}

// Close releases the Redis connection pool.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *Store) entryKey(cacheKey string) string { return s.prefix + "entry:" + cacheKey }

func (s *Store) scopeKey(scope string) string { return s.prefix + "scope:" + scope }

// GetCacheEntry loads a cache payload and metadata by key.
func (s *Store) GetCacheEntry(ctx context.Context, cacheKey string) (webstorage.CacheEntry, bool, error) {
	if s == nil || s.client == nil {
		return webstorage.CacheEntry{}, false, fmt.Errorf("storage is not configured")
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return webstorage.CacheEntry{}, false, fmt.Errorf("cache key is required")
	}
	fields, err := s.client.HGetAll(ctx, s.entryKey(cacheKey)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return webstorage.CacheEntry{}, false, nil
		}
		return webstorage.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}
	if len(fields) == 0 {
		return webstorage.CacheEntry{}, false, nil
	}
	entry, err := decodeEntry(cacheKey, fields)
	if err != nil {
		return webstorage.CacheEntry{}, false, fmt.Errorf("decode cache entry: %w", err)
	}
	return entry, true, nil
}

// PutCacheEntry replaces a cache entry and registers it with its scope.
func (s *Store) PutCacheEntry(ctx context.Context, entry webstorage.CacheEntry) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	entry, err := normalizeEntry(entry)
	if err != nil {
		return err
	}
	key := s.entryKey(entry.CacheKey)
	_, err = s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.Del(ctx, key)
		pipe.HSet(ctx, key, encodeEntry(entry))
		if !entry.ExpiresAt.IsZero() {
			pipe.PExpireAt(ctx, key, entry.ExpiresAt)
		}
		pipe.SAdd(ctx, s.scopeKey(entry.Scope), entry.CacheKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// DeleteCacheEntry removes a cache entry by key.
func (s *Store) DeleteCacheEntry(ctx context.Context, cacheKey string) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	if err := s.client.Del(ctx, s.entryKey(cacheKey)).Err(); err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

// MarkScopeStale flags every live entry of scope and forgets members that
// Redis already expired.
func (s *Store) MarkScopeStale(ctx context.Context, scope string, checkedAt time.Time) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("storage is not configured")
	}
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return fmt.Errorf("cache scope is required")
	}
	if checkedAt.IsZero() {
		checkedAt = time.Now().UTC()
	}
	members, err := s.client.SMembers(ctx, s.scopeKey(scope)).Result()
	if err != nil {
		return fmt.Errorf("list cache scope: %w", err)
	}
	for _, member := range members {
		err := markStaleScript.Run(ctx, s.client,
			[]string{s.entryKey(member), s.scopeKey(scope)},
			member, formatMillis(checkedAt),
		).Err()
		if err != nil && !errors.Is(err, goredis.Nil) {
			return fmt.Errorf("mark cache entry stale: %w", err)
		}
	}
	return nil
}

// markStaleScript flags an entry only while its hash still exists, so a key
// that expires mid-refresh is never recreated without a TTL. A missing entry
// is dropped from its scope set instead.
var markStaleScript = goredis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	redis.call("SREM", KEYS[2], ARGV[1])
	return 0
end
redis.call("HSET", KEYS[1], "` + fieldStale + `", "1", "` + fieldCheckedAt + `", ARGV[2])
return 1
`)

// PruneExpired deletes entries whose stored expiry has passed. Redis expires
// keys itself, so this only catches entries written without a key TTL or
// read back through a lagging replica.
func (s *Store) PruneExpired(ctx context.Context, now time.Time) (int64, error) {
	if s == nil || s.client == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	var removed int64
	iter := s.client.Scan(ctx, 0, s.prefix+"entry:*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		raw, err := s.client.HGet(ctx, key, fieldExpiresAt).Result()
		if errors.Is(err, goredis.Nil) {
			continue
		}
		if err != nil {
			return removed, fmt.Errorf("read cache expiry: %w", err)
		}
		expiresAt, err := parseMillis(raw)
		if err != nil || expiresAt.IsZero() || now.Before(expiresAt) {
			continue
		}
		deleted, err := s.client.Del(ctx, key).Result()
		if err != nil {
			return removed, fmt.Errorf("prune cache entry: %w", err)
		}
		removed += deleted
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("scan cache entries: %w", err)
	}
	return removed, nil
}

func normalizeEntry(entry webstorage.CacheEntry) (webstorage.CacheEntry, error) {
	entry.CacheKey = strings.TrimSpace(entry.CacheKey)
	if entry.CacheKey == "" {
		return entry, fmt.Errorf("cache key is required")
	}
	entry.Scope = strings.TrimSpace(entry.Scope)
	if entry.Scope == "" {
		return entry, fmt.Errorf("cache scope is required")
	}
	if len(entry.PayloadBytes) == 0 {
		return entry, fmt.Errorf("cache payload is required")
	}
	if entry.CheckedAt.IsZero() {
		entry.CheckedAt = time.Now().UTC()
	}
	if entry.RefreshedAt.IsZero() {
		entry.RefreshedAt = entry.CheckedAt
	}
	return entry, nil
}

func encodeEntry(entry webstorage.CacheEntry) map[string]any {
	stale := "0"
	if entry.Stale {
		stale = "1"
	}
	return map[string]any{
		fieldScope:       entry.Scope,
		fieldPayload:     entry.PayloadBytes,
		fieldStale:       stale,
		fieldCheckedAt:   formatMillis(entry.CheckedAt),
		fieldRefreshedAt: formatMillis(entry.RefreshedAt),
		fieldExpiresAt:   formatMillis(entry.ExpiresAt),
	}
}

func decodeEntry(cacheKey string, fields map[string]string) (webstorage.CacheEntry, error) {
	entry := webstorage.CacheEntry{
		CacheKey:     cacheKey,
		Scope:        fields[fieldScope],
		PayloadBytes: []byte(fields[fieldPayload]),
		Stale:        fields[fieldStale] == "1",
	}
	var err error
	if entry.CheckedAt, err = parseMillis(fields[fieldCheckedAt]); err != nil {
		return webstorage.CacheEntry{}, err
	}
	if entry.RefreshedAt, err = parseMillis(fields[fieldRefreshedAt]); err != nil {
		return webstorage.CacheEntry{}, err
	}
	if entry.ExpiresAt, err = parseMillis(fields[fieldExpiresAt]); err != nil {
		return webstorage.CacheEntry{}, err
	}
	return entry, nil
}

func formatMillis(value time.Time) string {
	if value.IsZero() {
		return "0"
	}
	return strconv.FormatInt(value.UTC().UnixMilli(), 10)
}

func parseMillis(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "0" {
		return time.Time{}, nil
	}
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", raw, err)
	}
	return time.UnixMilli(millis).UTC(), nil
}

var _ webstorage.Store = (*Store)(nil)
