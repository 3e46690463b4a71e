package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/pleromasprings/website/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/pleromasprings/website/internal/services/web/storage"
	"github.com/pleromasprings/website/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for cached content payloads.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a content cache SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := "file:" + cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(context.Background(), sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetCacheEntry loads a cache payload and metadata by key.
func (s *Store) GetCacheEntry(ctx context.Context, cacheKey string) (webstorage.CacheEntry, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.CacheEntry{}, false, fmt.Errorf("storage is not configured")
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return webstorage.CacheEntry{}, false, fmt.Errorf("cache key is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT cache_key, scope, payload_json, stale, checked_at, refreshed_at, expires_at
		 FROM cache_entries
		 WHERE cache_key = ?`,
		cacheKey,
	)

	var entry webstorage.CacheEntry
	var staleInt, checkedAt, refreshedAt, expiresAt int64
	if err := row.Scan(
		&entry.CacheKey,
		&entry.Scope,
		&entry.PayloadBytes,
		&staleInt,
		&checkedAt,
		&refreshedAt,
		&expiresAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.CacheEntry{}, false, nil
		}
		return webstorage.CacheEntry{}, false, fmt.Errorf("get cache entry: %w", err)
	}

	entry.Stale = staleInt != 0
	entry.CheckedAt = unixMillisToTime(checkedAt)
	entry.RefreshedAt = unixMillisToTime(refreshedAt)
	entry.ExpiresAt = unixMillisToTime(expiresAt)
	return entry, true, nil
}

// PutCacheEntry upserts a cache payload and metadata by key.
func (s *Store) PutCacheEntry(ctx context.Context, entry webstorage.CacheEntry) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	entry, err := normalizeEntry(entry)
	if err != nil {
		return err
	}

	_, err = s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO cache_entries (
		    cache_key, scope, payload_json, stale, checked_at, refreshed_at, expires_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(cache_key) DO UPDATE SET
		    scope = excluded.scope,
		    payload_json = excluded.payload_json,
		    stale = excluded.stale,
		    checked_at = excluded.checked_at,
		    refreshed_at = excluded.refreshed_at,
		    expires_at = excluded.expires_at`,
		entry.CacheKey,
		entry.Scope,
		entry.PayloadBytes,
		boolToInt(entry.Stale),
		timeToUnixMillis(entry.CheckedAt),
		timeToUnixMillis(entry.RefreshedAt),
		timeToUnixMillis(entry.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put cache entry: %w", err)
	}
	return nil
}

// DeleteCacheEntry removes a cache entry by key.
func (s *Store) DeleteCacheEntry(ctx context.Context, cacheKey string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	cacheKey = strings.TrimSpace(cacheKey)
	if cacheKey == "" {
		return fmt.Errorf("cache key is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM cache_entries WHERE cache_key = ?`, cacheKey); err != nil {
		return fmt.Errorf("delete cache entry: %w", err)
	}
	return nil
}

// MarkScopeStale marks every row of one scope stale.
func (s *Store) MarkScopeStale(ctx context.Context, scope string, checkedAt time.Time) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return fmt.Errorf("cache scope is required")
	}
	if checkedAt.IsZero() {
		checkedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE cache_entries
		 SET stale = 1,
		     checked_at = CASE WHEN checked_at < ? THEN ? ELSE checked_at END
		 WHERE scope = ?`,
		timeToUnixMillis(checkedAt),
		timeToUnixMillis(checkedAt),
		scope,
	)
	if err != nil {
		return fmt.Errorf("mark cache scope stale: %w", err)
	}
	return nil
}

// PruneExpired deletes rows that expired at or before now.
func (s *Store) PruneExpired(ctx context.Context, now time.Time) (int64, error) {
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	result, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM cache_entries WHERE expires_at > 0 AND expires_at <= ?`,
		timeToUnixMillis(now),
	)
	if err != nil {
		return 0, fmt.Errorf("prune cache entries: %w", err)
	}
	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("count pruned cache entries: %w", err)
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

func boolToInt(value bool) int64 {
	if value {
		return 1
	}
	return 0
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ webstorage.Store = (*Store)(nil)
