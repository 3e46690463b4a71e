package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	webstorage "github.com/pleromasprings/website/internal/services/web/storage"
	webredis "github.com/pleromasprings/website/internal/services/web/storage/redis"
	websqlite "github.com/pleromasprings/website/internal/services/web/storage/sqlite"
)

// StoreConfig selects the cache backend. Redis wins when both are set.
type StoreConfig struct {
	SQLitePath    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// Enabled reports whether any backend is configured.
func (c StoreConfig) Enabled() bool {
	return strings.TrimSpace(c.SQLitePath) != "" || strings.TrimSpace(c.RedisAddr) != ""
}

// OpenStore opens the configured cache backend. It returns nil and no error
// when caching is disabled.
func OpenStore(ctx context.Context, cfg StoreConfig) (webstorage.Store, error) {
	if addr := strings.TrimSpace(cfg.RedisAddr); addr != "" {
		store, err := webredis.Open(ctx, webredis.Options{Addr: addr, Password: cfg.RedisPassword, DB: cfg.RedisDB})
		if err != nil {
			return nil, fmt.Errorf("open content cache redis store: %w", err)
		}
		return store, nil
	}
	path := strings.TrimSpace(cfg.SQLitePath)
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create content cache dir: %w", err)
		}
	}
	store, err := websqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open content cache sqlite store: %w", err)
	}
	return store, nil
}
