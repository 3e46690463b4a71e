package web

import (
	"flag"
	"log"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8080" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8080")
	}
	if cfg.ContentAPIURL != "http://127.0.0.1:8000" {
		t.Fatalf("ContentAPIURL = %q", cfg.ContentAPIURL)
	}
	if cfg.ContentTimeout != 5*time.Second {
		t.Fatalf("ContentTimeout = %s, want 5s", cfg.ContentTimeout)
	}
	if cfg.WarmSchedule != "@every 5m" {
		t.Fatalf("WarmSchedule = %q", cfg.WarmSchedule)
	}
	if cfg.FormRatePerMinute != 6 || cfg.FormRateBurst != 3 {
		t.Fatalf("form rate = %d/%d, want 6/3", cfg.FormRatePerMinute, cfg.FormRateBurst)
	}
	if cfg.CacheDBPath != "" || cfg.RedisAddr != "" {
		t.Fatalf("cache should be disabled by default: %+v", cfg)
	}
	if cfg.TrustProxyHeaders {
		t.Fatal("TrustProxyHeaders = true, want false")
	}
}

func TestParseConfigReadsEnvironment(t *testing.T) {
	t.Setenv("PLEROMA_WEB_CONTENT_API_URL", "https://api.pleroma.test")
	t.Setenv("PLEROMA_WEB_CONTENT_TIMEOUT", "2s")
	t.Setenv("PLEROMA_WEB_REDIS_ADDR", "redis:6379")
	t.Setenv("PLEROMA_WEB_REDIS_DB", "2")
	t.Setenv("PLEROMA_WEB_TRUST_PROXY_HEADERS", "true")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.ContentAPIURL != "https://api.pleroma.test" {
		t.Fatalf("ContentAPIURL = %q", cfg.ContentAPIURL)
	}
	if cfg.ContentTimeout != 2*time.Second {
		t.Fatalf("ContentTimeout = %s, want 2s", cfg.ContentTimeout)
	}
	if cfg.RedisAddr != "redis:6379" || cfg.RedisDB != 2 {
		t.Fatalf("redis = %q db %d", cfg.RedisAddr, cfg.RedisDB)
	}
	if !cfg.TrustProxyHeaders {
		t.Fatal("TrustProxyHeaders = false, want true")
	}
}

func TestParseConfigFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("PLEROMA_WEB_HTTP_ADDR", "0.0.0.0:8081")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-http-addr", "127.0.0.1:9002", "-cache-db", "data/cache.db"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9002" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9002")
	}
	if cfg.CacheDBPath != "data/cache.db" {
		t.Fatalf("CacheDBPath = %q", cfg.CacheDBPath)
	}
}

func TestParseConfigRejectsBadEnvironment(t *testing.T) {
	t.Setenv("PLEROMA_WEB_CONTENT_TIMEOUT", "soon")

	fs := flag.NewFlagSet("web", flag.ContinueOnError)
	if _, err := ParseConfig(fs, nil); err == nil {
		t.Fatal("expected error for unparsable duration")
	}
}

func TestServerConfigMapsCacheBackend(t *testing.T) {
	t.Parallel()

	cfg := Config{HTTPAddr: ":8080", CacheDBPath: "cache.db", RedisAddr: "redis:6379", RedisPassword: "secret", RedisDB: 1}
	logger := log.New(log.Writer(), "", 0)
	got := cfg.ServerConfig(logger)
	if got.HTTPAddr != ":8080" || got.Logger != logger {
		t.Fatalf("server config = %+v", got)
	}
	if got.Cache.SQLitePath != "cache.db" || got.Cache.RedisAddr != "redis:6379" || got.Cache.RedisPassword != "secret" || got.Cache.RedisDB != 1 {
		t.Fatalf("cache config = %+v", got.Cache)
	}
}
