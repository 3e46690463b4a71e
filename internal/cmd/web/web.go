// Package web parses public website flags and launches the server.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	entrypoint "github.com/pleromasprings/website/internal/platform/cmd"
	"github.com/pleromasprings/website/internal/services/web"
	"github.com/pleromasprings/website/internal/services/web/integration/cache"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr          string        `env:"PLEROMA_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	ContentAPIURL     string        `env:"PLEROMA_WEB_CONTENT_API_URL" envDefault:"http://127.0.0.1:8000"`
	MediaBaseURL      string        `env:"PLEROMA_WEB_MEDIA_BASE_URL"`
	ContentTimeout    time.Duration `env:"PLEROMA_WEB_CONTENT_TIMEOUT" envDefault:"5s"`
	SiteURL           string        `env:"PLEROMA_WEB_SITE_URL" envDefault:"http://localhost:8080"`
	CacheDBPath       string        `env:"PLEROMA_WEB_CACHE_DB"`
	RedisAddr         string        `env:"PLEROMA_WEB_REDIS_ADDR"`
	RedisPassword     string        `env:"PLEROMA_WEB_REDIS_PASSWORD"`
	RedisDB           int           `env:"PLEROMA_WEB_REDIS_DB" envDefault:"0"`
	WarmSchedule      string        `env:"PLEROMA_WEB_WARM_SCHEDULE" envDefault:"@every 5m"`
	AssetsDir         string        `env:"PLEROMA_WEB_ASSETS_DIR"`
	FormRatePerMinute int           `env:"PLEROMA_WEB_FORM_RATE_PER_MINUTE" envDefault:"6"`
	FormRateBurst     int           `env:"PLEROMA_WEB_FORM_RATE_BURST" envDefault:"3"`
	TrustProxyHeaders bool          `env:"PLEROMA_WEB_TRUST_PROXY_HEADERS" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config. Flags win.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.ContentAPIURL, "content-api-url", cfg.ContentAPIURL, "Content API base URL")
	fs.StringVar(&cfg.MediaBaseURL, "media-base-url", cfg.MediaBaseURL, "Base URL for relative media paths (default: content API origin)")
	fs.DurationVar(&cfg.ContentTimeout, "content-timeout", cfg.ContentTimeout, "Timeout for one content API request")
	fs.StringVar(&cfg.SiteURL, "site-url", cfg.SiteURL, "Public site origin used in feeds and the sitemap")
	fs.StringVar(&cfg.CacheDBPath, "cache-db", cfg.CacheDBPath, "SQLite content cache path (empty disables)")
	fs.StringVar(&cfg.RedisAddr, "redis-addr", cfg.RedisAddr, "Redis content cache address (wins over -cache-db)")
	fs.IntVar(&cfg.RedisDB, "redis-db", cfg.RedisDB, "Redis database number")
	fs.StringVar(&cfg.WarmSchedule, "warm-schedule", cfg.WarmSchedule, "Cron schedule of the cache warm-up job")
	fs.StringVar(&cfg.AssetsDir, "assets-dir", cfg.AssetsDir, "Directory served under /assets/")
	fs.IntVar(&cfg.FormRatePerMinute, "form-rate", cfg.FormRatePerMinute, "Form posts allowed per client per minute (0 disables)")
	fs.IntVar(&cfg.FormRateBurst, "form-burst", cfg.FormRateBurst, "Form post burst per client")
	fs.BoolVar(&cfg.TrustProxyHeaders, "trust-proxy-headers", cfg.TrustProxyHeaders, "Trust X-Forwarded-Proto and X-Forwarded-For")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ServerConfig maps the command configuration onto the server inputs.
func (c Config) ServerConfig(logger *log.Logger) web.Config {
	return web.Config{
		HTTPAddr:       c.HTTPAddr,
		ContentAPIURL:  c.ContentAPIURL,
		ContentTimeout: c.ContentTimeout,
		MediaBaseURL:   c.MediaBaseURL,
		SiteURL:        c.SiteURL,
		Cache: cache.StoreConfig{
			SQLitePath:    c.CacheDBPath,
			RedisAddr:     c.RedisAddr,
			RedisPassword: c.RedisPassword,
			RedisDB:       c.RedisDB,
		},
		WarmSchedule:      c.WarmSchedule,
		AssetsDir:         c.AssetsDir,
		FormRatePerMinute: c.FormRatePerMinute,
		FormRateBurst:     c.FormRateBurst,
		TrustProxyHeaders: c.TrustProxyHeaders,
		Logger:            logger,
	}
}

// Run starts the public website server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, cfg.ServerConfig(log.Default()))
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
