package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pleromasprings/website/internal/platform/timeouts"
	"github.com/pleromasprings/website/internal/services/web/app"
	"github.com/pleromasprings/website/internal/services/web/integration/cache"
	"github.com/pleromasprings/website/internal/services/web/integration/contentapi"
	"github.com/pleromasprings/website/internal/services/web/jobs"
	"github.com/pleromasprings/website/internal/services/web/modules"
	"github.com/pleromasprings/website/internal/services/web/platform/metrics"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/platform/pagerender"
	"github.com/pleromasprings/website/internal/services/web/platform/ratelimit"
	"github.com/pleromasprings/website/internal/services/web/platform/requestmeta"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
	"github.com/pleromasprings/website/internal/services/web/static"
	webstorage "github.com/pleromasprings/website/internal/services/web/storage"
)

// Config defines the inputs for the public website server.
type Config struct {
	HTTPAddr string
	// ContentAPIURL is the content API root. Empty leaves every content
	// section in its unavailable state.
	ContentAPIURL  string
	ContentTimeout time.Duration
	// MediaBaseURL resolves relative media paths. Empty uses the API origin.
	MediaBaseURL string
	// SiteURL is the public origin used in the feed, sitemap and robots.txt.
	SiteURL string
	Cache   cache.StoreConfig
	// WarmSchedule is the cron schedule of the cache warm-up job.
	WarmSchedule string
	// AssetsDir is served under /assets/ when set.
	AssetsDir         string
	FormRatePerMinute int
	FormRateBurst     int
	TrustProxyHeaders bool
	// Site overrides the embedded site copy.
	Site   *sitecontent.Site
	Logger *log.Logger
}

// Server hosts the public website HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *log.Logger
	cacheStore webstorage.Store
	jobs       *jobs.Scheduler
}

// NewServer builds a configured web server. Nothing listens until
// ListenAndServe.
func NewServer(ctx context.Context, config Config) (*Server, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	site := sitecontent.Default()
	if config.Site != nil {
		site = *config.Site
	}

	m, err := metrics.New(nil)
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}

	s := &Server{httpAddr: httpAddr, logger: logger}
	var gateway modules.Gateway
	mediaBase := strings.TrimSpace(config.MediaBaseURL)
	if apiURL := strings.TrimSpace(config.ContentAPIURL); apiURL != "" {
		timeout := config.ContentTimeout
		if timeout <= 0 {
			timeout = timeouts.ContentRequest
		}
		client, err := contentapi.New(apiURL, timeout, contentapi.WithObserver(m))
		if err != nil {
			return nil, fmt.Errorf("init content api client: %w", err)
		}
		if mediaBase == "" {
			mediaBase = client.MediaBase()
		}
		store, err := cache.OpenStore(ctx, config.Cache)
		if err != nil {
			return nil, err
		}
		s.cacheStore = store
		content := cache.New(client, store, cache.WithLookupObserver(m), cache.WithLogger(logger))
		if content.Enabled() {
			s.jobs, err = jobs.New(content, jobs.Config{WarmSchedule: config.WarmSchedule, Timeout: timeouts.CacheWarm}, logger)
			if err != nil {
				s.Close()
				return nil, fmt.Errorf("schedule cache jobs: %w", err)
			}
		}
		gateway = content
	} else {
		logger.Printf("content api url not set, content sections run degraded")
	}

	policy := requestmeta.ProxyPolicy{TrustForwarded: config.TrustProxyHeaders}
	chrome := pagerender.SiteFromContent(site, policy)
	base := modulehandler.NewBase(chrome,
		modulehandler.WithLogger(logger),
		modulehandler.WithMetrics(m),
		modulehandler.WithFormLimiter(ratelimit.New(config.FormRatePerMinute, config.FormRateBurst)),
	)
	handler, err := app.BuildRootHandler(app.Config{
		Modules: modules.Default(modules.Dependencies{
			Gateway:   gateway,
			Base:      base,
			Site:      site,
			MediaBase: mediaBase,
			SiteURL:   config.SiteURL,
		}),
		Site:      chrome,
		Logger:    logger,
		Metrics:   m,
		Static:    static.FS,
		AssetsDir: config.AssetsDir,
	})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("build handler: %w", err)
	}
	s.httpServer = &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return s, nil
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	if s == nil || s.httpServer == nil {
		return http.NotFoundHandler()
	}
	return s.httpServer.Handler
}

// ListenAndServe runs the HTTP server and the cache jobs until the context
// ends.
//
// On cancellation, it performs a bounded shutdown so in-flight requests
// are drained before hard close.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	if s.jobs != nil {
		s.jobs.Start()
		defer s.stopJobs()
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

func (s *Server) stopJobs() {
	ctx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
	defer cancel()
	if err := s.jobs.Stop(ctx); err != nil {
		s.logger.Printf("stop cache jobs: %v", err)
	}
}

// Close releases the cache store.
func (s *Server) Close() {
	if s == nil || s.cacheStore == nil {
		return
	}
	if err := s.cacheStore.Close(); err != nil {
		s.logger.Printf("close content cache: %v", err)
	}
	s.cacheStore = nil
}
