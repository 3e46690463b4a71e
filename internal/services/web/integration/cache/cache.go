// Package cache serves content API reads through a derived cache store.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/integration/contentapi"
	webstorage "github.com/pleromasprings/website/internal/services/web/storage"
)

// DefaultTTL applies to scopes without an explicit entry in the TTL table.
const DefaultTTL = 5 * time.Minute

// DefaultTTLs keeps fast-moving lists short and reference data longer.
var DefaultTTLs = map[string]time.Duration{
	contentapi.EndpointBlogPosts:    5 * time.Minute,
	contentapi.EndpointBlogPost:     10 * time.Minute,
	contentapi.EndpointCategories:   30 * time.Minute,
	contentapi.EndpointEvents:       5 * time.Minute,
	contentapi.EndpointGalleryItems: 10 * time.Minute,
	contentapi.EndpointResources:    30 * time.Minute,
	contentapi.EndpointTeamMembers:  30 * time.Minute,
	contentapi.EndpointImpactStats:  30 * time.Minute,
	contentapi.EndpointStories:      30 * time.Minute,
}

// Upstream is the content API surface the cache sits in front of.
type Upstream interface {
	ListBlogPosts(ctx context.Context, q content.BlogPostQuery) ([]content.BlogPost, error)
	GetBlogPost(ctx context.Context, slug string) (content.BlogPost, error)
	ListCategories(ctx context.Context) ([]content.Category, error)
	ListEvents(ctx context.Context, q content.EventQuery) ([]content.Event, error)
	ListGalleryItems(ctx context.Context) ([]content.GalleryItem, error)
	ListResources(ctx context.Context) ([]content.Resource, error)
	ListTeamMembers(ctx context.Context) ([]content.TeamMember, error)
	ListImpactStats(ctx context.Context) ([]content.ImpactStat, error)
	ListTransformationStories(ctx context.Context) ([]content.TransformationStory, error)
	Subscribe(ctx context.Context, s content.Subscription) error
	SendContactMessage(ctx context.Context, m content.ContactMessage) error
	SubmitVolunteerApplication(ctx context.Context, v content.VolunteerApplication) error
	SubmitPartnerInquiry(ctx context.Context, p content.PartnerInquiry) error
}

// LookupObserver records cache hits and misses per scope.
type LookupObserver interface {
	ObserveCacheLookup(scope string, hit bool)
}

// Option customizes a Content.
type Option func(*Content)

// WithTTLs overrides the TTL table. Missing scopes fall back to DefaultTTL.
func WithTTLs(ttls map[string]time.Duration) Option {
	return func(c *Content) {
		c.ttls = ttls
	}
}

// WithLookupObserver counts hits and misses.
func WithLookupObserver(observer LookupObserver) Option {
	return func(c *Content) {
		c.observer = observer
	}
}

// WithLogger logs store failures. Reads fall through to the API either way.
func WithLogger(logger *log.Logger) Option {
	return func(c *Content) {
		c.logger = logger
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Content) {
		if now != nil {
			c.now = now
		}
	}
}

// Content reads through a cache store and writes straight to the API.
type Content struct {
	upstream Upstream
	store    webstorage.Store
	ttls     map[string]time.Duration
	observer LookupObserver
	logger   *log.Logger
	now      func() time.Time
}

// New wraps upstream. A nil store disables caching.
func New(upstream Upstream, store webstorage.Store, opts ...Option) *Content {
	c := &Content{
		upstream: upstream,
		store:    store,
		ttls:     DefaultTTLs,
		now:      time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

func (c *Content) ttl(scope string) time.Duration {
	if ttl, ok := c.ttls[scope]; ok && ttl > 0 {
		return ttl
	}
	return DefaultTTL
}

func (c *Content) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}

func (c *Content) observe(scope string, hit bool) {
	if c.observer != nil {
		c.observer.ObserveCacheLookup(scope, hit)
	}
}

func cacheKey(scope string, params string) string {
	if params == "" {
		return scope
	}
	return scope + ":" + params
}

// cached returns the stored value for scope and params when it is fresh, and
// otherwise fetches, stores and returns it. Failed fetches are not stored.
func cached[T any](ctx context.Context, c *Content, scope string, params string, fetch func(context.Context) (T, error)) (T, error) {
	if c.store == nil {
		return fetch(ctx)
	}
	key := cacheKey(scope, params)
	now := c.now().UTC()

	entry, found, err := c.store.GetCacheEntry(ctx, key)
	switch {
	case err != nil:
		c.logf("content cache read failed key=%s err=%v", key, err)
	case found && (entry.Stale || entry.Expired(now)):
		c.drop(ctx, key)
	case found:
		var value T
		if err := json.Unmarshal(entry.PayloadBytes, &value); err == nil {
			c.observe(scope, true)
			return value, nil
		}
		c.logf("content cache payload unreadable key=%s", key)
		c.drop(ctx, key)
	}
	c.observe(scope, false)

	value, err := fetch(ctx)
	if err != nil {
		return value, err
	}
	payload, err := json.Marshal(value)
	if err != nil {
		c.logf("content cache encode failed key=%s err=%v", key, err)
		return value, nil
	}
	if err := c.store.PutCacheEntry(ctx, webstorage.CacheEntry{
		CacheKey:     key,
		Scope:        scope,
		PayloadBytes: payload,
		CheckedAt:    now,
		RefreshedAt:  now,
		ExpiresAt:    now.Add(c.ttl(scope)),
	}); err != nil {
		c.logf("content cache write failed key=%s err=%v", key, err)
	}
	return value, nil
}

func (c *Content) drop(ctx context.Context, key string) {
	if err := c.store.DeleteCacheEntry(ctx, key); err != nil {
		c.logf("content cache delete failed key=%s err=%v", key, err)
	}
}

// ListBlogPosts returns cached posts for the query.
func (c *Content) ListBlogPosts(ctx context.Context, q content.BlogPostQuery) ([]content.BlogPost, error) {
	params := "search=" + strings.TrimSpace(q.Search) + "&category=" + strings.TrimSpace(q.CategorySlug) + "&limit=" + strconv.Itoa(q.Limit)
	return cached(ctx, c, contentapi.EndpointBlogPosts, params, func(ctx context.Context) ([]content.BlogPost, error) {
		return c.upstream.ListBlogPosts(ctx, q)
	})
}

// GetBlogPost returns a cached post. Missing posts are never cached.
func (c *Content) GetBlogPost(ctx context.Context, slug string) (content.BlogPost, error) {
	return cached(ctx, c, contentapi.EndpointBlogPost, strings.TrimSpace(slug), func(ctx context.Context) (content.BlogPost, error) {
		return c.upstream.GetBlogPost(ctx, slug)
	})
}

// ListCategories returns cached categories.
func (c *Content) ListCategories(ctx context.Context) ([]content.Category, error) {
	return cached(ctx, c, contentapi.EndpointCategories, "", c.upstream.ListCategories)
}

// ListEvents returns cached events for the query.
func (c *Content) ListEvents(ctx context.Context, q content.EventQuery) ([]content.Event, error) {
	return cached(ctx, c, contentapi.EndpointEvents, "limit="+strconv.Itoa(q.Limit), func(ctx context.Context) ([]content.Event, error) {
		return c.upstream.ListEvents(ctx, q)
	})
}

// ListGalleryItems returns cached gallery items.
func (c *Content) ListGalleryItems(ctx context.Context) ([]content.GalleryItem, error) {
	return cached(ctx, c, contentapi.EndpointGalleryItems, "", c.upstream.ListGalleryItems)
}

// ListResources returns cached resources.
func (c *Content) ListResources(ctx context.Context) ([]content.Resource, error) {
	return cached(ctx, c, contentapi.EndpointResources, "", c.upstream.ListResources)
}

// ListTeamMembers returns cached team members.
func (c *Content) ListTeamMembers(ctx context.Context) ([]content.TeamMember, error) {
	return cached(ctx, c, contentapi.EndpointTeamMembers, "", c.upstream.ListTeamMembers)
}

// ListImpactStats returns cached impact stats.
func (c *Content) ListImpactStats(ctx context.Context) ([]content.ImpactStat, error) {
	return cached(ctx, c, contentapi.EndpointImpactStats, "", c.upstream.ListImpactStats)
}

// ListTransformationStories returns cached stories.
func (c *Content) ListTransformationStories(ctx context.Context) ([]content.TransformationStory, error) {
	return cached(ctx, c, contentapi.EndpointStories, "", c.upstream.ListTransformationStories)
}

// Subscribe forwards to the API.
func (c *Content) Subscribe(ctx context.Context, s content.Subscription) error {
	return c.upstream.Subscribe(ctx, s)
}

// SendContactMessage forwards to the API.
func (c *Content) SendContactMessage(ctx context.Context, m content.ContactMessage) error {
	return c.upstream.SendContactMessage(ctx, m)
}

// SubmitVolunteerApplication forwards to the API.
func (c *Content) SubmitVolunteerApplication(ctx context.Context, v content.VolunteerApplication) error {
	return c.upstream.SubmitVolunteerApplication(ctx, v)
}

// SubmitPartnerInquiry forwards to the API.
func (c *Content) SubmitPartnerInquiry(ctx context.Context, p content.PartnerInquiry) error {
	return c.upstream.SubmitPartnerInquiry(ctx, p)
}

var refreshScopes = []string{
	contentapi.EndpointBlogPosts,
	contentapi.EndpointCategories,
	contentapi.EndpointEvents,
	contentapi.EndpointGalleryItems,
	contentapi.EndpointResources,
	contentapi.EndpointTeamMembers,
	contentapi.EndpointImpactStats,
	contentapi.EndpointStories,
}

// Refresh marks every list scope stale and reads again the lists pages ask
// for without filters, so visitors hit a warm cache. Individual failures are joined.
func (c *Content) Refresh(ctx context.Context) error {
	if c.store == nil {
		return nil
	}
	now := c.now().UTC()
	var errs []error
	for _, scope := range refreshScopes {
		if err := c.store.MarkScopeStale(ctx, scope, now); err != nil {
			errs = append(errs, fmt.Errorf("mark %s stale: %w", scope, err))
		}
	}
	warm := []struct {
		name string
		run  func() error
	}{
		{"blogposts", func() error {
			_, err := c.ListBlogPosts(ctx, content.BlogPostQuery{})
			return err
		}},
		{"home blogposts", func() error {
			_, err := c.ListBlogPosts(ctx, content.BlogPostQuery{Limit: content.HomeHighlightCount})
			return err
		}},
		{"categories", func() error { _, err := c.ListCategories(ctx); return err }},
		{"events", func() error {
			_, err := c.ListEvents(ctx, content.EventQuery{})
			return err
		}},
		{"gallery", func() error { _, err := c.ListGalleryItems(ctx); return err }},
		{"resources", func() error { _, err := c.ListResources(ctx); return err }},
		{"team", func() error { _, err := c.ListTeamMembers(ctx); return err }},
		{"impact", func() error { _, err := c.ListImpactStats(ctx); return err }},
		{"stories", func() error { _, err := c.ListTransformationStories(ctx); return err }},
	}
	for _, step := range warm {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := step.run(); err != nil {
			errs = append(errs, fmt.Errorf("warm %s: %w", step.name, err))
		}
	}
	return errors.Join(errs...)
}

// Prune deletes expired entries and reports how many went.
func (c *Content) Prune(ctx context.Context) (int64, error) {
	if c.store == nil {
		return 0, nil
	}
	return c.store.PruneExpired(ctx, c.now().UTC())
}

// Enabled reports whether reads are cached.
func (c *Content) Enabled() bool {
	return c != nil && c.store != nil
}
