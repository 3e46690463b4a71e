package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/pleromasprings/website/internal/services/web/content"
	webstorage "github.com/pleromasprings/website/internal/services/web/storage"
)

type fakeUpstream struct {
	mu     sync.Mutex
	calls  map[string]int
	posts  []content.BlogPost
	events []content.Event
	err    error
	sent   []content.ContactMessage
}

func newFakeUpstream() *fakeUpstream {
	return &fakeUpstream{calls: map[string]int{}}
}

func (f *fakeUpstream) record(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[name]++
	return f.err
}

func (f *fakeUpstream) count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[name]
}

func (f *fakeUpstream) ListBlogPosts(context.Context, content.BlogPostQuery) ([]content.BlogPost, error) {
	if err := f.record("blogposts"); err != nil {
		return nil, err
	}
	return f.posts, nil
}

func (f *fakeUpstream) GetBlogPost(_ context.Context, slug string) (content.BlogPost, error) {
	if err := f.record("blogpost"); err != nil {
		return content.BlogPost{}, err
	}
	for _, post := range f.posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return content.BlogPost{}, errors.New("missing")
}

func (f *fakeUpstream) ListCategories(context.Context) ([]content.Category, error) {
	return []content.Category{}, f.record("categories")
}

func (f *fakeUpstream) ListEvents(context.Context, content.EventQuery) ([]content.Event, error) {
	if err := f.record("events"); err != nil {
		return nil, err
	}
	return f.events, nil
}

func (f *fakeUpstream) ListGalleryItems(context.Context) ([]content.GalleryItem, error) {
	return []content.GalleryItem{}, f.record("gallery")
}

func (f *fakeUpstream) ListResources(context.Context) ([]content.Resource, error) {
	return []content.Resource{}, f.record("resources")
}

func (f *fakeUpstream) ListTeamMembers(context.Context) ([]content.TeamMember, error) {
	return []content.TeamMember{}, f.record("team")
}

func (f *fakeUpstream) ListImpactStats(context.Context) ([]content.ImpactStat, error) {
	return []content.ImpactStat{}, f.record("impact")
}

func (f *fakeUpstream) ListTransformationStories(context.Context) ([]content.TransformationStory, error) {
	return []content.TransformationStory{}, f.record("stories")
}

func (f *fakeUpstream) Subscribe(context.Context, content.Subscription) error {
	return f.record("subscribe")
}

func (f *fakeUpstream) SendContactMessage(_ context.Context, m content.ContactMessage) error {
	f.mu.Lock()
	f.sent = append(f.sent, m)
	f.mu.Unlock()
	return f.record("contact")
}

func (f *fakeUpstream) SubmitVolunteerApplication(context.Context, content.VolunteerApplication) error {
	return f.record("volunteer")
}

func (f *fakeUpstream) SubmitPartnerInquiry(context.Context, content.PartnerInquiry) error {
	return f.record("partner")
}

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]webstorage.CacheEntry
	getErr  error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{entries: map[string]webstorage.CacheEntry{}}
}

func (s *memoryStore) Close() error { return nil }

func (s *memoryStore) GetCacheEntry(_ context.Context, key string) (webstorage.CacheEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return webstorage.CacheEntry{}, false, s.getErr
	}
	entry, ok := s.entries[key]
	return entry, ok, nil
}

func (s *memoryStore) PutCacheEntry(_ context.Context, entry webstorage.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.CacheKey] = entry
	return nil
}

func (s *memoryStore) DeleteCacheEntry(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *memoryStore) MarkScopeStale(_ context.Context, scope string, _ time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, entry := range s.entries {
		if entry.Scope == scope {
			entry.Stale = true
			s.entries[key] = entry
		}
	}
	return nil
}

func (s *memoryStore) PruneExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for key, entry := range s.entries {
		if entry.Expired(now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed, nil
}

func (s *memoryStore) entry(key string) (webstorage.CacheEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	return entry, ok
}

func (s *memoryStore) set(entry webstorage.CacheEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[entry.CacheKey] = entry
}

type lookup struct {
	scope string
	hit   bool
}

type fakeObserver struct {
	mu      sync.Mutex
	lookups []lookup
}

func (o *fakeObserver) ObserveCacheLookup(scope string, hit bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.lookups = append(o.lookups, lookup{scope: scope, hit: hit})
}

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
