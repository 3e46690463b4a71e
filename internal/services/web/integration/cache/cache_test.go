package cache

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/integration/contentapi"
	webstorage "github.com/pleromasprings/website/internal/services/web/storage"
)

func newTestContent(t *testing.T) (*Content, *fakeUpstream, *memoryStore, *clock, *fakeObserver) {
	t.Helper()
	upstream := newFakeUpstream()
	upstream.posts = []content.BlogPost{{ID: "1", Title: "Clinic Day", Slug: "clinic-day"}}
	store := newMemoryStore()
	clk := &clock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	observer := &fakeObserver{}
	c := New(upstream, store, WithClock(clk.Now), WithLookupObserver(observer))
	return c, upstream, store, clk, observer
}

func TestReadsAreCachedUntilExpiry(t *testing.T) {
	t.Parallel()

	c, upstream, _, clk, observer := newTestContent(t)
	ctx := context.Background()
	q := content.BlogPostQuery{Limit: 3}

	for i := 0; i < 2; i++ {
		posts, err := c.ListBlogPosts(ctx, q)
		if err != nil {
			t.Fatalf("ListBlogPosts() error = %v", err)
		}
		if len(posts) != 1 || posts[0].Slug != "clinic-day" {
			t.Fatalf("posts = %+v", posts)
		}
	}
	if got := upstream.count("blogposts"); got != 1 {
		t.Fatalf("upstream calls = %d, want 1", got)
	}
	if len(observer.lookups) != 2 || observer.lookups[0].hit || !observer.lookups[1].hit {
		t.Fatalf("lookups = %+v", observer.lookups)
	}

	clk.Advance(DefaultTTLs[contentapi.EndpointBlogPosts])
	if _, err := c.ListBlogPosts(ctx, q); err != nil {
		t.Fatalf("ListBlogPosts() error = %v", err)
	}
	if got := upstream.count("blogposts"); got != 2 {
		t.Fatalf("upstream calls after expiry = %d, want 2", got)
	}
}

func TestQueriesUseSeparateKeys(t *testing.T) {
	t.Parallel()

	c, upstream, store, _, _ := newTestContent(t)
	ctx := context.Background()
	_, _ = c.ListBlogPosts(ctx, content.BlogPostQuery{Search: "clinic"})
	_, _ = c.ListBlogPosts(ctx, content.BlogPostQuery{CategorySlug: "outreach"})
	if got := upstream.count("blogposts"); got != 2 {
		t.Fatalf("upstream calls = %d, want 2", got)
	}
	if _, ok := store.entry("blogposts:search=clinic&category=&limit=0"); !ok {
		t.Fatal("expected search key to be stored")
	}
	entry, ok := store.entry("blogposts:search=&category=outreach&limit=0")
	if !ok {
		t.Fatal("expected category key to be stored")
	}
	if entry.Scope != contentapi.EndpointBlogPosts {
		t.Fatalf("scope = %q", entry.Scope)
	}
}

func TestErrorsAreNotCached(t *testing.T) {
	t.Parallel()

	c, upstream, store, _, _ := newTestContent(t)
	upstream.err = errors.New("api down")
	if _, err := c.ListEvents(context.Background(), content.EventQuery{}); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := store.entry("events:limit=0"); ok {
		t.Fatal("failed read was cached")
	}

	upstream.err = nil
	upstream.events = []content.Event{{ID: "7", Title: "Screening"}}
	events, err := c.ListEvents(context.Background(), content.EventQuery{})
	if err != nil || len(events) != 1 {
		t.Fatalf("events = %+v err = %v", events, err)
	}
}

func TestStaleAndUnreadableEntriesAreReplaced(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		entry webstorage.CacheEntry
	}{
		{
			name:  "stale",
			entry: webstorage.CacheEntry{CacheKey: "blogpost:clinic-day", Scope: "blogpost", PayloadBytes: []byte(`{"title":"Old"}`), Stale: true},
		},
		{
			name:  "unreadable",
			entry: webstorage.CacheEntry{CacheKey: "blogpost:clinic-day", Scope: "blogpost", PayloadBytes: []byte(`not json`)},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, upstream, store, _, _ := newTestContent(t)
			store.set(tc.entry)

			post, err := c.GetBlogPost(context.Background(), "clinic-day")
			if err != nil {
				t.Fatalf("GetBlogPost() error = %v", err)
			}
			if post.Title != "Clinic Day" {
				t.Fatalf("title = %q, want fresh value", post.Title)
			}
			if got := upstream.count("blogpost"); got != 1 {
				t.Fatalf("upstream calls = %d, want 1", got)
			}
			entry, ok := store.entry("blogpost:clinic-day")
			if !ok || entry.Stale {
				t.Fatalf("entry = %+v ok=%v, want fresh entry", entry, ok)
			}
		})
	}
}

func TestStoreReadFailureFallsThrough(t *testing.T) {
	t.Parallel()

	c, upstream, store, _, _ := newTestContent(t)
	store.getErr = errors.New("disk gone")
	if _, err := c.ListTeamMembers(context.Background()); err != nil {
		t.Fatalf("ListTeamMembers() error = %v", err)
	}
	if got := upstream.count("team"); got != 1 {
		t.Fatalf("upstream calls = %d, want 1", got)
	}
}

func TestNilStoreReadsDirectly(t *testing.T) {
	t.Parallel()

	upstream := newFakeUpstream()
	c := New(upstream, nil)
	for i := 0; i < 2; i++ {
		if _, err := c.ListResources(context.Background()); err != nil {
			t.Fatalf("ListResources() error = %v", err)
		}
	}
	if got := upstream.count("resources"); got != 2 {
		t.Fatalf("upstream calls = %d, want 2", got)
	}
	if c.Enabled() {
		t.Fatal("Enabled() = true without store")
	}
	if err := c.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
}

func TestSubmissionsPassThrough(t *testing.T) {
	t.Parallel()

	c, upstream, store, _, _ := newTestContent(t)
	ctx := context.Background()
	message := content.ContactMessage{Name: "Ama", Email: "ama@example.org", Subject: "Hi", Message: "Hello"}
	for i := 0; i < 2; i++ {
		if err := c.SendContactMessage(ctx, message); err != nil {
			t.Fatalf("SendContactMessage() error = %v", err)
		}
	}
	_ = c.Subscribe(ctx, content.Subscription{Email: "ama@example.org"})
	_ = c.SubmitVolunteerApplication(ctx, content.VolunteerApplication{})
	_ = c.SubmitPartnerInquiry(ctx, content.PartnerInquiry{})
	if len(upstream.sent) != 2 {
		t.Fatalf("sent = %d, want 2", len(upstream.sent))
	}
	for _, name := range []string{"subscribe", "volunteer", "partner"} {
		if upstream.count(name) != 1 {
			t.Fatalf("%s calls = %d, want 1", name, upstream.count(name))
		}
	}
	if len(store.entries) != 0 {
		t.Fatalf("submissions were cached: %+v", store.entries)
	}
}

func TestRefreshRereadsListScopes(t *testing.T) {
	t.Parallel()

	c, upstream, _, _, _ := newTestContent(t)
	ctx := context.Background()
	if _, err := c.ListTeamMembers(ctx); err != nil {
		t.Fatalf("ListTeamMembers() error = %v", err)
	}
	if err := c.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if got := upstream.count("team"); got != 2 {
		t.Fatalf("team calls = %d, want 2", got)
	}
	if got := upstream.count("blogposts"); got != 2 {
		t.Fatalf("blogposts calls = %d, want 2 (full list and home list)", got)
	}
	for _, name := range []string{"categories", "events", "gallery", "resources", "impact", "stories"} {
		if upstream.count(name) != 1 {
			t.Fatalf("%s calls = %d, want 1", name, upstream.count(name))
		}
	}

	if _, err := c.ListTeamMembers(ctx); err != nil {
		t.Fatalf("ListTeamMembers() error = %v", err)
	}
	if got := upstream.count("team"); got != 2 {
		t.Fatalf("team calls after refresh = %d, want cache hit", got)
	}
}

func TestRefreshJoinsFailures(t *testing.T) {
	t.Parallel()

	c, upstream, _, _, _ := newTestContent(t)
	upstream.err = errors.New("api down")
	err := c.Refresh(context.Background())
	if err == nil || !errors.Is(err, upstream.err) {
		t.Fatalf("Refresh() error = %v", err)
	}
}

func TestPruneRemovesExpiredEntries(t *testing.T) {
	t.Parallel()

	c, _, store, clk, _ := newTestContent(t)
	ctx := context.Background()
	_, _ = c.ListEvents(ctx, content.EventQuery{})
	_, _ = c.ListResources(ctx)

	clk.Advance(10 * time.Minute)
	removed, err := c.Prune(ctx)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed = %d, want 1", removed)
	}
	if _, ok := store.entry(contentapi.EndpointResources); !ok {
		t.Fatal("resources entry should survive")
	}
}

func TestOpenStoreReturnsNilWhenDisabled(t *testing.T) {
	t.Parallel()

	store, err := OpenStore(context.Background(), StoreConfig{SQLitePath: "  "})
	if err != nil {
		t.Fatalf("OpenStore returned error: %v", err)
	}
	if store != nil {
		t.Fatal("OpenStore returned non-nil store for empty config")
	}
	if (StoreConfig{}).Enabled() {
		t.Fatal("empty config reports enabled")
	}
}

func TestOpenStoreCreatesParentDirAndCaches(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "content-cache.db")
	store, err := OpenStore(context.Background(), StoreConfig{SQLitePath: path})
	if err != nil {
		t.Fatalf("OpenStore returned error: %v", err)
	}
	if store == nil {
		t.Fatal("OpenStore returned nil store")
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	upstream := newFakeUpstream()
	upstream.events = []content.Event{{ID: "7", Title: "Screening", EventDate: content.Date{Time: time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)}}}
	c := New(upstream, store)
	for i := 0; i < 2; i++ {
		events, err := c.ListEvents(context.Background(), content.EventQuery{})
		if err != nil {
			t.Fatalf("ListEvents() error = %v", err)
		}
		if len(events) != 1 || events[0].ID != "7" || !events[0].EventDate.Equal(upstream.events[0].EventDate.Time) {
			t.Fatalf("events = %+v", events)
		}
	}
	if got := upstream.count("events"); got != 1 {
		t.Fatalf("upstream calls = %d, want 1", got)
	}
}
