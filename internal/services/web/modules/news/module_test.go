package news

import (
	"bytes"
	"encoding/xml"
	"errors"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pleromasprings/website/internal/services/web/content"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/platform/pagerender"
	"github.com/pleromasprings/website/internal/services/web/routepath"
)

func serve(t *testing.T, m Module, method string, target string) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(method, target, nil))
	return rr
}

func testModule(gateway PostGateway) Module {
	return NewWithGateway(gateway, modulehandler.NewTestBase(), "https://cms.example.org", "https://pleromasprings.org")
}

func TestModuleIDPrefixAndHealth(t *testing.T) {
	t.Parallel()

	if New().ID() != "news" || New().Healthy() {
		t.Fatal("degraded module identity/health mismatch")
	}
	m := testModule(fakeGateway{})
	if !m.Healthy() {
		t.Fatal("module with gateway reports unhealthy")
	}
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.NewsPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
}

func TestRoutesPathAndMethodContracts(t *testing.T) {
	t.Parallel()

	m := testModule(fakeGateway{posts: samplePosts(), categories: sampleCategories()})
	tests := []struct {
		method string
		path   string
		want   int
	}{
		{method: http.MethodGet, path: routepath.News, want: http.StatusOK},
		{method: http.MethodHead, path: routepath.News, want: http.StatusOK},
		{method: http.MethodPost, path: routepath.News, want: http.StatusMethodNotAllowed},
		{method: http.MethodGet, path: routepath.NewsFeed, want: http.StatusOK},
		{method: http.MethodGet, path: routepath.NewsPost("clinic-day"), want: http.StatusOK},
		{method: http.MethodGet, path: routepath.NewsPost("missing"), want: http.StatusNotFound},
		{method: http.MethodGet, path: "/news/clinic-day/comments", want: http.StatusNotFound},
	}
	for _, tc := range tests {
		if rr := serve(t, m, tc.method, tc.path); rr.Code != tc.want {
			t.Fatalf("%s %s status = %d, want %d", tc.method, tc.path, rr.Code, tc.want)
		}
	}
}

func TestIndexForwardsSearchAndCategory(t *testing.T) {
	t.Parallel()

	var queries []content.BlogPostQuery
	m := testModule(fakeGateway{posts: samplePosts(), categories: sampleCategories(), queries: &queries})

	body := serve(t, m, http.MethodGet, routepath.News+"?search=+clinic+&category=outreach").Body.String()
	if len(queries) != 1 {
		t.Fatalf("queries = %+v", queries)
	}
	if queries[0].Search != "clinic" || queries[0].CategorySlug != "outreach" || queries[0].Limit != 0 {
		t.Fatalf("query = %+v", queries[0])
	}
	if !strings.Contains(body, `<option value="outreach" selected>Outreach</option>`) {
		t.Fatal("selected category option missing")
	}
	if !strings.Contains(body, `value="clinic"`) {
		t.Fatal("search value not kept")
	}
	newer := strings.Index(body, "Clinic Day")
	older := strings.Index(body, "Older Post")
	if newer < 0 || older < 0 || newer > older {
		t.Fatalf("posts out of order: newer=%d older=%d", newer, older)
	}
}

func TestIndexIgnoresCategoryFailureAndReportsPostFailure(t *testing.T) {
	t.Parallel()

	body := serve(t, testModule(fakeGateway{posts: samplePosts(), categoriesErr: errors.New("down")}), http.MethodGet, routepath.News).Body.String()
	if strings.Contains(body, `id="news-category"`) {
		t.Fatal("category filter rendered without categories")
	}
	if !strings.Contains(body, "Clinic Day") {
		t.Fatal("posts missing when only categories failed")
	}

	body = serve(t, testModule(fakeGateway{listErr: errors.New("down")}), http.MethodGet, routepath.News).Body.String()
	if !strings.Contains(body, "Failed to load blog posts. Please try again later.") {
		t.Fatal("failure message missing")
	}

	body = serve(t, testModule(fakeGateway{}), http.MethodGet, routepath.News).Body.String()
	if !strings.Contains(body, "No blog posts found.") {
		t.Fatal("empty message missing")
	}
}

func TestPostRendersSanitizedMarkdown(t *testing.T) {
	t.Parallel()

	body := serve(t, testModule(fakeGateway{posts: samplePosts()}), http.MethodGet, routepath.NewsPost("clinic-day")).Body.String()
	for _, marker := range []string{"<h2", "<strong>200</strong>", "By Ama", "May 1, 2025", "https://cms.example.org/media/blog/clinic.jpg"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
	if strings.Contains(body, "alert(1)") {
		t.Fatal("script survived sanitization")
	}
}

func TestPostMissingAndFailureStates(t *testing.T) {
	t.Parallel()

	rr := serve(t, testModule(fakeGateway{}), http.MethodGet, routepath.NewsPost("gone"))
	if rr.Code != http.StatusNotFound || !strings.Contains(rr.Body.String(), "Blog post not found.") {
		t.Fatalf("missing post = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `href="/news"`) {
		t.Fatal("back link missing")
	}

	var logs bytes.Buffer
	base := modulehandler.NewBase(pagerender.Site{Name: "Test"}, modulehandler.WithLogger(log.New(&logs, "", 0)))
	m := NewWithGateway(fakeGateway{postErr: apperrors.Wrap(apperrors.KindUnavailable, "content api blogposts failed", errors.New("502"))}, base, "", "")
	rr = serve(t, m, http.MethodGet, routepath.NewsPost("clinic-day"))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Failed to load blog post. Please try again later.") {
		t.Fatal("failure message missing")
	}
	if !strings.Contains(logs.String(), "load blog post failed slug=clinic-day") {
		t.Fatalf("logs = %q", logs.String())
	}
}

func TestFeedIsRSS(t *testing.T) {
	t.Parallel()

	var queries []content.BlogPostQuery
	rr := serve(t, testModule(fakeGateway{posts: samplePosts(), queries: &queries}), http.MethodGet, routepath.NewsFeed)
	if got := rr.Header().Get("Content-Type"); got != "application/rss+xml; charset=utf-8" {
		t.Fatalf("content type = %q", got)
	}
	if len(queries) != 1 || queries[0].Limit != 0 {
		t.Fatalf("queries = %+v", queries)
	}

	var feed rss
	if err := xml.Unmarshal(rr.Body.Bytes(), &feed); err != nil {
		t.Fatalf("decode feed: %v", err)
	}
	if feed.Version != "2.0" || feed.Channel.Link != "https://pleromasprings.org/news" {
		t.Fatalf("channel = %+v", feed.Channel)
	}
	if len(feed.Channel.Items) != 2 {
		t.Fatalf("items = %+v", feed.Channel.Items)
	}
	first := feed.Channel.Items[0]
	if first.Link != "https://pleromasprings.org/news/clinic-day" || !first.GUID.IsPermaLink {
		t.Fatalf("first item = %+v", first)
	}
	if first.PubDate != "Thu, 01 May 2025 09:00:00 +0000" {
		t.Fatalf("pubDate = %q", first.PubDate)
	}
}

func TestFeedKeepsNewestPostsWhenAPIReturnsOldestFirst(t *testing.T) {
	t.Parallel()

	rr := serve(t, testModule(fakeGateway{posts: oldestFirstPosts(feedSize + 5)}), http.MethodGet, routepath.NewsFeed)
	var feed rss
	if err := xml.Unmarshal(rr.Body.Bytes(), &feed); err != nil {
		t.Fatalf("decode feed: %v", err)
	}
	items := feed.Channel.Items
	if len(items) != feedSize {
		t.Fatalf("items = %d, want %d", len(items), feedSize)
	}
	if items[0].Title != "Post 25" || items[len(items)-1].Title != "Post 6" {
		t.Fatalf("feed range = %q..%q, want Post 25..Post 6", items[0].Title, items[len(items)-1].Title)
	}
}

func TestFeedFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	rr := serve(t, testModule(fakeGateway{listErr: errors.New("down")}), http.MethodGet, routepath.NewsFeed)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
}
