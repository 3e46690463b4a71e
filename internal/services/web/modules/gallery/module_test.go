package gallery

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
)

func serve(t *testing.T, m Module, target string) *httptest.ResponseRecorder {
	t.Helper()
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func testModule(gateway GalleryGateway) Module {
	return NewWithGateway(gateway, modulehandler.NewTestBase(), "https://cms.example.org")
}

func TestModuleContracts(t *testing.T) {
	t.Parallel()

	if New().ID() != "gallery" || New().Healthy() {
		t.Fatal("degraded module identity/health mismatch")
	}
	m := testModule(fakeGateway{items: sampleItems()})
	if !m.Healthy() {
		t.Fatal("module with gateway reports unhealthy")
	}
	mount, err := m.Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	if mount.Prefix != routepath.GalleryPrefix {
		t.Fatalf("prefix = %q", mount.Prefix)
	}
	if rr := serve(t, m, routepath.GalleryPrefix+"1"); rr.Code != http.StatusNotFound {
		t.Fatalf("subpath status = %d, want 404", rr.Code)
	}
	rr := httptest.NewRecorder()
	mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, routepath.Gallery, nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("POST status = %d, want 405", rr.Code)
	}
}

func TestParseFilterDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category, sort, view string
		want                 filter
	}{
		{want: filter{Category: content.AllCategories, Sort: content.GallerySortDateDesc, View: viewCategorized}},
		{category: " Outreach ", sort: "TITLE_ASC", view: "grid", want: filter{Category: "Outreach", Sort: content.GallerySortTitleAsc, View: viewGrid}},
		{sort: "random", view: "masonry", want: filter{Category: content.AllCategories, Sort: content.GallerySortDateDesc, View: viewCategorized}},
	}
	for _, tc := range tests {
		if got := parseFilter(tc.category, tc.sort, tc.view); got != tc.want {
			t.Fatalf("parseFilter(%q, %q, %q) = %+v, want %+v", tc.category, tc.sort, tc.view, got, tc.want)
		}
	}
}

func TestServiceFiltersPublishedAndSorts(t *testing.T) {
	t.Parallel()

	svc := newService(fakeGateway{items: sampleItems(), categories: sampleCategories()})
	result, err := svc.list(t.Context(), parseFilter("", "title_asc", ""))
	if err != nil {
		t.Fatalf("list() error = %v", err)
	}
	var titles []string
	for _, item := range result.Items {
		titles = append(titles, item.Title)
	}
	if got := strings.Join(titles, ","); got != "Alpha Clinic,Brush Day,Community Walk" {
		t.Fatalf("titles = %q", got)
	}
	if got := strings.Join(result.Categories, ","); got != "Outreach,Training,Awards" {
		t.Fatalf("categories = %q", got)
	}

	result, err = svc.list(t.Context(), parseFilter("Training", "", ""))
	if err != nil {
		t.Fatalf("list() error = %v", err)
	}
	if len(result.Items) != 1 || result.Items[0].ID != "2" || len(result.Categories) != 3 {
		t.Fatalf("filtered result = %+v", result)
	}
}

func TestServiceCategoriesComeFromCategoryList(t *testing.T) {
	t.Parallel()

	categories := []content.Category{
		{ID: content.ID("1"), Name: " Outreach ", Slug: "outreach"},
		{ID: content.ID("2"), Slug: "workshops"},
		{ID: content.ID("3"), Name: "Outreach"},
		{ID: content.ID("4")},
	}
	result, err := newService(fakeGateway{items: sampleItems(), categories: categories}).list(t.Context(), parseFilter("", "", ""))
	if err != nil {
		t.Fatalf("list() error = %v", err)
	}
	if got := strings.Join(result.Categories, ","); got != "Outreach,workshops" {
		t.Fatalf("categories = %q", got)
	}
	if result.CategoriesErr != nil {
		t.Fatalf("CategoriesErr = %v", result.CategoriesErr)
	}
}

func TestServiceCategoriesFallBackToItemLabels(t *testing.T) {
	t.Parallel()

	down := errors.New("categories down")
	result, err := newService(fakeGateway{items: sampleItems(), categoriesErr: down}).list(t.Context(), parseFilter("", "", ""))
	if err != nil {
		t.Fatalf("list() error = %v", err)
	}
	if !errors.Is(result.CategoriesErr, down) {
		t.Fatalf("CategoriesErr = %v, want %v", result.CategoriesErr, down)
	}
	if got := strings.Join(result.Categories, ","); got != "Outreach,Training" {
		t.Fatalf("categories = %q", got)
	}
	if len(result.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(result.Items))
	}
}

func TestCategoryFilterListsEmptyCategories(t *testing.T) {
	t.Parallel()

	categories := append(sampleCategories(), content.Category{ID: content.ID("9"), Name: "Workshops"})
	body := serve(t, testModule(fakeGateway{items: sampleItems(), categories: categories}), routepath.Gallery+"?category=Workshops").Body.String()
	if !strings.Contains(body, `<option value="Workshops" selected>`) {
		t.Fatal("category without items missing from filter")
	}
	if strings.Contains(body, "Alpha Clinic") {
		t.Fatal("items from other categories rendered")
	}
}

func TestCategorizedViewGroupsAndLabelsUncategorized(t *testing.T) {
	t.Parallel()

	body := serve(t, testModule(fakeGateway{items: sampleItems()}), routepath.Gallery).Body.String()
	for _, marker := range []string{`class="gallery-group"`, "<h2>Uncategorized</h2>", "<h2>Training</h2>", "https://cms.example.org/media/b.jpg"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing %q", marker)
		}
	}
	if strings.Contains(body, "Hidden Draft") {
		t.Fatal("unpublished item rendered")
	}

	body = serve(t, testModule(fakeGateway{items: sampleItems()}), routepath.Gallery+"?view=grid").Body.String()
	if strings.Contains(body, `class="gallery-group"`) {
		t.Fatal("grid view rendered groups")
	}
}

func TestLightboxWrapsWithinSortedList(t *testing.T) {
	t.Parallel()

	m := testModule(fakeGateway{items: sampleItems()})
	// Title order: 1 Alpha, 2 Brush, 4 Community. The first item wraps to the last.
	body := serve(t, m, routepath.Gallery+"?sort=title_asc&photo=1").Body.String()
	if !strings.Contains(body, `class="modal modal-lightbox"`) {
		t.Fatal("lightbox missing")
	}
	prev := strings.Index(body, `rel="prev"`)
	if prev < 0 {
		t.Fatal("prev link missing")
	}
	prevTag := body[strings.LastIndex(body[:prev], "<a"):prev]
	if !strings.Contains(prevTag, "photo=4") {
		t.Fatalf("prev link = %q, want photo=4", prevTag)
	}
	next := strings.Index(body, `rel="next"`)
	nextTag := body[strings.LastIndex(body[:next], "<a"):next]
	if !strings.Contains(nextTag, "photo=2") {
		t.Fatalf("next link = %q, want photo=2", nextTag)
	}

	body = serve(t, m, routepath.Gallery+"?photo=3").Body.String()
	if strings.Contains(body, `class="modal modal-lightbox"`) {
		t.Fatal("unpublished item opened the lightbox")
	}
}

func TestFailureRendersMessage(t *testing.T) {
	t.Parallel()

	rr := serve(t, testModule(fakeGateway{err: errors.New("down")}), routepath.Gallery)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Failed to load gallery items. Please try again later.") {
		t.Fatal("failure message missing")
	}
}
