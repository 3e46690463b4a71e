package content

import (
	"reflect"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) Date {
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func postIDs(posts []BlogPost) []string {
	out := make([]string, 0, len(posts))
	for _, post := range posts {
		out = append(out, post.ID.String())
	}
	return out
}

func eventIDs(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, event := range events {
		out = append(out, event.ID.String())
	}
	return out
}

func galleryIDs(items []GalleryItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID.String())
	}
	return out
}

func category(name string) CategoryRef {
	if name == "" {
		return CategoryRef{}
	}
	return CategoryRef{Category: Category{Name: name}, Set: true}
}

func TestLatestPostsNewestFirstWithUndatedLast(t *testing.T) {
	t.Parallel()

	posts := []BlogPost{
		{ID: "old", PublishedDate: day(2024, 1, 1)},
		{ID: "undated"},
		{ID: "new", PublishedDate: day(2025, 6, 1)},
		{ID: "mid", PublishedDate: day(2024, 9, 1)},
	}
	if got := postIDs(SortPostsNewestFirst(posts)); !reflect.DeepEqual(got, []string{"new", "mid", "old", "undated"}) {
		t.Fatalf("sorted = %v", got)
	}
	if got := postIDs(LatestPosts(posts, 2)); !reflect.DeepEqual(got, []string{"new", "mid"}) {
		t.Fatalf("latest = %v", got)
	}
	if posts[0].ID != "old" {
		t.Fatal("sorting mutated the input slice")
	}
}

func TestUpcomingEventsSoonestFirst(t *testing.T) {
	t.Parallel()

	events := []Event{
		{ID: "c", EventDate: day(2025, 12, 1)},
		{ID: "tbd"},
		{ID: "a", EventDate: day(2025, 2, 1)},
		{ID: "b", EventDate: day(2025, 7, 1)},
	}
	if got := eventIDs(UpcomingEvents(events, 3)); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("upcoming = %v", got)
	}
	if got := eventIDs(UpcomingEvents(events, 0)); len(got) != 4 || got[3] != "tbd" {
		t.Fatalf("all events = %v, want undated last", got)
	}
}

func TestFindEventAndTeamMember(t *testing.T) {
	t.Parallel()

	events := []Event{{ID: "1", Title: "Clinic"}, {ID: "2", Title: "Workshop"}}
	if event, ok := FindEvent(events, " 2 "); !ok || event.Title != "Workshop" {
		t.Fatalf("FindEvent = %+v, %v", event, ok)
	}
	if _, ok := FindEvent(events, ""); ok {
		t.Fatal("empty id matched an event")
	}
	members := []TeamMember{{ID: "5", Name: "Ama"}}
	if member, ok := FindTeamMember(members, "5"); !ok || member.Name != "Ama" {
		t.Fatalf("FindTeamMember = %+v, %v", member, ok)
	}
	if _, ok := FindTeamMember(members, "6"); ok {
		t.Fatal("unknown id matched a member")
	}
}

func TestGalleryFilteringSortingAndGrouping(t *testing.T) {
	t.Parallel()

	items := []GalleryItem{
		{ID: "1", Title: "beach clinic", Category: category("Outreach"), UploadDate: day(2025, 1, 5), IsPublished: true},
		{ID: "2", Title: "Draft", Category: category("Outreach"), UploadDate: day(2025, 1, 6)},
		{ID: "3", Title: "Award night", Category: category("Events"), UploadDate: day(2025, 3, 1), IsPublished: true},
		{ID: "4", Title: "Classroom", UploadDate: day(2024, 11, 1), IsPublished: true},
		{ID: "5", Title: "Screening", Category: category("Outreach"), UploadDate: day(2025, 2, 1), IsPublished: true},
	}

	published := PublishedGalleryItems(items)
	if got := galleryIDs(published); !reflect.DeepEqual(got, []string{"1", "3", "4", "5"}) {
		t.Fatalf("published = %v", got)
	}
	if got := GalleryCategories(published); !reflect.DeepEqual(got, []string{"Outreach", "Events"}) {
		t.Fatalf("categories = %v", got)
	}

	tests := []struct {
		name     string
		category string
		sort     GallerySort
		want     []string
	}{
		{name: "all newest first", category: AllCategories, sort: GallerySortDateDesc, want: []string{"3", "5", "1", "4"}},
		{name: "all oldest first", category: "", sort: GallerySortDateAsc, want: []string{"4", "1", "5", "3"}},
		{name: "title ascending ignores case", category: "all", sort: GallerySortTitleAsc, want: []string{"3", "1", "4", "5"}},
		{name: "title descending", category: "all", sort: GallerySortTitleDesc, want: []string{"5", "4", "1", "3"}},
		{name: "category filter", category: "Outreach", sort: GallerySortDateDesc, want: []string{"5", "1"}},
		{name: "unknown category", category: "Missing", sort: GallerySortDateDesc, want: []string{}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := galleryIDs(SortGallery(FilterGalleryByCategory(published, tc.category), tc.sort))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ids = %v, want %v", got, tc.want)
			}
		})
	}

	groups := GroupGalleryByCategory(SortGallery(published, GallerySortDateDesc))
	if len(groups) != 3 {
		t.Fatalf("groups = %d, want 3", len(groups))
	}
	if groups[0].Category != "Events" || groups[1].Category != "Outreach" || groups[2].Category != UncategorizedGroup {
		t.Fatalf("group order = %q %q %q", groups[0].Category, groups[1].Category, groups[2].Category)
	}
	if got := galleryIDs(groups[1].Items); !reflect.DeepEqual(got, []string{"5", "1"}) {
		t.Fatalf("outreach group = %v", got)
	}
}

func TestParseGallerySortFallsBackToNewest(t *testing.T) {
	t.Parallel()

	if got := ParseGallerySort(" TITLE_ASC "); got != GallerySortTitleAsc {
		t.Fatalf("ParseGallerySort = %q", got)
	}
	if got := ParseGallerySort("random"); got != GallerySortDateDesc {
		t.Fatalf("ParseGallerySort(random) = %q", got)
	}
}

func TestNeighborsWrapAround(t *testing.T) {
	t.Parallel()

	items := []GalleryItem{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	tests := []struct {
		id       string
		wantPrev string
		wantNext string
	}{
		{id: "a", wantPrev: "c", wantNext: "b"},
		{id: "b", wantPrev: "a", wantNext: "c"},
		{id: "c", wantPrev: "b", wantNext: "a"},
	}
	for _, tc := range tests {
		prev, current, next, ok := Neighbors(items, tc.id)
		if !ok || current.ID.String() != tc.id {
			t.Fatalf("Neighbors(%q) current = %q ok=%v", tc.id, current.ID, ok)
		}
		if prev.ID.String() != tc.wantPrev || next.ID.String() != tc.wantNext {
			t.Fatalf("Neighbors(%q) = %q/%q, want %q/%q", tc.id, prev.ID, next.ID, tc.wantPrev, tc.wantNext)
		}
	}

	single := []GalleryItem{{ID: "only"}}
	prev, _, next, ok := Neighbors(single, "only")
	if !ok || prev.ID != "only" || next.ID != "only" {
		t.Fatalf("single item neighbors = %q/%q ok=%v", prev.ID, next.ID, ok)
	}
	if _, _, _, ok := Neighbors(items, "z"); ok {
		t.Fatal("unknown id reported neighbors")
	}
}

func TestPublicResources(t *testing.T) {
	t.Parallel()

	resources := []Resource{{ID: "1", IsPublic: true}, {ID: "2"}, {ID: "3", IsPublic: true}}
	got := PublicResources(resources)
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("public resources = %+v", got)
	}
}
