package content

import (
	"slices"
	"strings"
)

// GallerySort names a gallery ordering.
type GallerySort string

const (
	GallerySortDateDesc  GallerySort = "date_desc"
	GallerySortDateAsc   GallerySort = "date_asc"
	GallerySortTitleAsc  GallerySort = "title_asc"
	GallerySortTitleDesc GallerySort = "title_desc"
)

// GallerySorts lists the supported orderings, default first.
func GallerySorts() []GallerySort {
	return []GallerySort{GallerySortDateDesc, GallerySortDateAsc, GallerySortTitleAsc, GallerySortTitleDesc}
}

// ParseGallerySort maps user input to a supported ordering; anything unknown
// falls back to newest first.
func ParseGallerySort(raw string) GallerySort {
	candidate := GallerySort(strings.ToLower(strings.TrimSpace(raw)))
	if slices.Contains(GallerySorts(), candidate) {
		return candidate
	}
	return GallerySortDateDesc
}

// AllCategories is the gallery filter value that keeps every item.
const AllCategories = "all"

// HomeHighlightCount is how many posts and events the home page shows.
const HomeHighlightCount = 3

// UncategorizedGroup labels gallery items without a category.
const UncategorizedGroup = "Uncategorized"

// SortPostsNewestFirst orders posts by published date, newest first. Posts
// without a date sort last; ties keep their API order.
func SortPostsNewestFirst(posts []BlogPost) []BlogPost {
	out := slices.Clone(posts)
	slices.SortStableFunc(out, func(a, b BlogPost) int {
		return compareDatesDesc(a.PublishedDate, b.PublishedDate)
	})
	return out
}

// LatestPosts returns the n newest posts.
func LatestPosts(posts []BlogPost, n int) []BlogPost {
	return take(SortPostsNewestFirst(posts), n)
}

// SortEventsSoonestFirst orders events by date ascending. Events without a
// date sort last; ties keep their API order.
func SortEventsSoonestFirst(events []Event) []Event {
	out := slices.Clone(events)
	slices.SortStableFunc(out, func(a, b Event) int {
		return compareDates(a.EventDate, b.EventDate)
	})
	return out
}

// UpcomingEvents returns the first n events in date order.
func UpcomingEvents(events []Event, n int) []Event {
	return take(SortEventsSoonestFirst(events), n)
}

// FindEvent looks an event up by id.
func FindEvent(events []Event, id string) (Event, bool) {
	id = strings.TrimSpace(id)
	for _, event := range events {
		if id != "" && event.ID.String() == id {
			return event, true
		}
	}
	return Event{}, false
}

// FindTeamMember looks a team member up by id.
func FindTeamMember(members []TeamMember, id string) (TeamMember, bool) {
	id = strings.TrimSpace(id)
	for _, member := range members {
		if id != "" && member.ID.String() == id {
			return member, true
		}
	}
	return TeamMember{}, false
}

// PublishedGalleryItems drops unpublished items.
func PublishedGalleryItems(items []GalleryItem) []GalleryItem {
	out := make([]GalleryItem, 0, len(items))
	for _, item := range items {
		if item.IsPublished {
			out = append(out, item)
		}
	}
	return out
}

// GalleryCategories returns the distinct category labels in first-appearance
// order.
func GalleryCategories(items []GalleryItem) []string {
	var out []string
	seen := map[string]bool{}
	for _, item := range items {
		label := item.Category.Label()
		if label == "" || seen[label] {
			continue
		}
		seen[label] = true
		out = append(out, label)
	}
	return out
}

// FilterGalleryByCategory keeps items whose category label matches name.
// An empty name or "all" keeps every item.
func FilterGalleryByCategory(items []GalleryItem, name string) []GalleryItem {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, AllCategories) {
		return slices.Clone(items)
	}
	out := make([]GalleryItem, 0, len(items))
	for _, item := range items {
		if item.Category.Label() == name {
			out = append(out, item)
		}
	}
	return out
}

// SortGallery orders gallery items by the requested option.
func SortGallery(items []GalleryItem, option GallerySort) []GalleryItem {
	out := slices.Clone(items)
	switch option {
	case GallerySortDateAsc:
		slices.SortStableFunc(out, func(a, b GalleryItem) int { return compareDates(a.UploadDate, b.UploadDate) })
	case GallerySortTitleAsc:
		slices.SortStableFunc(out, func(a, b GalleryItem) int { return compareTitles(a.Title, b.Title) })
	case GallerySortTitleDesc:
		slices.SortStableFunc(out, func(a, b GalleryItem) int { return compareTitles(b.Title, a.Title) })
	default:
		slices.SortStableFunc(out, func(a, b GalleryItem) int { return compareDatesDesc(a.UploadDate, b.UploadDate) })
	}
	return out
}

// GalleryGroup is a run of gallery items sharing one category.
type GalleryGroup struct {
	Category string
	Items    []GalleryItem
}

// GroupGalleryByCategory groups items by category label, keeping the order
// in which categories first appear and the item order within each group.
func GroupGalleryByCategory(items []GalleryItem) []GalleryGroup {
	var groups []GalleryGroup
	index := map[string]int{}
	for _, item := range items {
		label := item.Category.Label()
		if label == "" {
			label = UncategorizedGroup
		}
		position, ok := index[label]
		if !ok {
			position = len(groups)
			index[label] = position
			groups = append(groups, GalleryGroup{Category: label})
		}
		groups[position].Items = append(groups[position].Items, item)
	}
	return groups
}

// Neighbors returns the items before and after id, wrapping around the ends.
func Neighbors(items []GalleryItem, id string) (prev GalleryItem, current GalleryItem, next GalleryItem, ok bool) {
	id = strings.TrimSpace(id)
	for i, item := range items {
		if id == "" || item.ID.String() != id {
			continue
		}
		n := len(items)
		return items[(i-1+n)%n], item, items[(i+1)%n], true
	}
	return GalleryItem{}, GalleryItem{}, GalleryItem{}, false
}

// PublicResources drops resources not marked public.
func PublicResources(resources []Resource) []Resource {
	out := make([]Resource, 0, len(resources))
	for _, resource := range resources {
		if resource.IsPublic {
			out = append(out, resource)
		}
	}
	return out
}

// compareDates orders a before b ascending with zero dates last.
func compareDates(a Date, b Date) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	}
	return a.Compare(b.Time)
}

// compareDatesDesc orders a before b descending with zero dates last.
func compareDatesDesc(a Date, b Date) int {
	switch {
	case a.IsZero() && b.IsZero():
		return 0
	case a.IsZero():
		return 1
	case b.IsZero():
		return -1
	}
	return b.Compare(a.Time)
}

func compareTitles(a string, b string) int {
	return strings.Compare(strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b)))
}

func take[T any](items []T, n int) []T {
	if n <= 0 || n >= len(items) {
		return items
	}
	return items[:n]
}
