package gallery

import (
	"context"
	"strings"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// Gallery layouts selectable with the view parameter.
const (
	viewCategorized = "categorized"
	viewGrid        = "grid"
)

// GalleryGateway loads gallery items and the category list for the filter.
type GalleryGateway interface {
	ListGalleryItems(ctx context.Context) ([]content.GalleryItem, error)
	ListCategories(ctx context.Context) ([]content.Category, error)
}

// filter is the normalized gallery query.
type filter struct {
	Category string
	Sort     content.GallerySort
	View     string
}

func parseFilter(category string, sort string, view string) filter {
	category = strings.TrimSpace(category)
	if category == "" {
		category = content.AllCategories
	}
	view = strings.ToLower(strings.TrimSpace(view))
	if view != viewGrid {
		view = viewCategorized
	}
	return filter{Category: category, Sort: content.ParseGallerySort(sort), View: view}
}

// listing is the published gallery narrowed by a filter.
type listing struct {
	// Categories come from the categories endpoint. When that call fails they
	// fall back to the labels of the published items and CategoriesErr keeps
	// the failure for logging.
	Categories    []string
	CategoriesErr error
	Items         []content.GalleryItem
}

type service struct {
	gateway GalleryGateway
}

func newService(gateway GalleryGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) list(ctx context.Context, f filter) (listing, error) {
	items, err := s.gateway.ListGalleryItems(ctx)
	if err != nil {
		return listing{}, err
	}
	published := content.PublishedGalleryItems(items)
	result := listing{Items: content.SortGallery(content.FilterGalleryByCategory(published, f.Category), f.Sort)}
	categories, err := s.gateway.ListCategories(ctx)
	if err != nil {
		result.Categories = content.GalleryCategories(published)
		result.CategoriesErr = err
		return result, nil
	}
	result.Categories = categoryNames(categories)
	return result, nil
}

// categoryNames returns the filter values for categories. Items match on the
// same label, so a nameless category falls back to its slug.
func categoryNames(categories []content.Category) []string {
	var names []string
	seen := map[string]bool{}
	for _, category := range categories {
		name := strings.TrimSpace(category.Name)
		if name == "" {
			name = strings.TrimSpace(category.Slug)
		}
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}
