package gallery

import (
	"context"
	"time"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// fakeGateway implements GalleryGateway for tests.
type fakeGateway struct {
	items         []content.GalleryItem
	err           error
	categories    []content.Category
	categoriesErr error
}

var _ GalleryGateway = fakeGateway{}

func (f fakeGateway) ListGalleryItems(context.Context) ([]content.GalleryItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}

func (f fakeGateway) ListCategories(context.Context) ([]content.Category, error) {
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return f.categories, nil
}

func sampleCategories() []content.Category {
	return []content.Category{
		{ID: content.ID("1"), Name: "Outreach", Slug: "outreach"},
		{ID: content.ID("2"), Name: "Training", Slug: "training"},
		{ID: content.ID("3"), Name: "Awards", Slug: "awards"},
	}
}

func category(name string) content.CategoryRef {
	return content.CategoryRef{Category: content.Category{Name: name}, Set: true}
}

func uploaded(y int, m time.Month, d int) content.Date {
	return content.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func sampleItems() []content.GalleryItem {
	return []content.GalleryItem{
		{ID: "1", Title: "Alpha Clinic", Image: "/media/a.jpg", Category: category("Outreach"), UploadDate: uploaded(2025, time.January, 5), IsPublished: true},
		{ID: "2", Title: "Brush Day", Image: "/media/b.jpg", Category: category("Training"), UploadDate: uploaded(2025, time.March, 1), IsPublished: true},
		{ID: "3", Title: "Hidden Draft", Image: "/media/c.jpg", Category: category("Drafts"), UploadDate: uploaded(2025, time.April, 1)},
		{ID: "4", Title: "Community Walk", Image: "/media/d.jpg", UploadDate: uploaded(2025, time.February, 2), IsPublished: true},
	}
}
