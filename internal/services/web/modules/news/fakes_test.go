package news

import (
	"context"
	"fmt"
	"time"

	"github.com/pleromasprings/website/internal/services/web/content"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
)

// fakeGateway implements PostGateway for tests.
type fakeGateway struct {
	posts         []content.BlogPost
	categories    []content.Category
	listErr       error
	categoriesErr error
	postErr       error
	queries       *[]content.BlogPostQuery
}

var _ PostGateway = fakeGateway{}

func (f fakeGateway) ListBlogPosts(_ context.Context, query content.BlogPostQuery) ([]content.BlogPost, error) {
	if f.queries != nil {
		*f.queries = append(*f.queries, query)
	}
	if f.listErr != nil {
		return nil, f.listErr
	}
	if query.Limit > 0 && query.Limit < len(f.posts) {
		return f.posts[:query.Limit], nil
	}
	return f.posts, nil
}

func (f fakeGateway) GetBlogPost(_ context.Context, slug string) (content.BlogPost, error) {
	if f.postErr != nil {
		return content.BlogPost{}, f.postErr
	}
	for _, post := range f.posts {
		if post.Slug == slug {
			return post, nil
		}
	}
	return content.BlogPost{}, apperrors.E(apperrors.KindNotFound, "content api blogposts not found")
}

func (f fakeGateway) ListCategories(context.Context) ([]content.Category, error) {
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return f.categories, nil
}

func published(y int, m time.Month, d int) content.Date {
	return content.Date{Time: time.Date(y, m, d, 9, 0, 0, 0, time.UTC)}
}

func samplePosts() []content.BlogPost {
	return []content.BlogPost{
		{ID: "1", Title: "Older Post", Slug: "older-post", Author: "Kofi", Content: "Plain body.", PublishedDate: published(2024, time.November, 3)},
		{
			ID:            "2",
			Title:         "Clinic Day",
			Slug:          "clinic-day",
			Author:        "Ama",
			Content:       "## Highlights\n\nWe screened **200** children.<script>alert(1)</script>",
			Image:         "/media/blog/clinic.jpg",
			PublishedDate: published(2025, time.May, 1),
			Category:      content.CategoryRef{Category: content.Category{Name: "Outreach", Slug: "outreach"}, Set: true},
		},
	}
}

func sampleCategories() []content.Category {
	return []content.Category{{ID: "1", Name: "Outreach", Slug: "outreach"}, {ID: "2", Name: "Research", Slug: "research"}}
}

// oldestFirstPosts returns n posts dated one day apart in ascending order.
func oldestFirstPosts(n int) []content.BlogPost {
	posts := make([]content.BlogPost, 0, n)
	for i := 1; i <= n; i++ {
		posts = append(posts, content.BlogPost{
			ID:            content.ID(fmt.Sprint(i)),
			Title:         fmt.Sprintf("Post %d", i),
			Slug:          fmt.Sprintf("post-%d", i),
			PublishedDate: content.Date{Time: time.Date(2025, time.January, i, 9, 0, 0, 0, time.UTC)},
		})
	}
	return posts
}
