package news

import (
	"context"
	"strings"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// feedSize is how many posts the RSS feed carries.
const feedSize = 20

// PostGateway loads blog posts and their categories.
type PostGateway interface {
	ListBlogPosts(ctx context.Context, query content.BlogPostQuery) ([]content.BlogPost, error)
	GetBlogPost(ctx context.Context, slug string) (content.BlogPost, error)
	ListCategories(ctx context.Context) ([]content.Category, error)
}

type service struct {
	gateway PostGateway
}

func newService(gateway PostGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// listPosts forwards search and category to the API and orders the result
// newest first.
func (s service) listPosts(ctx context.Context, search string, categorySlug string) ([]content.BlogPost, error) {
	posts, err := s.gateway.ListBlogPosts(ctx, content.BlogPostQuery{
		Search:       strings.TrimSpace(search),
		CategorySlug: strings.TrimSpace(categorySlug),
	})
	if err != nil {
		return nil, err
	}
	return content.SortPostsNewestFirst(posts), nil
}

func (s service) listCategories(ctx context.Context) ([]content.Category, error) {
	return s.gateway.ListCategories(ctx)
}

func (s service) post(ctx context.Context, slug string) (content.BlogPost, error) {
	return s.gateway.GetBlogPost(ctx, strings.TrimSpace(slug))
}

// feed loads every post and keeps the newest feedSize. The API applies
// limit in its own order, so the cap happens after sorting.
func (s service) feed(ctx context.Context) ([]content.BlogPost, error) {
	posts, err := s.gateway.ListBlogPosts(ctx, content.BlogPostQuery{})
	if err != nil {
		return nil, err
	}
	return content.LatestPosts(posts, feedSize), nil
}
