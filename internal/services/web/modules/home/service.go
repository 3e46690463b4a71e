package home

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// HighlightGateway loads the posts and events featured on the homepage.
type HighlightGateway interface {
	ListBlogPosts(ctx context.Context, query content.BlogPostQuery) ([]content.BlogPost, error)
	ListEvents(ctx context.Context, query content.EventQuery) ([]content.Event, error)
}

type service struct {
	gateway HighlightGateway
}

func newService(gateway HighlightGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// latestPosts returns the newest highlight posts. The API applies the
// limit but not the order.
func (s service) latestPosts(ctx context.Context) ([]content.BlogPost, error) {
	posts, err := s.gateway.ListBlogPosts(ctx, content.BlogPostQuery{Limit: content.HomeHighlightCount})
	if err != nil {
		return nil, err
	}
	return content.LatestPosts(posts, content.HomeHighlightCount), nil
}

// events returns every event soonest first; the page shows the head of it.
func (s service) events(ctx context.Context) ([]content.Event, error) {
	events, err := s.gateway.ListEvents(ctx, content.EventQuery{})
	if err != nil {
		return nil, err
	}
	return content.SortEventsSoonestFirst(events), nil
}

func (s service) allPosts(ctx context.Context) ([]content.BlogPost, error) {
	return s.gateway.ListBlogPosts(ctx, content.BlogPostQuery{})
}
