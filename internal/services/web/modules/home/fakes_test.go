package home

import (
	"context"
	"time"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// fakeGateway implements HighlightGateway for tests.
type fakeGateway struct {
	posts     []content.BlogPost
	events    []content.Event
	postsErr  error
	eventsErr error
	queries   *[]content.BlogPostQuery
}

var _ HighlightGateway = fakeGateway{}

func (f fakeGateway) ListBlogPosts(_ context.Context, query content.BlogPostQuery) ([]content.BlogPost, error) {
	if f.queries != nil {
		*f.queries = append(*f.queries, query)
	}
	if f.postsErr != nil {
		return nil, f.postsErr
	}
	return f.posts, nil
}

func (f fakeGateway) ListEvents(context.Context, content.EventQuery) ([]content.Event, error) {
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	return f.events, nil
}

func on(y int, m time.Month, d int) content.Date {
	return content.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func samplePosts() []content.BlogPost {
	return []content.BlogPost{
		{ID: "1", Title: "Screening Results", Slug: "screening-results", Excerpt: "What we found.", PublishedDate: on(2025, time.March, 2)},
		{ID: "2", Title: "New Partners", Slug: "new-partners", Excerpt: "Welcoming partners.", PublishedDate: on(2025, time.April, 9)},
	}
}

func sampleEvents() []content.Event {
	return []content.Event{
		{ID: "10", Title: "Late Event", EventDate: on(2025, time.December, 1)},
		{ID: "11", Title: "First Event", EventDate: on(2025, time.July, 1), Description: "Opening the season."},
		{ID: "12", Title: "Second Event", EventDate: on(2025, time.August, 1)},
		{ID: "13", Title: "Third Event", EventDate: on(2025, time.September, 1)},
	}
}
