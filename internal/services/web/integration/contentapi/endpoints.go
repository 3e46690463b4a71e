package contentapi

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/pleromasprings/website/internal/services/web/content"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
)

// Endpoint labels used for spans and metrics.
const (
	EndpointBlogPosts    = "blogposts"
	EndpointBlogPost     = "blogpost"
	EndpointCategories   = "categories"
	EndpointEvents       = "events"
	EndpointGalleryItems = "gallery_items"
	EndpointResources    = "resources"
	EndpointTeamMembers  = "team_members"
	EndpointImpactStats  = "impact_stats"
	EndpointStories      = "transformation_stories"
	EndpointSubscribe    = "subscribe"
	EndpointContact      = "contact"
	EndpointVolunteer    = "volunteer"
	EndpointPartner      = "partner"
)

const (
	pathBlogPosts           = "/api/blogposts/"
	pathCategories          = "/api/categories/"
	pathEvents              = "/api/events/"
	pathGalleryItems        = "/api/gallery-items/"
	pathResources           = "/api/resources/"
	pathTeamMembers         = "/api/team-members/"
	pathImpactStats         = "/api/impact-stats/"
	pathTransformationStory = "/api/transformation-stories/"
	pathSubscribe           = "/api/subscribe/"
	pathContact             = "/api/contact/"
	pathVolunteer           = "/api/volunteer/"
	pathPartner             = "/api/partner/"
)

func list[T any](ctx context.Context, c *Client, endpoint string, path string, query url.Values) ([]T, error) {
	payload, err := c.get(ctx, endpoint, path, query)
	if err != nil {
		return nil, err
	}
	items, err := decodeList[T](payload)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindUnavailable, "content api "+endpoint+" sent an unreadable list", err)
	}
	return items, nil
}

// ListBlogPosts returns posts matching q. Search and category filtering
// happen server side.
func (c *Client) ListBlogPosts(ctx context.Context, q content.BlogPostQuery) ([]content.BlogPost, error) {
	query := url.Values{}
	if search := strings.TrimSpace(q.Search); search != "" {
		query.Set("search", search)
	}
	if slug := strings.TrimSpace(q.CategorySlug); slug != "" {
		query.Set("category__slug", slug)
	}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	return list[content.BlogPost](ctx, c, EndpointBlogPosts, pathBlogPosts, query)
}

// GetBlogPost returns the post with slug.
func (c *Client) GetBlogPost(ctx context.Context, slug string) (content.BlogPost, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return content.BlogPost{}, apperrors.E(apperrors.KindNotFound, "blog post slug is required")
	}
	payload, err := c.get(ctx, EndpointBlogPost, pathBlogPosts+url.PathEscape(slug)+"/", nil)
	if err != nil {
		return content.BlogPost{}, err
	}
	post, err := decodeOne[content.BlogPost](payload)
	if err != nil {
		return content.BlogPost{}, apperrors.Wrap(apperrors.KindUnavailable, "content api blog post was unreadable", err)
	}
	return post, nil
}

// ListCategories returns the blog categories.
func (c *Client) ListCategories(ctx context.Context) ([]content.Category, error) {
	return list[content.Category](ctx, c, EndpointCategories, pathCategories, nil)
}

// ListEvents returns events in API order.
func (c *Client) ListEvents(ctx context.Context, q content.EventQuery) ([]content.Event, error) {
	query := url.Values{}
	if q.Limit > 0 {
		query.Set("limit", strconv.Itoa(q.Limit))
	}
	return list[content.Event](ctx, c, EndpointEvents, pathEvents, query)
}

// ListGalleryItems returns every gallery item, published or not.
func (c *Client) ListGalleryItems(ctx context.Context) ([]content.GalleryItem, error) {
	return list[content.GalleryItem](ctx, c, EndpointGalleryItems, pathGalleryItems, nil)
}

// ListResources returns every resource, public or not.
func (c *Client) ListResources(ctx context.Context) ([]content.Resource, error) {
	return list[content.Resource](ctx, c, EndpointResources, pathResources, nil)
}

// ListTeamMembers returns the team.
func (c *Client) ListTeamMembers(ctx context.Context) ([]content.TeamMember, error) {
	return list[content.TeamMember](ctx, c, EndpointTeamMembers, pathTeamMembers, nil)
}

// ListImpactStats returns the headline figures.
func (c *Client) ListImpactStats(ctx context.Context) ([]content.ImpactStat, error) {
	return list[content.ImpactStat](ctx, c, EndpointImpactStats, pathImpactStats, nil)
}

// ListTransformationStories returns beneficiary stories.
func (c *Client) ListTransformationStories(ctx context.Context) ([]content.TransformationStory, error) {
	return list[content.TransformationStory](ctx, c, EndpointStories, pathTransformationStory, nil)
}

// Subscribe registers a newsletter subscription.
func (c *Client) Subscribe(ctx context.Context, s content.Subscription) error {
	return c.post(ctx, EndpointSubscribe, pathSubscribe, s)
}

// SendContactMessage delivers the contact form.
func (c *Client) SendContactMessage(ctx context.Context, m content.ContactMessage) error {
	return c.post(ctx, EndpointContact, pathContact, m)
}

// SubmitVolunteerApplication delivers the volunteer form.
func (c *Client) SubmitVolunteerApplication(ctx context.Context, v content.VolunteerApplication) error {
	return c.post(ctx, EndpointVolunteer, pathVolunteer, v)
}

// SubmitPartnerInquiry delivers the partnership form.
func (c *Client) SubmitPartnerInquiry(ctx context.Context, p content.PartnerInquiry) error {
	return c.post(ctx, EndpointPartner, pathPartner, p)
}
