package news

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListBlogPosts(context.Context, content.BlogPostQuery) ([]content.BlogPost, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "content api is not configured")
}

func (unavailableGateway) GetBlogPost(context.Context, string) (content.BlogPost, error) {
	return content.BlogPost{}, apperrors.E(apperrors.KindUnavailable, "content api is not configured")
}

func (unavailableGateway) ListCategories(context.Context) ([]content.Category, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "content api is not configured")
}
