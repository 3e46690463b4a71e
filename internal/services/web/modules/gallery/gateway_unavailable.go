package gallery

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListGalleryItems(context.Context) ([]content.GalleryItem, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "content api is not configured")
}

func (unavailableGateway) ListCategories(context.Context) ([]content.Category, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "content api is not configured")
}
