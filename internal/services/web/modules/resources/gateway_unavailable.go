package resources

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListResources(context.Context) ([]content.Resource, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "content api is not configured")
}
