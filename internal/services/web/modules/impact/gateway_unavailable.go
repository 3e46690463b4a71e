package impact

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListImpactStats(context.Context) ([]content.ImpactStat, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "content api is not configured")
}

func (unavailableGateway) ListTransformationStories(context.Context) ([]content.TransformationStory, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "content api is not configured")
}
