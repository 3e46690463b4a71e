package impact

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// ImpactGateway loads impact figures and stories.
type ImpactGateway interface {
	ListImpactStats(ctx context.Context) ([]content.ImpactStat, error)
	ListTransformationStories(ctx context.Context) ([]content.TransformationStory, error)
}

type service struct {
	gateway ImpactGateway
}

func newService(gateway ImpactGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) listStats(ctx context.Context) ([]content.ImpactStat, error) {
	return s.gateway.ListImpactStats(ctx)
}

func (s service) listStories(ctx context.Context) ([]content.TransformationStory, error) {
	return s.gateway.ListTransformationStories(ctx)
}
