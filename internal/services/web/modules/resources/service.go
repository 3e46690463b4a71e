package resources

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// ResourceGateway loads downloadable documents.
type ResourceGateway interface {
	ListResources(ctx context.Context) ([]content.Resource, error)
}

type service struct {
	gateway ResourceGateway
}

func newService(gateway ResourceGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) listPublic(ctx context.Context) ([]content.Resource, error) {
	resources, err := s.gateway.ListResources(ctx)
	if err != nil {
		return nil, err
	}
	return content.PublicResources(resources), nil
}
