package newsletter

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// SubscribeGateway posts newsletter signups.
type SubscribeGateway interface {
	Subscribe(ctx context.Context, subscription content.Subscription) error
}

type service struct {
	gateway SubscribeGateway
}

func newService(gateway SubscribeGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) subscribe(ctx context.Context, subscription content.Subscription) error {
	return s.gateway.Subscribe(ctx, subscription)
}
