package newsletter

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// fakeGateway records subscriptions and returns err.
type fakeGateway struct {
	err           error
	subscriptions *[]content.Subscription
}

var _ SubscribeGateway = fakeGateway{}

func (f fakeGateway) Subscribe(_ context.Context, subscription content.Subscription) error {
	if f.subscriptions != nil {
		*f.subscriptions = append(*f.subscriptions, subscription)
	}
	return f.err
}
