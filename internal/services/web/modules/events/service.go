package events

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// EventGateway loads events from the content API.
type EventGateway interface {
	ListEvents(ctx context.Context, query content.EventQuery) ([]content.Event, error)
}

type service struct {
	gateway EventGateway
}

func newService(gateway EventGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

// listEvents returns every event, soonest first.
func (s service) listEvents(ctx context.Context) ([]content.Event, error) {
	events, err := s.gateway.ListEvents(ctx, content.EventQuery{})
	if err != nil {
		return nil, err
	}
	return content.SortEventsSoonestFirst(events), nil
}
