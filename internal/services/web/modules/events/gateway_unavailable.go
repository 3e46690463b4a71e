package events

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListEvents(context.Context, content.EventQuery) ([]content.Event, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "content api is not configured")
}
