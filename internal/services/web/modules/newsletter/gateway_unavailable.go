package newsletter

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) Subscribe(context.Context, content.Subscription) error {
	return apperrors.E(apperrors.KindUnavailable, "content api is not configured")
}
