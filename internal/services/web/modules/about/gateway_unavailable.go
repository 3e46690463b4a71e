package about

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
)

type unavailableGateway struct{}

func (unavailableGateway) ListTeamMembers(context.Context) ([]content.TeamMember, error) {
	return nil, apperrors.E(apperrors.KindUnavailable, "content api is not configured")
}
