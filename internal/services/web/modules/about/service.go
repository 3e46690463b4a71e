package about

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// TeamGateway loads team members for the about page.
type TeamGateway interface {
	ListTeamMembers(ctx context.Context) ([]content.TeamMember, error)
}

type service struct {
	gateway TeamGateway
}

func newService(gateway TeamGateway) service {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	return service{gateway: gateway}
}

func (s service) listTeam(ctx context.Context) ([]content.TeamMember, error) {
	members, err := s.gateway.ListTeamMembers(ctx)
	if err != nil {
		return nil, err
	}
	if members == nil {
		return []content.TeamMember{}, nil
	}
	return members, nil
}
