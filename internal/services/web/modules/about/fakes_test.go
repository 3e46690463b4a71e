package about

import (
	"context"

	"github.com/pleromasprings/website/internal/services/web/content"
)

// fakeGateway implements TeamGateway for tests.
type fakeGateway struct {
	members []content.TeamMember
	err     error
}

var _ TeamGateway = fakeGateway{}

func (f fakeGateway) ListTeamMembers(context.Context) ([]content.TeamMember, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.members, nil
}

func sampleTeam() []content.TeamMember {
	return []content.TeamMember{
		{ID: "1", Name: "Dr. Ama Mensah", Role: "Founder", Bio: "Dentist.\n\nAdvocate.", ProfilePicture: "/media/team/ama.jpg", Email: "ama@example.org", LinkedInURL: "https://linkedin.com/in/ama"},
		{ID: "2", Name: "Kofi Boateng", Role: "Programs Lead"},
	}
}
