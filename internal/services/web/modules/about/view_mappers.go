package about

import (
	"net/http"
	"strings"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

func (h handlers) teamCards(members []content.TeamMember, r *http.Request) []webtemplates.TeamCard {
	cards := make([]webtemplates.TeamCard, 0, len(members))
	for _, member := range members {
		id := member.ID.String()
		if id == "" {
			continue
		}
		cards = append(cards, webtemplates.TeamCard{
			Name:    strings.TrimSpace(member.Name),
			Role:    strings.TrimSpace(member.Role),
			Picture: h.picture(member),
			URL:     routepath.WithParam(r.URL.Path, r.URL.RawQuery, routepath.MemberParam, id),
		})
	}
	return cards
}

func (h handlers) memberDetail(member content.TeamMember, r *http.Request) *webtemplates.MemberDetail {
	return &webtemplates.MemberDetail{
		Name:     strings.TrimSpace(member.Name),
		Role:     strings.TrimSpace(member.Role),
		Bio:      member.Bio,
		Picture:  h.picture(member),
		Email:    strings.TrimSpace(member.Email),
		LinkedIn: strings.TrimSpace(member.LinkedInURL),
		Twitter:  strings.TrimSpace(member.TwitterURL),
		CloseURL: routepath.WithoutParams(r.URL.Path, r.URL.RawQuery, routepath.MemberParam),
	}
}

func (h handlers) picture(member content.TeamMember) string {
	if picture := content.MediaURL(h.mediaBase, member.ProfilePicture); picture != "" {
		return picture
	}
	return routepath.PlaceholderAvatar
}
