package about

import (
	"context"
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

type teamService interface {
	listTeam(ctx context.Context) ([]content.TeamMember, error)
}

type handlers struct {
	modulehandler.Base
	service   teamService
	site      sitecontent.Site
	mediaBase string
}

func newHandlers(s service, base modulehandler.Base, site sitecontent.Site, mediaBase string) handlers {
	return handlers{Base: base, service: s, site: site, mediaBase: mediaBase}
}

func (h handlers) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := h.PageLocalizer(r)
	view := webtemplates.AboutView{About: h.site.About}

	members, err := h.service.listTeam(r.Context())
	if err != nil {
		h.Logf("load team members failed err=%v", err)
		view.TeamFailed = true
	} else {
		view.Team = h.teamCards(members, r)
		if member, ok := content.FindTeamMember(members, r.URL.Query().Get(routepath.MemberParam)); ok {
			view.SelectedMember = h.memberDetail(member, r)
		}
	}
	h.WritePage(w, r, webtemplates.T(loc, "about.title"), http.StatusOK, webtemplates.AboutPage(view, loc))
}
