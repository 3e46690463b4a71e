// Package programs serves the static programs page.
package programs

import (
	"net/http"

	"github.com/pleromasprings/website/internal/services/web/module"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

// Module provides the programs page. It renders site copy only.
type Module struct {
	base modulehandler.Base
	site sitecontent.Site
}

// New returns a programs module over the embedded site copy.
func New(base modulehandler.Base, site sitecontent.Site) Module {
	return Module{base: base, site: site}
}

// ID returns a stable module identifier.
func (Module) ID() string { return "programs" }

// Mount wires programs route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodGet+" "+routepath.Programs, m.handleIndex)
	mux.HandleFunc(http.MethodGet+" "+routepath.ProgramsPrefix, m.base.WriteNotFound)
	return module.Mount{Prefix: routepath.ProgramsPrefix, Handler: mux}, nil
}

func (m Module) handleIndex(w http.ResponseWriter, r *http.Request) {
	loc, _ := m.base.PageLocalizer(r)
	view := webtemplates.ProgramsView{Page: m.site.ProgramsPage, Programs: m.site.Programs}
	m.base.WritePage(w, r, webtemplates.T(loc, "programs.title"), http.StatusOK, webtemplates.ProgramsPage(view, loc))
}
