package modules

import (
	"github.com/pleromasprings/website/internal/services/web/modules/about"
	"github.com/pleromasprings/website/internal/services/web/modules/contact"
	"github.com/pleromasprings/website/internal/services/web/modules/events"
	"github.com/pleromasprings/website/internal/services/web/modules/gallery"
	"github.com/pleromasprings/website/internal/services/web/modules/home"
	"github.com/pleromasprings/website/internal/services/web/modules/impact"
	"github.com/pleromasprings/website/internal/services/web/modules/news"
	"github.com/pleromasprings/website/internal/services/web/modules/newsletter"
	"github.com/pleromasprings/website/internal/services/web/modules/programs"
	"github.com/pleromasprings/website/internal/services/web/modules/resources"
)

// Default returns the site's page and form modules in navigation order.
// A nil deps.Gateway yields modules that render their unavailable states.
func Default(deps Dependencies) []Module {
	gateway := deps.Gateway
	return []Module{
		home.NewWithGateway(gateway, deps.Base, deps.Site, deps.MediaBase, deps.SiteURL),
		about.NewWithGateway(gateway, deps.Base, deps.Site, deps.MediaBase),
		programs.New(deps.Base, deps.Site),
		impact.NewWithGateway(gateway, deps.Base, deps.Site, deps.MediaBase),
		news.NewWithGateway(gateway, deps.Base, deps.MediaBase, deps.SiteURL),
		events.NewWithGateway(gateway, deps.Base, deps.MediaBase),
		gallery.NewWithGateway(gateway, deps.Base, deps.MediaBase),
		resources.NewWithGateway(gateway, deps.Base, deps.MediaBase),
		contact.NewWithGateway(gateway, deps.Base, deps.Site),
		newsletter.NewWithGateway(gateway, deps.Base),
	}
}
