// Package modules defines web module registry helpers.
package modules

import (
	module "github.com/pleromasprings/website/internal/services/web/module"
	"github.com/pleromasprings/website/internal/services/web/modules/about"
	"github.com/pleromasprings/website/internal/services/web/modules/contact"
	"github.com/pleromasprings/website/internal/services/web/modules/events"
	"github.com/pleromasprings/website/internal/services/web/modules/gallery"
	"github.com/pleromasprings/website/internal/services/web/modules/home"
	"github.com/pleromasprings/website/internal/services/web/modules/impact"
	"github.com/pleromasprings/website/internal/services/web/modules/news"
	"github.com/pleromasprings/website/internal/services/web/modules/newsletter"
	"github.com/pleromasprings/website/internal/services/web/modules/resources"
	"github.com/pleromasprings/website/internal/services/web/platform/modulehandler"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Gateway is the content surface the default modules read and write
// through. Each module receives it typed as its own narrow gateway, so a
// module cannot reach endpoints it was not built for.
type Gateway interface {
	home.HighlightGateway
	about.TeamGateway
	impact.ImpactGateway
	news.PostGateway
	events.EventGateway
	gallery.GalleryGateway
	resources.ResourceGateway
	contact.SubmissionGateway
	newsletter.SubscribeGateway
}

// Dependencies carries the shared inputs required to compose the web module
// registry.
type Dependencies struct {
	// Gateway is nil when the content API is not configured; modules then
	// mount in their degraded state.
	Gateway Gateway
	Base    modulehandler.Base
	Site    sitecontent.Site
	// MediaBase resolves relative media paths returned by the API.
	MediaBase string
	// SiteURL is the public origin used for feed and sitemap links.
	SiteURL string
}
