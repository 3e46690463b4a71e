package app

import (
	"io/fs"
	"log"

	module "github.com/pleromasprings/website/internal/services/web/module"
	"github.com/pleromasprings/website/internal/services/web/platform/metrics"
	"github.com/pleromasprings/website/internal/services/web/platform/pagerender"
)

// Config captures the composition inputs for the web root handler.
type Config struct {
	Modules []module.Module
	// Site renders error pages outside any module and carries the proxy
	// policy used for origin checks and cookies.
	Site    pagerender.Site
	Logger  *log.Logger
	Metrics *metrics.Metrics
	// Static is served under /static/; nil mounts nothing.
	Static fs.FS
	// AssetsDir is served under /assets/ when set.
	AssetsDir string
}
