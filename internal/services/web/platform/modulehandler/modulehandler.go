// Package modulehandler provides a composable base for web module handlers.
//
// Every page module shares localization, page rendering, flash notices and
// error handling. This package extracts that scaffold so modules embed it
// rather than duplicating it.
package modulehandler

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
	flashnotice "github.com/pleromasprings/website/internal/services/web/platform/flash"
	"github.com/pleromasprings/website/internal/services/web/platform/httpx"
	webi18n "github.com/pleromasprings/website/internal/services/web/platform/i18n"
	"github.com/pleromasprings/website/internal/services/web/platform/metrics"
	"github.com/pleromasprings/website/internal/services/web/platform/pagerender"
	"github.com/pleromasprings/website/internal/services/web/platform/ratelimit"
	"github.com/pleromasprings/website/internal/services/web/platform/requestmeta"
	"github.com/pleromasprings/website/internal/services/web/platform/weberror"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

// Base carries the shared rendering state used by module handlers.
type Base struct {
	site    pagerender.Site
	logger  *log.Logger
	metrics *metrics.Metrics
	limiter *ratelimit.Limiter
}

// Option configures a Base.
type Option func(*Base)

// WithLogger attaches the logger used for fetch and submission failures.
func WithLogger(logger *log.Logger) Option {
	return func(b *Base) { b.logger = logger }
}

// WithMetrics attaches the form submission counters.
func WithMetrics(m *metrics.Metrics) Option {
	return func(b *Base) { b.metrics = m }
}

// WithFormLimiter throttles form posts per client IP.
func WithFormLimiter(l *ratelimit.Limiter) Option {
	return func(b *Base) { b.limiter = l }
}

// NewBase builds a handler base for site chrome settings.
func NewBase(site pagerender.Site, opts ...Option) Base {
	b := Base{site: site}
	for _, opt := range opts {
		if opt != nil {
			opt(&b)
		}
	}
	return b
}

// NewTestBase builds a handler base over the embedded site copy with no
// logger or metrics.
func NewTestBase() Base {
	site := sitecontent.Default()
	return NewBase(pagerender.Site{Name: site.Name, Contact: site.Contact, Social: site.Social})
}

// Site returns the chrome settings.
func (b Base) Site() pagerender.Site {
	return b.site
}

// PageLocalizer resolves a localizer and language tag from the request.
func (b Base) PageLocalizer(r *http.Request) (webtemplates.Localizer, language.Tag) {
	return webi18n.ResolveLocalizer(r)
}

// WritePage renders a full page with the given title and content fragment.
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, title string, statusCode int, fragment templ.Component) {
	if err := pagerender.WritePage(w, r, b.site, pagerender.Page{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); err != nil {
		b.Logf("render page failed path=%s err=%v", requestPath(r), err)
		b.WriteError(w, r, err)
	}
}

// WriteError renders a localized module error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteError(w, r, b.site, err)
}

// WriteNotFound renders a 404 error page within the site layout.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteErrorPage(w, r, b.site, http.StatusNotFound, "")
}

// WriteNotice stores a flash notice for the next render.
func (b Base) WriteNotice(w http.ResponseWriter, r *http.Request, notice flashnotice.Notice) {
	flashnotice.Write(w, r, notice, b.site.Policy)
}

// Redirect sends the visitor to location after a form post.
func (b Base) Redirect(w http.ResponseWriter, r *http.Request, location string) {
	httpx.WriteRedirect(w, r, location)
}

// ObserveForm counts a form submission outcome.
func (b Base) ObserveForm(form string, outcome string) {
	b.metrics.ObserveForm(form, outcome)
}

// LimitForms wraps a form handler with the per-IP submission limiter.
// Rejected posts get a 429 and are counted.
func (b Base) LimitForms(next http.Handler) http.Handler {
	key := func(r *http.Request) string {
		return requestmeta.ClientIP(r, b.site.Policy)
	}
	onLimited := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.metrics.ObserveRateLimited(metrics.RouteLabel(requestPath(r)))
		b.Logf("form rate limited path=%s ip=%s", requestPath(r), key(r))
		b.WriteError(w, r, apperrors.EK(apperrors.KindRateLimited, "error.message.rate_limited", "form submission rate limited"))
	})
	return ratelimit.Middleware(b.limiter, key, onLimited)(next)
}

// Logf writes a log line when a logger is configured.
func (b Base) Logf(format string, args ...any) {
	if b.logger == nil {
		return
	}
	b.logger.Printf(format, args...)
}

func requestPath(r *http.Request) string {
	if r == nil || r.URL == nil {
		return ""
	}
	return r.URL.Path
}
