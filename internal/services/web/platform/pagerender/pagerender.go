// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	flashnotice "github.com/pleromasprings/website/internal/services/web/platform/flash"
	"github.com/pleromasprings/website/internal/services/web/platform/httpx"
	webi18n "github.com/pleromasprings/website/internal/services/web/platform/i18n"
	"github.com/pleromasprings/website/internal/services/web/platform/requestmeta"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

// Site is the request-independent part of the page chrome.
type Site struct {
	Name        string
	Description string
	Contact     sitecontent.Contact
	Social      []sitecontent.Link
	Policy      requestmeta.ProxyPolicy
	Now         func() time.Time
}

// SiteFromContent builds chrome settings from the static site copy.
func SiteFromContent(site sitecontent.Site, policy requestmeta.ProxyPolicy) Site {
	return Site{
		Name:        site.Name,
		Description: site.Tagline,
		Contact:     site.Contact,
		Social:      site.Social,
		Policy:      policy,
	}
}

// Page describes a module page response.
type Page struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders fragment inside the site layout. The document is built in
// memory first so a template failure never leaves a half-written 200.
func WritePage(w http.ResponseWriter, r *http.Request, site Site, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	chrome := ResolveChrome(w, r, site)
	var buf bytes.Buffer
	layout := webtemplates.Layout(chrome, page.Title)
	if err := layout.Render(templ.WithChildren(httpx.RequestContext(r), fragment), &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// ResolveChrome builds the layout state for a request and consumes any
// pending flash notice.
func ResolveChrome(w http.ResponseWriter, r *http.Request, site Site) webtemplates.Chrome {
	loc, tag := webi18n.ResolveLocalizer(r)
	path, query := routepath.Root, ""
	if r != nil && r.URL != nil {
		if r.URL.Path != "" {
			path = r.URL.Path
		}
		query = r.URL.RawQuery
	}
	now := time.Now
	if site.Now != nil {
		now = site.Now
	}
	chrome := webtemplates.Chrome{
		Lang:         tag.String(),
		Loc:          loc,
		SiteName:     site.Name,
		Description:  site.Description,
		CurrentPath:  path,
		CurrentQuery: query,
		Year:         strconv.Itoa(now().Year()),
		Languages:    webi18n.LanguageOptions(tag, path, query, loc),
		Contact:      site.Contact,
		Social:       site.Social,
	}
	if subscribeRequested(r) {
		back := routepath.WithoutParams(path, query, routepath.SubscribeParam, webi18n.LangParam)
		chrome.Newsletter = webtemplates.NewsletterModal{
			Open:     true,
			ReturnTo: back,
			CloseURL: back,
		}
	}

	notice, ok := flashnotice.ReadAndClear(w, r, site.Policy)
	if !ok {
		return chrome
	}
	message := NoticeMessage(loc, notice)
	if message == "" {
		return chrome
	}
	if chrome.Newsletter.Open && notice.Kind == flashnotice.KindError && strings.HasPrefix(notice.Key, "newsletter.") {
		chrome.Newsletter.Error = message
		return chrome
	}
	chrome.Toast = &webtemplates.Toast{Kind: string(notice.Kind), Message: message}
	return chrome
}

// NoticeMessage localizes a flash notice. A notice with both a key and a
// message uses the message as the key's argument.
func NoticeMessage(loc webi18n.Localizer, notice flashnotice.Notice) string {
	switch {
	case notice.Key != "" && notice.Message != "":
		return strings.TrimSpace(webtemplates.T(loc, notice.Key, notice.Message))
	case notice.Key != "":
		return strings.TrimSpace(webtemplates.T(loc, notice.Key))
	default:
		return notice.Message
	}
}

func subscribeRequested(r *http.Request) bool {
	if r == nil || r.URL == nil {
		return false
	}
	value := strings.TrimSpace(r.URL.Query().Get(routepath.SubscribeParam))
	return value == "1" || strings.EqualFold(value, "true")
}
