package templates

import (
	"strings"

	"github.com/pleromasprings/website/internal/services/web/routepath"
	"github.com/pleromasprings/website/internal/services/web/sitecontent"
)

// Toast is a one-shot notice shown at the top of the page.
type Toast struct {
	Kind    string
	Message string
}

// NewsletterModal is the subscribe dialog the layout renders on every page
// when the request asks for it.
type NewsletterModal struct {
	Open     bool
	Email    string
	Error    string
	ReturnTo string
	CloseURL string
}

// Chrome is the shared layout state for one request.
type Chrome struct {
	Lang         string
	Loc          Localizer
	SiteName     string
	Description  string
	CurrentPath  string
	CurrentQuery string
	Year         string
	Languages    []LanguageOption
	Toast        *Toast
	Newsletter   NewsletterModal
	Contact      sitecontent.Contact
	Social       []sitecontent.Link
}

// SubscribeURL opens the newsletter modal over the current page.
func (c Chrome) SubscribeURL() string {
	return routepath.WithParam(c.CurrentPath, c.CurrentQuery, routepath.SubscribeParam, "1")
}

// PageTitle returns the browser title for a page heading.
func (c Chrome) PageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return c.SiteName
	}
	return T(c.Loc, "title.page", title, c.SiteName)
}

func (c Chrome) lang() string {
	if c.Lang == "" {
		return "en"
	}
	return c.Lang
}

// toast returns the notice to show, or nil when there is nothing to say.
func (c Chrome) toast() *Toast {
	if c.Toast == nil || strings.TrimSpace(c.Toast.Message) == "" {
		return nil
	}
	return c.Toast
}

func (t Toast) kind() string {
	if t.Kind == "" {
		return "info"
	}
	return t.Kind
}

// newsletterCloseURL drops the subscribe parameter unless the handler chose
// another target.
func (c Chrome) newsletterCloseURL() string {
	if c.Newsletter.CloseURL != "" {
		return c.Newsletter.CloseURL
	}
	return routepath.WithoutParams(c.CurrentPath, c.CurrentQuery, routepath.SubscribeParam)
}
