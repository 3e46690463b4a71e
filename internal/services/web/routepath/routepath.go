// Package routepath stores canonical HTTP paths for site modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root                = "/"
	Health              = "/up"
	Robots              = "/robots.txt"
	Sitemap             = "/sitemap.xml"
	Metrics             = "/metrics"
	StaticPrefix        = "/static/"
	AssetsPrefix        = "/assets/"
	About               = "/about-us"
	Programs            = "/programs"
	Impact              = "/impact"
	News                = "/news"
	NewsPrefix          = "/news/"
	NewsPostPattern     = "/news/{slug}"
	NewsFeed            = "/news/feed.xml"
	Events              = "/events"
	Gallery             = "/gallery"
	Resources           = "/resources"
	Contact             = "/contact"
	ContactVolunteer    = "/contact/volunteer"
	ContactPartner      = "/contact/partner"
	Newsletter          = "/newsletter"
	NewsletterSubscribe = "/newsletter/subscribe"
	PlaceholderAvatar   = "/static/placeholder-avatar.svg"
)

// Module mount prefixes. Each prefix also serves its slashless path.
const (
	AboutPrefix      = About + "/"
	ProgramsPrefix   = Programs + "/"
	ImpactPrefix     = Impact + "/"
	EventsPrefix     = Events + "/"
	GalleryPrefix    = Gallery + "/"
	ResourcesPrefix  = Resources + "/"
	ContactPrefix    = Contact + "/"
	NewsletterPrefix = Newsletter + "/"
)

// Query parameters understood by pages.
const (
	EventParam     = "event"
	MemberParam    = "member"
	PhotoParam     = "photo"
	SubscribeParam = "subscribe"
	SearchParam    = "search"
	CategoryParam  = "category"
	SortParam      = "sort"
	ViewParam      = "view"
	ReturnToField  = "return_to"
)

// Fragment anchors on the contact and programs pages.
const (
	ContactAnchor   = "contact"
	VolunteerAnchor = "volunteer"
	PartnerAnchor   = "partner"
)

// NewsPost returns the detail route for a blog post slug.
func NewsPost(slug string) string {
	return NewsPrefix + escapeSegment(slug)
}

// WithAnchor appends a fragment to path.
func WithAnchor(path string, anchor string) string {
	anchor = strings.TrimPrefix(strings.TrimSpace(anchor), "#")
	if anchor == "" {
		return path
	}
	return path + "#" + anchor
}

// WithParam returns path with key set to value, keeping the other query
// parameters of rawQuery.
func WithParam(path string, rawQuery string, key string, value string) string {
	query := parseQuery(rawQuery)
	query.Set(key, value)
	return build(path, query)
}

// WithoutParams returns path with the given keys dropped from rawQuery.
func WithoutParams(path string, rawQuery string, keys ...string) string {
	query := parseQuery(rawQuery)
	for _, key := range keys {
		query.Del(key)
	}
	return build(path, query)
}

// LocalPath reports whether raw is a same-site absolute path and returns it
// cleaned of surrounding whitespace. Scheme-relative and backslash forms are
// rejected so a redirect can never leave the site.
func LocalPath(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.ContainsAny(raw, "\\\r\n") {
		return "", false
	}
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme != "" || parsed.Host != "" {
		return "", false
	}
	return raw, true
}

func parseQuery(rawQuery string) url.Values {
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return url.Values{}
	}
	return query
}

func build(path string, query url.Values) string {
	if path == "" {
		path = Root
	}
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}

// Absolute joins a site-relative path onto the public site URL. An empty
// site URL leaves path unchanged.
func Absolute(siteURL string, path string) string {
	siteURL = strings.TrimRight(strings.TrimSpace(siteURL), "/")
	if siteURL == "" {
		return path
	}
	return siteURL + "/" + strings.TrimLeft(path, "/")
}
