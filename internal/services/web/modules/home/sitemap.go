package home

import (
	"encoding/xml"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/routepath"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

// staticPages are listed in every sitemap ahead of the blog posts.
var staticPages = []string{
	routepath.Root,
	routepath.About,
	routepath.Programs,
	routepath.Impact,
	routepath.News,
	routepath.Events,
	routepath.Gallery,
	routepath.Resources,
	routepath.Contact,
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

func buildSitemap(siteURL string, posts []content.BlogPost) urlSet {
	set := urlSet{XMLNS: sitemapNamespace, URLs: make([]sitemapURL, 0, len(staticPages)+len(posts))}
	for _, page := range staticPages {
		set.URLs = append(set.URLs, sitemapURL{Loc: routepath.Absolute(siteURL, page)})
	}
	for _, post := range content.SortPostsNewestFirst(posts) {
		slug := strings.TrimSpace(post.Slug)
		if slug == "" {
			continue
		}
		entry := sitemapURL{Loc: routepath.Absolute(siteURL, routepath.NewsPost(slug))}
		if !post.PublishedDate.IsZero() {
			entry.LastMod = post.PublishedDate.UTC().Format(time.DateOnly)
		}
		set.URLs = append(set.URLs, entry)
	}
	return set
}

func writeSitemap(w http.ResponseWriter, set urlSet) error {
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return err
	}
	return enc.Close()
}
