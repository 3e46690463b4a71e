package news

import (
	"encoding/xml"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pleromasprings/website/internal/services/web/content"
	"github.com/pleromasprings/website/internal/services/web/routepath"
)

type rss struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	GUID        rssGUID `xml:"guid"`
	PubDate     string  `xml:"pubDate,omitempty"`
	Category    string  `xml:"category,omitempty"`
	Description string  `xml:"description,omitempty"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

func buildFeed(title string, description string, siteURL string, posts []content.BlogPost) rss {
	channel := rssChannel{
		Title:       title,
		Link:        routepath.Absolute(siteURL, routepath.News),
		Description: description,
		Language:    "en",
		Items:       make([]rssItem, 0, len(posts)),
	}
	for _, post := range posts {
		slug := strings.TrimSpace(post.Slug)
		if slug == "" {
			continue
		}
		link := routepath.Absolute(siteURL, routepath.NewsPost(slug))
		item := rssItem{
			Title:       strings.TrimSpace(post.Title),
			Link:        link,
			GUID:        rssGUID{Value: link, IsPermaLink: true},
			Category:    post.Category.Label(),
			Description: content.Excerpt(post, content.ExcerptLength),
		}
		if !post.PublishedDate.IsZero() {
			item.PubDate = post.PublishedDate.UTC().Format(time.RFC1123Z)
		}
		channel.Items = append(channel.Items, item)
	}
	return rss{Version: "2.0", Channel: channel}
}

func writeFeed(w http.ResponseWriter, feed rss) error {
	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(feed); err != nil {
		return err
	}
	return enc.Close()
}
