// Package cards maps content API records to the card and modal views shared
// by several pages.
package cards

import (
	"net/http"
	"strings"

	"github.com/pleromasprings/website/internal/services/web/content"
	webi18n "github.com/pleromasprings/website/internal/services/web/platform/i18n"
	"github.com/pleromasprings/website/internal/services/web/routepath"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

// Posts maps blog posts to list cards.
func Posts(posts []content.BlogPost, mediaBase string, loc webtemplates.Localizer) []webtemplates.PostCard {
	out := make([]webtemplates.PostCard, 0, len(posts))
	for _, post := range posts {
		slug := strings.TrimSpace(post.Slug)
		if slug == "" {
			continue
		}
		out = append(out, webtemplates.PostCard{
			Title:    strings.TrimSpace(post.Title),
			URL:      routepath.NewsPost(slug),
			Image:    content.MediaURL(mediaBase, post.Image),
			Excerpt:  content.Excerpt(post, content.ExcerptLength),
			Date:     webi18n.FormatDate(loc, post.PublishedDate.Time),
			Author:   strings.TrimSpace(post.Author),
			Category: post.Category.Label(),
		})
	}
	return out
}

// Events maps events to list cards whose detail links open the event modal
// on the current page.
func Events(events []content.Event, mediaBase string, r *http.Request, loc webtemplates.Localizer) []webtemplates.EventCard {
	out := make([]webtemplates.EventCard, 0, len(events))
	for _, event := range events {
		id := event.ID.String()
		out = append(out, webtemplates.EventCard{
			ID:        id,
			Title:     strings.TrimSpace(event.Title),
			Excerpt:   content.Summarize(event.Description, content.ExcerptLength),
			Date:      webi18n.FormatDate(loc, event.EventDate.Time),
			Time:      content.FormatClock(event.Time),
			Location:  strings.TrimSpace(event.Location),
			Image:     content.MediaURL(mediaBase, event.Image),
			DetailURL: detailURL(r, id),
		})
	}
	return out
}

// SelectedEvent returns the modal view for the event named by the request's
// event parameter, or nil when it names none of events.
func SelectedEvent(events []content.Event, mediaBase string, r *http.Request, loc webtemplates.Localizer) *webtemplates.EventDetail {
	event, ok := content.FindEvent(events, r.URL.Query().Get(routepath.EventParam))
	if !ok {
		return nil
	}
	return &webtemplates.EventDetail{
		Title:           strings.TrimSpace(event.Title),
		Description:     event.Description,
		Date:            webi18n.FormatDate(loc, event.EventDate.Time),
		Time:            content.FormatClock(event.Time),
		Location:        strings.TrimSpace(event.Location),
		Image:           content.MediaURL(mediaBase, event.Image),
		RegistrationURL: strings.TrimSpace(event.RegistrationLink),
		CloseURL:        routepath.WithoutParams(r.URL.Path, r.URL.RawQuery, routepath.EventParam),
	}
}

func detailURL(r *http.Request, id string) string {
	if id == "" {
		return ""
	}
	return routepath.WithParam(r.URL.Path, r.URL.RawQuery, routepath.EventParam, id)
}
