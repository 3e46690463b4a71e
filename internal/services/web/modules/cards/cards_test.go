package cards

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/pleromasprings/website/internal/services/web/content"
	webi18n "github.com/pleromasprings/website/internal/services/web/platform/i18n"
)

func date(y int, m time.Month, d int) content.Date {
	return content.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func TestPostsSkipsMissingSlugsAndFormats(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.AmericanEnglish)
	got := Posts([]content.BlogPost{
		{Title: "No slug"},
		{
			Title:         "Clinic Day",
			Slug:          "clinic-day",
			Author:        "Ama",
			Content:       "<p>We screened 200 children.</p>",
			Image:         "/media/clinic.jpg",
			PublishedDate: date(2025, time.May, 1),
			Category:      content.CategoryRef{Category: content.Category{Name: "Outreach"}, Set: true},
		},
	}, "https://cms.example.org", loc)

	if len(got) != 1 {
		t.Fatalf("cards = %+v", got)
	}
	card := got[0]
	if card.URL != "/news/clinic-day" || card.Image != "https://cms.example.org/media/clinic.jpg" {
		t.Fatalf("card urls = %q %q", card.URL, card.Image)
	}
	if card.Excerpt != "We screened 200 children...." {
		t.Fatalf("excerpt = %q", card.Excerpt)
	}
	if card.Date != "May 1, 2025" || card.Category != "Outreach" {
		t.Fatalf("date/category = %q %q", card.Date, card.Category)
	}
}

func TestEventsAndSelection(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.AmericanEnglish)
	events := []content.Event{
		{ID: "7", Title: "Screening", Description: strings.Repeat("a", 200), EventDate: date(2025, time.June, 1), Time: "09:30:00", RegistrationLink: "https://example.org/register"},
	}
	r := httptest.NewRequest(http.MethodGet, "/events?event=7", nil)

	cards := Events(events, "", r, loc)
	if len(cards) != 1 || cards[0].DetailURL != "/events?event=7" || cards[0].Time != "09:30" {
		t.Fatalf("cards = %+v", cards)
	}
	if got := []rune(cards[0].Excerpt); len(got) != 153 {
		t.Fatalf("excerpt length = %d, want 153", len(got))
	}

	selected := SelectedEvent(events, "", r, loc)
	if selected == nil {
		t.Fatal("expected selected event")
	}
	if selected.CloseURL != "/events" || selected.RegistrationURL != "https://example.org/register" {
		t.Fatalf("selected = %+v", selected)
	}

	if SelectedEvent(events, "", httptest.NewRequest(http.MethodGet, "/events?event=8", nil), loc) != nil {
		t.Fatal("unknown event selected")
	}
}
