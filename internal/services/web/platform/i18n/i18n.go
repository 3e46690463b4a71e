// Package i18n resolves the request language and builds localizers for page
// rendering.
package i18n

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	platformi18n "github.com/pleromasprings/website/internal/platform/i18n"
	_ "github.com/pleromasprings/website/internal/platform/i18n/catalog"
	"github.com/pleromasprings/website/internal/services/web/platform/httpx"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// CookieName stores the visitor's language preference.
	CookieName = "ps_lang"
)

const cookieMaxAge = 365 * 24 * time.Hour

// Localizer provides translated strings for templates.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// LanguageOption is one entry of the language switcher.
type LanguageOption struct {
	Tag    string
	Label  string
	URL    string
	Active bool
}

// ResolveTag picks the request language: the lang query parameter first,
// then the preference cookie, then Accept-Language. The bool reports whether
// the choice came from the query parameter and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return platformi18n.DefaultTag(), false
	}
	if r.URL != nil {
		if raw := strings.TrimSpace(r.URL.Query().Get(LangParam)); raw != "" {
			if tag, ok := platformi18n.ParseTag(raw); ok {
				return tag, true
			}
		}
	}
	if cookie, err := r.Cookie(CookieName); err == nil {
		if tag, ok := platformi18n.ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return platformi18n.MatchTags(tags), false
		}
	}
	return platformi18n.DefaultTag(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag, secure bool) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int(cookieMaxAge.Seconds()),
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// PersistLanguage stores an explicit ?lang= choice in the preference cookie
// once per request, before any page renders.
func PersistLanguage(secure func(*http.Request) bool) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tag, persist := ResolveTag(r); persist {
				SetLanguageCookie(w, tag, secure != nil && secure(r))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveLocalizer returns the printer and tag for the request language.
func ResolveLocalizer(r *http.Request) (*message.Printer, language.Tag) {
	tag, _ := ResolveTag(r)
	return Printer(tag), tag
}

// LanguageOptions lists the supported languages with switch links that keep
// the current path and query.
func LanguageOptions(active language.Tag, path string, rawQuery string, loc Localizer) []LanguageOption {
	supported := platformi18n.SupportedTags()
	options := make([]LanguageOption, 0, len(supported))
	for _, tag := range supported {
		label := tag.String()
		if loc != nil {
			if localized := strings.TrimSpace(loc.Sprintf("lang." + tag.String())); localized != "" {
				label = localized
			}
		}
		options = append(options, LanguageOption{
			Tag:    tag.String(),
			Label:  label,
			URL:    LanguageURL(path, rawQuery, tag.String()),
			Active: tag == active,
		})
	}
	return options
}

// LanguageURL returns path with the lang parameter set to tag.
func LanguageURL(path string, rawQuery string, tag string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, tag)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

// FormatDate renders a long calendar date in the localizer's language, for
// example "May 1, 2025" or "1 mai 2025". The zero time renders as "".
func FormatDate(loc Localizer, t time.Time) string {
	if t.IsZero() {
		return ""
	}
	if loc == nil {
		return t.Format("January 2, 2006")
	}
	month := loc.Sprintf("month." + strconv.Itoa(int(t.Month())))
	return loc.Sprintf("date.long", month, t.Day(), strconv.Itoa(t.Year()))
}

// FormatNumber renders n with the digit grouping of loc's language.
func FormatNumber(loc Localizer, n int64) string {
	if loc == nil {
		return strconv.FormatInt(n, 10)
	}
	return loc.Sprintf("%d", n)
}
