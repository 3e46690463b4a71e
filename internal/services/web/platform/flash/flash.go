// Package flash carries one-time notices across a post/redirect/get cycle.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/pleromasprings/website/internal/services/web/platform/requestmeta"
)

// CookieName is the cookie used for one-time notices.
const CookieName = "ps_flash"

// maxMessageRunes bounds raw messages so the cookie stays small.
const maxMessageRunes = 300

// Kind classifies notice presentation.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

// Notice is one message for the next page render. Key names a catalog
// message; Message holds text that cannot come from the catalog, such as an
// error detail returned by the content API.
type Notice struct {
	Kind    Kind   `json:"kind"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message,omitempty"`
}

// Success builds a success notice for a catalog key.
func Success(key string) Notice {
	return Notice{Kind: KindSuccess, Key: key}
}

// Error builds an error notice for a catalog key.
func Error(key string) Notice {
	return Notice{Kind: KindError, Key: key}
}

// Write stores a notice cookie for the next page render.
func Write(w http.ResponseWriter, r *http.Request, notice Notice, policy requestmeta.ProxyPolicy) {
	if w == nil {
		return
	}
	normalized, ok := normalize(notice)
	if !ok {
		return
	}
	payload, err := json.Marshal(normalized)
	if err != nil {
		return
	}
	http.SetCookie(w, cookie(r, base64.RawURLEncoding.EncodeToString(payload), 0, policy))
}

// ReadAndClear returns the pending notice and expires its cookie.
func ReadAndClear(w http.ResponseWriter, r *http.Request, policy requestmeta.ProxyPolicy) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	stored, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	if w != nil {
		http.SetCookie(w, cookie(r, "", -1, policy))
	}
	return decode(stored.Value)
}

func cookie(r *http.Request, value string, maxAge int, policy requestmeta.ProxyPolicy) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPS(r, policy),
		SameSite: http.SameSiteLaxMode,
	}
}

func decode(raw string) (Notice, bool) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return Notice{}, false
	}
	decoded, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return Notice{}, false
	}
	var notice Notice
	if err := json.Unmarshal(decoded, &notice); err != nil {
		return Notice{}, false
	}
	return normalize(notice)
}

func normalize(notice Notice) (Notice, bool) {
	notice.Key = strings.TrimSpace(notice.Key)
	notice.Message = strings.TrimSpace(notice.Message)
	if utf8.RuneCountInString(notice.Message) > maxMessageRunes {
		notice.Message = string([]rune(notice.Message)[:maxMessageRunes])
	}
	if notice.Key == "" && notice.Message == "" {
		return Notice{}, false
	}
	notice.Kind = Kind(strings.ToLower(strings.TrimSpace(string(notice.Kind))))
	switch notice.Kind {
	case KindSuccess, KindInfo, KindError:
		return notice, true
	default:
		return Notice{}, false
	}
}
