// Package weberror renders shared error responses for web modules.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/pleromasprings/website/internal/services/web/platform/errors"
	webi18n "github.com/pleromasprings/website/internal/services/web/platform/i18n"
	"github.com/pleromasprings/website/internal/services/web/platform/pagerender"
	webtemplates "github.com/pleromasprings/website/internal/services/web/templates"
)

// ShouldRenderErrorPage reports whether status should use the error page UX.
func ShouldRenderErrorPage(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

var kindMessageKeys = map[apperrors.Kind]string{
	apperrors.KindNotFound:    "error.message.not_found",
	apperrors.KindUnavailable: "error.message.unavailable",
	apperrors.KindRateLimited: "error.message.rate_limited",
	apperrors.KindForbidden:   "error.message.forbidden",
	apperrors.KindUnknown:     "error.message.server",
}

// PublicMessage resolves a user-safe localized error message. Internal error
// text never reaches the visitor.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	key := apperrors.LocalizationKey(err)
	if key == "" {
		key = kindMessageKeys[apperrors.KindOf(err)]
	}
	if loc != nil && key != "" {
		if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" {
			return localized
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteErrorPage writes a localized error page inside the site layout. An
// empty message uses the generic copy for the status.
func WriteErrorPage(w http.ResponseWriter, r *http.Request, site pagerender.Site, statusCode int, message string) {
	if w == nil {
		return
	}
	if !ShouldRenderErrorPage(statusCode) {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	err := pagerender.WritePage(w, r, site, pagerender.Page{
		Title:      webtemplates.ErrorPageTitle(statusCode, loc),
		StatusCode: statusCode,
		Fragment:   webtemplates.ErrorState(statusCode, message, loc),
	})
	if err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteError writes a module-safe localized error response. Not-found and
// server failures get the full error page; other statuses get plain text.
func WriteError(w http.ResponseWriter, r *http.Request, site pagerender.Site, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	loc, _ := webi18n.ResolveLocalizer(r)
	if ShouldRenderErrorPage(statusCode) {
		WriteErrorPage(w, r, site, statusCode, PublicMessage(loc, err))
		return
	}
	http.Error(w, PublicMessage(loc, err), statusCode)
}
