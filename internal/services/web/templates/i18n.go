package templates

import (
	"fmt"

	webi18n "github.com/pleromasprings/website/internal/services/web/platform/i18n"
	"golang.org/x/text/message"
)

// Localizer provides translated strings for web templ components.
type Localizer = webi18n.Localizer

// LanguageOption represents a supported language option in the UI.
type LanguageOption = webi18n.LanguageOption

// T returns a translated string or a key-derived fallback.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc != nil {
		return loc.Sprintf(key, args...)
	}
	if keyString, ok := key.(string); ok {
		if len(args) > 0 {
			return fmt.Sprintf(keyString, args...)
		}
		return keyString
	}
	return ""
}
