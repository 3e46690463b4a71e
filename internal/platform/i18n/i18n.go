// Package i18n defines the language tags the website supports.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

var (
	defaultTag    = language.MustParse("en-US")
	supportedTags = []language.Tag{
		defaultTag,
		language.MustParse("fr-FR"),
	}
	matcher = language.NewMatcher(supportedTags)
)

// DefaultTag returns the fallback language.
func DefaultTag() language.Tag {
	return defaultTag
}

// SupportedTags returns a copy of the supported languages in display order.
func SupportedTags() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// ParseTag parses a raw tag and reports whether it maps to a supported
// language. Region-less inputs such as "fr" resolve to their supported region.
func ParseTag(raw string) (language.Tag, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultTag, false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return defaultTag, false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence < language.High {
		return defaultTag, false
	}
	return supportedTags[index], true
}

// MatchTags picks the best supported language for a preference list.
func MatchTags(preferred []language.Tag) language.Tag {
	if len(preferred) == 0 {
		return defaultTag
	}
	_, index, confidence := matcher.Match(preferred...)
	if confidence == language.No {
		return defaultTag
	}
	return supportedTags[index]
}
