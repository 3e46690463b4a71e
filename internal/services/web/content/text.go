package content

import (
	"net/url"
	"strings"
	"time"

	"github.com/pleromasprings/website/internal/services/web/markup"
)

// ExcerptLength is the rune budget for generated excerpts.
const ExcerptLength = 150

// Excerpt returns the post's own excerpt, or the first n runes of its body
// as plain text followed by "...".
func Excerpt(post BlogPost, n int) string {
	if excerpt := strings.TrimSpace(post.Excerpt); excerpt != "" {
		return excerpt
	}
	return Summarize(post.Content, n)
}

// Summarize converts a body to plain text and cuts it to n runes plus "...".
// Bodies shorter than n still get the suffix when they are non-empty.
func Summarize(body string, n int) string {
	text := markup.PlainText(body)
	if text == "" {
		return ""
	}
	truncated := markup.Truncate(text, n, "...")
	if truncated == text {
		return text + "..."
	}
	return truncated
}

// MediaURL joins an API media path onto base. Absolute URLs pass through
// untouched and empty paths stay empty.
func MediaURL(base string, path string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		return ""
	}
	if strings.HasPrefix(path, "//") {
		return path
	}
	if parsed, err := url.Parse(path); err != nil {
		return ""
	} else if parsed.IsAbs() {
		return path
	}
	base = strings.TrimRight(strings.TrimSpace(base), "/")
	if base == "" {
		return "/" + strings.TrimLeft(path, "/")
	}
	return base + "/" + strings.TrimLeft(path, "/")
}

// FormatClock renders an API time-of-day ("14:00:00") as "14:00". Values in
// other shapes come back trimmed but otherwise untouched.
func FormatClock(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{"15:04:05", "15:04"} {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed.Format("15:04")
		}
	}
	return raw
}
