// Package markup turns blog post bodies into sanitized HTML and plain text.
package markup

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.Typographer,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
			gmhtml.WithXHTML(),
			// Raw HTML from the CMS editor passes through and is sanitized below.
			gmhtml.WithUnsafe(),
		),
	)
	bodyPolicy  = newBodyPolicy()
	stripPolicy = bluemonday.StripTagsPolicy()
)

func newBodyPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements("code", "span", "div")
	policy.AllowElements("table", "thead", "tbody", "tr", "th", "td", "figure", "figcaption")
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)
	return policy
}

// RenderHTML converts a Markdown or HTML post body into sanitized HTML.
func RenderHTML(source string) (string, error) {
	if strings.TrimSpace(source) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return bodyPolicy.Sanitize(buf.String()), nil
}

// PlainText strips all markup and collapses whitespace.
func PlainText(source string) string {
	stripped := html.UnescapeString(stripPolicy.Sanitize(source))
	return strings.Join(strings.Fields(stripped), " ")
}

// Truncate shortens text to at most n runes and appends suffix when it cut
// anything.
func Truncate(text string, n int, suffix string) string {
	if n <= 0 || utf8.RuneCountInString(text) <= n {
		return text
	}
	runes := []rune(text)
	return strings.TrimRightFunc(string(runes[:n]), func(r rune) bool { return r == ' ' }) + suffix
}
