package web

import (
	"bytes"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// The greeting message is short prose, so raw HTML is left to goldmark to omit
// and single newlines become line breaks.
var messageMarkdown = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough, extension.Linkify),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

var messagePolicy = newMessagePolicy()

// newMessagePolicy allows text formatting and outbound links only. Images,
// tables and headings would break the card layout.
func newMessagePolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "br", "strong", "em", "del", "blockquote", "ul", "ol", "li", "code")
	p.AllowStandardURLs()
	p.AllowAttrs("href").OnElements("a")
	p.RequireParseableURLs(true)
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// RenderMarkdown converts the configured greeting message to sanitized HTML.
// Returns empty string for empty or whitespace-only input.
func RenderMarkdown(src string) string {
	if strings.TrimSpace(src) == "" {
		return ""
	}

	var buf bytes.Buffer
	if err := messageMarkdown.Convert([]byte(src), &buf); err != nil {
		return messagePolicy.Sanitize(src)
	}
	return messagePolicy.Sanitize(buf.String())
}
