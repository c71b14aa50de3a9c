package blog

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

const excerptLen = 300

var (
	mdParser = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)
	ugcPolicy   = newUGCPolicy()
	stripPolicy = bluemonday.StrictPolicy()
	whitespace  = regexp.MustCompile(`\s+`)
)

func newUGCPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowImages()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)
	return p
}

// RenderMarkdown converts post content to sanitised HTML.
func RenderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(source), &buf); err != nil {
		return ugcPolicy.Sanitize(source)
	}

	return string(ugcPolicy.SanitizeBytes(buf.Bytes()))
}

// PlainText renders markdown and strips every tag, collapsing whitespace.
func PlainText(source string) string {
	text := stripPolicy.Sanitize(RenderMarkdown(source))
	text = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&#39;", "'", "&#34;", `"`).Replace(text)
	return strings.TrimSpace(whitespace.ReplaceAllString(text, " "))
}

// DeriveExcerpt cuts the plain text of content at a word boundary.
func DeriveExcerpt(content string) string {
	text := PlainText(content)
	if utf8.RuneCountInString(text) <= excerptLen {
		return text
	}

	runes := []rune(text)[:excerptLen]
	cut := string(runes)
	if i := strings.LastIndex(cut, " "); i > excerptLen/2 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " .,;:") + "…"
}
