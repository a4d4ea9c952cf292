// Package markdown renders post bodies to HTML and rendered HTML back to
// plain text for previews.
package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

// md converts post bodies. Raw HTML is passed through because posts are
// authored by the site owner and embed markup such as <pre> blocks.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM, extension.Footnote),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithUnsafe(),
	),
)

// ToHTML renders the Markdown source src.
func ToHTML(src []byte) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// blockTags end a run of text; a space is emitted after them so that
// adjacent blocks do not run together in the plain text.
var blockTags = map[string]bool{
	"address": true, "article": true, "blockquote": true, "br": true,
	"dd": true, "div": true, "dl": true, "dt": true, "figcaption": true,
	"figure": true, "footer": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"li": true, "main": true, "ol": true, "p": true, "pre": true,
	"section": true, "table": true, "td": true, "th": true, "tr": true,
	"ul": true,
}

// skipTags hold content that is never visible text.
var skipTags = map[string]bool{
	"script": true, "style": true, "template": true, "noscript": true,
}

// PlainText strips all markup from the HTML read from r and returns the
// unescaped text content.
func PlainText(r io.Reader) (string, error) {
	var (
		b    strings.Builder
		skip int
		z    = html.NewTokenizer(r)
	)
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			if errors.Is(z.Err(), io.EOF) {
				return b.String(), nil
			}
			return b.String(), fmt.Errorf("markdown: plain text: %w", z.Err())
		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skipTags[tag] && tt == html.StartTagToken {
				skip++
			} else if blockTags[tag] {
				b.WriteByte(' ')
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if skipTags[tag] {
				if skip > 0 {
					skip--
				}
			} else if blockTags[tag] {
				b.WriteByte(' ')
			}
		}
	}
}

// PlainTextString is PlainText over an in-memory HTML string.
func PlainTextString(s string) (string, error) {
	return PlainText(strings.NewReader(s))
}
