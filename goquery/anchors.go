// Package goquery inspects rendered markdown with goquery.
package goquery

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/readmegen"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure AnchorChecker implements readmegen.AnchorChecker at compile time.
var _ readmegen.AnchorChecker = (*AnchorChecker)(nil)

// AnchorChecker renders markdown to HTML with generated heading IDs and
// reports in-page links whose target does not exist.
type AnchorChecker struct {
	md goldmark.Markdown
}

// NewAnchorChecker creates a new AnchorChecker.
func NewAnchorChecker() *AnchorChecker {
	return &AnchorChecker{
		md: goldmark.New(
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(html.WithUnsafe()),
		),
	}
}

// DanglingAnchors returns the fragments of "#..." links in markdown that
// match no element id or named anchor, in document order without duplicates.
func (c *AnchorChecker) DanglingAnchors(markdown string) ([]string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(markdown), &buf); err != nil {
		return nil, readmegen.Errorf(readmegen.EINVALID, "failed to render markdown: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(&buf)
	if err != nil {
		return nil, readmegen.Errorf(readmegen.EINVALID, "failed to parse HTML: %v", err)
	}

	targets := make(map[string]bool)
	doc.Find("[id]").Each(func(_ int, sel *goquery.Selection) {
		if id, ok := sel.Attr("id"); ok {
			targets[id] = true
		}
	})
	doc.Find("a[name]").Each(func(_ int, sel *goquery.Selection) {
		if name, ok := sel.Attr("name"); ok {
			targets[name] = true
		}
	})

	seen := make(map[string]bool)
	var dangling []string
	doc.Find(`a[href^="#"]`).Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		fragment := strings.TrimPrefix(href, "#")
		if unescaped, err := url.PathUnescape(fragment); err == nil {
			fragment = unescaped
		}
		if fragment == "" || targets[fragment] || seen[fragment] {
			return
		}
		seen[fragment] = true
		dangling = append(dangling, fragment)
	})

	return dangling, nil
}
