// Package goquery provides a last-resort implementation of urltext.Extractor.
// It has none of the readability heuristics: it takes the document <title>
// and the <body> with obvious boilerplate elements removed. The batch runner
// falls back to it when the primary engine fails on a page, so the page
// still yields best-effort text instead of nothing.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/urltext"
)

// boilerplateSelector matches elements that never belong to article content.
const boilerplateSelector = "script, style, noscript, nav, header, footer, aside, form"

// Ensure Extractor implements urltext.Extractor at compile time.
var _ urltext.Extractor = (*Extractor)(nil)

// Extractor extracts page content with plain CSS selection.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the document title and the body markup with boilerplate
// elements removed. The result is rougher than a readability engine's but
// never depends on the page having a recognizable article structure.
func (e *Extractor) Extract(rawHTML string) (*urltext.ExtractResult, error) {
	if rawHTML == "" {
		return nil, urltext.Errorf(urltext.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, urltext.Errorf(urltext.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(boilerplateSelector).Remove()

	body := doc.Find("body")
	contentHTML, err := body.Html()
	if err != nil {
		return nil, urltext.Errorf(urltext.EINTERNAL, "failed to render body: %v", err)
	}

	return &urltext.ExtractResult{
		Title:       strings.TrimSpace(doc.Find("title").First().Text()),
		ContentHTML: contentHTML,
	}, nil
}
