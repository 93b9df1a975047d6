// Package readability provides the default extraction engine, wrapping
// go-readability's port of the Firefox Reader View heuristics.
package readability

import (
	"strings"

	"github.com/fwojciec/urltext"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements urltext.Extractor at compile time.
var _ urltext.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the most likely article title and
// body region, with boilerplate (navigation, sidebars, scripts, styling)
// discarded.
func (e *Extractor) Extract(rawHTML string) (*urltext.ExtractResult, error) {
	if rawHTML == "" {
		return nil, urltext.Errorf(urltext.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, urltext.Errorf(urltext.EINTERNAL, "readability: %v", err)
	}

	return &urltext.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
