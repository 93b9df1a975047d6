// Package trafilatura provides an alternative extraction engine wrapping
// go-trafilatura. It tends to do better on news-style pages at the cost of
// heavier dependencies; select it with --engine trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/urltext"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements urltext.Extractor at compile time.
var _ urltext.Extractor = (*Extractor)(nil)

// Extractor runs go-trafilatura over raw HTML. Fallback extraction is
// enabled so pages that defeat the main algorithm still yield content,
// and comment sections are excluded since only the article text is
// wanted in the output.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback:  true,
			ExcludeComments: true,
		},
	}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*urltext.ExtractResult, error) {
	if rawHTML == "" {
		return nil, urltext.Errorf(urltext.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil {
		return nil, urltext.Errorf(urltext.EINTERNAL, "trafilatura: %v", err)
	}

	contentHTML, err := renderContent(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &urltext.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderContent serializes the extracted content tree back to HTML.
// A nil node means no main content was found.
func renderContent(n *html.Node) (string, error) {
	if n == nil {
		return "", nil
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
