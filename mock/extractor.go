package mock

import "github.com/fwojciec/urltext"

var _ urltext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of urltext.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*urltext.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*urltext.ExtractResult, error) {
	return e.ExtractFn(html)
}
