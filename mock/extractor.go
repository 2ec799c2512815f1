package mock

import "github.com/mwielgus/townpress"

var _ townpress.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of townpress.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*townpress.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*townpress.ExtractResult, error) {
	return e.ExtractFn(html)
}
