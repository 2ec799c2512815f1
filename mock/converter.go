package mock

import "github.com/mwielgus/townpress"

var _ townpress.Converter = (*Converter)(nil)

// Converter is a mock implementation of townpress.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
