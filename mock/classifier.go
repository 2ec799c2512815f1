package mock

import "github.com/mwielgus/townpress"

var _ townpress.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of townpress.Classifier.
type Classifier struct {
	ClassifyFn func(sig townpress.Signals) townpress.PageType
}

func (c *Classifier) Classify(sig townpress.Signals) townpress.PageType {
	return c.ClassifyFn(sig)
}
