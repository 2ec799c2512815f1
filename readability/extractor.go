package readability

import (
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/mwielgus/townpress"
)

// Ensure Extractor implements townpress.Extractor at compile time.
var _ townpress.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML. It is an
// alternative to the rule-based cleaner for sites whose markup defeats the
// anchor selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*townpress.ExtractResult, error) {
	if rawHTML == "" {
		return nil, townpress.Errorf(townpress.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &townpress.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
		Text:        strings.Join(strings.Fields(article.TextContent), " "),
	}, nil
}
