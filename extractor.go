package townpress

// ExtractResult holds the cleaned content of one HTML document.
type ExtractResult struct {
	// Title is the page title from <title>, falling back to the first <h1>.
	Title string

	// ContentHTML is the main content with boilerplate removed.
	// Heading levels, lists, tables, links, and images are preserved.
	ContentHTML string

	// Text is the visible text of ContentHTML, used for classification
	// and metadata scanning.
	Text string
}

// Extractor isolates main content from raw HTML, removing boilerplate such as
// navigation, headers, footers, and sidebar widgets.
//
// Extract must be idempotent: running it on its own ContentHTML output
// removes nothing further.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}
