package townpress

// Converter converts cleaned HTML to Markdown.
//
// The conversion is lossy and one-directional: semantic content (headings,
// lists, links, emphasis, images) survives a round trip back to HTML, exact
// markup does not.
type Converter interface {
	// Convert transforms HTML content into Markdown. Runs of three or more
	// blank lines are collapsed and the result is trimmed.
	Convert(html string) (string, error)
}
