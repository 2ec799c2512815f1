package townpress

// Signals are the classification inputs for one document. Classification is a
// pure function of these four strings; prior results never influence it.
type Signals struct {
	// Filename is the base name of the source file (e.g., "about.html").
	Filename string

	// Path is the full source path, used for path-segment hints.
	Path string

	// Title is the page title.
	Title string

	// Text is the cleaned visible text.
	Text string
}

// Classifier assigns a document to exactly one canonical page type, or to
// PageAdditional when nothing matches.
type Classifier interface {
	Classify(sig Signals) PageType
}
