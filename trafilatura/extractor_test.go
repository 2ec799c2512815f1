package trafilatura_test

import (
	"testing"

	"github.com/mwielgus/townpress"
	"github.com/mwielgus/townpress/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements townpress.Extractor at compile time.
var _ townpress.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Public Works - Town of Ridge</title>
<meta property="og:title" content="Public Works">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Public Works</h1>
<p>The department maintains roads, parks, and the municipal water system.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content and drops boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/news">News</a></nav>
<article>
<h1>Leaf Collection</h1>
<p>Curbside leaf collection runs through the end of November in all zones.</p>
</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Curbside leaf collection")
		assert.NotContains(t, result.ContentHTML, "Sidebar content")
	})

	t.Run("populates whitespace-collapsed text", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<p>The borough    council
adopted the annual budget at its December meeting.</p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "The borough council adopted")
		assert.NotContains(t, result.Text, "\n")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, townpress.EINVALID, townpress.ErrorCode(err))
	})
}
