package goquery_test

import (
	"testing"

	"github.com/mwielgus/townpress"
	"github.com/mwielgus/townpress/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Cleaner implements townpress.Extractor at compile time.
var _ townpress.Extractor = (*goquery.Cleaner)(nil)

func TestCleaner_Extract(t *testing.T) {
	t.Parallel()

	t.Run("prefers main#main over body", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Town</title></head><body>
<div>outside content</div>
<main id="main"><p>inside content</p></main>
</body></html>`

		c := goquery.NewCleaner()
		result, err := c.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "inside content")
		assert.NotContains(t, result.ContentHTML, "outside content")
	})

	t.Run("falls back to content wrapper class", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="contentWrapper"><p>wrapped content</p></div>
<div>stray content</div>
</body></html>`

		c := goquery.NewCleaner()
		result, err := c.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "wrapped content")
		assert.NotContains(t, result.ContentHTML, "stray content")
	})

	t.Run("removes scripts styles and frames", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
<script>alert("hi")</script>
<style>p { color: red }</style>
<iframe src="https://example.com/embed"></iframe>
<noscript>enable js</noscript>
<p>Borough news.</p>
</main></body></html>`

		c := goquery.NewCleaner()
		result, err := c.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Borough news.")
		assert.NotContains(t, result.ContentHTML, "alert")
		assert.NotContains(t, result.ContentHTML, "color: red")
		assert.NotContains(t, result.ContentHTML, "iframe")
		assert.NotContains(t, result.ContentHTML, "enable js")
	})

	t.Run("removes boilerplate by class and id patterns", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
<div class="Sidebar-right"><a href="/a">quick links</a></div>
<div id="breadcrumbTrail">Home &gt; News</div>
<div class="cookieBanner">We use cookies</div>
<div class="shareWidget">Share this</div>
<p>Actual announcement text.</p>
</main></body></html>`

		c := goquery.NewCleaner()
		result, err := c.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Actual announcement text.")
		assert.NotContains(t, result.ContentHTML, "quick links")
		assert.NotContains(t, result.ContentHTML, "cookies")
		assert.NotContains(t, result.ContentHTML, "Share this")
		assert.NotContains(t, result.ContentHTML, "News")
	})

	t.Run("preserves headings lists tables links and images", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
<h2>Trash Collection</h2>
<ul><li>Monday route</li></ul>
<table><tr><td>Zone 1</td></tr></table>
<p><a href="/schedule.pdf">Schedule</a></p>
<img src="/img/truck.jpg" alt="Garbage truck">
</main></body></html>`

		c := goquery.NewCleaner()
		result, err := c.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "<h2>Trash Collection</h2>")
		assert.Contains(t, result.ContentHTML, "<li>Monday route</li>")
		assert.Contains(t, result.ContentHTML, "Zone 1")
		assert.Contains(t, result.ContentHTML, `href="/schedule.pdf"`)
		assert.Contains(t, result.ContentHTML, `alt="Garbage truck"`)
	})

	t.Run("collapses empty elements but keeps image containers", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
<div class="spacer"></div>
<p>   </p>
<div><img src="/seal.png" alt="Town seal"></div>
<hr>
<p>Kept.</p>
</main></body></html>`

		c := goquery.NewCleaner()
		result, err := c.Extract(html)

		require.NoError(t, err)
		assert.NotContains(t, result.ContentHTML, "spacer")
		assert.Contains(t, result.ContentHTML, "seal.png")
		assert.Contains(t, result.ContentHTML, "<hr")
		assert.Contains(t, result.ContentHTML, "Kept.")
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><title>Town of Ridge - Home</title></head><body>
<nav><a href="/">Home</a></nav>
<main><div class="sidebar">links</div><h1>Welcome</h1><p>Founded 1890.</p></main>
<footer>Copyright</footer>
</body></html>`

		c := goquery.NewCleaner()
		first, err := c.Extract(html)
		require.NoError(t, err)

		second, err := c.Extract(first.ContentHTML)
		require.NoError(t, err)

		assert.Equal(t, first.ContentHTML, second.ContentHTML)
	})

	t.Run("extracts title with h1 fallback", func(t *testing.T) {
		t.Parallel()

		c := goquery.NewCleaner()

		withTitle, err := c.Extract(`<html><head><title>About Us - Town</title></head><body><main><p>x</p></main></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "About Us - Town", withTitle.Title)

		withH1, err := c.Extract(`<html><body><main><h1>Borough Council</h1><p>x</p></main></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "Borough Council", withH1.Title)
	})

	t.Run("collapses whitespace in visible text", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p>The   mayor
		and the council</p></main></body></html>`

		c := goquery.NewCleaner()
		result, err := c.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "The mayor and the council", result.Text)
	})

	t.Run("rewrites image paths when enabled", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main>
<img src="/getmedia/abc-123/truck.jpg?width=300" alt="Truck">
</main></body></html>`

		c := &goquery.Cleaner{RewriteImages: true}
		result, err := c.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, `src="images/truck.jpg"`)
	})

	t.Run("handles malformed markup without error", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><p>Unclosed paragraph<div>Nested wrong</main>`

		c := goquery.NewCleaner()
		result, err := c.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "Unclosed paragraph")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		c := goquery.NewCleaner()
		_, err := c.Extract("")

		assert.Equal(t, townpress.EINVALID, townpress.ErrorCode(err))
	})
}
