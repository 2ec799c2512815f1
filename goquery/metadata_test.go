package goquery_test

import (
	"testing"

	"github.com/mwielgus/townpress"
	"github.com/mwielgus/townpress/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Scanner implements townpress.MetadataScanner at compile time.
var _ townpress.MetadataScanner = (*goquery.Scanner)(nil)

func TestScanner_Scan(t *testing.T) {
	t.Parallel()

	t.Run("derives site name from title trimming suffixes", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewScanner()

		meta, err := s.Scan(`<html><head><title>Town of Ridge - Home</title></head><body></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "Town of Ridge", meta.Name)

		meta, err = s.Scan(`<html><head><title>Abbottstown Borough | Welcome</title></head><body></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "Abbottstown Borough", meta.Name)
	})

	t.Run("falls back to logo alt text for site name", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><img src="/img/header.png" alt="East Berlin Borough logo"></body></html>`

		s := goquery.NewScanner()
		meta, err := s.Scan(html)

		require.NoError(t, err)
		assert.Equal(t, "East Berlin Borough logo", meta.Name)
	})

	t.Run("finds logo by src alt or class marker", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewScanner()

		meta, err := s.Scan(`<html><body><img src="/img/town-seal.png" alt="decorative"></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "/img/town-seal.png", meta.Logo)

		meta, err = s.Scan(`<html><body><img src="/img/h.png" class="siteLogo"></body></html>`)
		require.NoError(t, err)
		assert.Equal(t, "/img/h.png", meta.Logo)
	})

	t.Run("prefers labeled footer phone and fax", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Call 111-222-3333 for the county.</p>
<footer id="footer">Phone: (717) 259-0965 Fax: (717) 259-1111</footer>
</body></html>`

		s := goquery.NewScanner()
		meta, err := s.Scan(html)

		require.NoError(t, err)
		assert.Equal(t, "(717) 259-0965", meta.Contact.Phone)
		assert.Equal(t, "(717) 259-1111", meta.Contact.Fax)
	})

	t.Run("falls back to digit grouping phone match", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Reach us at 717.259.0965 anytime.</p></body></html>`

		s := goquery.NewScanner()
		meta, err := s.Scan(html)

		require.NoError(t, err)
		assert.Equal(t, "717.259.0965", meta.Contact.Phone)
	})

	t.Run("extracts email and address", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<p>Write to clerk@ridgepa.gov or visit 123 Main Street, Ridge, PA 17301.</p>
</body></html>`

		s := goquery.NewScanner()
		meta, err := s.Scan(html)

		require.NoError(t, err)
		assert.Equal(t, "clerk@ridgepa.gov", meta.Contact.Email)
		assert.Equal(t, "123 Main Street, Ridge, PA 17301", meta.Contact.Address)
	})

	t.Run("extracts office hours with length cap", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Office hours: Monday through Friday 8:00 AM to 4:30 PM.</p></body></html>`

		s := goquery.NewScanner()
		meta, err := s.Scan(html)

		require.NoError(t, err)
		assert.Equal(t, "Monday through Friday 8:00 AM to 4:30 PM", meta.Contact.Hours)
	})

	t.Run("collects social links once per platform", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<a href="https://www.facebook.com/ridgepa">Facebook</a>
<a href="https://www.facebook.com/ridgepa/events">More Facebook</a>
<a href="https://twitter.com/ridgepa">Twitter</a>
<a href="https://www.youtube.com/@ridgepa">YouTube</a>
</body></html>`

		s := goquery.NewScanner()
		meta, err := s.Scan(html)

		require.NoError(t, err)
		assert.Equal(t, "https://www.facebook.com/ridgepa", meta.Social["facebook"])
		assert.Equal(t, "https://twitter.com/ridgepa", meta.Social["twitter"])
		assert.Equal(t, "https://www.youtube.com/@ridgepa", meta.Social["youtube"])
	})

	t.Run("missing fields yield empty strings", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewScanner()
		meta, err := s.Scan(`<html><body><p>Nothing useful.</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, meta.Name)
		assert.Empty(t, meta.Logo)
		assert.Empty(t, meta.Contact.Phone)
		assert.Empty(t, meta.Contact.Email)
		assert.Empty(t, meta.Contact.Hours)
		assert.Empty(t, meta.Social)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		s := goquery.NewScanner()
		_, err := s.Scan("")

		assert.Equal(t, townpress.EINVALID, townpress.ErrorCode(err))
	})
}
