package townpress_test

import (
	"testing"

	"github.com/mwielgus/townpress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayouts(t *testing.T) {
	t.Parallel()

	layouts := townpress.DefaultLayouts()

	require.Len(t, layouts, 12)
	assert.Equal(t, townpress.LayoutHero, layouts[townpress.PageHome])
	assert.Equal(t, townpress.LayoutSingleColumn, layouts[townpress.PageAbout])
	assert.Equal(t, townpress.LayoutTwoColumn, layouts[townpress.PageContact])
	assert.Equal(t, townpress.LayoutCardGrid, layouts[townpress.PageNews])
	assert.Equal(t, townpress.LayoutCompactList, layouts[townpress.PageDocuments])
}

func TestLayoutFor(t *testing.T) {
	t.Parallel()

	t.Run("returns assigned layout", func(t *testing.T) {
		t.Parallel()

		layouts := townpress.DefaultLayouts()

		assert.Equal(t, townpress.LayoutHero, townpress.LayoutFor(layouts, townpress.PageHome))
	})

	t.Run("falls back to single column for missing assignment", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, townpress.LayoutSingleColumn, townpress.LayoutFor(nil, townpress.PageHome))
	})

	t.Run("falls back to single column for invalid assignment", func(t *testing.T) {
		t.Parallel()

		layouts := map[townpress.PageType]townpress.Layout{townpress.PageHome: "z"}

		assert.Equal(t, townpress.LayoutSingleColumn, townpress.LayoutFor(layouts, townpress.PageHome))
	})
}

func TestParseLayout(t *testing.T) {
	t.Parallel()

	t.Run("accepts the five variants", func(t *testing.T) {
		t.Parallel()

		for _, s := range []string{"a", "b", "c", "d", "e"} {
			l, err := townpress.ParseLayout(s)
			require.NoError(t, err)
			assert.Equal(t, townpress.Layout(s), l)
		}
	})

	t.Run("rejects unknown identifiers", func(t *testing.T) {
		t.Parallel()

		_, err := townpress.ParseLayout("f")

		assert.Equal(t, townpress.EINVALID, townpress.ErrorCode(err))
	})
}

func TestParsePageType(t *testing.T) {
	t.Parallel()

	t.Run("accepts canonical types and overflow", func(t *testing.T) {
		t.Parallel()

		pt, err := townpress.ParsePageType("government")
		require.NoError(t, err)
		assert.Equal(t, townpress.PageGovernment, pt)

		pt, err = townpress.ParsePageType("additional_content")
		require.NoError(t, err)
		assert.Equal(t, townpress.PageAdditional, pt)
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		t.Parallel()

		_, err := townpress.ParsePageType("blog")

		assert.Equal(t, townpress.EINVALID, townpress.ErrorCode(err))
	})
}

func TestCanonicalTypes_Order(t *testing.T) {
	t.Parallel()

	// The enumeration order is a contract: tie-breaking, navigation, and
	// output file generation all depend on it.
	expected := []townpress.PageType{
		townpress.PageHome,
		townpress.PageAbout,
		townpress.PageGovernment,
		townpress.PageDepartments,
		townpress.PageServices,
		townpress.PageNews,
		townpress.PageEvents,
		townpress.PageContact,
		townpress.PageDocuments,
		townpress.PageEmployment,
		townpress.PageFAQs,
		townpress.PageAccessibility,
	}

	assert.Equal(t, expected, townpress.CanonicalTypes)
}
