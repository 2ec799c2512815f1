// Package goquery provides CSS-selector based implementations of content
// cleaning and metadata scanning for raw municipal HTML.
package goquery

import (
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwielgus/townpress"
)

// Ensure Cleaner implements townpress.Extractor at compile time.
var _ townpress.Extractor = (*Cleaner)(nil)

// anchorSelectors locate the main-content element, in priority order:
// recognized main-content id/role, generic main tag, recognized
// content-wrapper class, document body.
var anchorSelectors = []string{
	"main#main",
	"[role=\"main\"]",
	"main",
	"div.contentWrapper, div.content-wrapper",
	"body",
}

// removeTags are stripped unconditionally, subtrees included.
const removeTags = "script, style, nav, header, footer, iframe, noscript"

// boilerplatePatterns are class/id substring markers for non-content
// structural markup. Matched case-insensitively against the joined class list
// and the id of every element under the anchor.
var boilerplatePatterns = []string{
	"nav", "menu", "sidebar", "side-bar", "breadcrumb", "cookie", "popup",
	"modal", "advertisement", "ad-", "ads-", "share", "social", "follow",
	"newsletter", "subscription", "search", "login", "signup", "toggler",
	"utilitybar", "alertbar",
}

// Cleaner strips structural boilerplate from raw HTML, isolating likely main
// content. Cleaning is idempotent: re-running it on its own output removes
// nothing further.
type Cleaner struct {
	// RewriteImages rewrites every <img src> to images/<filename>, with any
	// query string stripped, so output pages reference the copied asset tree.
	RewriteImages bool
}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Extract processes raw HTML and returns the main content.
func (c *Cleaner) Extract(rawHTML string) (*townpress.ExtractResult, error) {
	if rawHTML == "" {
		return nil, townpress.Errorf(townpress.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, townpress.Errorf(townpress.EINVALID, "failed to parse HTML: %v", err)
	}

	title := extractTitle(doc)

	anchor := selectAnchor(doc)

	anchor.Find(removeTags).Remove()

	anchor.Find("*").Each(func(_ int, sel *goquery.Selection) {
		if matchesBoilerplate(sel) {
			sel.Remove()
		}
	})

	collapseEmpty(anchor)

	if c.RewriteImages {
		rewriteImagePaths(anchor)
	}

	contentHTML, err := anchor.Html()
	if err != nil {
		return nil, townpress.Errorf(townpress.EINTERNAL, "failed to render content: %v", err)
	}

	return &townpress.ExtractResult{
		Title:       title,
		ContentHTML: strings.TrimSpace(contentHTML),
		Text:        visibleText(anchor),
	}, nil
}

// extractTitle returns the <title> text, falling back to the first <h1>.
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return strings.TrimSpace(doc.Find("h1").First().Text())
}

// selectAnchor returns the highest-priority main-content element. Falls back
// to the whole document when not even a body is present.
func selectAnchor(doc *goquery.Document) *goquery.Selection {
	for _, selector := range anchorSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	return doc.Selection
}

// matchesBoilerplate tests an element's class and id attributes against the
// boilerplate pattern list.
func matchesBoilerplate(sel *goquery.Selection) bool {
	class, _ := sel.Attr("class")
	id, _ := sel.Attr("id")
	if class == "" && id == "" {
		return false
	}

	attrs := strings.ToLower(class + " " + id)
	for _, pattern := range boilerplatePatterns {
		if strings.Contains(attrs, pattern) {
			return true
		}
	}
	return false
}

// collapseEmpty removes elements whose rendered text is empty, except void
// and structural elements and anything that still carries one.
func collapseEmpty(anchor *goquery.Selection) {
	anchor.Find("*").Each(func(_ int, sel *goquery.Selection) {
		switch goquery.NodeName(sel) {
		case "br", "hr", "img":
			return
		}
		if sel.Find("img, br, hr").Length() > 0 {
			return
		}
		if strings.TrimSpace(sel.Text()) == "" {
			sel.Remove()
		}
	})
}

// rewriteImagePaths points every image at the flat images/ asset directory.
func rewriteImagePaths(anchor *goquery.Selection) {
	anchor.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src, exists := sel.Attr("src")
		if !exists || src == "" {
			return
		}
		filename := path.Base(src)
		if i := strings.IndexByte(filename, '?'); i >= 0 {
			filename = filename[:i]
		}
		sel.SetAttr("src", "images/"+filename)
	})
}

// visibleText returns the anchor's text with runs of whitespace collapsed to
// single spaces.
func visibleText(anchor *goquery.Selection) string {
	return strings.Join(strings.Fields(anchor.Text()), " ")
}
