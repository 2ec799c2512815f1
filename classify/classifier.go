// Package classify assigns documents to canonical page types through an
// ordered decision list: path hints, filename keywords, title keywords, and
// finally content keyword scoring. Every tier is an explicit ordered table
// evaluated top to bottom; classification never depends on map iteration
// order or on prior results.
package classify

import (
	"path/filepath"
	"strings"

	"github.com/mwielgus/townpress"
)

// Ensure Classifier implements townpress.Classifier at compile time.
var _ townpress.Classifier = (*Classifier)(nil)

// pathRule maps a path substring to a page type. Authoring structure is the
// most reliable signal, so path hints are the highest tier.
type pathRule struct {
	fragment string
	pageType townpress.PageType
}

var pathRules = []pathRule{
	{"home/news", townpress.PageNews},
	{"/news/", townpress.PageNews},
	{"/events/", townpress.PageEvents},
	{"/departments/", townpress.PageDepartments},
}

// homeStems are matched against the whole filename stem, not as substrings,
// so names like news-index.html keep their own classification.
var homeStems = map[string]bool{
	"index":   true,
	"home":    true,
	"default": true,
}

// keywordRule maps a keyword set to a page type. The same ordered table is
// applied to the filename stem (tier 2) and the title (tier 3), first match
// wins.
type keywordRule struct {
	pageType townpress.PageType
	keywords []string
}

var keywordRules = []keywordRule{
	{townpress.PageAbout, []string{"about", "resident", "welcome"}},
	{townpress.PageGovernment, []string{"government", "mayor", "council", "official", "committee", "leadership"}},
	{townpress.PageDepartments, []string{"department", "division"}},
	{townpress.PageServices, []string{"service", "permit", "waste", "emergency", "utility"}},
	{townpress.PageNews, []string{"news", "announcement", "blog", "article"}},
	{townpress.PageEvents, []string{"event", "calendar", "meeting"}},
	{townpress.PageContact, []string{"contact"}},
	{townpress.PageDocuments, []string{"document", "form", "download", "ordinance", "resolution", "budget", "financial", "right-to-know"}},
	{townpress.PageEmployment, []string{"job", "employ", "career"}},
	{townpress.PageFAQs, []string{"faq", "question"}},
	{townpress.PageAccessibility, []string{"accessibility", "ada"}},
}

// scoreRule counts keyword occurrences in visible text. Rules are ordered by
// the canonical type enumeration; a later rule displaces an earlier one only
// with a strictly greater count, so ties resolve to the earliest type.
type scoreRule struct {
	pageType townpress.PageType
	keywords []string
}

var scoreRules = []scoreRule{
	{townpress.PageGovernment, []string{"mayor", "council", "borough"}},
	{townpress.PageServices, []string{"permit", "license", "utility"}},
	{townpress.PageNews, []string{"news", "announcement"}},
	{townpress.PageEvents, []string{"event", "meeting"}},
	{townpress.PageContact, []string{"phone", "email", "address"}},
}

// scoreThreshold is the minimum combined keyword count (exclusive) for a
// content-score classification.
const scoreThreshold = 3

// Classifier is the ordered decision list over (filename, path, title, text).
type Classifier struct{}

// NewClassifier creates a new Classifier.
func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify assigns sig to exactly one canonical page type, or to
// PageAdditional when no tier matches.
func (c *Classifier) Classify(sig townpress.Signals) townpress.PageType {
	path := strings.ToLower(filepath.ToSlash(sig.Path))
	stem := strings.ToLower(strings.TrimSuffix(sig.Filename, filepath.Ext(sig.Filename)))
	title := strings.ToLower(sig.Title)
	text := strings.ToLower(sig.Text)

	// Tier 1: path-segment hints.
	for _, rule := range pathRules {
		if strings.Contains(path, rule.fragment) {
			return rule.pageType
		}
	}

	// Tier 2: filename keywords.
	if homeStems[stem] {
		return townpress.PageHome
	}
	if t, ok := matchKeywords(stem); ok {
		return t
	}

	// Tier 3: title keywords.
	if t, ok := matchKeywords(title); ok {
		return t
	}

	// Tier 4: content keyword scoring.
	if t, ok := scoreContent(text); ok {
		return t
	}

	return townpress.PageAdditional
}

// matchKeywords applies the ordered keyword table to s.
func matchKeywords(s string) (townpress.PageType, bool) {
	if s == "" {
		return "", false
	}
	for _, rule := range keywordRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(s, keyword) {
				return rule.pageType, true
			}
		}
	}
	return "", false
}

// scoreContent counts keyword occurrences per candidate type and selects the
// highest count above the threshold.
func scoreContent(text string) (townpress.PageType, bool) {
	if text == "" {
		return "", false
	}

	var best townpress.PageType
	bestCount := 0
	for _, rule := range scoreRules {
		count := 0
		for _, keyword := range rule.keywords {
			count += strings.Count(text, keyword)
		}
		if count > bestCount {
			best = rule.pageType
			bestCount = count
		}
	}

	if bestCount > scoreThreshold {
		return best, true
	}
	return "", false
}
