package townpress

import "sort"

// SectionBreak separates successive contributions aggregated into the same
// canonical page slot.
const SectionBreak = "\n\n---\n\n"

// PageContent is the aggregated content of one canonical page slot.
type PageContent struct {
	Content string `json:"content"`

	// Title is the title of the first document aggregated into the slot.
	Title string `json:"title,omitempty"`

	// Events holds extracted event dates for the home slot (max 5).
	Events []EventItem `json:"events,omitempty"`
}

// EventItem is a minimal event reference extracted from home page text.
type EventItem struct {
	Date  string `json:"date"`
	Title string `json:"title"`
}

// AdditionalPage is an overflow record that matched no canonical slot.
type AdditionalPage struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Source  string `json:"source"`
}

// CanonicalSite is the final fixed-shape site model: exactly twelve named
// slots plus one overflow list. Slots with no contributing record are present
// but empty.
type CanonicalSite struct {
	Metadata   SiteMetadata              `json:"metadata"`
	Pages      map[PageType]*PageContent `json:"pages"`
	Additional []AdditionalPage          `json:"additional_content"`
}

// Page returns the slot for t, which always exists for canonical types.
func (s *CanonicalSite) Page(t PageType) *PageContent {
	return s.Pages[t]
}

// maxHomeEvents caps the number of event dates surfaced on the home page.
const maxHomeEvents = 5

// BuildSite folds page records into the canonical site model. Records are
// sorted by discovery position first, so parallel producers may deliver them
// in any order. Content from an earlier document always precedes content from
// a later document in the same slot, separated by SectionBreak. Overflow
// records are retained in discovery order and never merged into a slot.
//
// homeText, when non-empty, is scanned for dates to populate the home slot's
// featured events.
func BuildSite(metadata SiteMetadata, records []*PageRecord, homeText string) *CanonicalSite {
	ordered := make([]*PageRecord, len(records))
	copy(ordered, records)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	site := &CanonicalSite{
		Metadata: metadata,
		Pages:    make(map[PageType]*PageContent, len(CanonicalTypes)),
	}
	for _, t := range CanonicalTypes {
		site.Pages[t] = &PageContent{}
	}

	for _, rec := range ordered {
		if rec.Type == PageAdditional || !rec.Type.Canonical() {
			site.Additional = append(site.Additional, AdditionalPage{
				Title:   rec.Title,
				Content: rec.Content,
				Source:  rec.Source,
			})
			continue
		}

		page := site.Pages[rec.Type]
		if page.Content == "" {
			page.Content = rec.Content
			page.Title = rec.Title
		} else {
			page.Content += SectionBreak + rec.Content
		}
	}

	if homeText != "" {
		for _, date := range ExtractDates(homeText) {
			if len(site.Pages[PageHome].Events) >= maxHomeEvents {
				break
			}
			site.Pages[PageHome].Events = append(site.Pages[PageHome].Events, EventItem{
				Date:  date,
				Title: "Event",
			})
		}
	}

	return site
}
