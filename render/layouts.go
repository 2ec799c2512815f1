package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/mwielgus/townpress"
)

// maxLayoutEvents caps the featured event cards in the hero layout.
const maxLayoutEvents = 3

// applyLayout wraps a rendered HTML fragment in the markup of the assigned
// layout variant. The switch is exhaustive over the five variants with the
// single-column wrapper as the default arm, so an unknown assignment can
// never produce unwrapped content.
func applyLayout(layout townpress.Layout, contentHTML string, metadata townpress.SiteMetadata, page *townpress.PageContent) string {
	switch layout {
	case townpress.LayoutTwoColumn:
		return layoutTwoColumn(contentHTML, metadata)
	case townpress.LayoutCardGrid:
		return layoutCardGrid(contentHTML)
	case townpress.LayoutHero:
		return layoutHero(contentHTML, page)
	case townpress.LayoutCompactList:
		return layoutCompactList(contentHTML)
	case townpress.LayoutSingleColumn:
		return layoutSingleColumn(contentHTML)
	default:
		return layoutSingleColumn(contentHTML)
	}
}

// layoutSingleColumn is the full-width variant for text-heavy pages.
func layoutSingleColumn(contentHTML string) string {
	return fmt.Sprintf(`<div class="layout layout-a" data-layout="a">
    <div class="content-wrapper single-column">
        %s
    </div>
</div>`, contentHTML)
}

// layoutTwoColumn places the content next to a sidebar of contact cards
// derived from the site metadata.
func layoutTwoColumn(contentHTML string, metadata townpress.SiteMetadata) string {
	var cards []string

	contact := metadata.Contact
	if contact.Phone != "" {
		cards = append(cards, fmt.Sprintf(`<div class="sidebar-card" data-type="contact-card">
                <h3 data-type="card-title">Contact</h3>
                <p data-type="phone">%s</p>
            </div>`, html.EscapeString(contact.Phone)))
	}
	if contact.Email != "" {
		escaped := html.EscapeString(contact.Email)
		cards = append(cards, fmt.Sprintf(`<div class="sidebar-card" data-type="contact-card">
                <h3 data-type="card-title">Email</h3>
                <p data-type="email"><a href="mailto:%s">%s</a></p>
            </div>`, escaped, escaped))
	}
	if contact.Hours != "" {
		cards = append(cards, fmt.Sprintf(`<div class="sidebar-card" data-type="hours-card">
                <h3 data-type="card-title">Hours</h3>
                <p data-type="hours">%s</p>
            </div>`, html.EscapeString(contact.Hours)))
	}

	sidebar := strings.Join(cards, "\n            ")
	if sidebar == "" {
		sidebar = `<div class="sidebar-card"><p>Additional information</p></div>`
	}

	return fmt.Sprintf(`<div class="layout layout-b" data-layout="b">
    <div class="content-wrapper two-column">
        <div class="main-content">
            %s
        </div>
        <aside class="sidebar">
            %s
        </aside>
    </div>
</div>`, contentHTML, sidebar)
}

// layoutCardGrid arranges content blocks in a responsive grid.
func layoutCardGrid(contentHTML string) string {
	return fmt.Sprintf(`<div class="layout layout-c" data-layout="c">
    <div class="content-wrapper card-grid">
        %s
    </div>
</div>`, contentHTML)
}

// layoutHero opens with a hero banner and, when the page carries events,
// follows with a featured event grid.
func layoutHero(contentHTML string, page *townpress.PageContent) string {
	var events string
	if page != nil && len(page.Events) > 0 {
		items := page.Events
		if len(items) > maxLayoutEvents {
			items = items[:maxLayoutEvents]
		}

		var b strings.Builder
		b.WriteString(`<div class="featured-section" data-type="events">
        <h2 data-type="section-heading">Upcoming Events</h2>
        <div class="featured-grid">`)
		for _, event := range items {
			fmt.Fprintf(&b, `
            <div class="featured-card" data-type="event-card">
                <span class="featured-date" data-type="event-date">%s</span>
                <h3 data-type="event-title">%s</h3>
            </div>`, html.EscapeString(event.Date), html.EscapeString(event.Title))
		}
		b.WriteString(`
        </div>
    </div>`)
		events = "\n    " + b.String()
	}

	return fmt.Sprintf(`<div class="layout layout-d" data-layout="d">
    <div class="hero-section" data-type="hero">
        <div class="hero-content">
            %s
        </div>
    </div>%s
</div>`, contentHTML, events)
}

// layoutCompactList is the dense variant for documents, forms, and FAQs.
func layoutCompactList(contentHTML string) string {
	return fmt.Sprintf(`<div class="layout layout-e" data-layout="e">
    <div class="content-wrapper compact-list">
        %s
    </div>
</div>`, contentHTML)
}
