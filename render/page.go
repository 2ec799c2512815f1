// Package render turns the canonical site model into a static HTML site:
// twelve pages sharing one chrome, five switchable layout variants, and the
// supporting stylesheet and script assets.
package render

import (
	"fmt"
	"html"
	"path"
	"strings"
	"time"

	"github.com/mwielgus/townpress"
)

// Renderer generates complete HTML pages from a canonical site.
type Renderer struct {
	// Layouts overrides the per-type layout assignment. Nil means
	// townpress.DefaultLayouts.
	Layouts map[townpress.PageType]townpress.Layout

	// Year is the copyright year. Zero means the current year.
	Year int
}

// RenderPage renders the full HTML document for one canonical page slot.
// An empty slot renders a visible placeholder rather than a blank page.
func (r *Renderer) RenderPage(t townpress.PageType, site *townpress.CanonicalSite) (string, error) {
	if !t.Canonical() {
		return "", townpress.Errorf(townpress.EINVALID, "cannot render non-canonical page type %q", t)
	}

	page := site.Page(t)
	markdown := page.Content
	if strings.TrimSpace(markdown) == "" {
		markdown = fmt.Sprintf("# %s\n\n*No content found for this page.*", t.DisplayName())
	}

	contentHTML, err := MarkdownToHTML(markdown)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", t, err)
	}

	assignments := r.Layouts
	if assignments == nil {
		assignments = townpress.DefaultLayouts()
	}
	layout := townpress.LayoutFor(assignments, t)

	body := applyLayout(layout, contentHTML, site.Metadata, page)

	siteName := site.Metadata.Name
	if siteName == "" {
		siteName = "Municipal Website"
	}

	year := r.Year
	if year == 0 {
		year = time.Now().Year()
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s - %s</title>
    <link rel="stylesheet" href="style.css">
</head>
<body data-page="%s" data-layout="%s">
    <header>
        <div class="header-content">
            <div class="site-title">
%s                <h1>%s</h1>
            </div>
        </div>
    </header>

    <nav>
        <ul>
%s
        </ul>
    </nav>

    <main>
        <div class="content">
%s
        </div>
    </main>

    <footer>
        <div class="footer-content">
            <div class="footer-info">
%s
            </div>

            <div class="copyright">
                <p>&copy; %d %s. All rights reserved.</p>
            </div>
        </div>
    </footer>

%s

    <script src="layout_switcher.js"></script>
</body>
</html>
`,
		html.EscapeString(t.DisplayName()), html.EscapeString(siteName),
		t, layout,
		logoHTML(site.Metadata.Logo), html.EscapeString(siteName),
		navHTML(t),
		body,
		footerHTML(site.Metadata),
		year, html.EscapeString(siteName),
		switcherHTML(layout),
	), nil
}

// logoHTML renders the header logo image, rewritten into the local images
// directory, or nothing when no logo was found.
func logoHTML(logo string) string {
	if logo == "" {
		return ""
	}
	name := path.Base(strings.SplitN(logo, "?", 2)[0])
	return fmt.Sprintf("                <img src=\"images/%s\" alt=\"Logo\" class=\"logo\">\n", html.EscapeString(name))
}

// navHTML renders the navigation list over the canonical enumeration order,
// marking the current page active.
func navHTML(current townpress.PageType) string {
	items := make([]string, 0, len(townpress.CanonicalTypes))
	for _, t := range townpress.CanonicalTypes {
		active := ""
		if t == current {
			active = ` class="active"`
		}
		items = append(items, fmt.Sprintf(`            <li><a href="%s.html"%s>%s</a></li>`, t, active, t.DisplayName()))
	}
	return strings.Join(items, "\n")
}

// footerHTML renders the contact and hours footer sections, omitting sections
// with nothing to show.
func footerHTML(metadata townpress.SiteMetadata) string {
	var sections []string

	contact := metadata.Contact
	if contact.Phone != "" || contact.Email != "" || contact.Address != "" {
		var lines []string
		if contact.Phone != "" {
			lines = append(lines, fmt.Sprintf("                    <p>%s</p>", html.EscapeString(contact.Phone)))
		}
		if contact.Email != "" {
			escaped := html.EscapeString(contact.Email)
			lines = append(lines, fmt.Sprintf(`                    <p><a href="mailto:%s">%s</a></p>`, escaped, escaped))
		}
		if contact.Address != "" {
			lines = append(lines, fmt.Sprintf("                    <p>%s</p>", html.EscapeString(contact.Address)))
		}
		sections = append(sections, fmt.Sprintf(`                <div class="footer-section">
                    <h4>Contact Information</h4>
%s
                </div>`, strings.Join(lines, "\n")))
	}

	if contact.Hours != "" {
		sections = append(sections, fmt.Sprintf(`                <div class="footer-section">
                    <h4>Office Hours</h4>
                    <p>%s</p>
                </div>`, html.EscapeString(contact.Hours)))
	}

	if social := socialHTML(metadata.Social); social != "" {
		sections = append(sections, social)
	}

	return strings.Join(sections, "\n")
}

// socialHTML renders social platform links in the fixed platform order.
func socialHTML(social map[string]string) string {
	var lines []string
	for _, platform := range townpress.SocialPlatforms {
		url, ok := social[platform]
		if !ok || url == "" {
			continue
		}
		label := strings.ToUpper(platform[:1]) + platform[1:]
		lines = append(lines, fmt.Sprintf(`                    <p><a href="%s">%s</a></p>`, html.EscapeString(url), label))
	}
	if len(lines) == 0 {
		return ""
	}
	return fmt.Sprintf(`                <div class="footer-section">
                    <h4>Follow Us</h4>
%s
                </div>`, strings.Join(lines, "\n"))
}

// switcherHTML renders the layout switcher widget with the current variant
// marked active.
func switcherHTML(current townpress.Layout) string {
	var buttons []string
	for _, l := range []townpress.Layout{
		townpress.LayoutSingleColumn,
		townpress.LayoutTwoColumn,
		townpress.LayoutCardGrid,
		townpress.LayoutHero,
		townpress.LayoutCompactList,
	} {
		active := ""
		if l == current {
			active = " active"
		}
		buttons = append(buttons, fmt.Sprintf(`            <button class="layout-btn%s" data-layout="%s" onclick="switchLayout('%s')">%s</button>`, active, l, l, strings.ToUpper(string(l))))
	}

	return fmt.Sprintf(`    <div class="layout-switcher">
        <h4>View Layout:</h4>
        <div class="layout-buttons">
%s
        </div>
    </div>`, strings.Join(buttons, "\n"))
}
