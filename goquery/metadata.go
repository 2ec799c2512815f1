package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mwielgus/townpress"
)

// Ensure Scanner implements townpress.MetadataScanner at compile time.
var _ townpress.MetadataScanner = (*Scanner)(nil)

var (
	// nameSuffixRe trims "- Home", "| Welcome", ": Official Site" style
	// suffixes from the <title> when deriving the site name.
	nameSuffixRe = regexp.MustCompile(`(?i)\s*[-|:]\s*(Home|Welcome|Official Site).*$`)

	// labeledPhoneRe and labeledFaxRe anchor to explicit labels, used when a
	// structured footer region is available.
	labeledPhoneRe = regexp.MustCompile(`Phone:\s*([\d\-() ]+\d)`)
	labeledFaxRe   = regexp.MustCompile(`Fax:\s*([\d\-() ]+\d)`)

	// phoneRe matches US digit groupings: (555) 123-4567, 555-123-4567,
	// 555.123.4567.
	phoneRe = regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	emailRe = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)

	addressRe = regexp.MustCompile(`\d+\s+[\w ]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Drive|Dr|Lane|Ln|Way|Court|Ct|Place|Pl),?\s+[\w ]+,\s+[A-Z]{2}\s+\d{5}`)

	hoursRe = regexp.MustCompile(`(?is)(?:Monday|Mon)\b.*?(?:Friday|Fri)\b.*?\d{1,2}:\d{2}\s*(?:AM|PM).*?\d{1,2}:\d{2}\s*(?:AM|PM)`)

	whitespaceRe = regexp.MustCompile(`\s+`)
)

// maxHoursLength rejects hours matches that swallowed unrelated text.
const maxHoursLength = 200

// socialDomains maps recognized platforms to their host substring, checked in
// townpress.SocialPlatforms order.
var socialDomains = map[string]string{
	"facebook":  "facebook.com",
	"twitter":   "twitter.com",
	"instagram": "instagram.com",
	"youtube":   "youtube.com",
}

// Scanner extracts site-wide metadata from a single raw HTML document.
// Every field is independent and a missing field yields an empty string; the
// caller folds scanner results across documents with SiteMetadata.Merge.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan extracts whatever site-wide facts the document carries.
func (s *Scanner) Scan(rawHTML string) (*townpress.SiteMetadata, error) {
	if rawHTML == "" {
		return nil, townpress.Errorf(townpress.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, townpress.Errorf(townpress.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := &townpress.SiteMetadata{}
	meta.Logo = findLogo(doc)
	meta.Name = siteName(doc)
	meta.Social = socialLinks(doc)

	// Prefer the footer for labeled contact fields; fall back to the whole
	// document text for the unlabeled patterns.
	footerText := regionText(doc, "footer#footer", "footer")
	fullText := regionText(doc, "body")
	if fullText == "" {
		fullText = strings.Join(strings.Fields(doc.Text()), " ")
	}

	meta.Contact.Phone = firstSubmatch(labeledPhoneRe, footerText)
	if meta.Contact.Phone == "" {
		meta.Contact.Phone = phoneRe.FindString(fullText)
	}
	meta.Contact.Fax = firstSubmatch(labeledFaxRe, footerText)
	meta.Contact.Email = emailRe.FindString(fullText)
	meta.Contact.Address = strings.TrimSpace(addressRe.FindString(fullText))
	meta.Contact.Hours = officeHours(fullText)

	return meta, nil
}

// siteName derives the site name from the <title>, trimming trailing
// suffixes, with the logo's alt text as fallback.
func siteName(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title != "" {
		if name := strings.TrimSpace(nameSuffixRe.ReplaceAllString(title, "")); name != "" {
			return name
		}
	}

	var alt string
	doc.Find("img").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		a, _ := sel.Attr("alt")
		if containsLogoMarker(strings.ToLower(a)) {
			alt = strings.TrimSpace(a)
			return false
		}
		return true
	})
	return alt
}

// findLogo returns the src of the first image whose src, alt, or class
// carries a logo or seal marker.
func findLogo(doc *goquery.Document) string {
	var logo string
	doc.Find("img").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, _ := sel.Attr("src")
		alt, _ := sel.Attr("alt")
		class, _ := sel.Attr("class")
		attrs := strings.ToLower(src + " " + alt + " " + class)
		if containsLogoMarker(attrs) && src != "" {
			logo = src
			return false
		}
		return true
	})
	return logo
}

func containsLogoMarker(s string) bool {
	return strings.Contains(s, "logo") || strings.Contains(s, "seal")
}

// socialLinks collects the first anchor per recognized platform.
func socialLinks(doc *goquery.Document) map[string]string {
	var social map[string]string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" {
			return
		}
		for _, platform := range townpress.SocialPlatforms {
			if !strings.Contains(href, socialDomains[platform]) {
				continue
			}
			if _, seen := social[platform]; seen {
				continue
			}
			if social == nil {
				social = make(map[string]string)
			}
			social[platform] = href
		}
	})
	return social
}

// regionText returns the whitespace-collapsed text of the first selector that
// matches.
func regionText(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return strings.Join(strings.Fields(sel.Text()), " ")
		}
	}
	return ""
}

// officeHours extracts a Monday-through-Friday time range, rejecting matches
// long enough to have swallowed unrelated text.
func officeHours(text string) string {
	match := hoursRe.FindString(text)
	if match == "" {
		return ""
	}
	match = strings.TrimSpace(whitespaceRe.ReplaceAllString(match, " "))
	if len(match) >= maxHoursLength {
		return ""
	}
	return match
}

func firstSubmatch(re *regexp.Regexp, text string) string {
	m := re.FindStringSubmatch(text)
	if len(m) < 2 {
		return ""
	}
	return strings.TrimSpace(m[1])
}
