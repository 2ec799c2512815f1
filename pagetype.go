package townpress

// PageType identifies one of the canonical page slots of the generated site.
type PageType string

// Canonical page types. PageAdditional is the overflow bucket for documents
// that match no canonical slot.
const (
	PageHome          PageType = "home"
	PageAbout         PageType = "about"
	PageGovernment    PageType = "government"
	PageDepartments   PageType = "departments"
	PageServices      PageType = "services"
	PageNews          PageType = "news"
	PageEvents        PageType = "events"
	PageContact       PageType = "contact"
	PageDocuments     PageType = "documents"
	PageEmployment    PageType = "employment"
	PageFAQs          PageType = "faqs"
	PageAccessibility PageType = "accessibility"
	PageAdditional    PageType = "additional_content"
)

// CanonicalTypes is the fixed enumeration order of the twelve canonical page
// types. Navigation, rendering, output files, and classifier tie-breaking all
// follow this order; it must never depend on map iteration.
var CanonicalTypes = []PageType{
	PageHome,
	PageAbout,
	PageGovernment,
	PageDepartments,
	PageServices,
	PageNews,
	PageEvents,
	PageContact,
	PageDocuments,
	PageEmployment,
	PageFAQs,
	PageAccessibility,
}

// displayNames maps page types to their navigation labels.
var displayNames = map[PageType]string{
	PageHome:          "Home",
	PageAbout:         "About",
	PageGovernment:    "Government",
	PageDepartments:   "Departments",
	PageServices:      "Services",
	PageNews:          "News",
	PageEvents:        "Events",
	PageContact:       "Contact",
	PageDocuments:     "Documents",
	PageEmployment:    "Employment",
	PageFAQs:          "FAQs",
	PageAccessibility: "Accessibility",
}

// DisplayName returns the human-readable label for a page type.
func (t PageType) DisplayName() string {
	if name, ok := displayNames[t]; ok {
		return name
	}
	return string(t)
}

// Canonical reports whether t is one of the twelve canonical types.
func (t PageType) Canonical() bool {
	_, ok := displayNames[t]
	return ok
}

// ParsePageType returns the PageType for s.
// Returns EINVALID if s names neither a canonical type nor the overflow bucket.
func ParsePageType(s string) (PageType, error) {
	t := PageType(s)
	if t.Canonical() || t == PageAdditional {
		return t, nil
	}
	return "", Errorf(EINVALID, "unknown page type %q", s)
}
