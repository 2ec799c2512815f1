package townpress

// Layout identifies one of the five fixed layout variants.
type Layout string

// The five layout variants. The set is closed: rendering dispatches on a
// tagged switch with LayoutSingleColumn as the explicit default arm.
const (
	LayoutSingleColumn Layout = "a"
	LayoutTwoColumn    Layout = "b"
	LayoutCardGrid     Layout = "c"
	LayoutHero         Layout = "d"
	LayoutCompactList  Layout = "e"
)

// Valid reports whether l names a known layout variant.
func (l Layout) Valid() bool {
	switch l {
	case LayoutSingleColumn, LayoutTwoColumn, LayoutCardGrid, LayoutHero, LayoutCompactList:
		return true
	}
	return false
}

// ParseLayout returns the Layout for s.
// Returns EINVALID if s is not one of the five variant identifiers.
func ParseLayout(s string) (Layout, error) {
	l := Layout(s)
	if !l.Valid() {
		return "", Errorf(EINVALID, "unknown layout %q", s)
	}
	return l, nil
}

// DefaultLayouts returns the static per-type layout assignment. Callers may
// mutate the returned map to apply per-run overrides.
func DefaultLayouts() map[PageType]Layout {
	return map[PageType]Layout{
		PageHome:          LayoutHero,
		PageAbout:         LayoutSingleColumn,
		PageGovernment:    LayoutTwoColumn,
		PageDepartments:   LayoutCardGrid,
		PageServices:      LayoutCardGrid,
		PageNews:          LayoutCardGrid,
		PageEvents:        LayoutCardGrid,
		PageContact:       LayoutTwoColumn,
		PageDocuments:     LayoutCompactList,
		PageEmployment:    LayoutCompactList,
		PageFAQs:          LayoutCompactList,
		PageAccessibility: LayoutSingleColumn,
	}
}

// LayoutFor returns the layout assigned to t, falling back to
// LayoutSingleColumn when the assignment is missing or invalid.
func LayoutFor(assignments map[PageType]Layout, t PageType) Layout {
	if l, ok := assignments[t]; ok && l.Valid() {
		return l
	}
	return LayoutSingleColumn
}
