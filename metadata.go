package townpress

// Contact holds the site-wide contact channels extracted from documents.
type Contact struct {
	Phone   string `json:"phone"`
	Fax     string `json:"fax"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

// SocialPlatforms is the fixed set of recognized social platforms, in the
// order they are reported.
var SocialPlatforms = []string{"facebook", "twitter", "instagram", "youtube"}

// SiteMetadata holds site-wide facts derived from a bounded prefix of
// documents. Every field is write-once: Merge never overwrites a non-empty
// value.
type SiteMetadata struct {
	Name    string            `json:"name"`
	Logo    string            `json:"logo"`
	Contact Contact           `json:"contact"`
	Social  map[string]string `json:"social"`
}

// Merge folds src into m, keeping m's existing non-empty fields. It returns m
// to allow chaining over an ordered document scan. The fold is deterministic
// for a fixed scan order and safe to express as an explicit reduce.
func (m *SiteMetadata) Merge(src *SiteMetadata) *SiteMetadata {
	if src == nil {
		return m
	}
	m.Name = keepFirst(m.Name, src.Name)
	m.Logo = keepFirst(m.Logo, src.Logo)
	m.Contact.Phone = keepFirst(m.Contact.Phone, src.Contact.Phone)
	m.Contact.Fax = keepFirst(m.Contact.Fax, src.Contact.Fax)
	m.Contact.Email = keepFirst(m.Contact.Email, src.Contact.Email)
	m.Contact.Address = keepFirst(m.Contact.Address, src.Contact.Address)
	m.Contact.Hours = keepFirst(m.Contact.Hours, src.Contact.Hours)
	for _, platform := range SocialPlatforms {
		url, ok := src.Social[platform]
		if !ok || url == "" {
			continue
		}
		if _, exists := m.Social[platform]; exists {
			continue
		}
		if m.Social == nil {
			m.Social = make(map[string]string)
		}
		m.Social[platform] = url
	}
	return m
}

// keepFirst returns existing unless it is empty.
func keepFirst(existing, candidate string) string {
	if existing != "" {
		return existing
	}
	return candidate
}

// MetadataScanner extracts site-wide facts from a single raw HTML document.
// Missing fields yield empty strings, never errors; defaults are substituted
// only at render time.
type MetadataScanner interface {
	Scan(html string) (*SiteMetadata, error)
}
