package mock

import "github.com/mwielgus/townpress"

var _ townpress.MetadataScanner = (*MetadataScanner)(nil)

// MetadataScanner is a mock implementation of townpress.MetadataScanner.
type MetadataScanner struct {
	ScanFn func(html string) (*townpress.SiteMetadata, error)
}

func (s *MetadataScanner) Scan(html string) (*townpress.SiteMetadata, error) {
	return s.ScanFn(html)
}
