// Package yaml loads layout assignment overrides from YAML files.
package yaml

import (
	"os"

	"github.com/mwielgus/townpress"
	"gopkg.in/yaml.v3"
)

// LoadLayouts reads a YAML mapping of page type to layout variant and applies
// it over the default assignment. Unknown page types or layout identifiers
// are rejected rather than silently ignored.
//
// Example file:
//
//	home: d
//	documents: a
func LoadLayouts(path string) (map[townpress.PageType]townpress.Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, townpress.Errorf(townpress.ENOTFOUND, "layout file %q does not exist", path)
		}
		return nil, err
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, townpress.Errorf(townpress.EINVALID, "invalid layout file %q: %v", path, err)
	}

	assignments := townpress.DefaultLayouts()
	for key, value := range raw {
		pageType, err := townpress.ParsePageType(key)
		if err != nil {
			return nil, err
		}
		if pageType == townpress.PageAdditional {
			return nil, townpress.Errorf(townpress.EINVALID, "page type %q has no layout", key)
		}
		layout, err := townpress.ParseLayout(value)
		if err != nil {
			return nil, err
		}
		assignments[pageType] = layout
	}

	return assignments, nil
}
