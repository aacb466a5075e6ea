package catalog

import (
	"bytes"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

// Load parses the embedded catalog document.
func Load() (*Catalog, error) {
	return Parse(embeddedCatalog)
}

// Parse decodes a catalog document and checks that the collections the site
// cannot render without are present.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}

	if len(c.Plans) == 0 {
		return nil, fmt.Errorf("catalog has no plans")
	}
	if len(c.TLDs) == 0 {
		return nil, fmt.Errorf("catalog has no tlds")
	}
	if len(c.Invoices) == 0 {
		return nil, fmt.Errorf("catalog has no invoices")
	}
	seen := make(map[string]struct{}, len(c.Invoices))
	for _, inv := range c.Invoices {
		if _, dup := seen[inv.ID]; dup {
			return nil, fmt.Errorf("duplicate invoice id %q", inv.ID)
		}
		seen[inv.ID] = struct{}{}
	}

	return &c, nil
}

// DefaultTLDs returns the extensions preselected in the domain search form.
func (c *Catalog) DefaultTLDs() []string {
	var names []string
	for _, t := range c.TLDs {
		if t.Default {
			names = append(names, t.Name())
		}
	}
	return names
}
