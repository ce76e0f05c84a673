package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrNoProducts = errors.New("catalog has no products")

// Load reads a catalog from a YAML file and validates it.
func Load(path string) (*Catalog, error) {
	// Resolve path to prevent directory traversal attacks
	cleanPath := filepath.Clean(path)
	b, err := os.ReadFile(cleanPath) //nolint:gosec // path is cleaned and validated
	if err != nil {
		return nil, err
	}
	var c Catalog
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the invariants the viewer relies on: at least one product,
// every product has at least one variant, variant names are unique within a
// product, and prices are positive.
func (c *Catalog) Validate() error {
	if len(c.Products) == 0 {
		return ErrNoProducts
	}
	seenIDs := map[string]bool{}
	for i := range c.Products {
		p := &c.Products[i]
		if p.ID == "" {
			return fmt.Errorf("product %d: missing id", i)
		}
		if seenIDs[p.ID] {
			return fmt.Errorf("product %q: duplicate id", p.ID)
		}
		seenIDs[p.ID] = true
		if len(p.Variants) == 0 {
			return fmt.Errorf("product %q: no texture variants", p.ID)
		}
		seen := map[string]bool{}
		for _, v := range p.Variants {
			key := strings.ToLower(v.Name)
			if v.Name == "" {
				return fmt.Errorf("product %q: variant with empty name", p.ID)
			}
			if seen[key] {
				return fmt.Errorf("product %q: duplicate variant %q", p.ID, v.Name)
			}
			seen[key] = true
			if v.Price <= 0 {
				return fmt.Errorf("product %q: variant %q: price must be positive", p.ID, v.Name)
			}
		}
	}
	return nil
}

// Product returns the product with the given ID, or nil.
func (c *Catalog) Product(id string) *Product {
	for i := range c.Products {
		if c.Products[i].ID == id {
			return &c.Products[i]
		}
	}
	return nil
}

// Variant looks up a texture variant by name. The match is case-insensitive
// because checkout receives the name lower-cased in a query parameter.
func (p *Product) Variant(name string) *TextureVariant {
	for i := range p.Variants {
		if strings.EqualFold(p.Variants[i].Name, name) {
			return &p.Variants[i]
		}
	}
	return nil
}

// DefaultVariant is the selection a fresh session starts with.
func (p *Product) DefaultVariant() *TextureVariant {
	if len(p.Variants) == 0 {
		return nil
	}
	return &p.Variants[0]
}
