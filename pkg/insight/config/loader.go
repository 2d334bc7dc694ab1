package config

import (
	"fmt"

	"github.com/cognicore/insightful/pkg/insight/catalog"
)

// Loader loads configuration files and constructs components.
type Loader struct {
	CatalogPath string
}

// Components holds the loaded configuration components.
type Components struct {
	Catalog *catalog.Catalog
}

// Load reads the configured files. An empty path selects the built-in tables.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.CatalogPath != "" {
		c, err := LoadCatalog(l.CatalogPath)
		if err != nil {
			return nil, fmt.Errorf("load catalog: %w", err)
		}
		comp.Catalog = c
	} else {
		comp.Catalog = catalog.Default()
	}

	return comp, nil
}
