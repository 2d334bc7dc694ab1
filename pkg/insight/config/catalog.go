// Package config loads catalog tables from YAML files.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/internalerr"
	"github.com/cognicore/insightful/pkg/insight/model"
)

// CatalogFile is the YAML layout of a catalog. Sections left out of the file
// keep the built-in tables.
type CatalogFile struct {
	Version        string                     `yaml:"version"`
	Threshold      float64                    `yaml:"threshold"`
	Cap            float64                    `yaml:"cap"`
	Indicators     map[string][]IndicatorFile `yaml:"indicators"`
	Categories     map[string][]CategoryFile  `yaml:"categories"`
	Vocabularies   map[string][]string        `yaml:"vocabularies"`
	DomainKeywords []DomainKeywordsFile       `yaml:"domain_keywords"`
}

// IndicatorFile is one weighted pattern.
type IndicatorFile struct {
	Label   string  `yaml:"label"`
	Pattern string  `yaml:"pattern"`
	Weight  float64 `yaml:"weight"`
}

// CategoryFile is one category rule.
type CategoryFile struct {
	Name     string   `yaml:"name"`
	Patterns []string `yaml:"patterns"`
}

// DomainKeywordsFile maps a domain to query keywords.
type DomainKeywordsFile struct {
	Domain   string   `yaml:"domain"`
	Keywords []string `yaml:"keywords"`
}

// ParseCatalogFile decodes YAML catalog data.
func ParseCatalogFile(data []byte) (*CatalogFile, error) {
	var f CatalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	return &f, nil
}

// LoadCatalog reads a YAML catalog file and compiles it over the built-in
// tables.
func LoadCatalog(path string) (*catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	f, err := ParseCatalogFile(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	c, err := catalog.New(f.Merge(catalog.DefaultTables()))
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}
	return c, nil
}

// Merge overlays the file onto base. A present section replaces the
// matching base section whole; per-kind and per-domain entries replace only
// their own table.
func (f *CatalogFile) Merge(base catalog.Tables) catalog.Tables {
	t := base
	if f.Version != "" {
		t.Version = f.Version
	}
	if f.Threshold != 0 {
		t.Threshold = f.Threshold
	}
	if f.Cap != 0 {
		t.Cap = f.Cap
	}

	if len(f.Indicators) > 0 {
		indicators := make(map[model.Kind][]catalog.IndicatorSpec, len(t.Indicators))
		for k, v := range t.Indicators {
			indicators[k] = v
		}
		for kind, entries := range f.Indicators {
			specs := make([]catalog.IndicatorSpec, len(entries))
			for i, e := range entries {
				specs[i] = catalog.IndicatorSpec{Label: e.Label, Pattern: e.Pattern, Weight: e.Weight}
			}
			indicators[model.Kind(kind)] = specs
		}
		t.Indicators = indicators
	}

	if len(f.Categories) > 0 {
		categories := make(map[model.Kind][]catalog.RuleSpec, len(t.Categories))
		for k, v := range t.Categories {
			categories[k] = v
		}
		for kind, entries := range f.Categories {
			rules := make([]catalog.RuleSpec, len(entries))
			for i, e := range entries {
				rules[i] = catalog.RuleSpec{Name: e.Name, Patterns: e.Patterns}
			}
			categories[model.Kind(kind)] = rules
		}
		t.Categories = categories
	}

	if len(f.Vocabularies) > 0 {
		vocab := make(map[catalog.Domain][]string, len(t.Vocabularies))
		for k, v := range t.Vocabularies {
			vocab[k] = v
		}
		for domain, terms := range f.Vocabularies {
			vocab[catalog.Domain(domain)] = terms
		}
		t.Vocabularies = vocab
	}

	if f.DomainKeywords != nil {
		t.DomainKeywords = make([]catalog.DomainKeywords, len(f.DomainKeywords))
		for i, dk := range f.DomainKeywords {
			t.DomainKeywords[i] = catalog.DomainKeywords{Domain: catalog.Domain(dk.Domain), Keywords: dk.Keywords}
		}
	}

	return t
}
