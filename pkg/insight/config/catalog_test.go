package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/internalerr"
	"github.com/cognicore/insightful/pkg/insight/model"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadCatalogOverridesSections(t *testing.T) {
	path := writeFile(t, "catalog.yaml", `
version: "2025.2-test"
threshold: 0.5
indicators:
  pain_point:
    - label: meh
      pattern: '\bmeh\b'
      weight: 0.6
categories:
  pain_point:
    - name: vibes
      patterns: ['\bvibes?\b']
vocabularies:
  food:
    - umami
    - mouth feel
domain_keywords:
  - domain: food
    keywords: [ramen]
`)

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}

	if c.Version() != "2025.2-test" {
		t.Errorf("version = %q", c.Version())
	}
	if c.Threshold() != 0.5 {
		t.Errorf("threshold = %v, want 0.5", c.Threshold())
	}
	if c.Cap() != catalog.DefaultCap {
		t.Errorf("cap = %v, want default", c.Cap())
	}

	pains := c.Indicators(model.KindPainPoint)
	if len(pains) != 1 || pains[0].Label != "meh" || !pains[0].Match("Meh, whatever") {
		t.Errorf("pain indicators not replaced: %+v", pains)
	}
	if got := len(c.Indicators(model.KindDesire)); got != len(catalog.Default().Indicators(model.KindDesire)) {
		t.Errorf("desire indicators should keep defaults, got %d", got)
	}

	cats := c.Categories(model.KindPainPoint)
	if len(cats) != 1 || cats[0].Name != "vibes" {
		t.Errorf("pain categories not replaced: %+v", cats)
	}

	food := c.Vocabulary(catalog.Food)
	if !food.Contains("mouth feel") || food.Contains("taste") {
		t.Error("food vocabulary should be replaced")
	}
	if !c.Vocabulary(catalog.Tech).Contains("battery life") {
		t.Error("tech vocabulary should keep defaults")
	}

	kw := c.DomainKeywords()
	if len(kw) != 1 || kw[0].Domain != catalog.Food {
		t.Errorf("domain keywords = %+v", kw)
	}
}

func TestLoadCatalogEmptyFileIsDefault(t *testing.T) {
	c, err := LoadCatalog(writeFile(t, "empty.yaml", ""))
	if err != nil {
		t.Fatalf("LoadCatalog: %v", err)
	}
	def := catalog.Default()
	if c.Version() != def.Version() {
		t.Errorf("version = %q, want %q", c.Version(), def.Version())
	}
	if len(c.Categories(model.KindPainPoint)) != len(def.Categories(model.KindPainPoint)) {
		t.Error("empty file should keep default categories")
	}
}

func TestLoadCatalogInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"zero weight", "indicators:\n  desire:\n    - {label: x, pattern: x, weight: 0}\n"},
		{"weight above one", "indicators:\n  desire:\n    - {label: x, pattern: x, weight: 1.5}\n"},
		{"bad regexp", "categories:\n  desire:\n    - {name: x, patterns: ['(']}\n"},
		{"unknown kind", "indicators:\n  joy:\n    - {label: x, pattern: x, weight: 0.5}\n"},
		{"unknown domain", "vocabularies:\n  automotive: [engine]\n"},
		{"negative threshold", "threshold: -1\n"},
		{"cap above one", "cap: 1.5\n"},
		{"malformed yaml", "indicators: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadCatalog(writeFile(t, "bad.yaml", tt.content))
			if !errors.Is(err, internalerr.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadCatalogMissingFile(t *testing.T) {
	_, err := LoadCatalog("/nonexistent/catalog.yaml")
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestMergeDoesNotTouchBase(t *testing.T) {
	base := catalog.DefaultTables()
	f := &CatalogFile{Vocabularies: map[string][]string{"tech": {"modem"}}}

	merged := f.Merge(base)

	if len(merged.Vocabularies[catalog.Tech]) != 1 {
		t.Errorf("merged tech vocabulary = %v", merged.Vocabularies[catalog.Tech])
	}
	if len(base.Vocabularies[catalog.Tech]) == 1 {
		t.Error("base tables were modified")
	}
}
