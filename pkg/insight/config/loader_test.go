package config

import (
	"testing"

	"github.com/cognicore/insightful/pkg/insight/catalog"
)

func TestLoaderEmptyUsesDefaults(t *testing.T) {
	comp, err := (&Loader{}).Load()
	if err != nil {
		t.Fatalf("empty loader should succeed: %v", err)
	}
	if comp.Catalog == nil {
		t.Fatal("catalog should be set")
	}
	if comp.Catalog.Version() != catalog.DefaultVersion {
		t.Errorf("version = %q, want %q", comp.Catalog.Version(), catalog.DefaultVersion)
	}
}

func TestLoaderCatalogFile(t *testing.T) {
	path := writeFile(t, "catalog.yaml", "version: custom\ncap: 0.9\n")

	comp, err := (&Loader{CatalogPath: path}).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if comp.Catalog.Version() != "custom" || comp.Catalog.Cap() != 0.9 {
		t.Errorf("catalog = %s / %v", comp.Catalog.Version(), comp.Catalog.Cap())
	}
}

func TestLoaderNonExistentCatalog(t *testing.T) {
	if _, err := (&Loader{CatalogPath: "/nonexistent/catalog.yaml"}).Load(); err == nil {
		t.Error("should error on nonexistent catalog")
	}
}
