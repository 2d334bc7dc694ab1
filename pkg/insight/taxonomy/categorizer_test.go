package taxonomy

import (
	"slices"
	"testing"

	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/model"
)

func rules() []catalog.CategoryRule {
	return []catalog.CategoryRule{
		catalog.MustCategoryRule("price", `\bexpensive\b`, `\bprice\b`),
		catalog.MustCategoryRule("battery", `\bbattery\b`),
		catalog.MustCategoryRule("quality", `\bcheap\b`, `\bbattery\b`),
	}
}

func TestCategorizeFirstMatchWins(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Way too expensive", "price"},
		{"the battery is weak", "battery"},
		{"feels cheap", "quality"},
		{"expensive and the battery dies", "price"},
		{"cheap battery", "battery"},
		{"nothing relevant", model.CategoryOther},
		{"", model.CategoryOther},
	}

	for _, tt := range tests {
		if got := Categorize(tt.text, rules()); got != tt.want {
			t.Errorf("Categorize(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestCategorizeOrderMatters(t *testing.T) {
	r := rules()
	if got := Categorize("cheap battery", r); got != "battery" {
		t.Fatalf("expected battery, got %s", got)
	}

	// Swapping rule order changes the outcome for overlapping patterns.
	r[1], r[2] = r[2], r[1]
	if got := Categorize("cheap battery", r); got != "quality" {
		t.Errorf("expected quality after reordering, got %s", got)
	}
}

func TestCategorizeNoRules(t *testing.T) {
	if got := Categorize("anything", nil); got != model.CategoryOther {
		t.Errorf("expected other, got %s", got)
	}
}

func TestCategorizeDeterministic(t *testing.T) {
	c := NewCategorizer(catalog.Default())
	texts := []string{
		"Ik haat het dat de foto's altijd wazig zijn",
		"The delivery took forever and support never answered",
		"I would love a cheaper plan",
		"random words",
	}

	for _, kind := range []model.Kind{model.KindPainPoint, model.KindDesire} {
		allowed := append(c.Names(kind), model.CategoryOther)
		for _, text := range texts {
			first := c.Categorize(kind, text)
			for i := 0; i < 20; i++ {
				if got := c.Categorize(kind, text); got != first {
					t.Fatalf("Categorize(%s, %q) not deterministic: %s vs %s", kind, text, first, got)
				}
			}
			if !slices.Contains(allowed, first) {
				t.Errorf("category %q not among configured names", first)
			}
		}
	}
}

func TestDefaultTablesScenarios(t *testing.T) {
	c := NewCategorizer(catalog.Default())

	if got := c.Categorize(model.KindPainPoint, "Ik haat het dat de foto's altijd wazig zijn"); got != "photo_quality" {
		t.Errorf("expected photo_quality, got %s", got)
	}
	if got := c.Categorize(model.KindDesire, "Ik zou graag een telefoon willen die minstens een hele dag meegaat"); got != "battery_life" {
		t.Errorf("expected battery_life, got %s", got)
	}
	if got := c.Categorize(model.KindPainPoint, "The delivery took forever and support never answered"); got != "customer_service" {
		t.Errorf("expected customer_service, got %s", got)
	}
	if got := c.Categorize(model.Kind("joy"), "battery"); got != model.CategoryOther {
		t.Errorf("unknown kind should fall back to other, got %s", got)
	}
}
