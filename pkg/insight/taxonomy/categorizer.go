// Package taxonomy assigns scored fragments to coarse categories.
package taxonomy

import (
	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/model"
)

// Categorize returns the name of the first rule with a pattern matching text,
// or "other" when no rule matches. Rule order decides ties.
func Categorize(text string, rules []catalog.CategoryRule) string {
	for _, rule := range rules {
		if rule.Match(text) {
			return rule.Name
		}
	}
	return model.CategoryOther
}

// Categorizer binds the ordered rule tables of a catalog.
type Categorizer struct {
	rules map[model.Kind][]catalog.CategoryRule
}

// NewCategorizer snapshots the category rules of c.
func NewCategorizer(c *catalog.Catalog) *Categorizer {
	return &Categorizer{
		rules: map[model.Kind][]catalog.CategoryRule{
			model.KindPainPoint: c.Categories(model.KindPainPoint),
			model.KindDesire:    c.Categories(model.KindDesire),
		},
	}
}

// Categorize classifies text with the rules for kind.
func (c *Categorizer) Categorize(kind model.Kind, text string) string {
	return Categorize(text, c.rules[kind])
}

// Names lists the category names configured for kind, in rule order.
func (c *Categorizer) Names(kind model.Kind) []string {
	rules := c.rules[kind]
	names := make([]string, len(rules))
	for i, r := range rules {
		names[i] = r.Name
	}
	return names
}
