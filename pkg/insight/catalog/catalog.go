// Package catalog holds the read-only tables the insight engine scores and
// classifies text against: weighted indicator tables per signal kind, ordered
// category rules, domain vocabularies and the domain keyword table.
//
// A Catalog is built once (New or Default) and shared by reference between
// goroutines. Nothing mutates it after construction; accessors return copies.
package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/cognicore/insightful/pkg/insight/ingest"
	"github.com/cognicore/insightful/pkg/insight/internalerr"
	"github.com/cognicore/insightful/pkg/insight/model"
)

// Scoring defaults.
const (
	DefaultThreshold = 0.7
	DefaultCap       = 1.0
)

// Indicator is one weighted pattern contributing to a signal score.
type Indicator struct {
	Label   string
	Pattern string
	Weight  float64
	re      *regexp.Regexp
}

// NewIndicator compiles a case-insensitive, unanchored indicator.
// An empty label defaults to the pattern.
func NewIndicator(label, pattern string, weight float64) (Indicator, error) {
	if !(weight > 0 && weight <= 1) {
		return Indicator{}, fmt.Errorf("%w: indicator %q weight %v outside (0,1]", internalerr.ErrInvalidConfig, pattern, weight)
	}
	re, err := compile(pattern)
	if err != nil {
		return Indicator{}, err
	}
	if label == "" {
		label = pattern
	}
	return Indicator{Label: label, Pattern: pattern, Weight: weight, re: re}, nil
}

// MustIndicator is like NewIndicator but panics on error.
func MustIndicator(label, pattern string, weight float64) Indicator {
	ind, err := NewIndicator(label, pattern, weight)
	if err != nil {
		panic(err)
	}
	return ind
}

// Match reports whether the indicator fires anywhere in text.
func (i Indicator) Match(text string) bool {
	return i.re != nil && i.re.MatchString(text)
}

// CategoryRule names a category and the patterns that select it.
type CategoryRule struct {
	Name     string
	Patterns []string
	res      []*regexp.Regexp
}

// NewCategoryRule compiles a rule's patterns.
func NewCategoryRule(name string, patterns ...string) (CategoryRule, error) {
	if strings.TrimSpace(name) == "" {
		return CategoryRule{}, fmt.Errorf("%w: category rule without name", internalerr.ErrInvalidConfig)
	}
	rule := CategoryRule{
		Name:     name,
		Patterns: append([]string(nil), patterns...),
		res:      make([]*regexp.Regexp, 0, len(patterns)),
	}
	for _, p := range patterns {
		re, err := compile(p)
		if err != nil {
			return CategoryRule{}, fmt.Errorf("category %s: %w", name, err)
		}
		rule.res = append(rule.res, re)
	}
	return rule, nil
}

// MustCategoryRule is like NewCategoryRule but panics on error.
func MustCategoryRule(name string, patterns ...string) CategoryRule {
	rule, err := NewCategoryRule(name, patterns...)
	if err != nil {
		panic(err)
	}
	return rule
}

// Match reports whether any of the rule's patterns matches text.
func (r CategoryRule) Match(text string) bool {
	for _, re := range r.res {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

func compile(pattern string) (*regexp.Regexp, error) {
	if strings.TrimSpace(pattern) == "" {
		return nil, fmt.Errorf("%w: empty pattern", internalerr.ErrInvalidConfig)
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: pattern %q: %v", internalerr.ErrInvalidConfig, pattern, err)
	}
	return re, nil
}

// DomainKeywords maps a domain to the query keywords that select it.
type DomainKeywords struct {
	Domain   Domain
	Keywords []string
}

// IndicatorSpec is the uncompiled form of an Indicator.
type IndicatorSpec struct {
	Label   string
	Pattern string
	Weight  float64
}

// RuleSpec is the uncompiled form of a CategoryRule.
type RuleSpec struct {
	Name     string
	Patterns []string
}

// Tables is the raw, uncompiled content of a catalog.
type Tables struct {
	Version        string
	Threshold      float64
	Cap            float64
	Indicators     map[model.Kind][]IndicatorSpec
	Categories     map[model.Kind][]RuleSpec
	Vocabularies   map[Domain][]string
	DomainKeywords []DomainKeywords
}

// Catalog is the compiled, immutable set of tables.
type Catalog struct {
	tables         Tables
	indicators     map[model.Kind][]Indicator
	categories     map[model.Kind][]CategoryRule
	vocabularies   map[Domain]Vocabulary
	domainKeywords []DomainKeywords
}

// New validates and compiles tables into a Catalog.
func New(t Tables) (*Catalog, error) {
	t = t.clone()
	if t.Threshold == 0 {
		t.Threshold = DefaultThreshold
	}
	if t.Cap == 0 {
		t.Cap = DefaultCap
	}
	if t.Threshold < 0 || t.Cap <= 0 || t.Cap > 1 {
		return nil, fmt.Errorf("%w: threshold %v / cap %v", internalerr.ErrInvalidConfig, t.Threshold, t.Cap)
	}

	c := &Catalog{
		tables:       t,
		indicators:   make(map[model.Kind][]Indicator),
		categories:   make(map[model.Kind][]CategoryRule),
		vocabularies: make(map[Domain]Vocabulary),
	}

	for kind, specs := range t.Indicators {
		if !validKind(kind) {
			return nil, fmt.Errorf("%w: unknown signal kind %q", internalerr.ErrInvalidConfig, kind)
		}
		compiled := make([]Indicator, 0, len(specs))
		for _, s := range specs {
			ind, err := NewIndicator(s.Label, s.Pattern, s.Weight)
			if err != nil {
				return nil, fmt.Errorf("%s indicators: %w", kind, err)
			}
			compiled = append(compiled, ind)
		}
		c.indicators[kind] = compiled
	}

	for kind, specs := range t.Categories {
		if !validKind(kind) {
			return nil, fmt.Errorf("%w: unknown signal kind %q", internalerr.ErrInvalidConfig, kind)
		}
		rules := make([]CategoryRule, 0, len(specs))
		for _, s := range specs {
			rule, err := NewCategoryRule(s.Name, s.Patterns...)
			if err != nil {
				return nil, fmt.Errorf("%s categories: %w", kind, err)
			}
			rules = append(rules, rule)
		}
		c.categories[kind] = rules
	}

	for domain, terms := range t.Vocabularies {
		d, ok := LookupDomain(string(domain))
		if !ok {
			return nil, fmt.Errorf("%w: unknown vocabulary domain %q", internalerr.ErrInvalidConfig, domain)
		}
		c.vocabularies[d] = NewVocabulary(terms)
	}

	for _, dk := range t.DomainKeywords {
		d, ok := LookupDomain(string(dk.Domain))
		if !ok {
			return nil, fmt.Errorf("%w: unknown keyword domain %q", internalerr.ErrInvalidConfig, dk.Domain)
		}
		c.domainKeywords = append(c.domainKeywords, DomainKeywords{
			Domain:   d,
			Keywords: append([]string(nil), dk.Keywords...),
		})
	}

	return c, nil
}

func validKind(k model.Kind) bool {
	return k == model.KindPainPoint || k == model.KindDesire
}

// Version identifies the table set.
func (c *Catalog) Version() string { return c.tables.Version }

// Threshold is the score a sentence must exceed to qualify.
func (c *Catalog) Threshold() float64 { return c.tables.Threshold }

// Cap is the upper bound reported for a score.
func (c *Catalog) Cap() float64 { return c.tables.Cap }

// Indicators returns a copy of the indicator table for kind.
func (c *Catalog) Indicators(kind model.Kind) []Indicator {
	return append([]Indicator(nil), c.indicators[kind]...)
}

// Categories returns a copy of the ordered category rules for kind.
func (c *Catalog) Categories(kind model.Kind) []CategoryRule {
	return append([]CategoryRule(nil), c.categories[kind]...)
}

// Vocabulary returns the vocabulary for domain, falling back to general.
func (c *Catalog) Vocabulary(d Domain) Vocabulary {
	if v, ok := c.vocabularies[ParseDomain(string(d))]; ok {
		return v
	}
	return c.vocabularies[General]
}

// DomainKeywords returns a copy of the ordered domain keyword table.
func (c *Catalog) DomainKeywords() []DomainKeywords {
	out := make([]DomainKeywords, len(c.domainKeywords))
	for i, dk := range c.domainKeywords {
		out[i] = DomainKeywords{Domain: dk.Domain, Keywords: append([]string(nil), dk.Keywords...)}
	}
	return out
}

// Tables returns a deep copy of the raw tables the catalog was built from.
func (c *Catalog) Tables() Tables {
	return c.tables.clone()
}

func (t Tables) clone() Tables {
	out := t
	out.Indicators = make(map[model.Kind][]IndicatorSpec, len(t.Indicators))
	for k, v := range t.Indicators {
		out.Indicators[k] = append([]IndicatorSpec(nil), v...)
	}
	out.Categories = make(map[model.Kind][]RuleSpec, len(t.Categories))
	for k, v := range t.Categories {
		rules := make([]RuleSpec, len(v))
		for i, r := range v {
			rules[i] = RuleSpec{Name: r.Name, Patterns: append([]string(nil), r.Patterns...)}
		}
		out.Categories[k] = rules
	}
	out.Vocabularies = make(map[Domain][]string, len(t.Vocabularies))
	for k, v := range t.Vocabularies {
		out.Vocabularies[k] = append([]string(nil), v...)
	}
	out.DomainKeywords = make([]DomainKeywords, len(t.DomainKeywords))
	for i, dk := range t.DomainKeywords {
		out.DomainKeywords[i] = DomainKeywords{Domain: dk.Domain, Keywords: append([]string(nil), dk.Keywords...)}
	}
	return out
}

// Vocabulary is a set of normalized 1-3 word terms.
type Vocabulary struct {
	terms    map[string]struct{}
	maxWords int
}

// NewVocabulary normalizes entries the same way document text is tokenized.
// Entries that normalize to nothing (or to more than three words) are ignored.
func NewVocabulary(entries []string) Vocabulary {
	v := Vocabulary{terms: make(map[string]struct{}, len(entries))}
	for _, e := range entries {
		words := ingest.Words(e)
		if len(words) == 0 || len(words) > 3 {
			continue
		}
		v.terms[strings.Join(words, " ")] = struct{}{}
		if len(words) > v.maxWords {
			v.maxWords = len(words)
		}
	}
	return v
}

// Contains reports whether term is a vocabulary entry.
func (v Vocabulary) Contains(term string) bool {
	_, ok := v.terms[term]
	return ok
}

// Len returns the number of entries.
func (v Vocabulary) Len() int { return len(v.terms) }

// MaxWords is the word count of the longest entry.
func (v Vocabulary) MaxWords() int { return v.maxWords }
