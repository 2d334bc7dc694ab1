// Package aggregate combines many document insights into ranked,
// de-duplicated cross-document summaries.
package aggregate

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/cognicore/insightful/pkg/insight/ident"
	"github.com/cognicore/insightful/pkg/insight/internalerr"
	"github.com/cognicore/insightful/pkg/insight/model"
)

// Ranking defaults.
const (
	DefaultTopCategories = 5
	DefaultTopTerms      = 20

	summaryCategories = 3
	summaryTerms      = 10
)

// Aggregator runs aggregation passes. It keeps no state between passes and is
// safe for concurrent use.
type Aggregator struct {
	topCategories int
	topTerms      int
	ids           *ident.Generator
	logger        *zap.Logger
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithLogger sets the logger used to report skipped documents.
func WithLogger(l *zap.Logger) Option {
	return func(a *Aggregator) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithTopCategories sets how many categories the top_categories views keep.
func WithTopCategories(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.topCategories = n
		}
	}
}

// WithTopTerms sets how many terms the top terminology view keeps.
func WithTopTerms(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.topTerms = n
		}
	}
}

// New creates an aggregator.
func New(opts ...Option) *Aggregator {
	a := &Aggregator{
		topCategories: DefaultTopCategories,
		topTerms:      DefaultTopTerms,
		ids:           ident.NewGenerator(),
		logger:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// pass accumulates one aggregation run.
type pass struct {
	pains     *CategoryBucket
	desires   *CategoryBucket
	painAll   []model.ScoredFragment
	desireAll []model.ScoredFragment
	terms     []model.TerminologyItem
	termIndex map[string]int
	documents int
	skipped   []string
}

func newPass() *pass {
	return &pass{
		pains:     NewCategoryBucket(),
		desires:   NewCategoryBucket(),
		painAll:   []model.ScoredFragment{},
		desireAll: []model.ScoredFragment{},
		terms:     []model.TerminologyItem{},
		termIndex: make(map[string]int),
	}
}

// Aggregate flattens, groups and ranks insights. A document that fails
// validation is logged and skipped; the remaining documents still aggregate.
func (a *Aggregator) Aggregate(insights []model.DocumentInsight) model.AggregatedInsights {
	p := newPass()

	for _, d := range insights {
		if err := p.contribute(d); err != nil {
			a.logger.Warn("skipping document in aggregation",
				zap.String("source_id", d.SourceID),
				zap.Error(err))
			p.skipped = append(p.skipped, d.SourceID)
		}
	}

	return a.build(p)
}

// contribute validates d before touching the pass, so a rejected document
// leaves no partial contribution behind.
func (p *pass) contribute(d model.DocumentInsight) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", internalerr.ErrMalformedInsight, r)
		}
	}()

	if err := d.Validate(); err != nil {
		return err
	}

	for _, f := range d.PainPoints {
		p.painAll = append(p.painAll, f)
		p.pains.Add(f)
	}
	for _, f := range d.Desires {
		p.desireAll = append(p.desireAll, f)
		p.desires.Add(f)
	}
	for _, t := range d.Terminology {
		if i, ok := p.termIndex[t.Term]; ok {
			p.terms[i].Frequency += t.Frequency
			continue
		}
		p.termIndex[t.Term] = len(p.terms)
		p.terms = append(p.terms, t)
	}
	p.documents++
	return nil
}

func (a *Aggregator) build(p *pass) model.AggregatedInsights {
	painTop := p.pains.TopCategories(a.topCategories)
	desireTop := p.desires.TopCategories(a.topCategories)
	topTerms := rankTerms(p.terms)
	if len(topTerms) > a.topTerms {
		topTerms = topTerms[:a.topTerms]
	}

	termNames := make([]string, 0, min(len(topTerms), summaryTerms))
	for _, t := range topTerms[:min(len(topTerms), summaryTerms)] {
		termNames = append(termNames, t.Term)
	}

	return model.AggregatedInsights{
		ID: a.ids.New(),
		PainPoints: model.SignalGroup{
			All:           p.painAll,
			ByCategory:    p.pains.byCategory(),
			TopCategories: painTop,
		},
		Desires: model.SignalGroup{
			All:           p.desireAll,
			ByCategory:    p.desires.byCategory(),
			TopCategories: desireTop,
		},
		Terminology: model.TerminologyGroup{
			All:         p.terms,
			ByFrequency: GroupByFrequency(p.terms),
			Top:         topTerms,
		},
		Summary: model.Summary{
			TopPainPointCategories: categoryNames(painTop[:min(len(painTop), summaryCategories)]),
			TopDesireCategories:    categoryNames(desireTop[:min(len(desireTop), summaryCategories)]),
			TopTerms:               termNames,
			Totals: model.Totals{
				PainPoints: len(p.painAll),
				Desires:    len(p.desireAll),
				Terms:      len(p.terms),
				Documents:  p.documents,
			},
		},
		Skipped: p.skipped,
	}
}

// GroupByFrequency groups items by their raw frequency value. It is a
// grouping, not a ranking: items keep input order inside each group.
func GroupByFrequency(items []model.TerminologyItem) map[int][]model.TerminologyItem {
	out := make(map[int][]model.TerminologyItem)
	for _, it := range items {
		out[it.Frequency] = append(out[it.Frequency], it)
	}
	return out
}

// rankTerms returns a copy of items sorted by frequency, descending; equal
// frequencies keep input order.
func rankTerms(items []model.TerminologyItem) []model.TerminologyItem {
	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, func(x, y model.TerminologyItem) int {
		return cmp.Compare(y.Frequency, x.Frequency)
	})
	return ranked
}
