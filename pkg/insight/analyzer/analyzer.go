// Package analyzer turns one document's text into a DocumentInsight.
package analyzer

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/ingest"
	"github.com/cognicore/insightful/pkg/insight/model"
	"github.com/cognicore/insightful/pkg/insight/signals"
	"github.com/cognicore/insightful/pkg/insight/taxonomy"
	"github.com/cognicore/insightful/pkg/insight/terminology"
)

// Analyzer orchestrates the per-document flow:
// text → sentences → signal scoring → categorization, plus terminology.
//
// An Analyzer holds only read-only tables and is safe for concurrent use.
type Analyzer struct {
	scorer      signals.Scorer
	indicators  map[model.Kind][]catalog.Indicator
	categorizer *taxonomy.Categorizer
	extractor   *terminology.Extractor
	logger      *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(a *Analyzer) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithScorer overrides the catalog's threshold and cap.
func WithScorer(s signals.Scorer) Option {
	return func(a *Analyzer) { a.scorer = s }
}

// New creates an analyzer over catalog c.
func New(c *catalog.Catalog, opts ...Option) *Analyzer {
	a := &Analyzer{
		scorer: signals.NewScorer(c),
		indicators: map[model.Kind][]catalog.Indicator{
			model.KindPainPoint: c.Indicators(model.KindPainPoint),
			model.KindDesire:    c.Indicators(model.KindDesire),
		},
		categorizer: taxonomy.NewCategorizer(c),
		extractor:   terminology.NewExtractor(c),
		logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze scores every sentence of text against the pain-point and desire
// tables independently (a sentence may be both) and extracts terminology once
// over the full text. Empty or unusable text yields empty collections.
func (a *Analyzer) Analyze(sourceID, text string, domain catalog.Domain) model.DocumentInsight {
	insight := model.Empty(sourceID)

	text = strings.ToValidUTF8(text, " ")
	if strings.TrimSpace(text) == "" {
		return insight
	}

	for _, sentence := range ingest.SplitSentences(text) {
		if f, ok := a.score(model.KindPainPoint, sentence); ok {
			insight.PainPoints = append(insight.PainPoints, f)
		}
		if f, ok := a.score(model.KindDesire, sentence); ok {
			insight.Desires = append(insight.Desires, f)
		}
	}

	insight.Terminology = a.extractor.Extract(text, domain)

	a.logger.Debug("document analyzed",
		zap.String("source_id", sourceID),
		zap.String("domain", string(catalog.ParseDomain(string(domain)))),
		zap.Int("pain_points", len(insight.PainPoints)),
		zap.Int("desires", len(insight.Desires)),
		zap.Int("terms", len(insight.Terminology)))

	return insight
}

// AnalyzeMarkup strips HTML from body before analyzing it.
func (a *Analyzer) AnalyzeMarkup(sourceID, body string, domain catalog.Domain) model.DocumentInsight {
	return a.Analyze(sourceID, ingest.StripMarkup(body), domain)
}

func (a *Analyzer) score(kind model.Kind, sentence string) (model.ScoredFragment, bool) {
	res := a.scorer.Score(sentence, a.indicators[kind])
	if !a.scorer.Qualifies(res) {
		return model.ScoredFragment{}, false
	}
	return model.ScoredFragment{
		Text:       sentence,
		Score:      res.Score,
		Indicators: res.Indicators,
		Category:   a.categorizer.Categorize(kind, sentence),
	}, true
}
