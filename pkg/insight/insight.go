// Package insight is the entry point of the insight engine. An Engine wires a
// catalog into a document analyzer, an aggregator and the platform enrichers.
package insight

import (
	"context"

	"go.uber.org/zap"

	"github.com/cognicore/insightful/pkg/insight/aggregate"
	"github.com/cognicore/insightful/pkg/insight/analyzer"
	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/enrich"
	"github.com/cognicore/insightful/pkg/insight/model"
)

// Engine is the insight engine facade.
type Engine struct {
	catalog    *catalog.Catalog
	analyzer   *analyzer.Analyzer
	batch      *analyzer.BatchProcessor
	aggregator *aggregate.Aggregator

	reviews    *enrich.ReviewEnricher
	engagement *enrich.EngagementEnricher
	forum      *enrich.ForumEnricher
}

// Options configures an Engine. Zero values select defaults.
type Options struct {
	Catalog       *catalog.Catalog
	Workers       int
	TopTerms      int
	TopCategories int
	TopItems      int
	MinMentions   int
	Logger        *zap.Logger
}

// New creates an Engine with the given options.
func New(opts Options) *Engine {
	if opts.Catalog == nil {
		opts.Catalog = catalog.Default()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	a := analyzer.New(opts.Catalog, analyzer.WithLogger(opts.Logger.Named("analyzer")))
	agg := aggregate.New(
		aggregate.WithLogger(opts.Logger.Named("aggregate")),
		aggregate.WithTopTerms(opts.TopTerms),
		aggregate.WithTopCategories(opts.TopCategories),
	)
	eo := enrich.Options{
		Workers:     opts.Workers,
		TopItems:    opts.TopItems,
		MinMentions: opts.MinMentions,
		Logger:      opts.Logger.Named("enrich"),
	}

	return &Engine{
		catalog:    opts.Catalog,
		analyzer:   a,
		batch:      analyzer.NewBatchProcessor(a, opts.Workers),
		aggregator: agg,
		reviews:    enrich.NewReviewEnricher(a, agg, eo),
		engagement: enrich.NewEngagementEnricher(a, agg, eo),
		forum:      enrich.NewForumEnricher(a, agg, opts.Catalog.DomainKeywords(), eo),
	}
}

// Catalog returns the catalog the engine was built with.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Analyze extracts signals and terminology from one document.
func (e *Engine) Analyze(sourceID, text string, domain catalog.Domain) model.DocumentInsight {
	return e.analyzer.Analyze(sourceID, text, domain)
}

// AnalyzeMarkup is Analyze for HTML fragments.
func (e *Engine) AnalyzeMarkup(sourceID, html string, domain catalog.Domain) model.DocumentInsight {
	return e.analyzer.AnalyzeMarkup(sourceID, html, domain)
}

// AnalyzeAll analyzes documents in parallel, keeping input order.
func (e *Engine) AnalyzeAll(ctx context.Context, docs []analyzer.Document) ([]model.DocumentInsight, error) {
	return e.batch.Process(ctx, docs)
}

// Aggregate rolls insights up into one summary.
func (e *Engine) Aggregate(insights []model.DocumentInsight) model.AggregatedInsights {
	return e.aggregator.Aggregate(insights)
}

// Reviews returns the review enricher.
func (e *Engine) Reviews() *enrich.ReviewEnricher { return e.reviews }

// Engagement returns the video and image-post enricher.
func (e *Engine) Engagement() *enrich.EngagementEnricher { return e.engagement }

// Forum returns the forum enricher.
func (e *Engine) Forum() *enrich.ForumEnricher { return e.forum }
