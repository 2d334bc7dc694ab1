package enrich

import (
	"context"

	"go.uber.org/zap"

	"github.com/cognicore/insightful/pkg/insight/aggregate"
	"github.com/cognicore/insightful/pkg/insight/analyzer"
	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/ident"
	"github.com/cognicore/insightful/pkg/insight/model"
)

// Thread is a forum post with its comment tree flattened.
type Thread struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Community string    `json:"community,omitempty"`
	Score     int64     `json:"score,omitempty"`
	Comments  []Comment `json:"comments,omitempty"`
}

// ForumInsights is the enriched view of a set of forum threads.
type ForumInsights struct {
	Query          string                   `json:"query"`
	Domain         catalog.Domain           `json:"domain"`
	DomainInferred bool                     `json:"domain_inferred"`
	Threads        int                      `json:"threads"`
	Comments       int                      `json:"comments"`
	Insights       model.AggregatedInsights `json:"insights"`
}

// ForumEnricher analyzes forum-style threads.
type ForumEnricher struct {
	core
	keywords []catalog.DomainKeywords
}

// NewForumEnricher creates a forum enricher; keywords drive domain inference.
func NewForumEnricher(a *analyzer.Analyzer, agg *aggregate.Aggregator, keywords []catalog.DomainKeywords, opts Options) *ForumEnricher {
	return &ForumEnricher{
		core:     newCore(a, agg, opts),
		keywords: keywords,
	}
}

// Enrich analyzes threads and their comments. When domain is empty it is
// inferred from query; an unrecognized domain falls back to general.
// On cancellation the partial result is returned with ctx.Err().
func (e *ForumEnricher) Enrich(ctx context.Context, query, domain string, threads []Thread) (ForumInsights, error) {
	out := ForumInsights{Query: query}
	if domain == "" {
		out.Domain = InferDomain(query, e.keywords)
		out.DomainInferred = true
	} else {
		out.Domain = catalog.ParseDomain(domain)
	}

	var docs []analyzer.Document
	for _, th := range threads {
		id := th.ID
		if id == "" {
			id = ident.New()
		}
		docs = append(docs, analyzer.Document{
			ID:     id,
			Text:   joinText(th.Title, th.Body),
			Domain: out.Domain,
			Markup: true,
		})
		for i, c := range th.Comments {
			docs = append(docs, analyzer.Document{
				ID:     commentID(id, i, c),
				Text:   c.Text,
				Domain: out.Domain,
				Markup: true,
			})
			out.Comments++
		}
	}
	out.Threads = len(threads)

	insights, err := e.analyze(ctx, "forum", docs)
	out.Insights = e.aggregator.Aggregate(insights)

	e.logger.Debug("forum threads enriched",
		zap.String("query", query),
		zap.String("domain", string(out.Domain)),
		zap.Bool("inferred", out.DomainInferred),
		zap.Int("documents", len(docs)))

	return out, err
}
