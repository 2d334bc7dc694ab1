package analyzer

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/ident"
	"github.com/cognicore/insightful/pkg/insight/model"
)

// Document is one unit of text handed to a Batch.
type Document struct {
	ID     string
	Text   string
	Domain catalog.Domain
	// Markup marks Text as HTML to be stripped before analysis.
	Markup bool
}

// BatchProcessor analyzes many documents concurrently.
type BatchProcessor struct {
	analyzer    *Analyzer
	concurrency int
	ids         *ident.Generator
	logger      *zap.Logger
}

// NewBatchProcessor creates a processor running up to concurrency analyses
// at once. Values <= 0 use GOMAXPROCS.
func NewBatchProcessor(a *Analyzer, concurrency int) *BatchProcessor {
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	return &BatchProcessor{
		analyzer:    a,
		concurrency: concurrency,
		ids:         ident.NewGenerator(),
		logger:      a.logger,
	}
}

// Process analyzes docs and returns their insights in input order. Documents
// without an ID get a generated one.
//
// When ctx is cancelled no further documents are started; the insights that
// completed are returned together with ctx.Err(). That subset is valid input
// for aggregation.
func (b *BatchProcessor) Process(ctx context.Context, docs []Document) ([]model.DocumentInsight, error) {
	if len(docs) == 0 {
		return []model.DocumentInsight{}, ctx.Err()
	}

	results := make([]model.DocumentInsight, len(docs))
	done := make([]bool, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i := range docs {
		if gctx.Err() != nil {
			break
		}
		i := i
		doc := docs[i]
		if doc.ID == "" {
			doc.ID = b.ids.New()
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			if doc.Markup {
				results[i] = b.analyzer.AnalyzeMarkup(doc.ID, doc.Text, doc.Domain)
			} else {
				results[i] = b.analyzer.Analyze(doc.ID, doc.Text, doc.Domain)
			}
			done[i] = true
			return nil
		})
	}
	_ = g.Wait()

	out := make([]model.DocumentInsight, 0, len(docs))
	for i, ok := range done {
		if ok {
			out = append(out, results[i])
		}
	}

	if err := ctx.Err(); err != nil {
		b.logger.Warn("batch analysis interrupted",
			zap.Int("completed", len(out)),
			zap.Int("submitted", len(docs)),
			zap.Error(err))
		return out, err
	}
	return out, nil
}
