// Package enrich wraps document analysis and aggregation with the views a
// particular content source needs, such as rating buckets for reviews.
package enrich

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/cognicore/insightful/pkg/insight/aggregate"
	"github.com/cognicore/insightful/pkg/insight/analyzer"
	"github.com/cognicore/insightful/pkg/insight/model"
)

// Defaults for Options.
const (
	DefaultTopItems    = 10
	DefaultMinMentions = 2
)

// Options tunes an enricher.
type Options struct {
	// Workers bounds concurrent document analyses (<= 0: GOMAXPROCS).
	Workers int
	// TopItems is the size of the most-engaged list.
	TopItems int
	// MinMentions is how many reviews must mention a term before it gets a
	// feature sentiment score.
	MinMentions int
	Logger      *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.TopItems <= 0 {
		o.TopItems = DefaultTopItems
	}
	if o.MinMentions <= 0 {
		o.MinMentions = DefaultMinMentions
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// core is the analysis and aggregation machinery every enricher shares.
type core struct {
	batch      *analyzer.BatchProcessor
	aggregator *aggregate.Aggregator
	opts       Options
	logger     *zap.Logger
}

func newCore(a *analyzer.Analyzer, agg *aggregate.Aggregator, opts Options) core {
	opts = opts.withDefaults()
	return core{
		batch:      analyzer.NewBatchProcessor(a, opts.Workers),
		aggregator: agg,
		opts:       opts,
		logger:     opts.Logger,
	}
}

// analyze runs the batch and reports an interruption without discarding the
// insights that completed.
func (c core) analyze(ctx context.Context, source string, docs []analyzer.Document) ([]model.DocumentInsight, error) {
	insights, err := c.batch.Process(ctx, docs)
	if err != nil {
		c.logger.Warn("analysis interrupted, aggregating partial results",
			zap.String("source", source),
			zap.Int("completed", len(insights)),
			zap.Int("documents", len(docs)),
			zap.Error(err))
	}
	return insights, err
}

// Comment is a reply attached to a post or thread.
type Comment struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Likes int64  `json:"likes,omitempty"`
}

// joinText glues a title onto a body so both are scored as sentences.
func joinText(title, body string) string {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	switch {
	case title == "":
		return body
	case body == "":
		return title
	case strings.ContainsAny(title[len(title)-1:], ".!?"):
		return title + " " + body
	default:
		return title + ". " + body
	}
}

// commentID scopes a comment ID under its parent.
func commentID(parent string, i int, c Comment) string {
	if c.ID != "" {
		return parent + "/" + c.ID
	}
	return parent + "/" + strconv.Itoa(i)
}
