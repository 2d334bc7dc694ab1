package enrich

import (
	"cmp"
	"context"
	"math"
	"slices"

	"go.uber.org/zap"

	"github.com/cognicore/insightful/pkg/insight/aggregate"
	"github.com/cognicore/insightful/pkg/insight/analyzer"
	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/ident"
	"github.com/cognicore/insightful/pkg/insight/model"
)

// Review is a single rated product review. Rating is on a 1-5 scale; zero or
// less means unrated.
type Review struct {
	ID     string  `json:"id"`
	Title  string  `json:"title,omitempty"`
	Text   string  `json:"text"`
	Rating float64 `json:"rating"`
	Author string  `json:"author,omitempty"`
}

// Bucket maps a rating onto a sentiment: 4 and up is positive, 2 and below
// negative, anything between neutral. Unrated reviews are neutral.
func Bucket(rating float64) model.Sentiment {
	switch {
	case rating <= 0:
		return model.SentimentNeutral
	case rating >= 4:
		return model.SentimentPositive
	case rating <= 2:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// FeatureSentiment is the polarity of one recurring term across reviews.
type FeatureSentiment struct {
	Term             string  `json:"term"`
	PositiveMentions int     `json:"positive_mentions"`
	NeutralMentions  int     `json:"neutral_mentions"`
	NegativeMentions int     `json:"negative_mentions"`
	Score            float64 `json:"score"`
}

// Mentions is the number of reviews mentioning the term.
func (f FeatureSentiment) Mentions() int {
	return f.PositiveMentions + f.NeutralMentions + f.NegativeMentions
}

// FeatureScore is (pos - neg) / (pos + neg), with the denominator floored at 1.
func FeatureScore(pos, neg int) float64 {
	return float64(pos-neg) / float64(max(pos+neg, 1))
}

// RatingSummary describes the rating distribution of a review set. Unrated
// reviews are counted in Count and Unrated only.
type RatingSummary struct {
	Count        int         `json:"count"`
	Unrated      int         `json:"unrated"`
	Average      float64     `json:"average"`
	Distribution map[int]int `json:"distribution"`
	Positive     int         `json:"positive"`
	Neutral      int         `json:"neutral"`
	Negative     int         `json:"negative"`
}

// ReviewInsights is the enriched view of a review set.
type ReviewInsights struct {
	Domain           catalog.Domain                               `json:"domain"`
	Overall          model.AggregatedInsights                     `json:"overall"`
	BySentiment      map[model.Sentiment]model.AggregatedInsights `json:"by_sentiment"`
	Ratings          RatingSummary                                `json:"ratings"`
	FeatureSentiment []FeatureSentiment                           `json:"feature_sentiment"`
}

// ProductReviews groups the reviews of one product.
type ProductReviews struct {
	ID      string   `json:"id"`
	Title   string   `json:"title,omitempty"`
	Reviews []Review `json:"reviews"`
}

// ProductInsights is the enriched view of one product's reviews.
type ProductInsights struct {
	ID       string         `json:"id"`
	Title    string         `json:"title,omitempty"`
	Insights ReviewInsights `json:"insights"`
}

// ProductComparison holds per-product views plus one over all reviews.
type ProductComparison struct {
	Products []ProductInsights `json:"products"`
	Combined ReviewInsights    `json:"combined"`
}

// ReviewEnricher analyzes rated reviews.
type ReviewEnricher struct {
	core
	ids *ident.Generator
}

// NewReviewEnricher creates a review enricher.
func NewReviewEnricher(a *analyzer.Analyzer, agg *aggregate.Aggregator, opts Options) *ReviewEnricher {
	return &ReviewEnricher{
		core: newCore(a, agg, opts),
		ids:  ident.NewGenerator(),
	}
}

// Enrich analyzes reviews, buckets them by rating and scores recurring terms.
// On cancellation the partial result is returned with ctx.Err().
func (e *ReviewEnricher) Enrich(ctx context.Context, reviews []Review, domain catalog.Domain) (ReviewInsights, error) {
	d := catalog.ParseDomain(string(domain))
	reviews = e.withIDs(reviews)
	insights, err := e.analyzeReviews(ctx, reviews, d)
	return e.summarize(reviews, insights, d), err
}

// EnrichProducts enriches each product's reviews separately and all of them
// together. Reviews are analyzed once.
func (e *ReviewEnricher) EnrichProducts(ctx context.Context, products []ProductReviews, domain catalog.Domain) (ProductComparison, error) {
	d := catalog.ParseDomain(string(domain))

	var all []Review
	var from []int
	for i, p := range products {
		for _, r := range p.Reviews {
			all = append(all, r)
			from = append(from, i)
		}
	}
	all = e.withIDs(all)

	scoped := make([][]Review, len(products))
	owner := make(map[string]int, len(all))
	for j, r := range all {
		scoped[from[j]] = append(scoped[from[j]], r)
		owner[r.ID] = from[j]
	}

	insights, err := e.analyzeReviews(ctx, all, d)

	perProduct := make([][]model.DocumentInsight, len(products))
	for _, in := range insights {
		i := owner[in.SourceID]
		perProduct[i] = append(perProduct[i], in)
	}

	out := ProductComparison{
		Products: make([]ProductInsights, len(products)),
		Combined: e.summarize(all, insights, d),
	}
	for i, p := range products {
		out.Products[i] = ProductInsights{
			ID:       p.ID,
			Title:    p.Title,
			Insights: e.summarize(scoped[i], perProduct[i], d),
		}
	}
	return out, err
}

// withIDs returns a copy of reviews where every review has an ID unique
// within the set.
func (e *ReviewEnricher) withIDs(reviews []Review) []Review {
	out := slices.Clone(reviews)
	seen := make(map[string]bool, len(out))
	for i := range out {
		if out[i].ID == "" || seen[out[i].ID] {
			out[i].ID = e.ids.New()
		}
		seen[out[i].ID] = true
	}
	return out
}

func (e *ReviewEnricher) analyzeReviews(ctx context.Context, reviews []Review, d catalog.Domain) ([]model.DocumentInsight, error) {
	docs := make([]analyzer.Document, len(reviews))
	for i, r := range reviews {
		docs[i] = analyzer.Document{ID: r.ID, Text: joinText(r.Title, r.Text), Domain: d}
	}
	insights, err := e.analyze(ctx, "reviews", docs)

	ratings := make(map[string]float64, len(reviews))
	for _, r := range reviews {
		ratings[r.ID] = r.Rating
	}
	for i := range insights {
		insights[i].RawSentiment = Bucket(ratings[insights[i].SourceID])
	}
	return insights, err
}

// summarize builds the review view from analyzed insights. Ratings describe
// every review; the aggregations cover the analyzed ones.
func (e *ReviewEnricher) summarize(reviews []Review, insights []model.DocumentInsight, d catalog.Domain) ReviewInsights {
	buckets := map[model.Sentiment][]model.DocumentInsight{
		model.SentimentPositive: {},
		model.SentimentNeutral:  {},
		model.SentimentNegative: {},
	}
	for _, in := range insights {
		buckets[in.RawSentiment] = append(buckets[in.RawSentiment], in)
	}

	out := ReviewInsights{
		Domain:           d,
		Overall:          e.aggregator.Aggregate(insights),
		BySentiment:      make(map[model.Sentiment]model.AggregatedInsights, len(buckets)),
		Ratings:          summarizeRatings(reviews),
		FeatureSentiment: featureSentiment(insights, e.opts.MinMentions),
	}
	for s, group := range buckets {
		out.BySentiment[s] = e.aggregator.Aggregate(group)
	}

	e.logger.Debug("reviews enriched",
		zap.String("domain", string(d)),
		zap.Int("reviews", len(reviews)),
		zap.Int("analyzed", len(insights)),
		zap.Int("features", len(out.FeatureSentiment)))
	return out
}

func summarizeRatings(reviews []Review) RatingSummary {
	s := RatingSummary{Count: len(reviews), Distribution: make(map[int]int)}
	var sum float64
	for _, r := range reviews {
		if r.Rating <= 0 {
			s.Unrated++
			continue
		}
		sum += r.Rating
		s.Distribution[int(math.Round(r.Rating))]++
		switch Bucket(r.Rating) {
		case model.SentimentPositive:
			s.Positive++
		case model.SentimentNegative:
			s.Negative++
		default:
			s.Neutral++
		}
	}
	if rated := s.Count - s.Unrated; rated > 0 {
		s.Average = sum / float64(rated)
	}
	return s
}

// featureSentiment counts, per term, how many reviews of each sentiment
// mention it. Terms mentioned by fewer than minMentions reviews are dropped.
// Result is ordered by mentions, descending, ties in first-seen order.
func featureSentiment(insights []model.DocumentInsight, minMentions int) []FeatureSentiment {
	index := make(map[string]int)
	var features []FeatureSentiment

	for _, in := range insights {
		seen := make(map[string]bool, len(in.Terminology))
		for _, t := range in.Terminology {
			if seen[t.Term] {
				continue
			}
			seen[t.Term] = true

			i, ok := index[t.Term]
			if !ok {
				i = len(features)
				index[t.Term] = i
				features = append(features, FeatureSentiment{Term: t.Term})
			}
			switch in.RawSentiment {
			case model.SentimentPositive:
				features[i].PositiveMentions++
			case model.SentimentNegative:
				features[i].NegativeMentions++
			default:
				features[i].NeutralMentions++
			}
		}
	}

	out := make([]FeatureSentiment, 0, len(features))
	for _, f := range features {
		if f.Mentions() < minMentions {
			continue
		}
		f.Score = FeatureScore(f.PositiveMentions, f.NegativeMentions)
		out = append(out, f)
	}
	slices.SortStableFunc(out, func(a, b FeatureSentiment) int {
		return cmp.Compare(b.Mentions(), a.Mentions())
	})
	return out
}
