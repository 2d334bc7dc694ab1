package enrich

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/cognicore/insightful/pkg/insight/aggregate"
	"github.com/cognicore/insightful/pkg/insight/analyzer"
	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/ident"
	"github.com/cognicore/insightful/pkg/insight/internalerr"
	"github.com/cognicore/insightful/pkg/insight/model"
)

// PostKind distinguishes the engagement-ranked sources.
type PostKind string

const (
	KindVideo     PostKind = "video"
	KindImagePost PostKind = "image_post"
)

// ParsePostKind validates a post kind name.
func ParsePostKind(s string) (PostKind, error) {
	switch k := PostKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindVideo, KindImagePost:
		return k, nil
	}
	return "", fmt.Errorf("%w: unknown post kind %q", internalerr.ErrInvalidInput, s)
}

// Post is a short video or image post with its caption and comments.
type Post struct {
	ID           string    `json:"id"`
	Caption      string    `json:"caption"`
	Author       string    `json:"author,omitempty"`
	Likes        int64     `json:"likes"`
	CommentCount int64     `json:"comment_count"`
	Shares       int64     `json:"shares,omitempty"`
	Comments     []Comment `json:"comments,omitempty"`
}

// Engagement is likes + comments + shares. Shares count as zero when the
// platform does not report them; a missing comment count falls back to the
// number of attached comments.
func (p Post) Engagement() int64 {
	comments := p.CommentCount
	if comments == 0 {
		comments = int64(len(p.Comments))
	}
	return p.Likes + comments + p.Shares
}

// RankedPost is one entry of the most-engaged list.
type RankedPost struct {
	ID         string `json:"id"`
	Author     string `json:"author,omitempty"`
	Engagement int64  `json:"engagement"`
	Likes      int64  `json:"likes"`
	Comments   int64  `json:"comments"`
	Shares     int64  `json:"shares"`
	Excerpt    string `json:"excerpt"`
}

// EngagementInsights is the enriched view of a set of posts.
type EngagementInsights struct {
	Kind              PostKind                 `json:"kind"`
	Domain            catalog.Domain           `json:"domain"`
	Posts             int                      `json:"posts"`
	Comments          int                      `json:"comments"`
	TotalEngagement   int64                    `json:"total_engagement"`
	AverageEngagement float64                  `json:"average_engagement"`
	MostEngaged       []RankedPost             `json:"most_engaged"`
	Insights          model.AggregatedInsights `json:"insights"`
}

// EngagementEnricher analyzes short-video and image posts.
type EngagementEnricher struct {
	core
}

// NewEngagementEnricher creates an engagement enricher.
func NewEngagementEnricher(a *analyzer.Analyzer, agg *aggregate.Aggregator, opts Options) *EngagementEnricher {
	return &EngagementEnricher{core: newCore(a, agg, opts)}
}

const excerptRunes = 140

// Enrich analyzes captions and comments as separate documents and ranks posts
// by engagement. On cancellation the partial result is returned with ctx.Err().
func (e *EngagementEnricher) Enrich(ctx context.Context, kind PostKind, posts []Post, domain catalog.Domain) (EngagementInsights, error) {
	out := EngagementInsights{
		Kind:   kind,
		Domain: catalog.ParseDomain(string(domain)),
		Posts:  len(posts),
	}

	ranked := make([]RankedPost, 0, len(posts))
	var docs []analyzer.Document
	for _, p := range posts {
		if p.ID == "" {
			p.ID = ident.New()
		}
		docs = append(docs, analyzer.Document{ID: p.ID, Text: p.Caption, Domain: out.Domain})
		for i, c := range p.Comments {
			docs = append(docs, analyzer.Document{ID: commentID(p.ID, i, c), Text: c.Text, Domain: out.Domain})
		}
		out.Comments += len(p.Comments)

		eng := p.Engagement()
		out.TotalEngagement += eng
		ranked = append(ranked, RankedPost{
			ID:         p.ID,
			Author:     p.Author,
			Engagement: eng,
			Likes:      p.Likes,
			Comments:   eng - p.Likes - p.Shares,
			Shares:     p.Shares,
			Excerpt:    shorten(p.Caption, excerptRunes),
		})
	}

	if len(posts) > 0 {
		out.AverageEngagement = float64(out.TotalEngagement) / float64(len(posts))
	}
	out.MostEngaged = RankByEngagement(ranked, e.opts.TopItems)

	insights, err := e.analyze(ctx, string(kind), docs)
	out.Insights = e.aggregator.Aggregate(insights)
	return out, err
}

// RankByEngagement sorts posts by engagement (descending, ties keep input
// order) and keeps the first n. n <= 0 keeps all.
func RankByEngagement(posts []RankedPost, n int) []RankedPost {
	ranked := slices.Clone(posts)
	slices.SortStableFunc(ranked, func(a, b RankedPost) int {
		return cmp.Compare(b.Engagement, a.Engagement)
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	if ranked == nil {
		ranked = []RankedPost{}
	}
	return ranked
}

func shorten(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return strings.TrimSpace(string([]rune(s)[:limit])) + "…"
}
