package insight

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/cognicore/insightful/pkg/insight/analyzer"
	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/enrich"
)

func TestEngineDefaults(t *testing.T) {
	e := New(Options{})
	assert.Equal(t, catalog.DefaultVersion, e.Catalog().Version())

	got := e.Analyze("empty", "", catalog.General)
	assert.Empty(t, got.PainPoints)
	assert.Empty(t, got.Desires)
	assert.Empty(t, got.Terminology)
}

func TestEngineAnalyzeAndAggregate(t *testing.T) {
	e := New(Options{Workers: 2, TopTerms: 1, Logger: zaptest.NewLogger(t)})

	insights, err := e.AnalyzeAll(context.Background(), []analyzer.Document{
		{ID: "1", Text: "Ik haat het dat de foto's altijd wazig zijn.", Domain: catalog.Tech},
		{ID: "2", Text: "Ik zou graag een telefoon willen die minstens een hele dag meegaat.", Domain: catalog.Tech},
	})
	require.NoError(t, err)
	require.Len(t, insights, 2)

	agg := e.Aggregate(insights)
	assert.Equal(t, []string{"photo_quality"}, agg.Summary.TopPainPointCategories)
	assert.Equal(t, []string{"battery_life"}, agg.Summary.TopDesireCategories)
	assert.Len(t, agg.Terminology.Top, 1)
	assert.Equal(t, 2, agg.Summary.Totals.Documents)
}

func TestEngineEnrichers(t *testing.T) {
	e := New(Options{MinMentions: 2})

	reviews, err := e.Reviews().Enrich(context.Background(), []enrich.Review{
		{Text: "fantastic battery life", Rating: 5},
		{Text: "battery life is terrible", Rating: 1},
	}, catalog.General)
	require.NoError(t, err)
	assert.NotEmpty(t, reviews.FeatureSentiment)

	forum, err := e.Forum().Enrich(context.Background(), "best phone battery", "", nil)
	require.NoError(t, err)
	assert.Equal(t, catalog.Tech, forum.Domain)

	posts, err := e.Engagement().Enrich(context.Background(), enrich.KindImagePost, []enrich.Post{{ID: "p", Likes: 1}}, catalog.Beauty)
	require.NoError(t, err)
	assert.Equal(t, int64(1), posts.TotalEngagement)
}
