package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/enrich"
	"github.com/cognicore/insightful/pkg/insight/model"
)

func run(t *testing.T, args ...string) ([]byte, error) {
	t.Helper()
	return runWithInput(t, "", args...)
}

func runWithInput(t *testing.T, stdin string, args ...string) ([]byte, error) {
	t.Helper()
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.Bytes(), err
}

func TestReviewsCommand(t *testing.T) {
	out, err := run(t, "reviews", "--input", "../../testdata/reviews.jsonl")
	require.NoError(t, err)

	var got enrich.ReviewInsights
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, 3, got.Ratings.Count)
	assert.Equal(t, catalog.General, got.Domain)
	assert.Len(t, got.BySentiment, 3)

	found := false
	for _, f := range got.FeatureSentiment {
		if f.Term == "battery life" {
			found = true
			assert.Equal(t, 1, f.PositiveMentions)
			assert.Equal(t, 1, f.NegativeMentions)
			assert.Equal(t, 0.0, f.Score)
		}
	}
	assert.True(t, found, "battery life should be a recurring feature")
}

func TestReviewsCommandReadsStdin(t *testing.T) {
	stdin := `{"id":"r1","text":"The battery drains fast and I hate it.","rating":1}
{"id":"r2","text":"Great screen.","rating":5}
`
	out, err := runWithInput(t, stdin, "reviews", "--input", "-")
	require.NoError(t, err)

	var got enrich.ReviewInsights
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, 2, got.Ratings.Count)
	assert.Equal(t, 1, got.Ratings.Negative)
}

func TestForumCommandReadsStdin(t *testing.T) {
	stdin := `{"id":"t1","title":"Battery","body":"My phone battery is broken.","comments":[{"text":"same here"}]}` + "\n"
	out, err := runWithInput(t, stdin, "forum", "--input", "-")
	require.NoError(t, err)

	var got enrich.ForumInsights
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, 1, got.Threads)
	assert.Equal(t, 1, got.Comments)
}

func TestEngagementCommand(t *testing.T) {
	out, err := run(t, "engagement", "--kind", "video", "--input", "../../testdata/posts.jsonl", "--domain", "tech", "--top", "1")
	require.NoError(t, err)

	var got enrich.EngagementInsights
	require.NoError(t, json.Unmarshal(out, &got))
	require.Len(t, got.MostEngaged, 1)
	assert.Equal(t, "v2", got.MostEngaged[0].ID)
	assert.Equal(t, catalog.Tech, got.Domain)
	assert.Equal(t, 4, got.Insights.Summary.Totals.Documents)
}

func TestEngagementCommandRejectsUnknownKind(t *testing.T) {
	_, err := run(t, "engagement", "--kind", "podcast", "--input", "../../testdata/posts.jsonl")
	assert.Error(t, err)
}

func TestForumCommandInfersDomain(t *testing.T) {
	out, err := run(t, "forum", "--query", "android phone battery", "--input", "../../testdata/threads.jsonl",
		"--catalog", "../../testdata/catalog.yaml")
	require.NoError(t, err)

	var got enrich.ForumInsights
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, catalog.Tech, got.Domain)
	assert.True(t, got.DomainInferred)
	assert.Equal(t, 2, got.Threads)
	assert.NotEmpty(t, got.Insights.PainPoints.All)
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := run(t, "analyze", "--domain", "tech", "--id", "p1", "--text", "Ik haat het dat de foto's altijd wazig zijn.")
	require.NoError(t, err)

	var got model.DocumentInsight
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "p1", got.SourceID)
	require.Len(t, got.PainPoints, 1)
	assert.Equal(t, "photo_quality", got.PainPoints[0].Category)
}

func TestAnalyzeCommandRequiresText(t *testing.T) {
	_, err := run(t, "analyze")
	assert.Error(t, err)
}

func TestConfigFileAndEnv(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "insights.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("domain: tech\npretty: true\n"), 0o644))

	out, err := run(t, "--config", cfg, "analyze", "--text", "The screen is great")
	require.NoError(t, err)
	assert.Contains(t, string(out), "\n  \"source_id\"", "pretty output from config file")

	var got model.DocumentInsight
	require.NoError(t, json.Unmarshal(out, &got))
	require.Len(t, got.Terminology, 1)
	assert.Equal(t, "screen", got.Terminology[0].Term)

	t.Setenv("INSIGHTS_DOMAIN", "beauty")
	out, err = run(t, "analyze", "--text", "The screen is great")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Empty(t, got.Terminology, "beauty vocabulary has no screen")
}

func TestMissingCatalogFails(t *testing.T) {
	_, err := run(t, "analyze", "--catalog", "/nonexistent/catalog.yaml", "--text", "hello")
	assert.Error(t, err)
}
