package terminology

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/model"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(catalog.Tables{
		Vocabularies: map[catalog.Domain][]string{
			catalog.General: {"price", "good price", "battery", "battery life", "cat"},
			catalog.Tech:    {"screen", "battery life", "refresh rate", "fast charging cable"},
		},
	})
	require.NoError(t, err)
	return c
}

func TestExtractCountsAndContext(t *testing.T) {
	e := NewExtractor(testCatalog(t))

	text := "Good price for this phone. The battery is fine! Battery life could be better, battery life matters."
	got := e.Extract(text, catalog.General)

	want := []model.TerminologyItem{
		{Term: "battery", Frequency: 3, Context: "The battery is fine"},
		{Term: "battery life", Frequency: 2, Context: "Battery life could be better, battery life matters"},
		{Term: "good price", Frequency: 1, Context: "Good price for this phone"},
		{Term: "price", Frequency: 1, Context: "Good price for this phone"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractOverlappingNGramsRetained(t *testing.T) {
	e := NewExtractor(testCatalog(t))

	got := e.Extract("good price", catalog.General)
	terms := make([]string, len(got))
	for i, it := range got {
		terms[i] = it.Term
	}
	assert.Equal(t, []string{"good price", "price"}, terms)
}

func TestExtractWholeWordCounting(t *testing.T) {
	e := NewExtractor(testCatalog(t))

	assert.Empty(t, e.Extract("categories are great", catalog.General), "cat must not match inside categories")
	assert.Equal(t, 0, CountTerm("categories are great", "cat"))
	assert.Equal(t, 2, CountTerm("The cat, the CAT! concatenate", "cat"))
	assert.Equal(t, 1, CountTerm("Battery-life? no: battery life.", "battery life"))
	assert.Equal(t, 0, CountTerm("anything", ""))
}

func TestExtractDomainSelection(t *testing.T) {
	e := NewExtractor(testCatalog(t))
	text := "The screen has a high refresh rate and the battery life is great"

	tech := e.Extract(text, catalog.Tech)
	assert.Equal(t, []string{"screen", "refresh rate", "battery life"}, termsOf(tech))

	general := e.Extract(text, catalog.General)
	assert.Equal(t, []string{"battery", "battery life"}, termsOf(general))

	unknown := e.Extract(text, catalog.Domain("automotive"))
	assert.Equal(t, general, unknown, "unknown domain falls back to general")
}

func TestExtractThreeWordTerms(t *testing.T) {
	e := NewExtractor(testCatalog(t))
	got := e.Extract("It shipped with a fast charging cable.", catalog.Tech)
	require.Len(t, got, 1)
	assert.Equal(t, "fast charging cable", got[0].Term)
	assert.Equal(t, "It shipped with a fast charging cable", got[0].Context)
}

func TestExtractContextAcrossSentenceBreak(t *testing.T) {
	e := NewExtractor(testCatalog(t))
	got := e.Extract("Check the battery. Life is short", catalog.General)

	require.Len(t, got, 2)
	assert.Equal(t, "battery", got[0].Term)
	assert.Equal(t, "Check the battery", got[0].Context)
	assert.Equal(t, "battery life", got[1].Term)
	assert.Equal(t, "Check the battery. Life is short", got[1].Context, "falls back to the whole text")
}

func TestExtractEmpty(t *testing.T) {
	e := NewExtractor(testCatalog(t))
	got := e.Extract("", catalog.General)
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Empty(t, e.Extract("?!.", catalog.General))
}

func TestNGrams(t *testing.T) {
	got := NGrams([]string{"aaa", "bbb", "ccc", "ddd"})
	want := []string{
		"aaa", "aaa bbb", "aaa bbb ccc",
		"bbb", "bbb ccc", "bbb ccc ddd",
		"ccc", "ccc ddd",
		"ddd",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NGrams mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, NGrams(nil))
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "short text", excerpt("  short \n text ", 20))
	assert.Equal(t, "abcde…", excerpt("abcdefghij", 5))
}

func termsOf(items []model.TerminologyItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Term
	}
	return out
}
