// Package terminology extracts domain terms (1-3 word n-grams) from text.
package terminology

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/ingest"
	"github.com/cognicore/insightful/pkg/insight/model"
)

// MaxNGram is the longest n-gram considered.
const MaxNGram = 3

// maxContextRunes bounds the fallback context excerpt.
const maxContextRunes = 200

// Extractor finds vocabulary terms in text.
type Extractor struct {
	catalog   *catalog.Catalog
	tokenizer *ingest.Tokenizer
}

// NewExtractor creates an extractor reading vocabularies from c.
func NewExtractor(c *catalog.Catalog) *Extractor {
	return &Extractor{
		catalog:   c,
		tokenizer: ingest.NewTokenizer(ingest.DefaultMinWordLen),
	}
}

// Extract returns one item per distinct vocabulary n-gram found in text,
// sorted by frequency (descending); equal frequencies keep first-seen order.
// Overlapping n-grams ("battery" and "battery life") are separate terms.
func (e *Extractor) Extract(text string, domain catalog.Domain) []model.TerminologyItem {
	tokens := e.tokenizer.Tokenize(text)
	if len(tokens) == 0 {
		return []model.TerminologyItem{}
	}

	vocab := e.catalog.Vocabulary(domain)
	order, counts := countNGrams(tokens, vocab.Contains)

	sentences := newSentenceIndex(text, e.tokenizer)
	items := make([]model.TerminologyItem, 0, len(order))
	for _, term := range order {
		items = append(items, model.TerminologyItem{
			Term:      term,
			Frequency: counts[term],
			Context:   sentences.contextFor(term),
		})
	}

	slices.SortStableFunc(items, func(a, b model.TerminologyItem) int {
		return cmp.Compare(b.Frequency, a.Frequency)
	})
	return items
}

// countNGrams counts the n-grams of tokens that keep accepts. order holds
// the accepted terms in first-seen order.
func countNGrams(tokens []string, keep func(string) bool) (order []string, counts map[string]int) {
	counts = make(map[string]int)
	for _, gram := range NGrams(tokens) {
		if !keep(gram) {
			continue
		}
		if counts[gram] == 0 {
			order = append(order, gram)
		}
		counts[gram]++
	}
	return order, counts
}

// NGrams lists every contiguous 1..MaxNGram n-gram of tokens, position by position.
func NGrams(tokens []string) []string {
	var grams []string
	for i := range tokens {
		for n := 1; n <= MaxNGram && i+n <= len(tokens); n++ {
			grams = append(grams, strings.Join(tokens[i:i+n], " "))
		}
	}
	return grams
}

// CountTerm counts whole-word occurrences of term in text after both are
// normalized. "cat" does not match inside "categories".
func CountTerm(text, term string) int {
	return countSequence(ingest.Words(text), ingest.Words(term))
}

func countSequence(tokens, seq []string) int {
	if len(seq) == 0 || len(seq) > len(tokens) {
		return 0
	}
	count := 0
	for i := 0; i+len(seq) <= len(tokens); i++ {
		if slices.Equal(tokens[i:i+len(seq)], seq) {
			count++
		}
	}
	return count
}

// sentenceIndex lazily tokenizes the original sentences of a text.
type sentenceIndex struct {
	text      string
	sentences []string
	tokens    [][]string
	tokenizer *ingest.Tokenizer
}

func newSentenceIndex(text string, tok *ingest.Tokenizer) *sentenceIndex {
	s := ingest.SplitSentences(text)
	return &sentenceIndex{
		text:      text,
		sentences: s,
		tokens:    make([][]string, len(s)),
		tokenizer: tok,
	}
}

// contextFor returns the first original sentence containing term, falling
// back to an excerpt of the whole text when the term spans a sentence break.
func (x *sentenceIndex) contextFor(term string) string {
	seq := strings.Fields(term)
	for i, sentence := range x.sentences {
		if x.tokens[i] == nil {
			x.tokens[i] = x.tokenizer.Tokenize(sentence)
		}
		if countSequence(x.tokens[i], seq) > 0 {
			return sentence
		}
	}
	return excerpt(x.text, maxContextRunes)
}

func excerpt(text string, limit int) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	runes := []rune(text)
	return strings.TrimSpace(string(runes[:limit])) + "…"
}
