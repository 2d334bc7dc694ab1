package ingest

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// DefaultMinWordLen is the length a word must exceed to become a token.
const DefaultMinWordLen = 2

// Tokenizer handles text normalization and word tokenization
type Tokenizer struct {
	minLen int
}

// NewTokenizer creates a tokenizer that keeps words longer than minLen runes.
// Values below 0 are clamped to 0.
func NewTokenizer(minLen int) *Tokenizer {
	if minLen < 0 {
		minLen = 0
	}
	return &Tokenizer{minLen: minLen}
}

var defaultTokenizer = NewTokenizer(DefaultMinWordLen)

// Words tokenizes text with the default tokenizer.
func Words(text string) []string {
	return defaultTokenizer.Tokenize(text)
}

// Normalize lowercases text and folds compatibility forms (NFKC).
func Normalize(text string) string {
	// Casers carry state, so each call gets its own.
	return cases.Lower(language.Und).String(norm.NFKC.String(text))
}

// Tokenize splits text into lowercase words, stripping punctuation.
// Letters, digits and inner hyphens are kept; everything else separates words.
func (t *Tokenizer) Tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var tokens []string
	var current strings.Builder

	for _, r := range Normalize(text) {
		if unicode.IsLetter(r) || unicode.IsNumber(r) || r == '-' {
			current.WriteRune(r)
			continue
		}
		if current.Len() > 0 {
			if word := t.processToken(current.String()); word != "" {
				tokens = append(tokens, word)
			}
			current.Reset()
		}
	}

	// Don't forget the last token
	if current.Len() > 0 {
		if word := t.processToken(current.String()); word != "" {
			tokens = append(tokens, word)
		}
	}

	return tokens
}

// processToken cleans a raw token and applies the length filter.
func (t *Tokenizer) processToken(token string) string {
	word := cleanToken(token)
	if utf8.RuneCountInString(word) <= t.minLen {
		return ""
	}
	return word
}

// cleanToken strips leading/trailing hyphens and normalizes consecutive hyphens
func cleanToken(token string) string {
	token = strings.Trim(token, "-")

	for strings.Contains(token, "--") {
		token = strings.ReplaceAll(token, "--", "-")
	}

	return token
}
