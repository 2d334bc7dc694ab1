package ingest

import "strings"

// SplitSentences splits text on sentence terminators (. ! ?), trims each
// fragment and drops empty ones. Source order is preserved.
func SplitSentences(text string) []string {
	parts := strings.FieldsFunc(text, isTerminator)

	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		sentences = append(sentences, p)
	}
	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
