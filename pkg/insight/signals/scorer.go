// Package signals scores sentences against weighted indicator tables.
package signals

import (
	"strings"

	"github.com/cognicore/insightful/pkg/insight/catalog"
	"github.com/cognicore/insightful/pkg/insight/model"
)

// epsilon absorbs floating-point noise when comparing against the threshold.
const epsilon = 1e-9

// Result is the outcome of scoring one sentence.
type Result struct {
	// Score is the accumulated weight, capped.
	Score float64
	// Raw is the accumulated weight before capping.
	Raw        float64
	Indicators []model.MatchedIndicator
}

// Qualifies reports whether the sentence counts as a finding: the raw weight
// strictly exceeds threshold and at least one indicator matched.
func (r Result) Qualifies(threshold float64) bool {
	return len(r.Indicators) > 0 && r.Raw-threshold > epsilon
}

// Scorer carries the qualification threshold and the score cap.
type Scorer struct {
	Threshold float64
	Cap       float64
}

// NewScorer returns a scorer with the catalog's threshold and cap.
func NewScorer(c *catalog.Catalog) Scorer {
	return Scorer{Threshold: c.Threshold(), Cap: c.Cap()}
}

// DefaultScorer uses the built-in threshold (0.7) and cap (1.0).
func DefaultScorer() Scorer {
	return Scorer{Threshold: catalog.DefaultThreshold, Cap: catalog.DefaultCap}
}

// Score adds the weight of every indicator matching sentence. Multiple weak
// indicators compound, but the reported score never exceeds the cap, and a
// cap above 1 is treated as 1. Typographic apostrophes match as '.
func (s Scorer) Score(sentence string, table []catalog.Indicator) Result {
	var res Result
	sentence = strings.ReplaceAll(sentence, "’", "'")
	for _, ind := range table {
		if !ind.Match(sentence) {
			continue
		}
		res.Raw += ind.Weight
		res.Indicators = append(res.Indicators, model.MatchedIndicator{
			Label:  ind.Label,
			Weight: ind.Weight,
		})
	}

	limit := min(s.Cap, 1)
	if limit <= 0 {
		limit = catalog.DefaultCap
	}
	res.Score = min(res.Raw, limit)
	return res
}

// Qualifies applies the scorer's threshold to r.
func (s Scorer) Qualifies(r Result) bool {
	return r.Qualifies(s.Threshold)
}

// Score scores sentence with the default scorer.
func Score(sentence string, table []catalog.Indicator) Result {
	return DefaultScorer().Score(sentence, table)
}
