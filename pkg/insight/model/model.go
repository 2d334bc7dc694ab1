// Package model holds the plain result records produced by the insight engine.
// Every type here is data only: maps, slices and primitives with json tags, so
// callers can persist or render them directly.
package model

import (
	"fmt"
	"math"
	"strings"

	"github.com/cognicore/insightful/pkg/insight/internalerr"
)

// Kind identifies a signal table.
type Kind string

const (
	KindPainPoint Kind = "pain_point"
	KindDesire    Kind = "desire"
)

// Sentiment is the coarse polarity attached to a document.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// CategoryOther is assigned when no category rule matches.
const CategoryOther = "other"

// MatchedIndicator is one indicator that fired for a fragment.
type MatchedIndicator struct {
	Label  string  `json:"indicator_label"`
	Weight float64 `json:"weight"`
}

// ScoredFragment is a sentence that qualified as a pain point or desire.
type ScoredFragment struct {
	Text       string             `json:"text"`
	Score      float64            `json:"score"`
	Indicators []MatchedIndicator `json:"indicators"`
	Category   string             `json:"category"`
}

// TerminologyItem is a domain term found in a document.
type TerminologyItem struct {
	Term      string `json:"term"`
	Frequency int    `json:"frequency"`
	Context   string `json:"context"`
}

// DocumentInsight is the analysis of one post, comment or review.
type DocumentInsight struct {
	SourceID     string            `json:"source_id"`
	PainPoints   []ScoredFragment  `json:"pain_points"`
	Desires      []ScoredFragment  `json:"desires"`
	Terminology  []TerminologyItem `json:"terminology"`
	RawSentiment Sentiment         `json:"raw_sentiment,omitempty"`
}

// Empty returns an insight with all collections present but empty.
func Empty(sourceID string) DocumentInsight {
	return DocumentInsight{
		SourceID:    sourceID,
		PainPoints:  []ScoredFragment{},
		Desires:     []ScoredFragment{},
		Terminology: []TerminologyItem{},
	}
}

// Validate reports whether the insight can be safely aggregated.
func (d DocumentInsight) Validate() error {
	for i, f := range d.PainPoints {
		if err := f.validate(); err != nil {
			return fmt.Errorf("%w: pain point %d: %v", internalerr.ErrMalformedInsight, i, err)
		}
	}
	for i, f := range d.Desires {
		if err := f.validate(); err != nil {
			return fmt.Errorf("%w: desire %d: %v", internalerr.ErrMalformedInsight, i, err)
		}
	}
	for i, t := range d.Terminology {
		if strings.TrimSpace(t.Term) == "" {
			return fmt.Errorf("%w: term %d is empty", internalerr.ErrMalformedInsight, i)
		}
		if t.Frequency < 1 {
			return fmt.Errorf("%w: term %q has frequency %d", internalerr.ErrMalformedInsight, t.Term, t.Frequency)
		}
	}
	switch d.RawSentiment {
	case "", SentimentPositive, SentimentNeutral, SentimentNegative:
	default:
		return fmt.Errorf("%w: unknown sentiment %q", internalerr.ErrMalformedInsight, d.RawSentiment)
	}
	return nil
}

func (f ScoredFragment) validate() error {
	if math.IsNaN(f.Score) || f.Score < 0 || f.Score > 1 {
		return fmt.Errorf("score %v out of range", f.Score)
	}
	if f.Category == "" {
		return fmt.Errorf("missing category")
	}
	if len(f.Indicators) == 0 {
		return fmt.Errorf("no indicators")
	}
	return nil
}
