package model

// CategoryCount pairs a category with its fragment count and a few examples.
type CategoryCount struct {
	Category string           `json:"category"`
	Count    int              `json:"count"`
	Examples []ScoredFragment `json:"examples"`
}

// SignalGroup is the aggregated view of one signal kind.
type SignalGroup struct {
	All           []ScoredFragment            `json:"all"`
	ByCategory    map[string][]ScoredFragment `json:"by_category"`
	TopCategories []CategoryCount             `json:"top_categories"`
}

// TerminologyGroup is the aggregated view of extracted terms.
type TerminologyGroup struct {
	All         []TerminologyItem         `json:"all"`
	ByFrequency map[int][]TerminologyItem `json:"by_frequency"`
	Top         []TerminologyItem         `json:"top"`
}

// Totals are plain counts over one aggregation pass.
type Totals struct {
	PainPoints int `json:"pain_points"`
	Desires    int `json:"desires"`
	Terms      int `json:"terms"`
	Documents  int `json:"documents"`
}

// Summary is the short headline view of an aggregation pass.
type Summary struct {
	TopPainPointCategories []string `json:"top_pain_point_categories"`
	TopDesireCategories    []string `json:"top_desire_categories"`
	TopTerms               []string `json:"top_terms"`
	Totals                 Totals   `json:"totals"`
}

// AggregatedInsights is the result of one aggregation pass.
type AggregatedInsights struct {
	ID          string           `json:"id"`
	PainPoints  SignalGroup      `json:"pain_points"`
	Desires     SignalGroup      `json:"desires"`
	Terminology TerminologyGroup `json:"terminology"`
	Summary     Summary          `json:"summary"`
	Skipped     []string         `json:"skipped,omitempty"`
}
