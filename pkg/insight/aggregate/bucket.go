package aggregate

import (
	"cmp"
	"slices"

	"github.com/cognicore/insightful/pkg/insight/model"
)

// ExamplesPerCategory is how many representative fragments a ranked category carries.
const ExamplesPerCategory = 3

// CategoryBucket groups fragments by category. Categories keep first-seen
// order and fragments keep encounter order.
type CategoryBucket struct {
	Order []string
	Items map[string][]model.ScoredFragment
}

// NewCategoryBucket creates an empty bucket.
func NewCategoryBucket() *CategoryBucket {
	return &CategoryBucket{Items: make(map[string][]model.ScoredFragment)}
}

// Add appends f to its category.
func (b *CategoryBucket) Add(f model.ScoredFragment) {
	if _, ok := b.Items[f.Category]; !ok {
		b.Order = append(b.Order, f.Category)
	}
	b.Items[f.Category] = append(b.Items[f.Category], f)
}

// Count returns the number of fragments in category.
func (b *CategoryBucket) Count(category string) int {
	return len(b.Items[category])
}

// Len returns the number of categories.
func (b *CategoryBucket) Len() int {
	return len(b.Order)
}

// TopCategories ranks categories by fragment count (descending); ties keep
// first-seen order. Each entry carries up to ExamplesPerCategory fragments.
// n <= 0 returns every category. The bucket is not modified.
func (b *CategoryBucket) TopCategories(n int) []model.CategoryCount {
	ranked := slices.Clone(b.Order)
	slices.SortStableFunc(ranked, func(x, y string) int {
		return cmp.Compare(b.Count(y), b.Count(x))
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}

	out := make([]model.CategoryCount, 0, len(ranked))
	for _, cat := range ranked {
		items := b.Items[cat]
		examples := slices.Clone(items[:min(len(items), ExamplesPerCategory)])
		out = append(out, model.CategoryCount{
			Category: cat,
			Count:    len(items),
			Examples: examples,
		})
	}
	return out
}

// TopCategories is the function form of CategoryBucket.TopCategories.
func TopCategories(b *CategoryBucket, n int) []model.CategoryCount {
	return b.TopCategories(n)
}

// byCategory copies the bucket into a plain map.
func (b *CategoryBucket) byCategory() map[string][]model.ScoredFragment {
	out := make(map[string][]model.ScoredFragment, len(b.Items))
	for cat, items := range b.Items {
		out[cat] = slices.Clone(items)
	}
	return out
}

func categoryNames(counts []model.CategoryCount) []string {
	names := make([]string, len(counts))
	for i, c := range counts {
		names[i] = c.Category
	}
	return names
}
