package aggregate

import (
	"math"
	"sort"

	"github.com/dc-analytics/crimelens/internal/model"
)

// RankCategories groups incidents by category, ranks descending by count
// with alphabetical tie-breaking, and truncates to the configured top N.
// Percentages are of the filtered total, rounded to one decimal.
func (e *Engine) RankCategories(incidents []model.Incident) []model.CategoryCount {
	counts := make(map[string]int)
	for _, inc := range incidents {
		counts[inc.Category]++
	}

	out := make([]model.CategoryCount, 0, len(counts))
	for cat, n := range counts {
		out = append(out, model.CategoryCount{
			Category:   cat,
			Count:      n,
			Percentage: roundPct(n, len(incidents)),
		})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Category < out[j].Category
	})

	if limit := e.cfg.TopCategories; limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// roundPct is part/whole as a percentage rounded to one decimal place.
func roundPct(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return math.Round(float64(part)/float64(whole)*1000) / 10
}
