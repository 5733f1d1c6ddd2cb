package aggregate

import (
	"sort"
	"strings"

	"github.com/dc-analytics/crimelens/internal/model"
)

// RollupAreas groups incidents by neighborhood cluster and keeps the top N
// by total. activeCategories is the filter's category set; when empty, the
// full category universe of the filtered collection is used for the
// per-category sub-counts.
func (e *Engine) RollupAreas(incidents []model.Incident, activeCategories []string) model.AreaView {
	active := make(map[string]bool, len(activeCategories))
	for _, c := range activeCategories {
		active[c] = true
	}
	if len(active) == 0 {
		for _, inc := range incidents {
			active[inc.Category] = true
		}
	}

	totals := make(map[string]int)
	byCategory := make(map[string]map[string]int)
	for _, inc := range incidents {
		if !isClusterLabel(inc.Cluster) {
			continue
		}
		totals[inc.Cluster]++
		if active[inc.Category] {
			sub, ok := byCategory[inc.Cluster]
			if !ok {
				sub = make(map[string]int)
				byCategory[inc.Cluster] = sub
			}
			sub[inc.Category]++
		}
	}

	areas := make([]model.AreaRollup, 0, len(totals))
	for area, total := range totals {
		sub := byCategory[area]
		if sub == nil {
			sub = map[string]int{}
		}
		areas = append(areas, model.AreaRollup{Area: area, Total: total, ByCategory: sub})
	}

	sort.Slice(areas, func(i, j int) bool {
		if areas[i].Total != areas[j].Total {
			return areas[i].Total > areas[j].Total
		}
		return areas[i].Area < areas[j].Area
	})

	if limit := e.cfg.TopAreas; limit > 0 && len(areas) > limit {
		areas = areas[:limit]
	}
	for i := range areas {
		areas[i].Rank = i + 1
	}

	view := model.AreaView{Areas: areas}
	if len(areas) > 0 {
		view.DominantCategory = dominantCategory(areas[0])

		var topTotal int
		for _, a := range areas {
			topTotal += a.Total
		}
		view.TopShare = roundPct(topTotal, len(incidents))
	}
	view.PropertyShare = roundPct(e.countProperty(incidents), len(incidents))

	return view
}

// isClusterLabel reports whether a neighborhood label participates in the
// rollup. Empty labels, the literal "Unknown", and anything not containing
// the token "cluster" are excluded.
func isClusterLabel(label string) bool {
	if label == "" || label == "Unknown" {
		return false
	}
	return strings.Contains(strings.ToLower(label), "cluster")
}

// dominantCategory is the largest sub-count of an area, ties broken
// alphabetically.
func dominantCategory(area model.AreaRollup) string {
	var best string
	var bestN int
	for cat, n := range area.ByCategory {
		if n > bestN || (n == bestN && (best == "" || cat < best)) {
			best, bestN = cat, n
		}
	}
	return best
}

func (e *Engine) countProperty(incidents []model.Incident) int {
	property := make(map[string]bool, len(e.cfg.PropertyCategories))
	for _, c := range e.cfg.PropertyCategories {
		property[c] = true
	}

	var n int
	for _, inc := range incidents {
		if property[inc.Category] {
			n++
		}
	}
	return n
}
