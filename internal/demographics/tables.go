package demographics

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
)

// regionRow is the target-region row of one reference table, with its
// case-insensitive column index.
type regionRow struct {
	cols   map[string]int
	record []string
	path   string
}

// num returns a numeric column value. The column header must exist; an
// unparseable value degrades to 0 like every other numeric coercion in the
// pipeline.
func (r regionRow) num(name string) (float64, error) {
	idx, ok := r.cols[strings.ToLower(name)]
	if !ok {
		return 0, eris.Errorf("column %q missing from %s", name, r.path)
	}
	if idx >= len(r.record) {
		return 0, nil
	}
	s := strings.TrimSpace(strings.ReplaceAll(r.record[idx], ",", ""))
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, nil
	}
	return v, nil
}

func (r regionRow) sum(names ...string) (float64, error) {
	var total float64
	for _, name := range names {
		v, err := r.num(name)
		if err != nil {
			return 0, err
		}
		total += v
	}
	return total, nil
}

// higherEdPct is bachelor's-or-higher attainment over the 25+ population.
func higherEdPct(r regionRow) (float64, error) {
	degrees, err := r.sum("bachelors", "graduate_professional")
	if err != nil {
		return 0, err
	}
	total, err := r.num("total_25_plus")
	if err != nil {
		return 0, err
	}
	return pct(degrees, total), nil
}

// povertyPct is the below-poverty count over the poverty universe.
func povertyPct(r regionRow) (float64, error) {
	below, err := r.num("below_poverty")
	if err != nil {
		return 0, err
	}
	universe, err := r.num("poverty_universe")
	if err != nil {
		return 0, err
	}
	return pct(below, universe), nil
}

// raceGroups are the population-group columns the diversity index spans.
var raceGroups = []string{
	"white", "black", "asian", "hispanic",
	"native", "pacific", "other", "two_or_more",
}

// diversityIndex is the Simpson index 1 - sum(share^2) over the major
// population groups, bounded [0, 1).
func diversityIndex(r regionRow) (float64, error) {
	total, err := r.num("total")
	if err != nil {
		return 0, err
	}
	if total <= 0 {
		return 0, nil
	}

	var sumSq float64
	for _, group := range raceGroups {
		v, err := r.num(group)
		if err != nil {
			return 0, err
		}
		share := v / total
		sumSq += share * share
	}
	return 1 - sumSq, nil
}

// highValueHousingPct is the share of units in the high-value brackets.
func highValueHousingPct(r regionRow) (float64, error) {
	high, err := r.sum("value_750k_1m", "value_1m_plus")
	if err != nil {
		return 0, err
	}
	total, err := r.num("total_units")
	if err != nil {
		return 0, err
	}
	return pct(high, total), nil
}

// incomeBracket is one household-income bracket with its dollar bounds.
// The top bracket is open-ended; its median falls back to the lower bound.
type incomeBracket struct {
	col   string
	lower float64
	upper float64
}

var incomeBrackets = []incomeBracket{
	{"under_25k", 0, 25000},
	{"income_25k_50k", 25000, 50000},
	{"income_50k_75k", 50000, 75000},
	{"income_75k_100k", 75000, 100000},
	{"income_100k_150k", 100000, 150000},
	{"income_150k_200k", 150000, 200000},
	{"income_200k_plus", 200000, 0},
}

// medianIncome interpolates the median household income from bracket counts.
func medianIncome(r regionRow) (float64, error) {
	counts := make([]float64, len(incomeBrackets))
	var total float64
	for i, b := range incomeBrackets {
		v, err := r.num(b.col)
		if err != nil {
			return 0, err
		}
		counts[i] = v
		total += v
	}
	if total <= 0 {
		return 0, nil
	}

	need := total / 2
	var cum float64
	for i, b := range incomeBrackets {
		if cum+counts[i] < need {
			cum += counts[i]
			continue
		}
		if b.upper == 0 || counts[i] == 0 {
			return b.lower, nil
		}
		// Linear interpolation within the median bracket.
		return b.lower + (need-cum)/counts[i]*(b.upper-b.lower), nil
	}
	return incomeBrackets[len(incomeBrackets)-1].lower, nil
}

// sameHousePct is the share of residents in the same house as a year ago.
func sameHousePct(r regionRow) (float64, error) {
	same, err := r.num("same_house")
	if err != nil {
		return 0, err
	}
	total, err := r.num("total")
	if err != nil {
		return 0, err
	}
	return pct(same, total), nil
}

// transitPct is the public-transit share of commuters.
func transitPct(r regionRow) (float64, error) {
	transit, err := r.num("public_transit")
	if err != nil {
		return 0, err
	}
	total, err := r.num("total_commuters")
	if err != nil {
		return 0, err
	}
	return pct(transit, total), nil
}

// renterPct is renter-occupied over all occupied units.
func renterPct(r regionRow) (float64, error) {
	renter, err := r.num("renter_occupied")
	if err != nil {
		return 0, err
	}
	owner, err := r.num("owner_occupied")
	if err != nil {
		return 0, err
	}
	return pct(renter, renter+owner), nil
}

func pct(part, whole float64) float64 {
	if whole <= 0 {
		return 0
	}
	return part / whole * 100
}
