package model

// DerivedDemographics holds the per-region scalar metrics computed once from
// the reference tables and cached for the process lifetime.
type DerivedDemographics struct {
	Region string `json:"region"`

	HigherEdPct         float64 `json:"higher_ed_pct"`          // bachelor's or higher / population 25+
	PovertyPct          float64 `json:"poverty_pct"`            // below poverty / poverty universe
	DiversityIndex      float64 `json:"diversity_index"`        // Simpson index, [0, 1)
	HighValueHousingPct float64 `json:"high_value_housing_pct"` // high-value buckets / total units
	MedianIncome        float64 `json:"median_income"`          // bracket-interpolated household income
	SameHousePct        float64 `json:"same_house_pct"`         // lived in same house 1yr ago
	TransitPct          float64 `json:"transit_pct"`            // public transit commute share
	RenterPct           float64 `json:"renter_pct"`             // renter-occupied / occupied units
}

// Metric returns the named metric value for correlation classification.
// The bool is false for names the config references but this build does
// not compute.
func (d DerivedDemographics) Metric(name string) (float64, bool) {
	switch name {
	case "higher_ed_pct":
		return d.HigherEdPct, true
	case "poverty_pct":
		return d.PovertyPct, true
	case "diversity_index":
		return d.DiversityIndex, true
	case "high_value_housing_pct":
		return d.HighValueHousingPct, true
	case "median_income":
		return d.MedianIncome, true
	case "same_house_pct":
		return d.SameHousePct, true
	case "transit_pct":
		return d.TransitPct, true
	case "renter_pct":
		return d.RenterPct, true
	default:
		return 0, false
	}
}
