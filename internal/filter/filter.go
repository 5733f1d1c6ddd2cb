// Package filter narrows the canonical incident store. It is a pure
// predicate pass: no stage mutates the input, and source order is preserved.
package filter

import "github.com/dc-analytics/crimelens/internal/model"

// Apply returns the incidents matching the filter, in their original order.
// An all-empty spec returns a copy of the whole store.
func Apply(incidents []model.Incident, spec model.FilterSpec) []model.Incident {
	out := make([]model.Incident, 0, len(incidents))
	for _, inc := range incidents {
		if spec.Matches(inc) {
			out = append(out, inc)
		}
	}
	return out
}
