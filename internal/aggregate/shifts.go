package aggregate

import "github.com/dc-analytics/crimelens/internal/model"

// CountShifts counts incidents per reported shift in the fixed order
// [DAY, EVENING, MIDNIGHT]. UNKNOWN shifts are not counted.
func CountShifts(incidents []model.Incident) []model.ShiftCount {
	counts := make(map[model.Shift]int, len(model.ReportedShifts))
	for _, inc := range incidents {
		counts[inc.Shift]++
	}

	out := make([]model.ShiftCount, 0, len(model.ReportedShifts))
	for _, shift := range model.ReportedShifts {
		out = append(out, model.ShiftCount{Shift: shift, Count: counts[shift]})
	}
	return out
}
