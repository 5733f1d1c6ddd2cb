package aggregate

import (
	"time"

	"github.com/dc-analytics/crimelens/internal/model"
)

// DailyTrend builds the dense daily series for the configured target year:
// exactly one zero-initialized entry per calendar day (365 or 366),
// incremented per incident reported on that day. Incidents outside the
// target year are silently not counted.
func (e *Engine) DailyTrend(incidents []model.Incident) []model.DailyTrendPoint {
	year := e.cfg.TargetYear
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(end.Sub(start).Hours() / 24)

	out := make([]model.DailyTrendPoint, days)
	for i := range out {
		out[i].Date = start.AddDate(0, 0, i)
	}

	for _, inc := range incidents {
		if inc.ReportedAt.Year() != year {
			continue
		}
		out[inc.ReportedAt.YearDay()-1].Count++
	}
	return out
}
