// Package correlate attaches qualitative demographic labels to the area
// rollup. The labels are threshold classifications, not computed regression
// coefficients: each metric has a configured high/low band and an expected
// correlation sign, and an area's incident count is judged against the
// median of the rollup.
package correlate

import (
	"sort"

	"github.com/dc-analytics/crimelens/internal/config"
	"github.com/dc-analytics/crimelens/internal/model"
)

type level int

const (
	levelLow level = iota
	levelModerate
	levelHigh
)

// Annotator classifies area incident counts against demographic metrics.
type Annotator struct {
	cfg config.CorrelateConfig
}

// NewAnnotator creates an Annotator with the given threshold tables.
func NewAnnotator(cfg config.CorrelateConfig) *Annotator {
	return &Annotator{cfg: cfg}
}

// Annotate attaches one Correlation per configured metric to every area in
// the view. A nil demographics value yields no-data labels throughout.
func (a *Annotator) Annotate(view *model.AreaView, demo *model.DerivedDemographics) {
	median := medianTotal(view.Areas)

	for i := range view.Areas {
		area := &view.Areas[i]
		crime := a.crimeLevel(area.Total, median)

		annotations := make([]model.Correlation, 0, len(a.cfg.Metrics))
		for _, m := range a.cfg.Metrics {
			ann := model.Correlation{Metric: m.Name, Label: model.CorrNoData}
			if demo != nil {
				if value, ok := demo.Metric(m.Name); ok {
					ann.Value = value
					ann.Label = combine(m.Expected, metricLevel(value, m), crime)
				}
			}
			annotations = append(annotations, ann)
		}
		area.Correlation = annotations
	}
}

// crimeLevel classifies an area's incident count against the rollup median.
func (a *Annotator) crimeLevel(total int, median float64) level {
	if median <= 0 {
		return levelModerate
	}
	ratio := float64(total) / median
	switch {
	case ratio > a.cfg.HighCrimeRatio:
		return levelHigh
	case ratio < a.cfg.LowCrimeRatio:
		return levelLow
	default:
		return levelModerate
	}
}

func metricLevel(value float64, m config.MetricConfig) level {
	switch {
	case value > m.High:
		return levelHigh
	case value < m.Low:
		return levelLow
	default:
		return levelModerate
	}
}

// combine maps (metric level, crime level) onto a label given the metric's
// expected correlation sign. Either side landing in the moderate band yields
// the moderate label.
func combine(expected string, metric, crime level) model.CorrelationLabel {
	if metric == levelModerate || crime == levelModerate {
		return model.CorrModerate
	}

	aligned := metric == crime // both high or both low
	if expected == "positive" {
		if aligned {
			return model.CorrExpectedPositive
		}
		if crime == levelHigh {
			return model.CorrAnomalyHighCrime
		}
		return model.CorrAnomalyLowCrime
	}

	// Negative expectation: opposite levels are the expected pattern.
	if !aligned {
		return model.CorrExpectedNegative
	}
	if crime == levelHigh {
		return model.CorrAnomalyHighCrime
	}
	return model.CorrAnomalyLowCrime
}

// medianTotal is the median incident count across the rollup areas.
func medianTotal(areas []model.AreaRollup) float64 {
	if len(areas) == 0 {
		return 0
	}
	totals := make([]int, len(areas))
	for i, a := range areas {
		totals[i] = a.Total
	}
	sort.Ints(totals)

	mid := len(totals) / 2
	if len(totals)%2 == 1 {
		return float64(totals[mid])
	}
	return float64(totals[mid-1]+totals[mid]) / 2
}
