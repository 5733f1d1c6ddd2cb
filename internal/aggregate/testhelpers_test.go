package aggregate

import (
	"time"

	"github.com/dc-analytics/crimelens/internal/config"
	"github.com/dc-analytics/crimelens/internal/model"
)

func testConfig() config.AggregateConfig {
	return config.AggregateConfig{
		TargetYear:         2024,
		TopCategories:      10,
		TopAreas:           5,
		PropertyCategories: []string{"THEFT/OTHER", "THEFT F/AUTO", "MOTOR VEHICLE THEFT", "BURGLARY", "ARSON"},
	}
}

func testEngine() *Engine {
	return NewEngine(testConfig())
}

// inc builds a minimal incident for reducer tests.
func inc(category string, shift model.Shift, reported time.Time) model.Incident {
	return model.Incident{
		Category:   category,
		Shift:      shift,
		ReportedAt: reported,
		Latitude:   38.9,
		Longitude:  -77.03,
	}
}

func at(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 10, 0, 0, 0, time.UTC)
}
