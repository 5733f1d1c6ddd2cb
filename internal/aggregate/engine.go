// Package aggregate builds the derived views from a filtered incident
// collection. Each reducer is a pure function over its input; the engine
// runs all five concurrently since they share no state.
package aggregate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dc-analytics/crimelens/internal/config"
	"github.com/dc-analytics/crimelens/internal/model"
)

// Engine runs the five view reducers.
type Engine struct {
	cfg config.AggregateConfig
}

// NewEngine creates an Engine with the given tuning.
func NewEngine(cfg config.AggregateConfig) *Engine {
	return &Engine{cfg: cfg}
}

// Run rebuilds every view from the filtered incidents. The spec's category
// set decides the active category set of the area rollup. Reducers are total
// functions, so the only error path is context cancellation.
func (e *Engine) Run(ctx context.Context, filtered []model.Incident, spec model.FilterSpec) (*model.Views, error) {
	views := &model.Views{Filtered: len(filtered)}

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		views.Heatmap = e.Heatmap(filtered)
		return nil
	})
	g.Go(func() error {
		views.Shifts = CountShifts(filtered)
		return nil
	})
	g.Go(func() error {
		views.Categories = e.RankCategories(filtered)
		return nil
	})
	g.Go(func() error {
		views.Trend = e.DailyTrend(filtered)
		return nil
	})
	g.Go(func() error {
		views.Areas = e.RollupAreas(filtered, spec.Categories)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return views, nil
}
