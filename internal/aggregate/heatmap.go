package aggregate

import (
	"github.com/twpayne/go-geom"

	"github.com/dc-analytics/crimelens/internal/model"
)

// Heatmap projects incidents into the spatial density view. Incidents whose
// coordinates were defaulted to zero at normalization are excluded unless
// IncludeZeroCoords is set; they remain visible in every other view.
func (e *Engine) Heatmap(incidents []model.Incident) model.HeatmapView {
	points := make([]model.HeatmapPoint, 0, len(incidents))
	bounds := geom.NewBounds(geom.XY)

	for _, inc := range incidents {
		if !inc.HasCoordinates() && !e.cfg.IncludeZeroCoords {
			continue
		}
		points = append(points, model.HeatmapPoint{
			Lat:       inc.Latitude,
			Lng:       inc.Longitude,
			Category:  inc.Category,
			Shift:     inc.Shift,
			Timestamp: inc.ReportedAt,
			Weight:    1,
		})
		bounds.Extend(geom.NewPointFlat(geom.XY, []float64{inc.Longitude, inc.Latitude}))
	}

	view := model.HeatmapView{Points: points}
	if len(points) > 0 {
		view.Bounds = model.HeatmapBounds{
			MinLng: bounds.Min(0),
			MinLat: bounds.Min(1),
			MaxLng: bounds.Max(0),
			MaxLat: bounds.Max(1),
		}
	}
	return view
}
