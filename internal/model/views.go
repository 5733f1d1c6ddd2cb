package model

import "time"

// HeatmapPoint is one incident projected into the spatial density view.
// Weight is always 1 today; the field exists so a consumer can re-weight
// without a schema change.
type HeatmapPoint struct {
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Category  string    `json:"category"`
	Shift     Shift     `json:"shift"`
	Timestamp time.Time `json:"timestamp"`
	Weight    float64   `json:"weight"`
}

// HeatmapBounds is the lat/lng envelope of the projected points, for
// consumer map auto-fit. Zero-valued when the view is empty.
type HeatmapBounds struct {
	MinLat float64 `json:"min_lat"`
	MinLng float64 `json:"min_lng"`
	MaxLat float64 `json:"max_lat"`
	MaxLng float64 `json:"max_lng"`
}

// HeatmapView is the spatial density view plus its envelope.
type HeatmapView struct {
	Points []HeatmapPoint `json:"points"`
	Bounds HeatmapBounds  `json:"bounds"`
}

// ShiftCount is one entry of the fixed-order shift distribution.
type ShiftCount struct {
	Shift Shift `json:"shift"`
	Count int   `json:"count"`
}

// CategoryCount is one entry of the ranked category view.
type CategoryCount struct {
	Category   string  `json:"category"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"` // of the filtered total
}

// DailyTrendPoint is one calendar day of the dense trend series.
type DailyTrendPoint struct {
	Date  time.Time `json:"date"` // midnight UTC of the day
	Count int       `json:"count"`
}

// AreaRollup is one neighborhood cluster in the top-N area view.
type AreaRollup struct {
	Area        string         `json:"area"`
	Total       int            `json:"total"`
	ByCategory  map[string]int `json:"by_category"`
	Rank        int            `json:"rank"` // 1-based
	Correlation []Correlation  `json:"correlation,omitempty"`
}

// Correlation is one qualitative demographic annotation on an area rollup.
type Correlation struct {
	Metric string           `json:"metric"`
	Value  float64          `json:"value"`
	Label  CorrelationLabel `json:"label"`
}

// CorrelationLabel classifies how an area's incident count relates to a
// demographic metric.
type CorrelationLabel string

const (
	CorrExpectedNegative CorrelationLabel = "expected-negative"
	CorrExpectedPositive CorrelationLabel = "expected-positive"
	CorrAnomalyHighCrime CorrelationLabel = "anomaly-high-crime"
	CorrAnomalyLowCrime  CorrelationLabel = "anomaly-low-crime"
	CorrModerate         CorrelationLabel = "moderate"
	CorrNoData           CorrelationLabel = "no-data"
)

// AreaView is the top-N area rollup with its summary figures.
type AreaView struct {
	Areas            []AreaRollup `json:"areas"`
	DominantCategory string       `json:"dominant_category"` // of the top area
	TopShare         float64      `json:"top_share"`         // % of filtered total in the listed areas
	PropertyShare    float64      `json:"property_share"`    // % of filtered total in property crime categories
}

// Views is one published snapshot of all derived views. Snapshots are
// rebuilt whole on every filter change and never mutated in place.
type Views struct {
	Heatmap    HeatmapView       `json:"heatmap"`
	Shifts     []ShiftCount      `json:"shifts"`
	Categories []CategoryCount   `json:"categories"`
	Trend      []DailyTrendPoint `json:"trend"`
	Areas      AreaView          `json:"areas"`
	Filtered   int               `json:"filtered"` // incident count after the filter pass
}
