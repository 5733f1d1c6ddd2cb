package ingest

import (
	"strings"

	"go.uber.org/zap"

	"github.com/dc-analytics/crimelens/internal/config"
	"github.com/dc-analytics/crimelens/internal/model"
	"github.com/dc-analytics/crimelens/internal/tabular"
)

// Normalizer converts decoded rows into canonical incidents.
type Normalizer struct {
	cols config.ColumnMapping
}

// NewNormalizer creates a Normalizer for the given column mapping.
func NewNormalizer(cols config.ColumnMapping) *Normalizer {
	return &Normalizer{cols: cols}
}

// Normalize converts one decoded row into an Incident. The second return
// value is false when the row is rejected; the only rejection cause is an
// unparseable report timestamp. Every other defect degrades to a default.
func (n *Normalizer) Normalize(row tabular.Row) (model.Incident, bool) {
	reportedAt, err := parseTimestamp(row[n.cols.ReportedAt])
	if err != nil {
		zap.L().Warn("rejecting row with unparseable report timestamp",
			zap.String("case_number", strings.TrimSpace(row[n.cols.CaseNumber])),
			zap.String("value", row[n.cols.ReportedAt]),
		)
		return model.Incident{}, false
	}

	inc := model.Incident{
		CaseNumber: strings.TrimSpace(row[n.cols.CaseNumber]),
		ObjectID:   strings.TrimSpace(row[n.cols.ObjectID]),

		Latitude:  parseFloatOr(row[n.cols.Latitude], 0),
		Longitude: parseFloatOr(row[n.cols.Longitude], 0),
		X:         parseFloatOr(row[n.cols.X], 0),
		Y:         parseFloatOr(row[n.cols.Y], 0),

		ReportedAt: reportedAt,
		Shift:      model.ParseShift(strings.ToUpper(strings.TrimSpace(row[n.cols.Shift]))),

		Method:   defaultStr(row[n.cols.Method], "UNKNOWN"),
		Category: defaultStr(row[n.cols.Category], "UNKNOWN"),

		Block:            strings.TrimSpace(row[n.cols.Block]),
		Ward:             parseIntOr(row[n.cols.Ward], 0),
		District:         strings.TrimSpace(row[n.cols.District]),
		PSA:              strings.TrimSpace(row[n.cols.PSA]),
		Cluster:          strings.TrimSpace(row[n.cols.Cluster]),
		BusinessDistrict: strings.TrimSpace(row[n.cols.BusinessDistrict]),

		BlockGroup:     strings.TrimSpace(row[n.cols.BlockGroup]),
		CensusTract:    strings.TrimSpace(row[n.cols.CensusTract]),
		VotingPrecinct: strings.TrimSpace(row[n.cols.VotingPrecinct]),
	}

	// Start/end timestamps are best-effort: failure means absent, not rejection.
	if t, err := parseTimestamp(row[n.cols.StartedAt]); err == nil {
		inc.StartedAt = &t
	}
	if t, err := parseTimestamp(row[n.cols.EndedAt]); err == nil {
		inc.EndedAt = &t
	}

	return inc, true
}
