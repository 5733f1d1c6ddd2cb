// Package demographics loads the regional reference tables and derives the
// scalar metrics used for correlation annotation. Loading is all-or-nothing:
// a missing table, a missing required column, or an absent target-region row
// fails the whole load. The result is computed once and cached by the
// pipeline for the process lifetime.
package demographics

import (
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/dc-analytics/crimelens/internal/config"
	"github.com/dc-analytics/crimelens/internal/model"
)

// requiredTables are the demographic domains every load must provide.
var requiredTables = []string{
	"income", "education", "race", "poverty",
	"housing", "mobility", "transportation", "tenure",
}

// Loader reads the reference tables for one target region.
type Loader struct {
	cfg config.DemographicsConfig
}

// NewLoader creates a Loader for the given configuration.
func NewLoader(cfg config.DemographicsConfig) *Loader {
	return &Loader{cfg: cfg}
}

// Load reads every reference table, selects the target-region row from each,
// and computes the derived metrics.
func (l *Loader) Load() (*model.DerivedDemographics, error) {
	rows := make(map[string]regionRow, len(requiredTables))

	for _, table := range requiredTables {
		name, ok := l.cfg.Tables[table]
		if !ok || name == "" {
			return nil, eris.Errorf("demographics: no file configured for table %q", table)
		}
		path := filepath.Join(l.cfg.Dir, name)

		row, err := l.loadRegionRow(path)
		if err != nil {
			return nil, eris.Wrapf(err, "demographics: table %q", table)
		}
		rows[table] = row
	}

	d := &model.DerivedDemographics{Region: l.cfg.Region}

	var err error
	if d.HigherEdPct, err = higherEdPct(rows["education"]); err != nil {
		return nil, err
	}
	if d.PovertyPct, err = povertyPct(rows["poverty"]); err != nil {
		return nil, err
	}
	if d.DiversityIndex, err = diversityIndex(rows["race"]); err != nil {
		return nil, err
	}
	if d.HighValueHousingPct, err = highValueHousingPct(rows["housing"]); err != nil {
		return nil, err
	}
	if d.MedianIncome, err = medianIncome(rows["income"]); err != nil {
		return nil, err
	}
	if d.SameHousePct, err = sameHousePct(rows["mobility"]); err != nil {
		return nil, err
	}
	if d.TransitPct, err = transitPct(rows["transportation"]); err != nil {
		return nil, err
	}
	if d.RenterPct, err = renterPct(rows["tenure"]); err != nil {
		return nil, err
	}

	zap.L().Info("demographics loaded",
		zap.String("region", d.Region),
		zap.Float64("higher_ed_pct", d.HigherEdPct),
		zap.Float64("poverty_pct", d.PovertyPct),
		zap.Float64("diversity_index", d.DiversityIndex),
	)

	return d, nil
}

// loadRegionRow reads one table file and returns the target-region row.
func (l *Loader) loadRegionRow(path string) (regionRow, error) {
	header, records, err := readTable(path)
	if err != nil {
		return regionRow{}, err
	}

	colIdx := make(map[string]int, len(header))
	for i, col := range header {
		colIdx[strings.ToLower(strings.TrimSpace(col))] = i
	}

	regionIdx, ok := colIdx[strings.ToLower(l.cfg.RegionColumn)]
	if !ok {
		return regionRow{}, eris.Errorf("region column %q missing from %s", l.cfg.RegionColumn, path)
	}

	for _, rec := range records {
		if regionIdx < len(rec) && strings.EqualFold(strings.TrimSpace(rec[regionIdx]), l.cfg.Region) {
			return regionRow{cols: colIdx, record: rec, path: path}, nil
		}
	}

	return regionRow{}, eris.Errorf("region %q not found in %s", l.cfg.Region, path)
}
