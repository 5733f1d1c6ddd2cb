package demographics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc-analytics/crimelens/internal/config"
)

// fixtureTables is a minimal but complete reference set for one region.
var fixtureTables = map[string]string{
	"education.csv": "NAME,total_25_plus,bachelors,graduate_professional\n" +
		"District of Columbia,500000,150000,100000\n" +
		"Maryland,100,10,10\n",
	"poverty.csv": "NAME,below_poverty,poverty_universe\n" +
		"District of Columbia,90000,600000\n",
	"race.csv": "NAME,total,white,black,asian,hispanic,native,pacific,other,two_or_more\n" +
		"District of Columbia,1000,400,400,100,100,0,0,0,0\n",
	"housing_value.csv": "NAME,total_units,value_750k_1m,value_1m_plus\n" +
		"District of Columbia,300000,45000,30000\n",
	"income.csv": "NAME,under_25k,income_25k_50k,income_50k_75k,income_75k_100k,income_100k_150k,income_150k_200k,income_200k_plus\n" +
		"District of Columbia,100,100,100,100,100,100,100\n",
	"mobility.csv": "NAME,same_house,total\n" +
		"District of Columbia,800000,1000000\n",
	"transportation.csv": "NAME,public_transit,total_commuters\n" +
		"District of Columbia,120000,400000\n",
	"tenure.csv": "NAME,owner_occupied,renter_occupied\n" +
		"District of Columbia,120000,180000\n",
}

func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range fixtureTables {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func fixtureConfig(dir string) config.DemographicsConfig {
	return config.DemographicsConfig{
		Dir:          dir,
		Region:       "District of Columbia",
		RegionColumn: "NAME",
		Tables: map[string]string{
			"income":         "income.csv",
			"education":      "education.csv",
			"race":           "race.csv",
			"poverty":        "poverty.csv",
			"housing":        "housing_value.csv",
			"mobility":       "mobility.csv",
			"transportation": "transportation.csv",
			"tenure":         "tenure.csv",
		},
	}
}

func TestLoad_DerivesEveryMetric(t *testing.T) {
	dir := writeFixtures(t)

	d, err := NewLoader(fixtureConfig(dir)).Load()
	require.NoError(t, err)

	assert.Equal(t, "District of Columbia", d.Region)
	assert.InDelta(t, 50.0, d.HigherEdPct, 0.001)
	assert.InDelta(t, 15.0, d.PovertyPct, 0.001)
	// Shares 0.4/0.4/0.1/0.1 -> 1 - 0.34 = 0.66
	assert.InDelta(t, 0.66, d.DiversityIndex, 0.001)
	assert.InDelta(t, 25.0, d.HighValueHousingPct, 0.001)
	// 700 households, median in the 75k-100k bracket, halfway past 300 of 100.
	assert.InDelta(t, 87500.0, d.MedianIncome, 0.001)
	assert.InDelta(t, 80.0, d.SameHousePct, 0.001)
	assert.InDelta(t, 30.0, d.TransitPct, 0.001)
	assert.InDelta(t, 60.0, d.RenterPct, 0.001)

	// Bounds hold for every derived metric.
	assert.GreaterOrEqual(t, d.DiversityIndex, 0.0)
	assert.Less(t, d.DiversityIndex, 1.0)
	for _, pct := range []float64{d.HigherEdPct, d.PovertyPct, d.HighValueHousingPct, d.SameHousePct, d.TransitPct, d.RenterPct} {
		assert.GreaterOrEqual(t, pct, 0.0)
		assert.LessOrEqual(t, pct, 100.0)
	}
}

func TestLoad_MissingTableIsFatal(t *testing.T) {
	dir := writeFixtures(t)
	require.NoError(t, os.Remove(filepath.Join(dir, "poverty.csv")))

	_, err := NewLoader(fixtureConfig(dir)).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "poverty")
}

func TestLoad_MissingRegionIsFatal(t *testing.T) {
	dir := writeFixtures(t)

	cfg := fixtureConfig(dir)
	cfg.Region = "State of Denial"
	_, err := NewLoader(cfg).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "State of Denial")
}

func TestLoad_MissingColumnIsFatal(t *testing.T) {
	dir := writeFixtures(t)
	broken := "NAME,wrong_column\nDistrict of Columbia,1\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tenure.csv"), []byte(broken), 0o644))

	_, err := NewLoader(fixtureConfig(dir)).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "renter_occupied")
}

func TestLoad_UnconfiguredTableIsFatal(t *testing.T) {
	dir := writeFixtures(t)

	cfg := fixtureConfig(dir)
	delete(cfg.Tables, "race")
	_, err := NewLoader(cfg).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "race")
}

func TestLoad_RegionMatchIsCaseInsensitive(t *testing.T) {
	dir := writeFixtures(t)

	cfg := fixtureConfig(dir)
	cfg.Region = "district of columbia"
	d, err := NewLoader(cfg).Load()
	require.NoError(t, err)
	assert.InDelta(t, 50.0, d.HigherEdPct, 0.001)
}
