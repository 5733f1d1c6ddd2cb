package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dc-analytics/crimelens/internal/model"
	"github.com/dc-analytics/crimelens/internal/tabular"
)

func fullRow() tabular.Row {
	return tabular.Row{
		"CCN":                  "24123456",
		"OBJECTID":             "987",
		"LATITUDE":             "38.9072",
		"LONGITUDE":            "-77.0369",
		"X":                    "398000.1",
		"Y":                    "137000.2",
		"REPORT_DAT":           "2024/05/14 14:30:25+00",
		"START_DATE":           "2024/05/14 13:00:00+00",
		"END_DATE":             "2024/05/14 14:00:00+00",
		"SHIFT":                "DAY",
		"METHOD":               "GUN",
		"OFFENSE":              "HOMICIDE",
		"BLOCK":                "100 - 199 BLOCK OF K ST NW",
		"WARD":                 "6",
		"ANC":                  "6E",
		"PSA":                  "101",
		"NEIGHBORHOOD_CLUSTER": "Cluster 8",
		"BID":                  "DOWNTOWN",
		"BLOCK_GROUP":          "004701 1",
		"CENSUS_TRACT":         "004701",
		"VOTING_PRECINCT":      "Precinct 143",
	}
}

func TestNormalize_FullRow(t *testing.T) {
	n := NewNormalizer(testColumns())

	inc, ok := n.Normalize(fullRow())
	require.True(t, ok)

	assert.Equal(t, "24123456", inc.CaseNumber)
	assert.Equal(t, 38.9072, inc.Latitude)
	assert.Equal(t, -77.0369, inc.Longitude)
	assert.Equal(t, time.Date(2024, time.May, 14, 14, 30, 25, 0, time.UTC), inc.ReportedAt)
	require.NotNil(t, inc.StartedAt)
	require.NotNil(t, inc.EndedAt)
	assert.Equal(t, model.ShiftDay, inc.Shift)
	assert.Equal(t, "HOMICIDE", inc.Category)
	assert.Equal(t, 6, inc.Ward)
	assert.Equal(t, "Cluster 8", inc.Cluster)
	assert.True(t, inc.HasCoordinates())
}

func TestNormalize_RejectsBadReportTimestamp(t *testing.T) {
	n := NewNormalizer(testColumns())

	row := fullRow()
	row["REPORT_DAT"] = "not a date"
	_, ok := n.Normalize(row)
	assert.False(t, ok)

	row["REPORT_DAT"] = ""
	_, ok = n.Normalize(row)
	assert.False(t, ok)
}

func TestNormalize_OptionalTimestampsDegrade(t *testing.T) {
	// Bad start/end timestamps mean absent, never rejection.
	n := NewNormalizer(testColumns())

	row := fullRow()
	row["START_DATE"] = "garbage"
	row["END_DATE"] = ""

	inc, ok := n.Normalize(row)
	require.True(t, ok)
	assert.Nil(t, inc.StartedAt)
	assert.Nil(t, inc.EndedAt)
}

func TestNormalize_Defaults(t *testing.T) {
	n := NewNormalizer(testColumns())

	row := tabular.Row{"REPORT_DAT": "2024/01/01 08:00:00"}
	inc, ok := n.Normalize(row)
	require.True(t, ok)

	assert.Equal(t, "UNKNOWN", inc.Category)
	assert.Equal(t, "UNKNOWN", inc.Method)
	assert.Equal(t, model.ShiftUnknown, inc.Shift)
	assert.Equal(t, 0, inc.Ward)
	assert.Equal(t, 0.0, inc.Latitude)
	assert.False(t, inc.HasCoordinates())
}

func TestNormalize_ShiftCaseInsensitive(t *testing.T) {
	n := NewNormalizer(testColumns())

	row := fullRow()
	row["SHIFT"] = "midnight"
	inc, ok := n.Normalize(row)
	require.True(t, ok)
	assert.Equal(t, model.ShiftMidnight, inc.Shift)

	row["SHIFT"] = "SWING"
	inc, ok = n.Normalize(row)
	require.True(t, ok)
	assert.Equal(t, model.ShiftUnknown, inc.Shift)
}
