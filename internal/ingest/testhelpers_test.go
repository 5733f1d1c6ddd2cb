package ingest

import "github.com/dc-analytics/crimelens/internal/config"

// testColumns mirrors the DC extract defaults from internal/config.
func testColumns() config.ColumnMapping {
	return config.ColumnMapping{
		Latitude:         "LATITUDE",
		Longitude:        "LONGITUDE",
		X:                "X",
		Y:                "Y",
		ReportedAt:       "REPORT_DAT",
		StartedAt:        "START_DATE",
		EndedAt:          "END_DATE",
		Shift:            "SHIFT",
		Method:           "METHOD",
		Category:         "OFFENSE",
		Block:            "BLOCK",
		Ward:             "WARD",
		District:         "ANC",
		PSA:              "PSA",
		Cluster:          "NEIGHBORHOOD_CLUSTER",
		BusinessDistrict: "BID",
		CaseNumber:       "CCN",
		ObjectID:         "OBJECTID",
		BlockGroup:       "BLOCK_GROUP",
		CensusTract:      "CENSUS_TRACT",
		VotingPrecinct:   "VOTING_PRECINCT",
	}
}
