package model

import "time"

// Shift is the coarse time-of-day bucket the source system assigns to an incident.
type Shift string

const (
	ShiftDay      Shift = "DAY"
	ShiftEvening  Shift = "EVENING"
	ShiftMidnight Shift = "MIDNIGHT"
	ShiftUnknown  Shift = "UNKNOWN"
)

// ReportedShifts is the fixed ordering used by the shift count view.
// UNKNOWN is deliberately absent: incidents outside the three reported
// shifts are never counted.
var ReportedShifts = []Shift{ShiftDay, ShiftEvening, ShiftMidnight}

// ParseShift maps a raw source value onto the shift enum.
// Anything unrecognized becomes UNKNOWN rather than an error.
func ParseShift(s string) Shift {
	switch Shift(s) {
	case ShiftDay, ShiftEvening, ShiftMidnight:
		return Shift(s)
	default:
		return ShiftUnknown
	}
}

// Incident is one normalized crime incident. Values are immutable once the
// canonical store is built; every field except ReportedAt may hold a
// defaulted placeholder.
type Incident struct {
	CaseNumber string `json:"case_number"` // source CCN, opaque, not unique across reloads
	ObjectID   string `json:"object_id"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`

	ReportedAt time.Time  `json:"reported_at"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	Shift      Shift      `json:"shift"`

	Method   string `json:"method"`
	Category string `json:"category"` // source offense label, "UNKNOWN" when absent

	Block            string `json:"block"`
	Ward             int    `json:"ward"`
	District         string `json:"district"` // advisory neighborhood commission
	PSA              string `json:"psa"`      // police service area
	Cluster          string `json:"cluster"`  // neighborhood cluster label
	BusinessDistrict string `json:"business_district,omitempty"`

	BlockGroup     string `json:"block_group,omitempty"`
	CensusTract    string `json:"census_tract,omitempty"`
	VotingPrecinct string `json:"voting_precinct,omitempty"`
}

// HasCoordinates reports whether the incident carries real geocoding.
// Both coordinates exactly zero means the source values failed to parse
// and were defaulted.
func (i Incident) HasCoordinates() bool {
	return i.Latitude != 0 || i.Longitude != 0
}
