package model

import "time"

// FilterSpec narrows the canonical incident store. The three axes combine
// with AND; within the two set axes an incident matches if it equals ANY
// member. An empty set means the axis is unrestricted, and a nil date bound
// means that side of the range is unbounded.
type FilterSpec struct {
	Start      *time.Time `json:"start,omitempty"`
	End        *time.Time `json:"end,omitempty"`
	Categories []string   `json:"categories,omitempty"`
	Shifts     []Shift    `json:"shifts,omitempty"`
}

// Matches reports whether the incident passes every axis of the filter.
func (f FilterSpec) Matches(inc Incident) bool {
	if f.Start != nil && inc.ReportedAt.Before(*f.Start) {
		return false
	}
	if f.End != nil && inc.ReportedAt.After(*f.End) {
		return false
	}
	if len(f.Categories) > 0 && !containsString(f.Categories, inc.Category) {
		return false
	}
	if len(f.Shifts) > 0 && !containsShift(f.Shifts, inc.Shift) {
		return false
	}
	return true
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsShift(set []Shift, v Shift) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
