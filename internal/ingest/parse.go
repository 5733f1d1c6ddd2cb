package ingest

import (
	"strconv"
	"strings"
	"time"
)

// reportLayout is the fixed source timestamp format. An optional trailing
// two-digit timezone offset ("+00") is stripped before parsing.
const reportLayout = "2006/01/02 15:04:05"

// parseFloatOr parses a string as a float64, returning def if parsing fails.
func parseFloatOr(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// parseIntOr parses a string as an integer, returning def if parsing fails.
// Ward values occasionally arrive as floats ("7.0"); those are accepted.
func parseIntOr(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return def
}

// stripOffset removes a trailing two-digit timezone offset suffix ("+00",
// "-05") if present.
func stripOffset(s string) string {
	if len(s) >= 3 {
		tail := s[len(s)-3:]
		if (tail[0] == '+' || tail[0] == '-') && isDigit(tail[1]) && isDigit(tail[2]) {
			return s[:len(s)-3]
		}
	}
	return s
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseTimestamp parses a source timestamp, stripping any offset suffix.
func parseTimestamp(s string) (time.Time, error) {
	return time.Parse(reportLayout, stripOffset(strings.TrimSpace(s)))
}

// defaultStr returns def when s is empty after trimming.
func defaultStr(s, def string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	return s
}
