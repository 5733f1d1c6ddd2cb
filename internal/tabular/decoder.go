// Package tabular decodes the delimited incident extract into header-keyed
// rows. It is deliberately more forgiving than encoding/csv: short rows are
// right-padded instead of rejected, and over-long rows are dropped with a
// warning instead of aborting the whole decode.
package tabular

import (
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Row is one decoded data row, keyed by header column name.
type Row map[string]string

// Options configures the decoder.
type Options struct {
	Delimiter byte     // default ','
	Quote     byte     // default '"'
	Required  []string // header columns that must be present
}

// Result holds the decoded table.
type Result struct {
	Header  []string
	Rows    []Row
	Dropped int // corrupt rows skipped (more fields than the header)
}

// Decode turns a raw text blob into ordered rows. It fails when fewer than
// two non-blank lines exist or a required column is missing from the header;
// everything else is recoverable.
func Decode(raw string, opts Options) (*Result, error) {
	if opts.Delimiter == 0 {
		opts.Delimiter = ','
	}
	if opts.Quote == 0 {
		opts.Quote = '"'
	}

	lines := splitLines(raw)
	if len(lines) < 2 {
		return nil, eris.New("tabular: input needs a header line and at least one data line")
	}

	header := scanFields(lines[0], opts.Delimiter, opts.Quote)
	seen := make(map[string]bool, len(header))
	for _, col := range header {
		seen[col] = true
	}
	for _, col := range opts.Required {
		if !seen[col] {
			return nil, eris.Errorf("tabular: required column %q missing from header", col)
		}
	}

	res := &Result{Header: header, Rows: make([]Row, 0, len(lines)-1)}

	for n, line := range lines[1:] {
		fields := scanFields(line, opts.Delimiter, opts.Quote)
		if len(fields) > len(header) {
			res.Dropped++
			zap.L().Warn("dropping corrupt row",
				zap.Int("line", n+2),
				zap.Int("fields", len(fields)),
				zap.Int("columns", len(header)),
			)
			continue
		}

		row := make(Row, len(header))
		for i, col := range header {
			if i < len(fields) {
				row[col] = fields[i]
			} else {
				row[col] = "" // short row, right-pad
			}
		}
		res.Rows = append(res.Rows, row)
	}

	return res, nil
}

// splitLines normalizes CRLF/CR line endings to LF and returns the
// non-blank lines.
func splitLines(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var out []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			out = append(out, line)
		}
	}
	return out
}

// scanFields splits one line on the delimiter with a single character pass.
// The quote character toggles a quoted state; delimiters inside quotes are
// literal. Each field is stripped of surrounding whitespace and one layer of
// wrapping quotes.
func scanFields(line string, delim, quote byte) []string {
	var fields []string
	var buf strings.Builder
	quoted := false

	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case c == quote:
			quoted = !quoted
			buf.WriteByte(c)
		case c == delim && !quoted:
			fields = append(fields, cleanField(buf.String(), quote))
			buf.Reset()
		default:
			buf.WriteByte(c)
		}
	}
	fields = append(fields, cleanField(buf.String(), quote))

	return fields
}

func cleanField(s string, quote byte) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && s[0] == quote && s[len(s)-1] == quote {
		s = s[1 : len(s)-1]
	}
	return strings.TrimSpace(s)
}
