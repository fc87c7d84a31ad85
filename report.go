package finpension

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// Report holds the data rows of a Finpension transaction report in input
// order.
type Report struct {
	records []Record
}

// NewReport builds a report from records directly.
func NewReport(records ...Record) *Report { return &Report{records: records} }

// Records returns the report rows in input order.
func (p *Report) Records() []Record { return p.records }

// Len returns the number of data rows.
func (p *Report) Len() int { return len(p.records) }

// DecodeReport reads a Finpension transaction report from r.
//
// The dialect is ';'-separated CSV with '.' as the decimal mark. The first
// non-blank row is the header and names the fields positionally. Data rows
// shorter than the header leave the missing fields empty, extra cells are
// dropped, blank lines are skipped. A leading UTF-8 BOM is tolerated. The
// header is not validated: a missing column reads as empty values, and the
// expander decides per row what is fatal.
func DecodeReport(r io.Reader) (*Report, error) {
	cr := csv.NewReader(r)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read transaction report: %w", err)
	}

	report := &Report{}
	var header []string
	for _, row := range rows {
		if blankRow(row) {
			continue
		}
		if header == nil {
			header = row
			header[0] = strings.TrimPrefix(header[0], utf8BOM)
			continue
		}
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = ""
			}
		}
		report.records = append(report.records, rec)
	}
	return report, nil
}

func blankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
