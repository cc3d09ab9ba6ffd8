// Package sheet parses the two spreadsheet export formats the dashboard
// consumes: the roster CSV export and the gviz table-query response.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/movya/candidate-suite/internal/model"
)

// RosterTable is one parsed roster export. Headers keep the sheet's column
// order, which drives field display ordering downstream.
type RosterTable struct {
	Headers    []string
	Candidates []model.Candidate
	Warnings   []string
}

// ParseRoster turns the CSV export into candidate records. Headers and cells
// are trimmed, rows with nothing but blanks are dropped, and a malformed row
// is reported as a warning instead of failing the batch. Rows shorter than
// the header get empty strings for the missing columns; surplus cells are
// ignored.
func ParseRoster(text string) RosterTable {
	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return RosterTable{}
		}
		return RosterTable{Warnings: []string{fmt.Sprintf("header row: %v", err)}}
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	var (
		candidates []model.Candidate
		warnings   []string
	)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("row %d: %v", line, err))
			continue
		}

		candidate := model.Candidate{}
		empty := true
		for i, header := range headers {
			if header == "" {
				continue
			}
			value := ""
			if i < len(record) {
				value = strings.TrimSpace(record[i])
			}
			if value != "" {
				empty = false
			}
			candidate[header] = value
		}
		if empty {
			continue
		}
		candidates = append(candidates, candidate)
	}
	return RosterTable{Headers: headers, Candidates: candidates, Warnings: warnings}
}
