package sheet

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/movya/candidate-suite/internal/model"
	"github.com/tidwall/gjson"
)

// The gviz endpoint answers with JSONP: the JSON body wrapped in a fixed
// setResponse(...) callback.
var gvizEnvelope = regexp.MustCompile(`(?s)google\.visualization\.Query\.setResponse\((.*)\);?\s*$`)

// ExtractGvizPayload strips the JSONP envelope from a table-query response.
func ExtractGvizPayload(body string) (string, error) {
	match := gvizEnvelope.FindStringSubmatch(body)
	if match == nil {
		return "", errors.New("failed to parse table query response: setResponse envelope not found")
	}
	return match[1], nil
}

// ParseGviz pivots the columnar table-query payload into one record per row,
// keyed by column label. Columns without a label get a synthesized colN key
// and null cells become empty strings. Rows that pivot to nothing but blanks
// are dropped.
func ParseGviz(body string) ([]model.SelectionCandidate, error) {
	payload, err := ExtractGvizPayload(body)
	if err != nil {
		return nil, err
	}
	if !gjson.Valid(payload) {
		return nil, errors.New("failed to parse table query response: payload is not valid JSON")
	}

	var labels []string
	gjson.Get(payload, "table.cols").ForEach(func(_, col gjson.Result) bool {
		label := col.Get("label").String()
		if label == "" {
			label = fmt.Sprintf("col%d", len(labels))
		}
		labels = append(labels, label)
		return true
	})

	var records []model.SelectionCandidate
	gjson.Get(payload, "table.rows").ForEach(func(_, row gjson.Result) bool {
		cells := row.Get("c").Array()
		record := model.SelectionCandidate{}
		empty := true
		for i, label := range labels {
			value := ""
			if i < len(cells) {
				value = cells[i].Get("v").String()
			}
			if value != "" {
				empty = false
			}
			record[label] = value
		}
		if !empty {
			records = append(records, record)
		}
		return true
	})
	return records, nil
}
