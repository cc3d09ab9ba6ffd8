// Package presenter maps arbitrary sheet columns onto display hints: icon
// tokens, badge variants, formatted values and ordering. The functions are
// pure lookups so the UI can render any column the sheet grows without code
// changes here breaking it.
package presenter

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/movya/candidate-suite/internal/model"
)

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSuccess     Variant = "success"
	VariantWarning     Variant = "warning"
	VariantDestructive Variant = "destructive"
	VariantSecondary   Variant = "secondary"
)

// FieldView is one renderable field of a candidate detail view.
type FieldView struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Icon     string  `json:"icon"`
	Variant  Variant `json:"variant"`
	LongText bool    `json:"long_text"`
	Link     bool    `json:"link"`
}

var fieldIcons = map[string]string{
	"Name":                             "user",
	"Email":                            "mail",
	"Phone Number":                     "phone",
	"Job Role Admin":                   "briefcase",
	"Job Role Candidate":               "briefcase",
	"Call Datetime":                    "calendar",
	"Transcript":                       "file-text",
	"Summary":                          "file-text",
	"Candidate Intro":                  "message-square",
	"Experience Type":                  "briefcase",
	"Past Experience":                  "clock",
	"Project or Achievements":          "award",
	"Total Experience (Years)":         "clock",
	"Current CTC":                      "indian-rupee",
	"Notice Period Status":             "clock",
	"Notice Period Remaining (Months)": "clock",
	"Has Basic Knowledge":              "graduation-cap",
	"Internship or Academic":           "graduation-cap",
	"Joining Availability":             "calendar",
	"Joining Date":                     "calendar",
	"Willing to Relocate":              "map-pin",
	"Interview Availability":           "calendar",
	"Call Status":                      "phone",
	"Interview Status":                 "calendar",
	"Communication Level":              "message-square",
	"Overall Explanation":              "file-text",
}

var longTextFields = map[string]struct{}{
	"Summary":                 {},
	"Transcript":              {},
	"Overall Explanation":     {},
	"Candidate Intro":         {},
	"Past Experience":         {},
	"Project or Achievements": {},
}

// displayOrder pins the well-known columns; anything else renders after them
// in the order it arrived from the sheet.
var displayOrder = []string{
	"Phone Number",
	"Job Role Admin",
	"Call Datetime",
	"Experience Type",
	"Candidate Intro",
	"Past Experience",
	"Project or Achievements",
	"Total Experience (Years)",
	"Current CTC",
	"Notice Period Status",
	"Joining Availability",
	"Willing to Relocate",
	"Interview Availability",
	"Call Status",
	"Interview Status",
	"Interview Reminder Email",
	"Reminder Email Date",
	"Call Count",
	"Communication Level",
	"Overall Explanation",
	"Summary",
	"Call Recording",
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

func FieldIcon(name string) string {
	if icon, ok := fieldIcons[name]; ok {
		return icon
	}
	return "file-text"
}

// FieldVariant decides badge coloring: status fields by keyword, boolean-like
// values by yes/no, everything else default.
func FieldVariant(name, value string) Variant {
	lower := strings.ToLower(value)
	if strings.Contains(strings.ToLower(name), "status") {
		switch {
		case strings.Contains(lower, "completed"), strings.Contains(lower, "passed"):
			return VariantSuccess
		case strings.Contains(lower, "pending"), strings.Contains(lower, "scheduled"):
			return VariantWarning
		case strings.Contains(lower, "failed"), strings.Contains(lower, "rejected"):
			return VariantDestructive
		}
	}
	switch lower {
	case "yes", "true":
		return VariantSuccess
	case "no", "false":
		return VariantSecondary
	}
	return VariantDefault
}

// FormatValue renders the CTC column as grouped rupees and date columns in
// short locale form. Anything that fails to parse comes back unchanged.
func FormatValue(name, value string) string {
	if value == "" {
		return value
	}
	if name == "Current CTC" {
		digits := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' {
				return r
			}
			return -1
		}, value)
		if amount, err := strconv.ParseFloat(digits, 64); err == nil {
			return "₹" + groupIndian(int64(math.Round(amount))) + " per month"
		}
		if strings.Contains(value, "₹") {
			return value
		}
		return "₹" + value
	}
	if strings.Contains(name, "Date") {
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, value); err == nil {
				return t.Format("2 Jan 2006")
			}
		}
	}
	return value
}

// IsLongText marks fields that render as scrollable paragraphs rather than
// badges.
func IsLongText(name, value string) bool {
	if _, ok := longTextFields[name]; ok {
		return true
	}
	return len(value) > 100
}

// SortFields stable-sorts field names by the pinned display order. Unknown
// names keep their relative order after all known ones.
func SortFields(names []string) []string {
	rank := func(name string) int {
		for i, n := range displayOrder {
			if n == name {
				return i
			}
		}
		return len(displayOrder)
	}
	sorted := make([]string, len(names))
	copy(sorted, names)
	// insertion sort keeps the original order on equal ranks
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && rank(sorted[j]) < rank(sorted[j-1]); j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}
	return sorted
}

// Fields builds the detail view for one candidate: empty values are skipped,
// identity fields live in the page header instead, and the rest follow the
// display order. fieldOrder is the sheet's column order for the record.
func Fields(c model.Candidate, fieldOrder []string) []FieldView {
	var names []string
	for _, name := range fieldOrder {
		if name == "Name" || name == "Email" || name == "Job Role Admin" {
			continue
		}
		if c.Get(name) != "" {
			names = append(names, name)
		}
	}
	views := make([]FieldView, 0, len(names))
	for _, name := range SortFields(names) {
		value := c.Get(name)
		views = append(views, FieldView{
			Name:     name,
			Value:    FormatValue(name, value),
			Icon:     FieldIcon(name),
			Variant:  FieldVariant(name, value),
			LongText: IsLongText(name, value),
			Link:     name == "Call Recording",
		})
	}
	return views
}

// groupIndian applies Indian digit grouping: the last three digits, then
// pairs (12,34,567).
func groupIndian(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return sign + s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	if head != "" {
		parts = append([]string{head}, parts...)
	}
	parts = append(parts, tail)
	return sign + strings.Join(parts, ",")
}
