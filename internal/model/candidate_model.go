package model

import "strings"

// Candidate is one roster row. The sheet owns the column vocabulary, so a
// record is an open key/value map with typed accessors for the columns the
// app depends on. Any column may be absent or empty.
type Candidate map[string]string

func (c Candidate) Get(field string) string {
	return strings.TrimSpace(c[field])
}

func (c Candidate) Name() string    { return c.Get("Name") }
func (c Candidate) Email() string   { return c.Get("Email") }
func (c Candidate) Phone() string   { return c.Get("Phone Number") }
func (c Candidate) JobRole() string { return c.Get("Job Role Admin") }

// Completed reports whether any interview-related column has been filled in.
func (c Candidate) Completed() bool {
	return c.Get("Interview Status") != "" ||
		c.Get("Interview Scheduled") != "" ||
		c.Get("Interview Date") != ""
}

func (c Candidate) Status() string {
	if c.Completed() {
		return "Completed"
	}
	return "Pending"
}

// HasDetails reports whether the record carries anything beyond its identity.
func (c Candidate) HasDetails() bool {
	for field, value := range c {
		if field == "Name" || field == "Email" {
			continue
		}
		if strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}

// CandidateLite is the payload shape the Apps Script endpoint accepts. JSON
// keys match the sheet's column headers verbatim.
type CandidateLite struct {
	Name     string `json:"Name"`
	Email    string `json:"Email"`
	Phone    string `json:"Phone Number"`
	JobRole  string `json:"Job Role Admin"`
	Datetime string `json:"Datetime"`
}

// UpdateKey addresses a roster row for update/delete. RowIndex is a hint the
// action webhook may supply; the sheet side falls back to name+email lookup.
type UpdateKey struct {
	KeyName  string `json:"keyName"`
	KeyEmail string `json:"keyEmail"`
	RowIndex *int   `json:"rowIndex,omitempty"`
}
