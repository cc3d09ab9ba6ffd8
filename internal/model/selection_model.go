package model

import (
	"regexp"
	"strings"
)

// SelectionCandidate is one scored row from the selection queue sheet. Column
// labels come straight from the gviz export and several of them carry stray
// whitespace ("Name ", "Overall Score ", "Current Organization\n"), so the
// accessors probe the known spellings before falling back.
type SelectionCandidate map[string]string

var (
	skillSplitRe = regexp.MustCompile(`[,\.\n;]+`)
	softSkillsRe = regexp.MustCompile(`(?i)\bsoft\s*skills\b\s*[:\-–—]*\s*`)
	spaceRunRe   = regexp.MustCompile(`\s+`)
)

func (s SelectionCandidate) Get(field string) string {
	return strings.TrimSpace(s[field])
}

func (s SelectionCandidate) get(fields ...string) string {
	for _, field := range fields {
		if v := strings.TrimSpace(s[field]); v != "" {
			return v
		}
	}
	return ""
}

func (s SelectionCandidate) Name() string  { return s.get("Name ", "Name") }
func (s SelectionCandidate) Email() string { return s.Get("Email") }

// Mobile is the phone column; the sheet stores it as a number.
func (s SelectionCandidate) Mobile() string { return s.get("Mobile no", "Mobile No") }

func (s SelectionCandidate) JobRole() string     { return s.Get("Job Role Candidate") }
func (s SelectionCandidate) Designation() string { return s.Get("Designation") }
func (s SelectionCandidate) QuickRead() string   { return s.Get("Quick read") }

func (s SelectionCandidate) OverallScore() string {
	return s.get("Overall Score ", "Overall Score")
}

func (s SelectionCandidate) Organization() string {
	return spaceRunRe.ReplaceAllString(s.get("Current Organization\n", "Current Organization"), " ")
}

// Typed reports whether the record has already been accepted or rejected
// server-side. Typed records are excluded from the queue.
func (s SelectionCandidate) Typed() bool {
	return s.Get("Type") != ""
}

// Skills splits the free-text skill column into clean entries, dropping any
// "Soft Skills:" label the sheet formula leaves behind.
func (s SelectionCandidate) Skills() []string {
	raw := s.Get("Technical skill")
	if raw == "" {
		return nil
	}
	var skills []string
	for _, part := range skillSplitRe.Split(raw, -1) {
		part = strings.TrimSpace(softSkillsRe.ReplaceAllString(part, ""))
		if part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}
