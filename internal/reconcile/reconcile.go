// Package reconcile holds the pure rules that turn freshly ingested sheet
// rows into what the dashboard shows: ordering, de-duplication, queue
// filtering and the initial selection heuristic. Everything here is
// side-effect free so the rules can be tested without any fetch plumbing.
package reconcile

import "github.com/movya/candidate-suite/internal/model"

// OrderRoster partitions candidates so that pending ones come before
// completed ones. Fetch order is preserved within each partition.
func OrderRoster(candidates []model.Candidate) []model.Candidate {
	if len(candidates) == 0 {
		return candidates
	}
	ordered := make([]model.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !c.Completed() {
			ordered = append(ordered, c)
		}
	}
	for _, c := range candidates {
		if c.Completed() {
			ordered = append(ordered, c)
		}
	}
	return ordered
}

// UniqueCandidates keeps the first occurrence of every (Name, Email) pair and
// drops records with neither. Used for dropdown-style pickers, not the
// management table.
func UniqueCandidates(candidates []model.Candidate) []model.Candidate {
	seen := make(map[string]struct{}, len(candidates))
	unique := make([]model.Candidate, 0, len(candidates))
	for _, c := range candidates {
		name, email := c.Name(), c.Email()
		if name == "" && email == "" {
			continue
		}
		key := name + "|" + email
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, c)
	}
	return unique
}

// FilterUntyped keeps only selection records that have not been accepted or
// rejected yet. A Type value is written server-side once a decision lands.
func FilterUntyped(records []model.SelectionCandidate) []model.SelectionCandidate {
	filtered := make([]model.SelectionCandidate, 0, len(records))
	for _, r := range records {
		if !r.Typed() {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// AutoSelect picks the record to highlight on first load: the first completed
// candidate, else the first one with any detail beyond name and email, else
// the first record at all.
func AutoSelect(candidates []model.Candidate) (model.Candidate, bool) {
	for _, c := range candidates {
		if c.Completed() {
			return c, true
		}
	}
	for _, c := range candidates {
		if c.HasDetails() {
			return c, true
		}
	}
	if len(candidates) > 0 {
		return candidates[0], true
	}
	return nil, false
}
