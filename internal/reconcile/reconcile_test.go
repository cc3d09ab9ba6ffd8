package reconcile

import (
	"testing"

	"github.com/movya/candidate-suite/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRoster_PendingBeforeCompleted(t *testing.T) {
	roster := []model.Candidate{
		{"Name": "A", "Interview Status": "Completed"},
		{"Name": "B"},
		{"Name": "C", "Interview Scheduled": "Yes"},
		{"Name": "D"},
	}

	ordered := OrderRoster(roster)
	require.Len(t, ordered, 4)
	assert.Equal(t, "B", ordered[0].Name())
	assert.Equal(t, "D", ordered[1].Name())
	assert.Equal(t, "A", ordered[2].Name())
	assert.Equal(t, "C", ordered[3].Name())
}

func TestOrderRoster_InterviewDateCountsAsCompleted(t *testing.T) {
	roster := []model.Candidate{
		{"Name": "A", "Interview Date": "2025-09-05"},
		{"Name": "B"},
	}

	ordered := OrderRoster(roster)
	assert.Equal(t, "B", ordered[0].Name())
	assert.Equal(t, "A", ordered[1].Name())
}

func TestOrderRoster_Empty(t *testing.T) {
	assert.Empty(t, OrderRoster(nil))
}

func TestUniqueCandidates_FirstOccurrenceWins(t *testing.T) {
	roster := []model.Candidate{
		{"Name": "Asha", "Email": "asha@example.com", "Phone Number": "111"},
		{"Name": "Asha", "Email": "asha@example.com", "Phone Number": "222"},
		{"Name": "Ravi", "Email": "ravi@example.com"},
	}

	unique := UniqueCandidates(roster)
	require.Len(t, unique, 2)
	assert.Equal(t, "111", unique[0].Phone())
	assert.Equal(t, "Ravi", unique[1].Name())
}

func TestUniqueCandidates_SkipsEmptyIdentity(t *testing.T) {
	roster := []model.Candidate{
		{"Phone Number": "111"},
		{"Name": "Asha"},
		{"Email": "ravi@example.com"},
	}

	unique := UniqueCandidates(roster)
	require.Len(t, unique, 2)
	assert.Equal(t, "Asha", unique[0].Name())
	assert.Equal(t, "ravi@example.com", unique[1].Email())
}

func TestFilterUntyped_RemovesDecidedRecords(t *testing.T) {
	records := []model.SelectionCandidate{
		{"Name ": "Asha", "Type": "Accept"},
		{"Name ": "Ravi"},
		{"Name ": "Meera", "Type": "Reject"},
	}

	filtered := FilterUntyped(records)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Ravi", filtered[0].Name())
}

func TestAutoSelect_PrefersCompleted(t *testing.T) {
	roster := []model.Candidate{
		{"Name": "A", "Summary": "strong"},
		{"Name": "B", "Interview Status": "Completed"},
	}

	selected, ok := AutoSelect(roster)
	require.True(t, ok)
	assert.Equal(t, "B", selected.Name())
}

func TestAutoSelect_FallsBackToDetailed(t *testing.T) {
	roster := []model.Candidate{
		{"Name": "A", "Email": "a@example.com"},
		{"Name": "B", "Summary": "strong"},
	}

	selected, ok := AutoSelect(roster)
	require.True(t, ok)
	assert.Equal(t, "B", selected.Name())
}

func TestAutoSelect_FallsBackToFirst(t *testing.T) {
	roster := []model.Candidate{
		{"Name": "A", "Email": "a@example.com"},
		{"Name": "B", "Email": "b@example.com"},
	}

	selected, ok := AutoSelect(roster)
	require.True(t, ok)
	assert.Equal(t, "A", selected.Name())
}

func TestAutoSelect_Empty(t *testing.T) {
	_, ok := AutoSelect(nil)
	assert.False(t, ok)
}
