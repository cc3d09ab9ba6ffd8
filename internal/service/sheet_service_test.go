package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/movya/candidate-suite/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetService_FetchRoster(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Name,Email\nAsha,asha@example.com\n"))
	}))
	defer server.Close()

	svc := NewSheetService(&config.SheetConfig{RosterURL: server.URL})
	table, err := svc.FetchRoster(context.Background())
	require.NoError(t, err)
	require.Len(t, table.Candidates, 1)
	assert.Equal(t, "Asha", table.Candidates[0].Name())
	assert.Equal(t, []string{"Name", "Email"}, table.Headers)
}

func TestSheetService_FetchRosterErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer server.Close()

	svc := NewSheetService(&config.SheetConfig{RosterURL: server.URL})
	_, err := svc.FetchRoster(context.Background())
	assert.ErrorContains(t, err, "failed to fetch data")
}

func TestSheetService_FetchSelection(t *testing.T) {
	body := `google.visualization.Query.setResponse({"table":{` +
		`"cols":[{"label":"Name "},{"label":"Email"},{"label":"Type"}],` +
		`"rows":[{"c":[{"v":"Asha"},{"v":"asha@example.com"},null]}]}});`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	svc := NewSheetService(&config.SheetConfig{SelectionURL: server.URL})
	records, err := svc.FetchSelection(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Asha", records[0].Name())
	assert.False(t, records[0].Typed())
}

func TestSheetService_FetchSelectionBadEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>sign in</html>"))
	}))
	defer server.Close()

	svc := NewSheetService(&config.SheetConfig{SelectionURL: server.URL})
	_, err := svc.FetchSelection(context.Background())
	assert.ErrorContains(t, err, "setResponse envelope not found")
}
