package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/movya/candidate-suite/internal/config"
	"github.com/movya/candidate-suite/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newRosterAPI(url string) *RosterAPIService {
	return NewRosterAPIService(&config.WebhookConfig{ScriptURL: url})
}

func TestRosterAPIService_CreateSendsActionPayload(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	api := newRosterAPI(server.URL)
	err := api.Create(context.Background(), model.CandidateLite{
		Name:     "Asha",
		Email:    "asha@example.com",
		Phone:    "919876543210",
		JobRole:  "Backend Engineer",
		Datetime: "5/9/2025, 3:07:02 pm",
	})
	require.NoError(t, err)

	// plain text body keeps the request simple for the script endpoint
	assert.Equal(t, "text/plain;charset=UTF-8", gotContentType)
	assert.Equal(t, "create", gjson.GetBytes(gotBody, "action").String())
	assert.Equal(t, "Asha", gjson.GetBytes(gotBody, "data.Name").String())
	assert.Equal(t, "5/9/2025, 3:07:02 pm", gjson.GetBytes(gotBody, "data.Datetime").String())
}

func TestRosterAPIService_UpdateSendsKeyAndData(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	idx := 7
	api := newRosterAPI(server.URL)
	err := api.Update(context.Background(),
		model.UpdateKey{KeyName: "Asha", KeyEmail: "asha@example.com", RowIndex: &idx},
		model.CandidateLite{Name: "Asha V"},
	)
	require.NoError(t, err)

	assert.Equal(t, "update", gjson.GetBytes(gotBody, "action").String())
	assert.Equal(t, "Asha", gjson.GetBytes(gotBody, "key.keyName").String())
	assert.Equal(t, int64(7), gjson.GetBytes(gotBody, "key.rowIndex").Int())
	assert.Equal(t, "Asha V", gjson.GetBytes(gotBody, "data.Name").String())
}

func TestRosterAPIService_DeleteOmitsNilRowIndex(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	defer server.Close()

	api := newRosterAPI(server.URL)
	err := api.Delete(context.Background(), model.UpdateKey{KeyName: "Asha", KeyEmail: "asha@example.com"})
	require.NoError(t, err)

	assert.Equal(t, "delete", gjson.GetBytes(gotBody, "action").String())
	assert.False(t, gjson.GetBytes(gotBody, "key.rowIndex").Exists())
}

func TestRosterAPIService_SuccessFalseIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"Row not found"}`))
	}))
	defer server.Close()

	api := newRosterAPI(server.URL)
	err := api.Create(context.Background(), model.CandidateLite{Name: "Asha"})
	assert.EqualError(t, err, "Row not found")
}

func TestRosterAPIService_SuccessFalseWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer server.Close()

	api := newRosterAPI(server.URL)
	err := api.Create(context.Background(), model.CandidateLite{Name: "Asha"})
	assert.EqualError(t, err, "Failed")
}

func TestRosterAPIService_MissingSuccessFlagIsOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"queued"}`))
	}))
	defer server.Close()

	api := newRosterAPI(server.URL)
	assert.NoError(t, api.Create(context.Background(), model.CandidateLite{Name: "Asha"}))
}

func TestRosterAPIService_InvalidResponseBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>redirect</html>"))
	}))
	defer server.Close()

	api := newRosterAPI(server.URL)
	err := api.Create(context.Background(), model.CandidateLite{Name: "Asha"})
	assert.ErrorContains(t, err, "invalid response body")
}

func TestRosterAPIService_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	api := newRosterAPI(server.URL)
	err := api.Create(context.Background(), model.CandidateLite{Name: "Asha"})
	assert.ErrorContains(t, err, "request failed")
}

func TestRosterAPIService_UnconfiguredURL(t *testing.T) {
	api := newRosterAPI("")
	err := api.Create(context.Background(), model.CandidateLite{Name: "Asha"})
	assert.ErrorContains(t, err, "not configured")
}
