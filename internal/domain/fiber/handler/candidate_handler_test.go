package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/movya/candidate-suite/internal/config"
	"github.com/movya/candidate-suite/internal/repository"
	"github.com/movya/candidate-suite/internal/service"
	"github.com/movya/candidate-suite/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	rosterServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("Name,Email,Phone Number,Interview Status\n" +
			"Asha,asha@example.com,919876543210,Completed\n" +
			"Ravi,ravi@example.com,919123456780,\n"))
	}))
	t.Cleanup(rosterServer.Close)

	scriptServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	}))
	t.Cleanup(scriptServer.Close)

	webhookConfig := &config.WebhookConfig{ScriptURL: scriptServer.URL, ActionURL: scriptServer.URL}
	store := repository.NewFileTimestampStore(filepath.Join(t.TempDir(), "ts.json"))
	uc := usecase.NewCandidateUsecase(
		service.NewSheetService(&config.SheetConfig{RosterURL: rosterServer.URL}),
		service.NewRosterAPIService(webhookConfig),
		service.NewWebhookService(webhookConfig),
		store,
	)
	require.NoError(t, uc.Refresh(context.Background()))

	app := fiber.New()
	NewCandidateHandler(uc).RegisterRoutes(app)
	return app
}

func body(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}

func TestCandidateHandler_List(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	payload := body(t, resp)
	assert.True(t, gjson.Get(payload, "success").Bool())
	assert.Equal(t, int64(2), gjson.Get(payload, "meta.total").Int())
	// pending sorts before completed
	assert.Equal(t, "Ravi", gjson.Get(payload, "data.0.fields.Name").String())
	assert.Equal(t, "Pending", gjson.Get(payload, "data.0.status").String())
	assert.Equal(t, "Asha", gjson.Get(payload, "meta.auto_selected.Name").String())
}

func TestCandidateHandler_ListPagination(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates?page=2&page_size=1", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	payload := body(t, resp)
	require.Equal(t, int64(1), gjson.Get(payload, "data.#").Int())
	assert.Equal(t, "Asha", gjson.Get(payload, "data.0.fields.Name").String())
	assert.Equal(t, int64(2), gjson.Get(payload, "pagination.page").Int())
	assert.Equal(t, int64(2), gjson.Get(payload, "pagination.total_pages").Int())
	assert.False(t, gjson.Get(payload, "pagination.has_more").Bool())
}

func TestCandidateHandler_DetailNotFound(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates/detail?name=Nobody&email=nobody@example.com", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	payload := body(t, resp)
	assert.False(t, gjson.Get(payload, "success").Bool())
}

func TestCandidateHandler_Detail(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/candidates/detail?name=Asha&email=asha@example.com", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	payload := body(t, resp)
	assert.Equal(t, "Completed", gjson.Get(payload, "data.status").String())
	assert.True(t, gjson.Get(payload, "data.first_seen").Exists())
}

func TestCandidateHandler_CreateValidationError(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/candidates",
		strings.NewReader(`{"Name":"Meera","Email":"not-an-email","Phone Number":"123","Job Role Admin":"QA"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	payload := body(t, resp)
	assert.True(t, gjson.Get(payload, "details.Email").Exists())
}

func TestCandidateHandler_CreateDuplicateConflict(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/candidates",
		strings.NewReader(`{"Name":"Asha","Email":"asha@example.com","Phone Number":"919876543210","Job Role Admin":"Backend Engineer"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}
