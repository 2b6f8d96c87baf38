package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstanoeva/movienotes/internal/config"
	"github.com/avstanoeva/movienotes/internal/logger"
	"github.com/avstanoeva/movienotes/internal/notes/models"
	"github.com/avstanoeva/movienotes/internal/notes/service"
	"github.com/avstanoeva/movienotes/internal/notes/store"
	"github.com/avstanoeva/movienotes/internal/utils"
)

// newTestServer spins up the full stack over a fresh in-memory backend.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.Nop()
	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "test-sign-key",
			TokenIssuer:   "noteapp-test",
			TokenDuration: time.Hour,
		},
	}

	storages, err := store.NewStorages(context.Background(), config.Storage{Backend: config.BackendMemory}, log)
	require.NoError(t, err)

	services := service.NewServices(storages, cfg, log)
	tokens := utils.NewTokenManager(cfg.App.TokenSignKey, cfg.App.TokenIssuer)
	h := NewHandler(services, tokens, log)

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(raw))
	} else {
		reader = strings.NewReader("")
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func registerAndLogin(t *testing.T, srv *httptest.Server, username string) string {
	t.Helper()

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/user/register", "", models.RegisterUserDTO{
		FirstName:       "Jane",
		LastName:        "Doe",
		Username:        username,
		Password:        "secret123",
		ConfirmPassword: "secret123",
		Age:             34,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/user/login", "", models.LoginUserDTO{
		Username: username,
		Password: "secret123",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var token string
	_, err := fmt.Fscan(resp.Body, &token)
	resp.Body.Close()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	return token
}

func TestRegister_StatusMapping(t *testing.T) {
	srv := newTestServer(t)

	t.Run("invalid body", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/user/register", strings.NewReader("{not json"))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("underage registrant", func(t *testing.T) {
		resp := doJSON(t, http.MethodPost, srv.URL+"/api/user/register", "", models.RegisterUserDTO{
			Username:        "kiddo",
			Password:        "secret123",
			ConfirmPassword: "secret123",
			Age:             11,
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		registerAndLogin(t, srv, "janedoe")

		resp := doJSON(t, http.MethodPost, srv.URL+"/api/user/register", "", models.RegisterUserDTO{
			Username:        "janedoe",
			Password:        "secret123",
			ConfirmPassword: "secret123",
			Age:             34,
		})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})
}

func TestNoteRoutes_RequireAuth(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/note"},
		{http.MethodGet, "/api/note/1"},
		{http.MethodPost, "/api/note"},
		{http.MethodPut, "/api/note"},
		{http.MethodDelete, "/api/note/1"},
		{http.MethodPost, "/api/user/change-password"},
		{http.MethodPut, "/api/user/update-details"},
		{http.MethodDelete, "/api/user/delete/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			resp := doJSON(t, tt.method, srv.URL+tt.path, "", nil)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}

func TestNoteCRUDFlow(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "janedoe")

	// Listing before any note exists is a 404, not an empty list.
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/note", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/note", token, models.AddNoteDTO{
		Text:     "book dentist appointment",
		Priority: models.PriorityHigh,
		Tag:      models.TagHealth,
		UserID:   1,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created models.NoteDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	assert.Equal(t, "book dentist appointment", created.Text)
	assert.Equal(t, "Jane Doe", created.OwnerFullName)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/note", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listed []models.NoteDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	resp.Body.Close()
	require.Len(t, listed, 1)
	assert.Equal(t, models.TagHealth, listed[0].Tag)

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/note", token, models.UpdateNoteDTO{
		ID:       1,
		Text:     "reschedule dentist appointment",
		Priority: models.PriorityLow,
		Tag:      models.TagHealth,
		UserID:   1,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated models.NoteDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	resp.Body.Close()
	assert.Equal(t, "reschedule dentist appointment", updated.Text)
	assert.Equal(t, models.PriorityLow, updated.Priority)

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/note/1", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/note/1", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestAddNote_ValidationIs400(t *testing.T) {
	srv := newTestServer(t)
	token := registerAndLogin(t, srv, "janedoe")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/note", token, models.AddNoteDTO{
		Text:     strings.Repeat("x", 101),
		Priority: models.PriorityLow,
		Tag:      models.TagWork,
		UserID:   1,
	})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
