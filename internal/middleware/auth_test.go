package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avstanoeva/movienotes/internal/utils"
)

func authedHandler(t *testing.T, wantID int64) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		caller, ok := utils.GetCallerFromContext(r.Context())
		require.True(t, ok, "caller identity missing from context")
		assert.Equal(t, wantID, caller.UserID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth_ValidToken(t *testing.T) {
	tokens := utils.NewTokenManager("sign-key", "movieapp")
	tokenString, err := tokens.Issue("Jane Doe", 42, "janedoe", time.Hour)
	require.NoError(t, err)

	handler := Auth(tokens)(authedHandler(t, 42))

	r := httptest.NewRequest(http.MethodGet, "/api/movie", nil)
	r.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	tokens := utils.NewTokenManager("sign-key", "movieapp")
	handler := Auth(tokens)(http.NotFoundHandler())

	r := httptest.NewRequest(http.MethodGet, "/api/movie", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedHeader(t *testing.T) {
	tokens := utils.NewTokenManager("sign-key", "movieapp")
	handler := Auth(tokens)(http.NotFoundHandler())

	r := httptest.NewRequest(http.MethodGet, "/api/movie", nil)
	r.Header.Set("Authorization", "Bearer")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	tokens := utils.NewTokenManager("sign-key", "movieapp")
	tokenString, err := tokens.Issue("Jane Doe", 42, "janedoe", -time.Minute)
	require.NoError(t, err)

	handler := Auth(tokens)(http.NotFoundHandler())

	r := httptest.NewRequest(http.MethodGet, "/api/movie", nil)
	r.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_TokenSignedWithDifferentKey(t *testing.T) {
	foreign := utils.NewTokenManager("other-key", "movieapp")
	tokenString, err := foreign.Issue("Jane Doe", 42, "janedoe", time.Hour)
	require.NoError(t, err)

	tokens := utils.NewTokenManager("sign-key", "movieapp")
	handler := Auth(tokens)(http.NotFoundHandler())

	r := httptest.NewRequest(http.MethodGet, "/api/movie", nil)
	r.Header.Set("Authorization", "Bearer "+tokenString)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, r)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
