package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edalchemy/edalchemy-api/internal/auth"
)

func newAuthFixture(t *testing.T, ttl time.Duration) (*auth.TokenService, http.Handler, *string) {
	t.Helper()

	tokens := auth.NewTokenService("auth-secret", ttl, "reset-secret", 15*time.Minute)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := UserIDFromContext(r.Context())
		require.True(t, ok)
		gotUserID = id
		w.WriteHeader(http.StatusOK)
	})

	return tokens, Authenticate(tokens)(next), &gotUserID
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens, handler, gotUserID := newAuthFixture(t, time.Hour)

	token, err := tokens.GenerateToken("user-123")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-123", *gotUserID)
}

func TestAuthenticate_BearerPrefixIsCaseInsensitive(t *testing.T) {
	tokens, handler, _ := newAuthFixture(t, time.Hour)

	token, err := tokens.GenerateToken("user-123")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	_, handler, _ := newAuthFixture(t, time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "No token provided", body["message"])
}

func TestAuthenticate_InvalidAndExpiredLookTheSame(t *testing.T) {
	tokens, _, _ := newAuthFixture(t, time.Hour)
	expiredTokens, expiredHandler, _ := newAuthFixture(t, -1*time.Second)

	expired, err := expiredTokens.GenerateToken("user-123")
	require.NoError(t, err)

	garbage, err := tokens.GenerateToken("user-123")
	require.NoError(t, err)
	garbage += "tampered"

	responses := make([]*httptest.ResponseRecorder, 0, 2)
	for _, tokenStr := range []string{expired, garbage} {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		rec := httptest.NewRecorder()
		expiredHandler.ServeHTTP(rec, req)
		responses = append(responses, rec)
	}

	// Expired and tampered tokens are indistinguishable to the caller.
	assert.Equal(t, http.StatusUnauthorized, responses[0].Code)
	assert.Equal(t, http.StatusUnauthorized, responses[1].Code)
	assert.Equal(t, responses[0].Body.String(), responses[1].Body.String())
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	_, handler, _ := newAuthFixture(t, time.Hour)

	for _, header := range []string{"Bearer", "Basic abc123", "justatoken"} {
		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}
