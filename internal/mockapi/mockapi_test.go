package mockapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestServer_createUser_validation(t *testing.T) {
	h := New().Handler()

	rec := do(t, h, http.MethodPost, "/users", "", map[string]string{"name": "John", "email": "john@example.com", "password": "123"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Validation failed")
}

func TestServer_auth_required(t *testing.T) {
	h := New().Handler()

	rec := do(t, h, http.MethodPut, "/profile", "", map[string]string{"name": "John"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPut, "/profile", "unknown", map[string]string{"name": "John"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestServer_profile_email_change_keeps_session(t *testing.T) {
	s := New()
	h := s.Handler()
	_, token := s.Seed("John", "john@example.com", "123456")

	rec := do(t, h, http.MethodPut, "/profile", token, map[string]string{"name": "John", "email": "new@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPut, "/profile", token, map[string]string{"name": "Johnny", "email": "new@example.com"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Johnny")
}

func TestServer_profile_password_requires_old(t *testing.T) {
	s := New()
	h := s.Handler()
	_, token := s.Seed("John", "john@example.com", "123456")

	rec := do(t, h, http.MethodPut, "/profile", token, map[string]string{
		"name": "John", "email": "john@example.com", "password": "654321", "password_confirmation": "654321",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "old password")
}

func TestServer_avatar_requires_file(t *testing.T) {
	s := New()
	h := s.Handler()
	_, token := s.Seed("John", "john@example.com", "123456")

	rec := do(t, h, http.MethodPatch, "/users/avatar", token, map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ResetToken_unknown(t *testing.T) {
	_, ok := New().ResetToken("nobody@example.com")
	assert.False(t, ok)
}
