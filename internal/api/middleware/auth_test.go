package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestAuth_ValidToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.IssueToken(42, "ivanov@hotel.local", "manager")
	require.NoError(t, err)

	var called bool
	var gotUserID int64
	var gotRole string
	handler := manager.Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		gotUserID, _ = GetUserID(r.Context())
		gotRole, _ = GetUserRole(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called, "запрос с валидным токеном должен дойти до обработчика")
	assert.Equal(t, int64(42), gotUserID, "ID пользователя должен попасть в контекст")
	assert.Equal(t, "manager", gotRole, "роль пользователя должна попасть в контекст")
}

func TestAuth_MissingToken(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	var called bool
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	rec := httptest.NewRecorder()

	manager.Auth(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Equal(t, msgMissingToken, errorMessage(t, rec))
}

func TestAuth_MalformedHeader(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	var called bool
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Token abc123")
	rec := httptest.NewRecorder()

	manager.Auth(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Equal(t, msgInvalidToken, errorMessage(t, rec))
}

func TestAuth_InvalidSignature(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	token, err := other.IssueToken(42, "ivanov@hotel.local", "manager")
	require.NoError(t, err)

	var called bool
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	manager.Auth(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Equal(t, msgInvalidToken, errorMessage(t, rec))
}

func TestAuth_ExpiredToken(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)

	token, err := manager.IssueToken(42, "ivanov@hotel.local", "manager")
	require.NoError(t, err)

	var called bool
	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	manager.Auth(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
	assert.Equal(t, msgExpiredToken, errorMessage(t, rec),
		"просроченный токен должен отличаться от битого в сообщении оператору")
}

func TestParseToken_RoundTrip(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	token, err := manager.IssueToken(7, "petrova@hotel.local", "frontdesk")
	require.NoError(t, err)

	claims, err := manager.ParseToken(token)
	require.NoError(t, err)

	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "petrova@hotel.local", claims.Email)
	assert.Equal(t, "frontdesk", claims.Role)
}
