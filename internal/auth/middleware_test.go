package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedEndpoint(t *testing.T, service *JWTService) (http.Handler, *bool) {
	t.Helper()
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	return service.RequireAuth(RequireAdmin(inner)), &called
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)
	handler, called := protectedEndpoint(t, service)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)
	handler, called := protectedEndpoint(t, service)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Token abc123")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestRequireAdmin_NonAdminForbidden(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)
	handler, called := protectedEndpoint(t, service)

	token, _, err := service.GenerateToken("user-1", "ali@example.com", "customer")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *called)
}

func TestRequireAdmin_AdminAllowed(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)
	handler, called := protectedEndpoint(t, service)

	token, _, err := service.GenerateToken("admin-1", "admin@example.com", "admin")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestClaimsFromContext_PopulatedByRequireAuth(t *testing.T) {
	service := NewJWTService("test-secret", time.Hour)

	var got *Claims
	handler := service.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = ClaimsFromContext(r.Context())
	}))

	token, _, err := service.GenerateToken("user-7", "sana@example.com", "customer")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, got)
	assert.Equal(t, "user-7", got.UserID)
}
