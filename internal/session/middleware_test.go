package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protectedHandler(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		principal, ok := PrincipalFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, "admin", principal)
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_MissingToken(t *testing.T) {
	store := NewStore(1 * time.Hour)
	called := false

	handler := Middleware(store)(protectedHandler(t, &called))

	req := httptest.NewRequest("GET", "/admin/data", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called, "handler must not run without a token")
	assert.Contains(t, w.Body.String(), "auth_required")
}

func TestMiddleware_UnknownToken(t *testing.T) {
	store := NewStore(1 * time.Hour)
	called := false

	handler := Middleware(store)(protectedHandler(t, &called))

	req := httptest.NewRequest("GET", "/admin/data", nil)
	req.Header.Set(TokenHeader, "bogus")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}

func TestMiddleware_ValidToken(t *testing.T) {
	store := NewStore(1 * time.Hour)
	called := false

	token, err := store.Create("admin")
	require.NoError(t, err)

	handler := Middleware(store)(protectedHandler(t, &called))

	req := httptest.NewRequest("GET", "/admin/data", nil)
	req.Header.Set(TokenHeader, token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestMiddleware_ExpiredToken(t *testing.T) {
	store := NewStore(1 * time.Hour)
	called := false

	current := time.Now()
	store.now = func() time.Time { return current }

	token, err := store.Create("admin")
	require.NoError(t, err)

	current = current.Add(2 * time.Hour)

	handler := Middleware(store)(protectedHandler(t, &called))

	req := httptest.NewRequest("GET", "/admin/data", nil)
	req.Header.Set(TokenHeader, token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, called)
}
