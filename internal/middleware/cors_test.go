package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Hereaj/portfolio-api/internal/session"
	"github.com/stretchr/testify/assert"
)

func newCORSHandler(origins ...string) http.Handler {
	return CORS(NewCORSConfig(origins))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)
}

func TestCORS_AllowedOrigin(t *testing.T) {
	handler := newCORSHandler("https://hereaj.dev")

	req := httptest.NewRequest("GET", "/portfolio-data", nil)
	req.Header.Set("Origin", "https://hereaj.dev")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, "https://hereaj.dev", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), session.TokenHeader)
}

func TestCORS_UnknownOriginGetsNoHeaders(t *testing.T) {
	handler := newCORSHandler("https://hereaj.dev")

	req := httptest.NewRequest("GET", "/portfolio-data", nil)
	req.Header.Set("Origin", "https://evil.example")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	reached := false
	handler := CORS(NewCORSConfig([]string{"https://hereaj.dev"}))(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reached = true
		}),
	)

	req := httptest.NewRequest("OPTIONS", "/admin/hero", nil)
	req.Header.Set("Origin", "https://hereaj.dev")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, reached, "preflight should never reach the handler")
}
