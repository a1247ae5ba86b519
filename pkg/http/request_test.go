package http

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClientOrigin_RemoteAddrOnly(t *testing.T) {
	req := httptest.NewRequest("POST", "/admin/login", nil)
	req.RemoteAddr = "203.0.113.7:54321"

	assert.Equal(t, "203.0.113.7", ClientOrigin(req, nil))
}

func TestClientOrigin_IgnoresForwardedForFromUntrustedPeer(t *testing.T) {
	req := httptest.NewRequest("POST", "/admin/login", nil)
	req.RemoteAddr = "203.0.113.7:54321"
	req.Header.Set("X-Forwarded-For", "198.51.100.1")

	config := &IPConfig{TrustedProxies: []string{"10.0.0.0/8"}}
	assert.Equal(t, "203.0.113.7", ClientOrigin(req, config))
}

func TestClientOrigin_HonorsForwardedForFromTrustedProxy(t *testing.T) {
	req := httptest.NewRequest("POST", "/admin/login", nil)
	req.RemoteAddr = "10.1.2.3:443"
	req.Header.Set("X-Forwarded-For", "198.51.100.1, 10.1.2.3")

	config := &IPConfig{TrustedProxies: []string{"10.0.0.0/8"}}
	assert.Equal(t, "198.51.100.1", ClientOrigin(req, config))
}

func TestClientOrigin_FallsBackToRealIP(t *testing.T) {
	req := httptest.NewRequest("POST", "/admin/login", nil)
	req.RemoteAddr = "10.1.2.3:443"
	req.Header.Set("X-Forwarded-For", "not-an-ip")
	req.Header.Set("X-Real-IP", "198.51.100.2")

	config := &IPConfig{TrustedProxies: []string{"10.0.0.0/8"}}
	assert.Equal(t, "198.51.100.2", ClientOrigin(req, config))
}
