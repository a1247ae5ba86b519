package middleware

import (
	"net/http"
	"time"

	pkghttp "github.com/Hereaj/portfolio-api/pkg/http"
	"github.com/go-chi/httprate"
)

// RateLimitConfig holds rate limiting configuration for an endpoint group
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// LoginRateLimit caps raw login traffic per IP. The per-origin failed
// attempt window inside the auth service is the real credential guard;
// this one just keeps a single client from hammering the endpoint.
func LoginRateLimit() RateLimitConfig {
	return RateLimitConfig{Requests: 30, Window: 1 * time.Minute}
}

// ContactRateLimit keeps the public contact form from being used as a
// spam relay.
func ContactRateLimit() RateLimitConfig {
	return RateLimitConfig{Requests: 5, Window: 1 * time.Minute}
}

// RateLimitByIP creates a middleware that rate limits requests by client IP
func RateLimitByIP(config RateLimitConfig) func(next http.Handler) http.Handler {
	return httprate.Limit(
		config.Requests,
		config.Window,
		httprate.WithKeyByRealIP(),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			pkghttp.WriteRateLimited(w, "too many requests, slow down")
		}),
	)
}
