package services

import (
	"context"
	"crypto/subtle"
	"log/slog"

	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/Hereaj/portfolio-api/internal/session"
	pkgauth "github.com/Hereaj/portfolio-api/pkg/auth"
)

// AuthService converts admin credentials into session tokens and enforces
// brute-force resistance per calling origin.
type AuthService struct {
	username     string
	passwordHash string
	store        *session.Store
	limiter      *session.Limiter
	logger       *slog.Logger
}

func NewAuthService(username, passwordHash string, store *session.Store, limiter *session.Limiter, logger *slog.Logger) *AuthService {
	return &AuthService{
		username:     username,
		passwordHash: passwordHash,
		store:        store,
		limiter:      limiter,
		logger:       logger,
	}
}

// Login checks the attempt counter before the credentials, so an origin
// over the threshold is rejected even when the pair is correct. A success
// resets the origin's counter and mints a fresh token; a failure counts
// against the origin.
func (s *AuthService) Login(ctx context.Context, username, password, origin string) (string, error) {
	if !s.limiter.Allow(origin) {
		s.logger.Warn("login rate limited", slog.String("origin", origin))
		return "", models.ErrRateLimited
	}

	if !s.credentialsMatch(username, password) {
		s.limiter.RecordFailure(origin)
		s.logger.Warn("login failed", slog.String("origin", origin))
		return "", models.ErrInvalidCredentials
	}

	s.limiter.Reset(origin)

	token, err := s.store.Create(username)
	if err != nil {
		s.logger.Error("failed to mint session token", slog.Any("error", err))
		return "", models.ErrInternalServer
	}

	s.logger.Info("admin login", slog.String("origin", origin))
	return token, nil
}

// Logout revokes the token. Revoking an unknown or already-expired token
// is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) {
	s.store.Destroy(token)
}

func (s *AuthService) credentialsMatch(username, password string) bool {
	// Evaluate both factors unconditionally to keep timing uniform
	usernameOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passwordOK := pkgauth.ComparePassword(s.passwordHash, password) == nil
	return usernameOK && passwordOK
}
