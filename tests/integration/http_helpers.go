package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/Hereaj/portfolio-api/internal/database"
	"github.com/Hereaj/portfolio-api/internal/handlers"
	middlewareCustom "github.com/Hereaj/portfolio-api/internal/middleware"
	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/Hereaj/portfolio-api/internal/routes"
	"github.com/Hereaj/portfolio-api/internal/services"
	"github.com/Hereaj/portfolio-api/internal/session"
	pkgauth "github.com/Hereaj/portfolio-api/pkg/auth"
	pkghttp "github.com/Hereaj/portfolio-api/pkg/http"
)

// Admin credentials used by every test server
const (
	TestAdminUsername = "admin"
	TestAdminPassword = "integration-test-password"
)

// CapturingEmailService records contact notifications for assertions
type CapturingEmailService struct {
	mu       sync.Mutex
	Messages []*models.ContactMessage
}

func (s *CapturingEmailService) SendContactNotification(ctx context.Context, msg *models.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, msg)
	return nil
}

// LastMessage returns the most recent captured notification
func (s *CapturingEmailService) LastMessage() *models.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Messages) == 0 {
		return nil
	}
	return s.Messages[len(s.Messages)-1]
}

// TestServer wraps httptest.Server with a real database and in-memory sessions
type TestServer struct {
	Server       *httptest.Server
	DB           *database.DB
	EmailService *CapturingEmailService
	Store        *session.Store
	Limiter      *session.Limiter
}

// NewTestServer wires the full router against the given database
func NewTestServer(db *database.DB) (*TestServer, error) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	passwordHash, err := pkgauth.HashPassword(TestAdminPassword)
	if err != nil {
		return nil, fmt.Errorf("failed to hash test password: %w", err)
	}

	heroRepo, aboutRepo, statRepo, projectRepo, skillRepo, educationRepo, contactRepo, messageRepo := InitializeRepositories(db)

	store := session.NewStore(1 * time.Hour)
	limiter := session.NewLimiter(5, 15*time.Minute)
	emailService := &CapturingEmailService{}

	authService := services.NewAuthService(TestAdminUsername, passwordHash, store, limiter, logger)
	contentService := services.NewContentService(heroRepo, aboutRepo, statRepo, projectRepo, skillRepo, educationRepo, contactRepo, logger)
	messageService := services.NewMessageService(messageRepo, emailService, logger)

	portfolioHandler := handlers.NewPortfolioHandler(contentService, messageService)
	adminHandler := handlers.NewAdminHandler(authService, contentService, &pkghttp.IPConfig{})

	router := chi.NewRouter()
	router.Use(chiMiddleware.RequestID)
	router.Use(middlewareCustom.SecurityHeaders(middlewareCustom.SecurityHeadersConfig{Env: "test"}))
	router.Use(chiMiddleware.Recoverer)

	routes.RegisterRoutes(router, portfolioHandler, adminHandler, store)

	return &TestServer{
		Server:       httptest.NewServer(router),
		DB:           db,
		EmailService: emailService,
		Store:        store,
		Limiter:      limiter,
	}, nil
}

// Close shuts down the test server
func (ts *TestServer) Close() {
	ts.Server.Close()
}

// Request performs an HTTP request against the test server
func (ts *TestServer) Request(method, path string, body interface{}, headers map[string]string) (*http.Response, error) {
	var buf io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		buf = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return ts.Server.Client().Do(req)
}

// RequestWithToken performs an authenticated request using the session header
func (ts *TestServer) RequestWithToken(method, path, token string, body interface{}) (*http.Response, error) {
	return ts.Request(method, path, body, map[string]string{
		session.TokenHeader: token,
	})
}

// LoginAsAdmin logs in with the test credentials and returns the session token
func (ts *TestServer) LoginAsAdmin() (string, error) {
	resp, err := ts.Request("POST", "/admin/login", map[string]string{
		"username": TestAdminUsername,
		"password": TestAdminPassword,
	}, nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}

	return body.Token, nil
}

// ParseJSONResponse decodes a JSON response body into target
func ParseJSONResponse(resp *http.Response, target interface{}) error {
	defer resp.Body.Close()
	return json.NewDecoder(resp.Body).Decode(target)
}

// GetErrorCode returns the machine-readable error code from an error response
func GetErrorCode(resp *http.Response) (string, error) {
	var errResp pkghttp.ErrorResponse
	if err := ParseJSONResponse(resp, &errResp); err != nil {
		return "", err
	}
	return errResp.Error, nil
}
