package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/Hereaj/portfolio-api/internal/services"
	pkghttp "github.com/Hereaj/portfolio-api/pkg/http"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// NewTestRequest creates an HTTP request with JSON body for testing
func NewTestRequest(t *testing.T, method, url string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// AssertJSONResponse checks that response has correct status and decodes JSON body
func AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")

	contentType := w.Header().Get("Content-Type")
	assert.Equal(t, "application/json", contentType, "Content-Type should be application/json")

	if target != nil {
		err := json.Unmarshal(w.Body.Bytes(), target)
		assert.NoError(t, err, "Failed to decode response JSON")
	}
}

// AssertErrorResponse checks that response is a valid error response
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedError string) pkghttp.ErrorResponse {
	assert.Equal(t, expectedStatus, w.Code, "Response status mismatch")

	var resp pkghttp.ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err, "Failed to decode error response")
	assert.Equal(t, expectedError, resp.Error, "Error code mismatch")
	assert.NotEmpty(t, resp.Message, "Error message should not be empty")
	return resp
}

// WithChiRouteContext injects chi URL parameters into the request context
func WithChiRouteContext(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for key, value := range params {
		rctx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// WithChiIDFromURL sets the trailing path segment as the chi "id" parameter,
// so tests can exercise endpoints like /admin/stats/{id} without a router.
func WithChiIDFromURL(r *http.Request) *http.Request {
	parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")
	if len(parts) >= 2 {
		return WithChiRouteContext(r, map[string]string{
			"id": parts[len(parts)-1],
		})
	}
	return r
}

// MockAuthService implements AuthService for testing
type MockAuthService struct {
	LoginFunc  func(ctx context.Context, username, password, origin string) (string, error)
	LogoutFunc func(ctx context.Context, token string)
}

func (m *MockAuthService) Login(ctx context.Context, username, password, origin string) (string, error) {
	if m.LoginFunc == nil {
		return "", models.ErrInvalidCredentials
	}
	return m.LoginFunc(ctx, username, password, origin)
}

func (m *MockAuthService) Logout(ctx context.Context, token string) {
	if m.LogoutFunc != nil {
		m.LogoutFunc(ctx, token)
	}
}

// MockContentService implements ContentService for testing
type MockContentService struct {
	UpdateHeroFunc  func(ctx context.Context, hero *models.Hero) error
	UpdateAboutFunc func(ctx context.Context, about *models.About) error

	CreateStatFunc func(ctx context.Context, stat *models.Stat) (int, error)
	UpdateStatFunc func(ctx context.Context, id int, stat *models.Stat) error
	DeleteStatFunc func(ctx context.Context, id int) error

	CreateProjectFunc func(ctx context.Context, project *models.Project) (int, error)
	UpdateProjectFunc func(ctx context.Context, id int, project *models.Project) error
	DeleteProjectFunc func(ctx context.Context, id int) error

	CreateSkillFunc func(ctx context.Context, skill *models.Skill) (int, error)
	UpdateSkillFunc func(ctx context.Context, id int, skill *models.Skill) error
	DeleteSkillFunc func(ctx context.Context, id int) error

	CreateEducationFunc func(ctx context.Context, entry *models.EducationEntry) (int, error)
	UpdateEducationFunc func(ctx context.Context, id int, entry *models.EducationEntry) error
	DeleteEducationFunc func(ctx context.Context, id int) error

	AdminSnapshotFunc func(ctx context.Context) (*services.AdminSnapshot, error)
	ExportFunc        func(ctx context.Context) (*services.ExportSnapshot, error)
}

func (m *MockContentService) UpdateHero(ctx context.Context, hero *models.Hero) error {
	if m.UpdateHeroFunc == nil {
		return nil
	}
	return m.UpdateHeroFunc(ctx, hero)
}

func (m *MockContentService) UpdateAbout(ctx context.Context, about *models.About) error {
	if m.UpdateAboutFunc == nil {
		return nil
	}
	return m.UpdateAboutFunc(ctx, about)
}

func (m *MockContentService) CreateStat(ctx context.Context, stat *models.Stat) (int, error) {
	if m.CreateStatFunc == nil {
		return 1, nil
	}
	return m.CreateStatFunc(ctx, stat)
}

func (m *MockContentService) UpdateStat(ctx context.Context, id int, stat *models.Stat) error {
	if m.UpdateStatFunc == nil {
		return nil
	}
	return m.UpdateStatFunc(ctx, id, stat)
}

func (m *MockContentService) DeleteStat(ctx context.Context, id int) error {
	if m.DeleteStatFunc == nil {
		return nil
	}
	return m.DeleteStatFunc(ctx, id)
}

func (m *MockContentService) CreateProject(ctx context.Context, project *models.Project) (int, error) {
	if m.CreateProjectFunc == nil {
		return 1, nil
	}
	return m.CreateProjectFunc(ctx, project)
}

func (m *MockContentService) UpdateProject(ctx context.Context, id int, project *models.Project) error {
	if m.UpdateProjectFunc == nil {
		return nil
	}
	return m.UpdateProjectFunc(ctx, id, project)
}

func (m *MockContentService) DeleteProject(ctx context.Context, id int) error {
	if m.DeleteProjectFunc == nil {
		return nil
	}
	return m.DeleteProjectFunc(ctx, id)
}

func (m *MockContentService) CreateSkill(ctx context.Context, skill *models.Skill) (int, error) {
	if m.CreateSkillFunc == nil {
		return 1, nil
	}
	return m.CreateSkillFunc(ctx, skill)
}

func (m *MockContentService) UpdateSkill(ctx context.Context, id int, skill *models.Skill) error {
	if m.UpdateSkillFunc == nil {
		return nil
	}
	return m.UpdateSkillFunc(ctx, id, skill)
}

func (m *MockContentService) DeleteSkill(ctx context.Context, id int) error {
	if m.DeleteSkillFunc == nil {
		return nil
	}
	return m.DeleteSkillFunc(ctx, id)
}

func (m *MockContentService) CreateEducation(ctx context.Context, entry *models.EducationEntry) (int, error) {
	if m.CreateEducationFunc == nil {
		return 1, nil
	}
	return m.CreateEducationFunc(ctx, entry)
}

func (m *MockContentService) UpdateEducation(ctx context.Context, id int, entry *models.EducationEntry) error {
	if m.UpdateEducationFunc == nil {
		return nil
	}
	return m.UpdateEducationFunc(ctx, id, entry)
}

func (m *MockContentService) DeleteEducation(ctx context.Context, id int) error {
	if m.DeleteEducationFunc == nil {
		return nil
	}
	return m.DeleteEducationFunc(ctx, id)
}

func (m *MockContentService) AdminSnapshot(ctx context.Context) (*services.AdminSnapshot, error) {
	if m.AdminSnapshotFunc == nil {
		return &services.AdminSnapshot{}, nil
	}
	return m.AdminSnapshotFunc(ctx)
}

func (m *MockContentService) Export(ctx context.Context) (*services.ExportSnapshot, error) {
	if m.ExportFunc == nil {
		return &services.ExportSnapshot{}, nil
	}
	return m.ExportFunc(ctx)
}

// MockPortfolioService implements PortfolioService for testing
type MockPortfolioService struct {
	PortfolioDataFunc func(ctx context.Context) (*services.PortfolioData, error)
}

func (m *MockPortfolioService) PortfolioData(ctx context.Context) (*services.PortfolioData, error) {
	if m.PortfolioDataFunc == nil {
		return &services.PortfolioData{}, nil
	}
	return m.PortfolioDataFunc(ctx)
}

// MockMessageService implements MessageService for testing
type MockMessageService struct {
	SubmitFunc func(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error)
}

func (m *MockMessageService) Submit(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	if m.SubmitFunc == nil {
		return msg, nil
	}
	return m.SubmitFunc(ctx, msg)
}
