package integration

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDB *TestDB

func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(0)
	}

	ctx := context.Background()

	db, err := SetupTestDatabase(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up test database: %v\n", err)
		os.Exit(1)
	}
	testDB = db

	code := m.Run()

	testDB.Teardown(ctx)
	os.Exit(code)
}

func newServer(t *testing.T) *TestServer {
	t.Helper()

	require.NoError(t, testDB.CleanupTables(context.Background()))

	ts, err := NewTestServer(testDB.DB)
	require.NoError(t, err)
	t.Cleanup(ts.Close)
	return ts
}

func TestAdminEndpointsRequireSession(t *testing.T) {
	ts := newServer(t)

	resp, err := ts.Request("GET", "/admin/data", nil, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	code, err := GetErrorCode(resp)
	require.NoError(t, err)
	assert.Equal(t, "auth_required", code)
}

func TestLoginLogoutRoundTrip(t *testing.T) {
	ts := newServer(t)

	token, err := ts.LoginAsAdmin()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	resp, err := ts.RequestWithToken("GET", "/admin/data", token, nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = ts.RequestWithToken("POST", "/admin/logout", token, nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Revoked token no longer opens the door
	resp, err = ts.RequestWithToken("GET", "/admin/data", token, nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRateLimiting(t *testing.T) {
	ts := newServer(t)

	for i := 0; i < 5; i++ {
		resp, err := ts.Request("POST", "/admin/login", map[string]string{
			"username": TestAdminUsername,
			"password": "wrong-password",
		}, nil)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	}

	// Correct credentials, but the window is exhausted
	resp, err := ts.Request("POST", "/admin/login", map[string]string{
		"username": TestAdminUsername,
		"password": TestAdminPassword,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)

	code, err := GetErrorCode(resp)
	require.NoError(t, err)
	assert.Equal(t, "rate_limited", code)
}

func TestProjectCRUDRoundTrip(t *testing.T) {
	ts := newServer(t)

	token, err := ts.LoginAsAdmin()
	require.NoError(t, err)

	// Create
	resp, err := ts.RequestWithToken("POST", "/admin/projects", token, map[string]interface{}{
		"category":     "Backend",
		"title":        "Portfolio API",
		"description":  "Content management service",
		"technologies": []string{"Go", "PostgreSQL"},
		"linkText":     "View Source",
		"sortOrder":    1,
	})
	require.NoError(t, err)

	var created struct {
		Success bool `json:"success"`
		ID      int  `json:"id"`
	}
	require.NoError(t, ParseJSONResponse(resp, &created))
	assert.True(t, created.Success)
	require.NotZero(t, created.ID)

	// Visible through the public aggregate
	resp, err = ts.Request("GET", "/portfolio-data", nil, nil)
	require.NoError(t, err)

	var data struct {
		Projects []struct {
			ID           int      `json:"id"`
			Title        string   `json:"title"`
			Technologies []string `json:"technologies"`
		} `json:"projects"`
	}
	require.NoError(t, ParseJSONResponse(resp, &data))
	require.Len(t, data.Projects, 1)
	assert.Equal(t, "Portfolio API", data.Projects[0].Title)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, data.Projects[0].Technologies)

	// Update
	resp, err = ts.RequestWithToken("PUT", fmt.Sprintf("/admin/projects/%d", created.ID), token, map[string]interface{}{
		"category":    "Backend",
		"title":       "Portfolio API v2",
		"description": "Content management service",
	})
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Update of a nonexistent id is a 404
	resp, err = ts.RequestWithToken("PUT", "/admin/projects/99999", token, map[string]interface{}{
		"category":    "Backend",
		"title":       "Ghost",
		"description": "Should not exist",
	})
	require.NoError(t, err)
	code, err := GetErrorCode(resp)
	require.NoError(t, err)
	assert.Equal(t, "not_found", code)

	// Delete twice; both succeed
	for i := 0; i < 2; i++ {
		resp, err = ts.RequestWithToken("DELETE", fmt.Sprintf("/admin/projects/%d", created.ID), token, nil)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}
}

func TestHeroUpsertKeepsSingleRow(t *testing.T) {
	ts := newServer(t)

	token, err := ts.LoginAsAdmin()
	require.NoError(t, err)

	for _, name := range []string{"First Version", "Second Version"} {
		resp, err := ts.RequestWithToken("PUT", "/admin/hero", token, map[string]string{
			"name":        name,
			"title":       "Software Engineer",
			"description": "I build things.",
		})
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	var count int
	require.NoError(t, testDB.Pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM hero_info").Scan(&count))
	assert.Equal(t, 1, count)

	resp, err := ts.Request("GET", "/portfolio-data", nil, nil)
	require.NoError(t, err)

	var data struct {
		Hero struct {
			Name string `json:"name"`
		} `json:"hero"`
	}
	require.NoError(t, ParseJSONResponse(resp, &data))
	assert.Equal(t, "Second Version", data.Hero.Name)
}

func TestValidationRejectsBeforeInsert(t *testing.T) {
	ts := newServer(t)

	token, err := ts.LoginAsAdmin()
	require.NoError(t, err)

	resp, err := ts.RequestWithToken("POST", "/admin/skills", token, map[string]string{
		"category": "Languages",
		// name and level missing
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	code, err := GetErrorCode(resp)
	require.NoError(t, err)
	assert.Equal(t, "validation_error", code)

	var count int
	require.NoError(t, testDB.Pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM skills").Scan(&count))
	assert.Zero(t, count, "invalid payload must not insert a row")
}

func TestContactMessageStoredAndNotified(t *testing.T) {
	ts := newServer(t)

	resp, err := ts.Request("POST", "/contact", map[string]string{
		"name":    "Ada",
		"email":   "ada@example.com",
		"message": "Hello from the integration suite.",
	}, nil)
	require.NoError(t, err)

	var body struct {
		Success bool   `json:"success"`
		ID      string `json:"id"`
	}
	require.NoError(t, ParseJSONResponse(resp, &body))
	assert.True(t, body.Success)
	assert.NotEmpty(t, body.ID)

	var count int
	require.NoError(t, testDB.Pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM contact_messages").Scan(&count))
	assert.Equal(t, 1, count)

	last := ts.EmailService.LastMessage()
	require.NotNil(t, last)
	assert.Equal(t, "ada@example.com", last.Email)
}
