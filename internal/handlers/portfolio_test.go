package handlers_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/Hereaj/portfolio-api/internal/handlers"
	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/Hereaj/portfolio-api/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestGetPortfolioData_Success(t *testing.T) {
	portfolio := &handlers.MockPortfolioService{
		PortfolioDataFunc: func(ctx context.Context) (*services.PortfolioData, error) {
			return &services.PortfolioData{
				Hero: &models.Hero{Name: "Jaehyeon Ahn", Title: "Software Engineer"},
				Skills: map[string][]*models.Skill{
					"Languages": {{Name: "Go", Level: "Advanced"}},
				},
			}, nil
		},
	}

	handler := handlers.NewPortfolioHandler(portfolio, &handlers.MockMessageService{})
	req := handlers.NewTestRequest(t, "GET", "/portfolio-data", nil)

	w := httptest.NewRecorder()
	handler.GetData(w, req)

	assert.Equal(t, 200, w.Code)

	var body map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "hero")
	assert.Contains(t, body, "skills")
}

func TestGetPortfolioData_StorageError(t *testing.T) {
	portfolio := &handlers.MockPortfolioService{
		PortfolioDataFunc: func(ctx context.Context) (*services.PortfolioData, error) {
			return nil, models.ErrInternalServer
		},
	}

	handler := handlers.NewPortfolioHandler(portfolio, &handlers.MockMessageService{})
	req := handlers.NewTestRequest(t, "GET", "/portfolio-data", nil)

	w := httptest.NewRecorder()
	handler.GetData(w, req)

	handlers.AssertErrorResponse(t, w, 500, "storage_error")
}

func TestSubmitContact_Success(t *testing.T) {
	messages := &handlers.MockMessageService{
		SubmitFunc: func(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
			assert.Equal(t, "Ada", msg.Name)
			assert.Equal(t, "ada@example.com", msg.Email)
			stored := *msg
			stored.ID = "8c1b2a64-3f1c-4d5e-9f60-1a2b3c4d5e6f"
			return &stored, nil
		},
	}

	handler := handlers.NewPortfolioHandler(&handlers.MockPortfolioService{}, messages)
	req := handlers.NewTestRequest(t, "POST", "/contact", handlers.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hi, I would like to talk.",
	})

	w := httptest.NewRecorder()
	handler.SubmitContact(w, req)

	var resp handlers.ContactResponse
	handlers.AssertJSONResponse(t, w, 200, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, "8c1b2a64-3f1c-4d5e-9f60-1a2b3c4d5e6f", resp.ID)
}

func TestSubmitContact_MissingMessage(t *testing.T) {
	called := false
	messages := &handlers.MockMessageService{
		SubmitFunc: func(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
			called = true
			return msg, nil
		},
	}

	handler := handlers.NewPortfolioHandler(&handlers.MockPortfolioService{}, messages)
	req := handlers.NewTestRequest(t, "POST", "/contact", map[string]string{
		"name":  "Ada",
		"email": "ada@example.com",
	})

	w := httptest.NewRecorder()
	handler.SubmitContact(w, req)

	resp := handlers.AssertErrorResponse(t, w, 400, "validation_error")
	assert.Equal(t, []interface{}{"message"}, resp.Details)
	assert.False(t, called)
}

func TestSubmitContact_InvalidEmail(t *testing.T) {
	handler := handlers.NewPortfolioHandler(&handlers.MockPortfolioService{}, &handlers.MockMessageService{})
	req := handlers.NewTestRequest(t, "POST", "/contact", handlers.ContactRequest{
		Name:    "Ada",
		Email:   "not-an-email",
		Message: "Hi.",
	})

	w := httptest.NewRecorder()
	handler.SubmitContact(w, req)

	handlers.AssertErrorResponse(t, w, 400, "bad_request")
}

func TestSubmitContact_StorageError(t *testing.T) {
	messages := &handlers.MockMessageService{
		SubmitFunc: func(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
			return nil, models.ErrInternalServer
		},
	}

	handler := handlers.NewPortfolioHandler(&handlers.MockPortfolioService{}, messages)
	req := handlers.NewTestRequest(t, "POST", "/contact", handlers.ContactRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Message: "Hi.",
	})

	w := httptest.NewRecorder()
	handler.SubmitContact(w, req)

	handlers.AssertErrorResponse(t, w, 500, "storage_error")
}
