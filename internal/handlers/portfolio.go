package handlers

import (
	"context"
	"net/http"

	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/Hereaj/portfolio-api/internal/services"
	pkghttp "github.com/Hereaj/portfolio-api/pkg/http"
)

// PortfolioService defines the interface for the public read path
type PortfolioService interface {
	PortfolioData(ctx context.Context) (*services.PortfolioData, error)
}

// MessageService defines the interface for contact form submissions
type MessageService interface {
	Submit(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error)
}

// PortfolioHandler serves the unauthenticated site endpoints
type PortfolioHandler struct {
	portfolio PortfolioService
	messages  MessageService
}

func NewPortfolioHandler(portfolio PortfolioService, messages MessageService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolio: portfolio,
		messages:  messages,
	}
}

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

type ContactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// GetData handles GET /portfolio-data, the single aggregate read the
// site renders from.
func (h *PortfolioHandler) GetData(w http.ResponseWriter, r *http.Request) {
	data, err := h.portfolio.PortfolioData(r.Context())
	if err != nil {
		pkghttp.WriteStorageError(w)
		return
	}
	pkghttp.WriteJSON(w, http.StatusOK, data)
}

// SubmitContact handles POST /contact
func (h *PortfolioHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeRequestError(w, err)
		return
	}

	msg := &models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	stored, err := h.messages.Submit(r.Context(), msg)
	if err != nil {
		pkghttp.WriteStorageError(w)
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, ContactResponse{Success: true, ID: stored.ID})
}
