package services

import (
	"context"
	"log/slog"

	"github.com/Hereaj/portfolio-api/internal/models"
)

// MessageStore defines the interface for contact message persistence
type MessageStore interface {
	Create(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error)
}

// MessageService stores incoming contact messages and notifies the
// site owner by email.
type MessageService struct {
	messages MessageStore
	email    EmailService
	logger   *slog.Logger
}

func NewMessageService(messages MessageStore, email EmailService, logger *slog.Logger) *MessageService {
	return &MessageService{
		messages: messages,
		email:    email,
		logger:   logger,
	}
}

// Submit persists a contact message and sends the notification email.
// The email is best effort: a delivery failure is logged but the
// message is already stored, so the submission still succeeds.
func (s *MessageService) Submit(ctx context.Context, msg *models.ContactMessage) (*models.ContactMessage, error) {
	stored, err := s.messages.Create(ctx, msg)
	if err != nil {
		s.logger.Error("failed to store contact message", "error", err)
		return nil, models.ErrInternalServer
	}

	if err := s.email.SendContactNotification(ctx, stored); err != nil {
		s.logger.Error("failed to send contact notification", "message_id", stored.ID, "error", err)
	}

	return stored, nil
}
