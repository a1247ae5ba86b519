package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Hereaj/portfolio-api/internal/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// EmailService notifies the site owner about contact-form submissions.
type EmailService interface {
	SendContactNotification(ctx context.Context, msg *models.ContactMessage) error
}

// AWSSESEmailService sends notifications using AWS SES
type AWSSESEmailService struct {
	sesClient   *ses.Client
	fromAddress string
	toAddress   string
	logger      *slog.Logger
}

func NewAWSSESEmailService(region, fromAddress, toAddress string, logger *slog.Logger) (*AWSSESEmailService, error) {
	cfg, err := config.LoadDefaultConfig(context.Background(), config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &AWSSESEmailService{
		sesClient:   ses.NewFromConfig(cfg),
		fromAddress: fromAddress,
		toAddress:   toAddress,
		logger:      logger,
	}, nil
}

func (s *AWSSESEmailService) SendContactNotification(ctx context.Context, msg *models.ContactMessage) error {
	subject := msg.Subject
	if subject == "" {
		subject = "(no subject)"
	}

	textBody := fmt.Sprintf(`New message from the portfolio contact form.

From:    %s <%s>
Subject: %s

%s
`, msg.Name, msg.Email, subject, msg.Message)

	input := &ses.SendEmailInput{
		Source: aws.String(s.fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{s.toAddress},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String("Portfolio contact: " + subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data:    aws.String(textBody),
					Charset: aws.String("UTF-8"),
				},
			},
		},
		ReplyToAddresses: []string{msg.Email},
	}

	if _, err := s.sesClient.SendEmail(ctx, input); err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}

	s.logger.Info("contact notification sent", slog.String("message_id", msg.ID))
	return nil
}

// NoopEmailService is used when notification email is not configured.
type NoopEmailService struct {
	logger *slog.Logger
}

func NewNoopEmailService(logger *slog.Logger) *NoopEmailService {
	return &NoopEmailService{logger: logger}
}

func (s *NoopEmailService) SendContactNotification(ctx context.Context, msg *models.ContactMessage) error {
	s.logger.Info("email disabled, skipping contact notification", slog.String("message_id", msg.ID))
	return nil
}
