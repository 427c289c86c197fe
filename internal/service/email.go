package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"encore-backend/internal/domain"
	"encore-backend/internal/logger"
)

type emailService struct {
	apiKey   string
	fromAddr string
	fromName string
}

func NewEmailService(apiKey, fromAddress, fromName string) EmailService {
	return &emailService{
		apiKey:   apiKey,
		fromAddr: fromAddress,
		fromName: fromName,
	}
}

func (s *emailService) SendApplicationReceived(ctx context.Context, email, name string, appType domain.ApplicationType) error {
	subject := "We received your application"
	body := fmt.Sprintf("Hello %s,\n\nYour %s application has been received and is awaiting review. We'll let you know as soon as there's a decision.\n\nBest regards,\nThe Encore Team", name, appType)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendDecisionNotification(ctx context.Context, email, name string, appType domain.ApplicationType, status domain.ApplicationStatus, reason string) error {
	subject := fmt.Sprintf("Update on your %s application", appType)
	body := fmt.Sprintf("Hello %s,\n\nYour %s application has been %s.", name, appType, status)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe Encore Team"
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) SendProfileLive(ctx context.Context, email, name string, appType domain.ApplicationType) error {
	subject := "Your profile is live"
	body := fmt.Sprintf("Hello %s,\n\nCongratulations! Your %s profile is now live on Encore.\n\nBest regards,\nThe Encore Team", name, appType)
	return s.send(ctx, email, name, subject, body)
}

func (s *emailService) send(ctx context.Context, email, name, subject, body string) error {
	from := mail.NewEmail(s.fromName, s.fromAddr)
	to := mail.NewEmail(name, email)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", email, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	resp, err := client.SendWithContext(ctx, message)
	logger.ExternalServiceResult("sendgrid", "send", err)
	if err != nil {
		return fmt.Errorf("send email via sendgrid: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid rejected email: status %d", resp.StatusCode)
	}
	return nil
}
