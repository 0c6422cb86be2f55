package services

import (
	"context"
	"fmt"

	"cms-backend/models"
	"cms-backend/repository"
	"cms-backend/sender"

	"go.uber.org/zap"
)

// NotConfiguredMessage is reported when the mail relay is not set up. The
// submission still succeeds: storage and notification are separate failure
// domains.
const NotConfiguredMessage = "SMTP not configured on server"

// ContactService persists an inbound message, then attempts a best-effort
// notification email. Storage failure fails the submission; notification
// failure is only reported in the result.
type ContactService interface {
	Submit(ctx context.Context, msg models.ContactMessage) (models.ContactResult, error)
}

type contactService struct {
	repo repository.ContactRepo
	mail sender.EmailSender // nil when no relay is configured
	to   string
}

func NewContactService(repo repository.ContactRepo, mail sender.EmailSender, to string) ContactService {
	return &contactService{repo: repo, mail: mail, to: to}
}

func (s *contactService) Submit(ctx context.Context, msg models.ContactMessage) (models.ContactResult, error) {
	// The message is never lost: store first, unconditionally.
	if err := s.repo.Insert(ctx, msg); err != nil {
		return models.ContactResult{}, err
	}

	result := models.ContactResult{Stored: true}

	if s.mail == nil || s.to == "" {
		detail := NotConfiguredMessage
		result.Error = &detail
		return result, nil
	}

	subject := fmt.Sprintf("New contact message from %s", msg.Name)
	body := fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", msg.Name, msg.Email, msg.Message)

	if err := s.mail.SendEmail(ctx, s.to, subject, body); err != nil {
		zap.L().Warn("Contact notification failed", zap.Error(err))
		detail := err.Error()
		result.Error = &detail
		return result, nil
	}

	result.EmailSent = true
	return result, nil
}
