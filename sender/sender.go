package sender

import "context"

// EmailSender delivers a single message to a single recipient. Failures are
// the caller's business to classify; the contact flow treats them as
// non-fatal.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}
