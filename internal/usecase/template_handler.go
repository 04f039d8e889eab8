package usecase

import (
	"context"

	"flightcal-service/internal/domain/entity"
)

// TemplateHandler processes one kind of email, chosen by subject
type TemplateHandler interface {
	// Name identifies the handler in logs and the email log's processorType
	Name() string

	// CanHandle determines if this handler can process the given email subject
	CanHandle(subject string) bool

	// Process handles the email. A returned error marks the email failed.
	Process(ctx context.Context, email *entity.Email) error
}

// SubjectRouter routes emails to the appropriate handler based on subject
type SubjectRouter interface {
	Register(handler TemplateHandler)
	GetHandler(subject string) TemplateHandler
}
