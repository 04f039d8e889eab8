package repository

import (
	"context"
	"time"

	"flightcal-service/internal/domain/entity"
)

// EmailRepository defines the interface for email storage operations
type EmailRepository interface {
	Save(ctx context.Context, email *entity.Email) error
	FindUnprocessed(ctx context.Context, limit int) ([]*entity.Email, error)
	GetLastEmail(ctx context.Context) (*entity.Email, error)
	ResetProcessingEmails(ctx context.Context) error
	FindByEmailIDs(ctx context.Context, emailIDs []string) (map[string]*entity.Email, error)
	// ClaimByEmailID moves a pending email to PROCESSING. It reports false when
	// another worker already holds or finished the email.
	ClaimByEmailID(ctx context.Context, emailID string, startedAt time.Time) (bool, error)
	MarkAsProcessedByEmailID(ctx context.Context, emailID, status, processorType, errorDetail string, extractedData map[string]interface{}) error
	UpdateProcessStepsByEmailID(ctx context.Context, emailID string, steps entity.ProcessSteps) error
}
