package usecase

import (
	"context"
	"fmt"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"
	"flightcal-service/pkg/logger"
)

// pendingBatchSize bounds how many queued emails one sweep picks up
const pendingBatchSize = 100

// EmailOrchestrator dispatches stored emails to the handler matching their subject
type EmailOrchestrator struct {
	emailRepo repository.EmailRepository
	router    SubjectRouter
	logger    logger.Logger
}

// NewEmailOrchestrator creates a new email orchestrator
func NewEmailOrchestrator(
	emailRepo repository.EmailRepository,
	router SubjectRouter,
	logger logger.Logger,
) *EmailOrchestrator {
	return &EmailOrchestrator{
		emailRepo: emailRepo,
		router:    router,
		logger:    logger,
	}
}

// ProcessEmail processes a single email immediately after fetching
func (o *EmailOrchestrator) ProcessEmail(ctx context.Context, email *entity.Email) error {
	handler := o.router.GetHandler(email.Subject)
	if handler == nil {
		o.logger.Debug("No handler found for email",
			"subject", email.Subject,
			"emailID", email.EmailID)

		// not an error, the mailbox also receives unrelated mail
		return o.emailRepo.MarkAsProcessedByEmailID(
			ctx,
			email.EmailID,
			entity.StatusSkipped,
			"none",
			"No matching handler found",
			map[string]interface{}{
				"subject": email.Subject,
				"reason":  "no_matching_template",
			},
		)
	}

	o.logger.Info("Processing email with handler",
		"emailID", email.EmailID,
		"handler", handler.Name(),
		"subject", email.Subject)

	claimed, err := o.emailRepo.ClaimByEmailID(ctx, email.EmailID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to claim email: %w", err)
	}
	if !claimed {
		o.logger.Debug("Email already claimed, skipping",
			"emailID", email.EmailID,
			"handler", handler.Name())
		return nil
	}

	if err := handler.Process(ctx, email); err != nil {
		o.logger.Error("Handler failed to process email",
			"emailID", email.EmailID,
			"handler", handler.Name(),
			"error", err)

		// recorded on the email; the sweep moves on to the next one
		if markErr := o.emailRepo.MarkAsProcessedByEmailID(
			ctx,
			email.EmailID,
			entity.StatusFailed,
			handler.Name(),
			err.Error(),
			nil,
		); markErr != nil {
			o.logger.Error("Failed to mark email as failed", "emailID", email.EmailID, "error", markErr)
		}
		return nil
	}

	o.logger.Info("Email processed successfully",
		"emailID", email.EmailID,
		"handler", handler.Name())

	return nil
}

// ProcessPendingEmails processes any emails that were missed or failed
func (o *EmailOrchestrator) ProcessPendingEmails(ctx context.Context) error {
	if err := o.emailRepo.ResetProcessingEmails(ctx); err != nil {
		o.logger.Error("Failed to reset stale emails", "error", err)
	}

	emails, err := o.emailRepo.FindUnprocessed(ctx, pendingBatchSize)
	if err != nil {
		return fmt.Errorf("failed to find unprocessed emails: %w", err)
	}

	if len(emails) == 0 {
		return nil
	}

	o.logger.Info("Processing pending emails", "count", len(emails))

	for _, email := range emails {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := o.ProcessEmail(ctx, email); err != nil {
			o.logger.Error("Failed to process pending email",
				"emailID", email.EmailID,
				"error", err)
		}
	}

	return nil
}
