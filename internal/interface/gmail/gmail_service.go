package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"
	"flightcal-service/pkg/logger"
	"flightcal-service/pkg/metrics"

	"golang.org/x/oauth2"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

// On first start only this much mail history is read
const initialLookback = 30 * 24 * time.Hour

// EmailProcessor dispatches stored emails to their handlers
type EmailProcessor interface {
	ProcessEmail(ctx context.Context, email *entity.Email) error
	ProcessPendingEmails(ctx context.Context) error
}

// GmailService polls the mailbox and hands new mail to the processor
type GmailService struct {
	gmailService *gmail.Service
	emailRepo    repository.EmailRepository
	processor    EmailProcessor
	metrics      *metrics.Metrics
	logger       logger.Logger
	pollInterval time.Duration
}

// NewGmailService creates a new Gmail poller
func NewGmailService(
	ctx context.Context,
	tokenSource oauth2.TokenSource,
	emailRepo repository.EmailRepository,
	processor EmailProcessor,
	metrics *metrics.Metrics,
	logger logger.Logger,
	pollInterval time.Duration,
) (*GmailService, error) {
	service, err := gmail.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create gmail client: %w", err)
	}

	return &GmailService{
		gmailService: service,
		emailRepo:    emailRepo,
		processor:    processor,
		metrics:      metrics,
		logger:       logger,
		pollInterval: pollInterval,
	}, nil
}

// StartPolling polls Gmail until ctx is cancelled
func (s *GmailService) StartPolling(ctx context.Context) {
	if err := s.processor.ProcessPendingEmails(ctx); err != nil {
		s.logger.Error("Failed to process pending emails on startup", "error", err)
	}

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Gmail polling stopped")
			return
		case <-ticker.C:
			s.logger.Debug("Polling Gmail for new emails")
			if err := s.FetchAndProcessEmails(ctx); err != nil {
				s.metrics.ErrorsCount.WithLabelValues("gmail_poll").Inc()
				s.logger.Error("Error polling Gmail", "error", err)
			}
		}
	}
}

// FetchAndProcessEmails fetches mail received since the newest stored email and processes it
func (s *GmailService) FetchAndProcessEmails(ctx context.Context) error {
	lastEmail, err := s.emailRepo.GetLastEmail(ctx)
	if err != nil {
		s.logger.Error("Failed to get last email", "error", err)
	}

	fetchFrom := time.Now().Add(-initialLookback)
	if lastEmail != nil {
		fetchFrom = lastEmail.ReceivedAt
	}

	resp, err := s.gmailService.Users.Messages.List("me").
		Q(searchQuery(fetchFrom)).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to list messages: %w", err)
	}

	if len(resp.Messages) == 0 {
		s.logger.Debug("No new messages found")
		return nil
	}

	emailIDs := make([]string, len(resp.Messages))
	for i, msg := range resp.Messages {
		emailIDs[i] = msg.Id
	}

	existingEmails, err := s.emailRepo.FindByEmailIDs(ctx, emailIDs)
	if err != nil {
		s.logger.Error("Failed to check existing emails", "error", err)
		existingEmails = make(map[string]*entity.Email)
	}

	newCount := 0
	for _, msg := range resp.Messages {
		if _, exists := existingEmails[msg.Id]; exists {
			continue
		}

		fullMsg, err := s.gmailService.Users.Messages.Get("me", msg.Id).Context(ctx).Do()
		if err != nil {
			s.logger.Error("Failed to get message", "msgId", msg.Id, "error", err)
			continue
		}

		email, err := convertToEmail(fullMsg)
		if err != nil {
			s.logger.Error("Failed to convert message", "msgId", msg.Id, "error", err)
			continue
		}

		if err := s.emailRepo.Save(ctx, email); err != nil {
			s.logger.Error("Failed to save email", "emailID", email.EmailID, "error", err)
			continue
		}
		newCount++
		s.metrics.EmailsIngested.Inc()

		if err := s.processor.ProcessEmail(ctx, email); err != nil {
			s.logger.Error("Failed to process email", "emailID", email.EmailID, "error", err)
		}
	}

	s.logger.Info("Email fetch completed",
		"totalMessages", len(resp.Messages),
		"newEmails", newCount)

	return nil
}

// searchQuery limits the listing to mail after since. Gmail's after: accepts epoch seconds.
func searchQuery(since time.Time) string {
	return fmt.Sprintf("after:%d", since.Unix())
}

// convertToEmail converts a Gmail message to an email, walking nested multipart bodies
func convertToEmail(msg *gmail.Message) (*entity.Email, error) {
	if msg.Payload == nil {
		return nil, fmt.Errorf("message %s has no payload", msg.Id)
	}

	email := &entity.Email{
		EmailID:       msg.Id,
		Labels:        msg.LabelIds,
		ProcessStatus: entity.StatusPending,
		ReceivedAt:    time.UnixMilli(msg.InternalDate),
	}

	for _, header := range msg.Payload.Headers {
		switch strings.ToLower(header.Name) {
		case "from":
			email.From = header.Value
		case "to":
			email.To = header.Value
		case "subject":
			email.Subject = header.Value
		}
	}

	if err := collectBodies(msg.Payload, email); err != nil {
		return nil, fmt.Errorf("message %s: %w", msg.Id, err)
	}
	return email, nil
}

func collectBodies(part *gmail.MessagePart, email *entity.Email) error {
	if part.Body != nil && part.Body.Data != "" && part.Filename == "" {
		data, err := decodeBody(part.Body.Data)
		if err != nil {
			return err
		}
		switch {
		case strings.HasPrefix(part.MimeType, "text/html"):
			if email.HTMLBody == "" {
				email.HTMLBody = data
			}
		case strings.HasPrefix(part.MimeType, "text/plain"), part.MimeType == "":
			if email.Body == "" {
				email.Body = data
			}
		}
	}

	for _, child := range part.Parts {
		if err := collectBodies(child, email); err != nil {
			return err
		}
	}
	return nil
}

// Gmail bodies are base64url, with or without padding
func decodeBody(data string) (string, error) {
	decoded, err := base64.URLEncoding.DecodeString(data)
	if err != nil {
		decoded, err = base64.RawURLEncoding.DecodeString(data)
		if err != nil {
			return "", fmt.Errorf("failed to decode body: %w", err)
		}
	}
	return string(decoded), nil
}
