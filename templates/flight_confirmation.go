package templates

import (
	"context"
	"strings"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/pkg/logger"
)

// DefaultFlightSubjects are the subject keywords of airline confirmation mail
var DefaultFlightSubjects = []string{"confirmation", "boarding pass", "booking", "itinerary"}

// FlightMessageProcessor handles the body of a flight email
type FlightMessageProcessor interface {
	ProcessFlightMessage(ctx context.Context, body string, emailID string) error
}

// FlightConfirmationHandler handles airline confirmation and boarding pass emails
type FlightConfirmationHandler struct {
	processor FlightMessageProcessor
	subjects  []string
	logger    logger.Logger
}

// NewFlightConfirmationHandler creates a handler matching any of subjects, case-insensitively.
// No subjects means DefaultFlightSubjects.
func NewFlightConfirmationHandler(processor FlightMessageProcessor, subjects []string, logger logger.Logger) *FlightConfirmationHandler {
	if len(subjects) == 0 {
		subjects = DefaultFlightSubjects
	}
	lowered := make([]string, len(subjects))
	for i, s := range subjects {
		lowered[i] = strings.ToLower(s)
	}
	return &FlightConfirmationHandler{
		processor: processor,
		subjects:  lowered,
		logger:    logger,
	}
}

// Name identifies the handler
func (h *FlightConfirmationHandler) Name() string {
	return "flight_confirmation"
}

// CanHandle determines if this handler can process the given email subject
func (h *FlightConfirmationHandler) CanHandle(subject string) bool {
	subject = strings.ToLower(subject)
	for _, s := range h.subjects {
		if strings.Contains(subject, s) {
			return true
		}
	}
	return false
}

// Process extracts the flight from the email, preferring the HTML body
func (h *FlightConfirmationHandler) Process(ctx context.Context, email *entity.Email) error {
	body := email.HTMLBody
	if body == "" {
		body = email.Body
	}

	if err := h.processor.ProcessFlightMessage(ctx, body, email.EmailID); err != nil {
		h.logger.Error("Failed to process flight message", "emailID", email.EmailID, "error", err)
		return err
	}
	return nil
}
