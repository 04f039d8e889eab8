package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"
	"flightcal-service/pkg/calendar"
	"flightcal-service/pkg/logger"
	"flightcal-service/pkg/metrics"
	"flightcal-service/pkg/utils"
)

const (
	processorType = "flight"

	// Reminders go out a day before departure, or right away when that has passed
	reminderLead  = 24 * time.Hour
	immediateSend = 2 * time.Second
)

// FlightProcessor handles flight confirmation emails pulled from the mailbox
type FlightProcessor struct {
	flights   *FlightService
	emailRepo repository.EmailRepository
	notifier  repository.NotificationRepository // nil disables notifications
	phone     string
	metrics   *metrics.Metrics
	logger    logger.Logger
	now       func() time.Time
}

// NewFlightProcessor creates a new flight processor. notifier may be nil.
func NewFlightProcessor(
	flights *FlightService,
	emailRepo repository.EmailRepository,
	notifier repository.NotificationRepository,
	phone string,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *FlightProcessor {
	return &FlightProcessor{
		flights:   flights,
		emailRepo: emailRepo,
		notifier:  notifier,
		phone:     phone,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// ProcessFlightMessage extracts the flight in body, stores it and sends a notification.
// An extraction failure is returned so the caller can mark the email failed.
func (fp *FlightProcessor) ProcessFlightMessage(ctx context.Context, body string, emailID string) error {
	text := body
	if looksLikeHTML(body) {
		text = utils.CleanHTMLText(body)
	}

	var steps entity.ProcessSteps
	record, err := fp.flights.ParseEmail(ctx, text)
	if err != nil {
		var extractionErr *utils.ExtractionError
		if errors.As(err, &extractionErr) {
			return fmt.Errorf("email %s: %s", emailID, extractionErr.Detail())
		}
		return err
	}
	steps.FlightExtracted = true
	steps.FlightID = record.ID

	artifacts, err := fp.flights.CalendarFor(record.ExtractedFlightRecord)
	if err != nil {
		return err
	}
	steps.CalendarLinked = true

	if fp.notifier != nil && fp.phone != "" {
		if err := fp.notify(ctx, record, artifacts); err != nil {
			fp.metrics.ErrorsCount.WithLabelValues("notify").Inc()
			fp.logger.Error("Failed to send flight notification", "emailID", emailID, "error", err)
		} else {
			steps.NotificationSent = true
		}
	}

	if err := fp.emailRepo.UpdateProcessStepsByEmailID(ctx, emailID, steps); err != nil {
		fp.logger.Warn("Failed to store process steps", "emailID", emailID, "error", err)
	}

	extractedData := map[string]interface{}{
		"flightId":         record.ID,
		"flightNumber":     record.FlightNumber,
		"airline":          record.AirlineCode,
		"departureAirport": record.DepartureAirport,
		"arrivalAirport":   record.ArrivalAirport,
		"departureDate":    record.DepartureDate,
		"passengerName":    record.PassengerName,
		"calendarLink":     artifacts.Link,
	}
	if err := fp.emailRepo.MarkAsProcessedByEmailID(ctx, emailID, entity.StatusCompleted, processorType, "", extractedData); err != nil {
		fp.logger.Error("Failed to mark email as processed", "emailID", emailID, "error", err)
		return nil
	}

	fp.logger.Info("Email marked as processed", "emailID", emailID, "flightId", record.ID)
	return nil
}

func (fp *FlightProcessor) notify(ctx context.Context, record *entity.FlightRecord, artifacts *entity.CalendarArtifacts) error {
	now := fp.now()
	scheduleAt := now.Add(immediateSend)
	if departure, err := time.Parse(calendar.BasicISOFormat, artifacts.Event.StartDateTime); err == nil {
		if reminder := departure.Add(-reminderLead); reminder.After(now) {
			scheduleAt = reminder
		}
	}

	notification := &entity.Notification{
		Type:       entity.FlightConfirmed,
		Phone:      fp.phone,
		Text:       NotificationText(record, artifacts.Link),
		Calendar:   artifacts,
		ScheduleAt: scheduleAt,
		CreatedAt:  now,
		Metadata: map[string]interface{}{
			"flightId": record.ID,
		},
	}

	taskID, err := fp.notifier.Send(ctx, notification)
	if err != nil {
		return err
	}
	fp.metrics.NotificationsSent.Inc()
	fp.logger.Info("Flight notification scheduled", "flightId", record.ID, "taskId", taskID, "scheduleAt", scheduleAt)
	return nil
}

// NotificationText is the message sent for a newly parsed flight
func NotificationText(record *entity.FlightRecord, link string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Flight %s confirmed\n", record.FlightNumber)
	fmt.Fprintf(&b, "Passenger: %s\n", record.PassengerName)
	fmt.Fprintf(&b, "Route: %s to %s\n", record.DepartureAirport, record.ArrivalAirport)
	if record.DepartureDate != "" || record.DepartureTime != "" {
		fmt.Fprintf(&b, "Departs: %s\n", strings.TrimSpace(record.DepartureDate+" "+record.DepartureTime))
	}
	if record.ConfirmationCode != "" {
		fmt.Fprintf(&b, "Confirmation: %s\n", record.ConfirmationCode)
	}
	fmt.Fprintf(&b, "\nAdd to calendar: %s", link)
	return b.String()
}

func looksLikeHTML(body string) bool {
	lower := strings.ToLower(body)
	return strings.Contains(lower, "<html") ||
		strings.Contains(lower, "<body") ||
		strings.Contains(lower, "<table") ||
		strings.Contains(lower, "<div") ||
		strings.Contains(lower, "<p>") ||
		strings.Contains(lower, "<br")
}
