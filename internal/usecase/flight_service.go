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

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// FlightService turns confirmation emails into flight history and calendar artifacts
type FlightService struct {
	parser      *utils.EmailParser
	generator   *calendar.Generator
	history     repository.FlightRecordRepository
	airlineRepo repository.AirlineRepository
	airportRepo repository.AirportRepository
	metrics     *metrics.Metrics
	logger      logger.Logger
	validate    *validator.Validate
	now         func() time.Time
}

// NewFlightService creates a new flight service
func NewFlightService(
	history repository.FlightRecordRepository,
	airlineRepo repository.AirlineRepository,
	airportRepo repository.AirportRepository,
	generator *calendar.Generator,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *FlightService {
	return &FlightService{
		parser:      utils.NewEmailParser(logger),
		generator:   generator,
		history:     history,
		airlineRepo: airlineRepo,
		airportRepo: airportRepo,
		metrics:     metrics,
		logger:      logger,
		validate:    validator.New(),
		now:         time.Now,
	}
}

// ParseEmail extracts a flight from content and prepends it to history.
// Extraction failures are returned as *utils.ExtractionError and nothing is stored.
func (s *FlightService) ParseEmail(ctx context.Context, content string) (*entity.FlightRecord, error) {
	start := time.Now()
	extracted, err := s.parser.Extract(content)
	s.metrics.ParseDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.ParseFailures.WithLabelValues(string(utils.KindOf(err))).Inc()
		return nil, err
	}

	parsedAt := s.now()
	record := &entity.FlightRecord{
		ExtractedFlightRecord: extracted,
		ID:                    newFlightID(extracted, parsedAt),
		ParsedAt:              parsedAt.UnixMilli(),
	}

	if err := s.history.Add(ctx, record); err != nil {
		s.metrics.ErrorsCount.WithLabelValues("history_add").Inc()
		return nil, fmt.Errorf("failed to store flight: %w", err)
	}
	s.metrics.EmailsParsed.Inc()

	s.logger.Info("Flight parsed",
		"id", record.ID,
		"flightNumber", record.FlightNumber,
		"route", record.DepartureAirport+"-"+record.ArrivalAirport)
	return record, nil
}

// RunDemo parses a randomly chosen sample email
func (s *FlightService) RunDemo(ctx context.Context) (*entity.FlightRecord, error) {
	return s.ParseEmail(ctx, utils.RandomSampleEmail())
}

// ListFlights returns history, most recent first
func (s *FlightService) ListFlights(ctx context.Context) ([]*entity.FlightRecord, error) {
	return s.history.List(ctx)
}

// GetFlight returns a flight from history or entity.ErrFlightNotFound
func (s *FlightService) GetFlight(ctx context.Context, id string) (*entity.FlightRecord, error) {
	return s.history.FindByID(ctx, id)
}

// ClearHistory removes every stored flight
func (s *FlightService) ClearHistory(ctx context.Context) error {
	if err := s.history.Clear(ctx); err != nil {
		s.metrics.ErrorsCount.WithLabelValues("history_clear").Inc()
		return fmt.Errorf("failed to clear history: %w", err)
	}
	s.logger.Info("Flight history cleared")
	return nil
}

// Calendar builds the calendar artifacts for a stored flight
func (s *FlightService) Calendar(ctx context.Context, id string) (*entity.CalendarArtifacts, error) {
	record, err := s.history.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.CalendarFor(record.ExtractedFlightRecord)
}

// CalendarFor builds calendar artifacts for a record that is not in history.
// The record must carry the required fields.
func (s *FlightService) CalendarFor(record entity.ExtractedFlightRecord) (*entity.CalendarArtifacts, error) {
	if err := s.validate.Struct(record); err != nil {
		return nil, &utils.ExtractionError{Kind: utils.KindMissingRequiredFields, Missing: record.MissingFields()}
	}

	artifacts := s.generator.Artifacts(record)
	s.metrics.CalendarArtifacts.WithLabelValues("link").Inc()
	s.metrics.CalendarArtifacts.WithLabelValues("ics").Inc()
	return &artifacts, nil
}

// Describe enriches a record with airline and airport reference data.
// Unknown codes leave the corresponding details empty.
func (s *FlightService) Describe(ctx context.Context, record *entity.FlightRecord) *entity.FlightView {
	view := &entity.FlightView{
		FlightRecord:  record,
		AirlineName:   record.AirlineCode,
		AirlineColors: entity.DefaultAirlineColors,
	}

	if airline, err := s.airlineRepo.GetByCode(ctx, record.AirlineCode); err == nil {
		view.AirlineName = airline.Name
		view.AirlineColors = airline.Colors
	} else if !errors.Is(err, entity.ErrAirlineNotFound) {
		s.logger.Warn("Airline lookup failed", "code", record.AirlineCode, "error", err)
	}

	view.DepartureDetails = s.lookupAirport(ctx, record.DepartureAirport)
	view.ArrivalDetails = s.lookupAirport(ctx, record.ArrivalAirport)
	view.Route = entity.NewRouteInfo(view.DepartureDetails, view.ArrivalDetails)

	event := s.generator.ToCalendarEvent(record.ExtractedFlightRecord)
	view.Calendar = &event
	return view
}

func (s *FlightService) lookupAirport(ctx context.Context, code string) *entity.Airport {
	airport, err := s.airportRepo.GetByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, entity.ErrAirportNotFound) {
			s.logger.Warn("Airport lookup failed", "code", code, "error", err)
		}
		return nil
	}
	return airport
}

// idSegment drops whitespace and turns slashes into dashes in id parts
var idSegment = strings.NewReplacer("/", "-", " ", "", "\t", "", "\n", "", "\r", "")

// newFlightID derives a readable, URL safe id from the flight details
func newFlightID(r entity.ExtractedFlightRecord, at time.Time) string {
	return fmt.Sprintf("%s-%s-%s-%s-%s-%d-%s",
		r.AirlineCode,
		idSegment.Replace(r.FlightNumber),
		idSegment.Replace(r.DepartureDate),
		r.DepartureAirport,
		r.ArrivalAirport,
		at.UnixMilli(),
		uuid.NewString()[:8])
}
