package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/pkg/logger"
	"flightcal-service/pkg/utils"

	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

// FlightService is the usecase surface served over HTTP
type FlightService interface {
	ParseEmail(ctx context.Context, content string) (*entity.FlightRecord, error)
	RunDemo(ctx context.Context) (*entity.FlightRecord, error)
	ListFlights(ctx context.Context) ([]*entity.FlightRecord, error)
	GetFlight(ctx context.Context, id string) (*entity.FlightRecord, error)
	ClearHistory(ctx context.Context) error
	Calendar(ctx context.Context, id string) (*entity.CalendarArtifacts, error)
	CalendarFor(record entity.ExtractedFlightRecord) (*entity.CalendarArtifacts, error)
	Describe(ctx context.Context, record *entity.FlightRecord) *entity.FlightView
}

// FlightHandler handles flight endpoints
type FlightHandler struct {
	service FlightService
	logger  logger.Logger
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(service FlightService, logger logger.Logger) *FlightHandler {
	return &FlightHandler{service: service, logger: logger}
}

// ParseRequest is the body of POST /api/v1/flights/parse
type ParseRequest struct {
	Content string `json:"content"`
}

// CalendarLinkResponse is the calendar payload without the file body
type CalendarLinkResponse struct {
	Event    entity.CalendarEvent `json:"event"`
	Link     string               `json:"link"`
	FileName string               `json:"fileName"`
}

// ListResponse wraps the flight history
type ListResponse struct {
	Flights []*entity.FlightView `json:"flights"`
	Count   int                  `json:"count"`
}

// SampleResponse carries a demo email
type SampleResponse struct {
	Content string `json:"content"`
}

// ParseFlight handles POST /api/v1/flights/parse
func (h *FlightHandler) ParseFlight(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	record, err := h.service.ParseEmail(r.Context(), req.Content)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, h.service.Describe(r.Context(), record))
}

// RunDemo handles POST /api/v1/flights/demo
func (h *FlightHandler) RunDemo(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.RunDemo(r.Context())
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusCreated, h.service.Describe(r.Context(), record))
}

// ListFlights handles GET /api/v1/flights
func (h *FlightHandler) ListFlights(w http.ResponseWriter, r *http.Request) {
	records, err := h.service.ListFlights(r.Context())
	if err != nil {
		h.logger.Error("Failed to list flights", "error", err)
		WriteServiceError(w, err)
		return
	}

	views := make([]*entity.FlightView, 0, len(records))
	for _, rec := range records {
		views = append(views, h.service.Describe(r.Context(), rec))
	}
	WriteJSON(w, http.StatusOK, ListResponse{Flights: views, Count: len(views)})
}

// ClearFlights handles DELETE /api/v1/flights
func (h *FlightHandler) ClearFlights(w http.ResponseWriter, r *http.Request) {
	if err := h.service.ClearHistory(r.Context()); err != nil {
		h.logger.Error("Failed to clear flights", "error", err)
		WriteServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetFlight handles GET /api/v1/flights/{id}
func (h *FlightHandler) GetFlight(w http.ResponseWriter, r *http.Request) {
	record, err := h.service.GetFlight(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, h.service.Describe(r.Context(), record))
}

// GetCalendar handles GET /api/v1/flights/{id}/calendar
func (h *FlightHandler) GetCalendar(w http.ResponseWriter, r *http.Request) {
	artifacts, err := h.service.Calendar(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, CalendarLinkResponse{
		Event:    artifacts.Event,
		Link:     artifacts.Link,
		FileName: artifacts.FileName,
	})
}

// DownloadCalendar handles GET /api/v1/flights/{id}/calendar.ics
func (h *FlightHandler) DownloadCalendar(w http.ResponseWriter, r *http.Request) {
	artifacts, err := h.service.Calendar(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", artifacts.MIMEType)
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(artifacts.FileName))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(artifacts.ICS))
}

// BuildCalendar handles POST /api/v1/calendar for a record supplied by the client
func (h *FlightHandler) BuildCalendar(w http.ResponseWriter, r *http.Request) {
	var record entity.ExtractedFlightRecord
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&record); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if record.AirlineCode == "" {
		record.AirlineCode = utils.AirlineCode(record.FlightNumber)
	}

	artifacts, err := h.service.CalendarFor(record)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, artifacts)
}

// RandomSample handles GET /api/v1/samples/random
func (h *FlightHandler) RandomSample(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, SampleResponse{Content: utils.RandomSampleEmail()})
}
