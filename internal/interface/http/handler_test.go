package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/interface/repository"
	"flightcal-service/internal/usecase"
	"flightcal-service/pkg/calendar"
	"flightcal-service/pkg/logger"
	"flightcal-service/pkg/metrics"
	"flightcal-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := logger.NewNopLogger()
	gen := calendar.NewGenerator(calendar.WithLocation(time.UTC))
	svc := usecase.NewFlightService(
		repository.NewMemoryFlightRecordRepository(0),
		repository.NewStaticAirlineRepository(),
		repository.NewStaticAirportRepository(),
		gen,
		metrics.NewMetrics("test", prometheus.NewRegistry()),
		log,
	)
	srv := httptest.NewServer(NewRouter(NewFlightHandler(svc, log), nil, "test", log))
	t.Cleanup(srv.Close)
	return srv
}

func parse(t *testing.T, srv *httptest.Server, content string) *http.Response {
	t.Helper()
	body, err := json.Marshal(ParseRequest{Content: content})
	require.NoError(t, err)
	resp, err := http.Post(srv.URL+"/api/v1/flights/parse", "application/json", strings.NewReader(string(body)))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestParseFlight_Created(t *testing.T) {
	srv := newTestServer(t)

	resp := parse(t, srv, utils.SampleEmail)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	view := decode[map[string]interface{}](t, resp)
	assert.Equal(t, "AA1234", view["flightNumber"])
	assert.Equal(t, "AA", view["airline"])
	assert.Equal(t, "American Airlines", view["airlineName"])
	assert.NotEmpty(t, view["id"])
	assert.Contains(t, view, "route")
	assert.Contains(t, view, "calendar")
}

func TestParseFlight_ErrorMapping(t *testing.T) {
	srv := newTestServer(t)
	jetBlue, _ := utils.SampleByAirline("JetBlue")

	tests := []struct {
		name    string
		content string
		status  int
		kind    string
	}{
		{"empty", "  ", http.StatusBadRequest, string(utils.KindEmptyInput)},
		{"missing fields", jetBlue.Body, http.StatusUnprocessableEntity, string(utils.KindMissingRequiredFields)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := parse(t, srv, tt.content)
			assert.Equal(t, tt.status, resp.StatusCode)

			errResp := decode[ErrorResponse](t, resp)
			assert.Equal(t, tt.status, errResp.Code)
			assert.Equal(t, tt.kind, errResp.Kind)
			assert.NotEmpty(t, errResp.Message)
		})
	}
}

func TestParseFlight_MalformedJSON(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Post(srv.URL+"/api/v1/flights/parse", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFlightLifecycle(t *testing.T) {
	srv := newTestServer(t)

	created := decode[map[string]interface{}](t, parse(t, srv, utils.SampleEmail))
	id := created["id"].(string)

	resp, err := http.Get(srv.URL + "/api/v1/flights/" + id)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	calResp, err := http.Get(srv.URL + "/api/v1/flights/" + id + "/calendar")
	require.NoError(t, err)
	defer calResp.Body.Close()
	require.Equal(t, http.StatusOK, calResp.StatusCode)
	cal := decode[CalendarLinkResponse](t, calResp)
	assert.Equal(t, "Flight AA1234 - LAX to JFK", cal.Event.Title)
	assert.True(t, strings.HasPrefix(cal.Link, calendar.GoogleCalendarURL+"?"))
	assert.Equal(t, "flight-AA1234.ics", cal.FileName)

	icsResp, err := http.Get(srv.URL + "/api/v1/flights/" + id + "/calendar.ics")
	require.NoError(t, err)
	defer icsResp.Body.Close()
	require.Equal(t, http.StatusOK, icsResp.StatusCode)
	assert.Equal(t, calendar.MIMEType, icsResp.Header.Get("Content-Type"))
	assert.Equal(t, `attachment; filename="flight-AA1234.ics"`, icsResp.Header.Get("Content-Disposition"))

	listResp, err := http.Get(srv.URL + "/api/v1/flights")
	require.NoError(t, err)
	defer listResp.Body.Close()
	list := decode[ListResponse](t, listResp)
	assert.Equal(t, 1, list.Count)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/flights", nil)
	delResp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer delResp.Body.Close()
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)

	gone, err := http.Get(srv.URL + "/api/v1/flights/" + id)
	require.NoError(t, err)
	defer gone.Body.Close()
	assert.Equal(t, http.StatusNotFound, gone.StatusCode)
}

func TestBuildCalendar(t *testing.T) {
	srv := newTestServer(t)

	body := `{"flightNumber":"UA567","departureAirport":"ORD","arrivalAirport":"LAX","passengerName":"Sarah Johnson","departureDate":"01/15/2025","departureTime":"8:15 AM","arrivalTime":"10:30 AM"}`
	resp, err := http.Post(srv.URL+"/api/v1/calendar", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	artifacts := decode[entity.CalendarArtifacts](t, resp)
	assert.Equal(t, "20250115T081500Z", artifacts.Event.StartDateTime)
	assert.Contains(t, artifacts.ICS, "BEGIN:VALARM")

	bad, err := http.Post(srv.URL+"/api/v1/calendar", "application/json", strings.NewReader(`{"flightNumber":"UA567"}`))
	require.NoError(t, err)
	defer bad.Body.Close()
	assert.Equal(t, http.StatusUnprocessableEntity, bad.StatusCode)
}

func TestRandomSampleAndHealth(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/api/v1/samples/random")
	require.NoError(t, err)
	defer resp.Body.Close()
	sample := decode[SampleResponse](t, resp)
	assert.Contains(t, sample.Content, "Flight")

	health, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer health.Body.Close()
	assert.Equal(t, "ok", decode[HealthResponse](t, health).Status)
}

func TestRecovery(t *testing.T) {
	h := Recovery(logger.NewNopLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
