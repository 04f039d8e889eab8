package repository

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNotifier(t *testing.T, handler http.HandlerFunc) *HTTPNotificationRepository {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewHTTPNotificationRepository(NotifierConfig{
		BaseURL:   srv.URL + "/",
		Token:     "secret",
		CompanyID: "company",
		AgentID:   "agent",
	}, logger.NewNopLogger()).(*HTTPNotificationRepository)
}

func TestHTTPNotificationRepository_SendText(t *testing.T) {
	var got entity.SendMessageRequest
	notifier := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, sendMessagePath, r.URL.Path)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"data":{"taskId":"task-1","status":"PENDING"}}`))
	})

	taskID, err := notifier.Send(context.Background(), &entity.Notification{
		Type:       entity.FlightConfirmed,
		Phone:      "+15550100",
		Text:       "Flight AA1234 - LAX to JFK",
		ScheduleAt: time.Date(2025, 1, 1, 8, 0, 0, 0, time.FixedZone("EST", -5*3600)),
	})
	require.NoError(t, err)
	assert.Equal(t, "task-1", taskID)

	assert.Equal(t, "text", got.Type)
	assert.Equal(t, "company", got.CompanyID)
	assert.Equal(t, "agent", got.AgentID)
	assert.Equal(t, "+15550100", got.PhoneNumber)
	assert.Equal(t, "Flight AA1234 - LAX to JFK", got.Message.Text)
	assert.Equal(t, "2025-01-01T13:00:00Z", got.ScheduleAt)
}

func TestHTTPNotificationRepository_SendCalendarDocument(t *testing.T) {
	var got entity.SendMessageRequest
	notifier := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"success":true,"data":{"taskId":"task-2"}}`))
	})

	ics := "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"
	_, err := notifier.Send(context.Background(), &entity.Notification{
		Phone: "+15550100",
		Text:  "Your flight",
		Calendar: &entity.CalendarArtifacts{
			ICS:      ics,
			FileName: "flight-AA1234.ics",
			MIMEType: "text/calendar;charset=utf-8",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "document", got.Type)
	assert.Empty(t, got.Message.Text)
	assert.Equal(t, "Your flight", got.Message.Caption)
	assert.Equal(t, "flight-AA1234.ics", got.Message.FileName)
	decoded, err := base64.StdEncoding.DecodeString(got.Message.Document)
	require.NoError(t, err)
	assert.Equal(t, ics, string(decoded))
}

func TestHTTPNotificationRepository_ServiceError(t *testing.T) {
	notifier := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"message":"upstream down"}`))
	})

	_, err := notifier.Send(context.Background(), &entity.Notification{Phone: "+15550100", Text: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 502")
}

func TestHTTPNotificationRepository_RejectsMissingPhone(t *testing.T) {
	called := false
	notifier := newTestNotifier(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := notifier.Send(context.Background(), &entity.Notification{Text: "hi"})
	require.Error(t, err)
	assert.False(t, called)
}
