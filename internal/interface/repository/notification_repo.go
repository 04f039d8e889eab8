package repository

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"
	"flightcal-service/pkg/logger"

	"github.com/go-playground/validator/v10"
)

const sendMessagePath = "/api/v1/messages/send"

// NotifierConfig holds the messaging service credentials
type NotifierConfig struct {
	BaseURL   string
	Token     string
	CompanyID string
	AgentID   string
	Timeout   time.Duration
}

// HTTPNotificationRepository posts flight notifications to the messaging service
type HTTPNotificationRepository struct {
	logger   logger.Logger
	cfg      NotifierConfig
	client   *http.Client
	validate *validator.Validate
}

// NewHTTPNotificationRepository creates a notifier for the given service
func NewHTTPNotificationRepository(cfg NotifierConfig, logger logger.Logger) repository.NotificationRepository {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	return &HTTPNotificationRepository{
		logger:   logger,
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.Timeout},
		validate: validator.New(),
	}
}

// Send delivers the notification and returns the task id assigned by the service.
// A calendar file, when present, is sent as a document with the text as caption.
func (r *HTTPNotificationRepository) Send(ctx context.Context, notification *entity.Notification) (string, error) {
	scheduleAtUTC := notification.ScheduleAt.UTC().Format(time.RFC3339)

	req := entity.SendMessageRequest{
		CompanyID:   r.cfg.CompanyID,
		AgentID:     r.cfg.AgentID,
		PhoneNumber: notification.Phone,
		ScheduleAt:  scheduleAtUTC,
	}

	if cal := notification.Calendar; cal != nil && cal.ICS != "" {
		req.Type = "document"
		req.Message = entity.Message{
			Document: base64.StdEncoding.EncodeToString([]byte(cal.ICS)),
			Caption:  notification.Text,
			FileName: cal.FileName,
			Mimetype: cal.MIMEType,
		}
	} else {
		req.Type = "text"
		req.Message = entity.Message{Text: notification.Text}
	}

	if err := r.validate.Struct(req); err != nil {
		return "", fmt.Errorf("invalid notification request: %w", err)
	}
	if err := req.Message.Validate(); err != nil {
		return "", fmt.Errorf("invalid message: %w", err)
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal notification: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.cfg.BaseURL+sendMessagePath, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+r.cfg.Token)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return "", fmt.Errorf("messaging service returned status %d: %v", resp.StatusCode, errorBody)
	}

	var response entity.SendMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if !response.Success && response.Error.Message != "" {
		return "", fmt.Errorf("messaging service rejected notification: %s (code: %s)", response.Error.Message, response.Error.Code)
	}

	r.logger.Info("Notification queued",
		"taskId", response.Data.TaskID,
		"phone", notification.Phone,
		"scheduleAt", scheduleAtUTC,
		"messageType", req.Type)

	return response.Data.TaskID, nil
}
