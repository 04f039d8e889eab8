package entity

import (
	"errors"
	"time"
)

// NotificationType defines the kind of notification sent for a flight
type NotificationType string

const (
	FlightConfirmed NotificationType = "flight_confirmed"
)

// Notification is a message announcing a parsed flight to a recipient
type Notification struct {
	Type       NotificationType       `json:"type"`
	Phone      string                 `json:"phone"`
	Text       string                 `json:"text"`
	Calendar   *CalendarArtifacts     `json:"calendar,omitempty"`
	ScheduleAt time.Time              `json:"scheduleAt"`
	CreatedAt  time.Time              `json:"createdAt"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// SendMessageRequest is the body accepted by the messaging service
type SendMessageRequest struct {
	CompanyID   string  `json:"companyId" validate:"required"`
	AgentID     string  `json:"agentId" validate:"required"`
	PhoneNumber string  `json:"phoneNumber" validate:"required"`
	Message     Message `json:"message" validate:"required"`
	ScheduleAt  string  `json:"scheduleAt,omitempty"`
	Type        string  `json:"type" validate:"required,oneof=text document"`
}

// Message is either a text message or a document attachment
type Message struct {
	Text string `json:"text,omitempty"`

	Document string `json:"document,omitempty"` // base64 payload
	Caption  string `json:"caption,omitempty"`
	FileName string `json:"fileName,omitempty"`
	Mimetype string `json:"mimetype,omitempty"`
}

// Validate enforces that exactly one message shape is populated
func (m Message) Validate() error {
	if m.Text != "" && m.Document == "" {
		return nil
	}
	if m.Document != "" && m.FileName != "" && m.Mimetype != "" && m.Text == "" {
		return nil
	}
	return errors.New("message must be either text or document type with required fields")
}

// SendMessageResponse is the messaging service reply
type SendMessageResponse struct {
	Success bool `json:"success"`
	Data    struct {
		TaskID     string `json:"taskId"`
		Status     string `json:"status"`
		ScheduleAt string `json:"scheduleAt"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
}
