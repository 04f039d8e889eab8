package entity

import (
	"time"
)

// Email Process Status
const (
	StatusPending    = "PENDING"
	StatusProcessing = "PROCESSING"
	StatusCompleted  = "COMPLETED"
	StatusFailed     = "FAILED"
	StatusSkipped    = "SKIPPED"
)

// Email represents a confirmation email pulled from Gmail
type Email struct {
	EmailID          string                 `bson:"emailId"`
	From             string                 `bson:"from"`
	To               string                 `bson:"to"`
	Subject          string                 `bson:"subject"`
	Body             string                 `bson:"body"`
	HTMLBody         string                 `bson:"htmlBody"`
	ReceivedAt       time.Time              `bson:"receivedAt"`
	Labels           []string               `bson:"labels"`
	ProcessedAt      time.Time              `bson:"processedAt"`
	ProcessStatus    string                 `bson:"processStatus"`
	ProcessorType    string                 `bson:"processorType"`
	ProcessStartedAt time.Time              `bson:"processStartedAt"`
	ProcessSteps     ProcessSteps           `bson:"processSteps"`
	ErrorDetail      string                 `bson:"errorDetail"`
	ExtractedData    map[string]interface{} `bson:"extractedData"`
}

type ProcessSteps struct {
	FlightExtracted  bool   `bson:"flightExtracted"`
	FlightID         string `bson:"flightId,omitempty"`
	CalendarLinked   bool   `bson:"calendarLinked"`
	NotificationSent bool   `bson:"notificationSent"`
}
