package entity

// CalendarEvent is the calendar-ready projection of a flight record.
// Start and end are UTC basic ISO timestamps (YYYYMMDDTHHMMSSZ).
type CalendarEvent struct {
	Title         string `json:"title" yaml:"title"`
	Description   string `json:"description" yaml:"description"`
	StartDateTime string `json:"startDateTime" yaml:"startDateTime"`
	EndDateTime   string `json:"endDateTime" yaml:"endDateTime"`
	Location      string `json:"location" yaml:"location"`
}

// CalendarArtifacts bundles everything a client needs to add a flight to a calendar
type CalendarArtifacts struct {
	Event    CalendarEvent `json:"event"`
	Link     string        `json:"link"`
	ICS      string        `json:"ics,omitempty"`
	FileName string        `json:"fileName"`
	MIMEType string        `json:"mimeType"`
}
