// Package calendar renders flight records as calendar events, Google Calendar
// links and iCalendar files.
package calendar

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/pkg/logger"
)

const (
	// BasicISOFormat is the UTC timestamp layout used by calendar clients
	BasicISOFormat = "20060102T150405Z"

	// MIMEType is the content type of generated calendar files
	MIMEType = "text/calendar;charset=utf-8"

	GoogleCalendarURL = "https://calendar.google.com/calendar/render"
	ProductID         = "-//Flight Check-In Assistant//EN"

	reminderTrigger     = "-PT2H"
	reminderDescription = "Flight Check-in Reminder"
	sourceProperty      = "website:flight-check-in-assistant"
)

var clockPattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)?`)

// Layouts tried, in order, for dash separated dates
var dashLayouts = []string{
	"2006-01-02",
	"2006-1-2",
	"01-02-2006",
	"1-2-2006",
	"01-02-06",
	"1-2-06",
}

// Generator builds calendar artifacts. Dates and times in a record are read as
// wall-clock values in the generator's location.
type Generator struct {
	location *time.Location
	now      func() time.Time
	logger   logger.Logger
}

// Option configures a Generator
type Option func(*Generator)

// WithLocation sets the zone flight times are interpreted in
func WithLocation(loc *time.Location) Option {
	return func(g *Generator) {
		if loc != nil {
			g.location = loc
		}
	}
}

// WithClock replaces time.Now, used for the fallback timestamp and DTSTAMP
func WithClock(now func() time.Time) Option {
	return func(g *Generator) {
		if now != nil {
			g.now = now
		}
	}
}

// WithLogger sets the logger used to report absorbed date faults
func WithLogger(l logger.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// NewGenerator creates a generator using the local zone and wall clock by default
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		location: time.Local,
		now:      time.Now,
		logger:   logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// ToCalendarEvent projects a flight record onto a calendar event
func (g *Generator) ToCalendarEvent(record entity.ExtractedFlightRecord) entity.CalendarEvent {
	return entity.CalendarEvent{
		Title:         Title(record),
		Description:   Description(record),
		StartDateTime: g.FormatDateTime(record.DepartureDate, record.DepartureTime),
		EndDateTime:   g.FormatDateTime(record.DepartureDate, record.EffectiveArrivalTime()),
		Location:      record.DepartureAirport + " Airport",
	}
}

// ToCalendarLink returns a Google Calendar "add event" URL for the record
func (g *Generator) ToCalendarLink(record entity.ExtractedFlightRecord) string {
	return g.linkFor(g.ToCalendarEvent(record))
}

func (g *Generator) linkFor(event entity.CalendarEvent) string {
	params := url.Values{}
	params.Set("action", "TEMPLATE")
	params.Set("text", event.Title)
	params.Set("dates", event.StartDateTime+"/"+event.EndDateTime)
	params.Set("details", event.Description)
	params.Set("location", event.Location)
	params.Set("sprop", sourceProperty)

	return GoogleCalendarURL + "?" + params.Encode()
}

// ToCalendarFile renders the record as an iCalendar document with CRLF line endings
func (g *Generator) ToCalendarFile(record entity.ExtractedFlightRecord) string {
	return g.fileFor(record.FlightNumber, g.ToCalendarEvent(record))
}

func (g *Generator) fileFor(flightNumber string, event entity.CalendarEvent) string {
	stamp := g.now()

	cal := ical.NewCalendar()
	cal.SetProductId(ProductID)

	vevent := cal.AddEvent(fmt.Sprintf("flight-%s-%s", flightNumber, stamp.UTC().Format(BasicISOFormat)))
	vevent.SetDtStampTime(stamp)
	vevent.SetProperty(ical.ComponentPropertyDtStart, event.StartDateTime)
	vevent.SetProperty(ical.ComponentPropertyDtEnd, event.EndDateTime)
	vevent.SetSummary(event.Title)
	vevent.SetDescription(event.Description)
	vevent.SetLocation(event.Location)

	alarm := vevent.AddAlarm()
	alarm.SetTrigger(reminderTrigger)
	alarm.SetProperty(ical.ComponentPropertyDescription, reminderDescription)
	alarm.SetAction(ical.ActionDisplay)

	return cal.Serialize(ical.WithNewLineWindows)
}

// Artifacts builds the event, link and file for a record in one pass
func (g *Generator) Artifacts(record entity.ExtractedFlightRecord) entity.CalendarArtifacts {
	event := g.ToCalendarEvent(record)
	return entity.CalendarArtifacts{
		Event:    event,
		Link:     g.linkFor(event),
		ICS:      g.fileFor(record.FlightNumber, event),
		FileName: FileName(record),
		MIMEType: MIMEType,
	}
}

// FormatDateTime combines a record date and time into a UTC basic ISO timestamp.
// Missing or unparseable input yields the current instant.
func (g *Generator) FormatDateTime(date, clock string) string {
	if date == "" || clock == "" {
		return g.stamp()
	}

	t, err := g.combine(date, clock)
	if err != nil {
		g.logger.Debug("Falling back to current time for calendar event",
			"date", date,
			"time", clock,
			"error", err)
		return g.stamp()
	}
	return t.UTC().Format(BasicISOFormat)
}

func (g *Generator) stamp() string {
	return g.now().UTC().Format(BasicISOFormat)
}

func (g *Generator) combine(date, clock string) (time.Time, error) {
	year, month, day, err := g.parseDate(date)
	if err != nil {
		return time.Time{}, err
	}

	// No recognizable clock leaves the time at midnight.
	hour, minute := 0, 0
	if match := clockPattern.FindStringSubmatch(clock); match != nil {
		hour, _ = strconv.Atoi(match[1])
		minute, _ = strconv.Atoi(match[2])
		switch strings.ToUpper(match[3]) {
		case "PM":
			if hour != 12 {
				hour += 12
			}
		case "AM":
			if hour == 12 {
				hour = 0
			}
		}
	}

	return time.Date(year, month, day, hour, minute, 0, 0, g.location), nil
}

func (g *Generator) parseDate(date string) (int, time.Month, int, error) {
	date = strings.TrimSpace(date)

	switch {
	case strings.Contains(date, "/"):
		return parseSlashDate(date)
	case strings.Contains(date, "-"):
		for _, layout := range dashLayouts {
			if t, err := time.ParseInLocation(layout, date, g.location); err == nil {
				return t.Year(), t.Month(), t.Day(), nil
			}
		}
		return 0, 0, 0, fmt.Errorf("unrecognized date %q", date)
	default:
		today := g.now().In(g.location)
		return today.Year(), today.Month(), today.Day(), nil
	}
}

// parseSlashDate reads MM/DD/YYYY, or YYYY/MM/DD when the first part has four digits.
// Two digit years are in the 2000s.
func parseSlashDate(date string) (int, time.Month, int, error) {
	parts := strings.Split(date, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("unrecognized date %q", date)
	}

	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0, 0, 0, fmt.Errorf("unrecognized date %q: %w", date, err)
		}
		nums[i] = n
	}

	month, day, year := nums[0], nums[1], nums[2]
	if len(strings.TrimSpace(parts[0])) == 4 {
		year, month, day = nums[0], nums[1], nums[2]
	}
	if year < 100 {
		year += 2000
	}
	return year, time.Month(month), day, nil
}

// Title is the event title for a record
func Title(record entity.ExtractedFlightRecord) string {
	return fmt.Sprintf("Flight %s - %s to %s", record.FlightNumber, record.DepartureAirport, record.ArrivalAirport)
}

// Description lists the flight details one per line, omitting empty optional fields
func Description(record entity.ExtractedFlightRecord) string {
	lines := []string{
		"Passenger: " + record.PassengerName,
		"Flight: " + record.FlightNumber,
		"From: " + record.DepartureAirport,
		"To: " + record.ArrivalAirport,
	}
	if record.ConfirmationCode != "" {
		lines = append(lines, "Confirmation: "+record.ConfirmationCode)
	}
	if record.Gate != "" {
		lines = append(lines, "Gate: "+record.Gate)
	}
	if record.Seat != "" {
		lines = append(lines, "Seat: "+record.Seat)
	}
	return strings.Join(lines, "\n")
}

// FileName is the download name of the calendar file for a record
func FileName(record entity.ExtractedFlightRecord) string {
	return fmt.Sprintf("flight-%s.ics", record.FlightNumber)
}
