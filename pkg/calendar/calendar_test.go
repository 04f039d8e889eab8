package calendar

import (
	"net/url"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"flightcal-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixedNow   = time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	basicISORe = regexp.MustCompile(`^\d{8}T\d{6}Z$`)
)

func newTestGenerator(loc *time.Location) *Generator {
	return NewGenerator(
		WithLocation(loc),
		WithClock(func() time.Time { return fixedNow }),
	)
}

func americanRecord() entity.ExtractedFlightRecord {
	return entity.ExtractedFlightRecord{
		FlightNumber:     "AA1234",
		AirlineCode:      "AA",
		DepartureAirport: "LAX",
		ArrivalAirport:   "JFK",
		DepartureDate:    "12/25/2024",
		DepartureTime:    "2:30 PM",
		ArrivalTime:      "10:45 PM",
		PassengerName:    "John Smith",
		ConfirmationCode: "ABC123",
		Gate:             "A12",
		Terminal:         "4",
		Seat:             "14A",
	}
}

func TestFormatDateTime(t *testing.T) {
	g := newTestGenerator(time.UTC)

	tests := []struct {
		name string
		date string
		time string
		want string
	}{
		{"missing date", "", "2:30 PM", "20250101T120000Z"},
		{"missing time", "12/25/2024", "", "20250101T120000Z"},
		{"afternoon", "12/25/2024", "2:30 PM", "20241225T143000Z"},
		{"late evening", "12/25/2024", "10:45 PM", "20241225T224500Z"},
		{"midnight hour", "12/25/2024", "12:15 AM", "20241225T001500Z"},
		{"noon hour", "12/25/2024", "12:05 PM", "20241225T120500Z"},
		{"24 hour clock", "12/25/2024", "14:20", "20241225T142000Z"},
		{"lowercase meridiem", "2024/12/25", "9:00 am", "20241225T090000Z"},
		{"two digit year", "1/5/25", "9:00 AM", "20250105T090000Z"},
		{"iso dash date", "2025-03-01", "7:05 AM", "20250301T070500Z"},
		{"us dash date", "03-01-2025", "7:05 PM", "20250301T190500Z"},
		{"us dash short year", "03-01-25", "7:05 PM", "20250301T190500Z"},
		{"no separator uses today", "Dec 25", "2:30 PM", "20250101T143000Z"},
		{"clock without digits is midnight", "12/25/2024", "noon", "20241225T000000Z"},
		{"garbage slash date", "ab/cd/ef", "2:30 PM", "20250101T120000Z"},
		{"impossible dash date", "2024-13-45", "1:00 PM", "20250101T120000Z"},
		{"short slash date", "12/25", "1:00 PM", "20250101T120000Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.FormatDateTime(tt.date, tt.time)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, basicISORe, got)
		})
	}
}

func TestFormatDateTime_ConvertsFromGeneratorZone(t *testing.T) {
	g := newTestGenerator(time.FixedZone("EST", -5*60*60))

	assert.Equal(t, "20241225T193000Z", g.FormatDateTime("12/25/2024", "2:30 PM"))
	assert.Equal(t, "20241226T034500Z", g.FormatDateTime("12/25/2024", "10:45 PM"))
	assert.Equal(t, "20250301T120500Z", g.FormatDateTime("2025-03-01", "7:05 AM"))
}

func TestToCalendarEvent(t *testing.T) {
	g := newTestGenerator(time.UTC)

	event := g.ToCalendarEvent(americanRecord())

	assert.Equal(t, "Flight AA1234 - LAX to JFK", event.Title)
	assert.Equal(t, "LAX Airport", event.Location)
	assert.Equal(t, "20241225T143000Z", event.StartDateTime)
	assert.Equal(t, "20241225T224500Z", event.EndDateTime)
	assert.Equal(t, strings.Join([]string{
		"Passenger: John Smith",
		"Flight: AA1234",
		"From: LAX",
		"To: JFK",
		"Confirmation: ABC123",
		"Gate: A12",
		"Seat: 14A",
	}, "\n"), event.Description)
}

func TestToCalendarEvent_OmitsEmptyOptionalLines(t *testing.T) {
	g := newTestGenerator(time.UTC)
	record := americanRecord()
	record.ConfirmationCode = ""
	record.Seat = ""

	event := g.ToCalendarEvent(record)

	assert.Equal(t, "Passenger: John Smith\nFlight: AA1234\nFrom: LAX\nTo: JFK\nGate: A12", event.Description)
	assert.NotContains(t, event.Description, "\n\n")
}

func TestToCalendarEvent_EmptyArrivalTimeUsesDeparture(t *testing.T) {
	g := newTestGenerator(time.UTC)
	record := americanRecord()
	record.ArrivalTime = ""

	event := g.ToCalendarEvent(record)
	assert.Equal(t, event.StartDateTime, event.EndDateTime)
}

func TestToCalendarEvent_EndStaysOnDepartureDate(t *testing.T) {
	g := newTestGenerator(time.UTC)
	record := americanRecord()
	record.DepartureTime = "11:35 PM"
	record.ArrivalTime = "10:20 PM"

	event := g.ToCalendarEvent(record)
	assert.Equal(t, "20241225T233500Z", event.StartDateTime)
	assert.Equal(t, "20241225T222000Z", event.EndDateTime)
}

func TestToCalendarEvent_GracefulWithoutDate(t *testing.T) {
	g := NewGenerator()
	record := americanRecord()
	record.DepartureDate = ""

	var event entity.CalendarEvent
	require.NotPanics(t, func() { event = g.ToCalendarEvent(record) })
	assert.Regexp(t, basicISORe, event.StartDateTime)
	assert.Regexp(t, basicISORe, event.EndDateTime)
	assert.Equal(t, "Flight AA1234 - LAX to JFK", event.Title)
}

func TestToCalendarLink(t *testing.T) {
	g := newTestGenerator(time.UTC)
	record := americanRecord()

	link := g.ToCalendarLink(record)
	require.True(t, strings.HasPrefix(link, GoogleCalendarURL+"?"))

	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()

	event := g.ToCalendarEvent(record)
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, event.Title, q.Get("text"))
	assert.Equal(t,
		g.FormatDateTime(record.DepartureDate, record.DepartureTime)+"/"+g.FormatDateTime(record.DepartureDate, record.ArrivalTime),
		q.Get("dates"))
	assert.Equal(t, event.Description, q.Get("details"))
	assert.Contains(t, q.Get("details"), "\nFlight: AA1234\n")
	assert.Equal(t, "LAX Airport", q.Get("location"))
	assert.Equal(t, "website:flight-check-in-assistant", q.Get("sprop"))
}

func TestToCalendarFile(t *testing.T) {
	g := newTestGenerator(time.UTC)

	ics := g.ToCalendarFile(americanRecord())

	assert.True(t, strings.HasPrefix(ics, "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:-//Flight Check-In Assistant//EN\r\n"))
	assert.True(t, strings.HasSuffix(ics, "END:VEVENT\r\nEND:VCALENDAR\r\n"))

	// every line is CRLF terminated
	body := strings.TrimSuffix(ics, "\r\n")
	for _, line := range strings.Split(body, "\r\n") {
		assert.NotContains(t, line, "\n")
		assert.NotContains(t, line, "\r")
	}

	assert.Equal(t, 1, strings.Count(ics, "BEGIN:VEVENT\r\n"))
	assert.Equal(t, 1, strings.Count(ics, "BEGIN:VALARM\r\n"))
	assert.Equal(t, 1, strings.Count(ics, "END:VALARM\r\n"))

	unfolded := strings.ReplaceAll(ics, "\r\n ", "")
	for _, want := range []string{
		"UID:flight-AA1234-20250101T120000Z\r\n",
		"DTSTAMP:20250101T120000Z\r\n",
		"DTSTART:20241225T143000Z\r\n",
		"DTEND:20241225T224500Z\r\n",
		"SUMMARY:Flight AA1234 - LAX to JFK\r\n",
		`DESCRIPTION:Passenger: John Smith\nFlight: AA1234\nFrom: LAX\nTo: JFK\nConfirmation: ABC123\nGate: A12\nSeat: 14A` + "\r\n",
		"LOCATION:LAX Airport\r\n",
		"BEGIN:VALARM\r\nTRIGGER:-PT2H\r\nDESCRIPTION:Flight Check-in Reminder\r\nACTION:DISPLAY\r\nEND:VALARM\r\n",
	} {
		assert.Contains(t, unfolded, want)
	}

	// the reminder belongs to the event
	assert.Less(t, strings.Index(ics, "BEGIN:VALARM"), strings.Index(ics, "END:VEVENT"))
}

func TestArtifacts(t *testing.T) {
	g := newTestGenerator(time.UTC)
	record := americanRecord()

	artifacts := g.Artifacts(record)

	assert.Equal(t, g.ToCalendarEvent(record), artifacts.Event)
	assert.Equal(t, g.ToCalendarLink(record), artifacts.Link)
	assert.Equal(t, g.ToCalendarFile(record), artifacts.ICS)
	assert.Equal(t, "flight-AA1234.ics", artifacts.FileName)
	assert.Equal(t, "text/calendar;charset=utf-8", artifacts.MIMEType)
}

func TestArtifacts_ConcurrentCallsMatchSequential(t *testing.T) {
	g := newTestGenerator(time.FixedZone("EST", -5*60*60))

	records := []entity.ExtractedFlightRecord{americanRecord()}
	overnight := americanRecord()
	overnight.FlightNumber = "UA567"
	overnight.DepartureDate = "2025-03-01"
	overnight.DepartureTime = "11:35 PM"
	overnight.ArrivalTime = "6:10 AM"
	records = append(records, overnight)
	undated := americanRecord()
	undated.FlightNumber = "DL890"
	undated.DepartureDate = ""
	records = append(records, undated)

	want := make([]entity.CalendarArtifacts, len(records))
	for i, r := range records {
		want[i] = g.Artifacts(r)
	}

	const workers = 16
	got := make([][]entity.CalendarArtifacts, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			out := make([]entity.CalendarArtifacts, len(records))
			for n := 0; n < 20; n++ {
				i := (n + w) % len(records)
				out[i] = g.Artifacts(records[i])
			}
			got[w] = out
		}(w)
	}
	wg.Wait()

	for w, out := range got {
		for i := range records {
			assert.Equal(t, want[i], out[i], "worker %d, flight %s", w, records[i].FlightNumber)
		}
	}
}
