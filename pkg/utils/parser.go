package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/pkg/logger"
)

// Keyword anchors match in any case. Captured values keep their case rules,
// so "Confirmation Code: X" does not capture "Code".
var (
	flightNumberPattern     = regexp.MustCompile(`(?i:flight|flt)\s*[#:]?\s*([A-Z]{2,3}\s*\d{1,4})`)
	confirmationCodePattern = regexp.MustCompile(`(?i:confirmation|booking|reference)\s*[#:]?\s*([A-Z0-9]{6,8})`)
	passengerNamePattern    = regexp.MustCompile(`(?i:dear|passenger|name)\s*:?\s*([A-Z][a-z]+(?: [A-Z][a-z]+)*)`)
	departureAirportPattern = regexp.MustCompile(`(?i:from|departure)[\s:]*([A-Z]{3})(?:\s|$|\(|,)`)
	arrivalAirportPattern   = regexp.MustCompile(`(?i:to|arrival)[\s:]*([A-Z]{3})(?:\s|$|\(|,)`)
	gatePattern             = regexp.MustCompile(`(?i:gate)\s*:?\s*([A-Z]?\d{1,3}[A-Z]?)`)
	terminalPattern         = regexp.MustCompile(`(?i:terminal)\s*:?\s*(\d+|[A-Z])`)
	seatPattern             = regexp.MustCompile(`(?i:seat)\s*:?\s*(\d{1,3}[A-Z])`)

	datePattern = regexp.MustCompile(`\d{1,2}[/-]\d{1,2}[/-]\d{2,4}|\d{4}[/-]\d{1,2}[/-]\d{1,2}`)
	timePattern = regexp.MustCompile(`\d{1,2}:\d{2}(?:\s*(?i:AM|PM))?`)

	carrierPrefixPattern = regexp.MustCompile(`^([A-Z]{2,3})`)
)

// fieldScanner runs every field pattern over the text; swapped in tests to simulate faults
var fieldScanner = scanFields

// EmailParser extracts flight records from confirmation emails
type EmailParser struct {
	logger logger.Logger
}

// NewEmailParser creates a new email parser
func NewEmailParser(logger logger.Logger) *EmailParser {
	return &EmailParser{
		logger: logger,
	}
}

// Extract parses text and logs the outcome
func (p *EmailParser) Extract(text string) (entity.ExtractedFlightRecord, error) {
	start := time.Now()
	record, err := Extract(text)
	if err != nil {
		p.logger.Debug("Flight extraction failed",
			"kind", KindOf(err),
			"error", err,
			"length", len(text))
		return record, err
	}

	p.logger.Debug("Flight extracted",
		"flightNumber", record.FlightNumber,
		"route", record.DepartureAirport+"-"+record.ArrivalAirport,
		"elapsed", time.Since(start))
	return record, nil
}

// Extract turns a confirmation email into a flight record. Every failure is an *ExtractionError.
func Extract(text string) (record entity.ExtractedFlightRecord, err error) {
	if strings.TrimSpace(text) == "" {
		return entity.ExtractedFlightRecord{}, &ExtractionError{Kind: KindEmptyInput}
	}

	defer func() {
		if r := recover(); r != nil {
			record = entity.ExtractedFlightRecord{}
			err = &ExtractionError{Kind: KindInternalParse, Err: fmt.Errorf("%v", r)}
		}
	}()

	record = fieldScanner(text)
	if missing := record.MissingFields(); len(missing) > 0 {
		return entity.ExtractedFlightRecord{}, &ExtractionError{
			Kind:    KindMissingRequiredFields,
			Missing: missing,
		}
	}
	return record, nil
}

func scanFields(text string) entity.ExtractedFlightRecord {
	dates := datePattern.FindAllString(text, -1)
	times := timePattern.FindAllString(text, -1)

	record := entity.ExtractedFlightRecord{
		FlightNumber:     firstMatch(flightNumberPattern, text),
		DepartureAirport: firstMatch(departureAirportPattern, text),
		ArrivalAirport:   firstMatch(arrivalAirportPattern, text),
		PassengerName:    firstMatch(passengerNamePattern, text),
		ConfirmationCode: firstMatch(confirmationCodePattern, text),
		Gate:             firstMatch(gatePattern, text),
		Terminal:         firstMatch(terminalPattern, text),
		Seat:             firstMatch(seatPattern, text),
		DepartureDate:    nth(dates, 0),
		DepartureTime:    nth(times, 0),
	}

	// A single time applies to both legs.
	record.ArrivalTime = nth(times, 1)
	if record.ArrivalTime == "" {
		record.ArrivalTime = record.DepartureTime
	}

	record.AirlineCode = AirlineCode(record.FlightNumber)
	return record
}

// AirlineCode returns the carrier prefix of a flight number, or entity.UnknownAirline
func AirlineCode(flightNumber string) string {
	if code := firstMatch(carrierPrefixPattern, flightNumber); code != "" {
		return code
	}
	return entity.UnknownAirline
}

func firstMatch(re *regexp.Regexp, text string) string {
	match := re.FindStringSubmatch(text)
	if len(match) < 2 {
		return ""
	}
	return strings.TrimSpace(match[1])
}

func nth(values []string, i int) string {
	if i < len(values) {
		return strings.TrimSpace(values[i])
	}
	return ""
}
