// internal/domain/entity/flight_record.go
package entity

import (
	"errors"
	"strings"
)

// UnknownAirline is the airline code used when the flight number has no carrier prefix
const UnknownAirline = "Unknown"

// ErrFlightNotFound is returned when a flight id is not present in history
var ErrFlightNotFound = errors.New("flight not found")

// ExtractedFlightRecord is the structured result of parsing a confirmation email.
// Optional fields hold "" when absent.
type ExtractedFlightRecord struct {
	FlightNumber     string `json:"flightNumber" bson:"flightNumber" yaml:"flightNumber" validate:"required"`
	AirlineCode      string `json:"airline" bson:"airline" yaml:"airline"`
	DepartureAirport string `json:"departureAirport" bson:"departureAirport" yaml:"departureAirport" validate:"required"`
	ArrivalAirport   string `json:"arrivalAirport" bson:"arrivalAirport" yaml:"arrivalAirport" validate:"required"`
	DepartureDate    string `json:"departureDate" bson:"departureDate" yaml:"departureDate"`
	DepartureTime    string `json:"departureTime" bson:"departureTime" yaml:"departureTime"`
	ArrivalDate      string `json:"arrivalDate,omitempty" bson:"arrivalDate,omitempty" yaml:"arrivalDate,omitempty"`
	ArrivalTime      string `json:"arrivalTime" bson:"arrivalTime" yaml:"arrivalTime"`
	PassengerName    string `json:"passengerName" bson:"passengerName" yaml:"passengerName" validate:"required"`
	ConfirmationCode string `json:"confirmationCode" bson:"confirmationCode" yaml:"confirmationCode"`
	Gate             string `json:"gate" bson:"gate" yaml:"gate"`
	Terminal         string `json:"terminal" bson:"terminal" yaml:"terminal"`
	Seat             string `json:"seat" bson:"seat" yaml:"seat"`
}

// MissingFields lists the required fields that are empty
func (r ExtractedFlightRecord) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.FlightNumber) == "" {
		missing = append(missing, "flightNumber")
	}
	if strings.TrimSpace(r.PassengerName) == "" {
		missing = append(missing, "passengerName")
	}
	if strings.TrimSpace(r.DepartureAirport) == "" {
		missing = append(missing, "departureAirport")
	}
	if strings.TrimSpace(r.ArrivalAirport) == "" {
		missing = append(missing, "arrivalAirport")
	}
	return missing
}

// IsValid reports whether all required fields are present
func (r ExtractedFlightRecord) IsValid() bool {
	return len(r.MissingFields()) == 0
}

// EffectiveArrivalTime returns the arrival time, or the departure time when none was found
func (r ExtractedFlightRecord) EffectiveArrivalTime() string {
	if r.ArrivalTime != "" {
		return r.ArrivalTime
	}
	return r.DepartureTime
}

// FlightRecord is an extracted record accepted into history
type FlightRecord struct {
	ExtractedFlightRecord `bson:",inline" yaml:",inline"`

	ID       string `json:"id" bson:"_id" yaml:"id"`
	ParsedAt int64  `json:"parsedAt" bson:"parsedAt" yaml:"parsedAt"` // unix millis
}

// FlightView is a flight record enriched with reference data for display
type FlightView struct {
	*FlightRecord

	AirlineName      string         `json:"airlineName"`
	AirlineColors    AirlineColors  `json:"airlineColors"`
	DepartureDetails *Airport       `json:"departureDetails,omitempty"`
	ArrivalDetails   *Airport       `json:"arrivalDetails,omitempty"`
	Route            *RouteInfo     `json:"route,omitempty"`
	Calendar         *CalendarEvent `json:"calendar,omitempty"`
}
