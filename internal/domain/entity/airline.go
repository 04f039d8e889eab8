package entity

import "errors"

// ErrAirlineNotFound is returned when no reference data exists for an airline code
var ErrAirlineNotFound = errors.New("airline not found")

// AirlineColors is the brand palette used when rendering an airline
type AirlineColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// DefaultAirlineColors is used for carriers without a known palette
var DefaultAirlineColors = AirlineColors{Primary: "#2563EB", Secondary: "#3B82F6"}

// Airline represents an airline entity
type Airline struct {
	Code   string        `json:"code"`
	Name   string        `json:"name"`
	Colors AirlineColors `json:"colors"`
}
