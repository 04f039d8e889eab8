package entity

import (
	"errors"
	"fmt"
	"math"
)

// ErrAirportNotFound is returned when no reference data exists for an airport code
var ErrAirportNotFound = errors.New("airport not found")

const (
	earthRadiusKm     = 6371.0
	kmPerMile         = 1.609344
	cruiseSpeedKmPerH = 800.0
)

// Airport holds reference information about an airport
type Airport struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Country  string  `json:"country"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Timezone string  `json:"timezone"`
}

// RouteInfo is the great-circle summary of a flight between two airports
type RouteInfo struct {
	DistanceKm        float64 `json:"distanceKm"`
	DistanceMiles     float64 `json:"distanceMiles"`
	EstimatedDuration string  `json:"estimatedDuration"`
}

// DistanceKm returns the haversine distance between two airports
func DistanceKm(from, to *Airport) float64 {
	dLat := toRadians(to.Lat - from.Lat)
	dLng := toRadians(to.Lng - from.Lng)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(from.Lat))*math.Cos(toRadians(to.Lat))*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// EstimateDuration formats a rough block time for the distance as "Xh Ym"
func EstimateDuration(distanceKm float64) string {
	hours := distanceKm / cruiseSpeedKmPerH
	h := math.Floor(hours)
	m := math.Round((hours - h) * 60)
	if m == 60 {
		h++
		m = 0
	}
	return fmt.Sprintf("%dh %dm", int(h), int(m))
}

// NewRouteInfo builds the route summary between two airports
func NewRouteInfo(from, to *Airport) *RouteInfo {
	if from == nil || to == nil {
		return nil
	}
	km := DistanceKm(from, to)
	return &RouteInfo{
		DistanceKm:        math.Round(km),
		DistanceMiles:     math.Round(km / kmPerMile),
		EstimatedDuration: EstimateDuration(km),
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
