package repository

import (
	"context"
	"strings"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"
)

// StaticAirlineRepository serves airline reference data compiled into the binary
type StaticAirlineRepository struct{}

// NewStaticAirlineRepository creates an airline repository over the built-in table
func NewStaticAirlineRepository() repository.AirlineRepository {
	return StaticAirlineRepository{}
}

// GetByCode returns a copy of the airline with the given IATA code
func (StaticAirlineRepository) GetByCode(ctx context.Context, code string) (*entity.Airline, error) {
	airline, ok := airlineTable[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, entity.ErrAirlineNotFound
	}
	return &airline, nil
}

// StaticAirportRepository serves airport reference data compiled into the binary
type StaticAirportRepository struct{}

// NewStaticAirportRepository creates an airport repository over the built-in table
func NewStaticAirportRepository() repository.AirportRepository {
	return StaticAirportRepository{}
}

// GetByCode returns a copy of the airport with the given IATA code
func (StaticAirportRepository) GetByCode(ctx context.Context, code string) (*entity.Airport, error) {
	airport, ok := airportTable[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, entity.ErrAirportNotFound
	}
	return &airport, nil
}
