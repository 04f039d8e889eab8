package repository

import (
	"context"

	"flightcal-service/internal/domain/entity"
)

// FlightRecordRepository stores the history of parsed flights.
// List returns records most recent first.
type FlightRecordRepository interface {
	Add(ctx context.Context, record *entity.FlightRecord) error
	List(ctx context.Context) ([]*entity.FlightRecord, error)
	FindByID(ctx context.Context, id string) (*entity.FlightRecord, error)
	Clear(ctx context.Context) error
}
