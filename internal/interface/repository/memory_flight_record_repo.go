package repository

import (
	"context"
	"sync"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"
)

// MemoryFlightRecordRepository keeps flight history in process memory, newest first
type MemoryFlightRecordRepository struct {
	mu      sync.RWMutex
	records []*entity.FlightRecord
	limit   int
}

// NewMemoryFlightRecordRepository creates an in-memory history. A limit of 0 keeps everything.
func NewMemoryFlightRecordRepository(limit int) repository.FlightRecordRepository {
	if limit < 0 {
		limit = 0
	}
	return &MemoryFlightRecordRepository{
		limit: limit,
	}
}

// Add prepends a record, dropping the oldest entries beyond the limit
func (r *MemoryFlightRecordRepository) Add(ctx context.Context, record *entity.FlightRecord) error {
	stored := *record

	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append([]*entity.FlightRecord{&stored}, r.records...)
	if r.limit > 0 && len(r.records) > r.limit {
		r.records = r.records[:r.limit]
	}
	return nil
}

// List returns copies of all records, most recent first
func (r *MemoryFlightRecordRepository) List(ctx context.Context) ([]*entity.FlightRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.FlightRecord, len(r.records))
	for i, rec := range r.records {
		c := *rec
		out[i] = &c
	}
	return out, nil
}

// FindByID returns a copy of the record with the given id
func (r *MemoryFlightRecordRepository) FindByID(ctx context.Context, id string) (*entity.FlightRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.records {
		if rec.ID == id {
			c := *rec
			return &c, nil
		}
	}
	return nil, entity.ErrFlightNotFound
}

// Clear removes every record
func (r *MemoryFlightRecordRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = nil
	return nil
}
