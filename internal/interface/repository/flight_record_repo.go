package repository

import (
	"context"
	"errors"
	"fmt"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoFlightRecordRepository implements FlightRecordRepository on MongoDB
type MongoFlightRecordRepository struct {
	collection *mongo.Collection
}

// NewMongoFlightRecordRepository creates a new flight record repository
func NewMongoFlightRecordRepository(db *mongo.Database) repository.FlightRecordRepository {
	collection := db.Collection("flight_records")

	// History is always read newest first
	ctx := context.Background()
	collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "parsedAt", Value: -1}},
	})

	return &MongoFlightRecordRepository{
		collection: collection,
	}
}

// Add inserts a record
func (r *MongoFlightRecordRepository) Add(ctx context.Context, record *entity.FlightRecord) error {
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert flight record: %w", err)
	}
	return nil
}

// List returns every record, most recent first
func (r *MongoFlightRecordRepository) List(ctx context.Context) ([]*entity.FlightRecord, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "parsedAt", Value: -1},
		{Key: "_id", Value: -1},
	})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list flight records: %w", err)
	}
	defer cursor.Close(ctx)

	records := make([]*entity.FlightRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("failed to decode flight records: %w", err)
	}
	return records, nil
}

// FindByID finds a record by id
func (r *MongoFlightRecordRepository) FindByID(ctx context.Context, id string) (*entity.FlightRecord, error) {
	var record entity.FlightRecord
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&record)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, entity.ErrFlightNotFound
		}
		return nil, err
	}
	return &record, nil
}

// Clear deletes the whole history
func (r *MongoFlightRecordRepository) Clear(ctx context.Context) error {
	if _, err := r.collection.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear flight records: %w", err)
	}
	return nil
}
