package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightcal-service/internal/domain/entity"
	"flightcal-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Emails stuck in PROCESSING longer than this are returned to the queue
const staleProcessingAfter = 5 * time.Minute

// MongoEmailRepository keeps the log of ingested confirmation emails
type MongoEmailRepository struct {
	collection *mongo.Collection
}

// NewMongoEmailRepository creates a new MongoDB email repository
func NewMongoEmailRepository(db *mongo.Database) repository.EmailRepository {
	collection := db.Collection("emailLogs")

	collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "emailId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "receivedAt", Value: -1}}},
		{Keys: bson.D{{Key: "processStatus", Value: 1}, {Key: "receivedAt", Value: 1}}},
	})

	return &MongoEmailRepository{
		collection: collection,
	}
}

// Save stores a newly fetched email as pending
func (r *MongoEmailRepository) Save(ctx context.Context, email *entity.Email) error {
	if email.ProcessStatus == "" {
		email.ProcessStatus = entity.StatusPending
	}
	if _, err := r.collection.InsertOne(ctx, email); err != nil {
		return fmt.Errorf("failed to save email %s: %w", email.EmailID, err)
	}
	return nil
}

// pendingStatuses matches emails nobody has started on yet
func pendingStatuses() []bson.M {
	return []bson.M{
		{"processStatus": ""},
		{"processStatus": entity.StatusPending},
		{"processStatus": bson.M{"$exists": false}},
	}
}

// FindUnprocessed returns pending emails, oldest first
func (r *MongoEmailRepository) FindUnprocessed(ctx context.Context, limit int) ([]*entity.Email, error) {
	filter := bson.M{"$or": pendingStatuses()}
	opts := options.Find().
		SetLimit(int64(limit)).
		SetSort(bson.D{{Key: "receivedAt", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find unprocessed emails: %w", err)
	}
	defer cursor.Close(ctx)

	var emails []*entity.Email
	if err := cursor.All(ctx, &emails); err != nil {
		return nil, err
	}
	return emails, nil
}

// ResetProcessingEmails moves stale PROCESSING emails back to PENDING
func (r *MongoEmailRepository) ResetProcessingEmails(ctx context.Context) error {
	filter := bson.M{
		"processStatus": entity.StatusProcessing,
		"$or": []bson.M{
			{"processStartedAt": bson.M{"$lt": time.Now().Add(-staleProcessingAfter)}},
			{"processStartedAt": bson.M{"$exists": false}},
		},
	}
	update := bson.M{"$set": bson.M{
		"processStatus": entity.StatusPending,
		"errorDetail":   "Reset from stale PROCESSING state",
	}}

	if _, err := r.collection.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to reset stale emails: %w", err)
	}
	return nil
}

// GetLastEmail returns the most recently received email, or nil when the log is empty
func (r *MongoEmailRepository) GetLastEmail(ctx context.Context) (*entity.Email, error) {
	var email entity.Email
	opts := options.FindOne().SetSort(bson.D{{Key: "receivedAt", Value: -1}})
	err := r.collection.FindOne(ctx, bson.M{}, opts).Decode(&email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &email, nil
}

// FindByEmailIDs returns the already stored emails among emailIDs, keyed by Gmail id
func (r *MongoEmailRepository) FindByEmailIDs(ctx context.Context, emailIDs []string) (map[string]*entity.Email, error) {
	result := make(map[string]*entity.Email, len(emailIDs))
	if len(emailIDs) == 0 {
		return result, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"emailId": bson.M{"$in": emailIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var email entity.Email
		if err := cursor.Decode(&email); err != nil {
			continue
		}
		result[email.EmailID] = &email
	}
	return result, cursor.Err()
}

// ClaimByEmailID atomically moves a pending email to PROCESSING.
// Only one of several concurrent callers gets true.
func (r *MongoEmailRepository) ClaimByEmailID(ctx context.Context, emailID string, startedAt time.Time) (bool, error) {
	filter := bson.M{
		"emailId": emailID,
		"$or":     pendingStatuses(),
	}
	update := bson.M{"$set": bson.M{
		"processStatus":    entity.StatusProcessing,
		"processStartedAt": startedAt,
	}}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to claim email %s: %w", emailID, err)
	}
	return result.ModifiedCount == 1, nil
}

// MarkAsProcessedByEmailID records the final outcome of processing an email
func (r *MongoEmailRepository) MarkAsProcessedByEmailID(ctx context.Context, emailID, status, processorType, errorDetail string, extractedData map[string]interface{}) error {
	set := bson.M{
		"processedAt":   time.Now(),
		"processStatus": status,
		"processorType": processorType,
	}
	if len(extractedData) > 0 {
		set["extractedData"] = extractedData
	}
	if errorDetail != "" {
		set["errorDetail"] = errorDetail
	}
	return r.updateOne(ctx, emailID, set)
}

// UpdateProcessStepsByEmailID stores step progress for an email
func (r *MongoEmailRepository) UpdateProcessStepsByEmailID(ctx context.Context, emailID string, steps entity.ProcessSteps) error {
	return r.updateOne(ctx, emailID, bson.M{"processSteps": steps})
}

func (r *MongoEmailRepository) updateOne(ctx context.Context, emailID string, set bson.M) error {
	result, err := r.collection.UpdateOne(ctx, bson.M{"emailId": emailID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update email %s: %w", emailID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("no document found with emailID: %s", emailID)
	}
	return nil
}
