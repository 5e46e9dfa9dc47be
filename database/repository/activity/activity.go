package activityRepo

import (
	"context"
	"fmt"
	"time"

	"carexyz/database"
	"carexyz/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ActivityRepository is an append-only store of admin-observable events.
type ActivityRepository interface {
	Append(entry *models.ActivityLog) error
	// GetRecent retrieves the newest entries, optionally filtered by type.
	GetRecent(eventType string, limit int64) ([]models.ActivityLog, error)
	// GetByRef retrieves entries referencing an entity id.
	GetByRef(refID string) ([]models.ActivityLog, error)
}

type mongoActivityRepo struct {
	coll *mongo.Collection
}

// NewMongoActivityRepo returns a new ActivityRepository instance using MongoDB.
func NewMongoActivityRepo() ActivityRepository {
	return &mongoActivityRepo{
		coll: database.DB().Collection("activity_logs"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *mongoActivityRepo) Append(entry *models.ActivityLog) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	entry.CreatedAt = time.Now()
	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("failed to append activity entry: %w", err)
	}
	return nil
}

func (r *mongoActivityRepo) GetRecent(eventType string, limit int64) ([]models.ActivityLog, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if eventType != "" {
		filter["type"] = eventType
	}
	if limit <= 0 {
		limit = 100
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve activity entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ActivityLog
	for cursor.Next(ctx) {
		var e models.ActivityLog
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode activity entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (r *mongoActivityRepo) GetByRef(refID string) ([]models.ActivityLog, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{"refId": refID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve activity entries: %w", err)
	}
	defer cursor.Close(ctx)

	var entries []models.ActivityLog
	for cursor.Next(ctx) {
		var e models.ActivityLog
		if err := cursor.Decode(&e); err != nil {
			return nil, fmt.Errorf("failed to decode activity entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
