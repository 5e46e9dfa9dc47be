package profileRepo

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

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	coll *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	coll := database.DB().Collection("profiles")
	repo := &MongoProfileRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "uid", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByUID retrieves a profile by identity-provider uid.
func (r *MongoProfileRepo) GetByUID(uid string) (*models.Profile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.Profile
	if err := r.coll.FindOne(ctx, bson.M{"uid": uid}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch profile with uid %s: %w", uid, err)
	}
	return &p, nil
}

// GetAll retrieves all mirrored profiles.
func (r *MongoProfileRepo) GetAll() ([]models.Profile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.Profile
	for cursor.Next(ctx) {
		var p models.Profile
		if err := cursor.Decode(&p); err != nil {
			return nil, fmt.Errorf("failed to decode profile: %w", err)
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Upsert inserts or refreshes a profile document by uid. Role and status are
// only written on insert so an admin-assigned role survives re-sign-ins.
func (r *MongoProfileRepo) Upsert(p *models.Profile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	update := bson.M{
		"$set": bson.M{
			"email":     p.Email,
			"fullName":  p.FullName,
			"photoUrl":  p.PhotoURL,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"uid":       p.UID,
			"role":      p.Role,
			"status":    p.Status,
			"createdAt": now,
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"uid": p.UID}, update, opts); err != nil {
		return fmt.Errorf("failed to upsert profile for uid %s: %w", p.UID, err)
	}
	return nil
}

// UpdateFields applies a partial update to a profile by uid.
func (r *MongoProfileRepo) UpdateFields(uid string, fields bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	fields["updatedAt"] = time.Now()
	result, err := r.coll.UpdateOne(ctx, bson.M{"uid": uid}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update profile with uid %s: %w", uid, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("profile with uid %s not found", uid)
	}
	return nil
}

// Delete removes a profile document by uid.
func (r *MongoProfileRepo) Delete(uid string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"uid": uid})
	if err != nil {
		return fmt.Errorf("failed to delete profile with uid %s: %w", uid, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("profile with uid %s not found", uid)
	}
	return nil
}
