package contentRepo

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

// MongoContentRepo implements ContentRepository using MongoDB.
type MongoContentRepo struct {
	testimonials *mongo.Collection
	slides       *mongo.Collection
	singletons   *mongo.Collection
}

// NewMongoContentRepo creates a new instance of ContentRepository using MongoDB.
func NewMongoContentRepo() ContentRepository {
	db := database.DB()
	repo := &MongoContentRepo{
		testimonials: db.Collection("testimonials"),
		slides:       db.Collection("slides"),
		singletons:   db.Collection("content"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoContentRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	unique := options.Index().SetUnique(true)
	for _, coll := range []*mongo.Collection{r.testimonials, r.slides, r.singletons} {
		_, err := coll.Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: unique,
		})
		if err != nil {
			return fmt.Errorf("failed to create indexes: %w", err)
		}
	}
	return nil
}

// --- Testimonials ---

func (r *MongoContentRepo) GetTestimonials(activeOnly bool) ([]models.Testimonial, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.testimonials.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve testimonials: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.Testimonial
	for cursor.Next(ctx) {
		var t models.Testimonial
		if err := cursor.Decode(&t); err != nil {
			return nil, fmt.Errorf("failed to decode testimonial: %w", err)
		}
		out = append(out, t)
	}
	return out, nil
}

func (r *MongoContentRepo) GetTestimonialByID(id string) (*models.Testimonial, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.Testimonial
	if err := r.testimonials.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch testimonial with id %s: %w", id, err)
	}
	return &t, nil
}

func (r *MongoContentRepo) CreateTestimonial(t *models.Testimonial) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	if _, err := r.testimonials.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to create testimonial: %w", err)
	}
	return nil
}

func (r *MongoContentRepo) UpdateTestimonial(t *models.Testimonial) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	t.UpdatedAt = time.Now()
	result, err := r.testimonials.UpdateOne(ctx, bson.M{"id": t.ID}, bson.M{"$set": t})
	if err != nil {
		return fmt.Errorf("failed to update testimonial with id %s: %w", t.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("testimonial with id %s not found", t.ID)
	}
	return nil
}

func (r *MongoContentRepo) DeleteTestimonial(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.testimonials.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete testimonial with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("testimonial with id %s not found", id)
	}
	return nil
}

// --- Hero slides ---

func (r *MongoContentRepo) GetSlides(activeOnly bool) ([]models.SliderContent, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.slides.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve slides: %w", err)
	}
	defer cursor.Close(ctx)

	var out []models.SliderContent
	for cursor.Next(ctx) {
		var s models.SliderContent
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode slide: %w", err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (r *MongoContentRepo) GetSlideByID(id string) (*models.SliderContent, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.SliderContent
	if err := r.slides.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch slide with id %s: %w", id, err)
	}
	return &s, nil
}

func (r *MongoContentRepo) CreateSlide(s *models.SliderContent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	if _, err := r.slides.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to create slide: %w", err)
	}
	return nil
}

func (r *MongoContentRepo) UpdateSlide(s *models.SliderContent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	s.UpdatedAt = time.Now()
	result, err := r.slides.UpdateOne(ctx, bson.M{"id": s.ID}, bson.M{"$set": s})
	if err != nil {
		return fmt.Errorf("failed to update slide with id %s: %w", s.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("slide with id %s not found", s.ID)
	}
	return nil
}

func (r *MongoContentRepo) DeleteSlide(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.slides.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete slide with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("slide with id %s not found", id)
	}
	return nil
}

// --- Singleton about/footer documents ---

func (r *MongoContentRepo) GetAbout() (*models.AboutContent, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var a models.AboutContent
	err := r.singletons.FindOne(ctx, bson.M{"id": models.AboutContentID}).Decode(&a)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch about content: %w", err)
	}
	return &a, nil
}

func (r *MongoContentRepo) PutAbout(a *models.AboutContent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	a.ID = models.AboutContentID
	a.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.singletons.ReplaceOne(ctx, bson.M{"id": a.ID}, a, opts); err != nil {
		return fmt.Errorf("failed to store about content: %w", err)
	}
	return nil
}

func (r *MongoContentRepo) GetFooter() (*models.FooterContent, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var f models.FooterContent
	err := r.singletons.FindOne(ctx, bson.M{"id": models.FooterContentID}).Decode(&f)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch footer content: %w", err)
	}
	return &f, nil
}

func (r *MongoContentRepo) PutFooter(f *models.FooterContent) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	f.ID = models.FooterContentID
	f.UpdatedAt = time.Now()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.singletons.ReplaceOne(ctx, bson.M{"id": f.ID}, f, opts); err != nil {
		return fmt.Errorf("failed to store footer content: %w", err)
	}
	return nil
}
