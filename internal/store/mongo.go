package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rayan25nov/Blog-task-backend/internal/models"
)

// MongoStore handles blog CRUD in MongoDB.
type MongoStore struct {
	col *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{col: db.Collection("blogs")}
}

// EnsureIndexes creates the userId index used by the per-user listings.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("mongo index: %w", err)
	}
	return nil
}

// Ping reports whether the deployment is reachable.
func (s *MongoStore) Ping(ctx context.Context) error {
	return s.col.Database().Client().Ping(ctx, nil)
}

func (s *MongoStore) Insert(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	now := time.Now().UTC()
	if blog.CreatedAt.IsZero() {
		blog.CreatedAt = now
	}
	blog.UpdatedAt = now
	blog.ID = primitive.NilObjectID

	res, err := s.col.InsertOne(ctx, blog)
	if err != nil {
		return nil, fmt.Errorf("mongo insert: %w", err)
	}
	blog.ID = res.InsertedID.(primitive.ObjectID)
	return blog, nil
}

// List returns every blog, most recently inserted first.
func (s *MongoStore) List(ctx context.Context) ([]models.Blog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "$natural", Value: -1}})
	return s.find(ctx, bson.M{}, opts)
}

func (s *MongoStore) ListByUser(ctx context.Context, userID string) ([]models.Blog, error) {
	return s.find(ctx, bson.M{"userId": userID})
}

func (s *MongoStore) ListIDsByUser(ctx context.Context, userID string) ([]string, error) {
	opts := options.Find().SetProjection(bson.M{"_id": 1})
	blogs, err := s.find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(blogs))
	for _, b := range blogs {
		ids = append(ids, b.ID.Hex())
	}
	return ids, nil
}

// GetByIDs returns the blogs in the order of ids. Unknown or malformed ids
// are skipped.
func (s *MongoStore) GetByIDs(ctx context.Context, ids []string) ([]models.Blog, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	if len(oids) == 0 {
		return []models.Blog{}, nil
	}

	found, err := s.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, err
	}
	byID := make(map[primitive.ObjectID]models.Blog, len(found))
	for _, b := range found {
		byID[b.ID] = b
	}
	out := make([]models.Blog, 0, len(found))
	for _, oid := range oids {
		if b, ok := byID[oid]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *MongoStore) GetByID(ctx context.Context, id string) (*models.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var blog models.Blog
	if err := s.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&blog); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	return &blog, nil
}

// Update applies patch and returns the document after the update.
func (s *MongoStore) Update(ctx context.Context, id string, patch models.BlogPatch) (*models.Blog, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.CreatedAt != nil {
		set["createdAt"] = *patch.CreatedAt
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var blog models.Blog
	err = s.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&blog)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("mongo update: %w", err)
	}
	return &blog, nil
}

func (s *MongoStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("mongo delete: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoStore) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]models.Blog, error) {
	cur, err := s.col.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("mongo find: %w", err)
	}
	defer cur.Close(ctx)

	blogs := []models.Blog{}
	if err := cur.All(ctx, &blogs); err != nil {
		return nil, fmt.Errorf("mongo decode: %w", err)
	}
	return blogs, nil
}
