package repository

import (
	"context"

	"homenest-backend/internal/database"
	"homenest-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type ReviewRepo struct {
	collection *mongo.Collection
}

func NewReviewRepo(db *database.Database) *ReviewRepo {
	return &ReviewRepo{
		collection: db.Collection(database.ReviewsCollection),
	}
}

// ReviewFilter narrows a review listing; empty fields match everything.
type ReviewFilter struct {
	PropertyID string
	UserEmail  string
}

func (f ReviewFilter) document() bson.M {
	filter := bson.M{}
	if f.PropertyID != "" {
		filter["propertyId"] = f.PropertyID
	}
	if f.UserEmail != "" {
		filter["userEmail"] = f.UserEmail
	}
	return filter
}

// List returns matching reviews, newest first.
func (r *ReviewRepo) List(ctx context.Context, filter ReviewFilter) ([]models.Review, error) {
	opts := options.Find().SetSort(NewestFirst.document())

	cursor, err := r.collection.Find(ctx, filter.document(), opts)
	if err != nil {
		return nil, err
	}

	reviews := []models.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewRepo) Create(ctx context.Context, review *models.Review) error {
	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return err
	}
	review.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

func (r *ReviewRepo) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.collection, id)
}

func (r *ReviewRepo) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "propertyId", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "createdAt", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: -1}},
		},
	}
	_, err := r.collection.Indexes().CreateMany(ctx, indexes)
	return err
}
