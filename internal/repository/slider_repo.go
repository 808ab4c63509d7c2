package repository

import (
	"context"

	"homenest-backend/internal/database"
	"homenest-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type SliderRepo struct {
	collection *mongo.Collection
}

func NewSliderRepo(db *database.Database) *SliderRepo {
	return &SliderRepo{
		collection: db.Collection(database.SlidersCollection),
	}
}

// List returns sliders in natural store order.
func (r *SliderRepo) List(ctx context.Context) ([]models.Slider, error) {
	cursor, err := r.collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}

	sliders := []models.Slider{}
	if err := cursor.All(ctx, &sliders); err != nil {
		return nil, err
	}
	return sliders, nil
}

func (r *SliderRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.D{})
}
