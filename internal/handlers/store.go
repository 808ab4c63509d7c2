package handlers

import (
	"context"

	"homenest-backend/internal/models"
	"homenest-backend/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// The handlers depend on these instead of the Mongo repositories so the
// HTTP layer can run against an in-memory double.

type SliderStore interface {
	List(ctx context.Context) ([]models.Slider, error)
	Count(ctx context.Context) (int64, error)
}

type PropertyStore interface {
	List(ctx context.Context, sort repository.Sort, limit int64) ([]models.Property, error)
	FindByID(ctx context.Context, id string) (*models.Property, error)
	Create(ctx context.Context, property *models.Property) error
	Update(ctx context.Context, id string, fields bson.M) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ReviewStore interface {
	List(ctx context.Context, filter repository.ReviewFilter) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) error
	Delete(ctx context.Context, id string) (bool, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

var (
	_ SliderStore   = (*repository.SliderRepo)(nil)
	_ PropertyStore = (*repository.PropertyRepo)(nil)
	_ ReviewStore   = (*repository.ReviewRepo)(nil)
)
