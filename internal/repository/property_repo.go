package repository

import (
	"context"
	"errors"
	"fmt"

	"homenest-backend/internal/database"
	"homenest-backend/internal/models"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type PropertyRepo struct {
	collection *mongo.Collection
}

func NewPropertyRepo(db *database.Database) *PropertyRepo {
	return &PropertyRepo{
		collection: db.Collection(database.PropertiesCollection),
	}
}

// List returns every property ordered by sort. limit <= 0 means no limit.
func (r *PropertyRepo) List(ctx context.Context, sort Sort, limit int64) ([]models.Property, error) {
	opts := options.Find().SetSort(sort.document())
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

// FindByID returns nil, nil when no document has the id.
func (r *PropertyRepo) FindByID(ctx context.Context, id string) (*models.Property, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var property models.Property
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&property)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}

func (r *PropertyRepo) Create(ctx context.Context, property *models.Property) error {
	result, err := r.collection.InsertOne(ctx, property)
	if err != nil {
		return err
	}
	property.ID = result.InsertedID.(bson.ObjectID)
	return nil
}

// Update applies fields with $set and reports whether a document matched.
func (r *PropertyRepo) Update(ctx context.Context, id string, fields bson.M) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": fields})
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

// Delete reports whether a document was removed.
func (r *PropertyRepo) Delete(ctx context.Context, id string) (bool, error) {
	return deleteByID(ctx, r.collection, id)
}

func (r *PropertyRepo) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.D{})
}

// EnsureIndexes backs the newest-first listings.
func (r *PropertyRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "createdAt", Value: -1}},
	})
	return err
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("invalid id %q: %w", id, err)
	}
	return oid, nil
}

func deleteByID(ctx context.Context, collection *mongo.Collection, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	result, err := collection.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
